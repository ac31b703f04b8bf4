package engine

import "strconv"

const (
	// DefaultTrialDays is stamped on first start.
	DefaultTrialDays = 14

	msPerDay = 24 * 60 * 60 * 1000
)

// TrialStatus is derived from the stored start timestamp plus the wall
// clock; nothing here is persisted.
type TrialStatus struct {
	HasStarted    bool
	IsActive      bool
	IsExpired     bool
	DaysRemaining int
}

// StartTrial stamps the trial start once. Repeated calls before a
// reset do nothing, so re-visiting the gated surface never extends or
// shortens an existing trial.
func (s *Service) StartTrial() {
	if s.store.Get(keyTrialStartedAt, "") == "" {
		s.writeInt(keyTrialStartedAt, s.nowMs())
	}
	if s.store.Get(keyTrialDays, "") == "" {
		s.writeInt(keyTrialDays, DefaultTrialDays)
	}
}

func (s *Service) trialDays() int {
	days := s.readInt(keyTrialDays, DefaultTrialDays)
	if days < 1 {
		days = 1
	}
	return int(days)
}

// TrialStatus computes the current trial state. A corrupt or absent
// start timestamp reads as "not started", never as "expired".
func (s *Service) TrialStatus() TrialStatus {
	trialDays := s.trialDays()

	raw := s.store.Get(keyTrialStartedAt, "")
	if raw == "" {
		return TrialStatus{DaysRemaining: trialDays}
	}
	startedAt, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || startedAt <= 0 {
		return TrialStatus{DaysRemaining: trialDays}
	}

	elapsedMs := s.nowMs() - startedAt
	if elapsedMs < 0 {
		elapsedMs = 0
	}
	elapsedDays := int(elapsedMs / msPerDay)

	daysRemaining := trialDays - elapsedDays
	if daysRemaining < 0 {
		daysRemaining = 0
	}
	expired := daysRemaining <= 0

	return TrialStatus{
		HasStarted:    true,
		IsActive:      !expired,
		IsExpired:     expired,
		DaysRemaining: daysRemaining,
	}
}

// ResetTrial clears the start timestamp and duration; the next
// StartTrial begins a fresh trial.
func (s *Service) ResetTrial() {
	s.store.Remove(keyTrialStartedAt)
	s.store.Remove(keyTrialDays)
}

// SetTrialOverride toggles the parent-controlled bypass flag. It is
// independent of expiry: the trial still reads as expired, the gate
// just stops blocking.
func (s *Service) SetTrialOverride(unlocked bool) {
	s.writeBool(keyTrialOverride, unlocked)
}

func (s *Service) TrialOverrideUnlocked() bool {
	return s.readBool(keyTrialOverride)
}

// TrialAllowed is the gate collaborators consult before launching a
// game: access is blocked only when the trial has expired and no
// override is set.
func (s *Service) TrialAllowed() bool {
	if s.TrialOverrideUnlocked() {
		return true
	}
	return !s.TrialStatus().IsExpired
}
