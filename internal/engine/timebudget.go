package engine

import (
	"sync"
	"time"
)

const (
	// DefaultLimitMinutes is used when the stored base limit is
	// missing or malformed.
	DefaultLimitMinutes = 30

	MinLimitMinutes = 1
	MaxLimitMinutes = 600
)

// TimeSettings is the parent-facing pair: whether accounting runs at
// all, and the base daily allowance.
type TimeSettings struct {
	Enabled      bool
	LimitMinutes int
}

// TimeState is the per-call snapshot of today's budget.
type TimeState struct {
	Enabled          bool
	UsedSeconds      int
	RemainingSeconds int
	LimitSeconds     int
}

func clampLimitMinutes(v int) int {
	if v < MinLimitMinutes {
		return MinLimitMinutes
	}
	if v > MaxLimitMinutes {
		return MaxLimitMinutes
	}
	return v
}

func (s *Service) readBaseLimitMinutes() int {
	return clampLimitMinutes(int(s.readInt(keyTimeLimitMinutes, DefaultLimitMinutes)))
}

// resetIfNewDay zeroes today's usage and bonus minutes when the stored
// day key is stale. Every read path runs this first, so any process
// noticing the rollover performs it; a second process repeating the
// reset lands on the same zero state, which is harmless.
func (s *Service) resetIfNewDay() {
	today := s.todayKey()
	if s.readDayKey(keyTimeDay) != today {
		s.store.Set(keyTimeDay, today)
		s.writeInt(keyTimeUsedToday, 0)
		s.writeInt(keyTimeExtraToday, 0)
		s.writeInt(keyTimeLastTick, s.nowMs())
	}
}

// LoadTimeSettings returns the stored settings, healing defaults.
func (s *Service) LoadTimeSettings() TimeSettings {
	s.resetIfNewDay()
	return TimeSettings{
		Enabled:      s.readBool(keyTimeEnabled),
		LimitMinutes: s.readBaseLimitMinutes(),
	}
}

// SaveTimeSettings stores the enabled flag and the base limit, clamped
// to [MinLimitMinutes, MaxLimitMinutes].
func (s *Service) SaveTimeSettings(enabled bool, limitMinutes int) {
	s.resetIfNewDay()
	s.writeBool(keyTimeEnabled, enabled)
	s.writeInt(keyTimeLimitMinutes, int64(clampLimitMinutes(limitMinutes)))
}

// TimeSnapshot returns today's budget state after a rollover check.
func (s *Service) TimeSnapshot() TimeState {
	s.resetIfNewDay()

	limitSeconds := (s.readBaseLimitMinutes() + int(s.readInt(keyTimeExtraToday, 0))) * 60
	usedSeconds := int(s.readInt(keyTimeUsedToday, 0))
	remaining := limitSeconds - usedSeconds
	if remaining < 0 {
		remaining = 0
	}

	return TimeState{
		Enabled:          s.readBool(keyTimeEnabled),
		UsedSeconds:      usedSeconds,
		RemainingSeconds: remaining,
		LimitSeconds:     limitSeconds,
	}
}

// AddExtraMinutes grants a bonus allowance for today only; it is wiped
// by the next day rollover. Non-positive grants are no-ops.
func (s *Service) AddExtraMinutes(minutes int) {
	if minutes <= 0 {
		return
	}
	s.resetIfNewDay()
	s.writeInt(keyTimeExtraToday, s.readInt(keyTimeExtraToday, 0)+int64(minutes))
}

// ResetTodayUsage zeroes today's usage and bonus minutes and re-stamps
// the tick so the next accounting step charges from now.
func (s *Service) ResetTodayUsage() {
	s.resetIfNewDay()
	s.writeInt(keyTimeUsedToday, 0)
	s.writeInt(keyTimeExtraToday, 0)
	s.writeInt(keyTimeLastTick, s.nowMs())
}

// advanceUsedTime charges the wall-clock time elapsed since the last
// tick. Accounting by delta rather than by tick count means a stalled
// or throttled timer never under- or over-charges: however late the
// next step runs, it charges exactly the elapsed seconds. The tick is
// always re-stamped, so toggling enabled never double-counts idle time.
func (s *Service) advanceUsedTime(nowMs int64) {
	if !s.readBool(keyTimeEnabled) {
		s.writeInt(keyTimeLastTick, nowMs)
		return
	}

	lastTick := s.readInt(keyTimeLastTick, nowMs)
	deltaMs := nowMs - lastTick
	if deltaMs < 0 {
		deltaMs = 0
	}
	if deltaSeconds := deltaMs / 1000; deltaSeconds > 0 {
		s.writeInt(keyTimeUsedToday, s.readInt(keyTimeUsedToday, 0)+deltaSeconds)
	}

	s.writeInt(keyTimeLastTick, nowMs)
}

// TickBudget performs one accounting step: rollover check, then charge
// elapsed time. Collaborators call it directly when a session resumes
// from a background/suspended state (the focus hook), so a sleeping
// ticker cannot leave a gap.
func (s *Service) TickBudget() {
	s.resetIfNewDay()
	s.advanceUsedTime(s.nowMs())
}

// StartTicker begins the repeating 1-second accounting loop for an
// active play session and returns its stop function. Stop performs a
// final accounting step before detaching, so ending a session never
// loses up to one tick of usage. Calling stop more than once is safe.
func (s *Service) StartTicker() (stop func()) {
	s.resetIfNewDay()
	s.writeInt(keyTimeLastTick, s.nowMs())

	done := make(chan struct{})
	go func() {
		t := time.NewTicker(time.Second)
		defer t.Stop()
		for {
			select {
			case <-t.C:
				s.TickBudget()
			case <-done:
				return
			}
		}
	}()

	var once sync.Once
	return func() {
		once.Do(func() {
			close(done)
			s.TickBudget()
		})
	}
}
