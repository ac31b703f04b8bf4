package engine

// UnlockedFeatures is a pure function of the star total; it is derived
// on every call and never stored, so it can be recomputed on every
// render without drift.
type UnlockedFeatures struct {
	SkinLevel              int
	HardModeUnlocked       bool
	ChallengeBadgeUnlocked bool
}

// UnlockNotice describes a milestone banner to surface to the player.
type UnlockNotice struct {
	Threshold   int
	Title       string
	Description string
}

var unlockMilestones = []UnlockNotice{
	{Threshold: 5, Title: "New Unlock!", Description: "Rocket Skin Level 2"},
	{Threshold: 10, Title: "New Unlock!", Description: "Memory Hard Mode"},
	{Threshold: 20, Title: "New Unlock!", Description: "Rocket Skin Level 3"},
	{Threshold: 30, Title: "New Unlock!", Description: "Arcade Challenger Badge"},
}

// Milestones returns the fixed unlock thresholds in ascending order.
func Milestones() []UnlockNotice {
	out := make([]UnlockNotice, len(unlockMilestones))
	copy(out, unlockMilestones)
	return out
}

// DeriveUnlocks maps a star total to the feature-unlock snapshot.
func DeriveUnlocks(stars int) UnlockedFeatures {
	skin := 1
	switch {
	case stars >= 20:
		skin = 3
	case stars >= 5:
		skin = 2
	}
	return UnlockedFeatures{
		SkinLevel:              skin,
		HardModeUnlocked:       stars >= 10,
		ChallengeBadgeUnlocked: stars >= 30,
	}
}

// UnlockSnapshot derives the unlock state from the stored star total.
func (s *Service) UnlockSnapshot() UnlockedFeatures {
	return DeriveUnlocks(s.StarsTotal())
}

func (s *Service) lastUnlockNotified() int {
	return int(s.readInt(keyLastUnlockNotified, 0))
}

// PendingUnlockNotice returns the lowest milestone that the current
// star total has reached but the player has not yet been shown, or nil.
// Together with the monotonic cursor in MarkUnlockNoticeSeen this
// guarantees each milestone banner surfaces at most once no matter how
// often or from how many processes the snapshot is polled.
func (s *Service) PendingUnlockNotice() *UnlockNotice {
	stars := s.StarsTotal()
	lastNotified := s.lastUnlockNotified()

	for _, m := range unlockMilestones {
		if stars >= m.Threshold && m.Threshold > lastNotified {
			notice := m
			return &notice
		}
	}
	return nil
}

// MarkUnlockNoticeSeen advances the notice cursor to threshold. The
// cursor only moves forward; a stale or duplicate acknowledgement from
// another process never resurrects an already-seen banner.
func (s *Service) MarkUnlockNoticeSeen(threshold int) {
	if threshold <= 0 {
		return
	}
	if threshold > s.lastUnlockNotified() {
		s.writeInt(keyLastUnlockNotified, int64(threshold))
	}
}

// ResetUnlockNotices rewinds the cursor so every earned milestone will
// surface again.
func (s *Service) ResetUnlockNotices() {
	s.writeInt(keyLastUnlockNotified, 0)
}
