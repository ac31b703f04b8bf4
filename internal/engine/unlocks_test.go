package engine

import "testing"

func TestDeriveUnlocksBoundaries(t *testing.T) {
	cases := []struct {
		stars int
		want  UnlockedFeatures
	}{
		{0, UnlockedFeatures{SkinLevel: 1}},
		{4, UnlockedFeatures{SkinLevel: 1}},
		{5, UnlockedFeatures{SkinLevel: 2}},
		{9, UnlockedFeatures{SkinLevel: 2}},
		{10, UnlockedFeatures{SkinLevel: 2, HardModeUnlocked: true}},
		{19, UnlockedFeatures{SkinLevel: 2, HardModeUnlocked: true}},
		{20, UnlockedFeatures{SkinLevel: 3, HardModeUnlocked: true}},
		{29, UnlockedFeatures{SkinLevel: 3, HardModeUnlocked: true}},
		{30, UnlockedFeatures{SkinLevel: 3, HardModeUnlocked: true, ChallengeBadgeUnlocked: true}},
		{1000, UnlockedFeatures{SkinLevel: 3, HardModeUnlocked: true, ChallengeBadgeUnlocked: true}},
	}
	for _, c := range cases {
		if got := DeriveUnlocks(c.stars); got != c.want {
			t.Fatalf("DeriveUnlocks(%d) = %+v, want %+v", c.stars, got, c.want)
		}
	}
}

func TestPendingNoticeSurfacesOncePerMilestone(t *testing.T) {
	svc, _, _ := newTestService(t)

	svc.AddStars(9)
	if n := svc.PendingUnlockNotice(); n == nil || n.Threshold != 5 {
		t.Fatalf("pending at 9 stars = %+v, want threshold 5", n)
	}

	// Polling does not consume the notice.
	if n := svc.PendingUnlockNotice(); n == nil || n.Threshold != 5 {
		t.Fatalf("repeat poll = %+v, want threshold 5 still pending", n)
	}

	svc.MarkUnlockNoticeSeen(5)
	if n := svc.PendingUnlockNotice(); n != nil {
		t.Fatalf("pending after ack = %+v, want nil", n)
	}

	// Crossing the next threshold surfaces exactly the next banner.
	svc.AddStars(1)
	n := svc.PendingUnlockNotice()
	if n == nil || n.Threshold != 10 {
		t.Fatalf("pending at 10 stars = %+v, want threshold 10", n)
	}
	svc.MarkUnlockNoticeSeen(n.Threshold)
	if n := svc.PendingUnlockNotice(); n != nil {
		t.Fatalf("pending after second ack = %+v, want nil", n)
	}
}

func TestPendingNoticeWalksSkippedMilestonesInOrder(t *testing.T) {
	svc, _, _ := newTestService(t)

	// A burst past several thresholds surfaces them lowest-first.
	svc.AddStars(25)
	for _, want := range []int{5, 10, 20} {
		n := svc.PendingUnlockNotice()
		if n == nil || n.Threshold != want {
			t.Fatalf("pending = %+v, want threshold %d", n, want)
		}
		svc.MarkUnlockNoticeSeen(n.Threshold)
	}
	if n := svc.PendingUnlockNotice(); n != nil {
		t.Fatalf("pending after walking all earned milestones = %+v", n)
	}
}

func TestNoticeCursorOnlyMovesForward(t *testing.T) {
	svc, _, _ := newTestService(t)
	svc.AddStars(12)

	svc.MarkUnlockNoticeSeen(10)
	svc.MarkUnlockNoticeSeen(5)
	svc.MarkUnlockNoticeSeen(0)
	svc.MarkUnlockNoticeSeen(-3)

	if n := svc.PendingUnlockNotice(); n != nil {
		t.Fatalf("stale acks resurrected notice %+v", n)
	}
}

func TestResetUnlockNoticesResurfacesEarnedMilestones(t *testing.T) {
	svc, _, _ := newTestService(t)
	svc.AddStars(7)
	svc.MarkUnlockNoticeSeen(5)

	svc.ResetUnlockNotices()
	if n := svc.PendingUnlockNotice(); n == nil || n.Threshold != 5 {
		t.Fatalf("pending after reset = %+v, want threshold 5 again", n)
	}
}
