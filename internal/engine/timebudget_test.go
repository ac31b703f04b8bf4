package engine

import (
	"testing"
	"time"
)

func TestTimeSettingsClampAndDefaults(t *testing.T) {
	svc, st, _ := newTestService(t)

	if got := svc.LoadTimeSettings(); got.Enabled || got.LimitMinutes != DefaultLimitMinutes {
		t.Fatalf("fresh settings = %+v", got)
	}

	svc.SaveTimeSettings(true, 0)
	if got := svc.LoadTimeSettings().LimitMinutes; got != MinLimitMinutes {
		t.Fatalf("limit 0 stored as %d, want clamp to %d", got, MinLimitMinutes)
	}
	svc.SaveTimeSettings(true, 9999)
	if got := svc.LoadTimeSettings().LimitMinutes; got != MaxLimitMinutes {
		t.Fatalf("limit 9999 stored as %d, want clamp to %d", got, MaxLimitMinutes)
	}

	st.Set(keyTimeLimitMinutes, "garbage")
	if got := svc.LoadTimeSettings().LimitMinutes; got != DefaultLimitMinutes {
		t.Fatalf("corrupt limit read as %d, want default %d", got, DefaultLimitMinutes)
	}
}

func TestBudgetChargesElapsedTime(t *testing.T) {
	svc, _, clk := newTestService(t)
	svc.SaveTimeSettings(true, 30)
	svc.TickBudget()

	clk.Advance(90 * time.Second)
	svc.TickBudget()

	got := svc.TimeSnapshot()
	if got.UsedSeconds != 90 {
		t.Fatalf("UsedSeconds=%d after 90s, want 90", got.UsedSeconds)
	}
	if want := 30*60 - 90; got.RemainingSeconds != want {
		t.Fatalf("RemainingSeconds=%d, want %d", got.RemainingSeconds, want)
	}
}

func TestBudgetDisabledDoesNotCharge(t *testing.T) {
	svc, _, clk := newTestService(t)
	svc.SaveTimeSettings(false, 30)
	svc.TickBudget()

	clk.Advance(10 * time.Minute)
	svc.TickBudget()

	if got := svc.TimeSnapshot().UsedSeconds; got != 0 {
		t.Fatalf("UsedSeconds=%d while disabled, want 0", got)
	}
}

func TestBudgetEnableAfterIdleDoesNotBackCharge(t *testing.T) {
	svc, _, clk := newTestService(t)
	svc.SaveTimeSettings(false, 30)
	svc.TickBudget()

	// Idle while disabled, then flip on. The idle stretch must not be
	// charged retroactively because the tick was re-stamped throughout.
	clk.Advance(20 * time.Minute)
	svc.TickBudget()
	svc.SaveTimeSettings(true, 30)
	svc.TickBudget()

	clk.Advance(5 * time.Second)
	svc.TickBudget()

	if got := svc.TimeSnapshot().UsedSeconds; got != 5 {
		t.Fatalf("UsedSeconds=%d, want 5 (only post-enable time)", got)
	}
}

func TestExtraMinutesExtendTodayOnly(t *testing.T) {
	svc, _, clk := newTestService(t)
	svc.SaveTimeSettings(true, 30)

	svc.AddExtraMinutes(10)
	if got := svc.TimeSnapshot().LimitSeconds; got != 40*60 {
		t.Fatalf("LimitSeconds=%d after +10 bonus, want %d", got, 40*60)
	}

	svc.AddExtraMinutes(0)
	svc.AddExtraMinutes(-5)
	if got := svc.TimeSnapshot().LimitSeconds; got != 40*60 {
		t.Fatalf("non-positive grants changed limit: %d", got)
	}

	clk.AdvanceDays(1)
	if got := svc.TimeSnapshot().LimitSeconds; got != 30*60 {
		t.Fatalf("LimitSeconds=%d after rollover, want base %d", got, 30*60)
	}
}

func TestBudgetDrainsToZeroThenRollsOver(t *testing.T) {
	svc, _, clk := newTestService(t)
	svc.SaveTimeSettings(true, 30)
	svc.AddExtraMinutes(10)
	svc.TickBudget()

	// Drain the full 40 minutes.
	clk.Advance(40 * time.Minute)
	svc.TickBudget()
	got := svc.TimeSnapshot()
	if got.RemainingSeconds != 0 {
		t.Fatalf("RemainingSeconds=%d after draining, want 0", got.RemainingSeconds)
	}
	if got.UsedSeconds != 2400 {
		t.Fatalf("UsedSeconds=%d, want 2400", got.UsedSeconds)
	}

	// Overshoot never reports negative remaining.
	clk.Advance(time.Minute)
	svc.TickBudget()
	if got := svc.TimeSnapshot().RemainingSeconds; got != 0 {
		t.Fatalf("RemainingSeconds=%d after overshoot, want 0", got)
	}

	clk.AdvanceDays(1)
	got = svc.TimeSnapshot()
	if got.UsedSeconds != 0 || got.RemainingSeconds != 30*60 {
		t.Fatalf("post-rollover state = %+v, want fresh 30min day", got)
	}
}

func TestResetTodayUsage(t *testing.T) {
	svc, _, clk := newTestService(t)
	svc.SaveTimeSettings(true, 30)
	svc.TickBudget()
	clk.Advance(10 * time.Minute)
	svc.TickBudget()
	svc.AddExtraMinutes(15)

	svc.ResetTodayUsage()
	got := svc.TimeSnapshot()
	if got.UsedSeconds != 0 {
		t.Fatalf("UsedSeconds=%d after reset, want 0", got.UsedSeconds)
	}
	if got.LimitSeconds != 30*60 {
		t.Fatalf("LimitSeconds=%d after reset, want bonus cleared (%d)", got.LimitSeconds, 30*60)
	}

	// The tick was re-stamped, so no back-charge on the next step.
	clk.Advance(3 * time.Second)
	svc.TickBudget()
	if got := svc.TimeSnapshot().UsedSeconds; got != 3 {
		t.Fatalf("UsedSeconds=%d after reset+3s, want 3", got)
	}
}

func TestTickerStopFlushesFinalDelta(t *testing.T) {
	svc, _, clk := newTestService(t)
	svc.SaveTimeSettings(true, 30)

	stop := svc.StartTicker()
	clk.Advance(5 * time.Second)
	stop()
	stop() // second call is a no-op

	if got := svc.TimeSnapshot().UsedSeconds; got != 5 {
		t.Fatalf("UsedSeconds=%d after stop, want 5 from the final flush", got)
	}
}
