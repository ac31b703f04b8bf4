package engine

import (
	"errors"
	"testing"
)

func TestSetPINValidatesFormat(t *testing.T) {
	svc, _, _ := newTestService(t)

	for _, bad := range []string{"", "123", "12345", "abcd", "12a4", "12 4"} {
		if err := svc.SetPIN(bad); !errors.Is(err, ErrPINFormat) {
			t.Fatalf("SetPIN(%q) = %v, want ErrPINFormat", bad, err)
		}
	}
	if err := svc.SetPIN("0042"); err != nil {
		t.Fatalf("SetPIN(0042) = %v", err)
	}
	if !svc.HasPIN() {
		t.Fatalf("HasPIN false after set")
	}
}

func TestVerifyPIN(t *testing.T) {
	svc, _, _ := newTestService(t)

	if err := svc.VerifyPIN("1234"); !errors.Is(err, ErrPINNotSet) {
		t.Fatalf("verify with no PIN = %v, want ErrPINNotSet", err)
	}

	if err := svc.SetPIN("1234"); err != nil {
		t.Fatalf("SetPIN: %v", err)
	}
	if err := svc.VerifyPIN("9999"); !errors.Is(err, ErrPINMismatch) {
		t.Fatalf("wrong PIN = %v, want ErrPINMismatch", err)
	}
	if err := svc.VerifyPIN("1234"); err != nil {
		t.Fatalf("correct PIN = %v", err)
	}

	svc.ClearPIN()
	if svc.HasPIN() {
		t.Fatalf("HasPIN true after clear")
	}
}

func TestMalformedStoredPINCountsAsUnset(t *testing.T) {
	svc, st, _ := newTestService(t)
	st.Set(keyPIN, "letters")

	if svc.HasPIN() {
		t.Fatalf("malformed PIN reads as set")
	}
	if err := svc.VerifyPIN("letters"); !errors.Is(err, ErrPINNotSet) {
		t.Fatalf("verify against malformed PIN = %v, want ErrPINNotSet", err)
	}
}

func TestPlayGateBlocksAtLimit(t *testing.T) {
	svc, _, _ := newTestService(t)

	for i := 0; i < FreePlayLimit; i++ {
		got := svc.RecordPlayVisit()
		if i < FreePlayLimit-1 && got.Blocked {
			t.Fatalf("blocked after %d visits", i+1)
		}
	}
	got := svc.PlayGate()
	if !got.Blocked || got.PlaysUsed != FreePlayLimit {
		t.Fatalf("gate at limit = %+v", got)
	}

	// Visits past the limit are not counted further.
	svc.RecordPlayVisit()
	if got := svc.PlaysCount(); got != FreePlayLimit {
		t.Fatalf("plays=%d past the limit, want %d", got, FreePlayLimit)
	}
}

func TestUnlockedShelfBypassesPlayGate(t *testing.T) {
	svc, _, _ := newTestService(t)
	svc.SetShelfUnlocked(true)

	for i := 0; i < FreePlayLimit+5; i++ {
		if got := svc.RecordPlayVisit(); got.Blocked {
			t.Fatalf("unlocked shelf blocked at visit %d", i+1)
		}
	}
	if got := svc.PlaysCount(); got != 0 {
		t.Fatalf("unlocked shelf counted %d visits", got)
	}
}

func TestSessionFlags(t *testing.T) {
	svc, _, _ := newTestService(t)

	if svc.ExitRequiresPIN() || svc.DebugUnlocked() || svc.ShelfUnlocked() {
		t.Fatalf("flags default on")
	}
	svc.SetExitRequiresPIN(true)
	svc.SetDebugUnlocked(true)
	if !svc.ExitRequiresPIN() || !svc.DebugUnlocked() {
		t.Fatalf("flags did not stick")
	}
}
