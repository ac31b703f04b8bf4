package engine

import (
	"errors"
	"regexp"
)

// Soft session layer: the parental PIN, the exit gate, the debug
// unlock, and the free-play soft gate. These are deterrents for a
// child on a shared device, not a security boundary — anyone who can
// open the store file can edit them.

// FreePlayLimit is the number of play-page visits allowed before the
// soft gate blocks until the shelf is unlocked.
const FreePlayLimit = 10

var pinPattern = regexp.MustCompile(`^\d{4}$`)

var (
	// ErrPINFormat rejects anything but exactly 4 digits.
	ErrPINFormat = errors.New("PIN must be exactly 4 digits")

	// ErrPINNotSet is returned when verifying before a PIN exists.
	ErrPINNotSet = errors.New("no PIN is set")

	// ErrPINMismatch is a user-facing validation failure, surfaced as
	// a message; it is not a ledger error.
	ErrPINMismatch = errors.New("incorrect PIN")
)

// SetPIN stores the parental PIN after validating its format.
func (s *Service) SetPIN(pin string) error {
	if !pinPattern.MatchString(pin) {
		return ErrPINFormat
	}
	s.store.Set(keyPIN, pin)
	return nil
}

// HasPIN reports whether a well-formed PIN is stored. A malformed
// stored value counts as unset.
func (s *Service) HasPIN() bool {
	return pinPattern.MatchString(s.store.Get(keyPIN, ""))
}

// VerifyPIN checks pin against the stored value.
func (s *Service) VerifyPIN(pin string) error {
	stored := s.store.Get(keyPIN, "")
	if !pinPattern.MatchString(stored) {
		return ErrPINNotSet
	}
	if pin != stored {
		return ErrPINMismatch
	}
	return nil
}

// ClearPIN removes the stored PIN.
func (s *Service) ClearPIN() {
	s.store.Remove(keyPIN)
}

func (s *Service) ExitRequiresPIN() bool {
	return s.readBool(keyExitRequiresPIN)
}

func (s *Service) SetExitRequiresPIN(v bool) {
	s.writeBool(keyExitRequiresPIN, v)
}

func (s *Service) DebugUnlocked() bool {
	return s.readBool(keyDebugUnlocked)
}

func (s *Service) SetDebugUnlocked(v bool) {
	s.writeBool(keyDebugUnlocked, v)
}

// ShelfUnlocked reports whether the shelf was unlocked (purchase or
// parent action); an unlocked shelf bypasses the free-play gate.
func (s *Service) ShelfUnlocked() bool {
	return s.readBool(keyUnlocked)
}

func (s *Service) SetShelfUnlocked(v bool) {
	s.writeBool(keyUnlocked, v)
}

// PlayGateStatus is the soft free-play gate snapshot.
type PlayGateStatus struct {
	Blocked   bool
	PlaysUsed int
	Limit     int
}

// PlayGate evaluates the free-play soft gate.
func (s *Service) PlayGate() PlayGateStatus {
	plays := s.PlaysCount()
	return PlayGateStatus{
		Blocked:   !s.ShelfUnlocked() && plays >= FreePlayLimit,
		PlaysUsed: plays,
		Limit:     FreePlayLimit,
	}
}

// RecordPlayVisit counts a visit to the play surface toward the free
// allowance. Visits past the limit, or on an unlocked shelf, are not
// counted.
func (s *Service) RecordPlayVisit() PlayGateStatus {
	if !s.ShelfUnlocked() && s.PlaysCount() < FreePlayLimit {
		s.IncrementPlay()
	}
	return s.PlayGate()
}
