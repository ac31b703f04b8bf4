package engine

import (
	"time"

	"github.com/flowsyncsolutions/pixelpress/internal/storage"
)

// Service bundles every ledger over one shared store. All derived
// values (trial status, time remaining, unlock snapshot) are
// recomputed from the store on each call rather than cached: another
// process may have written between any two calls, so in-memory state
// is never trusted across more than one synchronous operation.
type Service struct {
	store storage.Store
	now   func() time.Time
}

type Option func(*Service)

// WithNow injects the wall clock. Tests use it to drive trial expiry,
// day rollover, and ticker accounting deterministically.
func WithNow(fn func() time.Time) Option {
	return func(s *Service) { s.now = fn }
}

func NewService(st storage.Store, opts ...Option) *Service {
	s := &Service{
		store: st,
		now:   time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Store exposes the underlying port for collaborators that watch for
// external changes or enumerate the key space (export tooling).
func (s *Service) Store() storage.Store { return s.store }

func (s *Service) nowMs() int64 {
	return s.now().UnixMilli()
}
