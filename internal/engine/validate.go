package engine

import (
	"math"
	"strconv"
	"strings"
)

// Self-healing typed reads. Every numeric field is validated on every
// read; non-finite, negative, or malformed values are coerced to the
// fallback and the corrected value is written back immediately, so a
// corrupt store converges to a sane one as a side effect of use.

func (s *Service) readInt(key string, fallback int64) int64 {
	raw := s.store.Get(key, "")
	if raw == "" {
		return fallback
	}

	f, err := strconv.ParseFloat(strings.TrimSpace(raw), 64)
	if err != nil || math.IsNaN(f) || math.IsInf(f, 0) || f < 0 {
		s.writeInt(key, fallback)
		return fallback
	}
	return int64(math.Floor(f))
}

func (s *Service) writeInt(key string, v int64) {
	if v < 0 {
		v = 0
	}
	s.store.Set(key, strconv.FormatInt(v, 10))
}

func (s *Service) readBool(key string) bool {
	return s.store.Get(key, "") == "true"
}

func (s *Service) writeBool(key string, v bool) {
	s.store.Set(key, strconv.FormatBool(v))
}

// readDayKey returns the stored day key at key, discarding anything
// that does not match the strict calendar pattern.
func (s *Service) readDayKey(key string) string {
	raw := s.store.Get(key, "")
	if raw == "" {
		return ""
	}
	if !ValidDayKey(raw) {
		s.store.Remove(key)
		return ""
	}
	return raw
}
