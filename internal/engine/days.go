package engine

import (
	"regexp"
	"time"
)

// Day keys use the local calendar date, not a rolling 24h window, so
// budgets and streaks always flip at local midnight even across DST
// shifts or travel.
var dayKeyPattern = regexp.MustCompile(`^\d{4}-\d{2}-\d{2}$`)

// DayKey formats t as a local-calendar day key (YYYY-MM-DD).
func DayKey(t time.Time) string {
	return t.Format("2006-01-02")
}

// ValidDayKey reports whether s matches the strict day-key pattern.
func ValidDayKey(s string) bool {
	return dayKeyPattern.MatchString(s)
}

func (s *Service) todayKey() string {
	return DayKey(s.now())
}

func (s *Service) yesterdayKey() string {
	return DayKey(s.now().AddDate(0, 0, -1))
}
