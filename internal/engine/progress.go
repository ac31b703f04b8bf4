package engine

// StarsTotal returns the accumulated star currency.
func (s *Service) StarsTotal() int {
	return int(s.readInt(keyStarsTotal, 0))
}

// AddStars accumulates star currency. Amounts <= 0 are silent no-ops;
// the total only ever grows.
func (s *Service) AddStars(amount int) {
	if amount <= 0 {
		return
	}
	s.writeInt(keyStarsTotal, s.readInt(keyStarsTotal, 0)+int64(amount))
}

// Streak returns the count of consecutive local-calendar days with at
// least one recorded play.
func (s *Service) Streak() int {
	return int(s.readInt(keyStreakCount, 0))
}

// LastPlayedDate returns the day key of the most recent recorded play,
// or "" when none is recorded.
func (s *Service) LastPlayedDate() string {
	return s.readDayKey(keyLastPlayDate)
}

// MarkPlayedToday records a play for today's local date. It is
// idempotent per calendar day: the first call on a given date bumps
// the streak (continues when the last play was exactly yesterday,
// otherwise restarts at 1) and stamps today; later calls that day do
// nothing. Comparison is by calendar subtraction, not a 24h window, so
// playing late one night and early the next morning still continues
// the streak.
func (s *Service) MarkPlayedToday() {
	today := s.todayKey()
	last := s.readDayKey(keyLastPlayDate)
	if last == today {
		return
	}

	nextStreak := int64(1)
	if last == s.yesterdayKey() {
		nextStreak = s.readInt(keyStreakCount, 0) + 1
	}

	s.writeInt(keyStreakCount, nextStreak)
	s.store.Set(keyLastPlayDate, today)
}

// PlaysCount returns the free-play visit counter used by the soft gate.
func (s *Service) PlaysCount() int {
	return int(s.readInt(keyPlaysCount, 0))
}

// IncrementPlay bumps the free-play counter and returns the new value.
func (s *Service) IncrementPlay() int {
	next := s.readInt(keyPlaysCount, 0) + 1
	s.writeInt(keyPlaysCount, next)
	return int(next)
}

// EnsureProgressDefaults normalizes the three progress fields in
// place, materializing zeros for anything missing or malformed.
func (s *Service) EnsureProgressDefaults() {
	s.writeInt(keyStarsTotal, s.readInt(keyStarsTotal, 0))
	s.writeInt(keyStreakCount, s.readInt(keyStreakCount, 0))
	if last := s.readDayKey(keyLastPlayDate); last != "" {
		s.store.Set(keyLastPlayDate, last)
	}
}

// ResetProgress zeroes stars, streak, plays, and the last-played date.
func (s *Service) ResetProgress() {
	s.writeInt(keyStarsTotal, 0)
	s.writeInt(keyStreakCount, 0)
	s.writeInt(keyPlaysCount, 0)
	s.store.Remove(keyLastPlayDate)
}

// hashSeed derives a 32-bit FNV-1a hash of the day key. Not
// cryptographic; it only needs to spread nearby dates apart.
func hashSeed(input string) uint32 {
	hash := uint32(2166136261)
	for i := 0; i < len(input); i++ {
		hash ^= uint32(input[i])
		hash *= 16777619
	}
	return hash
}

// DailySeededPick returns up to count items in a deterministic
// pseudo-random order seeded from dateKey. The same date key always
// yields the same order for the same input ordering, so every process
// agrees on "today's featured items" with nothing stored and nothing
// coordinated. The permutation is a Fisher-Yates walk driven by a
// 32-bit LCG.
func DailySeededPick[T any](items []T, count int, dateKey string) []T {
	if len(items) == 0 || count <= 0 {
		return nil
	}

	shuffled := make([]T, len(items))
	copy(shuffled, items)

	state := hashSeed(dateKey)
	if state == 0 {
		state = 1
	}
	for i := len(shuffled) - 1; i > 0; i-- {
		state = state*1664525 + 1013904223
		j := int(state % uint32(i+1))
		shuffled[i], shuffled[j] = shuffled[j], shuffled[i]
	}

	if count > len(shuffled) {
		count = len(shuffled)
	}
	return shuffled[:count]
}

// FeaturedToday picks today's featured selection from items.
func (s *Service) FeaturedToday(count int) []Game {
	return DailySeededPick(LiveGames(), count, s.todayKey())
}
