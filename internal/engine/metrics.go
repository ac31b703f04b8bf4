package engine

import (
	"encoding/json"
	"math"

	"github.com/flowsyncsolutions/pixelpress/internal/storage"
)

// The metrics ledger persists three independent blobs: global
// counters, a per-game map, and a per-day map. Each is deep-validated
// field by field on every load; any single malformed record causes the
// *entire* containing blob to be regenerated empty. Coarse repair is
// deliberate: availability over partial recovery.

type MetricsGlobal struct {
	FirstSeenAt      int64 `json:"firstSeenAt"`
	Sessions         int64 `json:"sessions"`
	LastSeenAt       int64 `json:"lastSeenAt"`
	TotalLaunches    int64 `json:"totalGameLaunches"`
	TotalPlaySeconds int64 `json:"totalPlaySeconds"`
}

type MetricsGameEntry struct {
	Launches     int64  `json:"launches"`
	Completes    int64  `json:"completes"`
	Best         *int64 `json:"best,omitempty"`
	LastPlayedAt int64  `json:"lastPlayedAt"`
	PlaySeconds  int64  `json:"playSeconds"`
}

type MetricsDayEntry struct {
	Sessions    int64 `json:"sessions"`
	Launches    int64 `json:"launches"`
	PlaySeconds int64 `json:"playSeconds"`
}

type MetricsSnapshot struct {
	Global MetricsGlobal               `json:"global"`
	Games  map[string]MetricsGameEntry `json:"games"`
	Day    map[string]MetricsDayEntry  `json:"day"`
}

func defaultMetricsSnapshot() MetricsSnapshot {
	return MetricsSnapshot{
		Games: map[string]MetricsGameEntry{},
		Day:   map[string]MetricsDayEntry{},
	}
}

func asObject(v any) (map[string]any, bool) {
	m, ok := v.(map[string]any)
	return m, ok
}

// nonNegInt extracts a finite, non-negative numeric field, flooring to
// an integer. A missing field is as malformed as a negative one.
func nonNegInt(obj map[string]any, field string) (int64, bool) {
	v, ok := obj[field]
	if !ok {
		return 0, false
	}
	f, ok := v.(float64)
	if !ok || math.IsNaN(f) || math.IsInf(f, 0) || f < 0 {
		return 0, false
	}
	return int64(math.Floor(f)), true
}

func parseMetricsGlobal(v any) (MetricsGlobal, bool) {
	obj, ok := asObject(v)
	if !ok {
		return MetricsGlobal{}, false
	}

	var g MetricsGlobal
	if g.FirstSeenAt, ok = nonNegInt(obj, "firstSeenAt"); !ok {
		return MetricsGlobal{}, false
	}
	if g.Sessions, ok = nonNegInt(obj, "sessions"); !ok {
		return MetricsGlobal{}, false
	}
	if g.LastSeenAt, ok = nonNegInt(obj, "lastSeenAt"); !ok {
		return MetricsGlobal{}, false
	}
	if g.TotalLaunches, ok = nonNegInt(obj, "totalGameLaunches"); !ok {
		return MetricsGlobal{}, false
	}
	if g.TotalPlaySeconds, ok = nonNegInt(obj, "totalPlaySeconds"); !ok {
		return MetricsGlobal{}, false
	}
	return g, true
}

func parseMetricsGameEntry(v any) (MetricsGameEntry, bool) {
	obj, ok := asObject(v)
	if !ok {
		return MetricsGameEntry{}, false
	}

	var e MetricsGameEntry
	if e.Launches, ok = nonNegInt(obj, "launches"); !ok {
		return MetricsGameEntry{}, false
	}
	if e.Completes, ok = nonNegInt(obj, "completes"); !ok {
		return MetricsGameEntry{}, false
	}
	if e.LastPlayedAt, ok = nonNegInt(obj, "lastPlayedAt"); !ok {
		return MetricsGameEntry{}, false
	}
	if e.PlaySeconds, ok = nonNegInt(obj, "playSeconds"); !ok {
		return MetricsGameEntry{}, false
	}
	if _, present := obj["best"]; present {
		best, ok := nonNegInt(obj, "best")
		if !ok {
			return MetricsGameEntry{}, false
		}
		e.Best = &best
	}
	return e, true
}

func parseMetricsGames(v any) (map[string]MetricsGameEntry, bool) {
	obj, ok := asObject(v)
	if !ok {
		return nil, false
	}

	out := map[string]MetricsGameEntry{}
	for slug, raw := range obj {
		if slug == "" {
			return nil, false
		}
		e, ok := parseMetricsGameEntry(raw)
		if !ok {
			return nil, false
		}
		out[slug] = e
	}
	return out, true
}

func parseMetricsDayEntry(v any) (MetricsDayEntry, bool) {
	obj, ok := asObject(v)
	if !ok {
		return MetricsDayEntry{}, false
	}

	var e MetricsDayEntry
	if e.Sessions, ok = nonNegInt(obj, "sessions"); !ok {
		return MetricsDayEntry{}, false
	}
	if e.Launches, ok = nonNegInt(obj, "launches"); !ok {
		return MetricsDayEntry{}, false
	}
	if e.PlaySeconds, ok = nonNegInt(obj, "playSeconds"); !ok {
		return MetricsDayEntry{}, false
	}
	return e, true
}

func parseMetricsDay(v any) (map[string]MetricsDayEntry, bool) {
	obj, ok := asObject(v)
	if !ok {
		return nil, false
	}

	out := map[string]MetricsDayEntry{}
	for dayKey, raw := range obj {
		if !ValidDayKey(dayKey) {
			return nil, false
		}
		e, ok := parseMetricsDayEntry(raw)
		if !ok {
			return nil, false
		}
		out[dayKey] = e
	}
	return out, true
}

// readMetricsRaw loads one blob as untyped JSON so field presence can
// be checked; a typed decode would silently zero-fill missing fields.
func (s *Service) readMetricsRaw(key string) (any, bool) {
	raw := s.store.Get(key, "")
	if raw == "" {
		return nil, false
	}
	var v any
	if err := json.Unmarshal([]byte(raw), &v); err != nil {
		return nil, false
	}
	return v, true
}

func (s *Service) readMetricsAll() MetricsSnapshot {
	snap := defaultMetricsSnapshot()

	if v, ok := s.readMetricsRaw(keyMetricsGlobal); ok {
		if g, ok := parseMetricsGlobal(v); ok {
			snap.Global = g
		} else {
			storage.SetJSON(s.store, keyMetricsGlobal, snap.Global)
		}
	} else {
		storage.SetJSON(s.store, keyMetricsGlobal, snap.Global)
	}

	if v, ok := s.readMetricsRaw(keyMetricsGames); ok {
		if games, ok := parseMetricsGames(v); ok {
			snap.Games = games
		} else {
			storage.SetJSON(s.store, keyMetricsGames, snap.Games)
		}
	} else {
		storage.SetJSON(s.store, keyMetricsGames, snap.Games)
	}

	if v, ok := s.readMetricsRaw(keyMetricsDay); ok {
		if day, ok := parseMetricsDay(v); ok {
			snap.Day = day
		} else {
			storage.SetJSON(s.store, keyMetricsDay, snap.Day)
		}
	} else {
		storage.SetJSON(s.store, keyMetricsDay, snap.Day)
	}

	return snap
}

func (s *Service) persistMetrics(snap MetricsSnapshot) {
	storage.SetJSON(s.store, keyMetricsGlobal, snap.Global)
	storage.SetJSON(s.store, keyMetricsGames, snap.Games)
	storage.SetJSON(s.store, keyMetricsDay, snap.Day)
}

func (snap *MetricsSnapshot) gameEntry(slug string, now int64) MetricsGameEntry {
	e, ok := snap.Games[slug]
	if !ok {
		e = MetricsGameEntry{LastPlayedAt: now}
	}
	return e
}

func (snap *MetricsSnapshot) touchGlobal(now int64) {
	if snap.Global.FirstSeenAt == 0 {
		snap.Global.FirstSeenAt = now
	}
	snap.Global.LastSeenAt = now
}

// SessionStart records one application session, globally and for
// today's calendar day.
func (s *Service) SessionStart() {
	now := s.nowMs()
	snap := s.readMetricsAll()

	snap.touchGlobal(now)
	snap.Global.Sessions++

	day := snap.Day[s.todayKey()]
	day.Sessions++
	snap.Day[s.todayKey()] = day

	s.persistMetrics(snap)
}

// GameLaunch records a launch of the given game. Empty slugs are
// silent no-ops.
func (s *Service) GameLaunch(slug string) {
	if slug == "" {
		return
	}
	now := s.nowMs()
	snap := s.readMetricsAll()

	snap.touchGlobal(now)
	snap.Global.TotalLaunches++

	e := snap.gameEntry(slug, now)
	e.Launches++
	e.LastPlayedAt = now
	snap.Games[slug] = e

	day := snap.Day[s.todayKey()]
	day.Launches++
	snap.Day[s.todayKey()] = day

	s.persistMetrics(snap)
}

// GameComplete records a completed round of the given game.
func (s *Service) GameComplete(slug string) {
	if slug == "" {
		return
	}
	now := s.nowMs()
	snap := s.readMetricsAll()

	snap.touchGlobal(now)

	e := snap.gameEntry(slug, now)
	e.Completes++
	e.LastPlayedAt = now
	snap.Games[slug] = e

	s.persistMetrics(snap)
}

// AddPlaySeconds accumulates play time for the given game, globally,
// and for today. Seconds must floor to a positive integer or the call
// is a no-op.
func (s *Service) AddPlaySeconds(slug string, seconds int) {
	if slug == "" || seconds <= 0 {
		return
	}
	now := s.nowMs()
	snap := s.readMetricsAll()

	snap.touchGlobal(now)
	snap.Global.TotalPlaySeconds += int64(seconds)

	e := snap.gameEntry(slug, now)
	e.PlaySeconds += int64(seconds)
	e.LastPlayedAt = now
	snap.Games[slug] = e

	day := snap.Day[s.todayKey()]
	day.PlaySeconds += int64(seconds)
	snap.Day[s.todayKey()] = day

	s.persistMetrics(snap)
}

// SetBest overwrites the game's best score unconditionally. "Better"
// is game-specific (a reaction time improves downward, a high score
// upward), so the caller compares against the previous value before
// calling; the ledger does not decide.
func (s *Service) SetBest(slug string, value int) {
	if slug == "" || value <= 0 {
		return
	}
	now := s.nowMs()
	snap := s.readMetricsAll()

	snap.touchGlobal(now)

	e := snap.gameEntry(slug, now)
	best := int64(value)
	e.Best = &best
	e.LastPlayedAt = now
	snap.Games[slug] = e

	s.persistMetrics(snap)
}

// MetricsAll returns the full validated snapshot, repairing any
// malformed blob as a side effect.
func (s *Service) MetricsAll() MetricsSnapshot {
	return s.readMetricsAll()
}

// MetricsReset zeroes all three blobs.
func (s *Service) MetricsReset() {
	s.persistMetrics(defaultMetricsSnapshot())
}
