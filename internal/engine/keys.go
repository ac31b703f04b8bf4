package engine

// KeyPrefix namespaces every persisted key so parent tooling can
// enumerate, export, and wipe the whole state space without a schema
// registry.
const KeyPrefix = "pp_"

const (
	keyTrialStartedAt = "pp_trial_started_at"
	keyTrialDays      = "pp_trial_days"
	keyTrialOverride  = "pp_trial_override_unlocked"

	keyTimeEnabled      = "pp_time_limit_enabled"
	keyTimeLimitMinutes = "pp_time_limit_minutes"
	keyTimeUsedToday    = "pp_time_used_today_seconds"
	keyTimeExtraToday   = "pp_time_extra_today_minutes"
	keyTimeDay          = "pp_time_day_key"
	keyTimeLastTick     = "pp_time_last_tick"

	keyStarsTotal   = "pp_stars_total"
	keyStreakCount  = "pp_streak_count"
	keyLastPlayDate = "pp_last_play_date"
	keyPlaysCount   = "pp_plays_count"

	keyLastUnlockNotified = "pp_last_unlock_notified"

	keyMetricsGlobal = "pp_metrics_global"
	keyMetricsGames  = "pp_metrics_games"
	keyMetricsDay    = "pp_metrics_day"

	// Soft session flags consumed by collaborators (parent panel,
	// play gate, debug tooling), not by the core ledgers.
	keyPIN             = "pp_pin"
	keyExitRequiresPIN = "pp_exit_requires_pin"
	keyDebugUnlocked   = "pp_debug_unlocked"
	keyUnlocked        = "pp_unlocked"
)
