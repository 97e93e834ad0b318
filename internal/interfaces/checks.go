package interfaces

// This file contains compile-time interface implementation checks.
// These ensure that concrete types satisfy their interfaces at compile time,
// catching missing methods before runtime.
//
// To verify all checks pass: go build ./internal/interfaces/...

import (
	"github.com/ysfyavuzz/DostAnne-sub001/internal/database"
	"github.com/ysfyavuzz/DostAnne-sub001/internal/database/activities"
	"github.com/ysfyavuzz/DostAnne-sub001/internal/database/growth"
	"github.com/ysfyavuzz/DostAnne-sub001/internal/database/health"
	"github.com/ysfyavuzz/DostAnne-sub001/internal/database/preferences"
	"github.com/ysfyavuzz/DostAnne-sub001/internal/database/profiles"
	"github.com/ysfyavuzz/DostAnne-sub001/internal/database/sessions"
	"github.com/ysfyavuzz/DostAnne-sub001/internal/database/stats"
	"github.com/ysfyavuzz/DostAnne-sub001/internal/http"
	"github.com/ysfyavuzz/DostAnne-sub001/internal/reminders"
)

// =============================================================================
// Data Access Layer
// =============================================================================

// ProfileStore implementations
var _ http.ProfileStore = (*profiles.Repository)(nil)

// ActivityStore implementations
var _ http.ActivityStore = (*activities.Repository)(nil)

// HealthRecordStore implementations
var _ http.HealthRecordStore = (*health.Repository)(nil)

// GrowthStore implementations
var _ http.GrowthStore = (*growth.Repository)(nil)

// PreferenceStore implementations
var _ http.PreferenceStore = (*preferences.Repository)(nil)

// Session store implementations
var _ http.SleepSessionStore = (*sessions.SleepRepository)(nil)
var _ http.FeedingSessionStore = (*sessions.FeedingRepository)(nil)

// =============================================================================
// Aggregation
// =============================================================================

// StatsProvider implementations
var _ http.StatsProvider = (*stats.Aggregator)(nil)

// =============================================================================
// Reminders
// =============================================================================

// Scheduler implementations
var _ reminders.Scheduler = (*reminders.QueueScheduler)(nil)

// Notifier implementations
var _ reminders.Notifier = (*reminders.LogNotifier)(nil)

// =============================================================================
// Administrative
// =============================================================================

// DataResetter implementations
var _ http.DataResetter = (*database.Database)(nil)
