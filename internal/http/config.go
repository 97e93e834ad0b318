package http

import (
	"time"

	"github.com/ysfyavuzz/DostAnne-sub001/internal/database"
	"github.com/ysfyavuzz/DostAnne-sub001/internal/reminders"
)

// RouterConfig contains all dependencies and configuration needed
// to create the HTTP router. This replaces a long parameter list
// in NewRouter for better maintainability.
type RouterConfig struct {
	// Core dependencies
	Database *database.Database

	// Stores
	ProfileStore      ProfileStore
	ActivityStore     ActivityStore
	HealthRecordStore HealthRecordStore
	GrowthStore       GrowthStore
	PreferenceStore   PreferenceStore
	SleepStore        SleepSessionStore
	FeedingStore      FeedingSessionStore

	// Aggregation
	StatsProvider StatsProvider

	// Reminder scheduling (optional)
	ReminderScheduler       reminders.Scheduler
	FeedingReminderInterval time.Duration

	// Application info
	Version string
}
