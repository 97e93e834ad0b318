// Package interfaces documents the core abstractions used throughout the application.
//
// # Interface Categories
//
// The application uses several categories of interfaces:
//
// ## Data Access Interfaces
//
//   - ProfileStore: Profile management and the current-profile pointer (internal/http/profiles.go)
//   - ActivityStore: Activity event log (internal/http/activities.go)
//   - HealthRecordStore: Health history (internal/http/health_records.go)
//   - GrowthStore: Growth measurements (internal/http/growth.go)
//   - PreferenceStore: Key/value settings (internal/http/preferences.go)
//   - SleepSessionStore / FeedingSessionStore: Open/close session tracking (internal/http/sessions.go)
//
// ## Aggregation Interfaces
//
//   - StatsProvider: Per-day activity totals (internal/http/stats.go)
//
// ## Reminder Interfaces
//
//   - Scheduler: Schedule and cancel queued reminders (internal/reminders/scheduler.go)
//   - Notifier: Deliver a reminder to the user (internal/reminders/notifier.go)
//
// # Adding a New Database Domain
//
// To add a new data domain (e.g., milestones):
//
//  1. Create sub-package: internal/database/milestones/
//
//  2. Define repository:
//
//     type Repository struct { db *gorm.DB }
//
//     func NewRepository(db *gorm.DB) *Repository
//
//  3. Implement interface methods
//
//  4. Add compile-time check:
//
//     var _ MilestoneStore = (*Repository)(nil)
//
// # Adding a New Notification Transport
//
// To deliver reminders somewhere other than the process log:
//
//  1. Implement Notifier in internal/reminders/
//
//     type PushNotifier struct {
//         client *push.Client
//     }
//
//     func (n *PushNotifier) Notify(kind, title, body string) error
//
//     var _ Notifier = (*PushNotifier)(nil)
//
//  2. Pass it to the queue constructors in entrypoint.go
//
// # Compile-Time Interface Checks
//
// All implementations should include compile-time checks to ensure they satisfy
// their interfaces. This catches missing methods at compile time rather than runtime:
//
//	var _ SomeInterface = (*MyImplementation)(nil)
//
// This pattern is used throughout the codebase. See checks.go for examples.
package interfaces
