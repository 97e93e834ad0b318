package reminders

import (
	"context"
	"fmt"
	"time"

	"github.com/mikestefanello/backlite"
)

// DailySummaryTask carries a day's totals to the user as an evening digest.
type DailySummaryTask struct {
	ProfileID            uint   `json:"profile_id"`
	ProfileName          string `json:"profile_name"`
	FeedingCount         int    `json:"feeding_count"`
	SleepDurationMinutes int    `json:"sleep_duration_minutes"`
	DiaperChanges        int    `json:"diaper_changes"`
	PlayMinutes          int    `json:"play_minutes"`
}

// Config returns the queue configuration for daily summaries.
func (t DailySummaryTask) Config() backlite.QueueConfig {
	return backlite.QueueConfig{
		Name:        "daily_summary",
		MaxAttempts: 2,
		Backoff:     time.Minute,
		Timeout:     time.Minute,
		Retention: &backlite.Retention{
			Duration:   48 * time.Hour,
			OnlyFailed: false,
			Data:       &backlite.RetainData{OnlyFailed: true},
		},
	}
}

// DailySummaryProcessor creates a processor function for DailySummaryTask.
func DailySummaryProcessor(notifier Notifier) backlite.QueueProcessor[DailySummaryTask] {
	return func(ctx context.Context, task DailySummaryTask) error {
		if notifier == nil {
			return fmt.Errorf("notifier not configured")
		}

		title := fmt.Sprintf("%s's day", task.ProfileName)
		body := fmt.Sprintf("%d feedings, %d min sleep, %d diaper changes, %d min play",
			task.FeedingCount, task.SleepDurationMinutes, task.DiaperChanges, task.PlayMinutes)
		if err := notifier.Notify("daily_summary", title, body); err != nil {
			return fmt.Errorf("deliver daily summary for profile %d: %w", task.ProfileID, err)
		}
		return nil
	}
}

// NewDailySummaryQueue creates a backlite queue for daily summaries.
func NewDailySummaryQueue(notifier Notifier) backlite.Queue {
	return backlite.NewQueue(DailySummaryProcessor(notifier))
}
