package reminders

import (
	"context"
	"fmt"
	"time"

	"github.com/mikestefanello/backlite"
)

// FeedingReminderTask fires when the next feeding is due for a profile.
type FeedingReminderTask struct {
	ProfileID   uint   `json:"profile_id"`
	ProfileName string `json:"profile_name"`
}

// Config returns the queue configuration for feeding reminders.
func (t FeedingReminderTask) Config() backlite.QueueConfig {
	return backlite.QueueConfig{
		Name:        "feeding_reminder",
		MaxAttempts: 3,
		Backoff:     30 * time.Second,
		Timeout:     time.Minute,
		Retention: &backlite.Retention{
			Duration:   24 * time.Hour,
			OnlyFailed: false,
			Data:       &backlite.RetainData{OnlyFailed: true},
		},
	}
}

// FeedingReminderProcessor creates a processor function for FeedingReminderTask.
func FeedingReminderProcessor(notifier Notifier) backlite.QueueProcessor[FeedingReminderTask] {
	return func(ctx context.Context, task FeedingReminderTask) error {
		if notifier == nil {
			return fmt.Errorf("notifier not configured")
		}

		title := fmt.Sprintf("Time to feed %s", task.ProfileName)
		if err := notifier.Notify("feeding", title, "The last feeding was a while ago."); err != nil {
			return fmt.Errorf("deliver feeding reminder for profile %d: %w", task.ProfileID, err)
		}
		return nil
	}
}

// NewFeedingReminderQueue creates a backlite queue for feeding reminders.
func NewFeedingReminderQueue(notifier Notifier) backlite.Queue {
	return backlite.NewQueue(FeedingReminderProcessor(notifier))
}
