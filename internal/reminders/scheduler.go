package reminders

import (
	"fmt"
	"time"
)

// Scheduler is the boundary the rest of the app talks to: schedule a reminder
// for a point in time, or cancel one that has not fired yet.
type Scheduler interface {
	ScheduleFeedingReminder(profileID uint, profileName string, at time.Time) (string, error)
	ScheduleDailySummary(task DailySummaryTask) (string, error)
	Cancel(id string) error
}

// QueueScheduler schedules reminders on the backlite queue.
type QueueScheduler struct {
	client *Client
}

// NewQueueScheduler creates a scheduler backed by the reminder queue.
func NewQueueScheduler(client *Client) *QueueScheduler {
	return &QueueScheduler{client: client}
}

// ScheduleFeedingReminder enqueues a feeding reminder held until `at`.
func (s *QueueScheduler) ScheduleFeedingReminder(profileID uint, profileName string, at time.Time) (string, error) {
	ids, err := s.client.Add(FeedingReminderTask{
		ProfileID:   profileID,
		ProfileName: profileName,
	}).At(at).Save()
	if err != nil {
		return "", fmt.Errorf("schedule feeding reminder: %w", err)
	}
	return ids[0], nil
}

// ScheduleDailySummary enqueues a daily summary for immediate delivery.
func (s *QueueScheduler) ScheduleDailySummary(task DailySummaryTask) (string, error) {
	ids, err := s.client.Add(task).Save()
	if err != nil {
		return "", fmt.Errorf("schedule daily summary: %w", err)
	}
	return ids[0], nil
}

// Cancel removes a scheduled reminder that has not been claimed by a worker
// yet. backlite has no cancellation API, so the pending row is deleted
// directly; cancelling an already-delivered or unknown id is a no-op.
func (s *QueueScheduler) Cancel(id string) error {
	_, err := s.client.db.Exec(
		`DELETE FROM backlite_tasks WHERE id = ? AND claimed_at IS NULL`, id)
	if err != nil {
		return fmt.Errorf("cancel reminder %s: %w", id, err)
	}
	return nil
}
