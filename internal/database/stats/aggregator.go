// Package stats implements the read-only daily aggregation queries used by
// the home screen: same-day totals and counts across activities, sleep
// sessions and feeding sessions.
package stats

import (
	"time"

	"gorm.io/gorm"

	"github.com/ysfyavuzz/DostAnne-sub001/internal/entities"
)

// DailyStats is a single calendar day's totals for one profile. Every field
// is zero when no matching rows exist.
type DailyStats struct {
	FeedingCount         int `json:"feeding_count"`
	SleepDurationMinutes int `json:"sleep_duration_minutes"`
	DiaperChanges        int `json:"diaper_changes"`
	PlayMinutes          int `json:"play_minutes"`
}

// Aggregator runs the daily statistics queries. It has no side effects and is
// safe to call before any data exists for an owner.
type Aggregator struct {
	db *gorm.DB
}

// NewAggregator creates a new statistics aggregator.
func NewAggregator(db *gorm.DB) *Aggregator {
	return &Aggregator{db: db}
}

// GetTodayStats aggregates the device-local calendar day at call time.
func (a *Aggregator) GetTodayStats(ownerID uint) (*DailyStats, error) {
	return a.GetStatsForDay(ownerID, time.Now())
}

// GetStatsForDay aggregates the calendar day containing `day`, in that time's
// location. The window is [midnight, next midnight) over each row's start
// time, not a rolling 24 hours. Four independent aggregations:
//
//   - FeedingCount: feeding sessions started that day
//   - SleepDurationMinutes: summed duration of closed sleep sessions; open
//     sessions contribute 0 until closed
//   - DiaperChanges: diaper activities
//   - PlayMinutes: summed duration of play activities
func (a *Aggregator) GetStatsForDay(ownerID uint, day time.Time) (*DailyStats, error) {
	dayStart := time.Date(day.Year(), day.Month(), day.Day(), 0, 0, 0, 0, day.Location())
	dayEnd := dayStart.AddDate(0, 0, 1)

	result := &DailyStats{}

	var feedingCount int64
	err := a.db.Model(&entities.FeedingSession{}).
		Where("profile_id = ? AND start_time >= ? AND start_time < ?", ownerID, dayStart, dayEnd).
		Count(&feedingCount).Error
	if err != nil {
		return nil, err
	}
	result.FeedingCount = int(feedingCount)

	err = a.db.Raw(`
		SELECT COALESCE(SUM(duration_minutes), 0)
		FROM sleep_sessions
		WHERE profile_id = ? AND end_time IS NOT NULL AND start_time >= ? AND start_time < ?`,
		ownerID, dayStart, dayEnd).Scan(&result.SleepDurationMinutes).Error
	if err != nil {
		return nil, err
	}

	var diaperCount int64
	err = a.db.Model(&entities.Activity{}).
		Where("profile_id = ? AND type = ? AND start_time >= ? AND start_time < ?",
			ownerID, entities.ActivityTypeDiaper, dayStart, dayEnd).
		Count(&diaperCount).Error
	if err != nil {
		return nil, err
	}
	result.DiaperChanges = int(diaperCount)

	err = a.db.Raw(`
		SELECT COALESCE(SUM(duration_minutes), 0)
		FROM activities
		WHERE profile_id = ? AND type = ? AND start_time >= ? AND start_time < ?`,
		ownerID, entities.ActivityTypePlay, dayStart, dayEnd).Scan(&result.PlayMinutes).Error
	if err != nil {
		return nil, err
	}

	return result, nil
}
