package entities

import (
	"time"
)

type SleepQuality string

const (
	SleepQualityExcellent SleepQuality = "excellent"
	SleepQualityGood      SleepQuality = "good"
	SleepQualityFair      SleepQuality = "fair"
	SleepQualityPoor      SleepQuality = "poor"
)

type FeedingType string

const (
	FeedingTypeBreast FeedingType = "breast"
	FeedingTypeBottle FeedingType = "bottle"
	FeedingTypeSolid  FeedingType = "solid"
)

// SleepSession is open while EndTime is nil. An open session has no duration
// and carries only its default quality until closed.
type SleepSession struct {
	ID              uint         `gorm:"primaryKey" json:"id"`
	ProfileID       uint         `gorm:"index;index:idx_sleep_profile_start,priority:1" json:"profile_id"`
	StartTime       time.Time    `gorm:"index:idx_sleep_profile_start,priority:2" json:"start_time"`
	EndTime         *time.Time   `json:"end_time,omitempty"`
	DurationMinutes *int         `json:"duration_minutes,omitempty"`
	Quality         SleepQuality `gorm:"size:20;default:'good'" json:"quality"`
	Notes           string       `gorm:"type:text" json:"notes,omitempty"`
	Profile         Profile      `gorm:"foreignKey:ProfileID;constraint:OnDelete:CASCADE" json:"-"`
	CreatedAt       time.Time    `json:"created_at"`
}

func (SleepSession) TableName() string {
	return "sleep_sessions"
}

// FeedingSession is open while EndTime is nil.
type FeedingSession struct {
	ID              uint        `gorm:"primaryKey" json:"id"`
	ProfileID       uint        `gorm:"index;index:idx_feeding_profile_start,priority:1" json:"profile_id"`
	Type            FeedingType `gorm:"size:20" json:"type"`
	StartTime       time.Time   `gorm:"index:idx_feeding_profile_start,priority:2" json:"start_time"`
	EndTime         *time.Time  `json:"end_time,omitempty"`
	DurationMinutes *int        `json:"duration_minutes,omitempty"`
	AmountML        *float64    `json:"amount_ml,omitempty"`
	Notes           string      `gorm:"type:text" json:"notes,omitempty"`
	Profile         Profile     `gorm:"foreignKey:ProfileID;constraint:OnDelete:CASCADE" json:"-"`
	CreatedAt       time.Time   `json:"created_at"`
}

func (FeedingSession) TableName() string {
	return "feeding_sessions"
}
