package entities

import (
	"time"
)

// Preference is a small persistent key-value row: arbitrary app settings plus
// the reserved pointer to the current profile.
type Preference struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	Key       string    `gorm:"uniqueIndex;size:100" json:"key"`
	Value     string    `gorm:"type:text" json:"value"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (Preference) TableName() string {
	return "preferences"
}

// Known preference keys
const (
	// PreferenceKeyCurrentProfile holds the id of the profile all new records
	// default to. Kept consistent by the profiles repository, not by a
	// database constraint.
	PreferenceKeyCurrentProfile = "current_profile_id"

	// Reminder settings
	PreferenceKeyFeedingReminderEnabled = "feeding_reminder_enabled"
	PreferenceKeyDigestEnabled          = "daily_digest_enabled"
)
