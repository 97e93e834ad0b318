package entities

import (
	"time"
)

type ActivityType string

const (
	ActivityTypeFeeding ActivityType = "feeding"
	ActivityTypeSleep   ActivityType = "sleep"
	ActivityTypeDiaper  ActivityType = "diaper"
	ActivityTypePlay    ActivityType = "play"
	ActivityTypeMedical ActivityType = "medical"
)

type HealthRecordType string

const (
	HealthRecordTypeVaccine    HealthRecordType = "vaccine"
	HealthRecordTypeCheckup    HealthRecordType = "checkup"
	HealthRecordTypeMedication HealthRecordType = "medication"
	HealthRecordTypeEmergency  HealthRecordType = "emergency"
)

// Activity is the general-purpose event log, independent of the specialized
// sleep and feeding session tables.
type Activity struct {
	ID              uint         `gorm:"primaryKey" json:"id"`
	ProfileID       uint         `gorm:"index;index:idx_activities_profile_start,priority:1" json:"profile_id"`
	Type            ActivityType `gorm:"size:20" json:"type"`
	StartTime       time.Time    `gorm:"index:idx_activities_profile_start,priority:2" json:"start_time"`
	EndTime         *time.Time   `json:"end_time,omitempty"`
	DurationMinutes *int         `json:"duration_minutes,omitempty"`
	Notes           string       `gorm:"type:text" json:"notes,omitempty"`
	Profile         Profile      `gorm:"foreignKey:ProfileID;constraint:OnDelete:CASCADE" json:"-"`
	CreatedAt       time.Time    `json:"created_at"`
}

func (Activity) TableName() string {
	return "activities"
}

// HealthRecord tracks vaccinations, checkups, medication and emergencies.
type HealthRecord struct {
	ID        uint             `gorm:"primaryKey" json:"id"`
	ProfileID uint             `gorm:"index" json:"profile_id"`
	Type      HealthRecordType `gorm:"size:20" json:"type"`
	Title     string           `gorm:"size:256" json:"title"`
	Date      time.Time        `gorm:"index" json:"date"`
	Doctor    string           `gorm:"size:100" json:"doctor,omitempty"`
	Notes     string           `gorm:"type:text" json:"notes,omitempty"`
	Profile   Profile          `gorm:"foreignKey:ProfileID;constraint:OnDelete:CASCADE" json:"-"`
	CreatedAt time.Time        `json:"created_at"`
}

func (HealthRecord) TableName() string {
	return "health_records"
}

// GrowthRecord is a dated measurement snapshot. Multiple records per date are
// permitted; display ordering is by date descending.
type GrowthRecord struct {
	ID                  uint       `gorm:"primaryKey" json:"id"`
	ProfileID           uint       `gorm:"index" json:"profile_id"`
	Date                time.Time  `gorm:"index" json:"date"`
	WeightKG            *float64   `json:"weight_kg,omitempty"`
	HeightCM            *float64   `json:"height_cm,omitempty"`
	HeadCircumferenceCM *float64   `json:"head_circumference_cm,omitempty"`
	Notes               string     `gorm:"type:text" json:"notes,omitempty"`
	Profile             Profile    `gorm:"foreignKey:ProfileID;constraint:OnDelete:CASCADE" json:"-"`
	CreatedAt           time.Time  `json:"created_at"`
}

func (GrowthRecord) TableName() string {
	return "growth_records"
}
