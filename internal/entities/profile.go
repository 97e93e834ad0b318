package entities

import (
	"time"
)

type Gender string

const (
	GenderMale   Gender = "male"
	GenderFemale Gender = "female"
)

// Profile is the tracked child. One profile is marked "current" at a time,
// recorded out-of-band in the preferences table (see PreferenceKeyCurrentProfile).
type Profile struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	Name      string    `gorm:"size:100" json:"name"`
	BirthDate time.Time `json:"birth_date"`
	Gender    Gender    `gorm:"size:10" json:"gender"`
	WeightKG  float64   `json:"weight_kg"`
	HeightCM  float64   `json:"height_cm"`
	BloodType string    `gorm:"size:5" json:"blood_type,omitempty"`
	PhotoURI  string    `gorm:"size:1024" json:"photo_uri,omitempty"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (Profile) TableName() string {
	return "profiles"
}
