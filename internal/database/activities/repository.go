// Package activities provides database operations for the general-purpose
// event log (feeding, sleep, diaper, play, medical).
package activities

import (
	"errors"

	"gorm.io/gorm"

	"github.com/ysfyavuzz/DostAnne-sub001/internal/database"
	"github.com/ysfyavuzz/DostAnne-sub001/internal/entities"
)

// Repository handles all activity database operations.
type Repository struct {
	db *gorm.DB
}

// NewRepository creates a new activities repository.
func NewRepository(db *gorm.DB) *Repository {
	return &Repository{db: db}
}

// Create inserts a new activity for its owning profile. A nonexistent profile
// id fails at the foreign key constraint and surfaces as a PersistenceError.
func (r *Repository) Create(activity *entities.Activity) error {
	result := r.db.Create(activity)
	if result.Error != nil {
		return database.NewPersistenceError("create activity", activity.ProfileID, result.Error)
	}
	if result.RowsAffected == 0 {
		return database.NewPersistenceError("create activity", activity.ProfileID,
			errors.New("insert affected zero rows"))
	}
	return nil
}

// GetByID retrieves an activity by id, or nil when no such row exists.
func (r *Repository) GetByID(id uint) (*entities.Activity, error) {
	var activity entities.Activity
	err := r.db.First(&activity, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &activity, nil
}

// List returns the owner's activities, most recent first by start time.
// A positive limit truncates in SQL, not in memory.
func (r *Repository) List(ownerID uint, limit int) ([]entities.Activity, error) {
	query := r.db.Where("profile_id = ?", ownerID).Order("start_time DESC")
	if limit > 0 {
		query = query.Limit(limit)
	}
	var list []entities.Activity
	err := query.Find(&list).Error
	return list, err
}
