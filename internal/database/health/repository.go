// Package health provides database operations for vaccination, checkup,
// medication and emergency records.
package health

import (
	"errors"

	"gorm.io/gorm"

	"github.com/ysfyavuzz/DostAnne-sub001/internal/database"
	"github.com/ysfyavuzz/DostAnne-sub001/internal/entities"
)

// Repository handles all health record database operations.
type Repository struct {
	db *gorm.DB
}

// NewRepository creates a new health records repository.
func NewRepository(db *gorm.DB) *Repository {
	return &Repository{db: db}
}

// Create inserts a new health record for its owning profile.
func (r *Repository) Create(record *entities.HealthRecord) error {
	result := r.db.Create(record)
	if result.Error != nil {
		return database.NewPersistenceError("create health record", record.ProfileID, result.Error)
	}
	if result.RowsAffected == 0 {
		return database.NewPersistenceError("create health record", record.ProfileID,
			errors.New("insert affected zero rows"))
	}
	return nil
}

// GetByID retrieves a health record by id, or nil when no such row exists.
func (r *Repository) GetByID(id uint) (*entities.HealthRecord, error) {
	var record entities.HealthRecord
	err := r.db.First(&record, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &record, nil
}

// List returns the owner's health records, most recent first by record date.
func (r *Repository) List(ownerID uint, limit int) ([]entities.HealthRecord, error) {
	query := r.db.Where("profile_id = ?", ownerID).Order("date DESC")
	if limit > 0 {
		query = query.Limit(limit)
	}
	var list []entities.HealthRecord
	err := query.Find(&list).Error
	return list, err
}
