// Package growth provides database operations for growth measurements
// (weight, height, head circumference).
package growth

import (
	"errors"

	"gorm.io/gorm"

	"github.com/ysfyavuzz/DostAnne-sub001/internal/database"
	"github.com/ysfyavuzz/DostAnne-sub001/internal/entities"
)

// Repository handles all growth record database operations.
type Repository struct {
	db *gorm.DB
}

// NewRepository creates a new growth records repository.
func NewRepository(db *gorm.DB) *Repository {
	return &Repository{db: db}
}

// Create inserts a new growth record. Several records on the same date are
// allowed; display ordering handles ties by recency of insertion.
func (r *Repository) Create(record *entities.GrowthRecord) error {
	result := r.db.Create(record)
	if result.Error != nil {
		return database.NewPersistenceError("create growth record", record.ProfileID, result.Error)
	}
	if result.RowsAffected == 0 {
		return database.NewPersistenceError("create growth record", record.ProfileID,
			errors.New("insert affected zero rows"))
	}
	return nil
}

// GetByID retrieves a growth record by id, or nil when no such row exists.
func (r *Repository) GetByID(id uint) (*entities.GrowthRecord, error) {
	var record entities.GrowthRecord
	err := r.db.First(&record, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &record, nil
}

// List returns the owner's growth records by date descending.
func (r *Repository) List(ownerID uint, limit int) ([]entities.GrowthRecord, error) {
	query := r.db.Where("profile_id = ?", ownerID).Order("date DESC, id DESC")
	if limit > 0 {
		query = query.Limit(limit)
	}
	var list []entities.GrowthRecord
	err := query.Find(&list).Error
	return list, err
}
