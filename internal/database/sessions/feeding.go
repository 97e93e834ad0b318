package sessions

import (
	"errors"
	"time"

	"gorm.io/gorm"

	"github.com/ysfyavuzz/DostAnne-sub001/internal/database"
	"github.com/ysfyavuzz/DostAnne-sub001/internal/entities"
)

// FeedingRepository handles feeding session database operations.
type FeedingRepository struct {
	db *gorm.DB
}

// NewFeedingRepository creates a new feeding sessions repository.
func NewFeedingRepository(db *gorm.DB) *FeedingRepository {
	return &FeedingRepository{db: db}
}

// Start opens a feeding session of the given type (breast, bottle, solid).
// Returns ErrSessionOpen when the owner already has an open feeding session.
func (r *FeedingRepository) Start(ownerID uint, feedingType entities.FeedingType, notes string) (*entities.FeedingSession, error) {
	open, err := r.FindOpen(ownerID)
	if err != nil {
		return nil, err
	}
	if open != nil {
		return nil, database.ErrSessionOpen
	}

	session := &entities.FeedingSession{
		ProfileID: ownerID,
		Type:      feedingType,
		StartTime: time.Now(),
		Notes:     notes,
	}
	result := r.db.Create(session)
	if result.Error != nil {
		return nil, database.NewPersistenceError("start feeding session", ownerID, result.Error)
	}
	if result.RowsAffected == 0 {
		return nil, database.NewPersistenceError("start feeding session", ownerID,
			errors.New("insert affected zero rows"))
	}
	return session, nil
}

// Close attaches the end time, the computed duration and the consumed amount.
// amountML stays nil for breast/solid feeds without a measured quantity.
// Returns false when id matches no session; an already-closed session is
// overwritten, last write wins.
func (r *FeedingRepository) Close(id uint, endTime time.Time, amountML *float64, notes string) (bool, error) {
	var session entities.FeedingSession
	err := r.db.First(&session, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return false, nil
	}
	if err != nil {
		return false, err
	}

	updates := map[string]interface{}{
		"end_time":         endTime,
		"duration_minutes": durationMinutes(session.StartTime, endTime),
	}
	if amountML != nil {
		updates["amount_ml"] = *amountML
	}
	if notes != "" {
		updates["notes"] = notes
	}

	result := r.db.Model(&entities.FeedingSession{}).Where("id = ?", id).Updates(updates)
	if result.Error != nil {
		return false, database.NewPersistenceError("close feeding session", session.ProfileID, result.Error)
	}
	return result.RowsAffected > 0, nil
}

// GetByID retrieves a feeding session by id, or nil when no such row exists.
func (r *FeedingRepository) GetByID(id uint) (*entities.FeedingSession, error) {
	var session entities.FeedingSession
	err := r.db.First(&session, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &session, nil
}

// FindOpen returns the owner's open feeding session, or nil when none is open.
func (r *FeedingRepository) FindOpen(ownerID uint) (*entities.FeedingSession, error) {
	var session entities.FeedingSession
	err := r.db.Where("profile_id = ? AND end_time IS NULL", ownerID).
		Order("start_time DESC").First(&session).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &session, nil
}

// List returns the owner's feeding sessions, most recent first by start time.
func (r *FeedingRepository) List(ownerID uint, limit int) ([]entities.FeedingSession, error) {
	query := r.db.Where("profile_id = ?", ownerID).Order("start_time DESC")
	if limit > 0 {
		query = query.Limit(limit)
	}
	var list []entities.FeedingSession
	err := query.Find(&list).Error
	return list, err
}
