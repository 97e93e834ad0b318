package sessions

import (
	"errors"
	"time"

	"gorm.io/gorm"

	"github.com/ysfyavuzz/DostAnne-sub001/internal/database"
	"github.com/ysfyavuzz/DostAnne-sub001/internal/entities"
)

// SleepRepository handles sleep session database operations.
type SleepRepository struct {
	db *gorm.DB
}

// NewSleepRepository creates a new sleep sessions repository.
func NewSleepRepository(db *gorm.DB) *SleepRepository {
	return &SleepRepository{db: db}
}

// Start opens a sleep session for the owner: start time now, no end time, no
// duration. quality defaults to "good" when empty and stays mutable until
// close. Returns ErrSessionOpen when the owner already has an open sleep
// session; overlapping naps for one child are caller bugs, not data.
func (r *SleepRepository) Start(ownerID uint, quality entities.SleepQuality, notes string) (*entities.SleepSession, error) {
	open, err := r.FindOpen(ownerID)
	if err != nil {
		return nil, err
	}
	if open != nil {
		return nil, database.ErrSessionOpen
	}

	if quality == "" {
		quality = entities.SleepQualityGood
	}

	session := &entities.SleepSession{
		ProfileID: ownerID,
		StartTime: time.Now(),
		Quality:   quality,
		Notes:     notes,
	}
	result := r.db.Create(session)
	if result.Error != nil {
		return nil, database.NewPersistenceError("start sleep session", ownerID, result.Error)
	}
	if result.RowsAffected == 0 {
		return nil, database.NewPersistenceError("start sleep session", ownerID,
			errors.New("insert affected zero rows"))
	}
	return session, nil
}

// Close attaches the end time, the duration computed from the stored start
// time, and the final quality. Returns false when id matches no session.
// Closing an already-closed session overwrites its end time and duration,
// last write wins by the same arithmetic.
func (r *SleepRepository) Close(id uint, endTime time.Time, quality entities.SleepQuality, notes string) (bool, error) {
	var session entities.SleepSession
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
	if quality != "" {
		updates["quality"] = quality
	}
	if notes != "" {
		updates["notes"] = notes
	}

	result := r.db.Model(&entities.SleepSession{}).Where("id = ?", id).Updates(updates)
	if result.Error != nil {
		return false, database.NewPersistenceError("close sleep session", session.ProfileID, result.Error)
	}
	return result.RowsAffected > 0, nil
}

// GetByID retrieves a sleep session by id, or nil when no such row exists.
func (r *SleepRepository) GetByID(id uint) (*entities.SleepSession, error) {
	var session entities.SleepSession
	err := r.db.First(&session, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &session, nil
}

// FindOpen returns the owner's open sleep session, or nil when none is open.
func (r *SleepRepository) FindOpen(ownerID uint) (*entities.SleepSession, error) {
	var session entities.SleepSession
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

// List returns the owner's sleep sessions, most recent first by start time.
func (r *SleepRepository) List(ownerID uint, limit int) ([]entities.SleepSession, error) {
	query := r.db.Where("profile_id = ?", ownerID).Order("start_time DESC")
	if limit > 0 {
		query = query.Limit(limit)
	}
	var list []entities.SleepSession
	err := query.Find(&list).Error
	return list, err
}
