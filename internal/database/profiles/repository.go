// Package profiles provides database operations for child profiles and the
// "current profile" selection.
//
// # Usage
//
//	repo := profiles.NewRepository(db)
//	current, err := repo.GetCurrent()
package profiles

import (
	"errors"
	"fmt"
	"strconv"

	"gorm.io/gorm"

	"github.com/ysfyavuzz/DostAnne-sub001/internal/database"
	"github.com/ysfyavuzz/DostAnne-sub001/internal/database/preferences"
	"github.com/ysfyavuzz/DostAnne-sub001/internal/entities"
)

// Fields that callers may change through Update. Generated id and timestamps
// are never written directly.
var updatableFields = map[string]bool{
	"name":       true,
	"birth_date": true,
	"gender":     true,
	"weight_kg":  true,
	"height_cm":  true,
	"blood_type": true,
	"photo_uri":  true,
}

// Repository handles all profile database operations.
type Repository struct {
	db    *gorm.DB
	prefs *preferences.Repository
}

// NewRepository creates a new profiles repository.
func NewRepository(db *gorm.DB, prefs *preferences.Repository) *Repository {
	return &Repository{db: db, prefs: prefs}
}

// Create inserts a new profile and marks it current, in one transaction. New
// profiles always become current: onboarding creates exactly one, and a
// second child should be the active context right after being added.
func (r *Repository) Create(profile *entities.Profile) error {
	err := r.db.Transaction(func(tx *gorm.DB) error {
		result := tx.Create(profile)
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return errors.New("insert affected zero rows")
		}
		return r.prefs.WithTx(tx).Set(
			entities.PreferenceKeyCurrentProfile,
			strconv.FormatUint(uint64(profile.ID), 10),
		)
	})
	if err != nil {
		return database.NewPersistenceError("create profile", 0, err)
	}
	return nil
}

// GetByID retrieves a profile by id, or nil when no such profile exists.
func (r *Repository) GetByID(id uint) (*entities.Profile, error) {
	var profile entities.Profile
	err := r.db.First(&profile, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &profile, nil
}

// List returns all profiles in creation order.
func (r *Repository) List() ([]entities.Profile, error) {
	var list []entities.Profile
	err := r.db.Order("created_at ASC").Find(&list).Error
	return list, err
}

// Update applies a partial update. Only allowlisted fields are written, key
// and value iterated together so pairs can never slip out of step. Returns
// false when no row matches id, so callers can tell "not found" from a
// successful no-op. updated_at is refreshed on every match.
func (r *Repository) Update(id uint, fields map[string]interface{}) (bool, error) {
	updates := make(map[string]interface{}, len(fields))
	for column, value := range fields {
		if updatableFields[column] {
			updates[column] = value
		}
	}
	if len(updates) == 0 {
		return false, nil
	}

	result := r.db.Model(&entities.Profile{}).Where("id = ?", id).Updates(updates)
	if result.Error != nil {
		return false, database.NewPersistenceError("update profile", id, result.Error)
	}
	return result.RowsAffected > 0, nil
}

// GetCurrent resolves the current-profile preference. Returns nil when no
// profile is selected (first launch before onboarding) or when the stored id
// no longer resolves. Both are normal states, not errors.
func (r *Repository) GetCurrent() (*entities.Profile, error) {
	value, ok, err := r.prefs.Get(entities.PreferenceKeyCurrentProfile)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, nil
	}

	id, err := strconv.ParseUint(value, 10, 32)
	if err != nil {
		return nil, nil
	}

	return r.GetByID(uint(id))
}

// SetCurrent switches the current profile. It writes the preference only,
// never mutating any profile row, and refuses ids that do not resolve so the
// pointer stays consistent.
func (r *Repository) SetCurrent(id uint) error {
	profile, err := r.GetByID(id)
	if err != nil {
		return err
	}
	if profile == nil {
		return fmt.Errorf("cannot set current profile: profile %d does not exist", id)
	}
	return r.prefs.Set(entities.PreferenceKeyCurrentProfile, strconv.FormatUint(uint64(id), 10))
}

// Delete removes a profile and reports whether a row was removed. Dependent
// activities, records and sessions are removed by the cascade constraints.
// The current-profile preference is left in place; GetCurrent treats the
// dangling pointer as unset.
func (r *Repository) Delete(id uint) (bool, error) {
	result := r.db.Delete(&entities.Profile{}, id)
	if result.Error != nil {
		return false, result.Error
	}
	return result.RowsAffected > 0, nil
}
