// Package preferences provides database operations for the app's key-value
// settings, including the reserved "current profile" pointer.
//
// # Usage
//
//	repo := preferences.NewRepository(db)
//	value, ok, err := repo.Get("theme")
package preferences

import (
	"errors"

	"gorm.io/gorm"

	"github.com/ysfyavuzz/DostAnne-sub001/internal/entities"
)

// Repository handles all preference database operations. At most one row
// exists per key; Set has upsert semantics.
type Repository struct {
	db *gorm.DB
}

// NewRepository creates a new preferences repository.
func NewRepository(db *gorm.DB) *Repository {
	return &Repository{db: db}
}

// WithTx returns a repository bound to the given transaction, for callers that
// need preference writes to commit atomically with other changes.
func (r *Repository) WithTx(tx *gorm.DB) *Repository {
	return &Repository{db: tx}
}

// Get retrieves a preference value by key. The second return is false when the
// key is not set; an unset key is a normal state, not an error.
func (r *Repository) Get(key string) (string, bool, error) {
	var pref entities.Preference
	err := r.db.Where("key = ?", key).First(&pref).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return "", false, nil
	}
	if err != nil {
		return "", false, err
	}
	return pref.Value, true, nil
}

// Set creates or updates a preference.
func (r *Repository) Set(key, value string) error {
	var pref entities.Preference
	result := r.db.Where("key = ?", key).First(&pref)

	if errors.Is(result.Error, gorm.ErrRecordNotFound) {
		pref = entities.Preference{
			Key:   key,
			Value: value,
		}
		return r.db.Create(&pref).Error
	} else if result.Error != nil {
		return result.Error
	}

	pref.Value = value
	return r.db.Save(&pref).Error
}

// Delete removes a preference by key. Deleting an unset key is a no-op.
func (r *Repository) Delete(key string) error {
	return r.db.Where("key = ?", key).Delete(&entities.Preference{}).Error
}
