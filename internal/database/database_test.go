package database

import (
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ysfyavuzz/DostAnne-sub001/internal/entities"
)

// setupTestDB creates a fresh test database
func setupTestDB(t *testing.T) (*Database, func()) {
	t.Helper()
	dbPath := "./test_" + t.Name() + ".db"
	db, err := NewDatabase(dbPath)
	require.NoError(t, err)

	cleanup := func() {
		db.Close()
		os.Remove(dbPath)
	}
	return db, cleanup
}

// seedFullProfile creates a profile with one dependent row in every child table.
func seedFullProfile(t *testing.T, db *Database, name string) uint {
	t.Helper()

	profile := entities.Profile{Name: name, BirthDate: time.Now(), Gender: entities.GenderFemale}
	require.NoError(t, db.DB.Create(&profile).Error)

	now := time.Now()
	require.NoError(t, db.DB.Create(&entities.Activity{
		ProfileID: profile.ID, Type: entities.ActivityTypeDiaper, StartTime: now,
	}).Error)
	require.NoError(t, db.DB.Create(&entities.HealthRecord{
		ProfileID: profile.ID, Type: entities.HealthRecordTypeVaccine, Title: "BCG", Date: now,
	}).Error)
	require.NoError(t, db.DB.Create(&entities.GrowthRecord{
		ProfileID: profile.ID, Date: now,
	}).Error)
	require.NoError(t, db.DB.Create(&entities.SleepSession{
		ProfileID: profile.ID, StartTime: now, Quality: entities.SleepQualityGood,
	}).Error)
	require.NoError(t, db.DB.Create(&entities.FeedingSession{
		ProfileID: profile.ID, Type: entities.FeedingTypeBreast, StartTime: now,
	}).Error)

	return profile.ID
}

func countAllChildren(t *testing.T, db *Database, profileID uint) int64 {
	t.Helper()
	var total int64
	for _, model := range []interface{}{
		&entities.Activity{},
		&entities.HealthRecord{},
		&entities.GrowthRecord{},
		&entities.SleepSession{},
		&entities.FeedingSession{},
	} {
		var count int64
		require.NoError(t, db.DB.Model(model).Where("profile_id = ?", profileID).Count(&count).Error)
		total += count
	}
	return total
}

func TestNewDatabase_Idempotent(t *testing.T) {
	dbPath := "./test_idempotent.db"
	defer os.Remove(dbPath)

	db, err := NewDatabase(dbPath)
	require.NoError(t, err)

	profile := entities.Profile{Name: "Defne", BirthDate: time.Now(), Gender: entities.GenderFemale}
	require.NoError(t, db.DB.Create(&profile).Error)
	require.NoError(t, db.Close())

	// Reopening must keep existing rows intact.
	db, err = NewDatabase(dbPath)
	require.NoError(t, err)
	defer db.Close()

	var count int64
	require.NoError(t, db.DB.Model(&entities.Profile{}).Count(&count).Error)
	assert.Equal(t, int64(1), count)
}

func TestDeleteProfile_CascadesToAllChildren(t *testing.T) {
	db, cleanup := setupTestDB(t)
	defer cleanup()

	victimID := seedFullProfile(t, db, "Defne")
	survivorID := seedFullProfile(t, db, "Aras")

	require.NoError(t, db.DB.Delete(&entities.Profile{}, victimID).Error)

	assert.Equal(t, int64(0), countAllChildren(t, db, victimID))
	// Unrelated profiles keep their rows.
	assert.Equal(t, int64(5), countAllChildren(t, db, survivorID))
}

func TestClearAllData(t *testing.T) {
	db, cleanup := setupTestDB(t)
	defer cleanup()

	profileID := seedFullProfile(t, db, "Defne")
	require.NoError(t, db.DB.Create(&entities.Preference{
		Key:   entities.PreferenceKeyCurrentProfile,
		Value: "1",
	}).Error)
	require.NoError(t, db.DB.Create(&entities.Preference{
		Key:   "theme",
		Value: "dark",
	}).Error)

	require.NoError(t, db.ClearAllData())

	assert.Equal(t, int64(0), countAllChildren(t, db, profileID))
	var profileCount, prefCount int64
	require.NoError(t, db.DB.Model(&entities.Profile{}).Count(&profileCount).Error)
	require.NoError(t, db.DB.Model(&entities.Preference{}).Count(&prefCount).Error)
	assert.Equal(t, int64(0), profileCount)
	assert.Equal(t, int64(0), prefCount)
}

func TestPersistenceError_Formatting(t *testing.T) {
	err := NewPersistenceError("create activity", 7, assert.AnError)
	assert.Contains(t, err.Error(), "create activity")
	assert.Contains(t, err.Error(), "profile 7")
	assert.ErrorIs(t, err, assert.AnError)
}
