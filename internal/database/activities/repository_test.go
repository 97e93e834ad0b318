package activities

import (
	"fmt"
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/ysfyavuzz/DostAnne-sub001/internal/database"
	"github.com/ysfyavuzz/DostAnne-sub001/internal/entities"
)

func setupTestDB(t *testing.T) (*Repository, uint, func()) {
	t.Helper()
	dbPath := "./test_activities_" + t.Name() + ".db"

	db, err := gorm.Open(sqlite.Open(dbPath+"?_foreign_keys=on"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	err = db.AutoMigrate(&entities.Profile{}, &entities.Activity{})
	require.NoError(t, err)

	owner := entities.Profile{Name: "Defne", BirthDate: time.Now(), Gender: entities.GenderFemale}
	require.NoError(t, db.Create(&owner).Error)

	repo := NewRepository(db)

	cleanup := func() {
		sqlDB, _ := db.DB()
		sqlDB.Close()
		os.Remove(dbPath)
	}

	return repo, owner.ID, cleanup
}

func TestRepository_Create_RoundTrip(t *testing.T) {
	repo, ownerID, cleanup := setupTestDB(t)
	defer cleanup()

	start := time.Date(2026, 9, 1, 9, 30, 0, 0, time.Local)
	end := start.Add(20 * time.Minute)
	duration := 20

	activity := &entities.Activity{
		ProfileID:       ownerID,
		Type:            entities.ActivityTypePlay,
		StartTime:       start,
		EndTime:         &end,
		DurationMinutes: &duration,
		Notes:           "tummy time",
	}
	require.NoError(t, repo.Create(activity))
	assert.NotZero(t, activity.ID)

	got, err := repo.GetByID(activity.ID)
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, entities.ActivityTypePlay, got.Type)
	assert.Equal(t, start.Unix(), got.StartTime.Unix())
	require.NotNil(t, got.EndTime)
	assert.Equal(t, end.Unix(), got.EndTime.Unix())
	require.NotNil(t, got.DurationMinutes)
	assert.Equal(t, 20, *got.DurationMinutes)
	assert.Equal(t, "tummy time", got.Notes)
}

func TestRepository_Create_UnknownOwner(t *testing.T) {
	repo, _, cleanup := setupTestDB(t)
	defer cleanup()

	activity := &entities.Activity{
		ProfileID: 9999,
		Type:      entities.ActivityTypeDiaper,
		StartTime: time.Now(),
	}
	err := repo.Create(activity)
	require.Error(t, err)

	var perr *database.PersistenceError
	assert.ErrorAs(t, err, &perr)
}

func TestRepository_List_OrderingAndLimit(t *testing.T) {
	repo, ownerID, cleanup := setupTestDB(t)
	defer cleanup()

	base := time.Date(2026, 9, 1, 6, 0, 0, 0, time.Local)
	for i := 0; i < 10; i++ {
		require.NoError(t, repo.Create(&entities.Activity{
			ProfileID: ownerID,
			Type:      entities.ActivityTypeDiaper,
			StartTime: base.Add(time.Duration(i) * time.Hour),
			Notes:     fmt.Sprintf("change %d", i),
		}))
	}

	list, err := repo.List(ownerID, 5)
	require.NoError(t, err)
	require.Len(t, list, 5)
	// Exactly the five most recent, newest first.
	for i, activity := range list {
		assert.Equal(t, fmt.Sprintf("change %d", 9-i), activity.Notes)
	}
}

func TestRepository_List_EmptyOwner(t *testing.T) {
	repo, _, cleanup := setupTestDB(t)
	defer cleanup()

	list, err := repo.List(4242, 0)
	require.NoError(t, err)
	assert.Empty(t, list)
}

func TestRepository_GetByID_NotFound(t *testing.T) {
	repo, _, cleanup := setupTestDB(t)
	defer cleanup()

	got, err := repo.GetByID(31337)
	require.NoError(t, err)
	assert.Nil(t, got)
}
