package growth

import (
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/ysfyavuzz/DostAnne-sub001/internal/entities"
)

func setupTestDB(t *testing.T) (*Repository, uint, func()) {
	t.Helper()
	dbPath := "./test_growth_" + t.Name() + ".db"

	db, err := gorm.Open(sqlite.Open(dbPath+"?_foreign_keys=on"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	err = db.AutoMigrate(&entities.Profile{}, &entities.GrowthRecord{})
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

func floatPtr(v float64) *float64 { return &v }

func TestRepository_Create_RoundTrip(t *testing.T) {
	repo, ownerID, cleanup := setupTestDB(t)
	defer cleanup()

	record := &entities.GrowthRecord{
		ProfileID:           ownerID,
		Date:                time.Date(2026, 6, 1, 0, 0, 0, 0, time.Local),
		WeightKG:            floatPtr(6.8),
		HeightCM:            floatPtr(64),
		HeadCircumferenceCM: floatPtr(42.5),
		Notes:               "3-month visit",
	}
	require.NoError(t, repo.Create(record))

	got, err := repo.GetByID(record.ID)
	require.NoError(t, err)
	require.NotNil(t, got)
	require.NotNil(t, got.WeightKG)
	assert.Equal(t, 6.8, *got.WeightKG)
	require.NotNil(t, got.HeadCircumferenceCM)
	assert.Equal(t, 42.5, *got.HeadCircumferenceCM)
	assert.Equal(t, "3-month visit", got.Notes)
}

func TestRepository_Create_OptionalFieldsStayNil(t *testing.T) {
	repo, ownerID, cleanup := setupTestDB(t)
	defer cleanup()

	record := &entities.GrowthRecord{
		ProfileID: ownerID,
		Date:      time.Now(),
		WeightKG:  floatPtr(7.1),
	}
	require.NoError(t, repo.Create(record))

	got, err := repo.GetByID(record.ID)
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Nil(t, got.HeightCM)
	assert.Nil(t, got.HeadCircumferenceCM)
}

func TestRepository_List_MultiplePerDate(t *testing.T) {
	repo, ownerID, cleanup := setupTestDB(t)
	defer cleanup()

	day := time.Date(2026, 7, 15, 0, 0, 0, 0, time.Local)
	require.NoError(t, repo.Create(&entities.GrowthRecord{ProfileID: ownerID, Date: day, Notes: "morning"}))
	require.NoError(t, repo.Create(&entities.GrowthRecord{ProfileID: ownerID, Date: day, Notes: "evening"}))
	require.NoError(t, repo.Create(&entities.GrowthRecord{ProfileID: ownerID, Date: day.AddDate(0, 0, -7), Notes: "last week"}))

	list, err := repo.List(ownerID, 0)
	require.NoError(t, err)
	require.Len(t, list, 3)
	// Date descending; same-date records latest-inserted first.
	assert.Equal(t, "evening", list[0].Notes)
	assert.Equal(t, "morning", list[1].Notes)
	assert.Equal(t, "last week", list[2].Notes)
}
