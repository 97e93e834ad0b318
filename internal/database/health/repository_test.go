package health

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
	dbPath := "./test_health_" + t.Name() + ".db"

	db, err := gorm.Open(sqlite.Open(dbPath+"?_foreign_keys=on"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	err = db.AutoMigrate(&entities.Profile{}, &entities.HealthRecord{})
	require.NoError(t, err)

	owner := entities.Profile{Name: "Aras", BirthDate: time.Now(), Gender: entities.GenderMale}
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

	record := &entities.HealthRecord{
		ProfileID: ownerID,
		Type:      entities.HealthRecordTypeVaccine,
		Title:     "Hepatitis B (2nd dose)",
		Date:      time.Date(2026, 5, 2, 0, 0, 0, 0, time.Local),
		Doctor:    "Dr. Yılmaz",
		Notes:     "no reaction",
	}
	require.NoError(t, repo.Create(record))
	assert.NotZero(t, record.ID)

	got, err := repo.GetByID(record.ID)
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, entities.HealthRecordTypeVaccine, got.Type)
	assert.Equal(t, "Hepatitis B (2nd dose)", got.Title)
	assert.Equal(t, "Dr. Yılmaz", got.Doctor)
	assert.Equal(t, "no reaction", got.Notes)
}

func TestRepository_List_MostRecentFirst(t *testing.T) {
	repo, ownerID, cleanup := setupTestDB(t)
	defer cleanup()

	base := time.Date(2026, 1, 10, 0, 0, 0, 0, time.Local)
	titles := []string{"first", "second", "third"}
	for i, title := range titles {
		require.NoError(t, repo.Create(&entities.HealthRecord{
			ProfileID: ownerID,
			Type:      entities.HealthRecordTypeCheckup,
			Title:     title,
			Date:      base.AddDate(0, i, 0),
		}))
	}

	list, err := repo.List(ownerID, 0)
	require.NoError(t, err)
	require.Len(t, list, 3)
	assert.Equal(t, "third", list[0].Title)
	assert.Equal(t, "first", list[2].Title)

	limited, err := repo.List(ownerID, 2)
	require.NoError(t, err)
	assert.Len(t, limited, 2)
}

func TestRepository_List_EmptyOwner(t *testing.T) {
	repo, _, cleanup := setupTestDB(t)
	defer cleanup()

	list, err := repo.List(777, 0)
	require.NoError(t, err)
	assert.Empty(t, list)
}
