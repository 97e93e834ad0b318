package database

import (
	"fmt"
	"log"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/ysfyavuzz/DostAnne-sub001/internal/entities"
)

// Database owns the single shared SQLite handle. It is opened once at process
// start and kept open for the process lifetime; Close is only used by
// logout/reset flows.
type Database struct {
	DB *gorm.DB
}

// NewDatabase opens (or creates) the SQLite database at dbPath and provisions
// the schema. Safe to call on every start: tables and indexes are created if
// absent, existing data is never dropped or altered. Any failure here is fatal
// for the caller; nothing downstream works without the schema.
func NewDatabase(dbPath string) (*Database, error) {
	// Cascade deletes depend on SQLite actually enforcing foreign keys.
	dsn := dbPath + "?_foreign_keys=on&_busy_timeout=5000"

	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Warn),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	err = db.AutoMigrate(
		&entities.Profile{},
		&entities.Activity{},
		&entities.HealthRecord{},
		&entities.GrowthRecord{},
		&entities.SleepSession{},
		&entities.FeedingSession{},
		&entities.Preference{},
	)
	if err != nil {
		return nil, fmt.Errorf("failed to migrate database: %w", err)
	}

	log.Printf("Database initialized successfully at %s", dbPath)

	return &Database{DB: db}, nil
}

func (d *Database) Close() error {
	sqlDB, err := d.DB.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}

// Transaction runs fn inside a single transaction. Multi-step writes that must
// change together (e.g. create profile + set it current) go through here.
func (d *Database) Transaction(fn func(tx *gorm.DB) error) error {
	return d.DB.Transaction(fn)
}

// ClearAllData deletes every row in every table, including the preference
// holding the current profile. Irreversible; intended only for account reset.
func (d *Database) ClearAllData() error {
	return d.DB.Transaction(func(tx *gorm.DB) error {
		// Children first so the pass does not depend on cascade order.
		for _, model := range []interface{}{
			&entities.Activity{},
			&entities.HealthRecord{},
			&entities.GrowthRecord{},
			&entities.SleepSession{},
			&entities.FeedingSession{},
			&entities.Profile{},
			&entities.Preference{},
		} {
			if err := tx.Where("1 = 1").Delete(model).Error; err != nil {
				return fmt.Errorf("failed to clear table: %w", err)
			}
		}
		return nil
	})
}
