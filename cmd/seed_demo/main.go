// Command seed_demo creates a demo database with a sample profile and a
// realistic day of tracked activity.
// Usage: go run cmd/seed_demo/main.go [-db path/to/demo.db]
package main

import (
	"flag"
	"log"
	"os"
	"time"

	"github.com/ysfyavuzz/DostAnne-sub001/internal/database"
	"github.com/ysfyavuzz/DostAnne-sub001/internal/database/activities"
	"github.com/ysfyavuzz/DostAnne-sub001/internal/database/growth"
	"github.com/ysfyavuzz/DostAnne-sub001/internal/database/health"
	"github.com/ysfyavuzz/DostAnne-sub001/internal/database/preferences"
	"github.com/ysfyavuzz/DostAnne-sub001/internal/database/profiles"
	"github.com/ysfyavuzz/DostAnne-sub001/internal/database/sessions"
	"github.com/ysfyavuzz/DostAnne-sub001/internal/entities"
)

const defaultDemoDatabasePath = "./demo/demo.db"

func main() {
	dbPath := flag.String("db", defaultDemoDatabasePath, "path to the demo database file")
	flag.Parse()

	log.Printf("Generating demo database at %s...", *dbPath)

	// Delete existing demo database to start fresh
	if err := os.Remove(*dbPath); err != nil && !os.IsNotExist(err) {
		log.Fatalf("Failed to remove existing demo database: %v", err)
	}

	db, err := database.NewDatabase(*dbPath)
	if err != nil {
		log.Fatalf("Failed to create database: %v", err)
	}
	defer db.Close()

	profileRepo := profiles.NewRepository(db.DB, preferences.NewRepository(db.DB))

	profile := &entities.Profile{
		Name:      "Elif",
		BirthDate: time.Now().AddDate(0, -7, 0),
		Gender:    entities.GenderFemale,
		WeightKG:  7.8,
		HeightCM:  68.0,
		BloodType: "A+",
	}
	if err := profileRepo.Create(profile); err != nil {
		log.Fatalf("Failed to create demo profile: %v", err)
	}
	log.Printf("Created profile %q (id %d), set as current", profile.Name, profile.ID)

	seedDay(db, profile.ID)
	seedRecords(db, profile.ID)

	log.Println("Demo database generated successfully!")
}

// seedDay fills one day with feedings, naps and diaper changes.
func seedDay(db *database.Database, profileID uint) {
	sleepRepo := sessions.NewSleepRepository(db.DB)
	feedingRepo := sessions.NewFeedingRepository(db.DB)
	activityRepo := activities.NewRepository(db.DB)

	morning := time.Now().Truncate(24 * time.Hour).Add(7 * time.Hour)

	feedings := []struct {
		offset   time.Duration
		length   time.Duration
		kind     entities.FeedingType
		amountML float64
	}{
		{0, 20 * time.Minute, entities.FeedingTypeBreast, 0},
		{4 * time.Hour, 15 * time.Minute, entities.FeedingTypeBottle, 150},
		{8 * time.Hour, 25 * time.Minute, entities.FeedingTypeSolid, 0},
		{12 * time.Hour, 15 * time.Minute, entities.FeedingTypeBottle, 180},
	}
	for _, f := range feedings {
		session, err := feedingRepo.Start(profileID, f.kind, "")
		if err != nil {
			log.Printf("Failed to start feeding: %v", err)
			continue
		}
		start := morning.Add(f.offset)
		db.DB.Model(session).Update("start_time", start)

		var amount *float64
		if f.amountML > 0 {
			amount = &f.amountML
		}
		if _, err := feedingRepo.Close(session.ID, start.Add(f.length), amount, ""); err != nil {
			log.Printf("Failed to close feeding: %v", err)
		}
	}
	log.Printf("Seeded %d feedings", len(feedings))

	naps := []struct {
		offset  time.Duration
		length  time.Duration
		quality entities.SleepQuality
	}{
		{2 * time.Hour, 45 * time.Minute, entities.SleepQualityGood},
		{6 * time.Hour, 90 * time.Minute, entities.SleepQualityExcellent},
		{10 * time.Hour, 40 * time.Minute, entities.SleepQualityFair},
	}
	for _, n := range naps {
		session, err := sleepRepo.Start(profileID, n.quality, "")
		if err != nil {
			log.Printf("Failed to start sleep: %v", err)
			continue
		}
		start := morning.Add(n.offset)
		db.DB.Model(session).Update("start_time", start)

		if _, err := sleepRepo.Close(session.ID, start.Add(n.length), "", ""); err != nil {
			log.Printf("Failed to close sleep: %v", err)
		}
	}
	log.Printf("Seeded %d naps", len(naps))

	diapers := []time.Duration{1 * time.Hour, 5 * time.Hour, 9 * time.Hour, 13 * time.Hour}
	for _, offset := range diapers {
		activity := &entities.Activity{
			ProfileID: profileID,
			Type:      entities.ActivityTypeDiaper,
			StartTime: morning.Add(offset),
		}
		if err := activityRepo.Create(activity); err != nil {
			log.Printf("Failed to create diaper change: %v", err)
		}
	}
	log.Printf("Seeded %d diaper changes", len(diapers))

	playMinutes := 30
	playStart := morning.Add(9*time.Hour + 30*time.Minute)
	play := &entities.Activity{
		ProfileID:       profileID,
		Type:            entities.ActivityTypePlay,
		StartTime:       playStart,
		DurationMinutes: &playMinutes,
		Notes:           "Tummy time on the play mat",
	}
	if err := activityRepo.Create(play); err != nil {
		log.Printf("Failed to create play activity: %v", err)
	}
}

// seedRecords adds a growth history and a couple of health records.
func seedRecords(db *database.Database, profileID uint) {
	growthRepo := growth.NewRepository(db.DB)
	healthRepo := health.NewRepository(db.DB)

	weights := []float64{3.4, 4.5, 5.6, 6.4, 7.0, 7.5, 7.8}
	heights := []float64{50, 54, 58, 61, 64, 66, 68}
	for i := range weights {
		record := &entities.GrowthRecord{
			ProfileID: profileID,
			Date:      time.Now().AddDate(0, i-6, 0),
			WeightKG:  &weights[i],
			HeightCM:  &heights[i],
		}
		if err := growthRepo.Create(record); err != nil {
			log.Printf("Failed to create growth record: %v", err)
		}
	}
	log.Printf("Seeded %d growth records", len(weights))

	records := []entities.HealthRecord{
		{
			ProfileID: profileID,
			Type:      entities.HealthRecordTypeVaccine,
			Title:     "Hepatitis B (3rd dose)",
			Date:      time.Now().AddDate(0, -1, 0),
			Doctor:    "Dr. Aydin",
		},
		{
			ProfileID: profileID,
			Type:      entities.HealthRecordTypeCheckup,
			Title:     "6 month well-baby visit",
			Date:      time.Now().AddDate(0, -1, -5),
			Doctor:    "Dr. Aydin",
			Notes:     "Growth on track, started solids",
		},
	}
	for i := range records {
		if err := healthRepo.Create(&records[i]); err != nil {
			log.Printf("Failed to create health record: %v", err)
		}
	}
	log.Printf("Seeded %d health records", len(records))
}
