package config

import (
	"time"

	"github.com/spf13/viper"
)

type (
	Config struct {
		HTTP
		Global
		Database
		Reminders
		Digest
	}

	HTTP struct {
		Port int32
		Host string
	}
	Global struct {
		ShutdownTimeoutInSeconds int
	}
	Database struct {
		Path string
	}
	Reminders struct {
		Enabled         bool
		Workers         int
		FeedingInterval time.Duration
	}
	Digest struct {
		Enabled  bool
		Schedule string // Cron format: "0 21 * * *" = daily at 21:00
	}
)

func NewConfig() *Config {
	v := viper.New()
	v.AutomaticEnv()
	v.SetDefault("port", 8189)
	v.SetDefault("host", "0.0.0.0")
	v.SetDefault("shutdown_timeout_in_seconds", 2)
	v.SetDefault("database_path", DefaultDatabasePath)

	// Reminder defaults
	v.SetDefault("reminders_enabled", true)
	v.SetDefault("reminder_workers", 1)
	v.SetDefault("feeding_reminder_interval", "3h")

	// Daily digest defaults
	v.SetDefault("digest_enabled", true)
	v.SetDefault("digest_schedule", "0 21 * * *") // Daily at 21:00

	return &Config{
		HTTP: HTTP{
			Port: v.GetInt32("PORT"),
			Host: v.GetString("HOST"),
		},
		Global: Global{
			ShutdownTimeoutInSeconds: v.GetInt("SHUTDOWN_TIMEOUT_IN_SECONDS"),
		},
		Database: Database{
			Path: v.GetString("DATABASE_PATH"),
		},
		Reminders: Reminders{
			Enabled:         v.GetBool("REMINDERS_ENABLED"),
			Workers:         v.GetInt("REMINDER_WORKERS"),
			FeedingInterval: v.GetDuration("FEEDING_REMINDER_INTERVAL"),
		},
		Digest: Digest{
			Enabled:  v.GetBool("DIGEST_ENABLED"),
			Schedule: v.GetString("DIGEST_SCHEDULE"),
		},
	}
}
