package reminders

import "time"

// Config holds configuration for the reminder queue.
type Config struct {
	// Workers is the number of concurrent reminder workers. Default: 1
	Workers int

	// FeedingInterval is how long after a closed feeding the next feeding
	// reminder fires. Default: 3h
	FeedingInterval time.Duration

	// ReleaseAfter is when stuck reminders are released back to the queue. Default: 15m
	ReleaseAfter time.Duration

	// CleanupInterval is how often delivered reminders are cleaned up. Default: 1h
	CleanupInterval time.Duration
}

// DefaultConfig returns a Config with sensible defaults.
func DefaultConfig() Config {
	return Config{
		Workers:         1,
		FeedingInterval: 3 * time.Hour,
		ReleaseAfter:    15 * time.Minute,
		CleanupInterval: 1 * time.Hour,
	}
}
