// Package scheduler runs the periodic jobs: the evening digest that turns the
// current profile's daily statistics into a summary notification.
package scheduler

import (
	"context"
	"fmt"
	"log"
	"sync"

	"github.com/robfig/cron/v3"

	"github.com/ysfyavuzz/DostAnne-sub001/internal/database/profiles"
	"github.com/ysfyavuzz/DostAnne-sub001/internal/database/stats"
	"github.com/ysfyavuzz/DostAnne-sub001/internal/reminders"
)

// DailyDigestScheduler computes today's stats for the current profile on a
// cron schedule and hands them to the reminder queue as a summary.
type DailyDigestScheduler struct {
	profiles   *profiles.Repository
	aggregator *stats.Aggregator
	scheduler  reminders.Scheduler

	cron       *cron.Cron
	entryID    cron.EntryID
	mu         sync.Mutex
	isRunning  bool
	cancelFunc context.CancelFunc
}

// NewDailyDigestScheduler creates a new scheduler instance.
func NewDailyDigestScheduler(profileRepo *profiles.Repository, aggregator *stats.Aggregator, scheduler reminders.Scheduler) *DailyDigestScheduler {
	return &DailyDigestScheduler{
		profiles:   profileRepo,
		aggregator: aggregator,
		scheduler:  scheduler,
		cron:       cron.New(cron.WithParser(cron.NewParser(cron.Minute | cron.Hour | cron.Dom | cron.Month | cron.Dow))),
	}
}

// Start begins running the digest on the given 5-field cron schedule.
func (s *DailyDigestScheduler) Start(ctx context.Context, schedule string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.isRunning {
		return nil
	}

	entryID, err := s.cron.AddFunc(schedule, func() {
		if err := s.runDigest(); err != nil {
			log.Printf("Daily digest: %v", err)
		}
	})
	if err != nil {
		return fmt.Errorf("invalid digest schedule '%s': %w", schedule, err)
	}
	s.entryID = entryID

	var cancelCtx context.Context
	cancelCtx, s.cancelFunc = context.WithCancel(ctx)

	s.cron.Start()
	s.isRunning = true
	log.Printf("Daily digest scheduler: started with schedule '%s'", schedule)

	go func() {
		<-cancelCtx.Done()
		s.Stop()
	}()

	return nil
}

// Stop gracefully stops the scheduler, waiting for a running digest to finish.
func (s *DailyDigestScheduler) Stop() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.isRunning {
		return
	}

	ctx := s.cron.Stop()
	<-ctx.Done()

	s.isRunning = false
	s.cancelFunc = nil

	log.Printf("Daily digest scheduler: stopped")
}

func (s *DailyDigestScheduler) runDigest() error {
	profile, err := s.profiles.GetCurrent()
	if err != nil {
		return fmt.Errorf("resolve current profile: %w", err)
	}
	if profile == nil {
		// Nothing selected yet (first launch); skip quietly.
		return nil
	}

	todayStats, err := s.aggregator.GetTodayStats(profile.ID)
	if err != nil {
		return fmt.Errorf("aggregate today's stats for profile %d: %w", profile.ID, err)
	}

	_, err = s.scheduler.ScheduleDailySummary(reminders.DailySummaryTask{
		ProfileID:            profile.ID,
		ProfileName:          profile.Name,
		FeedingCount:         todayStats.FeedingCount,
		SleepDurationMinutes: todayStats.SleepDurationMinutes,
		DiaperChanges:        todayStats.DiaperChanges,
		PlayMinutes:          todayStats.PlayMinutes,
	})
	if err != nil {
		return fmt.Errorf("enqueue daily summary: %w", err)
	}
	return nil
}
