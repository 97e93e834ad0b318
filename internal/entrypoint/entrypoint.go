package entrypoint

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/ysfyavuzz/DostAnne-sub001/internal/config"
	"github.com/ysfyavuzz/DostAnne-sub001/internal/database"
	"github.com/ysfyavuzz/DostAnne-sub001/internal/database/activities"
	"github.com/ysfyavuzz/DostAnne-sub001/internal/database/growth"
	"github.com/ysfyavuzz/DostAnne-sub001/internal/database/health"
	"github.com/ysfyavuzz/DostAnne-sub001/internal/database/preferences"
	"github.com/ysfyavuzz/DostAnne-sub001/internal/database/profiles"
	"github.com/ysfyavuzz/DostAnne-sub001/internal/database/sessions"
	"github.com/ysfyavuzz/DostAnne-sub001/internal/database/stats"
	http_controllers "github.com/ysfyavuzz/DostAnne-sub001/internal/http"
	"github.com/ysfyavuzz/DostAnne-sub001/internal/reminders"
	"github.com/ysfyavuzz/DostAnne-sub001/internal/scheduler"
)

// ShutdownFunc is called during graceful shutdown to clean up resources.
type ShutdownFunc func(ctx context.Context)

func Serve(router *gin.Engine, cfg *config.Config, onShutdown ShutdownFunc) {
	timeout := time.Duration(cfg.Global.ShutdownTimeoutInSeconds) * time.Second

	srv := &http.Server{
		Addr:    fmt.Sprintf("%s:%d", cfg.HTTP.Host, cfg.HTTP.Port),
		Handler: router,
	}

	go func() {
		fmt.Printf("Starting server at %s:%d\n", cfg.HTTP.Host, cfg.HTTP.Port)
		// service connections
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("listen: %s\n", err)
		}
	}()

	// Graceful shutdown
	// Wait for interrupt signal to gracefully shutdown the server
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Printf("Shutdown Server, waiting %v before killing\n", timeout)

	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	// Call shutdown callback first (e.g., to stop the reminder queue)
	if onShutdown != nil {
		onShutdown(ctx)
	}

	if err := srv.Shutdown(ctx); err != nil {
		log.Fatal("Server Shutdown:", err)
	}

	log.Println("Server exiting")
}

func Run(cfg *config.Config, version string) {
	log.Printf("Starting DostAnne v%s", version)

	// Initialize database
	db, err := database.NewDatabase(cfg.Database.Path)
	if err != nil {
		log.Fatalf("Failed to initialize database: %v", err)
	}
	defer func() {
		if err := db.Close(); err != nil {
			log.Printf("Error closing database: %v", err)
		}
	}()

	// Repositories
	preferenceRepo := preferences.NewRepository(db.DB)
	profileRepo := profiles.NewRepository(db.DB, preferenceRepo)
	activityRepo := activities.NewRepository(db.DB)
	healthRepo := health.NewRepository(db.DB)
	growthRepo := growth.NewRepository(db.DB)
	sleepRepo := sessions.NewSleepRepository(db.DB)
	feedingRepo := sessions.NewFeedingRepository(db.DB)
	aggregator := stats.NewAggregator(db.DB)

	// Initialize the reminder queue if enabled
	var reminderClient *reminders.Client
	var reminderScheduler reminders.Scheduler
	var reminderCtxCancel context.CancelFunc
	if cfg.Reminders.Enabled {
		reminderCfg := reminders.DefaultConfig()
		if cfg.Reminders.Workers > 0 {
			reminderCfg.Workers = cfg.Reminders.Workers
		}
		if cfg.Reminders.FeedingInterval > 0 {
			reminderCfg.FeedingInterval = cfg.Reminders.FeedingInterval
		}

		reminderClient, err = reminders.NewClient(cfg.Database.Path, reminderCfg)
		if err != nil {
			log.Fatalf("Failed to initialize reminder queue: %v", err)
		}
		defer func() {
			if err := reminderClient.Close(); err != nil {
				log.Printf("Error closing reminder client: %v", err)
			}
		}()

		notifier := &reminders.LogNotifier{}
		reminderClient.Register(
			reminders.NewFeedingReminderQueue(notifier),
			reminders.NewDailySummaryQueue(notifier),
		)

		// Start reminder workers in background
		var reminderCtx context.Context
		reminderCtx, reminderCtxCancel = context.WithCancel(context.Background())
		go reminderClient.Start(reminderCtx)

		reminderScheduler = reminders.NewQueueScheduler(reminderClient)
	}

	// Start the daily digest scheduler if enabled
	var digestScheduler *scheduler.DailyDigestScheduler
	if cfg.Digest.Enabled && reminderScheduler != nil {
		digestScheduler = scheduler.NewDailyDigestScheduler(profileRepo, aggregator, reminderScheduler)
		if err := digestScheduler.Start(context.Background(), cfg.Digest.Schedule); err != nil {
			log.Fatalf("Failed to start daily digest scheduler: %v", err)
		}
	}

	// Build router configuration with all dependencies
	routerCfg := http_controllers.RouterConfig{
		Database:                db,
		ProfileStore:            profileRepo,
		ActivityStore:           activityRepo,
		HealthRecordStore:       healthRepo,
		GrowthStore:             growthRepo,
		PreferenceStore:         preferenceRepo,
		SleepStore:              sleepRepo,
		FeedingStore:            feedingRepo,
		StatsProvider:           aggregator,
		ReminderScheduler:       reminderScheduler,
		FeedingReminderInterval: cfg.Reminders.FeedingInterval,
		Version:                 version,
	}

	router := http_controllers.NewRouter(routerCfg)

	// Shutdown callback for graceful cleanup
	onShutdown := func(ctx context.Context) {
		if digestScheduler != nil {
			digestScheduler.Stop()
		}
		if reminderClient != nil && reminderCtxCancel != nil {
			reminderClient.Stop(ctx)
			reminderCtxCancel()
		}
	}

	Serve(router, cfg, onShutdown)
}
