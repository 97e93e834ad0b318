package http

import (
	"github.com/gin-gonic/gin"
)

// NewRouter creates and configures the HTTP router with all endpoints.
// Uses RouterConfig to receive all dependencies, improving testability
// and reducing parameter count.
func NewRouter(cfg RouterConfig) *gin.Engine {
	router := gin.New()
	router.Use(gin.Logger())
	router.Use(gin.Recovery())

	// Create controllers with appropriate interfaces
	health := NewHealthController(cfg.Database, cfg.Version)
	profilesController := NewProfilesController(cfg.ProfileStore)
	activitiesController := NewActivitiesController(cfg.ActivityStore)
	healthRecordsController := NewHealthRecordsController(cfg.HealthRecordStore)
	growthController := NewGrowthController(cfg.GrowthStore)
	sleepController := NewSleepController(cfg.SleepStore)
	feedingController := NewFeedingController(cfg.FeedingStore, cfg.ProfileStore, cfg.ReminderScheduler, cfg.FeedingReminderInterval)
	statsController := NewStatsController(cfg.StatsProvider)
	preferencesController := NewPreferencesController(cfg.PreferenceStore)
	adminController := NewAdminController(cfg.Database)

	// Health endpoints
	router.GET("/health", health.Status)
	router.GET("/ping", func(c *gin.Context) {
		c.JSON(200, gin.H{
			"message": "pong",
		})
	})

	// Profile endpoints
	router.POST("/api/profiles", profilesController.CreateProfile)
	router.GET("/api/profiles", profilesController.ListProfiles)
	router.GET("/api/profiles/current", profilesController.GetCurrentProfile)
	router.PUT("/api/profiles/current", profilesController.SetCurrentProfile)
	router.PATCH("/api/profiles/:id", profilesController.UpdateProfile)
	router.DELETE("/api/profiles/:id", profilesController.DeleteProfile)

	// Activity log endpoints
	router.POST("/api/activities", activitiesController.CreateActivity)
	router.GET("/api/activities", activitiesController.ListActivities)

	// Health record endpoints
	router.POST("/api/health-records", healthRecordsController.CreateHealthRecord)
	router.GET("/api/health-records", healthRecordsController.ListHealthRecords)

	// Growth record endpoints
	router.POST("/api/growth-records", growthController.CreateGrowthRecord)
	router.GET("/api/growth-records", growthController.ListGrowthRecords)

	// Sleep session endpoints
	router.POST("/api/sleep/start", sleepController.StartSleep)
	router.POST("/api/sleep/:id/close", sleepController.CloseSleep)
	router.GET("/api/sleep", sleepController.ListSleep)

	// Feeding session endpoints
	router.POST("/api/feeding/start", feedingController.StartFeeding)
	router.POST("/api/feeding/:id/close", feedingController.CloseFeeding)
	router.GET("/api/feeding", feedingController.ListFeeding)

	// Daily stats endpoints
	router.GET("/api/stats/today", statsController.GetTodayStats)
	router.GET("/api/stats/day", statsController.GetStatsForDay)

	// Preference endpoints
	router.GET("/api/preferences/:key", preferencesController.GetPreference)
	router.PUT("/api/preferences/:key", preferencesController.SetPreference)
	router.DELETE("/api/preferences/:key", preferencesController.DeletePreference)

	// Destructive admin endpoint
	router.POST("/api/reset", adminController.ResetData)

	return router
}
