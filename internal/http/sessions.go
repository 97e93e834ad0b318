package http

import (
	"errors"
	"log"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/ysfyavuzz/DostAnne-sub001/internal/database"
	"github.com/ysfyavuzz/DostAnne-sub001/internal/entities"
	"github.com/ysfyavuzz/DostAnne-sub001/internal/reminders"
)

// SleepSessionStore defines database operations for sleep tracking.
type SleepSessionStore interface {
	Start(ownerID uint, quality entities.SleepQuality, notes string) (*entities.SleepSession, error)
	Close(id uint, endTime time.Time, quality entities.SleepQuality, notes string) (bool, error)
	GetByID(id uint) (*entities.SleepSession, error)
	FindOpen(ownerID uint) (*entities.SleepSession, error)
	List(ownerID uint, limit int) ([]entities.SleepSession, error)
}

// FeedingSessionStore defines database operations for feeding tracking.
type FeedingSessionStore interface {
	Start(ownerID uint, feedingType entities.FeedingType, notes string) (*entities.FeedingSession, error)
	Close(id uint, endTime time.Time, amountML *float64, notes string) (bool, error)
	GetByID(id uint) (*entities.FeedingSession, error)
	FindOpen(ownerID uint) (*entities.FeedingSession, error)
	List(ownerID uint, limit int) ([]entities.FeedingSession, error)
}

// ProfileGetter provides read access to profiles for reminder copy.
type ProfileGetter interface {
	GetByID(id uint) (*entities.Profile, error)
}

type SleepController struct {
	store SleepSessionStore
}

func NewSleepController(store SleepSessionStore) *SleepController {
	return &SleepController{store: store}
}

type startSleepRequest struct {
	ProfileID uint   `json:"profile_id" binding:"required"`
	Quality   string `json:"quality" binding:"omitempty,oneof=excellent good fair poor"`
	Notes     string `json:"notes"`
}

// StartSleep opens a sleep session. A second start while one is open for the
// same profile is a conflict, not a second row.
// POST /api/sleep/start
func (sc *SleepController) StartSleep(c *gin.Context) {
	var req startSleepRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, err.Error())
		return
	}

	session, err := sc.store.Start(req.ProfileID, entities.SleepQuality(req.Quality), req.Notes)
	if errors.Is(err, database.ErrSessionOpen) {
		respondConflict(c, "a sleep session is already open for this profile")
		return
	}
	if err != nil {
		respondInternalError(c, err, "start sleep session")
		return
	}

	respondCreated(c, session)
}

type closeSleepRequest struct {
	EndTime time.Time `json:"end_time" binding:"required"`
	Quality string    `json:"quality" binding:"omitempty,oneof=excellent good fair poor"`
	Notes   string    `json:"notes"`
}

// CloseSleep closes a sleep session, computing its duration server-side.
// POST /api/sleep/:id/close
func (sc *SleepController) CloseSleep(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	var req closeSleepRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, err.Error())
		return
	}

	closed, err := sc.store.Close(id, req.EndTime, entities.SleepQuality(req.Quality), req.Notes)
	if err != nil {
		respondInternalError(c, err, "close sleep session")
		return
	}
	if !closed {
		respondNotFound(c, "sleep session")
		return
	}

	session, err := sc.store.GetByID(id)
	if err != nil || session == nil {
		respondSuccess(c, "sleep session closed")
		return
	}
	c.JSON(http.StatusOK, session)
}

// ListSleep returns a profile's sleep sessions, most recent first.
// GET /api/sleep?profile_id=&limit=
func (sc *SleepController) ListSleep(c *gin.Context) {
	ownerID, ok := parseQueryID(c, "profile_id")
	if !ok {
		return
	}

	list, err := sc.store.List(ownerID, parseLimitQuery(c))
	if err != nil {
		respondInternalError(c, err, "list sleep sessions")
		return
	}
	c.JSON(http.StatusOK, gin.H{"sleep_sessions": list})
}

type FeedingController struct {
	store    FeedingSessionStore
	profiles ProfileGetter

	// scheduler may be nil when reminders are disabled.
	scheduler        reminders.Scheduler
	reminderInterval time.Duration
}

func NewFeedingController(store FeedingSessionStore, profiles ProfileGetter, scheduler reminders.Scheduler, reminderInterval time.Duration) *FeedingController {
	return &FeedingController{
		store:            store,
		profiles:         profiles,
		scheduler:        scheduler,
		reminderInterval: reminderInterval,
	}
}

type startFeedingRequest struct {
	ProfileID uint   `json:"profile_id" binding:"required"`
	Type      string `json:"type" binding:"required,oneof=breast bottle solid"`
	Notes     string `json:"notes"`
}

// StartFeeding opens a feeding session.
// POST /api/feeding/start
func (fc *FeedingController) StartFeeding(c *gin.Context) {
	var req startFeedingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, err.Error())
		return
	}

	session, err := fc.store.Start(req.ProfileID, entities.FeedingType(req.Type), req.Notes)
	if errors.Is(err, database.ErrSessionOpen) {
		respondConflict(c, "a feeding session is already open for this profile")
		return
	}
	if err != nil {
		respondInternalError(c, err, "start feeding session")
		return
	}

	respondCreated(c, session)
}

type closeFeedingRequest struct {
	EndTime  time.Time `json:"end_time" binding:"required"`
	AmountML *float64  `json:"amount_ml"`
	Notes    string    `json:"notes"`
}

// CloseFeeding closes a feeding session and schedules the next feeding
// reminder. A reminder failure never fails the close; the session is already
// committed.
// POST /api/feeding/:id/close
func (fc *FeedingController) CloseFeeding(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	var req closeFeedingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, err.Error())
		return
	}

	closed, err := fc.store.Close(id, req.EndTime, req.AmountML, req.Notes)
	if err != nil {
		respondInternalError(c, err, "close feeding session")
		return
	}
	if !closed {
		respondNotFound(c, "feeding session")
		return
	}

	session, err := fc.store.GetByID(id)
	if err != nil || session == nil {
		respondSuccess(c, "feeding session closed")
		return
	}

	fc.scheduleNextReminder(session, req.EndTime)

	c.JSON(http.StatusOK, session)
}

func (fc *FeedingController) scheduleNextReminder(session *entities.FeedingSession, endTime time.Time) {
	if fc.scheduler == nil || fc.reminderInterval <= 0 {
		return
	}

	name := "your baby"
	if profile, err := fc.profiles.GetByID(session.ProfileID); err == nil && profile != nil {
		name = profile.Name
	}

	if _, err := fc.scheduler.ScheduleFeedingReminder(session.ProfileID, name, endTime.Add(fc.reminderInterval)); err != nil {
		log.Printf("Failed to schedule feeding reminder for profile %d: %v", session.ProfileID, err)
	}
}

// ListFeeding returns a profile's feeding sessions, most recent first.
// GET /api/feeding?profile_id=&limit=
func (fc *FeedingController) ListFeeding(c *gin.Context) {
	ownerID, ok := parseQueryID(c, "profile_id")
	if !ok {
		return
	}

	list, err := fc.store.List(ownerID, parseLimitQuery(c))
	if err != nil {
		respondInternalError(c, err, "list feeding sessions")
		return
	}
	c.JSON(http.StatusOK, gin.H{"feeding_sessions": list})
}
