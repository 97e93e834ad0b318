package http

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/ysfyavuzz/DostAnne-sub001/internal/entities"
)

// ActivityStore defines database operations for the activity log.
type ActivityStore interface {
	Create(activity *entities.Activity) error
	List(ownerID uint, limit int) ([]entities.Activity, error)
}

type ActivitiesController struct {
	store ActivityStore
}

func NewActivitiesController(store ActivityStore) *ActivitiesController {
	return &ActivitiesController{store: store}
}

type createActivityRequest struct {
	ProfileID       uint       `json:"profile_id" binding:"required"`
	Type            string     `json:"type" binding:"required,oneof=feeding sleep diaper play medical"`
	StartTime       time.Time  `json:"start_time" binding:"required"`
	EndTime         *time.Time `json:"end_time"`
	DurationMinutes *int       `json:"duration_minutes"`
	Notes           string     `json:"notes"`
}

// CreateActivity records a general activity event.
// POST /api/activities
func (ac *ActivitiesController) CreateActivity(c *gin.Context) {
	var req createActivityRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, err.Error())
		return
	}

	activity := &entities.Activity{
		ProfileID:       req.ProfileID,
		Type:            entities.ActivityType(req.Type),
		StartTime:       req.StartTime,
		EndTime:         req.EndTime,
		DurationMinutes: req.DurationMinutes,
		Notes:           req.Notes,
	}
	if err := ac.store.Create(activity); err != nil {
		respondInternalError(c, err, "create activity")
		return
	}

	respondCreated(c, activity)
}

// ListActivities returns a profile's activities, most recent first.
// GET /api/activities?profile_id=&limit=
func (ac *ActivitiesController) ListActivities(c *gin.Context) {
	ownerID, ok := parseQueryID(c, "profile_id")
	if !ok {
		return
	}

	list, err := ac.store.List(ownerID, parseLimitQuery(c))
	if err != nil {
		respondInternalError(c, err, "list activities")
		return
	}
	c.JSON(http.StatusOK, gin.H{"activities": list})
}
