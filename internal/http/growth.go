package http

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/ysfyavuzz/DostAnne-sub001/internal/entities"
)

// GrowthStore defines database operations for growth records.
type GrowthStore interface {
	Create(record *entities.GrowthRecord) error
	List(ownerID uint, limit int) ([]entities.GrowthRecord, error)
}

type GrowthController struct {
	store GrowthStore
}

func NewGrowthController(store GrowthStore) *GrowthController {
	return &GrowthController{store: store}
}

type createGrowthRecordRequest struct {
	ProfileID           uint      `json:"profile_id" binding:"required"`
	Date                time.Time `json:"date" binding:"required"`
	WeightKG            *float64  `json:"weight_kg"`
	HeightCM            *float64  `json:"height_cm"`
	HeadCircumferenceCM *float64  `json:"head_circumference_cm"`
	Notes               string    `json:"notes"`
}

// CreateGrowthRecord records a measurement snapshot.
// POST /api/growth-records
func (gc *GrowthController) CreateGrowthRecord(c *gin.Context) {
	var req createGrowthRecordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, err.Error())
		return
	}

	record := &entities.GrowthRecord{
		ProfileID:           req.ProfileID,
		Date:                req.Date,
		WeightKG:            req.WeightKG,
		HeightCM:            req.HeightCM,
		HeadCircumferenceCM: req.HeadCircumferenceCM,
		Notes:               req.Notes,
	}
	if err := gc.store.Create(record); err != nil {
		respondInternalError(c, err, "create growth record")
		return
	}

	respondCreated(c, record)
}

// ListGrowthRecords returns a profile's growth records by date descending.
// GET /api/growth-records?profile_id=&limit=
func (gc *GrowthController) ListGrowthRecords(c *gin.Context) {
	ownerID, ok := parseQueryID(c, "profile_id")
	if !ok {
		return
	}

	list, err := gc.store.List(ownerID, parseLimitQuery(c))
	if err != nil {
		respondInternalError(c, err, "list growth records")
		return
	}
	c.JSON(http.StatusOK, gin.H{"growth_records": list})
}
