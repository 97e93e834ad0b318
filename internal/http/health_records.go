package http

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/ysfyavuzz/DostAnne-sub001/internal/entities"
)

// HealthRecordStore defines database operations for health records.
type HealthRecordStore interface {
	Create(record *entities.HealthRecord) error
	List(ownerID uint, limit int) ([]entities.HealthRecord, error)
}

type HealthRecordsController struct {
	store HealthRecordStore
}

func NewHealthRecordsController(store HealthRecordStore) *HealthRecordsController {
	return &HealthRecordsController{store: store}
}

type createHealthRecordRequest struct {
	ProfileID uint      `json:"profile_id" binding:"required"`
	Type      string    `json:"type" binding:"required,oneof=vaccine checkup medication emergency"`
	Title     string    `json:"title" binding:"required"`
	Date      time.Time `json:"date" binding:"required"`
	Doctor    string    `json:"doctor"`
	Notes     string    `json:"notes"`
}

// CreateHealthRecord records a vaccine, checkup, medication or emergency.
// POST /api/health-records
func (hc *HealthRecordsController) CreateHealthRecord(c *gin.Context) {
	var req createHealthRecordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, err.Error())
		return
	}

	record := &entities.HealthRecord{
		ProfileID: req.ProfileID,
		Type:      entities.HealthRecordType(req.Type),
		Title:     req.Title,
		Date:      req.Date,
		Doctor:    req.Doctor,
		Notes:     req.Notes,
	}
	if err := hc.store.Create(record); err != nil {
		respondInternalError(c, err, "create health record")
		return
	}

	respondCreated(c, record)
}

// ListHealthRecords returns a profile's health records, most recent first.
// GET /api/health-records?profile_id=&limit=
func (hc *HealthRecordsController) ListHealthRecords(c *gin.Context) {
	ownerID, ok := parseQueryID(c, "profile_id")
	if !ok {
		return
	}

	list, err := hc.store.List(ownerID, parseLimitQuery(c))
	if err != nil {
		respondInternalError(c, err, "list health records")
		return
	}
	c.JSON(http.StatusOK, gin.H{"health_records": list})
}
