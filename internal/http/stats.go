package http

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/ysfyavuzz/DostAnne-sub001/internal/database/stats"
)

// StatsProvider aggregates a profile's daily activity numbers.
type StatsProvider interface {
	GetTodayStats(ownerID uint) (*stats.DailyStats, error)
	GetStatsForDay(ownerID uint, day time.Time) (*stats.DailyStats, error)
}

type StatsController struct {
	provider StatsProvider
}

func NewStatsController(provider StatsProvider) *StatsController {
	return &StatsController{provider: provider}
}

// GetTodayStats returns today's aggregated numbers for a profile. The window
// is the local calendar day.
// GET /api/stats/today?profile_id=
func (sc *StatsController) GetTodayStats(c *gin.Context) {
	ownerID, ok := parseQueryID(c, "profile_id")
	if !ok {
		return
	}

	dailyStats, err := sc.provider.GetTodayStats(ownerID)
	if err != nil {
		respondInternalError(c, err, "aggregate daily stats")
		return
	}
	c.JSON(http.StatusOK, dailyStats)
}

// GetStatsForDay returns aggregated numbers for an arbitrary day.
// GET /api/stats/day?profile_id=&date=2026-09-01
func (sc *StatsController) GetStatsForDay(c *gin.Context) {
	ownerID, ok := parseQueryID(c, "profile_id")
	if !ok {
		return
	}

	day, err := time.ParseInLocation("2006-01-02", c.Query("date"), time.Local)
	if err != nil {
		respondBadRequest(c, "date must be in YYYY-MM-DD format")
		return
	}

	dailyStats, err := sc.provider.GetStatsForDay(ownerID, day)
	if err != nil {
		respondInternalError(c, err, "aggregate daily stats")
		return
	}
	c.JSON(http.StatusOK, dailyStats)
}
