package http

import (
	"github.com/gin-gonic/gin"
)

// DataResetter wipes all stored rows across every table.
type DataResetter interface {
	ClearAllData() error
}

type AdminController struct {
	resetter DataResetter
}

func NewAdminController(resetter DataResetter) *AdminController {
	return &AdminController{resetter: resetter}
}

// ResetData deletes every profile, record, session and preference in one
// transaction. There is no undo.
// POST /api/reset
func (ac *AdminController) ResetData(c *gin.Context) {
	if err := ac.resetter.ClearAllData(); err != nil {
		respondInternalError(c, err, "reset data")
		return
	}
	respondSuccess(c, "all data cleared")
}
