package http

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// PreferenceStore persists small key/value settings.
type PreferenceStore interface {
	Get(key string) (string, bool, error)
	Set(key, value string) error
	Delete(key string) error
}

type PreferencesController struct {
	store PreferenceStore
}

func NewPreferencesController(store PreferenceStore) *PreferencesController {
	return &PreferencesController{store: store}
}

// GetPreference returns a preference value, or null when the key is unset.
// GET /api/preferences/:key
func (pc *PreferencesController) GetPreference(c *gin.Context) {
	key := c.Param("key")

	value, found, err := pc.store.Get(key)
	if err != nil {
		respondInternalError(c, err, "read preference")
		return
	}
	if !found {
		c.JSON(http.StatusOK, gin.H{"key": key, "value": nil})
		return
	}
	c.JSON(http.StatusOK, gin.H{"key": key, "value": value})
}

type setPreferenceRequest struct {
	Value string `json:"value" binding:"required"`
}

// SetPreference creates or overwrites a preference value.
// PUT /api/preferences/:key
func (pc *PreferencesController) SetPreference(c *gin.Context) {
	key := c.Param("key")

	var req setPreferenceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, err.Error())
		return
	}

	if err := pc.store.Set(key, req.Value); err != nil {
		respondInternalError(c, err, "write preference")
		return
	}
	c.JSON(http.StatusOK, gin.H{"key": key, "value": req.Value})
}

// DeletePreference removes a preference key. Removing an unset key succeeds.
// DELETE /api/preferences/:key
func (pc *PreferencesController) DeletePreference(c *gin.Context) {
	key := c.Param("key")

	if err := pc.store.Delete(key); err != nil {
		respondInternalError(c, err, "delete preference")
		return
	}
	respondSuccess(c, "preference deleted")
}
