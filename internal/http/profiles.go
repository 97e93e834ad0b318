package http

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/ysfyavuzz/DostAnne-sub001/internal/entities"
)

// ProfileStore defines database operations for profile management.
type ProfileStore interface {
	Create(profile *entities.Profile) error
	GetByID(id uint) (*entities.Profile, error)
	List() ([]entities.Profile, error)
	Update(id uint, fields map[string]interface{}) (bool, error)
	GetCurrent() (*entities.Profile, error)
	SetCurrent(id uint) error
	Delete(id uint) (bool, error)
}

type ProfilesController struct {
	store ProfileStore
}

func NewProfilesController(store ProfileStore) *ProfilesController {
	return &ProfilesController{store: store}
}

type createProfileRequest struct {
	Name      string  `json:"name" binding:"required"`
	BirthDate string  `json:"birth_date" binding:"required"`
	Gender    string  `json:"gender" binding:"required,oneof=male female"`
	WeightKG  float64 `json:"weight_kg"`
	HeightCM  float64 `json:"height_cm"`
	BloodType string  `json:"blood_type"`
	PhotoURI  string  `json:"photo_uri"`
}

// CreateProfile creates a new child profile; the new profile becomes current.
// POST /api/profiles
func (pc *ProfilesController) CreateProfile(c *gin.Context) {
	var req createProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, err.Error())
		return
	}

	birthDate, err := time.Parse("2006-01-02", req.BirthDate)
	if err != nil {
		respondBadRequest(c, "birth_date must be YYYY-MM-DD")
		return
	}

	profile := &entities.Profile{
		Name:      req.Name,
		BirthDate: birthDate,
		Gender:    entities.Gender(req.Gender),
		WeightKG:  req.WeightKG,
		HeightCM:  req.HeightCM,
		BloodType: req.BloodType,
		PhotoURI:  req.PhotoURI,
	}
	if err := pc.store.Create(profile); err != nil {
		respondInternalError(c, err, "create profile")
		return
	}

	respondCreated(c, profile)
}

// ListProfiles returns all profiles in creation order.
// GET /api/profiles
func (pc *ProfilesController) ListProfiles(c *gin.Context) {
	list, err := pc.store.List()
	if err != nil {
		respondInternalError(c, err, "list profiles")
		return
	}
	c.JSON(http.StatusOK, gin.H{"profiles": list})
}

// GetCurrentProfile returns the currently selected profile. "No profile
// selected" is a normal state and maps to 404, not 500.
// GET /api/profiles/current
func (pc *ProfilesController) GetCurrentProfile(c *gin.Context) {
	profile, err := pc.store.GetCurrent()
	if err != nil {
		respondInternalError(c, err, "get current profile")
		return
	}
	if profile == nil {
		respondNotFound(c, "current profile")
		return
	}
	c.JSON(http.StatusOK, profile)
}

type setCurrentRequest struct {
	ProfileID uint `json:"profile_id" binding:"required"`
}

// SetCurrentProfile switches the current profile.
// PUT /api/profiles/current
func (pc *ProfilesController) SetCurrentProfile(c *gin.Context) {
	var req setCurrentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, err.Error())
		return
	}

	if err := pc.store.SetCurrent(req.ProfileID); err != nil {
		respondBadRequest(c, err.Error())
		return
	}
	respondSuccess(c, "current profile updated")
}

type updateProfileRequest struct {
	Name      *string  `json:"name"`
	BirthDate *string  `json:"birth_date"`
	Gender    *string  `json:"gender"`
	WeightKG  *float64 `json:"weight_kg"`
	HeightCM  *float64 `json:"height_cm"`
	BloodType *string  `json:"blood_type"`
	PhotoURI  *string  `json:"photo_uri"`
}

// UpdateProfile applies a partial update; only supplied fields are written.
// PATCH /api/profiles/:id
func (pc *ProfilesController) UpdateProfile(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	var req updateProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, err.Error())
		return
	}

	fields := make(map[string]interface{})
	if req.Name != nil {
		fields["name"] = *req.Name
	}
	if req.BirthDate != nil {
		birthDate, err := time.Parse("2006-01-02", *req.BirthDate)
		if err != nil {
			respondBadRequest(c, "birth_date must be YYYY-MM-DD")
			return
		}
		fields["birth_date"] = birthDate
	}
	if req.Gender != nil {
		fields["gender"] = *req.Gender
	}
	if req.WeightKG != nil {
		fields["weight_kg"] = *req.WeightKG
	}
	if req.HeightCM != nil {
		fields["height_cm"] = *req.HeightCM
	}
	if req.BloodType != nil {
		fields["blood_type"] = *req.BloodType
	}
	if req.PhotoURI != nil {
		fields["photo_uri"] = *req.PhotoURI
	}
	if len(fields) == 0 {
		respondBadRequest(c, "no fields to update")
		return
	}

	updated, err := pc.store.Update(id, fields)
	if err != nil {
		respondInternalError(c, err, "update profile")
		return
	}
	if !updated {
		respondNotFound(c, "profile")
		return
	}

	profile, err := pc.store.GetByID(id)
	if err != nil || profile == nil {
		respondSuccess(c, "profile updated")
		return
	}
	c.JSON(http.StatusOK, profile)
}

// DeleteProfile removes a profile and, via cascade constraints, everything
// recorded under it.
// DELETE /api/profiles/:id
func (pc *ProfilesController) DeleteProfile(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	deleted, err := pc.store.Delete(id)
	if err != nil {
		respondInternalError(c, err, "delete profile")
		return
	}
	if !deleted {
		respondNotFound(c, "profile")
		return
	}
	respondSuccess(c, "profile deleted")
}
