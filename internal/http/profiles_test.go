package http

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ysfyavuzz/DostAnne-sub001/internal/database"
	"github.com/ysfyavuzz/DostAnne-sub001/internal/database/preferences"
	"github.com/ysfyavuzz/DostAnne-sub001/internal/database/profiles"
	"github.com/ysfyavuzz/DostAnne-sub001/internal/entities"
)

func setupProfilesTestDB(t *testing.T) (*database.Database, *profiles.Repository, func()) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	dbPath := "./test_http_profiles_" + strings.ReplaceAll(t.Name(), "/", "_") + ".db"
	db, err := database.NewDatabase(dbPath)
	require.NoError(t, err)

	repo := profiles.NewRepository(db.DB, preferences.NewRepository(db.DB))

	cleanup := func() {
		db.Close()
		os.Remove(dbPath)
	}
	return db, repo, cleanup
}

func profilesRouter(repo *profiles.Repository) *gin.Engine {
	controller := NewProfilesController(repo)
	router := gin.New()
	router.POST("/api/profiles", controller.CreateProfile)
	router.GET("/api/profiles", controller.ListProfiles)
	router.GET("/api/profiles/current", controller.GetCurrentProfile)
	router.PUT("/api/profiles/current", controller.SetCurrentProfile)
	router.PATCH("/api/profiles/:id", controller.UpdateProfile)
	router.DELETE("/api/profiles/:id", controller.DeleteProfile)
	return router
}

func TestProfilesController_CreateProfile(t *testing.T) {
	t.Run("creates profile and makes it current", func(t *testing.T) {
		_, repo, cleanup := setupProfilesTestDB(t)
		defer cleanup()

		router := profilesRouter(repo)

		body := `{"name": "Elif", "birth_date": "2025-03-10", "gender": "female"}`
		w := httptest.NewRecorder()
		req, _ := http.NewRequest("POST", "/api/profiles", strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
		router.ServeHTTP(w, req)

		require.Equal(t, http.StatusCreated, w.Code)

		var created entities.Profile
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &created))
		assert.Equal(t, "Elif", created.Name)
		assert.NotZero(t, created.ID)

		current, err := repo.GetCurrent()
		require.NoError(t, err)
		require.NotNil(t, current)
		assert.Equal(t, created.ID, current.ID)
	})

	t.Run("rejects missing name", func(t *testing.T) {
		_, repo, cleanup := setupProfilesTestDB(t)
		defer cleanup()

		router := profilesRouter(repo)

		w := httptest.NewRecorder()
		req, _ := http.NewRequest("POST", "/api/profiles", strings.NewReader(`{"birth_date": "2025-03-10"}`))
		req.Header.Set("Content-Type", "application/json")
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("rejects malformed birth date", func(t *testing.T) {
		_, repo, cleanup := setupProfilesTestDB(t)
		defer cleanup()

		router := profilesRouter(repo)

		w := httptest.NewRecorder()
		req, _ := http.NewRequest("POST", "/api/profiles", strings.NewReader(`{"name": "Elif", "birth_date": "10.03.2025"}`))
		req.Header.Set("Content-Type", "application/json")
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}

func TestProfilesController_CurrentProfile(t *testing.T) {
	t.Run("returns 404 when no profile exists", func(t *testing.T) {
		_, repo, cleanup := setupProfilesTestDB(t)
		defer cleanup()

		router := profilesRouter(repo)

		w := httptest.NewRecorder()
		req, _ := http.NewRequest("GET", "/api/profiles/current", nil)
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusNotFound, w.Code)
	})

	t.Run("switches current profile", func(t *testing.T) {
		_, repo, cleanup := setupProfilesTestDB(t)
		defer cleanup()

		first := &entities.Profile{Name: "Elif", BirthDate: time.Now().AddDate(-1, 0, 0)}
		require.NoError(t, repo.Create(first))
		second := &entities.Profile{Name: "Deniz", BirthDate: time.Now().AddDate(0, -3, 0)}
		require.NoError(t, repo.Create(second))

		router := profilesRouter(repo)

		w := httptest.NewRecorder()
		req, _ := http.NewRequest("PUT", "/api/profiles/current", strings.NewReader(`{"profile_id": 1}`))
		req.Header.Set("Content-Type", "application/json")
		router.ServeHTTP(w, req)
		require.Equal(t, http.StatusOK, w.Code)

		w = httptest.NewRecorder()
		req, _ = http.NewRequest("GET", "/api/profiles/current", nil)
		router.ServeHTTP(w, req)
		require.Equal(t, http.StatusOK, w.Code)

		var current entities.Profile
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &current))
		assert.Equal(t, first.ID, current.ID)
		assert.Equal(t, "Elif", current.Name)
	})

	t.Run("rejects switching to unknown profile", func(t *testing.T) {
		_, repo, cleanup := setupProfilesTestDB(t)
		defer cleanup()

		router := profilesRouter(repo)

		w := httptest.NewRecorder()
		req, _ := http.NewRequest("PUT", "/api/profiles/current", strings.NewReader(`{"profile_id": 999}`))
		req.Header.Set("Content-Type", "application/json")
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}

func TestProfilesController_UpdateProfile(t *testing.T) {
	t.Run("applies partial update", func(t *testing.T) {
		_, repo, cleanup := setupProfilesTestDB(t)
		defer cleanup()

		profile := &entities.Profile{Name: "Elif", BirthDate: time.Now().AddDate(-1, 0, 0), WeightKG: 9.2}
		require.NoError(t, repo.Create(profile))

		router := profilesRouter(repo)

		w := httptest.NewRecorder()
		req, _ := http.NewRequest("PATCH", "/api/profiles/1", strings.NewReader(`{"weight_kg": 10.4}`))
		req.Header.Set("Content-Type", "application/json")
		router.ServeHTTP(w, req)
		require.Equal(t, http.StatusOK, w.Code)

		updated, err := repo.GetByID(profile.ID)
		require.NoError(t, err)
		require.NotNil(t, updated)
		assert.InDelta(t, 10.4, updated.WeightKG, 0.001)
		assert.Equal(t, "Elif", updated.Name)
	})

	t.Run("returns 404 for unknown profile", func(t *testing.T) {
		_, repo, cleanup := setupProfilesTestDB(t)
		defer cleanup()

		router := profilesRouter(repo)

		w := httptest.NewRecorder()
		req, _ := http.NewRequest("PATCH", "/api/profiles/42", strings.NewReader(`{"name": "Nobody"}`))
		req.Header.Set("Content-Type", "application/json")
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusNotFound, w.Code)
	})
}

func TestProfilesController_DeleteProfile(t *testing.T) {
	t.Run("deletes existing profile", func(t *testing.T) {
		_, repo, cleanup := setupProfilesTestDB(t)
		defer cleanup()

		profile := &entities.Profile{Name: "Elif", BirthDate: time.Now().AddDate(-1, 0, 0)}
		require.NoError(t, repo.Create(profile))

		router := profilesRouter(repo)

		w := httptest.NewRecorder()
		req, _ := http.NewRequest("DELETE", "/api/profiles/1", nil)
		router.ServeHTTP(w, req)
		require.Equal(t, http.StatusOK, w.Code)

		remaining, err := repo.List()
		require.NoError(t, err)
		assert.Empty(t, remaining)
	})

	t.Run("returns 404 for unknown profile", func(t *testing.T) {
		_, repo, cleanup := setupProfilesTestDB(t)
		defer cleanup()

		router := profilesRouter(repo)

		w := httptest.NewRecorder()
		req, _ := http.NewRequest("DELETE", "/api/profiles/42", nil)
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusNotFound, w.Code)
	})
}
