package handlers

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"os"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dancedispatch/server/internal/helpers"
	"github.com/dancedispatch/server/internal/models"
	"github.com/dancedispatch/server/internal/services"
)

func newSavedRouter(t *testing.T, userID string) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	cr := models.CsvNewRepo(t.TempDir(), 5*time.Minute, slog.New(slog.NewTextHandler(os.Stderr, nil)))
	ss := services.NewSavedService(cr)

	r := gin.New()
	if userID != "" {
		r.Use(func(c *gin.Context) {
			c.Set("user", &helpers.EnhancedClaims{UserID: userID})
			c.Next()
		})
	}
	r.GET("/users/saved-events/:id", CheckSaved(ss, models.SavedEvents))
	r.POST("/users/saved-events/:id", ToggleSaved(ss, models.SavedEvents))
	r.GET("/users/saved-events", ListSaved(ss, models.SavedEvents))
	return r
}

func TestCheckSaved_AnonymousIsFalse(t *testing.T) {
	r := newSavedRouter(t, "")

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/users/saved-events/e1", nil)
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	var body map[string]bool
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.False(t, body["isSaved"])
}

func TestToggleSaved_RoundTrip(t *testing.T) {
	r := newSavedRouter(t, "user1")

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/users/saved-events/e1", strings.NewReader(`{"saved":true}`))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)
	require.Equal(t, http.StatusOK, w.Code)

	var res helpers.ApiResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &res))
	assert.True(t, res.Success)
	data, ok := res.Data.(map[string]interface{})
	require.True(t, ok)
	assert.Equal(t, "user1-e1", data["id"])

	w = httptest.NewRecorder()
	req = httptest.NewRequest(http.MethodGet, "/users/saved-events/e1", nil)
	r.ServeHTTP(w, req)
	require.Equal(t, http.StatusOK, w.Code)
	var check map[string]bool
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &check))
	assert.True(t, check["isSaved"])

	w = httptest.NewRecorder()
	req = httptest.NewRequest(http.MethodGet, "/users/saved-events", nil)
	r.ServeHTTP(w, req)
	require.Equal(t, http.StatusOK, w.Code)
	var list helpers.ApiResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &list))
	assert.Equal(t, 1, list.Total)
}

func TestToggleSaved_RequiresSessionAndBody(t *testing.T) {
	anon := newSavedRouter(t, "")
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/users/saved-events/e1", strings.NewReader(`{"saved":true}`))
	req.Header.Set("Content-Type", "application/json")
	anon.ServeHTTP(w, req)
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	authed := newSavedRouter(t, "user1")
	w = httptest.NewRecorder()
	req = httptest.NewRequest(http.MethodPost, "/users/saved-events/e1", strings.NewReader(`{}`))
	req.Header.Set("Content-Type", "application/json")
	authed.ServeHTTP(w, req)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}
