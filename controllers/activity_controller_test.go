package controllers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"bloom/models"
	"bloom/services"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func setupActivityRouter(t *testing.T) (*gin.Engine, *gorm.DB) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{TranslateError: true})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&models.ActivityLog{}))

	r := gin.New()
	// stand-in for the JWT middleware
	r.Use(func(c *gin.Context) {
		c.Set("userID", uint(1))
		c.Next()
	})

	ctl := NewActivityController(services.NewActivityService(db))
	r.POST("/activities", ctl.Log)
	r.GET("/activities", ctl.Days)
	return r, db
}

func postForm(r *gin.Engine, path string, form url.Values) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestActivityLogFormSubmission(t *testing.T) {
	r, db := setupActivityRouter(t)

	w := postForm(r, "/activities", url.Values{
		"name":      {"Walk"},
		"hours":     {"1"},
		"minutes":   {"30"},
		"enjoyment": {"7.25"},
	})
	require.Equal(t, http.StatusCreated, w.Code)

	var row models.ActivityLog
	require.NoError(t, db.First(&row).Error)
	assert.Equal(t, "walk", row.ActivityName)
	assert.Equal(t, 90, row.TotalMinutes)
}

func TestActivityLogValidationEchoesInput(t *testing.T) {
	r, db := setupActivityRouter(t)

	w := postForm(r, "/activities", url.Values{
		"name":    {"Walk"},
		"hours":   {"zero"},
		"minutes": {"30"},
	})
	require.Equal(t, http.StatusUnprocessableEntity, w.Code)

	var body struct {
		Field   string                 `json:"field"`
		Message string                 `json:"message"`
		Input   services.ActivityInput `json:"input"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, "hours", body.Field)
	assert.Equal(t, "not a number", body.Message)
	assert.Equal(t, "Walk", body.Input.Name, "raw input comes back for re-render")
	assert.Equal(t, "zero", body.Input.Hours)

	var count int64
	require.NoError(t, db.Model(&models.ActivityLog{}).Count(&count).Error)
	assert.Zero(t, count)
}

func TestActivityDaysPayload(t *testing.T) {
	r, db := setupActivityRouter(t)

	row := models.ActivityLog{UserID: 1, ActivityName: "walk", TotalMinutes: 65, Reflection: "x"}
	require.NoError(t, db.Create(&row).Error)

	req := httptest.NewRequest(http.MethodGet, "/activities", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	require.Equal(t, http.StatusOK, w.Code)

	var body struct {
		Days []services.DayBucket[services.ActivityEntry] `json:"days"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	require.Len(t, body.Days, 1)
	require.Len(t, body.Days[0].Entries, 1)
	assert.Equal(t, "1h 5m", body.Days[0].Entries[0].Duration)
}
