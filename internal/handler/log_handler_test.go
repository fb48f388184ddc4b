package handler

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"

	"github.com/dailywalker/walkloop-backend-go/internal/database"
	"github.com/dailywalker/walkloop-backend-go/internal/repository"
	"github.com/dailywalker/walkloop-backend-go/internal/service"
)

func newTestRouter(t *testing.T) (*gin.Engine, *repository.LogRepository) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	db, err := database.Open(database.Config{
		Path: filepath.Join(t.TempDir(), "routes.db"),
	})
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	repo := repository.NewLogRepository(db)
	logService := service.NewLogService(repo, nil)

	logHandler := NewLogHandler(logService)
	routeHandler := NewRouteHandler(service.NewRouteService(), logService)

	r := gin.New()
	r.POST("/api/v1/log", logHandler.LogRoute)
	r.GET("/api/v1/logs", logHandler.GetLogs)
	r.POST("/api/v1/route", routeHandler.GenerateRoute)

	return r, repo
}

func postJSON(r *gin.Engine, path, body string) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)
	return w
}

func TestLogRouteEndpoint(t *testing.T) {
	r, repo := newTestRouter(t)

	w := postJSON(r, "/api/v1/log", `{
		"user_id": "user_abc",
		"fingerprint": {"browser": "Chrome", "os": "Android"},
		"start_location": "40.0, -73.0",
		"distance": 5,
		"unit": "km",
		"maps_url": "https://www.google.com/maps/dir/?api=1"
	}`)
	require.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		Code int `json:"code"`
		Data struct {
			Message string `json:"message"`
			ID      int64  `json:"id"`
		} `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.Zero(t, resp.Code)
	require.Equal(t, "Log saved", resp.Data.Message)
	require.Equal(t, int64(1), resp.Data.ID)

	n, err := repo.Count()
	require.NoError(t, err)
	require.Equal(t, int64(1), n)
}

func TestLogRouteEndpointRejectsMissingFields(t *testing.T) {
	r, repo := newTestRouter(t)

	// Missing user_id.
	w := postJSON(r, "/api/v1/log", `{"maps_url": "https://example.com"}`)
	require.Equal(t, http.StatusBadRequest, w.Code)

	// Missing maps_url.
	w = postJSON(r, "/api/v1/log", `{"user_id": "user_abc"}`)
	require.Equal(t, http.StatusBadRequest, w.Code)

	// No store write happened.
	n, err := repo.Count()
	require.NoError(t, err)
	require.Zero(t, n)
}

func TestGetLogsEndpoint(t *testing.T) {
	r, _ := newTestRouter(t)

	for _, user := range []string{"u1", "u2"} {
		w := postJSON(r, "/api/v1/log",
			`{"user_id": "`+user+`", "maps_url": "m", "fingerprint": {"os": "Linux"}}`)
		require.Equal(t, http.StatusOK, w.Code)
	}

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/v1/logs", nil))
	require.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		Data struct {
			Count int `json:"count"`
			Data  []struct {
				UserID      string            `json:"user_id"`
				Fingerprint map[string]string `json:"fingerprint"`
				Timestamp   string            `json:"timestamp"`
			} `json:"data"`
		} `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.Equal(t, 2, resp.Data.Count)
	require.Equal(t, "u2", resp.Data.Data[0].UserID)
	require.Equal(t, map[string]string{"os": "Linux"}, resp.Data.Data[0].Fingerprint)
	require.NotEmpty(t, resp.Data.Data[0].Timestamp)
}

func TestGenerateRouteEndpoint(t *testing.T) {
	r, repo := newTestRouter(t)

	w := postJSON(r, "/api/v1/route", `{
		"start_location": "40.0, -73.0",
		"distance": 5,
		"unit": "km",
		"seed": "1700000000000",
		"user_id": "user_abc",
		"fingerprint": {"browser": "Firefox"}
	}`)
	require.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		Data struct {
			MapsURL string `json:"maps_url"`
			Plan    struct {
				Waypoints []struct {
					Lat float64 `json:"lat"`
					Lng float64 `json:"lng"`
				} `json:"waypoints"`
			} `json:"plan"`
		} `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.Contains(t, resp.Data.MapsURL, "origin=40,-73&destination=40,-73")
	require.Contains(t, resp.Data.MapsURL, "travelmode=walking")
	require.Len(t, resp.Data.Plan.Waypoints, 2)

	// The identified request was handed to the logging pipeline.
	n, err := repo.Count()
	require.NoError(t, err)
	require.Equal(t, int64(1), n)
}

func TestGenerateRouteEndpointAnonymousSkipsLogging(t *testing.T) {
	r, repo := newTestRouter(t)

	w := postJSON(r, "/api/v1/route", `{
		"start_location": "40.0, -73.0",
		"distance": 5,
		"unit": "km"
	}`)
	require.Equal(t, http.StatusOK, w.Code)

	n, err := repo.Count()
	require.NoError(t, err)
	require.Zero(t, n)
}

func TestGenerateRouteEndpointRejectsBadInput(t *testing.T) {
	r, repo := newTestRouter(t)

	for _, body := range []string{
		`{"distance": 5, "unit": "km"}`,
		`{"start_location": "somewhere nice", "distance": 5, "unit": "km"}`,
		`{"start_location": "40, -73", "distance": 0, "unit": "km"}`,
		`{"start_location": "40, -73", "distance": 5, "unit": "lightyears"}`,
		`not json`,
	} {
		w := postJSON(r, "/api/v1/route", body)
		require.Equal(t, http.StatusBadRequest, w.Code, "body %s", body)
	}

	n, err := repo.Count()
	require.NoError(t, err)
	require.Zero(t, n)
}
