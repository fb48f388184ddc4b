package handler

import (
	"github.com/gin-gonic/gin"

	"github.com/dailywalker/walkloop-backend-go/internal/models"
	"github.com/dailywalker/walkloop-backend-go/internal/service"
	"github.com/dailywalker/walkloop-backend-go/pkg/response"
)

// LogHandler handles HTTP requests for route logs
type LogHandler struct {
	logService *service.LogService
}

// NewLogHandler creates a new log handler
func NewLogHandler(logService *service.LogService) *LogHandler {
	return &LogHandler{
		logService: logService,
	}
}

// LogRouteRequest is the JSON body for POST /api/v1/log
type LogRouteRequest struct {
	UserID        string             `json:"user_id"`
	Fingerprint   models.Fingerprint `json:"fingerprint"`
	StartLocation string             `json:"start_location"`
	Distance      float64            `json:"distance"`
	Unit          string             `json:"unit"`
	MapsURL       string             `json:"maps_url"`
	Mode          string             `json:"mode"`
}

// LogRoute handles POST /api/v1/log
func (h *LogHandler) LogRoute(c *gin.Context) {
	var req LogRouteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	// Reject before any store write happens.
	if req.UserID == "" || req.MapsURL == "" {
		response.BadRequest(c, "Missing required fields")
		return
	}

	id, err := h.logService.LogRoute(models.LogEntry{
		UserID:        req.UserID,
		Fingerprint:   req.Fingerprint,
		StartLocation: req.StartLocation,
		Distance:      req.Distance,
		Unit:          req.Unit,
		MapsURL:       req.MapsURL,
		Mode:          req.Mode,
	})
	if err != nil {
		response.InternalError(c, err.Error())
		return
	}

	response.Success(c, gin.H{
		"message": "Log saved",
		"id":      id,
	})
}

// GetLogs handles GET /api/v1/logs
func (h *LogHandler) GetLogs(c *gin.Context) {
	records, err := h.logService.ListRoutes()
	if err != nil {
		response.InternalError(c, err.Error())
		return
	}

	response.Success(c, gin.H{
		"data":  records,
		"count": len(records),
	})
}
