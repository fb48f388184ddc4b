package handler

import (
	"log"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/dailywalker/walkloop-backend-go/internal/models"
	"github.com/dailywalker/walkloop-backend-go/internal/service"
	"github.com/dailywalker/walkloop-backend-go/pkg/response"
)

// RouteHandler handles HTTP requests for loop route generation
type RouteHandler struct {
	routeService *service.RouteService
	logService   *service.LogService
}

// NewRouteHandler creates a new route handler
func NewRouteHandler(routeService *service.RouteService, logService *service.LogService) *RouteHandler {
	return &RouteHandler{
		routeService: routeService,
		logService:   logService,
	}
}

// GenerateRouteRequest is the JSON body for POST /api/v1/route
type GenerateRouteRequest struct {
	StartLocation string             `json:"start_location" binding:"required"`
	Distance      float64            `json:"distance"`
	Unit          string             `json:"unit"`
	HeightCm      float64            `json:"height_cm"`
	Mode          string             `json:"mode"`
	Seed          string             `json:"seed"`
	UserID        string             `json:"user_id"`
	Fingerprint   models.Fingerprint `json:"fingerprint"`
}

// GenerateRoute handles POST /api/v1/route
func (h *RouteHandler) GenerateRoute(c *gin.Context) {
	var req GenerateRouteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	if req.Unit == "" {
		req.Unit = string(models.UnitKilometers)
	}

	// A fresh seed per click keeps routes varied; the caller may pin
	// one to reproduce a loop.
	seed := req.Seed
	if seed == "" {
		seed = strconv.FormatInt(time.Now().UnixMilli(), 10)
	}

	route, err := h.routeService.Generate(service.GenerateInput{
		StartLocation: req.StartLocation,
		Distance:      req.Distance,
		Unit:          req.Unit,
		HeightCm:      req.HeightCm,
		Mode:          req.Mode,
		Seed:          seed,
	})
	if err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	// Record the route when the caller identified itself. The route
	// was already generated, so a logging failure is reported for the
	// operator but does not fail the response.
	if req.UserID != "" {
		_, err := h.logService.LogRoute(models.LogEntry{
			UserID:        req.UserID,
			Fingerprint:   req.Fingerprint,
			StartLocation: req.StartLocation,
			Distance:      req.Distance, // as entered, before unit normalization
			Unit:          req.Unit,
			MapsURL:       route.MapsURL,
			Mode:          string(route.Mode),
		})
		if err != nil {
			log.Printf("Failed to log generated route for user %s: %v", req.UserID, err)
		}
	}

	response.Success(c, route)
}
