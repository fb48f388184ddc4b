package api

import (
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/dailywalker/walkloop-backend-go/internal/config"
	"github.com/dailywalker/walkloop-backend-go/internal/handler"
	"github.com/dailywalker/walkloop-backend-go/internal/middleware"
	"github.com/dailywalker/walkloop-backend-go/pkg/response"
)

// Handlers groups the HTTP handlers the router wires up.
type Handlers struct {
	Route   *handler.RouteHandler
	Log     *handler.LogHandler
	Session *handler.SessionHandler
}

// SetupRouter configures the Gin engine: CORS, health check, the API
// group and the static frontend glue.
func SetupRouter(cfg *config.Config, h Handlers) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middleware.Logger())

	// CORS: allow all origins, fine for an MVP without credentials.
	r.Use(func(c *gin.Context) {
		c.Writer.Header().Set("Access-Control-Allow-Origin", "*")
		c.Writer.Header().Set("Access-Control-Allow-Methods", "GET, POST, OPTIONS")
		c.Writer.Header().Set("Access-Control-Allow-Headers", "Content-Type")

		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(http.StatusNoContent)
			return
		}

		c.Next()
	})

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status":  "ok",
			"message": "Walkloop backend is running",
		})
	})

	api := r.Group("/api/v1")
	api.Use(middleware.RateLimit(60, time.Minute))
	{
		api.POST("/route", h.Route.GenerateRoute)
		api.POST("/log", h.Log.LogRoute)
		api.GET("/logs", h.Log.GetLogs)
		api.GET("/session", h.Session.NewSession)
	}

	// Static frontend. Any non-API path falls back to index.html so
	// client-side routing keeps working.
	if info, err := os.Stat(cfg.StaticDir); err == nil && info.IsDir() {
		r.GET("/admin", func(c *gin.Context) {
			c.File(filepath.Join(cfg.StaticDir, "dashboard.html"))
		})

		r.NoRoute(func(c *gin.Context) {
			if strings.HasPrefix(c.Request.URL.Path, "/api") {
				response.NotFound(c, "not found")
				return
			}

			file := filepath.Join(cfg.StaticDir, filepath.Clean("/"+c.Request.URL.Path))
			if info, err := os.Stat(file); err == nil && !info.IsDir() {
				c.File(file)
				return
			}
			c.File(filepath.Join(cfg.StaticDir, "index.html"))
		})
	}

	return r
}
