package main

import (
	"log"

	"github.com/dailywalker/walkloop-backend-go/internal/api"
	"github.com/dailywalker/walkloop-backend-go/internal/config"
	"github.com/dailywalker/walkloop-backend-go/internal/database"
	"github.com/dailywalker/walkloop-backend-go/internal/handler"
	"github.com/dailywalker/walkloop-backend-go/internal/repository"
	"github.com/dailywalker/walkloop-backend-go/internal/service"
	"github.com/dailywalker/walkloop-backend-go/internal/sheets"
)

func main() {
	cfg := config.Load()

	db, err := database.Open(database.Config{Path: cfg.DBPath})
	if err != nil {
		log.Fatal("Failed to initialize database:", err)
	}
	defer db.Close()

	mirror := sheets.New(sheets.Config{
		SpreadsheetID:   cfg.SpreadsheetID,
		SheetRange:      cfg.SheetRange,
		CredentialPaths: cfg.CredentialPaths,
		QueueSize:       cfg.MirrorQueueSize,
	})
	mirror.Start()
	defer mirror.Close()

	logRepo := repository.NewLogRepository(db)
	logService := service.NewLogService(logRepo, mirror)
	routeService := service.NewRouteService()

	router := api.SetupRouter(cfg, api.Handlers{
		Route:   handler.NewRouteHandler(routeService, logService),
		Log:     handler.NewLogHandler(logService),
		Session: handler.NewSessionHandler(),
	})

	log.Printf("Server starting on port %s", cfg.Port)
	if err := router.Run(cfg.Port); err != nil {
		log.Fatal("Failed to start server:", err)
	}
}
