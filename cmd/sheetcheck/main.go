// Command sheetcheck appends a probe row to the configured spreadsheet
// and reports the outcome, for verifying credentials and the sheet
// range before deploying.
package main

import (
	"log"
	"strconv"
	"time"

	"github.com/dailywalker/walkloop-backend-go/internal/config"
	"github.com/dailywalker/walkloop-backend-go/internal/models"
	"github.com/dailywalker/walkloop-backend-go/internal/sheets"
)

func main() {
	cfg := config.Load()

	if cfg.SpreadsheetID == "" {
		log.Fatal("SPREADSHEET_ID is not set")
	}

	mirror := sheets.New(sheets.Config{
		SpreadsheetID:   cfg.SpreadsheetID,
		SheetRange:      cfg.SheetRange,
		CredentialPaths: cfg.CredentialPaths,
		QueueSize:       1,
	})
	mirror.Start()

	mirror.Enqueue(models.LogEntry{
		UserID:        "sheetcheck",
		Fingerprint:   models.Fingerprint{"probe": "true"},
		StartLocation: "0, 0",
		Distance:      0,
		Unit:          "km",
		MapsURL:       "https://example.invalid/probe-" + strconv.FormatInt(time.Now().Unix(), 10),
	})

	// Close drains the queue, so the probe row is attempted before
	// the process exits. The outcome lands in the log output.
	mirror.Close()
}
