package config

import (
	"os"
	"strconv"
)

// Config holds all runtime configuration, loaded once at startup and
// passed down explicitly.
type Config struct {
	Port      string
	DBPath    string
	StaticDir string

	// Remote mirror sink. An empty SpreadsheetID or no readable
	// credential file means the mirror is disabled, which is a valid
	// configuration, not an error.
	SpreadsheetID   string
	SheetRange      string
	CredentialPaths []string
	MirrorQueueSize int
}

// Load reads configuration from the environment, applying defaults.
func Load() *Config {
	port := os.Getenv("PORT")
	if port == "" {
		port = ":3000"
	}

	dbPath := os.Getenv("DB_PATH")
	if dbPath == "" {
		dbPath = "./data/routes.db"
	}

	staticDir := os.Getenv("STATIC_DIR")
	if staticDir == "" {
		staticDir = "./public"
	}

	sheetRange := os.Getenv("SHEET_RANGE")
	if sheetRange == "" {
		sheetRange = "Sheet1!A:G"
	}

	queueSize := 64
	if v := os.Getenv("MIRROR_QUEUE_SIZE"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			queueSize = n
		}
	}

	// Candidate locations for the service-account key, checked in
	// order on every mirror attempt. Covers local runs, the Docker
	// image layout and the hosting provider's secret mount.
	paths := []string{
		"./credentials.json",
		"./server/credentials.json",
		"/etc/secrets/credentials.json",
	}
	if p := os.Getenv("GOOGLE_CREDENTIALS_PATH"); p != "" {
		paths = append([]string{p}, paths...)
	}

	return &Config{
		Port:            port,
		DBPath:          dbPath,
		StaticDir:       staticDir,
		SpreadsheetID:   os.Getenv("SPREADSHEET_ID"),
		SheetRange:      sheetRange,
		CredentialPaths: paths,
		MirrorQueueSize: queueSize,
	}
}
