package models

// Fingerprint is a client-supplied bundle of device attributes, used as
// a soft identifier. The backend never interprets individual keys; they
// are serialized and stored as-is. The keys the frontend currently
// sends: userAgent, language, platform, screen, timezone, browser, os.
type Fingerprint map[string]string

// LogEntry is one recorded route generation, written once and never
// updated.
type LogEntry struct {
	UserID        string      `json:"user_id"`
	Fingerprint   Fingerprint `json:"fingerprint"`
	StartLocation string      `json:"start_location"`
	Distance      float64     `json:"distance"`
	Unit          string      `json:"unit"`
	MapsURL       string      `json:"maps_url"`
	Mode          string      `json:"mode,omitempty"` // already encoded in MapsURL; not stored separately
}

// LogRecord is a LogEntry as stored locally, with the identifier and
// timestamp the database assigned at write time.
type LogRecord struct {
	ID            int64       `json:"id"`
	UserID        string      `json:"user_id"`
	Fingerprint   Fingerprint `json:"fingerprint"`
	StartLocation string      `json:"start_location"`
	Distance      float64     `json:"distance"`
	Unit          string      `json:"unit"`
	MapsURL       string      `json:"maps_url"`
	Timestamp     string      `json:"timestamp"`
}
