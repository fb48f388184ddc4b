// Package sheets mirrors route log entries to a Google Sheet. The
// mirror is strictly best-effort: it never blocks a caller, never
// retries, and never surfaces a failure beyond the operator log.
package sheets

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"os"
	"sync"
	"time"

	"google.golang.org/api/option"
	gsheets "google.golang.org/api/sheets/v4"

	"github.com/dailywalker/walkloop-backend-go/internal/models"
)

// Config controls the remote sink. A zero SpreadsheetID disables the
// mirror entirely; so does the absence of a readable credential file.
// Both are valid states, not configuration errors.
type Config struct {
	SpreadsheetID   string
	SheetRange      string
	CredentialPaths []string
	QueueSize       int
}

// Outcome is the result of one mirror attempt, delivered to the
// reporter instead of the caller.
type Outcome struct {
	UserID  string
	Skipped string // non-empty when the sink was disabled or the queue was full
	Err     error
}

// Mirror is the asynchronous remote sink. Entries are handed off via
// Enqueue and appended to the spreadsheet by a single background
// worker; outcomes flow over a channel to a reporter goroutine.
type Mirror struct {
	cfg Config

	tasks    chan models.LogEntry
	outcomes chan Outcome
	done     chan struct{}
	wg       sync.WaitGroup

	// swapped out in tests
	appendFn func(ctx context.Context, entry models.LogEntry) error
	report   func(Outcome)
	now      func() time.Time
}

// New creates a mirror. Call Start before Enqueue and Close on
// shutdown.
func New(cfg Config) *Mirror {
	if cfg.SheetRange == "" {
		cfg.SheetRange = "Sheet1!A:G"
	}
	if cfg.QueueSize <= 0 {
		cfg.QueueSize = 64
	}

	m := &Mirror{
		cfg:      cfg,
		tasks:    make(chan models.LogEntry, cfg.QueueSize),
		outcomes: make(chan Outcome, cfg.QueueSize),
		done:     make(chan struct{}),
		report:   logOutcome,
		now:      time.Now,
	}
	m.appendFn = m.appendRow
	return m
}

// Start launches the worker and reporter goroutines.
func (m *Mirror) Start() {
	m.wg.Add(2)

	go func() {
		defer m.wg.Done()
		for entry := range m.tasks {
			m.outcomes <- m.attempt(entry)
		}
		close(m.outcomes)
	}()

	go func() {
		defer m.wg.Done()
		for o := range m.outcomes {
			m.report(o)
		}
	}()
}

// Close stops accepting entries, drains the queue and waits for the
// worker to finish.
func (m *Mirror) Close() {
	close(m.done)
	close(m.tasks)
	m.wg.Wait()
}

// Enqueue hands an entry to the background worker without blocking. A
// full queue drops the entry; there is no retry path anywhere in the
// mirror.
func (m *Mirror) Enqueue(entry models.LogEntry) {
	select {
	case <-m.done:
		return
	default:
	}

	select {
	case m.tasks <- entry:
	default:
		m.report(Outcome{UserID: entry.UserID, Skipped: "mirror queue full, entry dropped"})
	}
}

func (m *Mirror) attempt(entry models.LogEntry) Outcome {
	o := Outcome{UserID: entry.UserID}

	if m.cfg.SpreadsheetID == "" {
		o.Skipped = "SPREADSHEET_ID not set"
		return o
	}
	if _, ok := m.resolveCredentials(); !ok {
		o.Skipped = "no credential file found"
		return o
	}

	o.Err = m.appendFn(context.Background(), entry)
	return o
}

// resolveCredentials finds the service-account key file, checking the
// configured candidate paths in order on every call. First match wins.
func (m *Mirror) resolveCredentials() (string, bool) {
	for _, p := range m.cfg.CredentialPaths {
		if _, err := os.Stat(p); err == nil {
			return p, true
		}
	}
	return "", false
}

// appendRow appends the 7-column row
// [timestamp, user_id, fingerprint, start_location, distance, unit, maps_url]
// to the configured range.
func (m *Mirror) appendRow(ctx context.Context, entry models.LogEntry) error {
	keyPath, ok := m.resolveCredentials()
	if !ok {
		return fmt.Errorf("credential file disappeared between checks")
	}

	svc, err := gsheets.NewService(ctx,
		option.WithCredentialsFile(keyPath),
		option.WithScopes(gsheets.SpreadsheetsScope),
	)
	if err != nil {
		return fmt.Errorf("failed to create sheets client: %w", err)
	}

	fp, err := json.Marshal(entry.Fingerprint)
	if err != nil {
		return fmt.Errorf("failed to serialize fingerprint: %w", err)
	}

	row := []interface{}{
		m.now().UTC().Format(time.RFC3339),
		entry.UserID,
		string(fp),
		entry.StartLocation,
		entry.Distance,
		entry.Unit,
		entry.MapsURL,
	}

	_, err = svc.Spreadsheets.Values.
		Append(m.cfg.SpreadsheetID, m.cfg.SheetRange, &gsheets.ValueRange{
			Values: [][]interface{}{row},
		}).
		ValueInputOption("USER_ENTERED").
		Context(ctx).
		Do()
	if err != nil {
		return fmt.Errorf("sheets append failed: %w", err)
	}
	return nil
}

func logOutcome(o Outcome) {
	switch {
	case o.Err != nil:
		log.Printf("Sheets mirror error for user %s: %v", o.UserID, o.Err)
	case o.Skipped != "":
		log.Printf("Sheets mirror skipped for user %s: %s", o.UserID, o.Skipped)
	default:
		log.Printf("Sheets mirror: logged entry for user %s", o.UserID)
	}
}
