package service

import (
	"fmt"

	"github.com/dailywalker/walkloop-backend-go/internal/models"
	"github.com/dailywalker/walkloop-backend-go/internal/repository"
)

// RemoteSink mirrors an entry to a remote tabular store without
// blocking the caller.
type RemoteSink interface {
	Enqueue(entry models.LogEntry)
}

// LogService is the dual-sink logging pipeline: a synchronous durable
// write to the local store, and an asynchronous best-effort mirror to a
// remote sink. The sinks are independent and allowed to diverge; no
// transaction spans both.
type LogService struct {
	repo   *repository.LogRepository
	mirror RemoteSink
}

// NewLogService creates a new log service. mirror may be nil when the
// remote sink is disabled.
func NewLogService(repo *repository.LogRepository, mirror RemoteSink) *LogService {
	return &LogService{
		repo:   repo,
		mirror: mirror,
	}
}

// LogRoute records one generated route. The local write is durable and
// its failure is the caller's failure; the remote mirror is dispatched
// after a successful local write and its outcome never reaches the
// caller.
func (s *LogService) LogRoute(entry models.LogEntry) (int64, error) {
	if entry.UserID == "" || entry.MapsURL == "" {
		return 0, fmt.Errorf("user_id and maps_url are required")
	}

	id, err := s.repo.Insert(entry)
	if err != nil {
		return 0, fmt.Errorf("failed to log route: %w", err)
	}

	if s.mirror != nil {
		s.mirror.Enqueue(entry)
	}

	return id, nil
}

// ListRoutes returns all recorded routes, most recent first.
func (s *LogService) ListRoutes() ([]models.LogRecord, error) {
	records, err := s.repo.List()
	if err != nil {
		return nil, fmt.Errorf("failed to list routes: %w", err)
	}
	return records, nil
}
