package runs

import (
	"context"
	"errors"

	"catalog-sync/core/history"
	"catalog-sync/core/storage"

	"go.uber.org/zap"
)

var (
	// ErrHistoryDisabled is returned when no history database is configured.
	ErrHistoryDisabled = errors.New("run history is disabled")
	// ErrNoReport is returned when a run has no archived report.
	ErrNoReport = errors.New("run has no archived report")
)

// Service reads run history and reports. Both sources are optional.
type Service struct {
	store   history.Store
	reports *storage.ReportStore
	logger  *zap.Logger
}

// NewService creates a new run history service.
func NewService(store history.Store, reports *storage.ReportStore, logger *zap.Logger) *Service {
	return &Service{store: store, reports: reports, logger: logger}
}

// List returns the most recent runs, optionally for one engine.
func (s *Service) List(ctx context.Context, engine string, limit int) ([]history.Run, error) {
	if s.store == nil {
		return nil, ErrHistoryDisabled
	}
	return s.store.List(ctx, engine, limit)
}

// Get returns a single run.
func (s *Service) Get(ctx context.Context, id string) (history.Run, error) {
	if s.store == nil {
		return history.Run{}, ErrHistoryDisabled
	}
	return s.store.Get(ctx, id)
}

// Report returns the archived report JSON of a run.
func (s *Service) Report(ctx context.Context, id string) ([]byte, error) {
	run, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if run.ReportKey == "" || s.reports == nil {
		return nil, ErrNoReport
	}
	return s.reports.Get(ctx, run.ReportKey)
}
