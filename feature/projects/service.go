package projects

import (
	"context"

	"catalog-sync/core/collibra"
	"catalog-sync/core/datazone"
	"catalog-sync/core/history"

	"go.uber.org/zap"
)

// EngineName identifies project sync in logs, metrics and run history.
const EngineName = "projects"

// Service runs project sync invocations under the run tracker.
type Service struct {
	collibra collibra.Client
	datazone datazone.Client
	opts     Options
	tracker  *history.Tracker
	logger   *zap.Logger
}

// NewService creates a new project sync service.
func NewService(c collibra.Client, dz datazone.Client, opts Options, tracker *history.Tracker, logger *zap.Logger) *Service {
	return &Service{collibra: c, datazone: dz, opts: opts, tracker: tracker, logger: logger}
}

// Sync syncs one page of projects and returns the next page token.
func (s *Service) Sync(ctx context.Context, token *string) (*string, history.Run, error) {
	run, out, err := s.tracker.Track(ctx, history.Invocation{Engine: EngineName, Cursor: token},
		func(ctx context.Context, log *zap.Logger) (history.Outcome, error) {
			engine := NewEngine(s.collibra, s.datazone, s.opts, log)
			next, err := engine.Sync(ctx, token)
			return history.Outcome{Cursor: next, Counts: engine.Counts()}, err
		})
	return out.Cursor, run, err
}
