package subscription

import (
	"context"

	"catalog-sync/core/collibra"
	"catalog-sync/core/datazone"
	"catalog-sync/core/history"

	"go.uber.org/zap"
)

// Engine names in logs, metrics and run history.
const (
	EngineForward = "subscription_forward"
	EngineReverse = "subscription_reverse"
)

// Service runs subscription invocations under the run tracker.
type Service struct {
	collibra collibra.Client
	datazone datazone.Client
	projects datazone.ProjectSource
	opts     Options
	tracker  *history.Tracker
	logger   *zap.Logger
}

// NewService creates a new subscription service.
func NewService(c collibra.Client, dz datazone.Client, projects datazone.ProjectSource, opts Options, tracker *history.Tracker, logger *zap.Logger) *Service {
	return &Service{
		collibra: c,
		datazone: dz,
		projects: projects,
		opts:     opts,
		tracker:  tracker,
		logger:   logger,
	}
}

// Forward syncs one DataZone subscription request to Collibra.
func (s *Service) Forward(ctx context.Context, ev Event) (ForwardResult, history.Run, error) {
	var result ForwardResult
	run, _, err := s.tracker.Track(ctx, history.Invocation{Engine: EngineForward},
		func(ctx context.Context, log *zap.Logger) (history.Outcome, error) {
			engine := NewEngine(s.collibra, s.datazone, s.projects, s.opts, log)
			var err error
			result, err = engine.Forward(ctx, ev)
			return history.Outcome{Counts: engine.Counts(), Report: result}, err
		})
	return result, run, err
}

// Reverse syncs the approved Collibra requests to DataZone.
func (s *Service) Reverse(ctx context.Context) (ReverseReport, history.Run, error) {
	var report ReverseReport
	run, _, err := s.tracker.Track(ctx, history.Invocation{Engine: EngineReverse},
		func(ctx context.Context, log *zap.Logger) (history.Outcome, error) {
			engine := NewEngine(s.collibra, s.datazone, s.projects, s.opts, log)
			var err error
			report, err = engine.Reverse(ctx)
			return history.Outcome{Counts: engine.Counts(), Report: report}, err
		})
	return report, run, err
}
