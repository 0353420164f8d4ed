package assets

import (
	"context"
	"time"

	"catalog-sync/core/collibra"
	"catalog-sync/core/datazone"
	"catalog-sync/core/history"
	"catalog-sync/core/reconcile"

	"go.uber.org/zap"
)

// EngineName identifies asset metadata sync in logs, metrics and run history.
const EngineName = "assets"

// Report is archived with every asset sync run.
type Report struct {
	Plan reconcile.Plan `json:"plan"`
}

// Service runs the asset metadata engine as tracked invocations.
type Service struct {
	collibra collibra.Client
	datazone datazone.Client
	glossary *datazone.GlossaryResolver
	projects datazone.ProjectSource
	budget   time.Duration
	tracker  *history.Tracker
	logger   *zap.Logger
}

// NewService creates a new asset metadata service.
func NewService(c collibra.Client, dz datazone.Client, glossary *datazone.GlossaryResolver, projects datazone.ProjectSource, budget time.Duration, tracker *history.Tracker, logger *zap.Logger) *Service {
	return &Service{
		collibra: c,
		datazone: dz,
		glossary: glossary,
		projects: projects,
		budget:   budget,
		tracker:  tracker,
		logger:   logger,
	}
}

// Sync runs the engine from cursor and returns the next cursor and the computed plan.
func (s *Service) Sync(ctx context.Context, cursor *string, dryRun bool) (*string, reconcile.Plan, history.Run, error) {
	var plan reconcile.Plan
	run, out, err := s.tracker.Track(ctx, history.Invocation{Engine: EngineName, Cursor: cursor, DryRun: dryRun},
		func(ctx context.Context, log *zap.Logger) (history.Outcome, error) {
			engine := NewEngine(s.collibra, s.datazone, s.glossary, s.projects, Options{Budget: s.budget, DryRun: dryRun}, log)
			next, err := engine.Sync(ctx, cursor)
			plan = engine.Plan()
			log.Info("Asset revisions planned",
				zap.Int("planned", plan.Summary.Planned),
				zap.Int("executed", plan.Summary.Executed),
				zap.Int("failed", plan.Summary.Failed),
				zap.Bool("dry_run", plan.Summary.DryRun))
			return history.Outcome{Cursor: next, Counts: engine.Counts(), Report: Report{Plan: plan}}, err
		})
	return out.Cursor, plan, run, err
}
