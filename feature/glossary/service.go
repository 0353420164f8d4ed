package glossary

import (
	"context"

	"catalog-sync/core/collibra"
	"catalog-sync/core/datazone"
	"catalog-sync/core/history"

	"go.uber.org/zap"
)

// Engine names used in logs, metrics and run history.
const (
	EngineGlossary  = "glossary"
	EngineHierarchy = "hierarchy"
)

// Service runs the glossary engines as tracked invocations.
type Service struct {
	collibra collibra.Client
	datazone datazone.Client
	glossary *datazone.GlossaryResolver
	tracker  *history.Tracker
	logger   *zap.Logger
}

// NewService creates a new glossary service.
func NewService(c collibra.Client, dz datazone.Client, glossary *datazone.GlossaryResolver, tracker *history.Tracker, logger *zap.Logger) *Service {
	return &Service{collibra: c, datazone: dz, glossary: glossary, tracker: tracker, logger: logger}
}

// SyncTerms syncs the page of business terms after cursor and returns the next cursor.
func (s *Service) SyncTerms(ctx context.Context, cursor *string) (*string, history.Run, error) {
	run, out, err := s.tracker.Track(ctx, history.Invocation{Engine: EngineGlossary, Cursor: cursor},
		func(ctx context.Context, log *zap.Logger) (history.Outcome, error) {
			engine := NewSyncEngine(s.collibra, s.datazone, s.glossary, log)
			next, err := engine.Sync(ctx, cursor)
			return history.Outcome{Cursor: next, Counts: engine.Counts(), Report: engine.Plan()}, err
		})
	return out.Cursor, run, err
}

// PropagateHierarchy replicates the business term hierarchy.
func (s *Service) PropagateHierarchy(ctx context.Context) (history.Run, error) {
	run, _, err := s.tracker.Track(ctx, history.Invocation{Engine: EngineHierarchy},
		func(ctx context.Context, log *zap.Logger) (history.Outcome, error) {
			engine := NewHierarchyEngine(s.collibra, s.datazone, s.glossary, log)
			err := engine.Propagate(ctx)
			return history.Outcome{Counts: engine.Counts()}, err
		})
	return run, err
}
