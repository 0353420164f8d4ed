package glossary

import (
	"context"
	"fmt"

	"catalog-sync/core/collibra"
	"catalog-sync/core/datazone"
	"catalog-sync/core/reconcile"

	"go.uber.org/zap"
)

// SyncEngine copies one page of Collibra business terms into the synced glossary.
type SyncEngine struct {
	collibra collibra.Client
	datazone datazone.Client
	glossary *datazone.GlossaryResolver
	logger   *zap.Logger

	glossaryID string
	recorder   *reconcile.Recorder
	counts     map[string]int
}

// NewSyncEngine creates a SyncEngine for a single invocation.
func NewSyncEngine(c collibra.Client, dz datazone.Client, glossary *datazone.GlossaryResolver, logger *zap.Logger) *SyncEngine {
	e := &SyncEngine{collibra: c, datazone: dz, glossary: glossary, logger: logger, counts: map[string]int{}}
	e.recorder = reconcile.NewRecorder(reconcile.MutatorFunc(e.apply), reconcile.Options{})
	return e
}

// Sync processes the page of terms after cursor and returns the id of the last term seen.
// An empty page returns cursor unchanged. A term that fails aborts the page and returns
// cursor with the error, so the next invocation retries it.
func (e *SyncEngine) Sync(ctx context.Context, cursor *string) (*string, error) {
	glossaryID, err := e.glossary.Ensure(ctx)
	if err != nil {
		return cursor, err
	}
	e.glossaryID = glossaryID

	terms, err := e.collibra.BusinessTerms(ctx, cursor)
	if err != nil {
		return cursor, fmt.Errorf("failed to fetch business terms: %w", err)
	}
	e.logger.Info("Fetched business terms", zap.Int("count", len(terms)))

	next := cursor
	seen := make(map[string]struct{}, len(terms))
	for _, term := range terms {
		id := term.ID
		next = &id

		if _, ok := seen[term.DisplayName]; ok {
			e.counts["duplicates"]++
			continue
		}
		seen[term.DisplayName] = struct{}{}

		if err := e.syncTerm(ctx, term); err != nil {
			e.counts["failed"]++
			return cursor, fmt.Errorf("failed to sync glossary term %s: %w", term.DisplayName, err)
		}
	}

	return next, nil
}

func (e *SyncEngine) syncTerm(ctx context.Context, term collibra.Asset) error {
	want := CanonicalDescription(term.Descriptions())
	l := e.logger.With(zap.String("term", term.DisplayName))

	existing, found, err := e.datazone.FindGlossaryTerm(ctx, e.glossaryID, term.DisplayName)
	if err != nil {
		return fmt.Errorf("failed to look up term: %w", err)
	}

	if !found {
		l.Info("Creating glossary term")
		if err := e.recorder.Execute(ctx, reconcile.Action{
			Type:    reconcile.ActionCreateTerm,
			Key:     term.DisplayName,
			Name:    term.DisplayName,
			Source:  term.ID,
			Reason:  "term missing from glossary",
			Payload: want,
		}); err != nil {
			return err
		}
		e.counts["created"]++
		return nil
	}

	if !descriptionChanged(existing, want) {
		l.Debug("Glossary term is up to date")
		e.counts["unchanged"]++
		return nil
	}

	l.Info("Updating glossary term description", zap.String("term_id", existing.ID))
	if err := e.recorder.Execute(ctx, reconcile.Action{
		Type:    reconcile.ActionUpdateTerm,
		Key:     existing.ID,
		Name:    term.DisplayName,
		Source:  term.ID,
		Reason:  "description changed",
		Payload: want,
	}); err != nil {
		return err
	}
	e.counts["updated"]++
	return nil
}

func (e *SyncEngine) apply(ctx context.Context, action reconcile.Action) error {
	desc, _ := action.Payload.(datazone.Description)
	switch action.Type {
	case reconcile.ActionCreateTerm:
		_, err := e.datazone.CreateGlossaryTerm(ctx, e.glossaryID, action.Name, desc)
		return err
	case reconcile.ActionUpdateTerm:
		return e.datazone.UpdateGlossaryTermDescription(ctx, action.Key, desc)
	default:
		return fmt.Errorf("unsupported action %s", action.Type)
	}
}

// Plan returns the term writes of the last Sync.
func (e *SyncEngine) Plan() reconcile.Plan {
	return e.recorder.Plan()
}

// Counts returns the outcome counters of the last Sync.
func (e *SyncEngine) Counts() map[string]int {
	return e.counts
}
