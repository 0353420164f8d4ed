package glossary

import (
	"context"
	"fmt"

	"catalog-sync/core/collibra"
	"catalog-sync/core/datazone"

	"go.uber.org/zap"
)

// HierarchyEngine replicates the Collibra business term hierarchy onto the synced glossary.
type HierarchyEngine struct {
	collibra collibra.Client
	datazone datazone.Client
	glossary *datazone.GlossaryResolver
	logger   *zap.Logger

	counts map[string]int
}

// NewHierarchyEngine creates a HierarchyEngine for a single invocation.
func NewHierarchyEngine(c collibra.Client, dz datazone.Client, glossary *datazone.GlossaryResolver, logger *zap.Logger) *HierarchyEngine {
	return &HierarchyEngine{collibra: c, datazone: dz, glossary: glossary, logger: logger, counts: map[string]int{}}
}

// Propagate indexes the hierarchy and writes the relations of every indexed term.
func (e *HierarchyEngine) Propagate(ctx context.Context) error {
	glossaryID, err := e.glossary.Ensure(ctx)
	if err != nil {
		return err
	}

	cache, err := LoadCache(ctx, e.datazone, glossaryID)
	if err != nil {
		return err
	}

	terms, err := e.collibra.BusinessTermHierarchy(ctx)
	if err != nil {
		return fmt.Errorf("failed to fetch business term hierarchy: %w", err)
	}
	e.logger.Info("Indexing business term hierarchy", zap.Int("terms", len(terms)), zap.Int("cached", cache.Len()))

	index := NewHierarchyIndex(cache)
	for _, term := range terms {
		for _, parent := range term.Sources() {
			index.Index(term.DisplayName, parent.DisplayName)
		}
	}

	for _, name := range index.IndexedTermNames() {
		relations := index.TermRelations(name)
		if relations.Empty() {
			continue
		}

		termID, _ := cache.ID(name)
		if err := e.datazone.UpdateGlossaryTermRelations(ctx, glossaryID, termID, name, relations); err != nil {
			e.counts["failed"]++
			e.logger.Error("Failed to update term relations", zap.String("term", name), zap.Error(err))
			continue
		}
		e.counts["updated"]++
	}

	e.logger.Info("Updated glossary term relations", zap.Int("updated", e.counts["updated"]))
	return nil
}

// Counts returns the outcome counters of the last Propagate.
func (e *HierarchyEngine) Counts() map[string]int {
	return e.counts
}
