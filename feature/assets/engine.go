package assets

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"strings"
	"time"

	"catalog-sync/core/collibra"
	"catalog-sync/core/datazone"
	"catalog-sync/core/reconcile"
	"catalog-sync/feature/glossary"
	"catalog-sync/feature/matching"

	"go.uber.org/zap"
)

const systemSchema = "information_schema"

// Options configures one invocation of the Engine.
type Options struct {
	// Budget bounds how long new pages are started. A page in progress always completes.
	Budget time.Duration
	// DryRun computes revisions without writing them.
	DryRun bool
}

// Engine pushes Collibra table metadata onto the matching DataZone assets.
type Engine struct {
	collibra collibra.Client
	datazone datazone.Client
	glossary *datazone.GlossaryResolver
	projects datazone.ProjectSource
	matcher  *matching.Matcher
	opts     Options
	logger   *zap.Logger
	now      func() time.Time

	recorder *reconcile.Recorder
	counts   map[string]int
}

// NewEngine creates an Engine for a single invocation.
func NewEngine(c collibra.Client, dz datazone.Client, glossary *datazone.GlossaryResolver, projects datazone.ProjectSource, opts Options, logger *zap.Logger) *Engine {
	e := &Engine{
		collibra: c,
		datazone: dz,
		glossary: glossary,
		projects: projects,
		matcher:  matching.NewMatcher(logger),
		opts:     opts,
		logger:   logger,
		now:      time.Now,
		counts:   map[string]int{},
	}
	e.recorder = reconcile.NewRecorder(reconcile.MutatorFunc(e.apply), reconcile.Options{DryRun: opts.DryRun})
	return e
}

// Sync processes pages of tables after cursor until the source is drained or the budget
// is spent. It returns the last cursor observed, which is cursor itself when no page
// advanced it.
func (e *Engine) Sync(ctx context.Context, cursor *string) (*string, error) {
	glossaryID, err := e.glossary.Ensure(ctx)
	if err != nil {
		return cursor, err
	}
	cache, err := glossary.LoadCache(ctx, e.datazone, glossaryID)
	if err != nil {
		return cursor, err
	}
	projects, err := e.projects(ctx)
	if err != nil {
		return cursor, fmt.Errorf("failed to resolve governed projects: %w", err)
	}
	projectIDs := make([]string, 0, len(projects))
	for id := range projects {
		projectIDs = append(projectIDs, id)
	}
	sort.Strings(projectIDs)

	deadline := e.now().Add(e.opts.Budget)
	last := cursor
	for !e.now().After(deadline) {
		if err := ctx.Err(); err != nil {
			return last, err
		}

		tables, next, err := e.nextPage(ctx, last)
		if err != nil {
			return last, err
		}
		if next == nil || (last != nil && *next == *last) {
			break
		}

		e.logger.Info("Syncing tables", zap.Int("tables", len(tables)), zap.String("next_cursor", *next))
		for _, table := range tables {
			e.syncTable(ctx, table, projectIDs, cache)
		}
		last = next
	}

	return last, nil
}

// nextPage fetches the page after cursor. The returned cursor is the last id of the
// unfiltered page, or nil when the page is empty.
func (e *Engine) nextPage(ctx context.Context, cursor *string) ([]collibra.Asset, *string, error) {
	page, err := e.collibra.Tables(ctx, cursor)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to fetch tables: %w", err)
	}
	if len(page) == 0 {
		return nil, nil, nil
	}

	next := page[len(page)-1].ID
	tables := make([]collibra.Asset, 0, len(page))
	for _, t := range page {
		if strings.Contains(t.FullName, systemSchema) {
			continue
		}
		tables = append(tables, t)
	}
	return tables, &next, nil
}

func (e *Engine) syncTable(ctx context.Context, table collibra.Asset, projectIDs []string, cache *glossary.Cache) {
	l := e.logger.With(zap.String("table", table.DisplayName), zap.String("table_id", table.ID))
	e.counts["tables"]++

	matched, err := e.matchAssets(ctx, table, projectIDs)
	if errors.Is(err, matching.ErrResourceMetadata) {
		l.Warn("Skipping table without usable resource metadata", zap.Error(err))
		e.counts["skipped"]++
		return
	}
	if err != nil {
		l.Error("Failed to find matching assets", zap.Error(err))
		e.counts["failed"]++
		return
	}
	if len(matched) == 0 {
		l.Info("No matching asset found, skipping")
		e.counts["unmatched"]++
		return
	}

	projection, err := e.project(ctx, table.ID, cache)
	if err != nil {
		l.Error("Failed to read table metadata", zap.Error(err))
		e.counts["failed"]++
		return
	}

	for _, assetID := range matched {
		if err := e.reviseAsset(ctx, assetID, projection); err != nil {
			l.Error("Failed to update asset", zap.String("asset_id", assetID), zap.Error(err))
			e.counts["failed"]++
			continue
		}
		if e.opts.DryRun {
			e.counts["planned"]++
		} else {
			e.counts["updated"]++
		}
	}
}

func (e *Engine) matchAssets(ctx context.Context, table collibra.Asset, projectIDs []string) ([]string, error) {
	var matched []string
	for _, projectID := range projectIDs {
		candidates, err := datazone.Drain(ctx, func(ctx context.Context, token string) (datazone.Page[datazone.Asset], error) {
			return e.datazone.SearchAssets(ctx, projectID, table.DisplayName, token)
		})
		if err != nil {
			return nil, fmt.Errorf("failed to search assets in project %s: %w", projectID, err)
		}

		for _, candidate := range candidates {
			asset, err := e.datazone.GetAsset(ctx, candidate.ID)
			if err != nil {
				return nil, fmt.Errorf("failed to get asset %s: %w", candidate.ID, err)
			}
			ok, err := e.matcher.Match(ctx, matching.NewAsset(asset), table)
			if err != nil {
				return nil, err
			}
			if ok {
				matched = append(matched, asset.ID)
			}
		}
	}
	return matched, nil
}

func (e *Engine) project(ctx context.Context, tableID string, cache *glossary.Cache) (TableProjection, error) {
	table, err := e.collibra.Table(ctx, tableID)
	if err != nil {
		return TableProjection{}, err
	}
	terms, err := e.collibra.TableBusinessTerms(ctx, tableID)
	if err != nil {
		return TableProjection{}, err
	}
	pii, err := e.collibra.PIIColumns(ctx, tableID)
	if err != nil {
		return TableProjection{}, err
	}
	return BuildProjection(table, terms, pii, cache), nil
}

func (e *Engine) reviseAsset(ctx context.Context, assetID string, projection TableProjection) error {
	asset, err := e.datazone.GetAsset(ctx, assetID)
	if err != nil {
		return fmt.Errorf("failed to get asset: %w", err)
	}

	rev, err := BuildRevision(asset, projection)
	if err != nil {
		return fmt.Errorf("failed to build revision: %w", err)
	}

	return e.recorder.Execute(ctx, reconcile.Action{
		Type:         reconcile.ActionCreateRevision,
		Key:          asset.ID,
		Name:         asset.Name,
		Source:       projection.ID,
		Reason:       "collibra metadata sync",
		ChangedForms: rev.ChangedForms,
		AddedTerms:   rev.AddedTerms,
		Payload:      rev.AssetRevision,
	})
}

func (e *Engine) apply(ctx context.Context, action reconcile.Action) error {
	rev, ok := action.Payload.(datazone.AssetRevision)
	if action.Type != reconcile.ActionCreateRevision || !ok {
		return fmt.Errorf("unsupported action %s", action.Type)
	}
	return e.datazone.CreateAssetRevision(ctx, rev)
}

// Plan returns the revisions computed so far.
func (e *Engine) Plan() reconcile.Plan {
	return e.recorder.Plan()
}

// Counts returns the per-table and per-asset outcome counters.
func (e *Engine) Counts() map[string]int {
	return e.counts
}
