package history

import (
	"context"
	"encoding/json"
	"time"

	"catalog-sync/core/logger"
	"catalog-sync/core/metrics"
	"catalog-sync/core/storage"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// Outcome is what an engine invocation reports back to the Tracker.
type Outcome struct {
	// Cursor is the cursor returned to the caller, if the engine has one.
	Cursor *string
	// Counts maps an item outcome (updated, skipped, granted...) to its count.
	Counts map[string]int
	// Report is archived as the body of the run report.
	Report any
}

// Invocation describes the invocation being tracked.
type Invocation struct {
	Engine string
	Cursor *string
	DryRun bool
}

// Tracker wraps engine invocations with a run id, a tagged logger, metrics and the
// optional history and report archive. Failures of the audit outputs are logged only.
type Tracker struct {
	logger  *zap.Logger
	metrics *metrics.Metrics
	store   Store
	reports *storage.ReportStore
	now     func() time.Time
}

// NewTracker creates a Tracker. store and reports may be nil when disabled.
func NewTracker(log *zap.Logger, m *metrics.Metrics, store Store, reports *storage.ReportStore) *Tracker {
	return &Tracker{logger: log, metrics: m, store: store, reports: reports, now: time.Now}
}

// HistoryEnabled reports whether runs are persisted.
func (t *Tracker) HistoryEnabled() bool {
	return t.store != nil
}

// Store returns the history store, or nil when disabled.
func (t *Tracker) Store() Store {
	return t.store
}

// Reports returns the report archive, or nil when disabled.
func (t *Tracker) Reports() *storage.ReportStore {
	return t.reports
}

type runReport struct {
	Run    Run `json:"run"`
	Report any `json:"report,omitempty"`
}

// Track runs fn under a new run id and records the result. The returned run carries the
// outcome and status; the error is fn's error unchanged.
func (t *Tracker) Track(ctx context.Context, inv Invocation, fn func(ctx context.Context, log *zap.Logger) (Outcome, error)) (Run, Outcome, error) {
	run := Run{
		ID:        uuid.NewString(),
		Engine:    inv.Engine,
		CursorIn:  inv.Cursor,
		DryRun:    inv.DryRun,
		StartedAt: t.now().UTC(),
	}
	log := logger.WithRun(t.logger, run.ID, inv.Engine)
	log.Info("Invocation started", zap.Stringp("cursor", inv.Cursor), zap.Bool("dry_run", inv.DryRun))

	outcome, err := fn(ctx, log)

	run.FinishedAt = t.now().UTC()
	run.CursorOut = outcome.Cursor
	run.Status = StatusSucceeded
	if err != nil {
		run.Status = StatusFailed
		run.Error = err.Error()
	}
	if counts, mErr := json.Marshal(outcome.Counts); mErr == nil && outcome.Counts != nil {
		run.Counts = string(counts)
	}

	elapsed := run.FinishedAt.Sub(run.StartedAt)
	if t.metrics != nil {
		t.metrics.ObserveInvocation(inv.Engine, run.Status, elapsed)
		for name, n := range outcome.Counts {
			t.metrics.AddItems(inv.Engine, name, n)
		}
	}

	// Audit writes must survive a cancelled request context
	auditCtx := context.WithoutCancel(ctx)

	if t.reports != nil {
		key := storage.ReportKey(inv.Engine, run.ID, run.StartedAt)
		if pErr := t.reports.Put(auditCtx, key, runReport{Run: run, Report: outcome.Report}); pErr != nil {
			log.Warn("Failed to archive run report", zap.Error(pErr))
		} else {
			run.ReportKey = key
		}
	}

	if t.store != nil {
		if rErr := t.store.Record(auditCtx, &run); rErr != nil {
			log.Warn("Failed to record run", zap.Error(rErr))
		}
	}

	fields := []zap.Field{
		zap.String("status", run.Status),
		zap.Stringp("next_cursor", outcome.Cursor),
		zap.Duration("elapsed", elapsed),
		zap.Any("counts", outcome.Counts),
	}
	if err != nil {
		log.Error("Invocation failed", append(fields, zap.Error(err))...)
	} else {
		log.Info("Invocation finished", fields...)
	}

	return run, outcome, err
}
