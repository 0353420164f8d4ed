package cmd

import (
	"context"
	"encoding/json"
	"fmt"
	"io"

	"catalog-sync/core/collibra"
	"catalog-sync/core/config"
	"catalog-sync/core/database"
	"catalog-sync/core/datazone"
	"catalog-sync/core/history"
	"catalog-sync/core/logger"
	"catalog-sync/core/metrics"
	"catalog-sync/core/storage"

	"catalog-sync/feature/assets"
	"catalog-sync/feature/glossary"
	"catalog-sync/feature/integrity"
	"catalog-sync/feature/projects"
	"catalog-sync/feature/runs"
	"catalog-sync/feature/subscription"

	"go.uber.org/zap"
)

// runtime holds the configuration and clients shared by every command.
type runtime struct {
	cfg      *config.Config
	logger   *zap.Logger
	metrics  *metrics.Metrics
	tracker  *history.Tracker
	collibra collibra.Client
	datazone datazone.Client
	glossary *datazone.GlossaryResolver
	projects datazone.ProjectSource
	storage  storage.Client
	history  history.Store
}

// loadRuntime reads the configuration from the working directory and connects the clients.
func loadRuntime(ctx context.Context) (*runtime, error) {
	cfg, err := config.LoadConfig(".")
	if err != nil {
		return nil, fmt.Errorf("failed to load configuration: %w", err)
	}

	logg, err := logger.New(&cfg.Log)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize logger: %w", err)
	}
	zap.ReplaceGlobals(logg)

	return newRuntime(ctx, cfg, logg)
}

func newRuntime(ctx context.Context, cfg *config.Config, logg *zap.Logger) (*runtime, error) {
	collibraCfg, err := collibra.ResolveCredentials(ctx, cfg.Collibra)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve collibra credentials: %w", err)
	}
	cc, err := collibra.NewClient(collibraCfg, logg)
	if err != nil {
		return nil, fmt.Errorf("failed to create collibra client: %w", err)
	}

	dz, err := datazone.NewClient(ctx, cfg.DataZone, logg)
	if err != nil {
		return nil, fmt.Errorf("failed to create datazone client: %w", err)
	}

	store := openHistory(cfg.Database, logg)
	client := openStorage(cfg.Storage, logg)
	var reports *storage.ReportStore
	if client != nil {
		reports = storage.NewReportStore(client, cfg.Storage, logg)
	}

	m := metrics.New()
	tracker := history.NewTracker(logg, m, store, reports)

	return &runtime{
		cfg:      cfg,
		logger:   logg,
		metrics:  m,
		tracker:  tracker,
		collibra: cc,
		datazone: dz,
		glossary: datazone.NewGlossaryResolver(dz, cfg.DataZone, logg),
		projects: datazone.GovernedProjectSource(dz, cfg.DataZone.AdminRoleARN),
		storage:  client,
		history:  store,
	}, nil
}

// openHistory connects the run history database. History is optional, failures only warn.
func openHistory(cfg database.Config, logg *zap.Logger) history.Store {
	if !cfg.Enabled {
		return nil
	}

	db, err := database.Connect(cfg)
	if err != nil {
		logg.Warn("Optional database connection failed", zap.Error(err))
		return nil
	}

	store, err := history.Open(db)
	if err != nil {
		logg.Warn("Failed to prepare run history", zap.Error(err))
		return nil
	}

	logg.Info("Run history enabled", zap.String("driver", cfg.Driver))
	return store
}

// openStorage creates the report archive client when storage is enabled.
func openStorage(cfg storage.Config, logg *zap.Logger) storage.Client {
	if !cfg.Enabled {
		return nil
	}

	client, err := storage.NewClient(cfg)
	if err != nil {
		logg.Warn("Optional storage client failed", zap.Error(err))
		return nil
	}

	return client
}

func (r *runtime) assetService() *assets.Service {
	return assets.NewService(r.collibra, r.datazone, r.glossary, r.projects, r.cfg.Sync.AssetBudget(), r.tracker, r.logger)
}

func (r *runtime) glossaryService() *glossary.Service {
	return glossary.NewService(r.collibra, r.datazone, r.glossary, r.tracker, r.logger)
}

func (r *runtime) projectService() *projects.Service {
	return projects.NewService(r.collibra, r.datazone, projects.Options{
		AdminRoleARN:   r.cfg.DataZone.AdminRoleARN,
		PageSize:       int32(r.cfg.Sync.ProjectsPerInvocation),
		RelationTypeID: r.cfg.Collibra.ProjectAssetRelationTypeID,
	}, r.tracker, r.logger)
}

func (r *runtime) subscriptionService() *subscription.Service {
	return subscription.NewService(r.collibra, r.datazone, r.projects, subscription.Options{
		AdminRoleARN:     r.cfg.DataZone.AdminRoleARN,
		GrantedStatusID:  r.cfg.Collibra.GrantedStatusID,
		RejectedStatusID: r.cfg.Collibra.RejectedStatusID,
		Approval: subscription.ApprovalPolicy{
			Interval: r.cfg.Sync.ApprovalPoll(),
			MaxWait:  r.cfg.Sync.ApprovalWait(),
		},
	}, r.tracker, r.logger)
}

func (r *runtime) integrityService() *integrity.Service {
	return integrity.NewService(integrity.Targets{
		Storage:        r.storage,
		StorageConfig:  r.cfg.Storage,
		History:        r.history,
		Collibra:       r.collibra,
		DataZone:       r.datazone,
		DataZoneConfig: r.cfg.DataZone,
		Glossary:       r.glossary,
	}, r.logger)
}

func (r *runtime) runService() *runs.Service {
	return runs.NewService(r.tracker.Store(), r.tracker.Reports(), r.logger)
}

// writeJSON prints v as indented JSON.
func writeJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

// writeRaw prints an already encoded payload.
func writeRaw(w io.Writer, body []byte) error {
	var v any
	if err := json.Unmarshal(body, &v); err != nil {
		return fmt.Errorf("failed to decode payload: %w", err)
	}
	return writeJSON(w, v)
}
