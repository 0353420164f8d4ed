package integrity

import (
	"context"
	"errors"
	"sync"

	"catalog-sync/core/collibra"
	"catalog-sync/core/datazone"
	"catalog-sync/core/history"
	"catalog-sync/core/storage"
	"catalog-sync/feature/integrity/checks"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

// ErrUnknownCheck is returned for a check name that does not exist.
var ErrUnknownCheck = errors.New("unknown check")

// Names lists the available checks.
var Names = []string{"storage", "history", "glossary", "admin", "collibra"}

// Targets are the backends probed by the checks. Storage and History may be nil.
type Targets struct {
	Storage        storage.Client
	StorageConfig  storage.Config
	History        history.Store
	Collibra       collibra.Client
	DataZone       datazone.Client
	DataZoneConfig datazone.Config
	Glossary       *datazone.GlossaryResolver
}

// Report is the combined result of every check.
type Report struct {
	Healthy bool                     `json:"healthy"`
	Checks  map[string]checks.Result `json:"checks"`
}

// Service handles integrity checks.
type Service struct {
	targets Targets
	logger  *zap.Logger
}

// NewService creates a new integrity service.
func NewService(targets Targets, logger *zap.Logger) *Service {
	return &Service{targets: targets, logger: logger}
}

// Check runs the named check. fix only affects storage and glossary.
func (s *Service) Check(ctx context.Context, name string, fix bool) (checks.Result, error) {
	t := s.targets
	switch name {
	case "storage":
		return checks.CheckBucket(ctx, t.Storage, t.StorageConfig, fix, s.logger), nil
	case "history":
		return checks.CheckHistory(ctx, t.History), nil
	case "glossary":
		return checks.CheckGlossary(ctx, t.DataZone, t.DataZoneConfig, t.Glossary, fix), nil
	case "admin":
		return checks.CheckAdmin(ctx, t.DataZone, t.DataZoneConfig.AdminRoleARN), nil
	case "collibra":
		return checks.CheckCollibra(ctx, t.Collibra), nil
	}
	return checks.Result{}, ErrUnknownCheck
}

// CheckAll runs every check concurrently.
func (s *Service) CheckAll(ctx context.Context, fix bool) Report {
	report := Report{Healthy: true, Checks: make(map[string]checks.Result, len(Names))}

	var mu sync.Mutex
	var g errgroup.Group
	for _, name := range Names {
		g.Go(func() error {
			res, err := s.Check(ctx, name, fix)
			if err != nil {
				return err
			}
			mu.Lock()
			defer mu.Unlock()
			report.Checks[name] = res
			if !res.Healthy() {
				report.Healthy = false
				s.logger.Warn("Integrity check failed", zap.String("check", name), zap.String("status", res.Status), zap.String("detail", res.Detail))
			}
			return nil
		})
	}
	// Names only holds known checks
	_ = g.Wait()

	return report
}
