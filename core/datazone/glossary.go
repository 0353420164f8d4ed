package datazone

import (
	"context"
	"fmt"

	"go.uber.org/zap"
	"golang.org/x/sync/singleflight"
)

// GlossaryResolver returns the id of the synced glossary, creating it on first use.
// Concurrent calls inside one process share a single lookup.
type GlossaryResolver struct {
	client Client
	cfg    Config
	logger *zap.Logger
	group  singleflight.Group
}

// NewGlossaryResolver creates a GlossaryResolver.
func NewGlossaryResolver(client Client, cfg Config, logger *zap.Logger) *GlossaryResolver {
	return &GlossaryResolver{client: client, cfg: cfg, logger: logger}
}

// Ensure returns the id of the synced glossary.
func (r *GlossaryResolver) Ensure(ctx context.Context) (string, error) {
	name := r.cfg.GlossaryName()
	v, err, _ := r.group.Do(name, func() (any, error) {
		id, found, err := r.client.FindGlossary(ctx, name)
		if err != nil {
			return "", err
		}
		if found {
			return id, nil
		}

		if r.cfg.GlossaryOwnerProjectID == "" {
			return "", fmt.Errorf("glossary %s does not exist and no owner project is configured", name)
		}
		r.logger.Info("Creating glossary", zap.String("glossary", name))
		return r.client.CreateGlossary(ctx, name, r.cfg.GlossaryOwnerProjectID)
	})
	if err != nil {
		return "", fmt.Errorf("failed to ensure glossary %s: %w", name, err)
	}
	return v.(string), nil
}
