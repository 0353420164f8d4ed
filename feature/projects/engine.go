package projects

import (
	"context"
	"errors"
	"fmt"

	"catalog-sync/core/collibra"
	"catalog-sync/core/datazone"

	"go.uber.org/zap"
)

// Options configures one project sync invocation.
type Options struct {
	// AdminRoleARN identifies the user whose projects are synced.
	AdminRoleARN string
	// PageSize is the number of projects synced per invocation.
	PageSize int32
	// RelationTypeID is the Collibra relation type linking a project to a table.
	RelationTypeID string
}

// Engine syncs one page of projects.
type Engine struct {
	collibra collibra.Client
	datazone datazone.Client
	opts     Options
	logger   *zap.Logger
	counts   map[string]int
}

// NewEngine creates an Engine for a single invocation.
func NewEngine(c collibra.Client, dz datazone.Client, opts Options, logger *zap.Logger) *Engine {
	return &Engine{
		collibra: c,
		datazone: dz,
		opts:     opts,
		logger:   logger,
		counts:   map[string]int{},
	}
}

// Counts returns the outcome counters of the invocation.
func (e *Engine) Counts() map[string]int {
	return e.counts
}

// Sync syncs the page of admin projects starting at token. It returns the token of the next
// page, or token itself once the listing has no further page.
func (e *Engine) Sync(ctx context.Context, token *string) (*string, error) {
	adminUserID, err := datazone.AdminUserID(ctx, e.datazone, e.opts.AdminRoleARN)
	if err != nil {
		return token, err
	}

	var current string
	if token != nil {
		current = *token
	}
	page, err := e.datazone.ListProjects(ctx, adminUserID, e.opts.PageSize, current)
	if err != nil {
		return token, err
	}

	next := token
	if page.NextToken != "" {
		next = &page.NextToken
	}

	e.logger.Info("Syncing projects", zap.Int("projects", len(page.Items)))
	for _, p := range page.Items {
		if err := ctx.Err(); err != nil {
			return token, err
		}
		e.counts["projects"]++
		if err := e.syncProject(ctx, p.ID); err != nil {
			e.logger.Warn("Failed to sync project",
				zap.String("project_id", p.ID),
				zap.String("project", p.Name),
				zap.Error(err))
			e.counts["failed"]++
		}
	}

	return next, nil
}

func (e *Engine) syncProject(ctx context.Context, projectID string) error {
	project, err := e.datazone.GetProject(ctx, projectID)
	if err != nil {
		return err
	}

	asset, err := e.collibra.GetOrCreateProject(ctx, project.Name)
	if err != nil {
		return err
	}
	if err := e.collibra.AddProjectAttribute(ctx, asset.ID, project.ID); err != nil {
		return err
	}

	l := e.logger.With(zap.String("project", project.Name), zap.String("project_asset_id", asset.ID))
	l.Info("Synced project")

	if err := e.linkListings(ctx, l, project.ID, asset.ID); err != nil {
		return err
	}
	return e.syncUsers(ctx, l, project)
}

func (e *Engine) linkListings(ctx context.Context, l *zap.Logger, projectID, projectAssetID string) error {
	listings, err := datazone.Drain(ctx, func(ctx context.Context, token string) (datazone.Page[datazone.Listing], error) {
		return e.datazone.SearchListings(ctx, projectID, "", token)
	})
	if err != nil {
		return fmt.Errorf("failed to search listings: %w", err)
	}

	for _, listing := range listings {
		table, err := e.collibra.TableByName(ctx, listing.Name)
		if err != nil {
			if errors.Is(err, collibra.ErrNotFound) {
				l.Warn("Listed table does not exist in Collibra, skipping", zap.String("listing", listing.Name))
			} else {
				l.Warn("Failed to find listed table", zap.String("listing", listing.Name), zap.Error(err))
			}
			e.counts["listings_missing"]++
			continue
		}

		if err := e.collibra.CreateRelation(ctx, projectAssetID, table.ID, e.opts.RelationTypeID); err != nil {
			l.Warn("Failed to associate project with table", zap.String("table_id", table.ID), zap.Error(err))
			e.counts["listings_failed"]++
			continue
		}
		e.counts["listings_linked"]++
	}
	return nil
}

func (e *Engine) syncUsers(ctx context.Context, l *zap.Logger, project datazone.Project) error {
	userIDs, err := datazone.Drain(ctx, func(ctx context.Context, token string) (datazone.Page[string], error) {
		return e.datazone.ListProjectUsers(ctx, project.ID, token)
	})
	if err != nil {
		return fmt.Errorf("failed to list project members: %w", err)
	}
	l.Info("Found project members", zap.Int("users", len(userIDs)))

	for _, userID := range userIDs {
		if err := e.syncUser(ctx, userID, project.Name); err != nil {
			l.Warn("Failed to sync project member", zap.String("user_id", userID), zap.Error(err))
			e.counts["users_failed"]++
		}
	}
	return nil
}

func (e *Engine) syncUser(ctx context.Context, userID, projectName string) error {
	profile, err := e.datazone.GetUserProfile(ctx, userID)
	if err != nil {
		return err
	}
	if profile.Type == datazone.UserProfileTypeIAM {
		e.counts["users_skipped"]++
		return nil
	}
	if profile.SSOUsername == "" {
		return errors.New("profile has no sso username")
	}

	user, err := e.collibra.GetOrCreateUser(ctx, profile.SSOUsername)
	if err != nil {
		return err
	}
	if user.HasAttributeValue(projectName) {
		e.counts["users_unchanged"]++
		return nil
	}
	if err := e.collibra.AddUserProjectAttribute(ctx, user.ID, projectName); err != nil {
		return err
	}
	e.counts["users_linked"]++
	return nil
}
