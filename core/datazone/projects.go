package datazone

import (
	"context"
	"errors"
	"fmt"
)

// ErrAdminUserNotFound is returned when no activated IAM profile matches the admin role.
var ErrAdminUserNotFound = errors.New("admin role user profile not found")

// ProjectSet is the set of projects the engine governs, keyed by project id.
type ProjectSet map[string]Project

// Contains reports whether id is governed.
func (s ProjectSet) Contains(id string) bool {
	_, ok := s[id]
	return ok
}

// AdminUserID finds the user id of the IAM profile for roleARN. Only activated profiles
// whose ARN matches exactly are considered.
func AdminUserID(ctx context.Context, c Client, roleARN string) (string, error) {
	if roleARN == "" {
		return "", fmt.Errorf("%w: admin role arn is not configured", ErrAdminUserNotFound)
	}

	token := ""
	for {
		page, err := c.SearchIAMUserProfiles(ctx, roleARN, token)
		if err != nil {
			return "", err
		}
		for _, p := range page.Items {
			if p.Status == UserStatusActivated && p.IAMArn == roleARN {
				return p.ID, nil
			}
		}
		if page.NextToken == "" || page.NextToken == token {
			return "", fmt.Errorf("%w: %s", ErrAdminUserNotFound, roleARN)
		}
		token = page.NextToken
	}
}

// GovernedProjects returns the active projects the admin user is a member of.
func GovernedProjects(ctx context.Context, c Client, adminUserID string) (ProjectSet, error) {
	projects, err := Drain(ctx, func(ctx context.Context, token string) (Page[Project], error) {
		return c.ListProjects(ctx, adminUserID, maxResults, token)
	})
	if err != nil {
		return nil, fmt.Errorf("failed to list governed projects: %w", err)
	}

	set := make(ProjectSet, len(projects))
	for _, p := range projects {
		if p.Status == ProjectStatusActive {
			set[p.ID] = p
		}
	}
	return set, nil
}

// LoadGovernedProjects resolves the admin user of roleARN and returns its governed projects.
func LoadGovernedProjects(ctx context.Context, c Client, roleARN string) (ProjectSet, error) {
	adminUserID, err := AdminUserID(ctx, c, roleARN)
	if err != nil {
		return nil, err
	}
	return GovernedProjects(ctx, c, adminUserID)
}

// ProjectSource returns the governed project set. Engines call it once per invocation.
type ProjectSource func(ctx context.Context) (ProjectSet, error)

// GovernedProjectSource returns a ProjectSource backed by LoadGovernedProjects.
func GovernedProjectSource(c Client, roleARN string) ProjectSource {
	return func(ctx context.Context) (ProjectSet, error) {
		return LoadGovernedProjects(ctx, c, roleARN)
	}
}
