package checks

import (
	"context"
	"errors"

	"catalog-sync/core/collibra"
	"catalog-sync/core/datazone"
)

// CheckGlossary verifies the synced glossary exists. With fix it is created through resolver.
func CheckGlossary(ctx context.Context, dz datazone.Client, cfg datazone.Config, resolver *datazone.GlossaryResolver, fix bool) Result {
	name := cfg.GlossaryName()
	id, found, err := dz.FindGlossary(ctx, name)
	if err != nil {
		return failed(err)
	}
	if found {
		return Result{Status: StatusOK, Detail: id}
	}
	if !fix {
		return Result{Status: StatusMissing, Detail: name}
	}

	id, err = resolver.Ensure(ctx)
	if err != nil {
		return failed(err)
	}
	return Result{Status: StatusOK, Detail: id, Fixed: true}
}

// CheckAdmin verifies the admin role has an activated DataZone profile.
func CheckAdmin(ctx context.Context, dz datazone.Client, roleARN string) Result {
	id, err := datazone.AdminUserID(ctx, dz, roleARN)
	if errors.Is(err, datazone.ErrAdminUserNotFound) {
		return Result{Status: StatusMissing, Detail: err.Error()}
	}
	if err != nil {
		return failed(err)
	}
	return Result{Status: StatusOK, Detail: id}
}

// CheckCollibra reads the first page of business terms to verify credentials and reachability.
func CheckCollibra(ctx context.Context, c collibra.Client) Result {
	if _, err := c.BusinessTerms(ctx, nil); err != nil {
		return failed(err)
	}
	return Result{Status: StatusOK}
}
