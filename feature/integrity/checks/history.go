package checks

import (
	"context"

	"catalog-sync/core/history"
)

// CheckHistory reads one run to verify the history database answers.
func CheckHistory(ctx context.Context, store history.Store) Result {
	if store == nil {
		return Result{Status: StatusDisabled}
	}
	if _, err := store.List(ctx, "", 1); err != nil {
		return failed(err)
	}
	return Result{Status: StatusOK}
}
