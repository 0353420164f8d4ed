package reconcile

import "context"

// Mutator executes planned actions against the target catalog.
type Mutator interface {
	// Apply executes a single action. It is never called in dry-run mode.
	Apply(ctx context.Context, action Action) error
}

// MutatorFunc adapts a function to the Mutator interface.
type MutatorFunc func(ctx context.Context, action Action) error

// Apply calls f(ctx, action).
func (f MutatorFunc) Apply(ctx context.Context, action Action) error {
	return f(ctx, action)
}
