package reconcile

import (
	"context"
	"fmt"
	"sync"
)

// Recorder accumulates a Plan while an engine runs and applies each action as it is
// planned. It is safe for concurrent use.
type Recorder struct {
	mu      sync.Mutex
	plan    Plan
	mutator Mutator
	opts    Options
}

// NewRecorder creates a Recorder that applies actions with m unless opts.DryRun is set.
func NewRecorder(m Mutator, opts Options) *Recorder {
	return &Recorder{
		mutator: m,
		opts:    opts,
		plan:    Plan{Actions: []Action{}, Summary: PlanSummary{DryRun: opts.DryRun}},
	}
}

// DryRun reports whether actions are only recorded.
func (r *Recorder) DryRun() bool {
	return r.opts.DryRun
}

// Execute records action and, outside dry-run, applies it. The error of the Mutator is
// returned wrapped; the action stays in the plan either way.
func (r *Recorder) Execute(ctx context.Context, action Action) error {
	r.mu.Lock()
	r.plan.Actions = append(r.plan.Actions, action)
	r.plan.Summary.Planned++
	r.mu.Unlock()

	if r.opts.DryRun {
		return nil
	}

	err := r.mutator.Apply(ctx, action)

	r.mu.Lock()
	defer r.mu.Unlock()
	if err != nil {
		r.plan.Summary.Failed++
		return fmt.Errorf("failed to apply %s on %s: %w", action.Type, action.Key, err)
	}
	r.plan.Summary.Executed++
	return nil
}

// Plan returns a copy of the plan recorded so far.
func (r *Recorder) Plan() Plan {
	r.mu.Lock()
	defer r.mu.Unlock()

	out := Plan{Summary: r.plan.Summary, Actions: make([]Action, len(r.plan.Actions))}
	copy(out.Actions, r.plan.Actions)
	return out
}

// ApplyPlan executes every action of a previously recorded plan.
// Returns the number of actions executed and stops at the first error.
func ApplyPlan(ctx context.Context, m Mutator, plan Plan) (executed int, err error) {
	for _, action := range plan.Actions {
		if err := ctx.Err(); err != nil {
			return executed, err
		}
		if err := m.Apply(ctx, action); err != nil {
			return executed, fmt.Errorf("failed to apply %s on %s: %w", action.Type, action.Key, err)
		}
		executed++
	}
	return executed, nil
}
