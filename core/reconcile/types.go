package reconcile

// ActionType represents the type of mutation action.
type ActionType string

const (
	// ActionCreateRevision writes a new revision of a Catalog-B asset.
	ActionCreateRevision ActionType = "create_revision"
	// ActionUpdateTerm updates a Catalog-B glossary term.
	ActionUpdateTerm ActionType = "update_term"
	// ActionCreateTerm creates a Catalog-B glossary term.
	ActionCreateTerm ActionType = "create_term"
)

// Action represents a planned mutation operation.
type Action struct {
	// Type specifies the action to perform.
	Type ActionType `json:"type"`

	// Key is the identifier of the target entity.
	Key string `json:"key"`

	// Name is the display name of the target entity.
	Name string `json:"name"`

	// Source is the identifier of the Catalog-A record the action derives from.
	Source string `json:"source,omitempty"`

	// Reason explains why this action is needed.
	Reason string `json:"reason,omitempty"`

	// ChangedForms lists the metadata forms the action rewrites.
	ChangedForms []string `json:"changed_forms,omitempty"`

	// AddedTerms lists glossary term ids the action attaches.
	AddedTerms []string `json:"added_terms,omitempty"`

	// Payload is the request the Mutator sends. It is not serialized.
	Payload any `json:"-"`
}

// Plan contains planned actions and their outcome.
type Plan struct {
	// Actions contains planned mutation operations, in planning order.
	Actions []Action `json:"actions"`

	// Summary provides aggregate counts.
	Summary PlanSummary `json:"summary"`
}

// PlanSummary provides aggregate statistics for a plan.
type PlanSummary struct {
	// Planned counts every action added to the plan.
	Planned int `json:"planned"`

	// Executed counts actions the Mutator applied successfully.
	Executed int `json:"executed"`

	// Failed counts actions the Mutator rejected.
	Failed int `json:"failed"`

	// DryRun is true when no action was sent.
	DryRun bool `json:"dry_run"`
}

// Options controls whether planned actions are executed.
type Options struct {
	// DryRun prevents execution of any mutations if true.
	DryRun bool
}
