package history

import "time"

// Run statuses.
const (
	StatusSucceeded = "succeeded"
	StatusFailed    = "failed"
)

// Run is one engine invocation.
type Run struct {
	ID         string    `gorm:"primaryKey;size:36" json:"id"`
	Engine     string    `gorm:"size:32;index:idx_sync_runs_engine_started" json:"engine"`
	CursorIn   *string   `gorm:"size:128" json:"cursor_in"`
	CursorOut  *string   `gorm:"size:128" json:"cursor_out"`
	DryRun     bool      `json:"dry_run"`
	Status     string    `gorm:"size:16" json:"status"`
	Counts     string    `gorm:"type:text" json:"counts"`
	Error      string    `gorm:"type:text" json:"error,omitempty"`
	ReportKey  string    `gorm:"size:255" json:"report_key,omitempty"`
	StartedAt  time.Time `gorm:"index:idx_sync_runs_engine_started" json:"started_at"`
	FinishedAt time.Time `json:"finished_at"`
}

// TableName overrides the default table name.
func (Run) TableName() string {
	return "sync_runs"
}

// Columns lists the columns Record writes.
var Columns = []string{
	"id", "engine", "cursor_in", "cursor_out", "dry_run", "status",
	"counts", "error", "report_key", "started_at", "finished_at",
}
