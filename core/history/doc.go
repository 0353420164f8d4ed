// Package history keeps an audit trail of engine invocations.
//
// Each invocation gets a run id. The Tracker tags the invocation's logger with it,
// observes the invocation in the metrics registry, archives a JSON report to object
// storage and inserts a row into the sync_runs table. The row and the report are audit
// output only: no engine reads them back, so cursors stay caller-held.
package history
