// Package database opens the optional run history database.
//
// Connect wraps GORM and supports MySQL for deployments and SQLite for local runs and
// tests. The connection is verified with a ping bounded by the configured timeout.
//
// # Schema Inspection
//
// GetTableColumns and MissingColumns read the live column list of a table. The history
// package uses them to refuse a runs table that lacks columns it writes.
//
// # Usage
//
//	db, err := database.Connect(cfg.Database)
//	if err != nil {
//	    return err
//	}
package database
