// Package integrity provides readiness checks for the sync service.
//
// The sync engines only report failures when they run. This package probes the
// infrastructure they depend on ahead of time.
//
// # Checks Provided
//
//   - storage: the report bucket exists (created with ?fix=true).
//   - history: the run history database answers.
//   - glossary: the synced DataZone glossary exists (created with ?fix=true).
//   - admin: the admin role has an activated DataZone user profile.
//   - collibra: Collibra accepts the configured credentials.
//
// Turned off backends report "disabled" and count as healthy.
//
// # HTTP Endpoints
//
//   - GET /integrity : Runs all checks, 503 when one fails.
//   - GET /integrity/:check : Runs one check.
package integrity
