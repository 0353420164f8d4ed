// Package assets pushes Collibra table metadata onto DataZone assets.
//
// Each invocation pages through Collibra AWS tables after the caller's cursor, ten at a
// time, until the source is drained or the time budget runs out. For every table the
// engine searches the governed projects by name, keeps the assets the matching package
// accepts and writes a new revision of each:
//
//   - glossary terms: existing terms first, then the table's synced terms
//   - description: the table descriptions joined with ","
//   - AssetCommonDetailsForm.readMe: the PII section, rewritten or removed
//   - ColumnBusinessMetadataForm: column descriptions and terms, created from the
//     technical form's columns when the asset has none yet
//
// Revisions go through a reconcile.Recorder, so a dry run returns the same plan without
// calling CreateAssetRevision. Failures are per table: the loop logs them and moves on.
package assets
