// Package metrics exposes Prometheus collectors for engine invocations.
//
// Every invocation increments catalog_sync_invocations_total{engine,status} and observes
// catalog_sync_invocation_seconds{engine}. Item outcomes (updated, skipped, granted,
// rejected...) go to catalog_sync_items_total{engine,outcome}. Collectors live on a
// dedicated registry so tests can create independent instances.
package metrics
