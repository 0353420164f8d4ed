// Package storage archives run reports in S3 compatible object storage.
//
// It wraps the MinIO Go client behind a small Client interface (mocked in
// core/storage/mocks) and works against AWS S3 as well as self-hosted MinIO.
//
// # Reports
//
// ReportStore writes one JSON document per engine invocation under
// reports/<engine>/<yyyy-mm-dd>/<runID>.json and creates the bucket on first use.
// Reports are audit output only; no engine reads them back.
//
// # Usage
//
//	client, err := storage.NewClient(cfg.Storage)
//	store := storage.NewReportStore(client, cfg.Storage, logger)
//	err = store.Put(ctx, storage.ReportKey("assets", runID, started), report)
package storage
