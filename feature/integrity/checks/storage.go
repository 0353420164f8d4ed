package checks

import (
	"context"
	"fmt"

	"catalog-sync/core/storage"

	"github.com/minio/minio-go/v7"
	"go.uber.org/zap"
)

// CheckBucket verifies the report bucket exists. With fix a missing bucket is created.
// A nil client means the archive is turned off.
func CheckBucket(ctx context.Context, client storage.Client, cfg storage.Config, fix bool, logger *zap.Logger) Result {
	if client == nil {
		return Result{Status: StatusDisabled}
	}

	exists, err := client.BucketExists(ctx, cfg.Bucket)
	if err != nil {
		return failed(fmt.Errorf("failed to check bucket existence: %w", err))
	}
	if exists {
		return Result{Status: StatusOK, Detail: cfg.Bucket}
	}
	if !fix {
		return Result{Status: StatusMissing, Detail: cfg.Bucket}
	}

	if err := client.MakeBucket(ctx, cfg.Bucket, minio.MakeBucketOptions{Region: cfg.Region}); err != nil {
		logger.Error("Failed to create bucket", zap.String("bucket", cfg.Bucket), zap.Error(err))
		return failed(fmt.Errorf("failed to create bucket %s: %w", cfg.Bucket, err))
	}
	logger.Info("Created missing bucket", zap.String("bucket", cfg.Bucket))
	return Result{Status: StatusOK, Detail: cfg.Bucket, Fixed: true}
}
