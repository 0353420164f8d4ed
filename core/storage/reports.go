package storage

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"sync"
	"time"

	"github.com/minio/minio-go/v7"
	"go.uber.org/zap"
)

// ReportStore archives run reports as JSON objects under reports/<engine>/<date>/<runID>.json.
type ReportStore struct {
	client Client
	bucket string
	region string
	logger *zap.Logger

	once    sync.Once
	initErr error
}

// NewReportStore creates a ReportStore writing to cfg.Bucket.
func NewReportStore(client Client, cfg Config, logger *zap.Logger) *ReportStore {
	return &ReportStore{client: client, bucket: cfg.Bucket, region: cfg.Region, logger: logger}
}

// ReportKey returns the object key of a run report.
func ReportKey(engine, runID string, startedAt time.Time) string {
	return fmt.Sprintf("reports/%s/%s/%s.json", engine, startedAt.UTC().Format("2006-01-02"), runID)
}

func (s *ReportStore) ensureBucket(ctx context.Context) error {
	s.once.Do(func() {
		exists, err := s.client.BucketExists(ctx, s.bucket)
		if err != nil {
			s.initErr = fmt.Errorf("failed to check bucket %s: %w", s.bucket, err)
			return
		}
		if exists {
			return
		}
		s.logger.Info("Creating report bucket", zap.String("bucket", s.bucket))
		if err := s.client.MakeBucket(ctx, s.bucket, minio.MakeBucketOptions{Region: s.region}); err != nil {
			s.initErr = fmt.Errorf("failed to create bucket %s: %w", s.bucket, err)
		}
	})
	return s.initErr
}

// Put uploads report as JSON under key.
func (s *ReportStore) Put(ctx context.Context, key string, report any) error {
	if err := s.ensureBucket(ctx); err != nil {
		return err
	}

	body, err := json.MarshalIndent(report, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode report %s: %w", key, err)
	}

	_, err = s.client.PutObject(ctx, s.bucket, key, bytes.NewReader(body), int64(len(body)), minio.PutObjectOptions{
		ContentType: "application/json",
	})
	if err != nil {
		return fmt.Errorf("failed to upload report %s: %w", key, err)
	}
	return nil
}

// Get returns the raw JSON of the report stored under key.
func (s *ReportStore) Get(ctx context.Context, key string) ([]byte, error) {
	obj, err := s.client.GetObject(ctx, s.bucket, key, minio.GetObjectOptions{})
	if err != nil {
		return nil, fmt.Errorf("failed to get report %s: %w", key, err)
	}
	defer obj.Close()

	body, err := io.ReadAll(obj)
	if err != nil {
		return nil, fmt.Errorf("failed to read report %s: %w", key, err)
	}
	return body, nil
}
