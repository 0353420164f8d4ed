package history

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"catalog-sync/core/database"

	"gorm.io/gorm"
)

// ErrNotFound is returned by Get for an unknown run id.
var ErrNotFound = errors.New("run not found")

const maxListLimit = 500

// Store persists run records. It is write-mostly audit output; no engine reads it.
type Store interface {
	// Record inserts a run.
	Record(ctx context.Context, run *Run) error
	// List returns the most recent runs, optionally filtered by engine.
	List(ctx context.Context, engine string, limit int) ([]Run, error)
	// Get returns a run by id.
	Get(ctx context.Context, id string) (Run, error)
}

type gormStore struct {
	db *gorm.DB
}

// NewStore creates a Store on an already migrated database.
func NewStore(db *gorm.DB) Store {
	return &gormStore{db: db}
}

// Open migrates the runs table and verifies it carries every written column.
func Open(db *gorm.DB) (Store, error) {
	if err := db.AutoMigrate(&Run{}); err != nil {
		return nil, fmt.Errorf("failed to migrate run history: %w", err)
	}

	missing, err := database.MissingColumns(db, Run{}.TableName(), Columns)
	if err != nil {
		return nil, err
	}
	if len(missing) > 0 {
		return nil, fmt.Errorf("run history table is missing columns: %s", strings.Join(missing, ", "))
	}

	return NewStore(db), nil
}

func (s *gormStore) Record(ctx context.Context, run *Run) error {
	if err := s.db.WithContext(ctx).Create(run).Error; err != nil {
		return fmt.Errorf("failed to record run %s: %w", run.ID, err)
	}
	return nil
}

func (s *gormStore) List(ctx context.Context, engine string, limit int) ([]Run, error) {
	if limit <= 0 || limit > maxListLimit {
		limit = 50
	}

	q := s.db.WithContext(ctx).Order("started_at desc").Limit(limit)
	if engine != "" {
		q = q.Where("engine = ?", engine)
	}

	var runs []Run
	if err := q.Find(&runs).Error; err != nil {
		return nil, fmt.Errorf("failed to list runs: %w", err)
	}
	return runs, nil
}

func (s *gormStore) Get(ctx context.Context, id string) (Run, error) {
	var run Run
	err := s.db.WithContext(ctx).Where("id = ?", id).First(&run).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return Run{}, fmt.Errorf("%w: %s", ErrNotFound, id)
	}
	if err != nil {
		return Run{}, fmt.Errorf("failed to get run %s: %w", id, err)
	}
	return run, nil
}
