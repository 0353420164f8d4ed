package history_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"catalog-sync/core/database"
	"catalog-sync/core/history"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/mysql"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func setupMockDB(t *testing.T) (*gorm.DB, sqlmock.Sqlmock) {
	sqlDB, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { sqlDB.Close() })

	db, err := gorm.Open(mysql.New(mysql.Config{
		Conn:                      sqlDB,
		SkipInitializeWithVersion: true,
	}), &gorm.Config{Logger: logger.Default.LogMode(logger.Silent)})
	require.NoError(t, err)

	return db, mock
}

func openSQLite(t *testing.T) history.Store {
	db, err := database.Connect(database.Config{Driver: "sqlite", Name: ":memory:"})
	require.NoError(t, err)

	store, err := history.Open(db)
	require.NoError(t, err)
	return store
}

func TestStore_RecordListGet(t *testing.T) {
	store := openSQLite(t)
	ctx := context.Background()
	base := time.Date(2026, 5, 1, 10, 0, 0, 0, time.UTC)
	cursor := "tbl-9"

	runs := []history.Run{
		{ID: "r1", Engine: "assets", Status: history.StatusSucceeded, StartedAt: base, FinishedAt: base.Add(time.Minute)},
		{ID: "r2", Engine: "glossary", Status: history.StatusFailed, Error: "boom", StartedAt: base.Add(time.Hour)},
		{ID: "r3", Engine: "assets", CursorOut: &cursor, Status: history.StatusSucceeded, StartedAt: base.Add(2 * time.Hour)},
	}
	for i := range runs {
		require.NoError(t, store.Record(ctx, &runs[i]))
	}

	t.Run("List Newest First", func(t *testing.T) {
		got, err := store.List(ctx, "", 0)
		require.NoError(t, err)
		require.Len(t, got, 3)
		assert.Equal(t, []string{"r3", "r2", "r1"}, []string{got[0].ID, got[1].ID, got[2].ID})
	})

	t.Run("List By Engine", func(t *testing.T) {
		got, err := store.List(ctx, "assets", 1)
		require.NoError(t, err)
		require.Len(t, got, 1)
		assert.Equal(t, "r3", got[0].ID)
		require.NotNil(t, got[0].CursorOut)
		assert.Equal(t, "tbl-9", *got[0].CursorOut)
	})

	t.Run("Get", func(t *testing.T) {
		got, err := store.Get(ctx, "r2")
		require.NoError(t, err)
		assert.Equal(t, "boom", got.Error)
		assert.Nil(t, got.CursorIn)
	})

	t.Run("Get Unknown", func(t *testing.T) {
		_, err := store.Get(ctx, "nope")
		assert.True(t, errors.Is(err, history.ErrNotFound))
	})
}

func TestStore_RecordError(t *testing.T) {
	db, mock := setupMockDB(t)
	store := history.NewStore(db)

	mock.ExpectBegin()
	mock.ExpectExec("INSERT INTO `sync_runs`").WillReturnError(errors.New("disk full"))
	mock.ExpectRollback()

	err := store.Record(context.Background(), &history.Run{ID: "r1", Engine: "assets"})
	assert.ErrorContains(t, err, "failed to record run r1")
	assert.ErrorContains(t, err, "disk full")
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestStore_ListQuery(t *testing.T) {
	db, mock := setupMockDB(t)
	store := history.NewStore(db)

	rows := sqlmock.NewRows([]string{"id", "engine", "status"}).
		AddRow("r1", "projects", history.StatusSucceeded)
	mock.ExpectQuery("SELECT \\* FROM `sync_runs` WHERE engine = \\? ORDER BY started_at desc LIMIT \\?").
		WithArgs("projects", 10).
		WillReturnRows(rows)

	got, err := store.List(context.Background(), "projects", 10)
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, "projects", got[0].Engine)
	assert.NoError(t, mock.ExpectationsWereMet())
}
