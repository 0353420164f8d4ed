package runs_test

import (
	"context"
	"encoding/json"
	"io"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"catalog-sync/core/database"
	"catalog-sync/core/history"
	"catalog-sync/core/storage"
	"catalog-sync/core/storage/mocks"
	"catalog-sync/feature/runs"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func seededStore(t *testing.T) history.Store {
	db, err := database.Connect(database.Config{Driver: "sqlite", Name: ":memory:"})
	require.NoError(t, err)
	store, err := history.Open(db)
	require.NoError(t, err)

	base := time.Date(2026, 5, 1, 10, 0, 0, 0, time.UTC)
	seed := []history.Run{
		{ID: "r1", Engine: "assets", Status: history.StatusSucceeded, StartedAt: base, ReportKey: "reports/assets/2026-05-01/r1.json"},
		{ID: "r2", Engine: "glossary", Status: history.StatusSucceeded, StartedAt: base.Add(time.Hour)},
		{ID: "r3", Engine: "assets", Status: history.StatusFailed, Error: "boom", StartedAt: base.Add(2 * time.Hour)},
	}
	for i := range seed {
		require.NoError(t, store.Record(context.Background(), &seed[i]))
	}
	return store
}

func setupApp(store history.Store, reports *storage.ReportStore) *fiber.App {
	app := fiber.New()
	_ = runs.NewFeature(runs.NewService(store, reports, zap.NewNop())).Load(app)
	return app
}

func decodeRuns(t *testing.T, body io.Reader) []history.Run {
	var out []history.Run
	require.NoError(t, json.NewDecoder(body).Decode(&out))
	return out
}

func TestHandleList(t *testing.T) {
	app := setupApp(seededStore(t), nil)

	t.Run("Newest First", func(t *testing.T) {
		resp, err := app.Test(httptest.NewRequest("GET", "/runs", nil))
		require.NoError(t, err)
		assert.Equal(t, 200, resp.StatusCode)

		got := decodeRuns(t, resp.Body)
		require.Len(t, got, 3)
		assert.Equal(t, "r3", got[0].ID)
	})

	t.Run("Engine Filter And Limit", func(t *testing.T) {
		resp, err := app.Test(httptest.NewRequest("GET", "/runs?engine=assets&limit=1", nil))
		require.NoError(t, err)

		got := decodeRuns(t, resp.Body)
		require.Len(t, got, 1)
		assert.Equal(t, "r3", got[0].ID)
	})
}

func TestHandleGet(t *testing.T) {
	app := setupApp(seededStore(t), nil)

	resp, err := app.Test(httptest.NewRequest("GET", "/runs/r3", nil))
	require.NoError(t, err)
	assert.Equal(t, 200, resp.StatusCode)

	var run history.Run
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&run))
	assert.Equal(t, "boom", run.Error)

	resp, err = app.Test(httptest.NewRequest("GET", "/runs/missing", nil))
	require.NoError(t, err)
	assert.Equal(t, 404, resp.StatusCode)
}

func TestHandleReport(t *testing.T) {
	client := new(mocks.Client)
	client.On("GetObject", mock.Anything, "reports-bucket", "reports/assets/2026-05-01/r1.json", mock.Anything).
		Return(io.NopCloser(strings.NewReader(`{"run":{"id":"r1"},"report":{"plan":{"actions":[]}}}`)), nil)
	reports := storage.NewReportStore(client, storage.Config{Bucket: "reports-bucket"}, zap.NewNop())

	app := setupApp(seededStore(t), reports)

	resp, err := app.Test(httptest.NewRequest("GET", "/runs/r1/report", nil))
	require.NoError(t, err)
	assert.Equal(t, 200, resp.StatusCode)
	body, _ := io.ReadAll(resp.Body)
	assert.JSONEq(t, `{"run":{"id":"r1"},"report":{"plan":{"actions":[]}}}`, string(body))

	resp, err = app.Test(httptest.NewRequest("GET", "/runs/r2/report", nil))
	require.NoError(t, err)
	assert.Equal(t, 404, resp.StatusCode)
}

func TestHistoryDisabled(t *testing.T) {
	app := setupApp(nil, nil)

	for _, path := range []string{"/runs", "/runs/r1", "/runs/r1/report"} {
		resp, err := app.Test(httptest.NewRequest("GET", path, nil))
		require.NoError(t, err)
		assert.Equal(t, 503, resp.StatusCode, path)
	}
}
