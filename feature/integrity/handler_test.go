package integrity_test

import (
	"encoding/json"
	"errors"
	"net/http/httptest"
	"testing"

	collibramocks "catalog-sync/core/collibra/mocks"
	"catalog-sync/core/database"
	"catalog-sync/core/datazone"
	dzmocks "catalog-sync/core/datazone/mocks"
	"catalog-sync/core/history"
	"catalog-sync/core/storage"
	storagemocks "catalog-sync/core/storage/mocks"
	"catalog-sync/feature/integrity"
	"catalog-sync/feature/integrity/checks"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

const adminARN = "arn:aws:iam::123456789012:role/sync-admin"

type fixture struct {
	app      *fiber.App
	storage  *storagemocks.Client
	datazone *dzmocks.Client
	collibra *collibramocks.Client
}

func setupApp(t *testing.T, store history.Store) fixture {
	f := fixture{
		storage:  new(storagemocks.Client),
		datazone: new(dzmocks.Client),
		collibra: new(collibramocks.Client),
	}
	dzCfg := datazone.Config{DomainID: "dzd-1", AdminRoleARN: adminARN}
	logger := zap.NewNop()

	svc := integrity.NewService(integrity.Targets{
		Storage:        f.storage,
		StorageConfig:  storage.Config{Bucket: "reports"},
		History:        store,
		Collibra:       f.collibra,
		DataZone:       f.datazone,
		DataZoneConfig: dzCfg,
		Glossary:       datazone.NewGlossaryResolver(f.datazone, dzCfg, logger),
	}, logger)

	f.app = fiber.New()
	feature := integrity.NewFeature(svc)
	require.Equal(t, "integrity", feature.Name())
	require.True(t, feature.IsEnabled())
	require.NoError(t, feature.Load(f.app))
	return f
}

func historyStore(t *testing.T) history.Store {
	db, err := database.Connect(database.Config{Driver: "sqlite", Name: ":memory:"})
	require.NoError(t, err)
	store, err := history.Open(db)
	require.NoError(t, err)
	return store
}

func (f fixture) healthy() {
	f.storage.On("BucketExists", mock.Anything, "reports").Return(true, nil)
	f.datazone.On("FindGlossary", mock.Anything, mock.Anything).Return("g-1", true, nil)
	f.datazone.On("SearchIAMUserProfiles", mock.Anything, adminARN, "").Return(datazone.Page[datazone.UserProfile]{
		Items: []datazone.UserProfile{{ID: "u-admin", Status: datazone.UserStatusActivated, IAMArn: adminARN}},
	}, nil)
	f.collibra.On("BusinessTerms", mock.Anything, (*string)(nil)).Return(nil, nil)
}

func TestHandleIntegrityCheck(t *testing.T) {
	t.Run("Healthy", func(t *testing.T) {
		f := setupApp(t, historyStore(t))
		f.healthy()

		resp, err := f.app.Test(httptest.NewRequest("GET", "/integrity", nil))
		require.NoError(t, err)
		assert.Equal(t, 200, resp.StatusCode)

		var report integrity.Report
		require.NoError(t, json.NewDecoder(resp.Body).Decode(&report))
		assert.True(t, report.Healthy)
		assert.Len(t, report.Checks, len(integrity.Names))
		assert.Equal(t, "u-admin", report.Checks["admin"].Detail)
		assert.Equal(t, checks.StatusOK, report.Checks["history"].Status)
	})

	t.Run("Disabled History Is Healthy", func(t *testing.T) {
		f := setupApp(t, nil)
		f.healthy()

		resp, err := f.app.Test(httptest.NewRequest("GET", "/integrity", nil))
		require.NoError(t, err)
		assert.Equal(t, 200, resp.StatusCode)
	})

	t.Run("Failing Check", func(t *testing.T) {
		f := setupApp(t, nil)
		f.storage.On("BucketExists", mock.Anything, "reports").Return(false, nil)
		f.datazone.On("FindGlossary", mock.Anything, mock.Anything).Return("g-1", true, nil)
		f.datazone.On("SearchIAMUserProfiles", mock.Anything, adminARN, "").Return(nil, errors.New("throttled"))
		f.collibra.On("BusinessTerms", mock.Anything, (*string)(nil)).Return(nil, nil)

		resp, err := f.app.Test(httptest.NewRequest("GET", "/integrity", nil))
		require.NoError(t, err)
		assert.Equal(t, 503, resp.StatusCode)

		var report integrity.Report
		require.NoError(t, json.NewDecoder(resp.Body).Decode(&report))
		assert.False(t, report.Healthy)
		assert.Equal(t, checks.StatusMissing, report.Checks["storage"].Status)
		assert.Equal(t, checks.StatusError, report.Checks["admin"].Status)
	})
}

func TestHandleSingleCheck(t *testing.T) {
	t.Run("Fix Storage", func(t *testing.T) {
		f := setupApp(t, nil)
		f.storage.On("BucketExists", mock.Anything, "reports").Return(false, nil)
		f.storage.On("MakeBucket", mock.Anything, "reports", mock.Anything).Return(nil)

		resp, err := f.app.Test(httptest.NewRequest("GET", "/integrity/storage?fix=true", nil))
		require.NoError(t, err)
		assert.Equal(t, 200, resp.StatusCode)

		var res checks.Result
		require.NoError(t, json.NewDecoder(resp.Body).Decode(&res))
		assert.True(t, res.Fixed)
		f.storage.AssertExpectations(t)
	})

	t.Run("Unknown Check", func(t *testing.T) {
		f := setupApp(t, nil)

		resp, err := f.app.Test(httptest.NewRequest("GET", "/integrity/unknown", nil))
		require.NoError(t, err)
		assert.Equal(t, 404, resp.StatusCode)
	})
}
