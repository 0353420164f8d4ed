package assets_test

import (
	"io"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"catalog-sync/core/collibra"
	collibramocks "catalog-sync/core/collibra/mocks"
	"catalog-sync/core/datazone"
	"catalog-sync/core/history"
	"catalog-sync/feature/assets"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"github.com/tidwall/gjson"
	"go.uber.org/zap"
)

func setupApp(c collibra.Client, dz datazone.Client) *fiber.App {
	logger := zap.NewNop()
	resolver := datazone.NewGlossaryResolver(dz, dzConfig, logger)
	service := assets.NewService(c, dz, resolver, governed, time.Minute, history.NewTracker(logger, nil, nil, nil), logger)

	app := fiber.New()
	_ = assets.NewFeature(service).Load(app)
	return app
}

func TestHandleSyncAssets(t *testing.T) {
	t.Run("Returns Next Cursor", func(t *testing.T) {
		dz := setupDataZone()
		dz.On("CreateAssetRevision", mock.Anything, mock.Anything).Return(nil)
		app := setupApp(setupCollibra(true), dz)

		req := httptest.NewRequest("POST", "/sync/assets", strings.NewReader(`{"last_seen_asset_id":null,"attempt":2}`))
		req.Header.Set("Content-Type", "application/json")
		resp, err := app.Test(req)
		require.NoError(t, err)
		assert.Equal(t, 200, resp.StatusCode)
		assert.NotEmpty(t, resp.Header.Get("X-Run-Id"))

		body, _ := io.ReadAll(resp.Body)
		assert.JSONEq(t, `{"last_seen_asset_id":"t2","attempt":2}`, string(body))
	})

	t.Run("Dry Run Returns Plan", func(t *testing.T) {
		dz := setupDataZone()
		app := setupApp(setupCollibra(true), dz)

		resp, err := app.Test(httptest.NewRequest("POST", "/sync/assets?dry_run=true", nil))
		require.NoError(t, err)
		assert.Equal(t, 200, resp.StatusCode)

		body, _ := io.ReadAll(resp.Body)
		out := gjson.ParseBytes(body)
		assert.Equal(t, "t2", out.Get("last_seen_asset_id").String())
		assert.True(t, out.Get("plan.summary.dry_run").Bool())
		assert.Equal(t, int64(1), out.Get("plan.summary.planned").Int())
		assert.Equal(t, "a-1", out.Get("plan.actions.0.key").String())
		dz.AssertNotCalled(t, "CreateAssetRevision", mock.Anything, mock.Anything)
	})

	t.Run("Invalid Cursor", func(t *testing.T) {
		app := setupApp(new(collibramocks.Client), setupDataZone())

		resp, err := app.Test(httptest.NewRequest("POST", "/sync/assets", strings.NewReader(`{"last_seen_asset_id":["t1"]}`)))
		require.NoError(t, err)
		assert.Equal(t, 400, resp.StatusCode)
	})

	t.Run("Engine Failure", func(t *testing.T) {
		c := new(collibramocks.Client)
		c.On("Tables", mock.Anything, (*string)(nil)).Return(nil, assert.AnError)
		app := setupApp(c, setupDataZone())

		resp, err := app.Test(httptest.NewRequest("POST", "/sync/assets", nil))
		require.NoError(t, err)
		assert.Equal(t, 500, resp.StatusCode)
		assert.NotEmpty(t, resp.Header.Get("X-Run-Id"))
	})
}

func TestFeature(t *testing.T) {
	feature := assets.NewFeature(nil)
	assert.Equal(t, "assets", feature.Name())
	assert.True(t, feature.IsEnabled())
	assert.NoError(t, feature.Load(fiber.New()))
}
