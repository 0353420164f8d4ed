package checks_test

import (
	"context"
	"errors"
	"testing"

	"catalog-sync/core/collibra"
	collibramocks "catalog-sync/core/collibra/mocks"
	"catalog-sync/core/datazone"
	dzmocks "catalog-sync/core/datazone/mocks"
	"catalog-sync/core/storage"
	storagemocks "catalog-sync/core/storage/mocks"
	"catalog-sync/feature/integrity/checks"

	"github.com/minio/minio-go/v7"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"go.uber.org/zap"
)

func TestCheckBucket(t *testing.T) {
	ctx := context.Background()
	cfg := storage.Config{Bucket: "reports", Region: "eu-west-1"}
	logger := zap.NewNop()

	t.Run("disabled", func(t *testing.T) {
		assert.Equal(t, checks.StatusDisabled, checks.CheckBucket(ctx, nil, cfg, true, logger).Status)
	})

	t.Run("exists", func(t *testing.T) {
		client := new(storagemocks.Client)
		client.On("BucketExists", mock.Anything, "reports").Return(true, nil)

		res := checks.CheckBucket(ctx, client, cfg, false, logger)
		assert.Equal(t, checks.StatusOK, res.Status)
		assert.False(t, res.Fixed)
	})

	t.Run("missing without fix", func(t *testing.T) {
		client := new(storagemocks.Client)
		client.On("BucketExists", mock.Anything, "reports").Return(false, nil)

		res := checks.CheckBucket(ctx, client, cfg, false, logger)
		assert.Equal(t, checks.StatusMissing, res.Status)
		client.AssertNotCalled(t, "MakeBucket", mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("missing with fix", func(t *testing.T) {
		client := new(storagemocks.Client)
		client.On("BucketExists", mock.Anything, "reports").Return(false, nil)
		client.On("MakeBucket", mock.Anything, "reports", minio.MakeBucketOptions{Region: "eu-west-1"}).Return(nil)

		res := checks.CheckBucket(ctx, client, cfg, true, logger)
		assert.Equal(t, checks.StatusOK, res.Status)
		assert.True(t, res.Fixed)
	})

	t.Run("error", func(t *testing.T) {
		client := new(storagemocks.Client)
		client.On("BucketExists", mock.Anything, "reports").Return(false, errors.New("denied"))

		res := checks.CheckBucket(ctx, client, cfg, true, logger)
		assert.Equal(t, checks.StatusError, res.Status)
		assert.Contains(t, res.Detail, "denied")
		assert.False(t, res.Healthy())
	})
}

func TestCheckGlossary(t *testing.T) {
	ctx := context.Background()
	cfg := datazone.Config{GlossaryOwnerProjectID: "p-owner"}

	t.Run("found", func(t *testing.T) {
		dz := new(dzmocks.Client)
		dz.On("FindGlossary", mock.Anything, cfg.GlossaryName()).Return("g-1", true, nil)

		res := checks.CheckGlossary(ctx, dz, cfg, datazone.NewGlossaryResolver(dz, cfg, zap.NewNop()), false)
		assert.Equal(t, checks.Result{Status: checks.StatusOK, Detail: "g-1"}, res)
	})

	t.Run("missing", func(t *testing.T) {
		dz := new(dzmocks.Client)
		dz.On("FindGlossary", mock.Anything, cfg.GlossaryName()).Return("", false, nil)

		res := checks.CheckGlossary(ctx, dz, cfg, datazone.NewGlossaryResolver(dz, cfg, zap.NewNop()), false)
		assert.Equal(t, checks.StatusMissing, res.Status)
		dz.AssertNotCalled(t, "CreateGlossary", mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("created with fix", func(t *testing.T) {
		dz := new(dzmocks.Client)
		dz.On("FindGlossary", mock.Anything, cfg.GlossaryName()).Return("", false, nil)
		dz.On("CreateGlossary", mock.Anything, cfg.GlossaryName(), "p-owner").Return("g-new", nil)

		res := checks.CheckGlossary(ctx, dz, cfg, datazone.NewGlossaryResolver(dz, cfg, zap.NewNop()), true)
		assert.Equal(t, checks.Result{Status: checks.StatusOK, Detail: "g-new", Fixed: true}, res)
	})
}

func TestCheckAdmin(t *testing.T) {
	ctx := context.Background()

	arn := "arn:aws:iam::123456789012:role/sync-admin"

	t.Run("not configured", func(t *testing.T) {
		res := checks.CheckAdmin(ctx, new(dzmocks.Client), "")
		assert.Equal(t, checks.StatusMissing, res.Status)
	})

	t.Run("activated profile", func(t *testing.T) {
		dz := new(dzmocks.Client)
		dz.On("SearchIAMUserProfiles", mock.Anything, arn, "").Return(datazone.Page[datazone.UserProfile]{
			Items: []datazone.UserProfile{{ID: "u-admin", Status: datazone.UserStatusActivated, IAMArn: arn}},
		}, nil)

		assert.Equal(t, checks.Result{Status: checks.StatusOK, Detail: "u-admin"}, checks.CheckAdmin(ctx, dz, arn))
	})

	t.Run("lookup error", func(t *testing.T) {
		dz := new(dzmocks.Client)
		dz.On("SearchIAMUserProfiles", mock.Anything, arn, "").Return(nil, errors.New("throttled"))

		assert.Equal(t, checks.StatusError, checks.CheckAdmin(ctx, dz, arn).Status)
	})
}

func TestCheckCollibra(t *testing.T) {
	ctx := context.Background()

	c := new(collibramocks.Client)
	c.On("BusinessTerms", mock.Anything, (*string)(nil)).Return([]collibra.Asset{}, nil).Once()
	assert.Equal(t, checks.StatusOK, checks.CheckCollibra(ctx, c).Status)

	c.On("BusinessTerms", mock.Anything, (*string)(nil)).Return(nil, errors.New("401 unauthorized")).Once()
	assert.Equal(t, checks.StatusError, checks.CheckCollibra(ctx, c).Status)
}

func TestCheckHistory(t *testing.T) {
	assert.Equal(t, checks.StatusDisabled, checks.CheckHistory(context.Background(), nil).Status)
}
