package mocks

import (
	"context"

	"catalog-sync/core/collibra"

	"github.com/stretchr/testify/mock"
)

// Client is a mock implementation of collibra.Client
type Client struct {
	mock.Mock
}

func (m *Client) assets(args mock.Arguments) ([]collibra.Asset, error) {
	if v, ok := args.Get(0).([]collibra.Asset); ok {
		return v, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *Client) asset(args mock.Arguments) (collibra.Asset, error) {
	if v, ok := args.Get(0).(collibra.Asset); ok {
		return v, args.Error(1)
	}
	return collibra.Asset{}, args.Error(1)
}

func (m *Client) BusinessTerms(ctx context.Context, lastSeenID *string) ([]collibra.Asset, error) {
	return m.assets(m.Called(ctx, lastSeenID))
}

func (m *Client) Tables(ctx context.Context, lastSeenID *string) ([]collibra.Asset, error) {
	return m.assets(m.Called(ctx, lastSeenID))
}

func (m *Client) Table(ctx context.Context, id string) (collibra.Asset, error) {
	return m.asset(m.Called(ctx, id))
}

func (m *Client) TableBusinessTerms(ctx context.Context, id string) (collibra.Asset, error) {
	return m.asset(m.Called(ctx, id))
}

func (m *Client) PIIColumns(ctx context.Context, id string) (collibra.Asset, error) {
	return m.asset(m.Called(ctx, id))
}

func (m *Client) BusinessTermHierarchy(ctx context.Context) ([]collibra.Asset, error) {
	return m.assets(m.Called(ctx))
}

func (m *Client) TableByName(ctx context.Context, name string) (collibra.Asset, error) {
	return m.asset(m.Called(ctx, name))
}

func (m *Client) SubscriptionRequestsByStatus(ctx context.Context, status string) ([]collibra.Asset, error) {
	return m.assets(m.Called(ctx, status))
}

func (m *Client) StartSubscriptionWorkflow(ctx context.Context, assetID, consumerProjectName string) error {
	return m.Called(ctx, assetID, consumerProjectName).Error(0)
}

func (m *Client) UpdateAssetStatus(ctx context.Context, assetID, statusID string) error {
	return m.Called(ctx, assetID, statusID).Error(0)
}

func (m *Client) GetOrCreateProject(ctx context.Context, name string) (collibra.Asset, error) {
	return m.asset(m.Called(ctx, name))
}

func (m *Client) AddProjectAttribute(ctx context.Context, projectAssetID, projectID string) error {
	return m.Called(ctx, projectAssetID, projectID).Error(0)
}

func (m *Client) CreateRelation(ctx context.Context, sourceID, targetID, typeID string) error {
	return m.Called(ctx, sourceID, targetID, typeID).Error(0)
}

func (m *Client) GetOrCreateUser(ctx context.Context, username string) (collibra.Asset, error) {
	return m.asset(m.Called(ctx, username))
}

func (m *Client) AddUserProjectAttribute(ctx context.Context, userID, projectName string) error {
	return m.Called(ctx, userID, projectName).Error(0)
}
