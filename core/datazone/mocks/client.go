package mocks

import (
	"context"

	"catalog-sync/core/datazone"

	"github.com/stretchr/testify/mock"
)

// Client is a mock implementation of datazone.Client
type Client struct {
	mock.Mock
}

func page[T any](args mock.Arguments) (datazone.Page[T], error) {
	if v, ok := args.Get(0).(datazone.Page[T]); ok {
		return v, args.Error(1)
	}
	return datazone.Page[T]{}, args.Error(1)
}

func (m *Client) SearchAssets(ctx context.Context, projectID, name, nextToken string) (datazone.Page[datazone.Asset], error) {
	return page[datazone.Asset](m.Called(ctx, projectID, name, nextToken))
}

func (m *Client) SearchListings(ctx context.Context, projectID, searchText, nextToken string) (datazone.Page[datazone.Listing], error) {
	return page[datazone.Listing](m.Called(ctx, projectID, searchText, nextToken))
}

func (m *Client) GetAsset(ctx context.Context, id string) (datazone.Asset, error) {
	args := m.Called(ctx, id)
	if v, ok := args.Get(0).(datazone.Asset); ok {
		return v, args.Error(1)
	}
	return datazone.Asset{}, args.Error(1)
}

func (m *Client) CreateAssetRevision(ctx context.Context, rev datazone.AssetRevision) error {
	return m.Called(ctx, rev).Error(0)
}

func (m *Client) FindGlossary(ctx context.Context, name string) (string, bool, error) {
	args := m.Called(ctx, name)
	return args.String(0), args.Bool(1), args.Error(2)
}

func (m *Client) CreateGlossary(ctx context.Context, name, ownerProjectID string) (string, error) {
	args := m.Called(ctx, name, ownerProjectID)
	return args.String(0), args.Error(1)
}

func (m *Client) SearchGlossaryTerms(ctx context.Context, glossaryID, nextToken string) (datazone.Page[datazone.GlossaryTerm], error) {
	return page[datazone.GlossaryTerm](m.Called(ctx, glossaryID, nextToken))
}

func (m *Client) FindGlossaryTerm(ctx context.Context, glossaryID, name string) (datazone.GlossaryTerm, bool, error) {
	args := m.Called(ctx, glossaryID, name)
	term, _ := args.Get(0).(datazone.GlossaryTerm)
	return term, args.Bool(1), args.Error(2)
}

func (m *Client) CreateGlossaryTerm(ctx context.Context, glossaryID, name string, desc datazone.Description) (string, error) {
	args := m.Called(ctx, glossaryID, name, desc)
	return args.String(0), args.Error(1)
}

func (m *Client) UpdateGlossaryTermDescription(ctx context.Context, termID string, desc datazone.Description) error {
	return m.Called(ctx, termID, desc).Error(0)
}

func (m *Client) UpdateGlossaryTermRelations(ctx context.Context, glossaryID, termID, name string, rel datazone.TermRelations) error {
	return m.Called(ctx, glossaryID, termID, name, rel).Error(0)
}

func (m *Client) GetProject(ctx context.Context, id string) (datazone.Project, error) {
	args := m.Called(ctx, id)
	project, _ := args.Get(0).(datazone.Project)
	return project, args.Error(1)
}

func (m *Client) ListProjects(ctx context.Context, userID string, limit int32, nextToken string) (datazone.Page[datazone.Project], error) {
	return page[datazone.Project](m.Called(ctx, userID, limit, nextToken))
}

func (m *Client) ListProjectUsers(ctx context.Context, projectID, nextToken string) (datazone.Page[string], error) {
	return page[string](m.Called(ctx, projectID, nextToken))
}

func (m *Client) GetUserProfile(ctx context.Context, userID string) (datazone.UserProfile, error) {
	args := m.Called(ctx, userID)
	profile, _ := args.Get(0).(datazone.UserProfile)
	return profile, args.Error(1)
}

func (m *Client) SearchIAMUserProfiles(ctx context.Context, searchText, nextToken string) (datazone.Page[datazone.UserProfile], error) {
	return page[datazone.UserProfile](m.Called(ctx, searchText, nextToken))
}

func (m *Client) CreateSubscriptionRequest(ctx context.Context, listingID, consumerProjectID string) (string, error) {
	args := m.Called(ctx, listingID, consumerProjectID)
	return args.String(0), args.Error(1)
}

func (m *Client) AcceptedSubscriptionRequests(ctx context.Context, listingID, producerProjectID, consumerProjectID string) ([]datazone.SubscriptionRequest, error) {
	args := m.Called(ctx, listingID, producerProjectID, consumerProjectID)
	requests, _ := args.Get(0).([]datazone.SubscriptionRequest)
	return requests, args.Error(1)
}

func (m *Client) ApprovedSubscriptions(ctx context.Context, requestID, producerProjectID, consumerProjectID string) ([]string, error) {
	args := m.Called(ctx, requestID, producerProjectID, consumerProjectID)
	ids, _ := args.Get(0).([]string)
	return ids, args.Error(1)
}
