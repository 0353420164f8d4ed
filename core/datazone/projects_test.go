package datazone_test

import (
	"context"
	"testing"

	"catalog-sync/core/datazone"
	"catalog-sync/core/datazone/mocks"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

const adminARN = "arn:aws:iam::123456789012:role/catalog-sync-admin"

func TestAdminUserID(t *testing.T) {
	t.Run("Matches Activated Profile Across Pages", func(t *testing.T) {
		c := new(mocks.Client)
		c.On("SearchIAMUserProfiles", mock.Anything, adminARN, "").Return(datazone.Page[datazone.UserProfile]{
			Items: []datazone.UserProfile{
				{ID: "deactivated", Status: "DEACTIVATED", IAMArn: adminARN},
				{ID: "other", Status: datazone.UserStatusActivated, IAMArn: adminARN + "-other"},
			},
			NextToken: "p2",
		}, nil)
		c.On("SearchIAMUserProfiles", mock.Anything, adminARN, "p2").Return(datazone.Page[datazone.UserProfile]{
			Items: []datazone.UserProfile{{ID: "admin", Status: datazone.UserStatusActivated, IAMArn: adminARN}},
		}, nil)

		id, err := datazone.AdminUserID(context.Background(), c, adminARN)
		require.NoError(t, err)
		assert.Equal(t, "admin", id)
		c.AssertExpectations(t)
	})

	t.Run("Not Found", func(t *testing.T) {
		c := new(mocks.Client)
		c.On("SearchIAMUserProfiles", mock.Anything, adminARN, "").Return(datazone.Page[datazone.UserProfile]{}, nil)

		_, err := datazone.AdminUserID(context.Background(), c, adminARN)
		assert.ErrorIs(t, err, datazone.ErrAdminUserNotFound)
	})

	t.Run("Unconfigured", func(t *testing.T) {
		_, err := datazone.AdminUserID(context.Background(), new(mocks.Client), "")
		assert.ErrorIs(t, err, datazone.ErrAdminUserNotFound)
	})
}

func TestGovernedProjects(t *testing.T) {
	c := new(mocks.Client)
	c.On("ListProjects", mock.Anything, "admin", int32(50), "").Return(datazone.Page[datazone.Project]{
		Items: []datazone.Project{
			{ID: "p1", Name: "sales", Status: datazone.ProjectStatusActive},
			{ID: "p2", Name: "old", Status: "DELETING"},
		},
		NextToken: "n",
	}, nil)
	c.On("ListProjects", mock.Anything, "admin", int32(50), "n").Return(datazone.Page[datazone.Project]{
		Items: []datazone.Project{{ID: "p3", Name: "marketing", Status: datazone.ProjectStatusActive}},
	}, nil)

	set, err := datazone.GovernedProjects(context.Background(), c, "admin")
	require.NoError(t, err)

	assert.Len(t, set, 2)
	assert.True(t, set.Contains("p1"))
	assert.False(t, set.Contains("p2"))
	assert.True(t, set.Contains("p3"))
}

func TestLoadGovernedProjects(t *testing.T) {
	c := new(mocks.Client)
	c.On("SearchIAMUserProfiles", mock.Anything, adminARN, "").Return(datazone.Page[datazone.UserProfile]{
		Items: []datazone.UserProfile{{ID: "admin", Status: datazone.UserStatusActivated, IAMArn: adminARN}},
	}, nil)
	c.On("ListProjects", mock.Anything, "admin", int32(50), "").Return(datazone.Page[datazone.Project]{
		Items: []datazone.Project{{ID: "p-1", Status: datazone.ProjectStatusActive}},
	}, nil)

	set, err := datazone.LoadGovernedProjects(context.Background(), c, adminARN)
	require.NoError(t, err)
	assert.True(t, set.Contains("p-1"))

	_, err = datazone.LoadGovernedProjects(context.Background(), c, "")
	assert.ErrorIs(t, err, datazone.ErrAdminUserNotFound)
}

func TestGovernedProjectSource(t *testing.T) {
	c := new(mocks.Client)
	c.On("SearchIAMUserProfiles", mock.Anything, adminARN, "").Return(datazone.Page[datazone.UserProfile]{
		Items: []datazone.UserProfile{{ID: "admin", Status: datazone.UserStatusActivated, IAMArn: adminARN}},
	}, nil)
	c.On("ListProjects", mock.Anything, "admin", int32(50), "").Return(datazone.Page[datazone.Project]{}, nil)

	source := datazone.GovernedProjectSource(c, adminARN)
	set, err := source(context.Background())
	require.NoError(t, err)
	assert.Empty(t, set)
	c.AssertNumberOfCalls(t, "ListProjects", 1)
}
