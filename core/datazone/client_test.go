package datazone_test

import (
	"context"
	"testing"

	"catalog-sync/core/datazone"

	"github.com/aws/aws-sdk-go-v2/aws"
	sdk "github.com/aws/aws-sdk-go-v2/service/datazone"
	"github.com/aws/aws-sdk-go-v2/service/datazone/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type fakeAPI struct {
	datazone.API

	searchIn    *sdk.SearchInput
	searchOut   *sdk.SearchOutput
	searchPages map[string]*sdk.SearchOutput
	searchCalls int
	revisionIn *sdk.CreateAssetRevisionInput
	profileOut *sdk.GetUserProfileOutput
}

func (f *fakeAPI) Search(ctx context.Context, in *sdk.SearchInput, _ ...func(*sdk.Options)) (*sdk.SearchOutput, error) {
	f.searchIn = in
	f.searchCalls++
	if f.searchPages != nil {
		return f.searchPages[aws.ToString(in.NextToken)], nil
	}
	return f.searchOut, nil
}

func (f *fakeAPI) CreateAssetRevision(ctx context.Context, in *sdk.CreateAssetRevisionInput, _ ...func(*sdk.Options)) (*sdk.CreateAssetRevisionOutput, error) {
	f.revisionIn = in
	return &sdk.CreateAssetRevisionOutput{}, nil
}

func (f *fakeAPI) GetUserProfile(ctx context.Context, in *sdk.GetUserProfileInput, _ ...func(*sdk.Options)) (*sdk.GetUserProfileOutput, error) {
	return f.profileOut, nil
}

func newSDKClient(api *fakeAPI) datazone.Client {
	return datazone.NewClientWithAPI(api, datazone.Config{DomainID: "dzd_1"}, zap.NewNop())
}

func TestClient_SearchAssets(t *testing.T) {
	api := &fakeAPI{searchOut: &sdk.SearchOutput{
		NextToken: aws.String("more"),
		Items: []types.SearchInventoryResultItem{
			&types.SearchInventoryResultItemMemberAssetItem{Value: types.AssetItem{
				Identifier:         aws.String("a1"),
				Name:               aws.String("orders"),
				TypeIdentifier:     aws.String("amazon.datazone.RedshiftTableAssetType"),
				ExternalIdentifier: aws.String("ext"),
				GlossaryTerms:      []string{"t1"},
				AdditionalAttributes: &types.AssetItemAdditionalAttributes{
					FormsOutput: []types.FormOutput{{FormName: aws.String("RedshiftTableForm"), Content: aws.String("{}")}},
				},
			}},
			&types.SearchInventoryResultItemMemberGlossaryItem{Value: types.GlossaryItem{Id: aws.String("ignored")}},
		},
	}}

	page, err := newSDKClient(api).SearchAssets(context.Background(), "p1", "orders", "")
	require.NoError(t, err)

	assert.Equal(t, "more", page.NextToken)
	require.Len(t, page.Items, 1)
	asset := page.Items[0]
	assert.Equal(t, "a1", asset.ID)
	assert.Equal(t, "ext", asset.ExternalIdentifier)
	assert.Equal(t, []string{"t1"}, asset.GlossaryTerms)
	form, ok := asset.Form("RedshiftTableForm")
	assert.True(t, ok)
	assert.Equal(t, "{}", form.Content)

	assert.Equal(t, "dzd_1", aws.ToString(api.searchIn.DomainIdentifier))
	assert.Equal(t, types.InventorySearchScopeAsset, api.searchIn.SearchScope)
	assert.Equal(t, "p1", aws.ToString(api.searchIn.OwningProjectIdentifier))
	assert.Nil(t, api.searchIn.NextToken)
	require.Len(t, api.searchIn.SearchIn, 2)
	assert.Equal(t, "GlueTableForm.tableName", aws.ToString(api.searchIn.SearchIn[1].Attribute))
}

func TestClient_CreateAssetRevision_OmitsEmptyFields(t *testing.T) {
	api := &fakeAPI{}
	err := newSDKClient(api).CreateAssetRevision(context.Background(), datazone.AssetRevision{
		ID:    "a1",
		Name:  "orders",
		Forms: []datazone.FormInput{{Name: "AssetCommonDetailsForm", TypeIdentifier: "amazon.datazone.AssetCommonDetailsFormType", Content: "{}"}},
	})
	require.NoError(t, err)

	assert.Nil(t, api.revisionIn.Description)
	assert.Nil(t, api.revisionIn.GlossaryTerms)
	require.Len(t, api.revisionIn.FormsInput, 1)
	assert.Equal(t, "amazon.datazone.AssetCommonDetailsFormType", aws.ToString(api.revisionIn.FormsInput[0].TypeIdentifier))
}

func TestClient_GetUserProfile(t *testing.T) {
	api := &fakeAPI{profileOut: &sdk.GetUserProfileOutput{
		Id:     aws.String("u1"),
		Type:   types.UserProfileTypeSso,
		Status: types.UserProfileStatusActivated,
		Details: &types.UserProfileDetailsMemberSso{Value: types.SsoUserProfileDetails{
			Username: aws.String("jdoe"),
		}},
	}}

	profile, err := newSDKClient(api).GetUserProfile(context.Background(), "u1")
	require.NoError(t, err)
	assert.Equal(t, "jdoe", profile.SSOUsername)
	assert.Equal(t, "SSO", profile.Type)
	assert.Empty(t, profile.IAMArn)
}

func termItem(id, name string) types.SearchInventoryResultItem {
	return &types.SearchInventoryResultItemMemberGlossaryTermItem{Value: types.GlossaryTermItem{
		Id:         aws.String(id),
		Name:       aws.String(name),
		GlossaryId: aws.String("g-1"),
	}}
}

func TestClient_FindGlossaryTerm(t *testing.T) {
	t.Run("Exact Name On A Later Page", func(t *testing.T) {
		api := &fakeAPI{searchPages: map[string]*sdk.SearchOutput{
			"": {
				NextToken: aws.String("p2"),
				Items:     []types.SearchInventoryResultItem{termItem("t1", "Customer ID Type"), termItem("t2", "Customer IDs")},
			},
			"p2": {
				Items: []types.SearchInventoryResultItem{termItem("t3", "Customer ID")},
			},
		}}

		term, found, err := newSDKClient(api).FindGlossaryTerm(context.Background(), "g-1", "Customer ID")
		require.NoError(t, err)
		assert.True(t, found)
		assert.Equal(t, "t3", term.ID)
		assert.Equal(t, 2, api.searchCalls)
		assert.Equal(t, "p2", aws.ToString(api.searchIn.NextToken))
		assert.Equal(t, "Customer ID", aws.ToString(api.searchIn.SearchText))
	})

	t.Run("Stops On The First Match", func(t *testing.T) {
		api := &fakeAPI{searchPages: map[string]*sdk.SearchOutput{
			"": {
				NextToken: aws.String("p2"),
				Items:     []types.SearchInventoryResultItem{termItem("t1", "Order")},
			},
		}}

		_, found, err := newSDKClient(api).FindGlossaryTerm(context.Background(), "g-1", "Order")
		require.NoError(t, err)
		assert.True(t, found)
		assert.Equal(t, 1, api.searchCalls)
	})

	t.Run("Not Found After Last Page", func(t *testing.T) {
		api := &fakeAPI{searchPages: map[string]*sdk.SearchOutput{
			"":   {NextToken: aws.String("p2"), Items: []types.SearchInventoryResultItem{termItem("t1", "Orders")}},
			"p2": {Items: []types.SearchInventoryResultItem{termItem("t2", "Order Line")}},
		}}

		_, found, err := newSDKClient(api).FindGlossaryTerm(context.Background(), "g-1", "Order")
		require.NoError(t, err)
		assert.False(t, found)
		assert.Equal(t, 2, api.searchCalls)
	})
}
