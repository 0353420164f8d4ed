package matching_test

import (
	"context"
	"errors"
	"testing"

	"catalog-sync/core/collibra"
	"catalog-sync/core/datazone"
	"catalog-sync/feature/matching"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tidwall/sjson"
	"go.uber.org/zap"
)

const (
	redshiftAssetType = "amazon.datazone.RedshiftTableAssetType"
	glueAssetType     = "amazon.datazone.GlueTableAssetType"

	clusterForm = `{
		"storageType": "CLUSTER",
		"region": "us-east-1",
		"databaseName": "dev",
		"schemaName": "public",
		"tableName": "orders",
		"redshiftStorage": {"redshiftClusterSource": {"clusterName": "sales-cluster"}}
	}`
	serverlessForm = `{
		"storageType": "SERVERLESS",
		"region": "eu-west-1",
		"accountId": "123456789012",
		"databaseName": "dev",
		"schemaName": "public",
		"tableName": "orders",
		"redshiftStorage": {"redshiftServerlessSource": {"workgroupName": "analytics-wg"}}
	}`
	glueForm = `{
		"region": "eu-west-1",
		"tableArn": "arn:aws:glue:eu-west-1:123456789012:table/sales/orders",
		"databaseName": "sales",
		"tableName": "orders"
	}`

	clusterMetadata    = `{“redshiftEndpoint”: “sales-cluster.abc123.us-east-1.redshift.amazonaws.com:5439/dev”}`
	serverlessMetadata = `{"redshiftEndpoint": "analytics-wg.123456789012.eu-west-1.redshift-serverless.amazonaws.com:5439/dev"}`
	glueMetadata       = `{"glueAccessRoleArn": "arn:aws:iam::123456789012:role/glue-reader", "region": "IRELAND"}`
)

func record(fullName, metadata string) collibra.Asset {
	return collibra.Asset{
		ID:          "c-1",
		FullName:    fullName,
		DisplayName: "orders",
		StringAttributes: []collibra.StringAttribute{{
			StringValue: metadata,
			Type:        collibra.AttributeType{Name: collibra.AttributeResourceMetadata},
		}},
	}
}

func asset(typeID, formName, content string) matching.Asset {
	return matching.NewAsset(datazone.Asset{
		ID:                 "a-1",
		Name:               "orders",
		TypeIdentifier:     typeID,
		ExternalIdentifier: "ext-1",
		Forms:              []datazone.Form{{Name: formName, Content: content}},
	})
}

func set(t *testing.T, doc, path string, value any) string {
	out, err := sjson.Set(doc, path, value)
	require.NoError(t, err)
	return out
}

func del(t *testing.T, doc, path string) string {
	out, err := sjson.Delete(doc, path)
	require.NoError(t, err)
	return out
}

func TestMatcher_FieldFlips(t *testing.T) {
	m := matching.NewMatcher(zap.NewNop())
	ctx := context.Background()

	tests := []struct {
		name     string
		typeID   string
		formName string
		form     string
		fullName string
		metadata string
		want     bool
	}{
		{"Cluster Match", redshiftAssetType, datazone.FormRedshiftTable, clusterForm, "AWS>dev>public>orders", clusterMetadata, true},
		{"Cluster View Form", "amazon.datazone.RedshiftViewAssetType", datazone.FormRedshiftView, clusterForm, "AWS>dev>public>orders", clusterMetadata, true},
		{"Cluster Region Differs", redshiftAssetType, datazone.FormRedshiftTable, set(t, clusterForm, "region", "us-west-2"), "AWS>dev>public>orders", clusterMetadata, false},
		{"Cluster Name Differs", redshiftAssetType, datazone.FormRedshiftTable, set(t, clusterForm, "redshiftStorage.redshiftClusterSource.clusterName", "other"), "AWS>dev>public>orders", clusterMetadata, false},
		{"Cluster Database Differs", redshiftAssetType, datazone.FormRedshiftTable, clusterForm, "AWS>prod>public>orders", clusterMetadata, false},
		{"Cluster Schema Differs", redshiftAssetType, datazone.FormRedshiftTable, clusterForm, "AWS>dev>sales>orders", clusterMetadata, false},
		{"Cluster Table Differs", redshiftAssetType, datazone.FormRedshiftTable, set(t, clusterForm, "tableName", "orders_v2"), "AWS>dev>public>orders", clusterMetadata, false},
		{"Cluster Bad Endpoint", redshiftAssetType, datazone.FormRedshiftTable, clusterForm, "AWS>dev>public>orders", `{"redshiftEndpoint": "localhost:5439"}`, false},
		{"Cluster Short Path", redshiftAssetType, datazone.FormRedshiftTable, clusterForm, "dev>public>orders", clusterMetadata, false},
		{"Cluster Missing Form Key", redshiftAssetType, datazone.FormRedshiftTable, del(t, clusterForm, "schemaName"), "AWS>dev>public>orders", clusterMetadata, false},

		{"Serverless Match", redshiftAssetType, datazone.FormRedshiftTable, serverlessForm, "AWS>dev>public>orders", serverlessMetadata, true},
		{"Serverless Region Differs", redshiftAssetType, datazone.FormRedshiftTable, set(t, serverlessForm, "region", "eu-west-2"), "AWS>dev>public>orders", serverlessMetadata, false},
		{"Serverless Workgroup Differs", redshiftAssetType, datazone.FormRedshiftTable, set(t, serverlessForm, "redshiftStorage.redshiftServerlessSource.workgroupName", "etl-wg"), "AWS>dev>public>orders", serverlessMetadata, false},
		{"Serverless Account Differs", redshiftAssetType, datazone.FormRedshiftTable, set(t, serverlessForm, "accountId", "210987654321"), "AWS>dev>public>orders", serverlessMetadata, false},
		{"Serverless Table Differs", redshiftAssetType, datazone.FormRedshiftTable, serverlessForm, "AWS>dev>public>customers", serverlessMetadata, false},
		{"Serverless Cluster Endpoint", redshiftAssetType, datazone.FormRedshiftTable, serverlessForm, "AWS>dev>public>orders", clusterMetadata, false},

		{"Glue Match", glueAssetType, datazone.FormGlueTable, glueForm, "AWS>sales>orders", glueMetadata, true},
		{"Glue Region Differs", glueAssetType, datazone.FormGlueTable, set(t, glueForm, "region", "us-east-1"), "AWS>sales>orders", glueMetadata, false},
		{"Glue Account Not In Arn", glueAssetType, datazone.FormGlueTable, set(t, glueForm, "tableArn", "arn:aws:glue:eu-west-1:999999999999:table/sales/orders"), "AWS>sales>orders", glueMetadata, false},
		{"Glue Database Differs", glueAssetType, datazone.FormGlueTable, set(t, glueForm, "databaseName", "raw"), "AWS>sales>orders", glueMetadata, false},
		{"Glue Table Differs", glueAssetType, datazone.FormGlueTable, glueForm, "AWS>sales>customers", glueMetadata, false},
		{"Glue Unknown Region Name", glueAssetType, datazone.FormGlueTable, glueForm, "AWS>sales>orders", `{"glueAccessRoleArn": "arn:aws:iam::123456789012:role/r", "region": "ATLANTIS"}`, false},
		{"Glue Bad Arn", glueAssetType, datazone.FormGlueTable, glueForm, "AWS>sales>orders", `{"glueAccessRoleArn": "role/r", "region": "IRELAND"}`, false},

		{"Unknown Marker", "amazon.datazone.S3ObjectCollectionAssetType", datazone.FormGlueTable, glueForm, "AWS>sales>orders", glueMetadata, false},
		{"Unknown Storage Type", redshiftAssetType, datazone.FormRedshiftTable, set(t, clusterForm, "storageType", "DATASHARE"), "AWS>dev>public>orders", clusterMetadata, false},
		{"Form Missing", redshiftAssetType, datazone.FormGlueTable, clusterForm, "AWS>dev>public>orders", clusterMetadata, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := m.Match(ctx, asset(tt.typeID, tt.formName, tt.form), record(tt.fullName, tt.metadata))
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestMatcher_ResourceMetadataErrors(t *testing.T) {
	m := matching.NewMatcher(zap.NewNop())
	candidate := asset(redshiftAssetType, datazone.FormRedshiftTable, clusterForm)

	t.Run("Missing Attribute", func(t *testing.T) {
		rec := collibra.Asset{ID: "c-1", FullName: "AWS>dev>public>orders"}
		_, err := m.Match(context.Background(), candidate, rec)
		assert.True(t, errors.Is(err, matching.ErrResourceMetadata))
	})

	t.Run("Malformed Json", func(t *testing.T) {
		_, err := m.Match(context.Background(), candidate, record("AWS>dev>public>orders", `{redshiftEndpoint:`))
		assert.ErrorIs(t, err, matching.ErrResourceMetadata)
	})

	t.Run("Not An Object", func(t *testing.T) {
		_, err := m.Match(context.Background(), candidate, record("AWS>dev>public>orders", `"just text"`))
		assert.ErrorIs(t, err, matching.ErrResourceMetadata)
	})
}

func TestMatcher_AssetWithoutExternalIdentifier(t *testing.T) {
	m := matching.NewMatcher(zap.NewNop())
	a := asset(redshiftAssetType, datazone.FormRedshiftTable, clusterForm)
	a.ExternalIdentifier = ""

	// Invalid resources are rejected before the metadata is read.
	got, err := m.Match(context.Background(), a, collibra.Asset{})
	assert.NoError(t, err)
	assert.False(t, got)
}

func TestMatcher_Listing(t *testing.T) {
	m := matching.NewMatcher(zap.NewNop())

	forms := `{"` + datazone.FormGlueTable + `": ` + glueForm + `, "AssetCommonDetailsForm": {"readMe": ""}}`
	listing := matching.NewListing(datazone.Listing{
		ListingID:  "l-1",
		EntityID:   "a-1",
		EntityType: glueAssetType,
		Name:       "orders",
		Forms:      forms,
	})

	got, err := m.Match(context.Background(), listing, record("AWS>sales>orders", glueMetadata))
	require.NoError(t, err)
	assert.True(t, got)

	listing.Forms = `{}`
	got, err = m.Match(context.Background(), listing, record("AWS>sales>orders", glueMetadata))
	require.NoError(t, err)
	assert.False(t, got)
}
