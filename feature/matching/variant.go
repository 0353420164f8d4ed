package matching

import (
	"errors"
	"fmt"
	"strings"

	"catalog-sync/core/datazone"

	"github.com/tidwall/gjson"
)

// VariantKind is the physical storage family of a DataZone resource.
type VariantKind int

const (
	VariantUnknown VariantKind = iota
	VariantWarehouseCluster
	VariantWarehouseServerless
	VariantCatalogTable
)

func (k VariantKind) String() string {
	switch k {
	case VariantWarehouseCluster:
		return "redshift-cluster"
	case VariantWarehouseServerless:
		return "redshift-serverless"
	case VariantCatalogTable:
		return "glue-table"
	default:
		return "unknown"
	}
}

const (
	redshiftMarker = "Redshift"
	glueMarker     = "Glue"

	storageCluster    = "CLUSTER"
	storageServerless = "SERVERLESS"
)

var errUnclassified = errors.New("unsupported resource type")

// Variant is the identity of a DataZone resource read from its technical form.
// Only the fields of its Kind are set.
type Variant struct {
	Kind VariantKind

	Region   string
	Database string
	Schema   string
	Table    string

	ClusterName   string
	WorkgroupName string
	AccountID     string
	TableArn      string
}

// ClassifyResource reads the variant of r from its type marker and technical form.
func ClassifyResource(r Resource) (Variant, error) {
	marker := r.TypeMarker()
	switch {
	case strings.Contains(marker, redshiftMarker):
		form, ok := r.FormContent(datazone.FormRedshiftTable, datazone.FormRedshiftView)
		if !ok {
			return Variant{}, fmt.Errorf("redshift form not found on %s %s", r.Kind(), r.Name())
		}
		storage := form.Get("storageType").String()
		switch {
		case strings.Contains(storage, storageServerless):
			return readVariant(VariantWarehouseServerless, form)
		case strings.Contains(storage, storageCluster):
			return readVariant(VariantWarehouseCluster, form)
		default:
			return Variant{}, fmt.Errorf("%w: storage type %q", errUnclassified, storage)
		}
	case strings.Contains(marker, glueMarker):
		form, ok := r.FormContent(datazone.FormGlueTable)
		if !ok {
			return Variant{}, fmt.Errorf("glue form not found on %s %s", r.Kind(), r.Name())
		}
		return readVariant(VariantCatalogTable, form)
	default:
		return Variant{}, fmt.Errorf("%w: %q", errUnclassified, marker)
	}
}

func readVariant(kind VariantKind, form gjson.Result) (Variant, error) {
	v := Variant{Kind: kind}

	fields := map[string]*string{
		"region":       &v.Region,
		"databaseName": &v.Database,
		"tableName":    &v.Table,
	}
	switch kind {
	case VariantWarehouseCluster:
		fields["schemaName"] = &v.Schema
		fields["redshiftStorage.redshiftClusterSource.clusterName"] = &v.ClusterName
	case VariantWarehouseServerless:
		fields["schemaName"] = &v.Schema
		fields["accountId"] = &v.AccountID
		fields["redshiftStorage.redshiftServerlessSource.workgroupName"] = &v.WorkgroupName
	case VariantCatalogTable:
		fields["tableArn"] = &v.TableArn
	}

	for path, dst := range fields {
		value := form.Get(path)
		if !value.Exists() {
			return Variant{}, fmt.Errorf("%s form is missing %s", kind, path)
		}
		*dst = value.String()
	}
	return v, nil
}
