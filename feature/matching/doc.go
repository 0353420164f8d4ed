// Package matching decides whether a DataZone asset or listing denotes the same physical
// table as a Collibra table asset.
//
// There is no shared identifier between the two catalogs. The Collibra side carries an
// "AWS Resource Metadata" attribute (a Redshift endpoint, or a Glue access role ARN and a
// friendly region name) and a fullName path; the DataZone side carries a technical form
// (RedshiftTableForm, RedshiftViewForm or GlueTableForm). ClassifyResource reads the form
// into a Variant and the Matcher compares exact field values per variant:
//
//	redshift-cluster     region, cluster name, database/schema/table
//	redshift-serverless  region, workgroup, account id, database/schema/table
//	glue-table           region, account id within tableArn, database/table
//
// Assets and listings share the algorithm through the Resource interface.
package matching
