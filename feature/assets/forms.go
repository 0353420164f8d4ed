package assets

import (
	"fmt"

	"catalog-sync/core/datazone"
	"catalog-sync/core/utils"

	"github.com/tidwall/gjson"
	"github.com/tidwall/sjson"
)

const (
	readmeKey       = "readMe"
	columnsKey      = "columnsBusinessMetadata"
	emptyColumnForm = `{"columnsBusinessMetadata":[]}`
)

// Revision is the computed revision of one DataZone asset.
type Revision struct {
	datazone.AssetRevision
	ChangedForms []string
	AddedTerms   []string
}

// BuildRevision merges p into asset. Every existing form is carried over as form input;
// AssetCommonDetailsForm and ColumnBusinessMetadataForm are edited in place so unknown
// fields survive.
func BuildRevision(asset datazone.Asset, p TableProjection) (Revision, error) {
	rev := Revision{AssetRevision: datazone.AssetRevision{
		ID:          asset.ID,
		Name:        p.Name,
		Description: p.Description,
	}}

	existing := make(map[string]struct{}, len(asset.GlossaryTerms))
	for _, id := range asset.GlossaryTerms {
		existing[id] = struct{}{}
	}
	for _, id := range p.TermIDs {
		if _, ok := existing[id]; !ok {
			rev.AddedTerms = append(rev.AddedTerms, id)
		}
	}
	rev.GlossaryTerms = utils.Dedupe(append(append([]string{}, asset.GlossaryTerms...), p.TermIDs...))

	hasColumnForm := false
	for _, form := range asset.Forms {
		content := form.Content

		switch form.Name {
		case datazone.FormAssetCommonDetails:
			updated, err := mergeReadmeContent(content, p.PIIColumns)
			if err != nil {
				return Revision{}, err
			}
			if updated != content {
				rev.ChangedForms = append(rev.ChangedForms, form.Name)
			}
			content = updated
		case datazone.FormColumnBusinessMetadata:
			hasColumnForm = true
			updated, err := applyColumns(content, p.Columns)
			if err != nil {
				return Revision{}, err
			}
			if updated != content {
				rev.ChangedForms = append(rev.ChangedForms, form.Name)
			}
			content = updated
		}

		rev.Forms = append(rev.Forms, datazone.FormInput{
			Name:           form.Name,
			TypeIdentifier: form.TypeName,
			Content:        content,
		})
	}

	if !hasColumnForm {
		columns := technicalColumns(asset)
		if len(columns) > 0 {
			content, err := newColumnForm(columns, p.Columns)
			if err != nil {
				return Revision{}, err
			}
			rev.Forms = append(rev.Forms, datazone.FormInput{
				Name:           datazone.FormColumnBusinessMetadata,
				TypeIdentifier: datazone.ColumnBusinessMetadataType,
				Content:        content,
			})
			rev.ChangedForms = append(rev.ChangedForms, datazone.FormColumnBusinessMetadata)
		}
	}

	return rev, nil
}

func mergeReadmeContent(content string, piiColumns []string) (string, error) {
	if !gjson.Valid(content) {
		return "", fmt.Errorf("%s content is not valid json", datazone.FormAssetCommonDetails)
	}
	current := gjson.Get(content, readmeKey).String()
	merged := MergeReadme(current, piiColumns)
	if merged == current {
		return content, nil
	}
	return sjson.Set(content, readmeKey, merged)
}

// applyColumns writes description and glossary terms of the known columns. Columns the
// projection lacks, and empty values, leave the entry as it is.
func applyColumns(content string, columns map[string]ColumnProjection) (string, error) {
	if !gjson.Valid(content) {
		return "", fmt.Errorf("%s content is not valid json", datazone.FormColumnBusinessMetadata)
	}

	var err error
	for i, entry := range gjson.Get(content, columnsKey).Array() {
		col, ok := columns[entry.Get("columnIdentifier").String()]
		if !ok {
			continue
		}
		if len(col.TermIDs) > 0 {
			content, err = sjson.Set(content, fmt.Sprintf("%s.%d.glossaryTerms", columnsKey, i), col.TermIDs)
			if err != nil {
				return "", err
			}
		}
		if col.Description != "" {
			content, err = sjson.Set(content, fmt.Sprintf("%s.%d.description", columnsKey, i), col.Description)
			if err != nil {
				return "", err
			}
		}
	}
	return content, nil
}

func newColumnForm(names []string, columns map[string]ColumnProjection) (string, error) {
	content := emptyColumnForm
	for _, name := range names {
		var err error
		content, err = sjson.Set(content, columnsKey+".-1", map[string]string{"columnIdentifier": name})
		if err != nil {
			return "", err
		}
	}
	return applyColumns(content, columns)
}

// technicalColumns lists the column names of the first Redshift or Glue table form.
func technicalColumns(asset datazone.Asset) []string {
	for _, form := range asset.Forms {
		if form.Name != datazone.FormRedshiftTable && form.Name != datazone.FormGlueTable {
			continue
		}
		var names []string
		for _, name := range gjson.Get(form.Content, "columns.#.columnName").Array() {
			names = append(names, name.String())
		}
		return names
	}
	return nil
}
