package assets

import (
	"strings"

	"catalog-sync/core/collibra"
	"catalog-sync/core/utils"
	"catalog-sync/feature/glossary"
)

const (
	maxTableDescription  = 2048
	maxColumnDescription = 4096
)

// ColumnProjection is the business metadata of one Collibra column.
type ColumnProjection struct {
	Name        string   `json:"name"`
	Description string   `json:"description,omitempty"`
	TermIDs     []string `json:"term_ids,omitempty"`
}

// TableProjection is the business metadata of a Collibra table, with glossary terms
// already resolved to DataZone term ids.
type TableProjection struct {
	ID          string                      `json:"id"`
	Name        string                      `json:"name"`
	Description string                      `json:"description,omitempty"`
	TermIDs     []string                    `json:"term_ids,omitempty"`
	Columns     map[string]ColumnProjection `json:"columns,omitempty"`
	PIIColumns  []string                    `json:"pii_columns,omitempty"`
}

// BuildProjection combines the three Collibra views of a table. Terms missing from cache are dropped.
func BuildProjection(table, tableTerms, pii collibra.Asset, cache *glossary.Cache) TableProjection {
	p := TableProjection{
		ID:          table.ID,
		Name:        table.DisplayName,
		Description: utils.Truncate(strings.Join(table.Descriptions(), ","), maxTableDescription),
		TermIDs:     cache.IDs(termNames(tableTerms)),
		Columns:     make(map[string]ColumnProjection),
	}

	for _, column := range table.Sources() {
		p.Columns[column.DisplayName] = ColumnProjection{
			Name:        column.DisplayName,
			Description: utils.Truncate(strings.Join(column.Descriptions(), ","), maxColumnDescription),
			TermIDs:     cache.IDs(termNames(column)),
		}
	}

	p.PIIColumns = piiColumns(pii)
	return p
}

func termNames(a collibra.Asset) []string {
	var names []string
	for _, term := range a.Sources() {
		names = append(names, term.DisplayName)
	}
	return names
}

// piiColumns walks Column <- BusinessTerm <- DataCategory. The query only returns the
// category relation when it is the PII category, so any relation flags the column.
func piiColumns(table collibra.Asset) []string {
	var out []string
	for _, column := range table.Sources() {
		for _, term := range column.Sources() {
			if len(term.IncomingRelations) > 0 {
				out = append(out, column.DisplayName)
				break
			}
		}
	}
	return utils.Dedupe(out)
}
