package assets

import (
	"strings"
	"unicode"
)

// PIIHeading starts the readme section owned by the sync.
const PIIHeading = "### Columns with Data Category - Personal Identifiable Information"

// MergeReadme rewrites the PII section of a readme. The section runs from the heading to the
// next markdown heading or the end of the text. Text before it is kept and right-trimmed,
// text after it is kept as is. The section is replaced by one bullet per column, or removed
// when columns is empty. A readme without the section is returned unchanged when there is
// nothing to add.
func MergeReadme(existing string, columns []string) string {
	before, rest, found := strings.Cut(existing, PIIHeading)
	if !found && len(columns) == 0 {
		return existing
	}

	var after string
	if i := strings.Index(rest, "\n#"); i >= 0 {
		after = strings.TrimLeftFunc(rest[i:], unicode.IsSpace)
	}

	var parts []string
	if kept := strings.TrimRightFunc(before, unicode.IsSpace); kept != "" {
		parts = append(parts, kept)
	}
	if len(columns) > 0 {
		var b strings.Builder
		b.WriteString(PIIHeading)
		for _, col := range columns {
			b.WriteString("\n* ")
			b.WriteString(col)
		}
		parts = append(parts, b.String())
	}
	if after != "" {
		parts = append(parts, after)
	}
	return strings.Join(parts, "\n\n")
}
