package glossary

import (
	"strings"
	"unicode/utf8"

	"catalog-sync/core/datazone"
	"catalog-sync/core/utils"
)

const (
	maxShortDescription = 1024
	maxLongDescription  = 4096
)

// CanonicalDescription derives the DataZone description fields from Collibra descriptions.
// A single description that fits becomes the short description, anything else is joined
// into the long description, and no descriptions leave both fields empty.
func CanonicalDescription(descriptions []string) datazone.Description {
	switch {
	case len(descriptions) == 0:
		return datazone.Description{}
	case len(descriptions) == 1 && utf8.RuneCountInString(descriptions[0]) <= maxShortDescription:
		return datazone.Description{Short: descriptions[0]}
	default:
		return datazone.Description{Long: utils.Truncate(strings.Join(descriptions, "\n\n"), maxLongDescription)}
	}
}

// descriptionChanged compares the canonical field of want with the same field of term.
func descriptionChanged(term datazone.GlossaryTerm, want datazone.Description) bool {
	switch {
	case want.Short != "":
		return term.ShortDescription != want.Short
	case want.Long != "":
		return term.LongDescription != want.Long
	default:
		return false
	}
}
