package glossary

import (
	"context"
	"fmt"

	"catalog-sync/core/datazone"
)

// Cache maps the names of the synced glossary's terms to their DataZone ids.
// It is loaded once per invocation and never mutated afterwards.
type Cache struct {
	ids map[string]string
}

// NewCache creates a Cache from a name to id map.
func NewCache(ids map[string]string) *Cache {
	copied := make(map[string]string, len(ids))
	for name, id := range ids {
		copied[name] = id
	}
	return &Cache{ids: copied}
}

// LoadCache lists every term of glossaryID.
func LoadCache(ctx context.Context, client datazone.Client, glossaryID string) (*Cache, error) {
	terms, err := datazone.Drain(ctx, func(ctx context.Context, token string) (datazone.Page[datazone.GlossaryTerm], error) {
		return client.SearchGlossaryTerms(ctx, glossaryID, token)
	})
	if err != nil {
		return nil, fmt.Errorf("failed to load glossary terms: %w", err)
	}

	ids := make(map[string]string, len(terms))
	for _, term := range terms {
		ids[term.Name] = term.ID
	}
	return &Cache{ids: ids}, nil
}

// Contains reports whether a term with name exists.
func (c *Cache) Contains(name string) bool {
	_, ok := c.ids[name]
	return ok
}

// ID returns the term id for name.
func (c *Cache) ID(name string) (string, bool) {
	id, ok := c.ids[name]
	return id, ok
}

// IDs returns the ids of the cached names, skipping unknown ones.
func (c *Cache) IDs(names []string) []string {
	var out []string
	for _, name := range names {
		if id, ok := c.ids[name]; ok {
			out = append(out, id)
		}
	}
	return out
}

// Len returns the number of cached terms.
func (c *Cache) Len() int {
	return len(c.ids)
}
