package glossary

import "catalog-sync/core/datazone"

// MaxRelations is the number of isA and classifies ids kept per term.
// DataZone rejects longer relation lists; later relations are dropped.
const MaxRelations = 10

type indexEntry struct {
	isA        []string
	classifies []string
}

// HierarchyIndex collects parent/child edges between cached terms.
type HierarchyIndex struct {
	cache   *Cache
	entries map[string]*indexEntry
	order   []string
}

// NewHierarchyIndex creates an empty index over cache.
func NewHierarchyIndex(cache *Cache) *HierarchyIndex {
	return &HierarchyIndex{cache: cache, entries: make(map[string]*indexEntry)}
}

// Index records that child is a parent. Edges with an uncached side are ignored.
func (x *HierarchyIndex) Index(child, parent string) {
	childID, ok := x.cache.ID(child)
	if !ok {
		return
	}
	parentID, ok := x.cache.ID(parent)
	if !ok {
		return
	}

	c := x.entry(child)
	c.isA = append(c.isA, parentID)

	p := x.entry(parent)
	p.classifies = append(p.classifies, childID)
}

func (x *HierarchyIndex) entry(name string) *indexEntry {
	e, ok := x.entries[name]
	if !ok {
		e = &indexEntry{}
		x.entries[name] = e
		x.order = append(x.order, name)
	}
	return e
}

// TermRelations returns the first MaxRelations ids of each relation of name.
func (x *HierarchyIndex) TermRelations(name string) datazone.TermRelations {
	e, ok := x.entries[name]
	if !ok {
		return datazone.TermRelations{}
	}
	return datazone.TermRelations{
		IsA:        head(e.isA, MaxRelations),
		Classifies: head(e.classifies, MaxRelations),
	}
}

// IndexedTermNames returns the indexed names in the order they were first touched.
func (x *HierarchyIndex) IndexedTermNames() []string {
	return append([]string(nil), x.order...)
}

func head(ids []string, n int) []string {
	if len(ids) == 0 {
		return nil
	}
	if len(ids) > n {
		ids = ids[:n]
	}
	return append([]string(nil), ids...)
}
