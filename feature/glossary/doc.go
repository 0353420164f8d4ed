// Package glossary syncs Collibra business terms into the DataZone glossary
// CollibraSyncedGlossary-<domainId>.
//
// # Term sync
//
// SyncEngine handles one page of 50 business terms per invocation. Terms are matched by
// display name; the first occurrence of a name within a page wins. New terms are created
// with the canonical description (see CanonicalDescription) and existing terms are only
// updated when their canonical field differs, so a second run over an unchanged source
// makes no update calls.
//
// # Hierarchy
//
// HierarchyEngine loads a Cache of the glossary's terms, feeds every parent edge of the
// Collibra hierarchy into a HierarchyIndex and writes the isA/classifies relations of each
// indexed term. Both structures live for one invocation only.
//
// # Routes
//
//	POST /sync/glossary            {"last_seen_glossary_term_id": null}
//	POST /sync/glossary/hierarchy  payload echoed
package glossary
