package matching

import (
	"catalog-sync/core/datazone"

	"github.com/tidwall/gjson"
)

// Resource kinds.
const (
	KindAsset   = "asset"
	KindListing = "listing"
)

// Resource is a DataZone record that can be matched against a Collibra table.
type Resource interface {
	Name() string
	// Kind is KindAsset or KindListing.
	Kind() string
	// Valid reports whether the resource carries enough identity to be matched.
	Valid() bool
	// TypeMarker is the asset type identifier or the listing entity type.
	TypeMarker() string
	// FormContent returns the content of the first of names that the resource carries.
	FormContent(names ...string) (gjson.Result, bool)
}

// Asset adapts a DataZone asset. Form contents are JSON strings.
type Asset struct {
	datazone.Asset
}

// NewAsset wraps a DataZone asset as a Resource.
func NewAsset(a datazone.Asset) Asset {
	return Asset{Asset: a}
}

func (a Asset) Name() string       { return a.Asset.Name }
func (a Asset) Kind() string       { return KindAsset }
func (a Asset) Valid() bool        { return a.ExternalIdentifier != "" }
func (a Asset) TypeMarker() string { return a.TypeIdentifier }

func (a Asset) FormContent(names ...string) (gjson.Result, bool) {
	for _, name := range names {
		form, ok := a.Form(name)
		if !ok {
			continue
		}
		if !gjson.Valid(form.Content) {
			return gjson.Result{}, false
		}
		return gjson.Parse(form.Content), true
	}
	return gjson.Result{}, false
}

// Listing adapts a DataZone listing search item. Forms is a JSON object keyed by form name.
type Listing struct {
	datazone.Listing
}

// NewListing wraps a DataZone listing as a Resource.
func NewListing(l datazone.Listing) Listing {
	return Listing{Listing: l}
}

func (l Listing) Name() string       { return l.Listing.Name }
func (l Listing) Kind() string       { return KindListing }
func (l Listing) Valid() bool        { return true }
func (l Listing) TypeMarker() string { return l.EntityType }

func (l Listing) FormContent(names ...string) (gjson.Result, bool) {
	if l.Forms == "" || !gjson.Valid(l.Forms) {
		return gjson.Result{}, false
	}
	for _, name := range names {
		content := gjson.Get(l.Forms, name)
		if content.IsObject() {
			return content, true
		}
	}
	return gjson.Result{}, false
}
