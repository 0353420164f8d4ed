package collibra

// Well-known attribute and category names.
const (
	AttributeResourceMetadata  = "AWS Resource Metadata"
	AttributeConsumerProjectID = "AWS Consumer Project Id"
	AttributeProducerProjectID = "AWS Producer Project Id"
	PIICategoryName            = "Personal Identifiable Information"

	StatusApproved = "Approved"
)

// AttributeType identifies the type of a string attribute.
type AttributeType struct {
	Name     string `json:"name,omitempty"`
	PublicID string `json:"publicId,omitempty"`
}

// StringAttribute is a typed text value attached to an asset.
type StringAttribute struct {
	ID          string        `json:"id,omitempty"`
	StringValue string        `json:"stringValue"`
	Type        AttributeType `json:"type"`
}

// AssetType is the type of an asset (Table, Column, BusinessTerm, DataCategory...).
type AssetType struct {
	PublicID string `json:"publicId,omitempty"`
}

// Relation is a typed edge to another asset. Incoming relations carry Source,
// outgoing relations carry Target.
type Relation struct {
	Source *Asset `json:"source,omitempty"`
	Target *Asset `json:"target,omitempty"`
}

// Asset is a Collibra asset as returned by the knowledge graph API. Which fields are
// populated depends on the query that produced it.
type Asset struct {
	ID                string            `json:"id"`
	FullName          string            `json:"fullName,omitempty"`
	DisplayName       string            `json:"displayName,omitempty"`
	Type              *AssetType        `json:"type,omitempty"`
	StringAttributes  []StringAttribute `json:"stringAttributes,omitempty"`
	IncomingRelations []Relation        `json:"incomingRelations,omitempty"`
	OutgoingRelations []Relation        `json:"outgoingRelations,omitempty"`
}

// Descriptions returns the values of every string attribute, in order.
// Queries that only select Description attributes rely on this.
func (a Asset) Descriptions() []string {
	out := make([]string, 0, len(a.StringAttributes))
	for _, attr := range a.StringAttributes {
		out = append(out, attr.StringValue)
	}
	return out
}

// Attribute returns the value of the first string attribute with the given type name.
func (a Asset) Attribute(name string) (string, bool) {
	for _, attr := range a.StringAttributes {
		if attr.Type.Name == name {
			return attr.StringValue, true
		}
	}
	return "", false
}

// HasAttributeValue reports whether any string attribute holds value.
func (a Asset) HasAttributeValue(value string) bool {
	for _, attr := range a.StringAttributes {
		if attr.StringValue == value {
			return true
		}
	}
	return false
}

// Sources returns the source assets of the incoming relations.
func (a Asset) Sources() []Asset {
	out := make([]Asset, 0, len(a.IncomingRelations))
	for _, rel := range a.IncomingRelations {
		if rel.Source != nil {
			out = append(out, *rel.Source)
		}
	}
	return out
}

// FirstTarget returns the target of the first outgoing relation.
func (a Asset) FirstTarget() (Asset, bool) {
	for _, rel := range a.OutgoingRelations {
		if rel.Target != nil {
			return *rel.Target, true
		}
	}
	return Asset{}, false
}
