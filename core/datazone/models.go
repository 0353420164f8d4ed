package datazone

// Form type and status values used across the engines.
const (
	FormRedshiftTable          = "RedshiftTableForm"
	FormRedshiftView           = "RedshiftViewForm"
	FormGlueTable              = "GlueTableForm"
	FormAssetCommonDetails     = "AssetCommonDetailsForm"
	FormColumnBusinessMetadata = "ColumnBusinessMetadataForm"

	ColumnBusinessMetadataType = "amazon.datazone.ColumnBusinessMetadataFormType"

	ProjectStatusActive = "ACTIVE"
	UserProfileTypeIAM  = "IAM"
	UserStatusActivated = "ACTIVATED"
)

// Page is one page of a list or search call. NextToken is empty on the last page.
type Page[T any] struct {
	Items     []T
	NextToken string
}

// Form is one metadata form of an asset. Content is a JSON document.
type Form struct {
	Name         string `json:"formName"`
	TypeName     string `json:"typeName,omitempty"`
	TypeRevision string `json:"typeRevision,omitempty"`
	Content      string `json:"content"`
}

// FormInput is a form as accepted by CreateAssetRevision.
type FormInput struct {
	Name           string `json:"formName"`
	TypeIdentifier string `json:"typeIdentifier,omitempty"`
	Content        string `json:"content"`
}

// Asset is an inventory asset.
type Asset struct {
	ID                 string   `json:"id"`
	Name               string   `json:"name"`
	TypeIdentifier     string   `json:"typeIdentifier"`
	ExternalIdentifier string   `json:"externalIdentifier,omitempty"`
	OwningProjectID    string   `json:"owningProjectId,omitempty"`
	Description        string   `json:"description,omitempty"`
	Forms              []Form   `json:"forms,omitempty"`
	GlossaryTerms      []string `json:"glossaryTerms,omitempty"`
}

// Form returns the form with the given name.
func (a Asset) Form(name string) (Form, bool) {
	for _, f := range a.Forms {
		if f.Name == name {
			return f, true
		}
	}
	return Form{}, false
}

// AssetRevision is the payload of CreateAssetRevision. Description and GlossaryTerms are
// omitted from the request when empty.
type AssetRevision struct {
	ID            string      `json:"id"`
	Name          string      `json:"name"`
	Description   string      `json:"description,omitempty"`
	Forms         []FormInput `json:"forms"`
	GlossaryTerms []string    `json:"glossaryTerms,omitempty"`
}

// Listing is a published asset listing. Forms is the raw JSON object keyed by form name.
type Listing struct {
	ListingID       string `json:"listingId"`
	EntityID        string `json:"entityId"`
	EntityType      string `json:"entityType"`
	Name            string `json:"name"`
	OwningProjectID string `json:"owningProjectId"`
	Forms           string `json:"forms,omitempty"`
}

// GlossaryTerm is a term of a business glossary.
type GlossaryTerm struct {
	ID               string
	Name             string
	GlossaryID       string
	ShortDescription string
	LongDescription  string
}

// Description holds at most one of the two glossary term description fields.
type Description struct {
	Short string
	Long  string
}

// TermRelations are the hierarchy edges of a glossary term.
type TermRelations struct {
	IsA        []string `json:"isA,omitempty"`
	Classifies []string `json:"classifies,omitempty"`
}

// Empty reports whether neither relation list has entries.
func (r TermRelations) Empty() bool {
	return len(r.IsA) == 0 && len(r.Classifies) == 0
}

// Project is a DataZone project.
type Project struct {
	ID     string `json:"id"`
	Name   string `json:"name"`
	Status string `json:"status"`
}

// UserProfile is a domain user. IAMArn is set for IAM profiles, SSOUsername for SSO ones.
type UserProfile struct {
	ID          string
	Type        string
	Status      string
	IAMArn      string
	SSOUsername string
}

// SubscriptionRequest is a summary of a subscription request.
type SubscriptionRequest struct {
	ID     string
	Status string
}
