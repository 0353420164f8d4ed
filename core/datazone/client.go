package datazone

import (
	"context"
	"errors"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/datazone"
	"github.com/aws/aws-sdk-go-v2/service/datazone/types"
	"go.uber.org/zap"
)

const (
	maxResults = 50

	glossaryDescription = "Glossary for terms synced from Collibra"
	subscriptionReason  = "Automated sync - Subscription request created from Collibra"
)

// Client defines the DataZone operations used by the sync engines.
type Client interface {
	// SearchAssets searches a project's inventory for tables named name.
	SearchAssets(ctx context.Context, projectID, name, nextToken string) (Page[Asset], error)
	// SearchListings searches asset listings owned by a project. searchText may be empty.
	SearchListings(ctx context.Context, projectID, searchText, nextToken string) (Page[Listing], error)
	// GetAsset returns an asset with its forms and glossary terms.
	GetAsset(ctx context.Context, id string) (Asset, error)
	// CreateAssetRevision writes a new revision of an asset.
	CreateAssetRevision(ctx context.Context, rev AssetRevision) error

	// FindGlossary returns the id of the glossary with the exact name.
	FindGlossary(ctx context.Context, name string) (string, bool, error)
	// CreateGlossary creates an enabled glossary owned by ownerProjectID.
	CreateGlossary(ctx context.Context, name, ownerProjectID string) (string, error)
	// SearchGlossaryTerms lists the terms of a glossary.
	SearchGlossaryTerms(ctx context.Context, glossaryID, nextToken string) (Page[GlossaryTerm], error)
	// FindGlossaryTerm returns the term of a glossary with the exact name.
	FindGlossaryTerm(ctx context.Context, glossaryID, name string) (GlossaryTerm, bool, error)
	// CreateGlossaryTerm creates an enabled term.
	CreateGlossaryTerm(ctx context.Context, glossaryID, name string, desc Description) (string, error)
	// UpdateGlossaryTermDescription replaces the description of a term.
	UpdateGlossaryTermDescription(ctx context.Context, termID string, desc Description) error
	// UpdateGlossaryTermRelations replaces the hierarchy relations of a term.
	UpdateGlossaryTermRelations(ctx context.Context, glossaryID, termID, name string, rel TermRelations) error

	// GetProject returns a project by id.
	GetProject(ctx context.Context, id string) (Project, error)
	// ListProjects lists the projects userID is a member of.
	ListProjects(ctx context.Context, userID string, limit int32, nextToken string) (Page[Project], error)
	// ListProjectUsers returns the user ids of a project's user members. Group members are left out.
	ListProjectUsers(ctx context.Context, projectID, nextToken string) (Page[string], error)
	// GetUserProfile returns a user profile by id.
	GetUserProfile(ctx context.Context, userID string) (UserProfile, error)
	// SearchIAMUserProfiles searches IAM user profiles by text.
	SearchIAMUserProfiles(ctx context.Context, searchText, nextToken string) (Page[UserProfile], error)

	// CreateSubscriptionRequest requests listingID on behalf of consumerProjectID.
	CreateSubscriptionRequest(ctx context.Context, listingID, consumerProjectID string) (string, error)
	// AcceptedSubscriptionRequests returns accepted requests for a listing, newest first.
	AcceptedSubscriptionRequests(ctx context.Context, listingID, producerProjectID, consumerProjectID string) ([]SubscriptionRequest, error)
	// ApprovedSubscriptions returns the ids of approved subscriptions created from a request.
	ApprovedSubscriptions(ctx context.Context, requestID, producerProjectID, consumerProjectID string) ([]string, error)
}

// API is the subset of the DataZone SDK client used by the adapter.
type API interface {
	Search(ctx context.Context, in *datazone.SearchInput, optFns ...func(*datazone.Options)) (*datazone.SearchOutput, error)
	SearchListings(ctx context.Context, in *datazone.SearchListingsInput, optFns ...func(*datazone.Options)) (*datazone.SearchListingsOutput, error)
	GetAsset(ctx context.Context, in *datazone.GetAssetInput, optFns ...func(*datazone.Options)) (*datazone.GetAssetOutput, error)
	CreateAssetRevision(ctx context.Context, in *datazone.CreateAssetRevisionInput, optFns ...func(*datazone.Options)) (*datazone.CreateAssetRevisionOutput, error)
	CreateGlossary(ctx context.Context, in *datazone.CreateGlossaryInput, optFns ...func(*datazone.Options)) (*datazone.CreateGlossaryOutput, error)
	CreateGlossaryTerm(ctx context.Context, in *datazone.CreateGlossaryTermInput, optFns ...func(*datazone.Options)) (*datazone.CreateGlossaryTermOutput, error)
	UpdateGlossaryTerm(ctx context.Context, in *datazone.UpdateGlossaryTermInput, optFns ...func(*datazone.Options)) (*datazone.UpdateGlossaryTermOutput, error)
	GetProject(ctx context.Context, in *datazone.GetProjectInput, optFns ...func(*datazone.Options)) (*datazone.GetProjectOutput, error)
	ListProjects(ctx context.Context, in *datazone.ListProjectsInput, optFns ...func(*datazone.Options)) (*datazone.ListProjectsOutput, error)
	ListProjectMemberships(ctx context.Context, in *datazone.ListProjectMembershipsInput, optFns ...func(*datazone.Options)) (*datazone.ListProjectMembershipsOutput, error)
	GetUserProfile(ctx context.Context, in *datazone.GetUserProfileInput, optFns ...func(*datazone.Options)) (*datazone.GetUserProfileOutput, error)
	SearchUserProfiles(ctx context.Context, in *datazone.SearchUserProfilesInput, optFns ...func(*datazone.Options)) (*datazone.SearchUserProfilesOutput, error)
	CreateSubscriptionRequest(ctx context.Context, in *datazone.CreateSubscriptionRequestInput, optFns ...func(*datazone.Options)) (*datazone.CreateSubscriptionRequestOutput, error)
	ListSubscriptionRequests(ctx context.Context, in *datazone.ListSubscriptionRequestsInput, optFns ...func(*datazone.Options)) (*datazone.ListSubscriptionRequestsOutput, error)
	ListSubscriptions(ctx context.Context, in *datazone.ListSubscriptionsInput, optFns ...func(*datazone.Options)) (*datazone.ListSubscriptionsOutput, error)
}

type sdkClient struct {
	api    API
	domain *string
	logger *zap.Logger
}

// NewClient loads the default AWS configuration and creates a DataZone client for cfg.DomainID.
func NewClient(ctx context.Context, cfg Config, logger *zap.Logger) (Client, error) {
	if cfg.DomainID == "" {
		return nil, errors.New("datazone domain id is not configured")
	}

	var opts []func(*awsconfig.LoadOptions) error
	if cfg.Region != "" {
		opts = append(opts, awsconfig.WithRegion(cfg.Region))
	}
	awsCfg, err := awsconfig.LoadDefaultConfig(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("failed to load aws config: %w", err)
	}

	return NewClientWithAPI(datazone.NewFromConfig(awsCfg), cfg, logger), nil
}

// NewClientWithAPI wraps an existing SDK client.
func NewClientWithAPI(api API, cfg Config, logger *zap.Logger) Client {
	return &sdkClient{api: api, domain: aws.String(cfg.DomainID), logger: logger}
}

func optional(s string) *string {
	if s == "" {
		return nil
	}
	return aws.String(s)
}

func filter(attribute, value string) types.FilterClause {
	return &types.FilterClauseMemberFilter{Value: types.Filter{
		Attribute: aws.String(attribute),
		Value:     aws.String(value),
	}}
}

func (c *sdkClient) SearchAssets(ctx context.Context, projectID, name, nextToken string) (Page[Asset], error) {
	out, err := c.api.Search(ctx, &datazone.SearchInput{
		DomainIdentifier:        c.domain,
		SearchScope:             types.InventorySearchScopeAsset,
		OwningProjectIdentifier: aws.String(projectID),
		AdditionalAttributes:    []types.SearchOutputAdditionalAttribute{types.SearchOutputAdditionalAttributeForms},
		SearchIn: []types.SearchInItem{
			{Attribute: aws.String(FormRedshiftTable + ".tableName")},
			{Attribute: aws.String(FormGlueTable + ".tableName")},
		},
		SearchText: aws.String(name),
		MaxResults: aws.Int32(maxResults),
		NextToken:  optional(nextToken),
	})
	if err != nil {
		return Page[Asset]{}, fmt.Errorf("failed to search assets named %s in project %s: %w", name, projectID, err)
	}

	page := Page[Asset]{NextToken: aws.ToString(out.NextToken)}
	for _, item := range out.Items {
		v, ok := item.(*types.SearchInventoryResultItemMemberAssetItem)
		if !ok {
			continue
		}
		asset := Asset{
			ID:                 aws.ToString(v.Value.Identifier),
			Name:               aws.ToString(v.Value.Name),
			TypeIdentifier:     aws.ToString(v.Value.TypeIdentifier),
			ExternalIdentifier: aws.ToString(v.Value.ExternalIdentifier),
			OwningProjectID:    aws.ToString(v.Value.OwningProjectId),
			Description:        aws.ToString(v.Value.Description),
			GlossaryTerms:      v.Value.GlossaryTerms,
		}
		if v.Value.AdditionalAttributes != nil {
			asset.Forms = toForms(v.Value.AdditionalAttributes.FormsOutput)
		}
		page.Items = append(page.Items, asset)
	}
	return page, nil
}

func (c *sdkClient) SearchListings(ctx context.Context, projectID, searchText, nextToken string) (Page[Listing], error) {
	out, err := c.api.SearchListings(ctx, &datazone.SearchListingsInput{
		DomainIdentifier:     c.domain,
		AdditionalAttributes: []types.SearchOutputAdditionalAttribute{types.SearchOutputAdditionalAttributeForms},
		Filters: &types.FilterClauseMemberAnd{Value: []types.FilterClause{
			filter("owningProjectId", projectID),
			filter("amazonmetadata.sourceCategory", "asset"),
		}},
		SearchText: optional(searchText),
		NextToken:  optional(nextToken),
	})
	if err != nil {
		return Page[Listing]{}, fmt.Errorf("failed to search listings of project %s: %w", projectID, err)
	}

	page := Page[Listing]{NextToken: aws.ToString(out.NextToken)}
	for _, item := range out.Items {
		v, ok := item.(*types.SearchResultItemMemberAssetListing)
		if !ok {
			continue
		}
		listing := Listing{
			ListingID:       aws.ToString(v.Value.ListingId),
			EntityID:        aws.ToString(v.Value.EntityId),
			EntityType:      aws.ToString(v.Value.EntityType),
			Name:            aws.ToString(v.Value.Name),
			OwningProjectID: aws.ToString(v.Value.OwningProjectId),
		}
		if v.Value.AdditionalAttributes != nil {
			listing.Forms = aws.ToString(v.Value.AdditionalAttributes.Forms)
		}
		page.Items = append(page.Items, listing)
	}
	return page, nil
}

func (c *sdkClient) GetAsset(ctx context.Context, id string) (Asset, error) {
	out, err := c.api.GetAsset(ctx, &datazone.GetAssetInput{DomainIdentifier: c.domain, Identifier: aws.String(id)})
	if err != nil {
		return Asset{}, fmt.Errorf("failed to get asset %s: %w", id, err)
	}
	return Asset{
		ID:                 aws.ToString(out.Id),
		Name:               aws.ToString(out.Name),
		TypeIdentifier:     aws.ToString(out.TypeIdentifier),
		ExternalIdentifier: aws.ToString(out.ExternalIdentifier),
		OwningProjectID:    aws.ToString(out.OwningProjectId),
		Description:        aws.ToString(out.Description),
		Forms:              toForms(out.FormsOutput),
		GlossaryTerms:      out.GlossaryTerms,
	}, nil
}

func toForms(in []types.FormOutput) []Form {
	out := make([]Form, 0, len(in))
	for _, f := range in {
		out = append(out, Form{
			Name:         aws.ToString(f.FormName),
			TypeName:     aws.ToString(f.TypeName),
			TypeRevision: aws.ToString(f.TypeRevision),
			Content:      aws.ToString(f.Content),
		})
	}
	return out
}

func (c *sdkClient) CreateAssetRevision(ctx context.Context, rev AssetRevision) error {
	forms := make([]types.FormInput, 0, len(rev.Forms))
	for _, f := range rev.Forms {
		forms = append(forms, types.FormInput{
			FormName:       aws.String(f.Name),
			TypeIdentifier: optional(f.TypeIdentifier),
			Content:        aws.String(f.Content),
		})
	}

	in := &datazone.CreateAssetRevisionInput{
		DomainIdentifier: c.domain,
		Identifier:       aws.String(rev.ID),
		Name:             aws.String(rev.Name),
		FormsInput:       forms,
		Description:      optional(rev.Description),
	}
	if len(rev.GlossaryTerms) > 0 {
		in.GlossaryTerms = rev.GlossaryTerms
	}

	if _, err := c.api.CreateAssetRevision(ctx, in); err != nil {
		return fmt.Errorf("failed to create revision of asset %s: %w", rev.ID, err)
	}
	return nil
}

func (c *sdkClient) FindGlossary(ctx context.Context, name string) (string, bool, error) {
	out, err := c.api.Search(ctx, &datazone.SearchInput{
		DomainIdentifier: c.domain,
		SearchScope:      types.InventorySearchScopeGlossary,
		SearchText:       aws.String(name),
	})
	if err != nil {
		return "", false, fmt.Errorf("failed to search glossary %s: %w", name, err)
	}
	for _, item := range out.Items {
		if v, ok := item.(*types.SearchInventoryResultItemMemberGlossaryItem); ok && aws.ToString(v.Value.Name) == name {
			return aws.ToString(v.Value.Id), true, nil
		}
	}
	return "", false, nil
}

func (c *sdkClient) CreateGlossary(ctx context.Context, name, ownerProjectID string) (string, error) {
	out, err := c.api.CreateGlossary(ctx, &datazone.CreateGlossaryInput{
		DomainIdentifier:        c.domain,
		Name:                    aws.String(name),
		Description:             aws.String(glossaryDescription),
		OwningProjectIdentifier: aws.String(ownerProjectID),
		Status:                  types.GlossaryStatusEnabled,
	})
	if err != nil {
		return "", fmt.Errorf("failed to create glossary %s: %w", name, err)
	}
	return aws.ToString(out.Id), nil
}

func (c *sdkClient) searchTerms(ctx context.Context, glossaryID, text, nextToken string) (Page[GlossaryTerm], error) {
	out, err := c.api.Search(ctx, &datazone.SearchInput{
		DomainIdentifier: c.domain,
		SearchScope:      types.InventorySearchScopeGlossaryTerm,
		Filters:          filter("BusinessGlossaryTermForm.businessGlossaryId", glossaryID),
		SearchText:       optional(text),
		MaxResults:       aws.Int32(maxResults),
		NextToken:        optional(nextToken),
	})
	if err != nil {
		return Page[GlossaryTerm]{}, fmt.Errorf("failed to search terms of glossary %s: %w", glossaryID, err)
	}

	page := Page[GlossaryTerm]{NextToken: aws.ToString(out.NextToken)}
	for _, item := range out.Items {
		v, ok := item.(*types.SearchInventoryResultItemMemberGlossaryTermItem)
		if !ok {
			continue
		}
		page.Items = append(page.Items, GlossaryTerm{
			ID:               aws.ToString(v.Value.Id),
			Name:             aws.ToString(v.Value.Name),
			GlossaryID:       aws.ToString(v.Value.GlossaryId),
			ShortDescription: aws.ToString(v.Value.ShortDescription),
			LongDescription:  aws.ToString(v.Value.LongDescription),
		})
	}
	return page, nil
}

func (c *sdkClient) SearchGlossaryTerms(ctx context.Context, glossaryID, nextToken string) (Page[GlossaryTerm], error) {
	return c.searchTerms(ctx, glossaryID, "", nextToken)
}

// FindGlossaryTerm pages through the fuzzy name search until a term matches name exactly.
func (c *sdkClient) FindGlossaryTerm(ctx context.Context, glossaryID, name string) (GlossaryTerm, bool, error) {
	token := ""
	for {
		page, err := c.searchTerms(ctx, glossaryID, name, token)
		if err != nil {
			return GlossaryTerm{}, false, err
		}
		for _, term := range page.Items {
			if term.Name == name {
				return term, true, nil
			}
		}
		if page.NextToken == "" || page.NextToken == token {
			return GlossaryTerm{}, false, nil
		}
		token = page.NextToken
	}
}

func (c *sdkClient) CreateGlossaryTerm(ctx context.Context, glossaryID, name string, desc Description) (string, error) {
	out, err := c.api.CreateGlossaryTerm(ctx, &datazone.CreateGlossaryTermInput{
		DomainIdentifier:   c.domain,
		GlossaryIdentifier: aws.String(glossaryID),
		Name:               aws.String(name),
		ShortDescription:   optional(desc.Short),
		LongDescription:    optional(desc.Long),
		Status:             types.GlossaryTermStatusEnabled,
	})
	if err != nil {
		return "", fmt.Errorf("failed to create glossary term %s: %w", name, err)
	}
	return aws.ToString(out.Id), nil
}

func (c *sdkClient) UpdateGlossaryTermDescription(ctx context.Context, termID string, desc Description) error {
	_, err := c.api.UpdateGlossaryTerm(ctx, &datazone.UpdateGlossaryTermInput{
		DomainIdentifier: c.domain,
		Identifier:       aws.String(termID),
		ShortDescription: optional(desc.Short),
		LongDescription:  optional(desc.Long),
		Status:           types.GlossaryTermStatusEnabled,
	})
	if err != nil {
		return fmt.Errorf("failed to update description of glossary term %s: %w", termID, err)
	}
	return nil
}

func (c *sdkClient) UpdateGlossaryTermRelations(ctx context.Context, glossaryID, termID, name string, rel TermRelations) error {
	_, err := c.api.UpdateGlossaryTerm(ctx, &datazone.UpdateGlossaryTermInput{
		DomainIdentifier:   c.domain,
		GlossaryIdentifier: aws.String(glossaryID),
		Identifier:         aws.String(termID),
		Name:               aws.String(name),
		TermRelations:      &types.TermRelations{IsA: rel.IsA, Classifies: rel.Classifies},
		Status:             types.GlossaryTermStatusEnabled,
	})
	if err != nil {
		return fmt.Errorf("failed to update relations of glossary term %s: %w", name, err)
	}
	return nil
}

func (c *sdkClient) GetProject(ctx context.Context, id string) (Project, error) {
	out, err := c.api.GetProject(ctx, &datazone.GetProjectInput{DomainIdentifier: c.domain, Identifier: aws.String(id)})
	if err != nil {
		return Project{}, fmt.Errorf("failed to get project %s: %w", id, err)
	}
	return Project{ID: aws.ToString(out.Id), Name: aws.ToString(out.Name), Status: string(out.ProjectStatus)}, nil
}

func (c *sdkClient) ListProjects(ctx context.Context, userID string, limit int32, nextToken string) (Page[Project], error) {
	if limit <= 0 {
		limit = maxResults
	}
	out, err := c.api.ListProjects(ctx, &datazone.ListProjectsInput{
		DomainIdentifier: c.domain,
		UserIdentifier:   optional(userID),
		MaxResults:       aws.Int32(limit),
		NextToken:        optional(nextToken),
	})
	if err != nil {
		return Page[Project]{}, fmt.Errorf("failed to list projects: %w", err)
	}

	page := Page[Project]{NextToken: aws.ToString(out.NextToken)}
	for _, p := range out.Items {
		page.Items = append(page.Items, Project{
			ID:     aws.ToString(p.Id),
			Name:   aws.ToString(p.Name),
			Status: string(p.ProjectStatus),
		})
	}
	return page, nil
}

func (c *sdkClient) ListProjectUsers(ctx context.Context, projectID, nextToken string) (Page[string], error) {
	out, err := c.api.ListProjectMemberships(ctx, &datazone.ListProjectMembershipsInput{
		DomainIdentifier:  c.domain,
		ProjectIdentifier: aws.String(projectID),
		MaxResults:        aws.Int32(maxResults),
		NextToken:         optional(nextToken),
	})
	if err != nil {
		return Page[string]{}, fmt.Errorf("failed to list members of project %s: %w", projectID, err)
	}

	page := Page[string]{NextToken: aws.ToString(out.NextToken)}
	for _, m := range out.Members {
		if user, ok := m.MemberDetails.(*types.MemberDetailsMemberUser); ok {
			page.Items = append(page.Items, aws.ToString(user.Value.UserId))
		}
	}
	return page, nil
}

func toUserProfile(id *string, typ types.UserProfileType, status types.UserProfileStatus, details types.UserProfileDetails) UserProfile {
	profile := UserProfile{ID: aws.ToString(id), Type: string(typ), Status: string(status)}
	switch d := details.(type) {
	case *types.UserProfileDetailsMemberIam:
		profile.IAMArn = aws.ToString(d.Value.Arn)
	case *types.UserProfileDetailsMemberSso:
		profile.SSOUsername = aws.ToString(d.Value.Username)
	}
	return profile
}

func (c *sdkClient) GetUserProfile(ctx context.Context, userID string) (UserProfile, error) {
	out, err := c.api.GetUserProfile(ctx, &datazone.GetUserProfileInput{
		DomainIdentifier: c.domain,
		UserIdentifier:   aws.String(userID),
	})
	if err != nil {
		return UserProfile{}, fmt.Errorf("failed to get user profile %s: %w", userID, err)
	}
	return toUserProfile(out.Id, out.Type, out.Status, out.Details), nil
}

func (c *sdkClient) SearchIAMUserProfiles(ctx context.Context, searchText, nextToken string) (Page[UserProfile], error) {
	out, err := c.api.SearchUserProfiles(ctx, &datazone.SearchUserProfilesInput{
		DomainIdentifier: c.domain,
		UserType:         types.UserSearchTypeDatazoneIamUser,
		SearchText:       optional(searchText),
		MaxResults:       aws.Int32(maxResults),
		NextToken:        optional(nextToken),
	})
	if err != nil {
		return Page[UserProfile]{}, fmt.Errorf("failed to search user profiles: %w", err)
	}

	page := Page[UserProfile]{NextToken: aws.ToString(out.NextToken)}
	for _, p := range out.Items {
		page.Items = append(page.Items, toUserProfile(p.Id, p.Type, p.Status, p.Details))
	}
	return page, nil
}

func (c *sdkClient) CreateSubscriptionRequest(ctx context.Context, listingID, consumerProjectID string) (string, error) {
	out, err := c.api.CreateSubscriptionRequest(ctx, &datazone.CreateSubscriptionRequestInput{
		DomainIdentifier: c.domain,
		RequestReason:    aws.String(subscriptionReason),
		SubscribedListings: []types.SubscribedListingInput{
			{Identifier: aws.String(listingID)},
		},
		SubscribedPrincipals: []types.SubscribedPrincipalInput{
			&types.SubscribedPrincipalInputMemberProject{Value: types.SubscribedProjectInput{
				Identifier: aws.String(consumerProjectID),
			}},
		},
	})
	if err != nil {
		return "", fmt.Errorf("failed to create subscription request for listing %s: %w", listingID, err)
	}

	c.logger.Info("Created subscription request",
		zap.String("request_id", aws.ToString(out.Id)),
		zap.String("listing_id", listingID),
		zap.String("consumer_project_id", consumerProjectID),
	)
	return aws.ToString(out.Id), nil
}

func (c *sdkClient) AcceptedSubscriptionRequests(ctx context.Context, listingID, producerProjectID, consumerProjectID string) ([]SubscriptionRequest, error) {
	out, err := c.api.ListSubscriptionRequests(ctx, &datazone.ListSubscriptionRequestsInput{
		DomainIdentifier:    c.domain,
		ApproverProjectId:   aws.String(producerProjectID),
		OwningProjectId:     aws.String(consumerProjectID),
		SubscribedListingId: aws.String(listingID),
		Status:              types.SubscriptionRequestStatusAccepted,
		SortBy:              types.SortKeyUpdatedAt,
		SortOrder:           types.SortOrderDescending,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to list subscription requests for listing %s: %w", listingID, err)
	}

	requests := make([]SubscriptionRequest, 0, len(out.Items))
	for _, r := range out.Items {
		requests = append(requests, SubscriptionRequest{ID: aws.ToString(r.Id), Status: string(r.Status)})
	}
	return requests, nil
}

func (c *sdkClient) ApprovedSubscriptions(ctx context.Context, requestID, producerProjectID, consumerProjectID string) ([]string, error) {
	out, err := c.api.ListSubscriptions(ctx, &datazone.ListSubscriptionsInput{
		DomainIdentifier:              c.domain,
		ApproverProjectId:             aws.String(producerProjectID),
		OwningProjectId:               aws.String(consumerProjectID),
		SubscriptionRequestIdentifier: aws.String(requestID),
		Status:                        types.SubscriptionStatusApproved,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to list subscriptions of request %s: %w", requestID, err)
	}

	ids := make([]string, 0, len(out.Items))
	for _, s := range out.Items {
		ids = append(ids, aws.ToString(s.Id))
	}
	return ids, nil
}
