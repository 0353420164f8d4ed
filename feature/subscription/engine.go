package subscription

import (
	"context"
	"errors"
	"fmt"

	"catalog-sync/core/collibra"
	"catalog-sync/core/datazone"
	"catalog-sync/feature/matching"

	"go.uber.org/zap"
)

// Forward outcomes.
const (
	ForwardIgnored = "ignored"
	ForwardStarted = "started"
	ForwardFailed  = "failed"
)

// Options configures the subscription engine.
type Options struct {
	// AdminRoleARN identifies requests created by the integration itself.
	AdminRoleARN string
	// GrantedStatusID and RejectedStatusID are the Collibra statuses set by Reverse.
	GrantedStatusID  string
	RejectedStatusID string
	// Approval bounds the wait for newly created DataZone requests.
	Approval ApprovalPolicy
}

// ForwardResult is the outcome of one Forward call.
type ForwardResult struct {
	Status  string `json:"status"`
	Reason  string `json:"reason,omitempty"`
	TableID string `json:"table_id,omitempty"`
}

// ReverseReport lists the Collibra request ids by outcome.
type ReverseReport struct {
	Granted  []string `json:"granted"`
	Rejected []string `json:"rejected"`
	Skipped  []string `json:"skipped"`
}

// Engine runs one subscription invocation.
type Engine struct {
	collibra collibra.Client
	datazone datazone.Client
	projects datazone.ProjectSource
	matcher  *matching.Matcher
	opts     Options
	logger   *zap.Logger
	counts   map[string]int
}

// NewEngine creates an Engine for a single invocation.
func NewEngine(c collibra.Client, dz datazone.Client, projects datazone.ProjectSource, opts Options, logger *zap.Logger) *Engine {
	return &Engine{
		collibra: c,
		datazone: dz,
		projects: projects,
		matcher:  matching.NewMatcher(logger),
		opts:     opts,
		logger:   logger,
		counts:   map[string]int{},
	}
}

// Counts returns the outcome counters of the invocation.
func (e *Engine) Counts() map[string]int {
	return e.counts
}

// Forward starts the Collibra creation workflow for a pending DataZone request. Events that
// fail validation are ignored with a warning; failures after validation are logged and
// reported in the result. Only lookups needed for validation return an error.
func (e *Engine) Forward(ctx context.Context, ev Event) (ForwardResult, error) {
	result, err := e.forward(ctx, ev)
	if err == nil {
		e.counts[result.Status]++
	}
	return result, err
}

func (e *Engine) forward(ctx context.Context, ev Event) (ForwardResult, error) {
	l := e.logger.With(zap.String("requester_id", ev.RequesterID))
	ignore := func(reason string) (ForwardResult, error) {
		l.Warn("Ignoring subscription request", zap.String("reason", reason))
		return ForwardResult{Status: ForwardIgnored, Reason: reason}, nil
	}

	requester, err := e.datazone.GetUserProfile(ctx, ev.RequesterID)
	if err != nil {
		return ForwardResult{}, fmt.Errorf("failed to resolve requester: %w", err)
	}
	if requester.Type == datazone.UserProfileTypeIAM && requester.IAMArn == e.opts.AdminRoleARN {
		l.Info("Subscription request created by the integration role, ignoring")
		return ForwardResult{Status: ForwardIgnored, Reason: "created by admin role"}, nil
	}

	if ev.Status != StatusPending {
		return ignore(fmt.Sprintf("status is %s, expected %s", ev.Status, StatusPending))
	}
	if len(ev.SubscribedPrincipals) != 1 {
		return ignore("expected exactly one subscribed principal")
	}

	governed, err := e.projects(ctx)
	if err != nil {
		return ForwardResult{}, fmt.Errorf("failed to resolve governed projects: %w", err)
	}

	consumerID := ev.SubscribedPrincipals[0].ID
	if !governed.Contains(consumerID) {
		return ignore("consumer project is not governed")
	}
	if len(ev.SubscribedListings) != 1 {
		return ignore("expected exactly one subscribed listing")
	}
	listing := ev.SubscribedListings[0]
	if !governed.Contains(listing.OwnerProjectID) {
		return ignore("listing owner project is not governed")
	}
	if listing.Item.AssetListing == nil {
		return ignore("subscribed listing is not an asset")
	}

	l = l.With(zap.String("consumer_project_id", consumerID), zap.String("asset_id", listing.Item.AssetListing.EntityID))
	tableID, err := e.startWorkflow(ctx, consumerID, listing.Item.AssetListing.EntityID)
	if err != nil {
		l.Error("Failed to sync subscription request to Collibra", zap.Error(err))
		return ForwardResult{Status: ForwardFailed, Reason: err.Error()}, nil
	}

	l.Info("Started subscription request workflow", zap.String("table_id", tableID))
	return ForwardResult{Status: ForwardStarted, TableID: tableID}, nil
}

func (e *Engine) startWorkflow(ctx context.Context, consumerID, assetID string) (string, error) {
	project, err := e.datazone.GetProject(ctx, consumerID)
	if err != nil {
		return "", err
	}
	asset, err := e.datazone.GetAsset(ctx, assetID)
	if err != nil {
		return "", err
	}
	table, err := e.collibra.TableByName(ctx, asset.Name)
	if err != nil {
		return "", fmt.Errorf("failed to find table %s: %w", asset.Name, err)
	}
	if err := e.collibra.StartSubscriptionWorkflow(ctx, table.ID, project.Name); err != nil {
		return "", err
	}
	return table.ID, nil
}

type reverseOutcome int

const (
	outcomeGranted reverseOutcome = iota
	outcomeSkipped
)

// Reverse processes every Collibra request in status Approved. A request whose processing
// fails is marked rejected; the batch continues.
func (e *Engine) Reverse(ctx context.Context) (ReverseReport, error) {
	report := ReverseReport{Granted: []string{}, Rejected: []string{}, Skipped: []string{}}

	requests, err := e.collibra.SubscriptionRequestsByStatus(ctx, collibra.StatusApproved)
	if err != nil {
		return report, fmt.Errorf("failed to fetch approved requests: %w", err)
	}
	e.logger.Info("Found approved subscription requests", zap.Int("requests", len(requests)))
	if len(requests) == 0 {
		return report, nil
	}

	governed, err := e.projects(ctx)
	if err != nil {
		return report, fmt.Errorf("failed to resolve governed projects: %w", err)
	}

	for _, req := range requests {
		if err := ctx.Err(); err != nil {
			return report, err
		}
		l := e.logger.With(zap.String("request_id", req.ID), zap.String("request", req.DisplayName))
		e.counts["requests"]++

		outcome, err := e.reverse(ctx, l, req, governed)
		switch {
		case err != nil:
			l.Warn("Failed to process subscription request, rejecting", zap.Error(err))
			if uErr := e.collibra.UpdateAssetStatus(ctx, req.ID, e.opts.RejectedStatusID); uErr != nil {
				l.Error("Failed to mark subscription request rejected", zap.Error(uErr))
			}
			report.Rejected = append(report.Rejected, req.ID)
			e.counts["rejected"]++
		case outcome == outcomeSkipped:
			report.Skipped = append(report.Skipped, req.ID)
			e.counts["skipped"]++
		default:
			report.Granted = append(report.Granted, req.ID)
			e.counts["granted"]++
		}
	}

	return report, nil
}

func (e *Engine) reverse(ctx context.Context, l *zap.Logger, req collibra.Asset, governed datazone.ProjectSet) (reverseOutcome, error) {
	consumerID, ok := req.Attribute(collibra.AttributeConsumerProjectID)
	if !ok || consumerID == "" {
		return 0, errors.New("request has no consumer project id")
	}
	producerID, ok := req.Attribute(collibra.AttributeProducerProjectID)
	if !ok || producerID == "" {
		return 0, errors.New("request has no producer project id")
	}

	if !governed.Contains(consumerID) {
		l.Warn("Consumer project is not governed, skipping", zap.String("consumer_project_id", consumerID))
		return outcomeSkipped, nil
	}
	if !governed.Contains(producerID) {
		l.Warn("Producer project is not governed, skipping", zap.String("producer_project_id", producerID))
		return outcomeSkipped, nil
	}

	table, ok := req.FirstTarget()
	if !ok {
		return 0, errors.New("request references no table")
	}

	listingID, err := e.findListing(ctx, table, producerID)
	if err != nil {
		return 0, err
	}
	if listingID == "" {
		l.Info("No listing found for table, skipping", zap.String("table", table.DisplayName))
		return outcomeSkipped, nil
	}
	l = l.With(zap.String("listing_id", listingID))

	subscribed, err := e.hasApprovedSubscription(ctx, listingID, producerID, consumerID)
	if err != nil {
		return 0, err
	}
	if !subscribed {
		requestID, err := e.datazone.CreateSubscriptionRequest(ctx, listingID, consumerID)
		if err != nil {
			return 0, err
		}
		l.Info("Waiting for subscription request approval", zap.String("subscription_request_id", requestID))

		err = e.opts.Approval.Wait(ctx, func(ctx context.Context) (bool, error) {
			subs, err := e.datazone.ApprovedSubscriptions(ctx, requestID, producerID, consumerID)
			return len(subs) > 0, err
		})
		if err != nil {
			return 0, fmt.Errorf("subscription request %s: %w", requestID, err)
		}
	}

	if err := e.collibra.UpdateAssetStatus(ctx, req.ID, e.opts.GrantedStatusID); err != nil {
		return 0, fmt.Errorf("failed to mark request granted: %w", err)
	}
	l.Info("Subscription request granted", zap.Bool("existing", subscribed))
	return outcomeGranted, nil
}

// hasApprovedSubscription checks the newest accepted request for the listing.
func (e *Engine) hasApprovedSubscription(ctx context.Context, listingID, producerID, consumerID string) (bool, error) {
	requests, err := e.datazone.AcceptedSubscriptionRequests(ctx, listingID, producerID, consumerID)
	if err != nil || len(requests) == 0 {
		return false, err
	}
	subs, err := e.datazone.ApprovedSubscriptions(ctx, requests[0].ID, producerID, consumerID)
	if err != nil {
		return false, err
	}
	return len(subs) > 0, nil
}

// findListing returns the id of the producer listing matching table, or "" when none does.
func (e *Engine) findListing(ctx context.Context, table collibra.Asset, producerID string) (string, error) {
	listings, err := datazone.Drain(ctx, func(ctx context.Context, token string) (datazone.Page[datazone.Listing], error) {
		return e.datazone.SearchListings(ctx, producerID, table.DisplayName, token)
	})
	if err != nil {
		return "", fmt.Errorf("failed to search listings: %w", err)
	}

	for _, listing := range listings {
		ok, err := e.matcher.Match(ctx, matching.NewListing(listing), table)
		if err != nil {
			return "", err
		}
		if ok {
			return listing.ListingID, nil
		}
	}
	return "", nil
}
