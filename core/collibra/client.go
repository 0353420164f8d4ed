package collibra

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net"
	"net/http"
	"net/url"
	"strings"
	"time"

	"go.uber.org/zap"
	"golang.org/x/sync/singleflight"
)

const (
	graphQLPath = "/graphql/knowledgeGraph/v1"
	restPrefix  = "/rest/2.0/"
)

// Client defines the Collibra operations used by the sync engines.
type Client interface {
	// BusinessTerms returns the next page of business terms after lastSeenID (nil = from the start).
	BusinessTerms(ctx context.Context, lastSeenID *string) ([]Asset, error)
	// Tables returns the next page of AWS tables carrying resource metadata after lastSeenID.
	Tables(ctx context.Context, lastSeenID *string) ([]Asset, error)
	// Table returns a table with its description attributes and its columns.
	Table(ctx context.Context, id string) (Asset, error)
	// TableBusinessTerms returns a table with the business terms attached to it.
	TableBusinessTerms(ctx context.Context, id string) (Asset, error)
	// PIIColumns returns a table with the Column <- BusinessTerm <- DataCategory chain.
	PIIColumns(ctx context.Context, id string) (Asset, error)
	// BusinessTermHierarchy returns business terms with their parent terms as incoming relations.
	BusinessTermHierarchy(ctx context.Context) ([]Asset, error)
	// TableByName returns the AWS table with the given display name, or ErrNotFound.
	TableByName(ctx context.Context, name string) (Asset, error)
	// SubscriptionRequestsByStatus returns subscription request assets in the given status.
	SubscriptionRequestsByStatus(ctx context.Context, status string) ([]Asset, error)
	// StartSubscriptionWorkflow starts the request creation workflow for a table.
	StartSubscriptionWorkflow(ctx context.Context, assetID, consumerProjectName string) error
	// UpdateAssetStatus sets the status of an asset.
	UpdateAssetStatus(ctx context.Context, assetID, statusID string) error
	// GetOrCreateProject returns the project asset with the given name, creating it if needed.
	GetOrCreateProject(ctx context.Context, name string) (Asset, error)
	// AddProjectAttribute records the DataZone project id on a project asset.
	AddProjectAttribute(ctx context.Context, projectAssetID, projectID string) error
	// CreateRelation links two assets with a relation type.
	CreateRelation(ctx context.Context, sourceID, targetID, typeID string) error
	// GetOrCreateUser returns the user asset with the given username, creating it if needed.
	// The returned asset carries its project attributes.
	GetOrCreateUser(ctx context.Context, username string) (Asset, error)
	// AddUserProjectAttribute records a project name on a user asset.
	AddUserProjectAttribute(ctx context.Context, userID, projectName string) error
}

type httpClient struct {
	cfg     Config
	baseURL string
	http    *http.Client
	logger  *zap.Logger
	creates singleflight.Group
}

// NewClient creates a Collibra client. cfg.URL may omit the scheme, https is assumed.
func NewClient(cfg Config, logger *zap.Logger) (Client, error) {
	if cfg.URL == "" {
		return nil, errors.New("collibra url is not configured")
	}

	base := strings.TrimSuffix(cfg.URL, "/")
	if !strings.HasPrefix(base, "http://") && !strings.HasPrefix(base, "https://") {
		base = "https://" + base
	}

	timeout := cfg.TimeoutSeconds
	if timeout <= 0 {
		timeout = 180
	}
	timeoutDuration := time.Duration(timeout) * time.Second

	transport := &http.Transport{
		Proxy: http.ProxyFromEnvironment,
		DialContext: (&net.Dialer{
			Timeout:   30 * time.Second,
			KeepAlive: 30 * time.Second,
		}).DialContext,
		ForceAttemptHTTP2:   true,
		MaxIdleConns:        20,
		IdleConnTimeout:     90 * time.Second,
		TLSHandshakeTimeout: 30 * time.Second,
	}

	return &httpClient{
		cfg:     cfg,
		baseURL: base,
		http:    &http.Client{Timeout: timeoutDuration, Transport: transport},
		logger:  logger,
	}, nil
}

type graphQLRequest struct {
	Query     string         `json:"query"`
	Variables map[string]any `json:"variables,omitempty"`
}

type graphQLResponse struct {
	Data struct {
		Assets []Asset `json:"assets"`
	} `json:"data"`
	Errors []struct {
		Message string `json:"message"`
	} `json:"errors"`
}

type createdAsset struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

func (c *httpClient) BusinessTerms(ctx context.Context, lastSeenID *string) ([]Asset, error) {
	if lastSeenID != nil && *lastSeenID != "" {
		return c.query(ctx, "fetch business terms", businessTermsAfterQuery, map[string]any{"lastSeenId": *lastSeenID})
	}
	return c.query(ctx, "fetch business terms", businessTermsQuery, nil)
}

func (c *httpClient) Tables(ctx context.Context, lastSeenID *string) ([]Asset, error) {
	if lastSeenID != nil && *lastSeenID != "" {
		return c.query(ctx, "fetch tables", tablesAfterQuery, map[string]any{"lastSeenId": *lastSeenID})
	}
	return c.query(ctx, "fetch tables", tablesQuery, nil)
}

func (c *httpClient) Table(ctx context.Context, id string) (Asset, error) {
	return c.queryOne(ctx, "fetch table "+id, tableQuery, map[string]any{"assetId": id})
}

func (c *httpClient) TableBusinessTerms(ctx context.Context, id string) (Asset, error) {
	return c.queryOne(ctx, "fetch business terms of table "+id, tableBusinessTermsQuery, map[string]any{"assetId": id})
}

func (c *httpClient) PIIColumns(ctx context.Context, id string) (Asset, error) {
	return c.queryOne(ctx, "fetch PII columns of table "+id, piiColumnsQuery, map[string]any{"assetId": id})
}

func (c *httpClient) BusinessTermHierarchy(ctx context.Context) ([]Asset, error) {
	return c.query(ctx, "fetch business term hierarchy", businessTermHierarchyQuery, nil)
}

func (c *httpClient) TableByName(ctx context.Context, name string) (Asset, error) {
	return c.queryOne(ctx, "fetch table by name "+name, tableByNameQuery, map[string]any{"tableName": name})
}

func (c *httpClient) SubscriptionRequestsByStatus(ctx context.Context, status string) ([]Asset, error) {
	return c.query(ctx, "fetch subscription requests", subscriptionRequestsByStatusQuery, map[string]any{"status": status})
}

func (c *httpClient) StartSubscriptionWorkflow(ctx context.Context, assetID, consumerProjectName string) error {
	body := map[string]any{
		"workflowDefinitionId": c.cfg.CreationWorkflowID,
		"sendNotification":     true,
		"businessItemIds":      []string{assetID},
		"businessItemType":     "ASSET",
		"formProperties":       map[string]string{"aws_consumer_project_name": consumerProjectName},
	}
	return c.rest(ctx, "start subscription workflow", http.MethodPost, "workflowInstances", body, nil)
}

func (c *httpClient) UpdateAssetStatus(ctx context.Context, assetID, statusID string) error {
	body := map[string]string{"statusId": statusID}
	return c.rest(ctx, "update status of asset "+assetID, http.MethodPatch, "assets/"+url.PathEscape(assetID), body, nil)
}

func (c *httpClient) GetOrCreateProject(ctx context.Context, name string) (Asset, error) {
	v, err, _ := c.creates.Do("project:"+name, func() (any, error) {
		vars := map[string]any{"assetName": name, "typeId": c.cfg.ProjectTypeID}
		found, err := c.query(ctx, "fetch project "+name, assetByNameAndTypeQuery, vars)
		if err != nil {
			return Asset{}, err
		}
		if len(found) > 0 {
			return found[0], nil
		}

		c.logger.Info("Creating project asset", zap.String("project", name))
		return c.createAsset(ctx, "create project "+name, name, c.cfg.ProjectDomainID, c.cfg.ProjectTypeID)
	})
	if err != nil {
		return Asset{}, err
	}
	return v.(Asset), nil
}

func (c *httpClient) AddProjectAttribute(ctx context.Context, projectAssetID, projectID string) error {
	body := map[string]any{"typeId": c.cfg.ProjectAttributeTypeID, "values": []string{projectID}}
	resource := "assets/" + url.PathEscape(projectAssetID) + "/attributes"
	return c.rest(ctx, "add project attribute to "+projectAssetID, http.MethodPut, resource, body, nil)
}

func (c *httpClient) CreateRelation(ctx context.Context, sourceID, targetID, typeID string) error {
	body := map[string]string{"sourceId": sourceID, "targetId": targetID, "typeId": typeID}
	return c.rest(ctx, fmt.Sprintf("create relation %s -> %s", sourceID, targetID), http.MethodPost, "relations", body, nil)
}

func (c *httpClient) GetOrCreateUser(ctx context.Context, username string) (Asset, error) {
	v, err, _ := c.creates.Do("user:"+username, func() (any, error) {
		vars := map[string]any{
			"assetName":           username,
			"type":                c.cfg.UserTypeID,
			"stringAttributeType": c.cfg.UserProjectAttributeTypeID,
		}
		user, err := c.queryOne(ctx, "fetch user "+username, assetWithAttributesByNameAndTypeQuery, vars)
		if err == nil {
			return user, nil
		}
		if !errors.Is(err, ErrNotFound) {
			return Asset{}, err
		}

		c.logger.Info("Creating user asset", zap.String("user", username))
		return c.createAsset(ctx, "create user "+username, username, c.cfg.UserDomainID, c.cfg.UserTypeID)
	})
	if err != nil {
		return Asset{}, err
	}
	return v.(Asset), nil
}

func (c *httpClient) AddUserProjectAttribute(ctx context.Context, userID, projectName string) error {
	body := map[string]string{
		"assetId": userID,
		"typeId":  c.cfg.UserProjectAttributeTypeID,
		"value":   projectName,
	}
	return c.rest(ctx, "add project attribute to user "+userID, http.MethodPost, "attributes", body, nil)
}

func (c *httpClient) createAsset(ctx context.Context, op, name, domainID, typeID string) (Asset, error) {
	body := map[string]string{"name": name, "domainId": domainID, "typeId": typeID}
	var created createdAsset
	if err := c.rest(ctx, op, http.MethodPost, "assets", body, &created); err != nil {
		return Asset{}, err
	}
	return Asset{ID: created.ID, DisplayName: created.Name}, nil
}

func (c *httpClient) queryOne(ctx context.Context, op, query string, vars map[string]any) (Asset, error) {
	assets, err := c.query(ctx, op, query, vars)
	if err != nil {
		return Asset{}, err
	}
	if len(assets) == 0 {
		return Asset{}, fmt.Errorf("failed to %s: %w", op, ErrNotFound)
	}
	return assets[0], nil
}

func (c *httpClient) query(ctx context.Context, op, query string, vars map[string]any) ([]Asset, error) {
	payload, err := json.Marshal(graphQLRequest{Query: query, Variables: vars})
	if err != nil {
		return nil, fmt.Errorf("failed to encode %s query: %w", op, err)
	}

	body, err := c.do(ctx, op, http.MethodPost, c.baseURL+graphQLPath, payload)
	if err != nil {
		return nil, err
	}

	var resp graphQLResponse
	if err := json.Unmarshal(body, &resp); err != nil {
		return nil, fmt.Errorf("failed to decode %s response: %w", op, err)
	}
	if len(resp.Errors) > 0 {
		msgs := make([]string, 0, len(resp.Errors))
		for _, e := range resp.Errors {
			msgs = append(msgs, e.Message)
		}
		return nil, &GraphQLError{Operation: op, Messages: msgs}
	}

	c.logger.Debug("Collibra query succeeded", zap.String("operation", op), zap.Int("assets", len(resp.Data.Assets)))
	return resp.Data.Assets, nil
}

func (c *httpClient) rest(ctx context.Context, op, method, resource string, in, out any) error {
	payload, err := json.Marshal(in)
	if err != nil {
		return fmt.Errorf("failed to encode %s request: %w", op, err)
	}

	body, err := c.do(ctx, op, method, c.baseURL+restPrefix+resource, payload)
	if err != nil {
		return err
	}

	if out != nil {
		if err := json.Unmarshal(body, out); err != nil {
			return fmt.Errorf("failed to decode %s response: %w", op, err)
		}
	}
	return nil
}

func (c *httpClient) do(ctx context.Context, op, method, target string, payload []byte) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, method, target, bytes.NewReader(payload))
	if err != nil {
		return nil, fmt.Errorf("failed to create %s request: %w", op, err)
	}
	req.SetBasicAuth(c.cfg.Username, c.cfg.Password)
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to %s: %w", op, err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s response: %w", op, err)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, &APIError{Operation: op, StatusCode: resp.StatusCode, Body: string(body)}
	}
	return body, nil
}
