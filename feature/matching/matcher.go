package matching

import (
	"context"
	"errors"
	"fmt"
	"regexp"
	"strings"

	"catalog-sync/core/collibra"
	"catalog-sync/core/utils"

	"github.com/tidwall/gjson"
	"go.uber.org/zap"
)

// ErrResourceMetadata is returned when a Collibra record has no readable AWS Resource Metadata.
var ErrResourceMetadata = errors.New("missing or malformed AWS resource metadata")

var (
	clusterEndpointPattern    = regexp.MustCompile(`^(?P<cluster>[a-z-]{1,63})\.[a-z0-9-]+\.(?P<region>[a-z0-9-]+)\.redshift\.amazonaws\.com.*`)
	serverlessEndpointPattern = regexp.MustCompile(`^(?P<wg>[a-z-0-9]{3,63})\.(?P<acct>\d{12})\.(?P<region>[a-z0-9-]+)\.redshift-serverless\.amazonaws\.com.*`)
	roleArnPattern            = regexp.MustCompile(`^arn:(aws|aws-cn|aws-us-gov):[a-z0-9-]+:[a-z0-9-]*:(\d{12}):.+$`)
)

const (
	metadataEndpoint = "redshiftEndpoint"
	metadataRoleArn  = "glueAccessRoleArn"
	metadataRegion   = "region"

	pathSeparator = ">"
)

// Matcher decides whether a DataZone resource and a Collibra table describe the same physical table.
type Matcher struct {
	logger *zap.Logger
}

// NewMatcher creates a Matcher.
func NewMatcher(logger *zap.Logger) *Matcher {
	return &Matcher{logger: logger}
}

// Match compares candidate with record field by field. Comparison failures are logged and
// reported as no match; a record without usable resource metadata yields ErrResourceMetadata.
func (m *Matcher) Match(ctx context.Context, candidate Resource, record collibra.Asset) (bool, error) {
	l := m.logger.With(
		zap.String("kind", candidate.Kind()),
		zap.String("resource", candidate.Name()),
		zap.String("record", record.DisplayName),
	)

	if !candidate.Valid() {
		l.Debug("Resource is not matchable")
		return false, nil
	}

	metadata, err := ResourceMetadata(record)
	if err != nil {
		return false, err
	}

	variant, err := ClassifyResource(candidate)
	if err != nil {
		l.Warn("Resource could not be classified", zap.Error(err))
		return false, nil
	}

	var matched bool
	switch variant.Kind {
	case VariantWarehouseCluster:
		matched, err = matchCluster(variant, metadata, record.FullName)
	case VariantWarehouseServerless:
		matched, err = matchServerless(variant, metadata, record.FullName)
	case VariantCatalogTable:
		matched, err = matchCatalogTable(variant, metadata, record.FullName)
	}
	if err != nil {
		l.Warn("Resource matching failed", zap.Stringer("variant", variant.Kind), zap.Error(err))
		return false, nil
	}

	l.Debug("Resource compared", zap.Stringer("variant", variant.Kind), zap.Bool("matched", matched))
	return matched, nil
}

// ResourceMetadata returns the decoded AWS Resource Metadata attribute of record.
func ResourceMetadata(record collibra.Asset) (gjson.Result, error) {
	raw, ok := record.Attribute(collibra.AttributeResourceMetadata)
	if !ok {
		return gjson.Result{}, fmt.Errorf("%w: %s has no attribute", ErrResourceMetadata, record.DisplayName)
	}

	raw = utils.NormalizeQuotes(raw)
	if !gjson.Valid(raw) {
		return gjson.Result{}, fmt.Errorf("%w: %s holds invalid json", ErrResourceMetadata, record.DisplayName)
	}

	metadata := gjson.Parse(raw)
	if !metadata.IsObject() {
		return gjson.Result{}, fmt.Errorf("%w: %s is not an object", ErrResourceMetadata, record.DisplayName)
	}
	return metadata, nil
}

func matchCluster(v Variant, metadata gjson.Result, fullName string) (bool, error) {
	endpoint := metadata.Get(metadataEndpoint).String()
	groups := namedGroups(clusterEndpointPattern, endpoint)
	if groups == nil {
		return false, fmt.Errorf("invalid redshift endpoint %q", endpoint)
	}

	path, err := trailingPath(fullName, 3)
	if err != nil {
		return false, err
	}

	return groups["region"] == v.Region &&
		groups["cluster"] == v.ClusterName &&
		path[0] == v.Database &&
		path[1] == v.Schema &&
		path[2] == v.Table, nil
}

func matchServerless(v Variant, metadata gjson.Result, fullName string) (bool, error) {
	endpoint := metadata.Get(metadataEndpoint).String()
	groups := namedGroups(serverlessEndpointPattern, endpoint)
	if groups == nil {
		return false, fmt.Errorf("invalid redshift serverless endpoint %q", endpoint)
	}

	path, err := trailingPath(fullName, 3)
	if err != nil {
		return false, err
	}

	return groups["region"] == v.Region &&
		groups["wg"] == v.WorkgroupName &&
		groups["acct"] == v.AccountID &&
		path[0] == v.Database &&
		path[1] == v.Schema &&
		path[2] == v.Table, nil
}

func matchCatalogTable(v Variant, metadata gjson.Result, fullName string) (bool, error) {
	arn := metadata.Get(metadataRoleArn).String()
	m := roleArnPattern.FindStringSubmatch(arn)
	if m == nil {
		return false, fmt.Errorf("invalid glue access role arn %q", arn)
	}
	accountID := m[2]

	friendly := metadata.Get(metadataRegion).String()
	region, ok := RegionCode(friendly)
	if !ok {
		return false, fmt.Errorf("unknown region name %q", friendly)
	}

	path, err := trailingPath(fullName, 2)
	if err != nil {
		return false, err
	}

	return region == v.Region &&
		strings.Contains(v.TableArn, accountID) &&
		path[0] == v.Database &&
		path[1] == v.Table, nil
}

// trailingPath returns the last n segments of a fullName, which must also carry a leading
// community segment.
func trailingPath(fullName string, n int) ([]string, error) {
	segments, err := utils.TrailingSegments(fullName, pathSeparator, n+1)
	if err != nil {
		return nil, err
	}
	return segments[1:], nil
}

func namedGroups(re *regexp.Regexp, s string) map[string]string {
	m := re.FindStringSubmatch(s)
	if m == nil {
		return nil
	}
	groups := make(map[string]string, len(m))
	for i, name := range re.SubexpNames() {
		if name != "" {
			groups[name] = m[i]
		}
	}
	return groups
}
