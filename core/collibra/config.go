package collibra

// Config holds connection settings and the catalog-specific type identifiers.
type Config struct {
	// URL is the Collibra host, without scheme (e.g. acme.collibra.com).
	URL string `mapstructure:"url" default:""`
	// Username is the Basic auth user.
	Username string `mapstructure:"username" default:""`
	// Password is the Basic auth password.
	Password string `mapstructure:"password" default:""`
	// SecretName is an AWS Secrets Manager secret holding {"url","username","password"}.
	// When set it overrides URL, Username and Password.
	SecretName string `mapstructure:"secret_name" default:""`
	// SecretRegion is the region of SecretName. Empty uses the default AWS region chain.
	SecretRegion string `mapstructure:"secret_region" default:""`
	// TimeoutSeconds bounds every API call.
	TimeoutSeconds int `mapstructure:"timeout_seconds" default:"180"`

	CreationWorkflowID         string `mapstructure:"creation_workflow_id" default:""`
	ApprovalWorkflowID         string `mapstructure:"approval_workflow_id" default:""`
	ProjectTypeID              string `mapstructure:"project_type_id" default:""`
	ProjectDomainID            string `mapstructure:"project_domain_id" default:""`
	ProjectAttributeTypeID     string `mapstructure:"project_attribute_type_id" default:""`
	ProjectAssetRelationTypeID string `mapstructure:"project_asset_relation_type_id" default:""`
	UserTypeID                 string `mapstructure:"user_type_id" default:""`
	UserDomainID               string `mapstructure:"user_domain_id" default:""`
	UserProjectAttributeTypeID string `mapstructure:"user_project_attribute_type_id" default:""`
	RejectedStatusID           string `mapstructure:"rejected_status_id" default:""`
	GrantedStatusID            string `mapstructure:"granted_status_id" default:""`
}
