package datazone

// Config holds the DataZone domain the engine reconciles against.
type Config struct {
	// DomainID is the DataZone / SageMaker Unified Studio domain identifier.
	DomainID string `mapstructure:"domain_id" default:"" validate:"required"`
	// Region is the AWS region of the domain.
	Region string `mapstructure:"region" default:"us-east-1"`
	// GlossaryOwnerProjectID owns the synced glossary when it has to be created.
	GlossaryOwnerProjectID string `mapstructure:"glossary_owner_project_id" default:""`
	// AdminRoleARN is the IAM role the engine runs as inside the domain.
	AdminRoleARN string `mapstructure:"admin_role_arn" default:""`
}

// GlossaryName returns the name of the glossary holding synced terms.
func (c Config) GlossaryName() string {
	return "CollibraSyncedGlossary-" + c.DomainID
}
