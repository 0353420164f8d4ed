package storage

// Config holds configuration for the report archive.
type Config struct {
	// Enabled turns the archive on. When false reports are not uploaded.
	Enabled bool `mapstructure:"enabled" default:"false"`
	// Endpoint is the host of the S3 compatible service, with or without scheme.
	Endpoint string `mapstructure:"endpoint" default:"s3.amazonaws.com"`
	// AccessKey is the access key ID for authentication.
	AccessKey string `mapstructure:"access_key" default:""`
	// SecretKey is the secret access key for authentication.
	SecretKey string `mapstructure:"secret_key" default:""`
	// UseSSL indicates whether to use SSL/TLS for connections.
	UseSSL bool `mapstructure:"use_ssl" default:"true"`
	// Bucket receives the run reports.
	Bucket string `mapstructure:"bucket" default:"catalog-sync-reports"`
	// Region is the location of the bucket (e.g., us-east-1).
	Region string `mapstructure:"region" default:""`
	// TimeoutSeconds is the connection timeout in seconds.
	TimeoutSeconds int `mapstructure:"timeout_seconds" default:"30"`
}
