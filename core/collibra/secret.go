package collibra

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/secretsmanager"
)

// SecretsAPI is the subset of the Secrets Manager client used to load credentials.
type SecretsAPI interface {
	GetSecretValue(ctx context.Context, in *secretsmanager.GetSecretValueInput, optFns ...func(*secretsmanager.Options)) (*secretsmanager.GetSecretValueOutput, error)
}

type secretPayload struct {
	URL      string `json:"url"`
	Username string `json:"username"`
	Password string `json:"password"`
}

// ResolveCredentials fills URL, Username and Password from cfg.SecretName when it is set.
func ResolveCredentials(ctx context.Context, cfg Config) (Config, error) {
	if cfg.SecretName == "" {
		return cfg, nil
	}

	var opts []func(*awsconfig.LoadOptions) error
	if cfg.SecretRegion != "" {
		opts = append(opts, awsconfig.WithRegion(cfg.SecretRegion))
	}
	awsCfg, err := awsconfig.LoadDefaultConfig(ctx, opts...)
	if err != nil {
		return cfg, fmt.Errorf("failed to load aws config: %w", err)
	}

	return ApplySecret(ctx, secretsmanager.NewFromConfig(awsCfg), cfg)
}

// ApplySecret reads cfg.SecretName through api and overrides the connection fields.
func ApplySecret(ctx context.Context, api SecretsAPI, cfg Config) (Config, error) {
	out, err := api.GetSecretValue(ctx, &secretsmanager.GetSecretValueInput{SecretId: aws.String(cfg.SecretName)})
	if err != nil {
		return cfg, fmt.Errorf("failed to read secret %s: %w", cfg.SecretName, err)
	}

	var payload secretPayload
	if err := json.Unmarshal([]byte(aws.ToString(out.SecretString)), &payload); err != nil {
		return cfg, fmt.Errorf("failed to decode secret %s: %w", cfg.SecretName, err)
	}
	if payload.URL == "" || payload.Username == "" {
		return cfg, fmt.Errorf("secret %s is missing url or username", cfg.SecretName)
	}

	cfg.URL = payload.URL
	cfg.Username = payload.Username
	cfg.Password = payload.Password
	return cfg, nil
}
