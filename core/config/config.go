package config

import (
	"fmt"
	"reflect"
	"strings"
	"time"

	"catalog-sync/core/collibra"
	"catalog-sync/core/database"
	"catalog-sync/core/datazone"
	"catalog-sync/core/logger"
	"catalog-sync/core/server"
	"catalog-sync/core/storage"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Config holds all configuration for the application.
// It is divided into partial configurations owned by the packages that use them.
type Config struct {
	// Server holds configuration for the HTTP server.
	Server server.Config `mapstructure:"server"`
	// Log holds configuration for the logger.
	Log logger.Config `mapstructure:"log"`
	// Database holds configuration for the optional run history database.
	Database database.Config `mapstructure:"database"`
	// Storage holds configuration for the optional report archive.
	Storage storage.Config `mapstructure:"storage"`
	// DataZone holds the Catalog-B domain settings.
	DataZone datazone.Config `mapstructure:"datazone"`
	// Collibra holds the Catalog-A connection and type identifiers.
	Collibra collibra.Config `mapstructure:"collibra"`
	// Sync holds engine tunables.
	Sync Sync `mapstructure:"sync"`
}

// Sync holds the budgets and intervals of the sync engines.
type Sync struct {
	// AssetBudgetSeconds is the soft time budget of one asset metadata invocation.
	AssetBudgetSeconds int `mapstructure:"asset_budget_seconds" default:"600" validate:"gt=0"`
	// ProjectsPerInvocation is the page size of one project sync invocation.
	ProjectsPerInvocation int `mapstructure:"projects_per_invocation" default:"5" validate:"gt=0,lte=50"`
	// ApprovalWaitSeconds bounds the wait for a subscription request to be auto-approved.
	ApprovalWaitSeconds int `mapstructure:"approval_wait_seconds" default:"180" validate:"gt=0"`
	// ApprovalPollSeconds is the interval between approval checks.
	ApprovalPollSeconds int `mapstructure:"approval_poll_seconds" default:"5" validate:"gt=0"`
}

// AssetBudget returns AssetBudgetSeconds as a duration.
func (s Sync) AssetBudget() time.Duration {
	return time.Duration(s.AssetBudgetSeconds) * time.Second
}

// ApprovalWait returns ApprovalWaitSeconds as a duration.
func (s Sync) ApprovalWait() time.Duration {
	return time.Duration(s.ApprovalWaitSeconds) * time.Second
}

// ApprovalPoll returns ApprovalPollSeconds as a duration.
func (s Sync) ApprovalPoll() time.Duration {
	return time.Duration(s.ApprovalPollSeconds) * time.Second
}

// LoadConfig loads configuration from environment variables and .env file.
func LoadConfig(path string) (*Config, error) {
	envPath := path + "/.env"
	if path == "." {
		envPath = ".env"
	}

	// Ignore error if file doesn't exist (e.g. production)
	_ = godotenv.Overload(envPath)

	v := viper.New()

	bindValues(v, Config{}, "")

	// Map environment variables to nested keys (e.g. DATAZONE_DOMAIN_ID -> datazone.domain_id)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return nil, err
	}

	if err := validator.New().Struct(config); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return &config, nil
}

// bindValues uses reflection to iterate over the struct and set default values in Viper
// based on the 'default' and 'mapstructure' tags.
func bindValues(v *viper.Viper, iface any, prefix string) {
	t := reflect.TypeOf(iface)

	if t.Kind() == reflect.Ptr {
		t = t.Elem()
	}

	for i := 0; i < t.NumField(); i++ {
		field := t.Field(i)
		tag := field.Tag.Get("mapstructure")
		if tag == "" {
			continue
		}

		key := tag
		if prefix != "" {
			key = prefix + "." + tag
		}

		if field.Type.Kind() == reflect.Struct {
			bindValues(v, reflect.New(field.Type).Elem().Interface(), key)
			continue
		}

		// Always set default (even if empty) to register the key for AutomaticEnv
		v.SetDefault(key, field.Tag.Get("default"))
	}
}
