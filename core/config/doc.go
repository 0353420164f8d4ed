// Package config provides configuration management for catalog-sync.
//
// Values come from the environment, optionally seeded from a .env file. Every leaf field
// of Config declares its key with a mapstructure tag and its default with a default tag;
// bindValues registers them with Viper so that AutomaticEnv can resolve nested keys
// (datazone.domain_id is read from DATAZONE_DOMAIN_ID).
//
// # Configuration Structure
//
//   - Server: HTTP port and API key
//   - Log: level and format
//   - Database: optional run history (mysql or sqlite)
//   - Storage: optional report archive (S3 compatible)
//   - DataZone: Catalog-B domain, glossary owner and admin role
//   - Collibra: Catalog-A connection, credentials secret and type identifiers
//   - Sync: engine budgets and approval polling
//
// The loaded struct is validated with go-playground/validator; a missing
// DATAZONE_DOMAIN_ID fails LoadConfig.
//
// # Usage
//
//	cfg, err := config.LoadConfig(".")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println(cfg.DataZone.DomainID)
package config
