// Package config provides configuration management for the item generator.
//
// It utilizes Viper for loading configuration from an optional itemgen.yaml,
// environment variables and a .env file. Command-line flags are applied on top
// by the cmd package.
//
// # Configuration Structure
//
// The Config struct is the central repository for all settings, divided into subsections:
//   - Generate: catalog source, output target, id limit
//   - Emit: package name, type and table names, absent marker, header template
//   - Source: fetch timeout, user agent, size limit
//   - Storage: S3/MinIO credentials for s3:// locators
//   - Database: MySQL connection details for db: locators
//   - Log: logging level and format
//
// Source, output and package have no defaults; a run must name them.
//
// # Usage
//
//	cfg, err := config.LoadConfig(".")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	if err := cfg.Validate(); err != nil {
//	    log.Fatal(err)
//	}
package config
