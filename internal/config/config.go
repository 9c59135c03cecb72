// Package config provides centralized configuration management for the
// application. It loads configuration from environment variables with
// sensible defaults and validates all settings on startup to fail fast on
// misconfiguration.
package config

// Config holds all application configuration.
// All settings can be configured via environment variables.
type Config struct {
	Store   StoreConfig
	Tax     TaxConfig
	Logging LoggingConfig
}

// StoreConfig holds persisted-file settings.
type StoreConfig struct {
	// File is the path to the inventory CSV file (default: inventory.csv)
	// Supports both STOCKTAKE_FILE and INVENTORY_FILE env vars for compatibility
	File string `env:"STOCKTAKE_FILE" envAlt:"INVENTORY_FILE" default:"inventory.csv"`
}

// TaxConfig holds invoice tax settings.
type TaxConfig struct {
	// GSTRate is the goods-and-services tax rate applied to order subtotals
	// (default: 0.05 for 5%)
	GSTRate float64 `env:"STOCKTAKE_GST_RATE" default:"0.05"`
}

// LoggingConfig holds logging settings.
type LoggingConfig struct {
	// Level is the minimum log level: debug, info, warn, error (default: info)
	Level string `env:"LOG_LEVEL" default:"info"`

	// Format is the log format: text or json (default: text)
	Format string `env:"LOG_FORMAT" default:"text"`
}
