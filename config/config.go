package config

// AppConfig is the main application configuration struct that composes
// domain-specific configuration from separate files.
//
// Configuration is loaded from environment variables using the
// github.com/caarlos0/env library. See individual domain config
// files for details on available environment variables:
//   - auth.go: Authentication configuration
//   - database.go: Database and session-store configuration
//   - http.go: HTTP server configuration
//   - catalog.go: Job catalog configuration (fallback data, paging, salary policy)
//   - ledger.go: Application ledger configuration (state machine strictness)
type AppConfig struct {
	// IsDev controls development mode behavior (dev seeding, relaxed cookies).
	IsDev bool `env:"DEV" envDefault:"false"`

	// Authentication configuration
	Auth AuthConfig

	// Database configuration
	Postgres DBConfig    `envPrefix:"DB_"`
	Redis    RedisConfig `envPrefix:"REDIS_"`

	// HTTP server configuration
	HTTP HTTPConfig

	// Job catalog configuration
	Catalog CatalogConfig

	// Application ledger configuration
	Ledger LedgerConfig
}

// Sanitize applies guardrails to configuration values loaded from env.
// This should be called after loading configuration from environment variables.
func (c *AppConfig) Sanitize() {
	c.Catalog.Sanitize()
	c.Ledger.Sanitize()
}
