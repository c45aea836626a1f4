package config

// CatalogConfig contains job catalog configuration.
type CatalogConfig struct {
	// FallbackPath points to a JSON file with seed jobs served when the
	// database is unreachable. When empty, a small compiled-in seed is used.
	FallbackPath string `env:"CATALOG_FALLBACK_PATH" envDefault:""`

	// FallbackEnabled toggles fail-soft catalog reads. When false, read
	// failures surface to the caller like any other operation failure.
	FallbackEnabled bool `env:"CATALOG_FALLBACK_ENABLED" envDefault:"true"`

	// NullSalaryMatchesMax decides whether a job with no upper salary bound
	// satisfies a salaryMax filter. Default false: an unbounded job is
	// excluded by an upper-bound filter.
	NullSalaryMatchesMax bool `env:"CATALOG_NULL_SALARY_MATCHES_MAX" envDefault:"false"`

	// DefaultPageSize is used when the caller does not supply a page size.
	DefaultPageSize int `env:"CATALOG_DEFAULT_PAGE_SIZE" envDefault:"10"`

	// MaxPageSize caps the caller-supplied page size.
	MaxPageSize int `env:"CATALOG_MAX_PAGE_SIZE" envDefault:"100"`
}

// Sanitize applies guardrails to catalog configuration values.
func (c *CatalogConfig) Sanitize() {
	if c.DefaultPageSize <= 0 {
		c.DefaultPageSize = 10
	}
	if c.MaxPageSize <= 0 {
		c.MaxPageSize = 100
	}
	if c.DefaultPageSize > c.MaxPageSize {
		c.DefaultPageSize = c.MaxPageSize
	}
}
