package config

// LedgerConfig contains application ledger configuration.
type LedgerConfig struct {
	// StrictTransitions enforces the application status state machine on
	// updates (terminal states frozen, no backwards moves). When false any
	// valid status may replace any other, matching the permissive legacy
	// behavior.
	StrictTransitions bool `env:"LEDGER_STRICT_TRANSITIONS" envDefault:"true"`

	// CoverLetterMaxLen rejects cover letters longer than this many
	// characters. Zero disables the cap.
	CoverLetterMaxLen int `env:"LEDGER_COVER_LETTER_MAX_LEN" envDefault:"1000"`
}

// Sanitize applies guardrails to ledger configuration values.
func (c *LedgerConfig) Sanitize() {
	if c.CoverLetterMaxLen < 0 {
		c.CoverLetterMaxLen = 0
	}
}
