package extension

// Config holds the Vesting extension configuration.
// Fields can be set programmatically via Option functions or loaded from
// YAML configuration files (under "extensions.vesting" or "vesting" keys).
type Config struct {
	// DisableMigrate prevents auto-migration on start.
	DisableMigrate bool `json:"disable_migrate" mapstructure:"disable_migrate" yaml:"disable_migrate"`

	// CustodyAccount names the account the in-memory fallback bank custodies
	// assets under when no mover is provided programmatically
	// (default: "vesting-custody").
	CustodyAccount string `json:"custody_account" mapstructure:"custody_account" yaml:"custody_account"`

	// AuthorizedCallers restricts mutating ledger operations to the listed
	// caller identities. Empty means every caller is authorized.
	AuthorizedCallers []string `json:"authorized_callers" mapstructure:"authorized_callers" yaml:"authorized_callers"`

	// RequireConfig requires config to be present in YAML files.
	// If true and no config is found, Register returns an error.
	RequireConfig bool `json:"-" yaml:"-"`
}

// DefaultConfig returns a Config with sensible defaults.
func DefaultConfig() Config {
	return Config{
		CustodyAccount: "vesting-custody",
	}
}
