// Package data provides configuration data types for the w1s application.
package data

// Flags represents CLI command-line flags for the w1s application.
type Flags struct {
	Endpoint *string // GraphQL endpoint URL
	Profile  *string // Endpoint profile to use
	PageSize *int    // Rows per table page
	Locale   *string // Collation locale for sorting
	Timeout  *string // API timeout, e.g. 10s
	Retries  *int    // Max attempts per query
	LogLevel *string // Log level (e.g., debug, info, warn, error)
	LogFile  *string // Path to log file
	Headless *bool   // Run in headless mode (no TUI)
}

// UI represents user interface configuration settings.
type UI struct {
	EnableMouse bool `yaml:"enableMouse"`
	Headless    bool `yaml:"headless"`
	NoChart     bool `yaml:"noChart"`
}

// Logger represents logging configuration settings.
type Logger struct {
	Level string `yaml:"level"`
}

// Retry represents the query retry policy.
type Retry struct {
	MaxAttempts int    `yaml:"maxAttempts"`
	BaseDelay   string `yaml:"baseDelay"`
}

// NewFlags creates a new Flags instance with all pointer fields initialized.
// All pointers are allocated but their values are not set.
func NewFlags() *Flags {
	return &Flags{
		Endpoint: new(string),
		Profile:  new(string),
		PageSize: new(int),
		Locale:   new(string),
		Timeout:  new(string),
		Retries:  new(int),
		LogLevel: new(string),
		LogFile:  new(string),
		Headless: new(bool),
	}
}
