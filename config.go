package ecourts

import "time"

// Default portal and pipeline settings.
const (
	DefaultBaseURL      = "https://services.ecourts.gov.in/ecourtindia_v6/"
	DefaultPollInterval = 2 * time.Second
	DefaultDeadline     = 5 * time.Minute
)

// Config holds portal identifiers and pipeline settings.
type Config struct {
	BaseURL string

	// Court identifiers shown in the operator instructions. The portal
	// needs them selected by hand; they are not submitted programmatically.
	StateCode string
	DistCode  string
	CourtCode string

	// Output directories, one per query kind, created if absent.
	CauseListDir string
	OrdersDir    string

	// PollInterval paces the locator; Deadline bounds the whole wait.
	PollInterval time.Duration
	Deadline     time.Duration

	DBPath string
}

// DefaultConfig returns the settings used when no config file exists.
func DefaultConfig() Config {
	return Config{
		BaseURL:      DefaultBaseURL,
		CauseListDir: "cause_lists",
		OrdersDir:    "case_orders",
		PollInterval: DefaultPollInterval,
		Deadline:     DefaultDeadline,
	}
}

// Validate returns an error if the configuration is unusable.
func (c *Config) Validate() error {
	if c.BaseURL == "" {
		return Errorf(EINVALID, "base URL required")
	}
	if c.CauseListDir == "" {
		return Errorf(EINVALID, "cause list directory required")
	}
	if c.OrdersDir == "" {
		return Errorf(EINVALID, "orders directory required")
	}
	if c.PollInterval <= 0 {
		return Errorf(EINVALID, "poll interval must be positive")
	}
	if c.Deadline < c.PollInterval {
		return Errorf(EINVALID, "deadline must cover at least one poll interval")
	}
	return nil
}
