package ranking

import "fmt"

// DefaultDisplayLimit bounds the recommendation list shown to operators.
const DefaultDisplayLimit = 10

// Config defines tunables for the ranking engine.
type Config struct {
	// DisplayLimit caps the number of recommendations per cycle.
	DisplayLimit int `json:"display_limit"`
}

// SetDefaults applies sane defaults.
func (c *Config) SetDefaults() {
	if c.DisplayLimit == 0 {
		c.DisplayLimit = DefaultDisplayLimit
	}
}

// Validate checks the configuration.
func (c Config) Validate() error {
	if c.DisplayLimit < 0 {
		return fmt.Errorf("display_limit must not be negative")
	}
	return nil
}
