package config

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/knadh/koanf/parsers/json"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"

	"github.com/railops/sectionctl/core/ranking"
	"github.com/railops/sectionctl/infra/csvsource"
	"github.com/railops/sectionctl/infra/metrics"
	"github.com/railops/sectionctl/infra/mqtt"
)

// Config aggregates all service settings.
type Config struct {
	Data    csvsource.Config `json:"data"`
	Engine  ranking.Config   `json:"engine"`
	Refresh RefreshConfig    `json:"refresh"`
	API     APIConfig        `json:"api"`
	Metrics metrics.Config   `json:"metrics"`
	MQTT    mqtt.Config      `json:"mqtt"`
}

// RefreshConfig drives the auto-refresh timer.
type RefreshConfig struct {
	IntervalSeconds int `json:"interval_seconds"`
}

// SetDefaults applies sane defaults.
func (c *RefreshConfig) SetDefaults() {
	if c.IntervalSeconds == 0 {
		c.IntervalSeconds = 30
	}
}

// Validate checks mandatory fields.
func (c RefreshConfig) Validate() error {
	if c.IntervalSeconds < 0 {
		return fmt.Errorf("interval_seconds must not be negative")
	}
	return nil
}

// APIConfig configures the operator HTTP API.
type APIConfig struct {
	Addr string `json:"addr"`
}

// SetDefaults applies sane defaults.
func (c *APIConfig) SetDefaults() {
	if c.Addr == "" {
		c.Addr = ":8080"
	}
}

// Load reads the configuration from a YAML or JSON file, then applies
// environment overrides with the SC_ prefix ("__" maps to nesting, e.g.
// SC_API__ADDR).
func Load(path string) (*Config, error) {
	k := koanf.New(".")
	ext := strings.ToLower(filepath.Ext(path))
	var parser koanf.Parser
	switch ext {
	case ".yaml", ".yml":
		parser = yaml.Parser()
	case ".json":
		parser = json.Parser()
	default:
		return nil, fmt.Errorf("unsupported config format: %s", ext)
	}
	if err := k.Load(file.Provider(path), parser); err != nil {
		return nil, err
	}
	// The callback already rewrites "__" to the koanf path separator, so the
	// provider must split on "." or the key stays flat and never matches.
	if err := k.Load(env.Provider("SC_", ".", func(s string) string {
		s = strings.TrimPrefix(strings.ToLower(s), "sc_")
		return strings.ReplaceAll(s, "__", ".")
	}), nil); err != nil {
		return nil, err
	}
	var cfg Config
	if err := k.UnmarshalWithConf("", &cfg, koanf.UnmarshalConf{Tag: "json"}); err != nil {
		return nil, err
	}
	cfg.Data.SetDefaults()
	cfg.Engine.SetDefaults()
	cfg.Refresh.SetDefaults()
	cfg.API.SetDefaults()
	cfg.Metrics.SetDefaults()
	cfg.MQTT.SetDefaults()
	if err := cfg.Engine.Validate(); err != nil {
		return nil, err
	}
	if err := cfg.Refresh.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}
