package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/pelletier/go-toml/v2"
)

// Duration is a time.Duration that unmarshals from TOML strings like
// "10m" or "90s".
type Duration struct {
	time.Duration
}

func (d *Duration) UnmarshalText(text []byte) error {
	v, err := time.ParseDuration(string(text))
	if err != nil {
		return fmt.Errorf("invalid duration %q: %w", string(text), err)
	}
	d.Duration = v
	return nil
}

// Config is loaded once at startup and treated as immutable.
type Config struct {
	APIURL              string   `toml:"api_url"`
	APIKey              string   `toml:"api_key"`
	OrganizationID      string   `toml:"organization_id"`
	ProjectName         string   `toml:"project_name"`
	WatchDir            string   `toml:"watch_dir"`
	MaxOpenSliceSpan    Duration `toml:"max_open_slice_span"`
	BeatTimeout         Duration `toml:"beat_timeout"`
	ChangeEventThrottle Duration `toml:"change_event_throttle"`
}

// SetDefault fills the optional fields. The project name falls back to
// the watch directory's base name, the editor-workspace analogue.
func (c *Config) SetDefault() {
	if c.ChangeEventThrottle.Duration == 0 {
		c.ChangeEventThrottle.Duration = time.Second
	}
	if c.ProjectName == "" && c.WatchDir != "" {
		c.ProjectName = filepath.Base(c.WatchDir)
	}
}

// Validate reports every missing required field in one error. A config
// error is fatal to activation and never retried.
func (c *Config) Validate() error {
	var missing []string
	if c.APIURL == "" {
		missing = append(missing, "api_url")
	}
	if c.APIKey == "" {
		missing = append(missing, "api_key")
	}
	if c.OrganizationID == "" {
		missing = append(missing, "organization_id")
	}
	if c.WatchDir == "" {
		missing = append(missing, "watch_dir")
	}
	if c.ProjectName == "" {
		missing = append(missing, "project_name")
	}
	if c.MaxOpenSliceSpan.Duration == 0 {
		missing = append(missing, "max_open_slice_span")
	}
	if c.BeatTimeout.Duration == 0 {
		missing = append(missing, "beat_timeout")
	}
	if len(missing) > 0 {
		return fmt.Errorf("missing required configuration: %s", strings.Join(missing, ", "))
	}
	return nil
}

func LoadConfigFromFile(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config %s: %w", path, err)
	}
	return LoadConfigFromBytes(data)
}

func LoadConfigFromBytes(data []byte) (*Config, error) {
	var cfg Config
	if err := toml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}
	cfg.SetDefault()
	return &cfg, nil
}
