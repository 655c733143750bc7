package host

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/yourusername/arpalette/store"
)

// Config holds the host configuration.
type Config struct {
	// Listen is the HTTP listen address
	Listen string `yaml:"listen"`

	// Storage selects where the configuration document is kept
	Storage store.Config `yaml:"storage"`

	// LoopInterval is how often the periodic hook runs
	// Format: "50ms", "1s", "0" to disable
	LoopInterval string `yaml:"loop_interval,omitempty"`

	// Watch reloads the configuration document when its file changes.
	// Only meaningful with the file backend.
	Watch bool `yaml:"watch,omitempty"`

	// LogLevel is one of debug, info, warn, error
	LogLevel string `yaml:"log_level,omitempty"`

	// Disabled lists modules, by name, that start with their gate off
	Disabled []string `yaml:"disabled,omitempty"`
}

// NewConfig creates a new Config with sensible defaults.
func NewConfig() *Config {
	return &Config{
		Listen:       ":8080",
		Storage:      store.DefaultConfig(),
		LoopInterval: "1s",
		LogLevel:     "info",
	}
}

// LoadConfigFromFile loads configuration from a YAML file.
// Keys absent from the file keep their NewConfig defaults.
func LoadConfigFromFile(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to read config file: %v", ErrInvalidConfig, err)
	}

	config := NewConfig()
	if err := yaml.Unmarshal(data, config); err != nil {
		return nil, fmt.Errorf("%w: failed to parse YAML: %v", ErrInvalidConfig, err)
	}

	if err := config.Validate(); err != nil {
		return nil, err
	}

	return config, nil
}

// Validate checks if the configuration is valid.
func (c *Config) Validate() error {
	if c.Listen == "" {
		return fmt.Errorf("%w: listen address is required", ErrInvalidConfig)
	}
	if err := c.Storage.Validate(); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidConfig, err)
	}
	if _, err := c.Interval(); err != nil {
		return err
	}
	if c.Watch && c.Storage.Backend != store.BackendFile {
		return fmt.Errorf("%w: watch requires the file backend", ErrInvalidConfig)
	}
	switch c.LogLevel {
	case "", "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("%w: unknown log level %q", ErrInvalidConfig, c.LogLevel)
	}
	return nil
}

// Interval parses LoopInterval. An empty value means the default of one second.
func (c *Config) Interval() (time.Duration, error) {
	if c.LoopInterval == "" {
		return time.Second, nil
	}
	d, err := time.ParseDuration(c.LoopInterval)
	if err != nil {
		return 0, fmt.Errorf("%w: invalid loop_interval: %v", ErrInvalidConfig, err)
	}
	if d < 0 {
		return 0, fmt.Errorf("%w: loop_interval cannot be negative", ErrInvalidConfig)
	}
	return d, nil
}
