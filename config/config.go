package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/xraph/sidenav/errors"
	"github.com/xraph/sidenav/logger"
)

// EnvPrefix prefixes every environment override.
const EnvPrefix = "SIDENAV_"

// Config contains the sidenav server configuration.
type Config struct {
	// Server settings
	Addr            string        `json:"addr"             yaml:"addr"`
	Title           string        `json:"title"            yaml:"title"`
	ShutdownTimeout time.Duration `json:"shutdown_timeout" yaml:"shutdown_timeout"`

	// Navigation
	Manifest         string `json:"manifest"          yaml:"manifest"`
	DefaultCollapsed bool   `json:"default_collapsed" yaml:"default_collapsed"`
	ContentTarget    string `json:"content_target"    yaml:"content_target"` // htmx target for client-side links

	// Metrics
	EnableMetrics bool   `json:"enable_metrics" yaml:"enable_metrics"`
	MetricsPath   string `json:"metrics_path"   yaml:"metrics_path"`

	Logging logger.LoggingConfig `json:"logging" yaml:"logging"`
}

// DefaultConfig returns the default configuration.
func DefaultConfig() Config {
	return Config{
		Addr:            ":8080",
		Title:           "Sidenav",
		ShutdownTimeout: 10 * time.Second,

		Manifest:         "nav.yaml",
		DefaultCollapsed: false,
		ContentTarget:    "#content",

		EnableMetrics: true,
		MetricsPath:   "/metrics",

		Logging: logger.LoggingConfig{
			Level:       "info",
			Format:      "console",
			Environment: "development",
		},
	}
}

// Validate validates the configuration.
func (c Config) Validate() error {
	if c.Addr == "" {
		return errors.ErrInvalidConfig("addr", fmt.Errorf("cannot be empty"))
	}

	if c.ShutdownTimeout < 0 {
		return errors.ErrInvalidConfig("shutdown_timeout", fmt.Errorf("cannot be negative: %v", c.ShutdownTimeout))
	}

	if !strings.HasPrefix(c.ContentTarget, "#") && !strings.HasPrefix(c.ContentTarget, ".") {
		return errors.ErrInvalidConfig("content_target", fmt.Errorf("must be an id or class selector: %q", c.ContentTarget))
	}

	if c.EnableMetrics && !strings.HasPrefix(c.MetricsPath, "/") {
		return errors.ErrInvalidConfig("metrics_path", fmt.Errorf("must start with '/': %q", c.MetricsPath))
	}

	validFormats := map[string]bool{"": true, "console": true, "json": true}
	if !validFormats[c.Logging.Format] {
		return errors.ErrInvalidConfig("logging.format", fmt.Errorf("must be console or json: %q", c.Logging.Format))
	}

	return nil
}

// ConfigOption is a functional option for Config.
type ConfigOption func(*Config)

// WithAddr sets the listen address.
func WithAddr(addr string) ConfigOption {
	return func(c *Config) { c.Addr = addr }
}

// WithTitle sets the page title.
func WithTitle(title string) ConfigOption {
	return func(c *Config) { c.Title = title }
}

// WithManifest sets the navigation manifest path.
func WithManifest(path string) ConfigOption {
	return func(c *Config) { c.Manifest = path }
}

// WithDefaultCollapsed sets the collapsed state used when a request carries none.
func WithDefaultCollapsed(collapsed bool) ConfigOption {
	return func(c *Config) { c.DefaultCollapsed = collapsed }
}

// WithContentTarget sets the element client-side links swap into.
func WithContentTarget(selector string) ConfigOption {
	return func(c *Config) { c.ContentTarget = selector }
}

// WithMetrics enables or disables the metrics endpoint.
func WithMetrics(enabled bool) ConfigOption {
	return func(c *Config) { c.EnableMetrics = enabled }
}

// WithMetricsPath sets the metrics endpoint path.
func WithMetricsPath(path string) ConfigOption {
	return func(c *Config) { c.MetricsPath = path }
}

// WithShutdownTimeout sets the graceful shutdown timeout.
func WithShutdownTimeout(timeout time.Duration) ConfigOption {
	return func(c *Config) { c.ShutdownTimeout = timeout }
}

// WithLogging sets the logging configuration.
func WithLogging(lc logger.LoggingConfig) ConfigOption {
	return func(c *Config) { c.Logging = lc }
}

// New returns the default configuration with opts applied.
func New(opts ...ConfigOption) Config {
	c := DefaultConfig()
	for _, opt := range opts {
		opt(&c)
	}

	return c
}

// LoadFile reads a YAML file over the defaults. Environment variables in the
// file are expanded before decoding.
func LoadFile(path string) (Config, error) {
	c := DefaultConfig()

	data, err := os.ReadFile(path)
	if err != nil {
		return c, errors.ErrConfigError("failed to read config file "+path, err)
	}

	if err := yaml.Unmarshal([]byte(os.ExpandEnv(string(data))), &c); err != nil {
		return c, errors.ErrConfigError("failed to parse config file "+path, err)
	}

	return c, nil
}

// ApplyEnv overrides fields from SIDENAV_* environment variables.
func (c *Config) ApplyEnv() error {
	strs := map[string]*string{
		"ADDR":           &c.Addr,
		"TITLE":          &c.Title,
		"MANIFEST":       &c.Manifest,
		"CONTENT_TARGET": &c.ContentTarget,
		"METRICS_PATH":   &c.MetricsPath,
		"LOG_LEVEL":      &c.Logging.Level,
		"LOG_FORMAT":     &c.Logging.Format,
		"ENVIRONMENT":    &c.Logging.Environment,
	}
	for key, dst := range strs {
		if v, ok := os.LookupEnv(EnvPrefix + key); ok {
			*dst = v
		}
	}

	bools := map[string]*bool{
		"DEFAULT_COLLAPSED": &c.DefaultCollapsed,
		"ENABLE_METRICS":    &c.EnableMetrics,
	}
	for key, dst := range bools {
		v, ok := os.LookupEnv(EnvPrefix + key)
		if !ok {
			continue
		}

		b, err := strconv.ParseBool(v)
		if err != nil {
			return errors.ErrInvalidConfig(EnvPrefix+key, err)
		}

		*dst = b
	}

	if v, ok := os.LookupEnv(EnvPrefix + "SHUTDOWN_TIMEOUT"); ok {
		d, err := time.ParseDuration(v)
		if err != nil {
			return errors.ErrInvalidConfig(EnvPrefix+"SHUTDOWN_TIMEOUT", err)
		}

		c.ShutdownTimeout = d
	}

	return nil
}
