package config

import (
	"errors"
	"fmt"
	"net/url"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/Masterminds/semver/v3"

	"github.com/rshade/licensedesk/internal/customers"
)

// Environment variables that override the config file.
const (
	EnvConfigPath = "LICENSEDESK_CONFIG"
	EnvAPIURL     = "LICENSEDESK_API_URL"
	EnvToken      = "LICENSEDESK_TOKEN"
	EnvLogLevel   = "LICENSEDESK_LOG_LEVEL"
	EnvLogFormat  = "LICENSEDESK_LOG_FORMAT"
)

// Defaults.
const (
	DefaultAPIURL      = "http://localhost:8080/api"
	DefaultTimeout     = 15 * time.Second
	DefaultDebounce    = 300 * time.Millisecond
	DefaultPageHeight  = 20
	DefaultSessionTTL  = 12 * time.Hour
	DefaultLogLevel    = "info"
	DefaultLogFormat   = "json"
	defaultDirName     = ".licensedesk"
	configFileName     = "config.yaml"
	logFileName        = "licensedesk.log"
	sessionFileName    = "session.json"
	outputTypeFile     = "file"
	outputTypeStderr   = "stderr"
	minDebounce        = 0
	maxDebounce        = 5 * time.Second
	minPageHeight      = 3
)

// Config is the effective configuration of a licensedesk invocation.
type Config struct {
	API     APIConfig     `yaml:"api"`
	List    ListConfig    `yaml:"list"`
	Logging LoggingConfig `yaml:"logging"`
	Session SessionConfig `yaml:"session"`
}

// APIConfig describes the licensing backend.
type APIConfig struct {
	BaseURL    string   `yaml:"base_url"`
	Timeout    Duration `yaml:"timeout"`
	MinVersion string   `yaml:"min_version,omitempty"`

	// Token is only ever read from the environment; it is never written to disk.
	Token string `yaml:"-"`
}

// ListConfig tunes the interactive customer list.
type ListConfig struct {
	Debounce      Duration `yaml:"debounce"`
	DefaultStatus string   `yaml:"default_status"`
	PageHeight    int      `yaml:"page_height"`
}

// LoggingConfig controls log level, format and destination.
type LoggingConfig struct {
	Level  string `yaml:"level"`
	Format string `yaml:"format"`
	File   string `yaml:"file,omitempty"`
}

// SessionConfig controls where the bearer token is kept and for how long.
type SessionConfig struct {
	File string   `yaml:"file"`
	TTL  Duration `yaml:"ttl"`
}

// DefaultDir returns ~/.licensedesk, or ./.licensedesk when the home directory is unknown.
func DefaultDir() string {
	home, err := os.UserHomeDir()
	if err != nil || home == "" {
		return defaultDirName
	}
	return filepath.Join(home, defaultDirName)
}

// New returns the built-in defaults.
func New() *Config {
	dir := DefaultDir()
	return &Config{
		API: APIConfig{
			BaseURL: DefaultAPIURL,
			Timeout: Duration(DefaultTimeout),
		},
		List: ListConfig{
			Debounce:      Duration(DefaultDebounce),
			DefaultStatus: string(customers.StatusActive),
			PageHeight:    DefaultPageHeight,
		},
		Logging: LoggingConfig{
			Level:  DefaultLogLevel,
			Format: DefaultLogFormat,
			File:   filepath.Join(dir, "logs", logFileName),
		},
		Session: SessionConfig{
			File: filepath.Join(dir, sessionFileName),
			TTL:  Duration(DefaultSessionTTL),
		},
	}
}

// Path returns the config file location, honouring LICENSEDESK_CONFIG.
func Path(lookupEnv func(string) (string, bool)) string {
	if p, ok := lookupEnv(EnvConfigPath); ok && p != "" {
		return p
	}
	return filepath.Join(DefaultDir(), configFileName)
}

// ApplyEnv overrides values from environment variables.
func (c *Config) ApplyEnv(lookupEnv func(string) (string, bool)) {
	if v, ok := lookupEnv(EnvAPIURL); ok && v != "" {
		c.API.BaseURL = v
	}
	if v, ok := lookupEnv(EnvToken); ok && v != "" {
		c.API.Token = v
	}
	if v, ok := lookupEnv(EnvLogLevel); ok && v != "" {
		c.Logging.Level = v
	}
	if v, ok := lookupEnv(EnvLogFormat); ok && v != "" {
		c.Logging.Format = v
	}
}

// DefaultFilter returns the filter the customer list starts with.
func (c *Config) DefaultFilter() customers.FilterState {
	f := customers.DefaultFilter()
	if st, err := customers.ParseStatus(c.List.DefaultStatus); err == nil {
		f.Status = st
	}
	return f
}

// Validate checks the configuration for values that would make the client misbehave.
func (c *Config) Validate() error {
	var errs []error

	u, err := url.Parse(c.API.BaseURL)
	switch {
	case c.API.BaseURL == "":
		errs = append(errs, errors.New("api.base_url is required"))
	case err != nil:
		errs = append(errs, fmt.Errorf("api.base_url: %w", err))
	case u.Scheme != "http" && u.Scheme != "https":
		errs = append(errs, fmt.Errorf("api.base_url must use http or https, got %q", u.Scheme))
	case u.Host == "":
		errs = append(errs, fmt.Errorf("api.base_url has no host: %q", c.API.BaseURL))
	}

	if c.API.Timeout.Duration() <= 0 {
		errs = append(errs, fmt.Errorf("api.timeout must be > 0, got %s", c.API.Timeout))
	}
	if c.API.MinVersion != "" {
		if _, verErr := semver.NewConstraint(c.API.MinVersion); verErr != nil {
			errs = append(errs, fmt.Errorf("api.min_version: %w", verErr))
		}
	}

	if d := c.List.Debounce.Duration(); d < minDebounce || d > maxDebounce {
		errs = append(errs, fmt.Errorf("list.debounce must be between 0 and %s, got %s", maxDebounce, c.List.Debounce))
	}
	if _, stErr := customers.ParseStatus(c.List.DefaultStatus); stErr != nil {
		errs = append(errs, fmt.Errorf("list.default_status: %w", stErr))
	}
	if c.List.PageHeight < minPageHeight {
		errs = append(errs, fmt.Errorf("list.page_height must be >= %d, got %d", minPageHeight, c.List.PageHeight))
	}

	switch strings.ToLower(c.Logging.Format) {
	case "json", "console":
	default:
		errs = append(errs, fmt.Errorf("logging.format must be json or console, got %q", c.Logging.Format))
	}

	if c.Session.TTL.Duration() <= 0 {
		errs = append(errs, fmt.Errorf("session.ttl must be > 0, got %s", c.Session.TTL))
	}

	return errors.Join(errs...)
}
