package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/caarlos0/env/v9"
	"github.com/pelletier/go-toml/v2"
)

// Defaults
const (
	DefaultAPIURL         = "https://api.github.com/search/users"
	DefaultPerPage        = 20
	DefaultMinQueryLength = 3
	DefaultDebounceMs     = 2000
	DefaultRequestTimeout = 15000
	DefaultToastMs        = 3000
	DefaultLogFile        = "ghseek.log"
	DefaultLogLevel       = "info"

	// MaxPerPage is the largest page size the search API accepts
	MaxPerPage = 100
)

// Config represents the application configuration
type Config struct {
	Version int            `toml:"version"`
	Search  SearchSettings `toml:"search"`
	UI      UISettings     `toml:"ui"`
	Log     LogSettings    `toml:"log"`
}

// SearchSettings configures the remote search endpoint and input pacing
type SearchSettings struct {
	APIURL           string `toml:"api_url" env:"GHSEEK_API_URL"`
	PerPage          int    `toml:"per_page" env:"GHSEEK_PER_PAGE"`
	MinQueryLength   int    `toml:"min_query_length" env:"GHSEEK_MIN_QUERY_LENGTH"`
	DebounceMs       int    `toml:"debounce_ms" env:"GHSEEK_DEBOUNCE_MS"`
	RequestTimeoutMs int    `toml:"request_timeout_ms" env:"GHSEEK_REQUEST_TIMEOUT_MS"`
}

// UISettings represents UI-related configuration
type UISettings struct {
	ToastMs   int  `toml:"toast_ms" env:"GHSEEK_TOAST_MS"`
	OpenLinks bool `toml:"open_links" env:"GHSEEK_OPEN_LINKS"`
	AltScreen bool `toml:"alt_screen" env:"GHSEEK_ALT_SCREEN"`
}

// LogSettings configures the log file
type LogSettings struct {
	File  string `toml:"file" env:"GHSEEK_LOG_FILE"`
	Level string `toml:"level" env:"GHSEEK_LOG_LEVEL"`
}

// Debounce returns the quiet period before a query settles
func (c *Config) Debounce() time.Duration {
	return time.Duration(c.Search.DebounceMs) * time.Millisecond
}

// RequestTimeout returns the timeout applied to a single page request
func (c *Config) RequestTimeout() time.Duration {
	return time.Duration(c.Search.RequestTimeoutMs) * time.Millisecond
}

// ToastDuration returns how long an error notification stays visible
func (c *Config) ToastDuration() time.Duration {
	return time.Duration(c.UI.ToastMs) * time.Millisecond
}

// Validate checks that all values are usable
func (c *Config) Validate() error {
	var errs []error
	if c.Search.APIURL == "" {
		errs = append(errs, errors.New("search.api_url must not be empty"))
	}
	if c.Search.PerPage < 1 || c.Search.PerPage > MaxPerPage {
		errs = append(errs, fmt.Errorf("search.per_page must be between 1 and %d, got %d", MaxPerPage, c.Search.PerPage))
	}
	if c.Search.MinQueryLength < 1 {
		errs = append(errs, fmt.Errorf("search.min_query_length must be positive, got %d", c.Search.MinQueryLength))
	}
	if c.Search.DebounceMs <= 0 {
		errs = append(errs, fmt.Errorf("search.debounce_ms must be positive, got %d", c.Search.DebounceMs))
	}
	if c.Search.RequestTimeoutMs <= 0 {
		errs = append(errs, fmt.Errorf("search.request_timeout_ms must be positive, got %d", c.Search.RequestTimeoutMs))
	}
	if c.UI.ToastMs <= 0 {
		errs = append(errs, fmt.Errorf("ui.toast_ms must be positive, got %d", c.UI.ToastMs))
	}
	return errors.Join(errs...)
}

// DefaultConfig returns the default configuration
func DefaultConfig() *Config {
	return &Config{
		Version: 1,
		Search: SearchSettings{
			APIURL:           DefaultAPIURL,
			PerPage:          DefaultPerPage,
			MinQueryLength:   DefaultMinQueryLength,
			DebounceMs:       DefaultDebounceMs,
			RequestTimeoutMs: DefaultRequestTimeout,
		},
		UI: UISettings{
			ToastMs:   DefaultToastMs,
			OpenLinks: true,
			AltScreen: true,
		},
		Log: LogSettings{
			File:  DefaultLogFile,
			Level: DefaultLogLevel,
		},
	}
}

// ConfigService handles configuration management
type ConfigService interface {
	// LoadOrCreate reads the file at path, writing defaults there first
	// when it does not exist. Environment overrides are applied on top.
	// created reports whether the file was written.
	LoadOrCreate(path string) (cfg *Config, created bool, err error)
	LoadFromPath(path string) (*Config, error)
	SaveToPath(cfg *Config, path string) error
}

// configService is the concrete implementation
type configService struct{}

// NewConfigService creates a new config service
func NewConfigService() ConfigService {
	return &configService{}
}

// DefaultPath returns the per-user config file location
func DefaultPath() string {
	configDir, err := os.UserConfigDir()
	if err != nil {
		configDir, err = os.UserHomeDir()
		if err != nil {
			configDir = "."
		}
		configDir = filepath.Join(configDir, ".config")
	}
	return filepath.Join(configDir, "ghseek", "config.toml")
}

// LoadOrCreate loads configuration, creating the file with defaults if needed
func (cs *configService) LoadOrCreate(path string) (*Config, bool, error) {
	created := false
	var cfg *Config

	if _, err := os.Stat(path); errors.Is(err, os.ErrNotExist) {
		cfg = DefaultConfig()
		if err := cs.SaveToPath(cfg, path); err != nil {
			return nil, false, err
		}
		created = true
	} else {
		cfg, err = cs.LoadFromPath(path)
		if err != nil {
			return nil, false, err
		}
	}

	if err := ApplyEnv(cfg); err != nil {
		return nil, false, err
	}
	return cfg, created, nil
}

// LoadFromPath loads configuration from a specific path. Keys missing from
// the file keep their default values.
func (cs *configService) LoadFromPath(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, fmt.Errorf("config file not found: %s", path)
		}
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	cfg := DefaultConfig()
	if err := toml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}
	return cfg, nil
}

// SaveToPath saves configuration to a specific path
func (cs *configService) SaveToPath(cfg *Config, path string) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	data, err := toml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}
	return nil
}

// ApplyEnv overrides values from GHSEEK_* environment variables. Unset
// variables leave the current values untouched.
func ApplyEnv(cfg *Config) error {
	if err := env.Parse(cfg); err != nil {
		return fmt.Errorf("failed to parse environment: %w", err)
	}
	return nil
}
