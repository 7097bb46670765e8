package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

const (
	DefaultAPIBaseURL   = "https://cloud.iexapis.com/stable"
	DefaultRefreshDelay = time.Minute
	MinRefreshDelay     = time.Second
	DefaultLogLevel     = "warn"
	DefaultCurrency     = "USD"
	DefaultLocale       = "en-US"
	portfolioFileName   = "portfolio.yaml"
	configFileName      = "config.yaml"
	appDirName          = "folio"
	envPortfolioPath    = "FOLIO_PORTFOLIO"
	envAPIBaseURL       = "FOLIO_API_BASE_URL"
	envRefreshDelay     = "FOLIO_REFRESH_DELAY"
	envLogLevel         = "FOLIO_LOG_LEVEL"
	envLocale           = "FOLIO_LOCALE"
)

// Config holds the CLI configuration.
type Config struct {
	PortfolioPath   string        `yaml:"portfolio_path,omitempty"`
	APIBaseURL      string        `yaml:"api_base_url"`
	RefreshDelay    time.Duration `yaml:"refresh_delay"`
	LogLevel        string        `yaml:"log_level"`
	Locale          string        `yaml:"locale,omitempty"`
	DefaultCurrency string        `yaml:"default_currency"`
}

// DefaultConfig returns a configuration with all defaults applied.
func DefaultConfig() *Config {
	return &Config{
		PortfolioPath:   DefaultPortfolioPath(),
		APIBaseURL:      DefaultAPIBaseURL,
		RefreshDelay:    DefaultRefreshDelay,
		LogLevel:        DefaultLogLevel,
		Locale:          localeFromEnv(),
		DefaultCurrency: DefaultCurrency,
	}
}

// ConfigDir returns the folio configuration directory.
// Uses XDG_CONFIG_HOME if set, otherwise ~/.config/folio.
func ConfigDir() string {
	if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
		return filepath.Join(xdg, appDirName)
	}
	home, _ := os.UserHomeDir()
	return filepath.Join(home, ".config", appDirName)
}

// ConfigPath returns the path to the config file.
func ConfigPath() string {
	return filepath.Join(ConfigDir(), configFileName)
}

// DefaultPortfolioPath returns the path of the portfolio file when none is configured.
func DefaultPortfolioPath() string {
	return filepath.Join(ConfigDir(), portfolioFileName)
}

// LoadEnv loads a .env file from the working directory if one exists.
func LoadEnv() {
	_ = godotenv.Load()
}

// Load reads the config file at path. A missing file yields the defaults.
// Environment overrides are applied after the file is read.
func Load(path string) (*Config, error) {
	cfg := DefaultConfig()

	data, err := os.ReadFile(path)
	if err != nil && !os.IsNotExist(err) {
		return nil, fmt.Errorf("failed to read config: %w", err)
	}
	if err == nil {
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("failed to parse config %s: %w", path, err)
		}
	}

	if err := cfg.applyEnv(); err != nil {
		return nil, err
	}
	cfg.fillDefaults()

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Save writes the config to path, creating parent directories as needed.
func Save(path string, cfg *Config) error {
	if err := os.MkdirAll(filepath.Dir(path), 0700); err != nil {
		return err
	}
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0600)
}

// Validate checks the configuration for values the CLI cannot work with.
func (c *Config) Validate() error {
	if c.RefreshDelay < MinRefreshDelay {
		return fmt.Errorf("refresh_delay must be at least %s, got %s", MinRefreshDelay, c.RefreshDelay)
	}
	if c.APIBaseURL == "" {
		return fmt.Errorf("api_base_url is required")
	}
	return nil
}

func (c *Config) applyEnv() error {
	if v := os.Getenv(envPortfolioPath); v != "" {
		c.PortfolioPath = v
	}
	if v := os.Getenv(envAPIBaseURL); v != "" {
		c.APIBaseURL = v
	}
	if v := os.Getenv(envLogLevel); v != "" {
		c.LogLevel = v
	}
	if v := os.Getenv(envLocale); v != "" {
		c.Locale = v
	}
	if v := os.Getenv(envRefreshDelay); v != "" {
		d, err := time.ParseDuration(v)
		if err != nil {
			return fmt.Errorf("invalid %s %q: %w", envRefreshDelay, v, err)
		}
		c.RefreshDelay = d
	}
	return nil
}

// fillDefaults restores defaults for fields a partial file left empty.
func (c *Config) fillDefaults() {
	if c.PortfolioPath == "" {
		c.PortfolioPath = DefaultPortfolioPath()
	}
	if c.APIBaseURL == "" {
		c.APIBaseURL = DefaultAPIBaseURL
	}
	if c.RefreshDelay == 0 {
		c.RefreshDelay = DefaultRefreshDelay
	}
	if c.LogLevel == "" {
		c.LogLevel = DefaultLogLevel
	}
	if c.Locale == "" {
		c.Locale = localeFromEnv()
	}
	if c.DefaultCurrency == "" {
		c.DefaultCurrency = DefaultCurrency
	}
	c.DefaultCurrency = strings.ToUpper(c.DefaultCurrency)
}

// localeFromEnv turns LANG (e.g. "de_DE.UTF-8") into a BCP-47 tag ("de-DE").
func localeFromEnv() string {
	lang := os.Getenv("LC_ALL")
	if lang == "" {
		lang = os.Getenv("LANG")
	}
	if i := strings.IndexAny(lang, ".@"); i >= 0 {
		lang = lang[:i]
	}
	if lang == "" || lang == "C" || lang == "POSIX" {
		return DefaultLocale
	}
	return strings.ReplaceAll(lang, "_", "-")
}
