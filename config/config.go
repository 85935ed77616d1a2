// Package config loads user settings from ~/.medium-reader/config.yaml.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/fwojciec/mread"
	"gopkg.in/yaml.v3"
)

// EnvPath names the environment variable that overrides the config path.
const EnvPath = "MEDIUM_READER_CONFIG"

// Output formats.
const (
	FormatHTML     = "html"
	FormatMarkdown = "markdown"
)

// Metadata enrichment extractors.
const (
	EnrichNone        = "none"
	EnrichReadability = "readability"
	EnrichTrafilatura = "trafilatura"
)

// Proxy is an alternate fetch source tried when the direct fetch fails or
// is truncated. The article URL is appended to Prefix.
type Proxy struct {
	Name   string `yaml:"name"`
	Prefix string `yaml:"prefix"`
}

// Thresholds mirror the extraction length guards.
type Thresholds struct {
	BodyMinChars           int `yaml:"body_min_chars"`
	StructuredBodyMinChars int `yaml:"structured_body_min_chars"`
	PaywallBodyMaxChars    int `yaml:"paywall_body_max_chars"`
	PaywallPageMaxChars    int `yaml:"paywall_page_max_chars"`
	EllipsisWindow         int `yaml:"ellipsis_window"`
}

// Storage configures where articles are written.
type Storage struct {
	// Dir defaults to ~/.medium-reader/articles when empty.
	Dir string `yaml:"dir"`
}

// Config represents the structure of the config file.
type Config struct {
	Timeout    time.Duration `yaml:"timeout"`
	UserAgent  string        `yaml:"user_agent"`
	RateLimit  float64       `yaml:"rate_limit"`
	Browser    bool          `yaml:"browser"`
	Enrichment string        `yaml:"enrichment"`
	Format     string        `yaml:"format"`
	Storage    Storage       `yaml:"storage"`
	Proxies    []Proxy       `yaml:"proxies"`
	Thresholds Thresholds    `yaml:"thresholds"`
}

// Default returns the built-in configuration.
func Default() *Config {
	return &Config{
		Timeout:    30 * time.Second,
		Enrichment: EnrichNone,
		Format:     FormatHTML,
		Proxies: []Proxy{
			{Name: "freedium", Prefix: "https://freedium.cfd/"},
			{Name: "freedium-mirror", Prefix: "https://freedium-mirror.cfd/"},
		},
		Thresholds: Thresholds{
			BodyMinChars:           500,
			StructuredBodyMinChars: 200,
			PaywallBodyMaxChars:    2000,
			PaywallPageMaxChars:    3000,
			EllipsisWindow:         100,
		},
	}
}

// DefaultPath returns the config path: $MEDIUM_READER_CONFIG if set,
// otherwise ~/.medium-reader/config.yaml.
func DefaultPath(getenv func(string) string) (string, error) {
	if path := getenv(EnvPath); path != "" {
		return path, nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to get user home directory: %w", err)
	}
	return filepath.Join(home, ".medium-reader", "config.yaml"), nil
}

// Load reads the config file at path over the defaults. A missing file is
// not an error and yields Default(). A file that exists but cannot be
// parsed or holds invalid values is an error.
func Load(path string) (*Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	if errors.Is(err, os.ErrNotExist) {
		return cfg, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, mread.Errorf(mread.EINVALID, "failed to parse config file %s: %v", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate returns an error if the config contains invalid values.
func (c *Config) Validate() error {
	if c.Timeout <= 0 {
		return mread.Errorf(mread.EINVALID, "timeout must be positive")
	}
	if c.RateLimit < 0 {
		return mread.Errorf(mread.EINVALID, "rate_limit must not be negative")
	}
	switch c.Format {
	case FormatHTML, FormatMarkdown:
	default:
		return mread.Errorf(mread.EINVALID, "unknown format %q", c.Format)
	}
	switch c.Enrichment {
	case EnrichNone, EnrichReadability, EnrichTrafilatura:
	default:
		return mread.Errorf(mread.EINVALID, "unknown enrichment %q", c.Enrichment)
	}
	for _, p := range c.Proxies {
		if p.Name == "" || p.Prefix == "" {
			return mread.Errorf(mread.EINVALID, "proxy requires name and prefix")
		}
	}
	return nil
}
