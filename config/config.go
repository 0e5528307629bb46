package config

import (
	"errors"
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"

	"appstore-finder/similarity"
	"appstore-finder/stoplist"
)

// ErrInvalidConfig is returned when a configuration value is out of range
var ErrInvalidConfig = errors.New("invalid configuration")

// DefaultUserAgent is sent with every request unless overridden
const DefaultUserAgent = "Mozilla/5.0 (Windows NT 6.1) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/41.0.2228.0 Safari/537.36"

// Config represents the finder configuration
type Config struct {
	Threshold int `yaml:"threshold"`

	Stopwords struct {
		File  string   `yaml:"file"`  // Optional YAML file with a "terms" list
		Extra []string `yaml:"extra"` // Added on top of the built-in English list
	} `yaml:"stopwords"`

	Fetch struct {
		UserAgent string        `yaml:"user_agent"`
		Timeout   time.Duration `yaml:"timeout"`
		Delay     time.Duration `yaml:"delay"` // Pause between consecutive pages
		Browser   bool          `yaml:"browser"`
	} `yaml:"fetch"`
}

// LoadConfig loads configuration from a YAML file. Fields missing from the
// file keep their default values.
func LoadConfig(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	cfg := GetDefaultConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// GetDefaultConfig returns a default configuration
func GetDefaultConfig() *Config {
	cfg := &Config{}
	cfg.Threshold = similarity.DefaultThreshold
	cfg.Fetch.UserAgent = DefaultUserAgent
	cfg.Fetch.Timeout = 3 * time.Second
	cfg.Fetch.Delay = 500 * time.Millisecond
	cfg.Fetch.Browser = false
	return cfg
}

// Validate checks that all values are usable
func (c *Config) Validate() error {
	if c.Threshold < 0 || c.Threshold > 100 {
		return fmt.Errorf("%w: threshold must be between 0 and 100, got %d", ErrInvalidConfig, c.Threshold)
	}
	if c.Fetch.Timeout < 0 {
		return fmt.Errorf("%w: fetch timeout must not be negative", ErrInvalidConfig)
	}
	if c.Fetch.Delay < 0 {
		return fmt.Errorf("%w: fetch delay must not be negative", ErrInvalidConfig)
	}
	return nil
}

// StopwordSet builds the stopword set: the English list, the optional file
// and any extra words
func (c *Config) StopwordSet() (*stoplist.Set, error) {
	lists := [][]string{stoplist.English}

	if c.Stopwords.File != "" {
		terms, err := stoplist.Load(c.Stopwords.File)
		if err != nil {
			return nil, fmt.Errorf("load stopwords: %w", err)
		}
		lists = append(lists, terms)
	}

	lists = append(lists, c.Stopwords.Extra)
	return stoplist.New(lists...), nil
}
