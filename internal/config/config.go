// Package config handles TOML configuration loading with environment variable substitution.
package config

import (
	"fmt"
	"os"
	"regexp"

	"github.com/BurntSushi/toml"
)

// Config is the root configuration structure.
type Config struct {
	API       APIConfig       `toml:"api"`
	Extractor ExtractorConfig `toml:"extractor"`
	Database  DatabaseConfig  `toml:"database"`
	LogLevel  string          `toml:"log_level"`
}

// APIConfig locates the upstream Clic services. Empty URLs mean the
// production endpoints.
type APIConfig struct {
	CatalogueURL string `toml:"catalogue_url"`
	PlayerURL    string `toml:"player_url"`
	Lang         string `toml:"lang"`
}

// ExtractorConfig tunes record resolution.
type ExtractorConfig struct {
	Regions []string `toml:"regions"`
}

type DatabaseConfig struct {
	Path string `toml:"path"`
}

// applyDefaults fills unset fields with their defaults.
func (c *Config) applyDefaults() {
	if c.API.Lang == "" {
		c.API.Lang = "c"
	}
	if len(c.Extractor.Regions) == 0 {
		c.Extractor.Regions = []string{"WW", "UK"}
	}
	if c.Database.Path == "" {
		c.Database.Path = "./data/clic.db"
	}
	if c.LogLevel == "" {
		c.LogLevel = "info"
	}
}

// Load reads and parses the configuration file.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading config: %w", err)
	}

	// Substitute environment variables
	content, missing := substituteEnvVars(string(data))

	var cfg Config
	if _, err := toml.Decode(content, &cfg); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}

	cfg.applyDefaults()

	cfgErr := &ConfigError{
		Path:    path,
		Missing: missing,
		Errors:  cfg.Validate(),
	}
	if cfgErr.HasErrors() {
		return nil, cfgErr
	}

	return &cfg, nil
}

// DefaultConfig returns the configuration used when no config file exists.
func DefaultConfig() *Config {
	cfg := &Config{}
	cfg.applyDefaults()
	return cfg
}

// substituteEnvVars replaces ${VAR_NAME} with environment variable values.
// Unset variables are left in place and reported in the second return value.
var envVarPattern = regexp.MustCompile(`\$\{([^}]+)\}`)

func substituteEnvVars(content string) (string, []string) {
	var missing []string
	out := envVarPattern.ReplaceAllStringFunc(content, func(match string) string {
		varName := match[2 : len(match)-1] // Strip ${ and }
		if value, ok := os.LookupEnv(varName); ok {
			return value
		}
		missing = append(missing, varName)
		return match
	})
	return out, missing
}
