package config

import (
	"fmt"
	"net/url"
)

var validLogLevels = map[string]bool{
	"debug": true, "info": true, "warn": true, "error": true, "": true,
}

// Validate checks the configuration for errors.
// Returns a slice of error messages (empty if valid).
func (c *Config) Validate() []string {
	var errs []string

	if !validLogLevels[c.LogLevel] {
		errs = append(errs, fmt.Sprintf("log_level: must be one of debug, info, warn, error; got %q", c.LogLevel))
	}

	for name, u := range map[string]string{
		"api.catalogue_url": c.API.CatalogueURL,
		"api.player_url":    c.API.PlayerURL,
	} {
		if u == "" {
			continue
		}
		parsed, err := url.Parse(u)
		if err != nil || parsed.Scheme == "" || parsed.Host == "" {
			errs = append(errs, fmt.Sprintf("%s: not a valid URL: %q", name, u))
		}
	}

	for _, region := range c.Extractor.Regions {
		if region == "" {
			errs = append(errs, "extractor.regions: empty region code")
		}
	}

	return errs
}
