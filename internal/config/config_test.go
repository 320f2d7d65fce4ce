package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	assert.Equal(t, "c", cfg.API.Lang)
	assert.Equal(t, []string{"WW", "UK"}, cfg.Extractor.Regions)
	assert.Equal(t, "./data/clic.db", cfg.Database.Path)
	assert.Equal(t, "info", cfg.LogLevel)
	assert.Empty(t, cfg.API.CatalogueURL, "catalogue URL defaults live in the client")
}

func TestApplyDefaults_PreservesSetValues(t *testing.T) {
	cfg := &Config{
		API:       APIConfig{Lang: "e"},
		Extractor: ExtractorConfig{Regions: []string{"UK"}},
		LogLevel:  "debug",
	}
	cfg.applyDefaults()

	assert.Equal(t, "e", cfg.API.Lang)
	assert.Equal(t, []string{"UK"}, cfg.Extractor.Regions)
	assert.Equal(t, "debug", cfg.LogLevel)
	assert.Equal(t, "./data/clic.db", cfg.Database.Path)
}
