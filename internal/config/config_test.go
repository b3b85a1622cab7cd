package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfigFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.json")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoadConfig(t *testing.T) {
	path := writeConfigFile(t, `{
		"host": "127.0.0.1",
		"port": 9090,
		"file_delay_ms": 100,
		"analysis_delay_ms": 250,
		"seed": 7,
		"verbose": true
	}`)

	cfg, err := LoadConfig(path)
	require.NoError(t, err)

	assert.Equal(t, "127.0.0.1", cfg.Host)
	assert.Equal(t, 9090, cfg.Port)
	assert.Equal(t, 100, cfg.FileDelayMS)
	assert.Equal(t, 250, cfg.AnalysisDelayMS)
	assert.Equal(t, int64(7), cfg.Seed)
	assert.True(t, cfg.Verbose)
}

func TestLoadConfig_EmptyPath(t *testing.T) {
	_, err := LoadConfig("")
	assert.Error(t, err)
}

func TestLoadConfig_MissingFile(t *testing.T) {
	_, err := LoadConfig(filepath.Join(t.TempDir(), "nope.json"))
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "failed to read config file")
}

func TestLoadConfig_InvalidJSON(t *testing.T) {
	path := writeConfigFile(t, `{"port": not-a-number}`)

	_, err := LoadConfig(path)
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "failed to parse config JSON")
}

func TestValidate(t *testing.T) {
	cfg := &Config{Port: 8080, FileDelayMS: 100}
	assert.NoError(t, cfg.Validate())
}

func TestValidate_PortOutOfRange(t *testing.T) {
	cfg := &Config{Port: 70000}
	err := cfg.Validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "'port'")

	cfg = &Config{Port: -1}
	assert.Error(t, cfg.Validate())
}

func TestValidate_NegativeDelays(t *testing.T) {
	cases := map[string]Config{
		"file_delay_ms":     {FileDelayMS: -1},
		"linkedin_delay_ms": {LinkedInDelayMS: -1},
		"text_delay_ms":     {TextDelayMS: -1},
		"analysis_delay_ms": {AnalysisDelayMS: -1},
	}

	for field, cfg := range cases {
		err := cfg.Validate()
		require.Error(t, err, field)
		assert.Contains(t, err.Error(), field)
	}
}

func TestMergeWithDefaults(t *testing.T) {
	cfg := &Config{Port: 9090, Verbose: true}
	defaults := Config{
		Host:            "0.0.0.0",
		Port:            8080,
		FileDelayMS:     2000,
		LinkedInDelayMS: 1500,
		TextDelayMS:     1000,
		AnalysisDelayMS: 3000,
	}

	merged := cfg.MergeWithDefaults(defaults)

	assert.Equal(t, "0.0.0.0", merged.Host)
	assert.Equal(t, 9090, merged.Port, "explicit values win")
	assert.Equal(t, 2000, merged.FileDelayMS)
	assert.Equal(t, 1500, merged.LinkedInDelayMS)
	assert.Equal(t, 1000, merged.TextDelayMS)
	assert.Equal(t, 3000, merged.AnalysisDelayMS)
	assert.True(t, merged.Verbose, "bool fields are never merged")
}

func TestMergeWithDefaults_ExplicitValuesKept(t *testing.T) {
	cfg := &Config{Host: "localhost", FileDelayMS: 5, Seed: 42}
	merged := cfg.MergeWithDefaults(Config{Host: "0.0.0.0", FileDelayMS: 2000, Seed: 1})

	assert.Equal(t, "localhost", merged.Host)
	assert.Equal(t, 5, merged.FileDelayMS)
	assert.Equal(t, int64(42), merged.Seed)
}
