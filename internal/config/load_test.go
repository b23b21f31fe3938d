package config

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// setupEnv sets up environment variables for testing and returns a cleanup
// function that restores the previous values.
func setupEnv(t *testing.T, envVars map[string]string) func() {
	originalValues := make(map[string]string)
	for name := range envVars {
		originalValues[name] = os.Getenv(name)
	}

	for name, value := range envVars {
		if value == "" {
			require.NoError(t, os.Unsetenv(name))
			continue
		}
		require.NoError(t, os.Setenv(name, value), "Failed to set environment variable %s", name)
	}

	return func() {
		for name, value := range originalValues {
			if value == "" {
				os.Unsetenv(name)
			} else {
				os.Setenv(name, value)
			}
		}
	}
}

func TestLoadDefaults(t *testing.T) {
	cleanup := setupEnv(t, map[string]string{
		"METRICKIT_SERVER_PORT":      "",
		"METRICKIT_SERVER_LOG_LEVEL": "",
	})
	defer cleanup()

	cfg, err := Load()

	require.NoError(t, err, "Load() should not return an error with default values")
	require.NotNil(t, cfg)
	assert.Equal(t, 8080, cfg.Server.Port, "Default server port should be 8080")
	assert.Equal(t, "info", cfg.Server.LogLevel, "Default log level should be 'info'")
	assert.Equal(t, 10, cfg.Server.ShutdownTimeoutSeconds)
	assert.Equal(t, "https://metrickittools.com", cfg.Site.BaseURL)
}

func TestLoadRejectsInvalidBaseURL(t *testing.T) {
	cleanup := setupEnv(t, map[string]string{
		"METRICKIT_SITE_BASE_URL": "not a url",
	})
	defer cleanup()

	cfg, err := Load()

	require.Error(t, err)
	assert.Nil(t, cfg)
}

func TestLoadFromEnvironment(t *testing.T) {
	cleanup := setupEnv(t, map[string]string{
		"METRICKIT_SERVER_PORT":      "9090",
		"METRICKIT_SERVER_LOG_LEVEL": "debug",
	})
	defer cleanup()

	cfg, err := Load()

	require.NoError(t, err)
	assert.Equal(t, 9090, cfg.Server.Port)
	assert.Equal(t, "debug", cfg.Server.LogLevel)
}

func TestLoadRejectsInvalidLogLevel(t *testing.T) {
	cleanup := setupEnv(t, map[string]string{
		"METRICKIT_SERVER_LOG_LEVEL": "verbose",
	})
	defer cleanup()

	cfg, err := Load()

	require.Error(t, err)
	assert.Nil(t, cfg)
	assert.Contains(t, err.Error(), "invalid configuration")
}

func TestLoadRejectsInvalidPort(t *testing.T) {
	cleanup := setupEnv(t, map[string]string{
		"METRICKIT_SERVER_PORT":      "70000",
		"METRICKIT_SERVER_LOG_LEVEL": "info",
	})
	defer cleanup()

	cfg, err := Load()

	require.Error(t, err)
	assert.Nil(t, cfg)
}
