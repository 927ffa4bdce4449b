package config

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// setupEnv sets up environment variables for testing
func setupEnv(t *testing.T, envVars map[string]string) func() {
	// Save current environment values
	originalValues := make(map[string]string)
	for name := range envVars {
		originalValues[name] = os.Getenv(name)
	}

	// Set new environment variables
	for name, value := range envVars {
		if value == "" {
			require.NoError(t, os.Unsetenv(name))
			continue
		}
		require.NoError(t, os.Setenv(name, value), "Failed to set environment variable %s", name)
	}

	// Return cleanup function
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

// TestLoadDefaults verifies that Load sets the expected default values when
// no environment variables are set.
func TestLoadDefaults(t *testing.T) {
	cleanup := setupEnv(t, map[string]string{
		"TASKS_SERVER_PORT":      "",
		"TASKS_SERVER_LOG_LEVEL": "",
	})
	defer cleanup()

	cfg, err := Load()

	require.NoError(t, err, "Load() should not return an error with default values")
	require.NotNil(t, cfg)
	assert.Equal(t, 8080, cfg.Server.Port, "Default server port should be 8080")
	assert.Equal(t, "info", cfg.Server.LogLevel, "Default log level should be 'info'")
	assert.Equal(t, int64(1<<20), cfg.Server.MaxBodyBytes)
	assert.Equal(t, 4096, cfg.Server.BodyChunkBytes)
	assert.Equal(t, 10, cfg.Server.ShutdownTimeoutSeconds)
}

// TestLoadFromEnvironment verifies environment variables override defaults.
func TestLoadFromEnvironment(t *testing.T) {
	cleanup := setupEnv(t, map[string]string{
		"TASKS_SERVER_PORT":      "9090",
		"TASKS_SERVER_LOG_LEVEL": "debug",
	})
	defer cleanup()

	cfg, err := Load()

	require.NoError(t, err)
	assert.Equal(t, 9090, cfg.Server.Port)
	assert.Equal(t, "debug", cfg.Server.LogLevel)
}

// TestLoadValidation verifies that out-of-range values are rejected.
func TestLoadValidation(t *testing.T) {
	tests := []struct {
		name string
		env  map[string]string
	}{
		{
			name: "port out of range",
			env:  map[string]string{"TASKS_SERVER_PORT": "70000"},
		},
		{
			name: "unknown log level",
			env:  map[string]string{"TASKS_SERVER_LOG_LEVEL": "verbose"},
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			cleanup := setupEnv(t, tc.env)
			defer cleanup()

			_, err := Load()
			assert.Error(t, err)
		})
	}
}
