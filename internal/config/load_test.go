package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testDatabaseURL = "postgres://nc:nc@localhost:5432/nc_news_test"

// clearEnv blanks every variable Load reads so tests start from defaults.
func clearEnv(t *testing.T) {
	t.Helper()
	for _, name := range []string{
		"NCNEWS_SERVER_PORT",
		"NCNEWS_SERVER_LOG_LEVEL",
		"NCNEWS_SERVER_LOG_FORMAT",
		"NCNEWS_SERVER_RATE_LIMIT_RPS",
		"NCNEWS_SERVER_CORS_ALLOWED_ORIGINS",
		"NCNEWS_DATABASE_URL",
		"NCNEWS_DATABASE_MAX_OPEN_CONNS",
		"NCNEWS_DOCS_ENDPOINTS_FILE",
		"DATABASE_URL",
	} {
		t.Setenv(name, "")
		require.NoError(t, os.Unsetenv(name))
	}
}

// TestLoadDefaults verifies the default values applied when only the
// database URL is provided.
func TestLoadDefaults(t *testing.T) {
	clearEnv(t)
	t.Setenv("NCNEWS_DATABASE_URL", testDatabaseURL)

	cfg, err := Load()
	require.NoError(t, err)
	require.NotNil(t, cfg)

	assert.Equal(t, 8080, cfg.Server.Port)
	assert.Equal(t, "info", cfg.Server.LogLevel)
	assert.Equal(t, "json", cfg.Server.LogFormat)
	assert.Equal(t, []string{"*"}, cfg.Server.CORSAllowedOrigins)
	assert.Zero(t, cfg.Server.RateLimitRPS)
	assert.Equal(t, 10, cfg.Database.MaxOpenConns)
	assert.Equal(t, 5, cfg.Database.MaxIdleConns)
	assert.Equal(t, "5m0s", cfg.Database.ConnMaxLifetime().String())
	assert.Equal(t, "10s", cfg.Server.ShutdownTimeout().String())
	assert.Empty(t, cfg.Docs.EndpointsFile)
}

// TestLoadFromEnv verifies that environment variables override defaults.
func TestLoadFromEnv(t *testing.T) {
	clearEnv(t)
	t.Setenv("NCNEWS_SERVER_PORT", "9090")
	t.Setenv("NCNEWS_SERVER_LOG_LEVEL", "debug")
	t.Setenv("NCNEWS_SERVER_RATE_LIMIT_RPS", "25.5")
	t.Setenv("NCNEWS_SERVER_CORS_ALLOWED_ORIGINS", "https://a.example,https://b.example")
	t.Setenv("NCNEWS_DATABASE_URL", testDatabaseURL)
	t.Setenv("NCNEWS_DATABASE_MAX_OPEN_CONNS", "20")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, 9090, cfg.Server.Port)
	assert.Equal(t, "debug", cfg.Server.LogLevel)
	assert.InDelta(t, 25.5, cfg.Server.RateLimitRPS, 0.001)
	assert.Equal(t, []string{"https://a.example", "https://b.example"}, cfg.Server.CORSAllowedOrigins)
	assert.Equal(t, testDatabaseURL, cfg.Database.URL)
	assert.Equal(t, 20, cfg.Database.MaxOpenConns)
}

// TestLoadPlainDatabaseURL verifies the conventional DATABASE_URL fallback.
func TestLoadPlainDatabaseURL(t *testing.T) {
	clearEnv(t)
	t.Setenv("DATABASE_URL", testDatabaseURL)

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, testDatabaseURL, cfg.Database.URL)
}

// TestLoadFromFile verifies values read from an explicit YAML file.
func TestLoadFromFile(t *testing.T) {
	clearEnv(t)

	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	content := "server:\n  port: 7000\n  log_format: text\ndatabase:\n  url: " + testDatabaseURL + "\n"
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))

	cfg, err := LoadFrom(path)
	require.NoError(t, err)
	assert.Equal(t, 7000, cfg.Server.Port)
	assert.Equal(t, "text", cfg.Server.LogFormat)
	assert.Equal(t, testDatabaseURL, cfg.Database.URL)

	t.Setenv("NCNEWS_SERVER_PORT", "7001")
	cfg, err = LoadFrom(path)
	require.NoError(t, err)
	assert.Equal(t, 7001, cfg.Server.Port, "environment should win over the file")
}

// TestLoadValidationErrors verifies that the Load function correctly validates the configuration.
func TestLoadValidationErrors(t *testing.T) {
	testCases := []struct {
		name    string
		envVars map[string]string
	}{
		{
			name:    "missing database url",
			envVars: map[string]string{},
		},
		{
			name: "invalid port number",
			envVars: map[string]string{
				"NCNEWS_SERVER_PORT":  "999999",
				"NCNEWS_DATABASE_URL": testDatabaseURL,
			},
		},
		{
			name: "invalid log level",
			envVars: map[string]string{
				"NCNEWS_SERVER_LOG_LEVEL": "chatty",
				"NCNEWS_DATABASE_URL":     testDatabaseURL,
			},
		},
		{
			name: "missing endpoints file",
			envVars: map[string]string{
				"NCNEWS_DOCS_ENDPOINTS_FILE": "/does/not/exist.json",
				"NCNEWS_DATABASE_URL":        testDatabaseURL,
			},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			clearEnv(t)
			for k, v := range tc.envVars {
				t.Setenv(k, v)
			}

			cfg, err := Load()
			require.Error(t, err)
			assert.Contains(t, err.Error(), "validation failed")
			assert.Nil(t, cfg)
		})
	}
}

func TestLoadFromMissingExplicitFile(t *testing.T) {
	clearEnv(t)
	t.Setenv("NCNEWS_DATABASE_URL", testDatabaseURL)

	_, err := LoadFrom(filepath.Join(t.TempDir(), "absent.yaml"))
	assert.Error(t, err)
}
