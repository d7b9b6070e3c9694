package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewConfig(t *testing.T) {
	// Test with default values (without config file)
	provider := NewFileConfigProvider("nonexistent.yaml")
	config, err := NewConfigWithProvider(provider)
	require.NoError(t, err)
	assert.NotNil(t, config)

	assert.Equal(t, "precip-viewer", config.App.Name)
	assert.Equal(t, "1.0.0", config.App.Version)
	assert.Equal(t, "development", config.App.Env)
	assert.Equal(t, "Kosovo", config.App.Region)
	assert.Equal(t, "http://localhost:8000", config.Provider.BaseURL)
	assert.Zero(t, config.Provider.Timeout)
	assert.Equal(t, "8000", config.Stub.Port)
	assert.Equal(t, 10*time.Second, config.Stub.ReadTimeout)
	assert.Equal(t, "info", config.Log.Level)
	assert.Equal(t, "precip-viewer.log", config.Log.File)
	assert.Empty(t, config.Sentry.DSN)
}

func TestConfigWithEnvironmentVariables(t *testing.T) {
	t.Setenv("APP_NAME", "test-app")
	t.Setenv("APP_ENV", "production")
	t.Setenv("APP_REGION", "Prizren")
	t.Setenv("PROVIDER_BASE_URL", "https://forecast.example.com")
	t.Setenv("PROVIDER_TIMEOUT", "3s")
	t.Setenv("STUB_PORT", "9090")
	t.Setenv("LOG_LEVEL", "debug")

	provider := NewFileConfigProvider("nonexistent.yaml")
	config, err := NewConfigWithProvider(provider)
	require.NoError(t, err)

	assert.Equal(t, "test-app", config.App.Name)
	assert.Equal(t, "production", config.App.Env)
	assert.Equal(t, "Prizren", config.App.Region)
	assert.Equal(t, "https://forecast.example.com", config.Provider.BaseURL)
	assert.Equal(t, 3*time.Second, config.Provider.Timeout)
	assert.Equal(t, "9090", config.Stub.Port)
	assert.Equal(t, "debug", config.Log.Level)
	assert.True(t, config.IsProduction())
}

func TestConfigFileThenEnvironment(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`
app:
  region: Peja
provider:
  base_url: http://file.example.com:8000
  timeout: 5s
log:
  level: warn
`), 0o600))

	t.Setenv("LOG_LEVEL", "error")

	config, err := NewConfigWithProvider(NewFileConfigProvider(path))
	require.NoError(t, err)

	assert.Equal(t, "Peja", config.App.Region)
	assert.Equal(t, "precip-viewer", config.App.Name, "defaults survive a partial file")
	assert.Equal(t, "http://file.example.com:8000", config.Provider.BaseURL)
	assert.Equal(t, 5*time.Second, config.Provider.Timeout)
	assert.Equal(t, "error", config.Log.Level, "environment wins over the file")
}

func TestConfigDotEnvFile(t *testing.T) {
	dir := t.TempDir()
	envFile := filepath.Join(dir, ".env")
	require.NoError(t, os.WriteFile(envFile, []byte("SENTRY_DSN=https://key@sentry.example.com/1\n"), 0o600))
	t.Cleanup(func() { os.Unsetenv("SENTRY_DSN") })

	provider := &FileConfigProvider{path: "nonexistent.yaml", envFile: envFile}
	config, err := NewConfigWithProvider(provider)
	require.NoError(t, err)

	assert.Equal(t, "https://key@sentry.example.com/1", config.Sentry.DSN)
}

func TestNewConfig_Path(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("app:\n  region: Gjakova\n"), 0o600))

	config, err := NewConfig(path)
	require.NoError(t, err)
	assert.Equal(t, "Gjakova", config.App.Region)

	// An empty path falls back to DefaultPath, which is relative to the module root
	// and absent from this package directory, so only the defaults apply.
	config, err = NewConfig("")
	require.NoError(t, err)
	assert.Equal(t, "Kosovo", config.App.Region)
}

func TestConfigShippedFile(t *testing.T) {
	config, err := NewConfigWithProvider(NewFileConfigProvider("config.yaml"))
	require.NoError(t, err)

	assert.Equal(t, "precip-viewer", config.App.Name)
	assert.Equal(t, "http://localhost:8000", config.Provider.BaseURL)
	assert.Equal(t, 10*time.Second, config.Stub.WriteTimeout)
}

func TestConfigInvalidFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("app: [unterminated"), 0o600))

	_, err := NewConfigWithProvider(NewFileConfigProvider(path))
	assert.Error(t, err)
}

func TestConfigValidation(t *testing.T) {
	provider := NewFileConfigProvider(DefaultPath)

	require.NoError(t, provider.Validate(Defaults()))

	tests := []struct {
		name   string
		mutate func(c *Config)
		want   string
	}{
		{"missing app name", func(c *Config) { c.App.Name = "" }, "app.name is required"},
		{"missing base url", func(c *Config) { c.Provider.BaseURL = "" }, "provider.base_url is required"},
		{"relative base url", func(c *Config) { c.Provider.BaseURL = "/api" }, "provider.base_url must be an absolute http(s) URL"},
		{"unsupported scheme", func(c *Config) { c.Provider.BaseURL = "ftp://example.com" }, "provider.base_url must be an absolute http(s) URL"},
		{"negative timeout", func(c *Config) { c.Provider.Timeout = -time.Second }, "provider.timeout must not be negative"},
		{"bad log level", func(c *Config) { c.Log.Level = "loud" }, "log.level is invalid"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			config := Defaults()
			tt.mutate(config)

			err := provider.Validate(config)
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.want)
		})
	}
}

func TestConfigHelperMethods(t *testing.T) {
	config := &Config{App: AppConfig{Env: "development"}}

	assert.True(t, config.IsDevelopment())
	assert.False(t, config.IsProduction())

	config.App.Env = "prod"
	assert.False(t, config.IsDevelopment())
	assert.True(t, config.IsProduction())
}

func TestFileConfigProvider_LoadFromFile(t *testing.T) {
	provider := NewFileConfigProvider("nonexistent.yaml")
	config := &Config{}

	// Test loading from non-existent file (should not error)
	err := provider.loadFromFile(config)
	assert.NoError(t, err)
}

func TestNewConfigWithProvider(t *testing.T) {
	mockProvider := &MockConfigProvider{config: Defaults()}

	config, err := NewConfigWithProvider(mockProvider)
	require.NoError(t, err)
	assert.Equal(t, "precip-viewer", config.App.Name)

	mockProvider = &MockConfigProvider{err: errors.New("boom")}
	_, err = NewConfigWithProvider(mockProvider)
	assert.EqualError(t, err, "boom")

	mockProvider = &MockConfigProvider{config: Defaults(), invalid: errors.New("nope")}
	_, err = NewConfigWithProvider(mockProvider)
	assert.ErrorContains(t, err, "invalid configuration: nope")
}

// MockConfigProvider for testing
type MockConfigProvider struct {
	config  *Config
	err     error
	invalid error
}

func (m *MockConfigProvider) Load() (*Config, error) {
	if m.err != nil {
		return nil, m.err
	}
	return m.config, nil
}

func (m *MockConfigProvider) Validate(config *Config) error {
	return m.invalid
}
