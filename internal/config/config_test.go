package config

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()
	assert.Equal(t, "Delhi", cfg.DefaultLocation)
	assert.Equal(t, 8080, cfg.Port)
	assert.Equal(t, "info", cfg.LogLevel)
	assert.Empty(t, cfg.APIBaseURL)
}

func TestSaveAndLoad(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "test.kitchenfinder.yml")

	original := DefaultConfig()
	original.APIBaseURL = "https://kitchens.example.com/api"
	original.DefaultLocation = "Mumbai"
	original.Port = 9090
	original.AllowAllOrigins = true
	original.LogLevel = "debug"

	// Save.
	require.NoError(t, original.Save(path))

	// Load back.
	loaded, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, *original, *loaded)
}

func TestLoadMissingFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "nonexistent.yml")

	// Loading a missing file should return defaults, not an error.
	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "Delhi", cfg.DefaultLocation)
}

func TestLoadEnvOverride(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "test.yml")

	cfg := DefaultConfig()
	cfg.APIBaseURL = "http://file.example.com"
	require.NoError(t, cfg.Save(path))

	t.Setenv("KITCHENFINDER_API_BASE_URL", "http://env.example.com")
	t.Setenv("KITCHENFINDER_DEFAULT_LOCATION", "Pune")

	loaded, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "http://env.example.com", loaded.APIBaseURL)
	assert.Equal(t, "Pune", loaded.DefaultLocation)
}

func validConfig() *Config {
	cfg := DefaultConfig()
	cfg.APIBaseURL = "http://localhost:5000/api"
	return cfg
}

func TestValidateValid(t *testing.T) {
	assert.NoError(t, validConfig().Validate())
}

func TestValidateDefaultsNeedBaseURL(t *testing.T) {
	assert.Error(t, DefaultConfig().Validate(), "missing api_base_url")
}

func TestValidateInvalidBaseURL(t *testing.T) {
	for _, raw := range []string{"localhost:5000", "ftp://example.com", "http://", "::not a url"} {
		cfg := validConfig()
		cfg.APIBaseURL = raw
		assert.Error(t, cfg.Validate(), raw)
	}
}

func TestValidateEmptyLocation(t *testing.T) {
	cfg := validConfig()
	cfg.DefaultLocation = ""
	assert.Error(t, cfg.Validate())
}

func TestValidatePort(t *testing.T) {
	cfg := validConfig()
	cfg.Port = 70000
	assert.Error(t, cfg.Validate(), "out of range port")
	cfg.Port = -1
	assert.Error(t, cfg.Validate(), "negative port")
}

func TestValidateLogLevel(t *testing.T) {
	cfg := validConfig()
	cfg.LogLevel = "chatty"
	assert.Error(t, cfg.Validate())
}

func TestValidatePortPrompt(t *testing.T) {
	tests := []struct {
		input   string
		wantErr bool
	}{
		{"8080", false},
		{" 0 ", false},
		{"abc", true},
		{"65536", true},
	}
	for _, tt := range tests {
		err := validatePort(tt.input)
		if tt.wantErr {
			assert.Error(t, err, tt.input)
		} else {
			assert.NoError(t, err, tt.input)
		}
	}
}
