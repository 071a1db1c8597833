package configuration

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConfigValidate(t *testing.T) {
	tests := []struct {
		name        string
		mutate      func(c *Config)
		expectError bool
		errorMsg    string
	}{
		{
			name:   "defaults - should pass",
			mutate: func(c *Config) {},
		},
		{
			name:        "zero max size - should fail",
			mutate:      func(c *Config) { c.Log.MaxSizeMB = 0 },
			expectError: true,
			errorMsg:    "log max size must be positive",
		},
		{
			name:        "negative backups - should fail",
			mutate:      func(c *Config) { c.Log.MaxBackups = -1 },
			expectError: true,
			errorMsg:    "log max backups cannot be negative",
		},
		{
			name:        "negative age - should fail",
			mutate:      func(c *Config) { c.Log.MaxAgeDays = -2 },
			expectError: true,
			errorMsg:    "log max age cannot be negative",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := NewConfig()
			tt.mutate(c)
			err := c.Validate()
			if tt.expectError {
				assert.Error(t, err)
				assert.Contains(t, err.Error(), tt.errorMsg)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestLoadDefaultsWhenMissing(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)
	t.Setenv(EnvLogFile, "")
	t.Setenv(EnvJSONLogs, "")

	c, err := Load()
	require.NoError(t, err)
	assert.Equal(t, ConfigVersion, c.Version)
	assert.Equal(t, filepath.Join(home, ConfigDirName, LogFileName), c.Log.File)
	assert.False(t, c.Log.JSON)

	_, err = os.Stat(filepath.Join(home, ConfigDirName))
	assert.True(t, os.IsNotExist(err), "Load must not create the config directory")
}

func TestSaveAndLoad(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	t.Setenv(EnvLogFile, "")
	t.Setenv(EnvJSONLogs, "")

	c := NewConfig()
	c.Log.File = "/tmp/custom.log"
	c.Log.MaxBackups = 7
	require.NoError(t, c.Save())

	loaded, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "/tmp/custom.log", loaded.Log.File)
	assert.Equal(t, 7, loaded.Log.MaxBackups)
}

func TestLoadEnvOverrides(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	t.Setenv(EnvLogFile, "/var/tmp/pattern.log")
	t.Setenv(EnvJSONLogs, "1")

	c, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "/var/tmp/pattern.log", c.Log.File)
	assert.True(t, c.Log.JSON)
}

func TestLoadRejectsInvalidFile(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)
	dir := filepath.Join(home, ConfigDirName)
	require.NoError(t, os.MkdirAll(dir, 0700))
	require.NoError(t, os.WriteFile(filepath.Join(dir, ConfigFileName), []byte("{not json"), 0600))

	_, err := Load()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to parse config file")
}
