//go:build unit
// +build unit

package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	rsaDomain "github.com/godzivan/ttcrypt/internal/domain/rsa"
)

func writeSettingsFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "settings.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0600))
	return path
}

func TestLoadAppSettings(t *testing.T) {
	t.Run("Defaults", func(t *testing.T) {
		settings, err := LoadAppSettings("")
		require.NoError(t, err)
		assert.Equal(t, rsaDomain.DefaultHash, settings.DefaultHash)
		assert.Equal(t, 2048, settings.KeyGen.BitStrength)
		assert.Equal(t, LogTypeConsole, settings.Logger.LogType)
		assert.Equal(t, LogLevelInfo, settings.Logger.LogLevel)
	})

	t.Run("FromFile", func(t *testing.T) {
		path := writeSettingsFile(t, `
default_hash: sha256
keygen:
  bit_strength: 1024
logger:
  log_level: debug
  log_type: console
`)
		settings, err := LoadAppSettings(path)
		require.NoError(t, err)
		assert.Equal(t, "sha256", settings.DefaultHash)
		assert.Equal(t, 1024, settings.KeyGen.BitStrength)
		assert.Equal(t, LogLevelDebug, settings.Logger.LogLevel)
	})

	t.Run("InvalidBitStrength", func(t *testing.T) {
		path := writeSettingsFile(t, `
keygen:
  bit_strength: 1000
`)
		_, err := LoadAppSettings(path)
		assert.Error(t, err)
	})

	t.Run("MissingFile", func(t *testing.T) {
		_, err := LoadAppSettings("/does/not/exist.yaml")
		assert.Error(t, err)
	})

	t.Run("InvalidLoggerSettings", func(t *testing.T) {
		path := writeSettingsFile(t, `
logger:
  log_level: info
  log_type: unknown
`)
		_, err := LoadAppSettings(path)
		assert.Error(t, err)
	})
}
