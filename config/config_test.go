package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	chdir(t, t.TempDir())
	for _, k := range []string{KeyClientID, KeyClientSecret, KeyRedirectURI, KeyAuthMode, KeySearchLimit, KeySecretsFile, KeyLogLevel} {
		t.Setenv(k, "")
		os.Unsetenv(k)
	}

	conf, err := Load("")
	require.NoError(t, err)

	assert.Equal(t, "http://127.0.0.1:8888/callback", conf.RedirectURI)
	assert.Equal(t, AuthModeFull, conf.AuthMode)
	assert.False(t, conf.PreferLimited())
	assert.Equal(t, 20, conf.SearchLimit)
	assert.Equal(t, "info", conf.LogLevel)
	assert.False(t, conf.HasCredentials())
}

func TestLoadFromEnvironment(t *testing.T) {
	chdir(t, t.TempDir())
	t.Setenv(KeyClientID, "cid")
	t.Setenv(KeyClientSecret, "csecret")
	t.Setenv(KeyAuthMode, "LIMITED")
	t.Setenv(KeySearchLimit, "35")

	conf, err := Load("")
	require.NoError(t, err)

	assert.True(t, conf.HasCredentials())
	assert.True(t, conf.PreferLimited())
	assert.Equal(t, 35, conf.SearchLimit)
}

func TestLoadConfigFile(t *testing.T) {
	chdir(t, t.TempDir())
	t.Setenv(KeySearchLimit, "")
	os.Unsetenv(KeySearchLimit)

	path := filepath.Join(t.TempDir(), "visualizer.yaml")
	require.NoError(t, os.WriteFile(path, []byte("SPOTIFY_SEARCH_LIMIT: 10\nLOG_LEVEL: debug\n"), 0o600))
	t.Setenv(KeyLogLevel, "")
	os.Unsetenv(KeyLogLevel)

	conf, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, 10, conf.SearchLimit)
	assert.Equal(t, "debug", conf.LogLevel)
}

func TestLoadRejectsInvalidValues(t *testing.T) {
	chdir(t, t.TempDir())

	t.Run("auth mode", func(t *testing.T) {
		t.Setenv(KeyAuthMode, "sideways")
		t.Setenv(KeySearchLimit, "20")
		_, err := Load("")
		assert.Error(t, err)
	})

	t.Run("search limit", func(t *testing.T) {
		t.Setenv(KeyAuthMode, "full")
		t.Setenv(KeySearchLimit, "500")
		_, err := Load("")
		assert.Error(t, err)
	})
}

// chdir changes the working directory for the duration of the test,
// restoring it on cleanup (equivalent of testing.T.Chdir, Go 1.24+).
func chdir(t *testing.T, dir string) {
	t.Helper()
	prev, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(dir))
	t.Cleanup(func() { _ = os.Chdir(prev) })
}
