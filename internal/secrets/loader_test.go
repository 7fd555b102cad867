package secrets

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadPrefersFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "key")
	require.NoError(t, os.WriteFile(path, []byte("  from-file\n"), 0o600))
	t.Setenv("TEST_SECRET_KEY", "from-env")

	secret, err := Load(Source{Name: "api key", Value: "inline", File: path, Env: "TEST_SECRET_KEY"})
	require.NoError(t, err)
	assert.Equal(t, "from-file", secret)
}

func TestLoadFallsBackToValueThenEnv(t *testing.T) {
	t.Setenv("TEST_SECRET_KEY", " from-env ")

	secret, err := Load(Source{Name: "api key", Value: " inline ", Env: "TEST_SECRET_KEY"})
	require.NoError(t, err)
	assert.Equal(t, "inline", secret)

	secret, err = Load(Source{Name: "api key", Env: "TEST_SECRET_KEY"})
	require.NoError(t, err)
	assert.Equal(t, "from-env", secret)
}

func TestLoadErrors(t *testing.T) {
	t.Setenv("TEST_SECRET_KEY", "")

	_, err := Load(Source{Name: "api key", Env: "TEST_SECRET_KEY"})
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrNotConfigured))
	assert.Contains(t, err.Error(), "api key")

	empty := filepath.Join(t.TempDir(), "empty")
	require.NoError(t, os.WriteFile(empty, []byte("\n"), 0o600))
	_, err = Load(Source{Name: "api key", File: empty})
	require.Error(t, err)
	assert.False(t, errors.Is(err, ErrNotConfigured))

	_, err = Load(Source{File: filepath.Join(t.TempDir(), "missing")})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "reading secret")
}
