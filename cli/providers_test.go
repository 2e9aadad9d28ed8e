package cli

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func withConfig(t *testing.T, c Config) {
	t.Helper()
	old := config
	config = c
	t.Cleanup(func() { config = old })
}

func TestLoadProvidersFromString(t *testing.T) {
	withConfig(t, Config{Providers: `[{"id":"Google2","name":"Google","href":"https://idp/google"}]`})

	providers, err := loadProviders()
	require.NoError(t, err)
	require.Len(t, providers, 1)
	assert.Equal(t, "Google2", providers[0].ID)
	assert.Equal(t, "https://idp/google", providers[0].Href)
}

func TestLoadProvidersFromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "providers.json")
	require.NoError(t, os.WriteFile(path, []byte(`[{"id":"Facebook","href":"https://idp/fb"},{"id":"LinkedIn2","href":"https://idp/li"}]`), 0o644))
	withConfig(t, Config{ProvidersPath: path})

	providers, err := loadProviders()
	require.NoError(t, err)
	require.Len(t, providers, 2)
	assert.Equal(t, "LinkedIn2", providers[1].ID)
}

func TestLoadProvidersNone(t *testing.T) {
	withConfig(t, Config{})

	providers, err := loadProviders()
	require.NoError(t, err)
	assert.Empty(t, providers)
}

func TestLoadProvidersInvalid(t *testing.T) {
	withConfig(t, Config{Providers: `{"id":`})

	_, err := loadProviders()
	assert.Error(t, err)
}

func TestLoadBundle(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nls.yaml")
	require.NoError(t, os.WriteFile(path, []byte("nl:\n  LOGIN: Aanmelden\n"), 0o644))
	withConfig(t, Config{NLSPath: path})

	bundle, err := loadBundle()
	require.NoError(t, err)
	assert.Equal(t, "Aanmelden", bundle.Lookup("nl", "LOGIN"))
}
