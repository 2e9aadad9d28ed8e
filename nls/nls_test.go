package nls

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLookupFallsBackToRoot(t *testing.T) {
	b := New()
	b.Add("nl", Table{"LOGIN": "Aanmelden"})

	assert.Equal(t, "Aanmelden", b.Lookup("nl", "LOGIN"))
	assert.Equal(t, "Password", b.Lookup("nl", "PASSWORD"))
	assert.Equal(t, "Sign in", b.Lookup("en-us", "LOGIN"))
	assert.Equal(t, "Sign in", b.Lookup("xx", "LOGIN"))
	assert.Equal(t, "NO_SUCH_KEY", b.Lookup(Root, "NO_SUCH_KEY"))

	_, ok := b.Find(Root, "NO_SUCH_KEY")
	assert.False(t, ok)
}

func TestMatch(t *testing.T) {
	b := New()
	b.Add("nl", Table{"LOGIN": "Aanmelden"})

	tests := []struct {
		accept string
		want   string
	}{
		{"", Root},
		{"nl-BE,nl;q=0.9", "nl"},
		{"en-US,en;q=0.8", "en-us"},
		{"fr-FR", Root},
		{"!!garbage", Root},
	}
	for _, tc := range tests {
		t.Run(tc.accept, func(t *testing.T) {
			assert.Equal(t, tc.want, b.Match(tc.accept))
		})
	}
}

func TestTableOverlaysLocale(t *testing.T) {
	b := New()
	b.Add("nl_BE", Table{"LOGIN": "Aanmelden"})

	table := b.Table("nl-be")
	assert.Equal(t, "Aanmelden", table["LOGIN"])
	assert.Equal(t, "Welcome, Please login", table["SIGNIN"])

	// root stays untouched
	assert.Equal(t, "Sign in", b.Table(Root)["LOGIN"])
}

func TestLoadYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nls.yaml")
	require.NoError(t, os.WriteFile(path, []byte("nl:\n  LOGIN: Aanmelden\nroot:\n  COPYRIGHT: Copyright UGent\n"), 0o644))

	b := New()
	require.NoError(t, b.LoadYAML(path))

	assert.Equal(t, "Aanmelden", b.Lookup("nl", "LOGIN"))
	assert.Equal(t, "Copyright UGent", b.Lookup("nl", "COPYRIGHT"))
	assert.Equal(t, "Copyright UGent", b.Lookup(Root, "COPYRIGHT"))
}

func TestLoadYAMLErrors(t *testing.T) {
	b := New()
	assert.Error(t, b.LoadYAML(filepath.Join(t.TempDir(), "missing.yaml")))

	path := filepath.Join(t.TempDir(), "bad.yaml")
	require.NoError(t, os.WriteFile(path, []byte("nl: [not, a, table]\n"), 0o644))
	assert.Error(t, b.LoadYAML(path))
}
