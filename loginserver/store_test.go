package loginserver

import (
	"net/http/httptest"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStoreGetSetRemove(t *testing.T) {
	store, err := NewStore("", 10, time.Hour)
	require.NoError(t, err)

	_, err = store.Get("missing")
	assert.ErrorIs(t, err, ErrNotFound)

	sc := &Scaffold{FlowID: "flow-1", LoginTicket: "LT-1", ExecutionKey: "e1s1"}
	require.NoError(t, store.Set(sc))

	got, err := store.Get("flow-1")
	require.NoError(t, err)
	assert.Equal(t, "LT-1", got.LoginTicket)

	assert.True(t, store.Remove("flow-1"))
	_, err = store.Get("flow-1")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestStoreExpires(t *testing.T) {
	store, err := NewStore("", 10, 10*time.Millisecond)
	require.NoError(t, err)
	require.NoError(t, store.Set(&Scaffold{FlowID: "flow-1"}))

	time.Sleep(30 * time.Millisecond)
	_, err = store.Get("flow-1")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestStoreFlushAndReload(t *testing.T) {
	file := filepath.Join(t.TempDir(), "flows.jsonl")

	store, err := NewStore(file, 10, time.Hour)
	require.NoError(t, err)
	require.NoError(t, store.Set(&Scaffold{
		FlowID:      "flow-1",
		LoginTicket: "LT-1",
		Providers:   []*Provider{{ID: "Twitter", Name: "Twitter", Href: "https://idp/twitter"}},
	}))
	require.NoError(t, store.Set(&Scaffold{FlowID: "flow-2", LoginTicket: "LT-2"}))
	require.NoError(t, store.FlushToFile())

	reloaded, err := NewStore(file, 10, time.Hour)
	require.NoError(t, err)
	assert.Equal(t, 2, reloaded.Len())

	sc, err := reloaded.Get("flow-1")
	require.NoError(t, err)
	assert.Equal(t, "LT-1", sc.LoginTicket)
	require.Len(t, sc.Providers, 1)
	assert.Equal(t, "https://idp/twitter", sc.Providers[0].Href)
}

func TestStorePurge(t *testing.T) {
	store, err := NewStore("", 10, time.Hour)
	require.NoError(t, err)
	require.NoError(t, store.Set(&Scaffold{FlowID: "flow-1"}))
	store.Purge()
	assert.Equal(t, 0, store.Len())
}

func TestMockScaffoldSource(t *testing.T) {
	source := &MockScaffoldSource{
		TenantLogo: "tenant.png",
		Providers:  []*Provider{{ID: "Facebook", Href: "https://idp/facebook"}},
	}
	req := httptest.NewRequest("GET", "/login", nil)
	req.Header.Set("Referer", "https://app.example.com/start")

	a, err := source.NewScaffold(req)
	require.NoError(t, err)
	b, err := source.NewScaffold(req)
	require.NoError(t, err)

	assert.NotEqual(t, a.FlowID, b.FlowID)
	assert.NotEqual(t, a.LoginTicket, b.LoginTicket)
	assert.Regexp(t, `^LT-[0-9A-Z]{26}$`, a.LoginTicket)
	assert.Regexp(t, `^e[0-9A-Z]{26}s1$`, a.ExecutionKey)
	assert.Equal(t, "https://app.example.com/start", a.PrevAddress)
	assert.Equal(t, "tenant.png", a.TenantLogo)
	assert.Len(t, a.Providers, 1)
}
