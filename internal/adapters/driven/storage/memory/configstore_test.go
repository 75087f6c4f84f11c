package memory

import (
	"fmt"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConfigStore_SetGet(t *testing.T) {
	store := NewConfigStore()

	require.NoError(t, store.Set("google.client_id", "1234567890-senteng.apps.googleusercontent.com"))

	val, ok := store.Get("google.client_id")
	assert.True(t, ok)
	assert.Equal(t, "1234567890-senteng.apps.googleusercontent.com", val)

	_, ok = store.Get("google.api_key")
	assert.False(t, ok)
}

func TestConfigStore_SetOverwrites(t *testing.T) {
	store := NewConfigStore()

	require.NoError(t, store.Set("projects.sheet", "Projects"))
	require.NoError(t, store.Set("projects.sheet", "專案"))

	assert.Equal(t, "專案", store.GetString("projects.sheet"))
}

func TestConfigStore_GetString(t *testing.T) {
	store := NewConfigStore()
	_ = store.Set("calendar.time_zone", "Asia/Taipei")
	_ = store.Set("calendar.month_limit", 100)

	assert.Equal(t, "Asia/Taipei", store.GetString("calendar.time_zone"))
	assert.Equal(t, "", store.GetString("calendar.month_limit"), "non-string values read as empty")
	assert.Equal(t, "", store.GetString("missing"))
}

func TestConfigStore_GetInt(t *testing.T) {
	store := NewConfigStore()

	// TOML decoding hands back int64, JSON hands back float64.
	// The store accepts all three numeric shapes.
	_ = store.Set("relay.port", 8787)
	_ = store.Set("calendar.month_limit", int64(100))
	_ = store.Set("upload.max_mb", float64(25.9))
	_ = store.Set("google.client_id", "not-a-number")

	assert.Equal(t, 8787, store.GetInt("relay.port"))
	assert.Equal(t, 100, store.GetInt("calendar.month_limit"))
	assert.Equal(t, 25, store.GetInt("upload.max_mb"))
	assert.Equal(t, 0, store.GetInt("google.client_id"))
	assert.Equal(t, 0, store.GetInt("missing"))
}

func TestConfigStore_GetBool(t *testing.T) {
	store := NewConfigStore()
	_ = store.Set("demo.enabled", true)
	_ = store.Set("relay.listen", ":8787")

	assert.True(t, store.GetBool("demo.enabled"))
	assert.False(t, store.GetBool("relay.listen"), "non-bool values read as false")
	assert.False(t, store.GetBool("missing"))

	_ = store.Set("demo.enabled", false)
	assert.False(t, store.GetBool("demo.enabled"))
}

func TestConfigStore_GetStringSlice(t *testing.T) {
	store := NewConfigStore()

	_ = store.Set("relay.allowed_origins", []string{"https://console.senteng.design", "http://localhost:5173"})
	assert.Equal(t,
		[]string{"https://console.senteng.design", "http://localhost:5173"},
		store.GetStringSlice("relay.allowed_origins"))

	// TOML arrays decode as []any.
	_ = store.Set("access.pages", []any{"projects", "schedule", 42, "settings"})
	assert.Equal(t, []string{"projects", "schedule", "settings"}, store.GetStringSlice("access.pages"),
		"non-string elements are dropped")

	_ = store.Set("relay.port", 8787)
	assert.Nil(t, store.GetStringSlice("relay.port"))
	assert.Nil(t, store.GetStringSlice("missing"))
}

func TestConfigStore_NilAndZeroValues(t *testing.T) {
	store := NewConfigStore()

	_ = store.Set("google.spreadsheet_id", nil)
	val, ok := store.Get("google.spreadsheet_id")
	assert.True(t, ok, "a nil value still counts as present")
	assert.Nil(t, val)

	_ = store.Set("calendar.month_limit", 0)
	assert.Equal(t, 0, store.GetInt("calendar.month_limit"))

	_ = store.Set("google.client_secret", "")
	assert.Equal(t, "", store.GetString("google.client_secret"))
}

func TestConfigStore_SaveLoadAreNoOps(t *testing.T) {
	store := NewConfigStore()
	_ = store.Set("projects.sheet", "Projects")

	require.NoError(t, store.Save())
	require.NoError(t, store.Load())

	// Load must not discard in-memory state.
	assert.Equal(t, "Projects", store.GetString("projects.sheet"))
}

func TestConfigStore_Path(t *testing.T) {
	assert.Equal(t, ":memory:", NewConfigStore().Path())
}

func TestConfigStore_InstancesAreIndependent(t *testing.T) {
	a := NewConfigStore()
	b := NewConfigStore()

	_ = a.Set("demo.enabled", true)

	assert.True(t, a.GetBool("demo.enabled"))
	_, ok := b.Get("demo.enabled")
	assert.False(t, ok)
}

func TestConfigStore_ConcurrentAccess(t *testing.T) {
	store := NewConfigStore()

	var wg sync.WaitGroup
	for i := 0; i < 10; i++ {
		wg.Add(2)
		go func(n int) {
			defer wg.Done()
			_ = store.Set(fmt.Sprintf("key-%d", n), n)
		}(i)
		go func(n int) {
			defer wg.Done()
			_ = store.GetInt(fmt.Sprintf("key-%d", n))
		}(i)
	}
	wg.Wait()

	for i := 0; i < 10; i++ {
		assert.Equal(t, i, store.GetInt(fmt.Sprintf("key-%d", i)))
	}
}
