package prefs

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGet_InitializesDefaults(t *testing.T) {
	store := NewStore()

	selection := store.Get("session-1")
	assert.Equal(t, map[string]bool{
		"asd":  false,
		"asdz": true,
		"gvc":  true,
		"laa":  true,
	}, selection)
}

func TestSet_UpdatesSelection(t *testing.T) {
	store := NewStore()

	require.NoError(t, store.Set("session-1", "asd", true))
	require.NoError(t, store.Set("session-1", "gvc", false))

	selection := store.Get("session-1")
	assert.True(t, selection["asd"])
	assert.False(t, selection["gvc"])
}

func TestSet_NormalizesStationCode(t *testing.T) {
	store := NewStore()

	require.NoError(t, store.Set("session-1", "ASDZ", false))
	assert.False(t, store.Get("session-1")["asdz"])
}

func TestSet_UnknownStation(t *testing.T) {
	store := NewStore()

	err := store.Set("session-1", "ut", true)
	assert.ErrorIs(t, err, ErrUnknownStation)
}

func TestSessionsAreIsolated(t *testing.T) {
	store := NewStore()

	require.NoError(t, store.Set("session-1", "laa", false))

	assert.False(t, store.Get("session-1")["laa"])
	assert.True(t, store.Get("session-2")["laa"], "other sessions keep their defaults")
}

func TestGet_ReturnsCopy(t *testing.T) {
	store := NewStore()

	selection := store.Get("session-1")
	selection["asdz"] = false

	assert.True(t, store.Get("session-1")["asdz"], "mutating the returned map must not affect the store")
}

func TestStore_ConcurrentAccess(t *testing.T) {
	store := NewStore()

	var wg sync.WaitGroup
	for i := 0; i < 20; i++ {
		wg.Add(2)
		go func() {
			defer wg.Done()
			for j := 0; j < 50; j++ {
				_ = store.Get("shared")
			}
		}()
		go func() {
			defer wg.Done()
			for j := 0; j < 50; j++ {
				_ = store.Set("shared", "asdz", j%2 == 0)
			}
		}()
	}
	wg.Wait()
}
