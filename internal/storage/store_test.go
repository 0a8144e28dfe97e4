package storage

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSetAndGetItem(t *testing.T) {
	s := NewStore(filepath.Join(t.TempDir(), "default"))

	require.NoError(t, s.SetItem("fitapp_water_goal", "2500"))

	got, ok, err := s.GetItem("fitapp_water_goal")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, "2500", got)
}

func TestGetItemMissing(t *testing.T) {
	s := NewStore(t.TempDir())

	got, ok, err := s.GetItem("nope")
	require.NoError(t, err)
	assert.False(t, ok)
	assert.Empty(t, got)
}

func TestSetItemOverwrites(t *testing.T) {
	s := NewStore(t.TempDir())

	require.NoError(t, s.SetItem("k", "one"))
	require.NoError(t, s.SetItem("k", "two"))

	got, _, err := s.GetItem("k")
	require.NoError(t, err)
	assert.Equal(t, "two", got)
}

func TestInvalidKeys(t *testing.T) {
	s := NewStore(t.TempDir())

	for _, key := range []string{"", "a/b", `a\b`, "..", "."} {
		err := s.SetItem(key, "x")
		assert.ErrorIs(t, err, ErrInvalidKey, "key %q", key)

		_, _, err = s.GetItem(key)
		assert.ErrorIs(t, err, ErrInvalidKey, "key %q", key)
	}
}

func TestRemoveItem(t *testing.T) {
	s := NewStore(t.TempDir())

	require.NoError(t, s.SetItem("adminAuth", `{"email":"a"}`))
	require.NoError(t, s.RemoveItem("adminAuth"))

	_, ok, err := s.GetItem("adminAuth")
	require.NoError(t, err)
	assert.False(t, ok)

	// removing twice is fine
	assert.NoError(t, s.RemoveItem("adminAuth"))
}

func TestKeysAndClear(t *testing.T) {
	s := NewStore(t.TempDir())

	keys, err := s.Keys()
	require.NoError(t, err)
	assert.Empty(t, keys)

	require.NoError(t, s.SetItem("b", "1"))
	require.NoError(t, s.SetItem("a", "2"))

	keys, err = s.Keys()
	require.NoError(t, err)
	assert.Equal(t, []string{"a", "b"}, keys)

	require.NoError(t, s.Clear())
	keys, err = s.Keys()
	require.NoError(t, err)
	assert.Empty(t, keys)
}

func TestJSONRoundTrip(t *testing.T) {
	s := NewStore(t.TempDir())

	type payload struct {
		Intake int    `json:"intake"`
		Date   string `json:"date"`
	}
	require.NoError(t, s.SetJSON("fitapp_water_tracker", payload{Intake: 750, Date: "2025-06-15"}))

	raw, _, err := s.GetItem("fitapp_water_tracker")
	require.NoError(t, err)
	assert.JSONEq(t, `{"intake":750,"date":"2025-06-15"}`, raw)

	var got payload
	ok, err := s.GetJSON("fitapp_water_tracker", &got)
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, 750, got.Intake)
}

func TestGetJSONCorrupt(t *testing.T) {
	s := NewStore(t.TempDir())
	require.NoError(t, s.SetItem("fitapp_water_tracker", "{not json"))

	var v map[string]any
	ok, err := s.GetJSON("fitapp_water_tracker", &v)
	assert.True(t, ok)
	assert.ErrorIs(t, err, ErrCorrupt)
}

func TestUnavailableDirectory(t *testing.T) {
	// A regular file where the store directory should be makes every write fail.
	blocker := filepath.Join(t.TempDir(), "blocked")
	require.NoError(t, os.WriteFile(blocker, []byte("x"), 0644))

	s := NewStore(blocker)
	err := s.SetItem("k", "v")
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrUnavailable))
}
