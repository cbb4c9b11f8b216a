package prefs

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func exerciseStore(t *testing.T, s Store) {
	ctx := context.Background()

	_, ok, err := s.Get(ctx, "user-1", KeyActiveChild)
	require.NoError(t, err)
	assert.False(t, ok)

	require.NoError(t, s.Set(ctx, "user-1", KeyActiveChild, "child-a"))
	require.NoError(t, s.Set(ctx, "user-1", KeyActiveChild, "child-b"))
	require.NoError(t, s.Set(ctx, "user-2", KeyActiveChild, "child-z"))

	v, ok, err := s.Get(ctx, "user-1", KeyActiveChild)
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, "child-b", v)

	require.NoError(t, s.Delete(ctx, "user-1", KeyActiveChild))
	_, ok, err = s.Get(ctx, "user-1", KeyActiveChild)
	require.NoError(t, err)
	assert.False(t, ok)

	v, ok, err = s.Get(ctx, "user-2", KeyActiveChild)
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, "child-z", v)
}

func TestMemory(t *testing.T) {
	exerciseStore(t, NewMemory())
}

func TestSQLite(t *testing.T) {
	s, err := OpenSQLite(filepath.Join(t.TempDir(), "prefs", "prefs.db"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = s.Close() })

	exerciseStore(t, s)
}

func TestSQLite_SurvivesReopen(t *testing.T) {
	path := filepath.Join(t.TempDir(), "prefs.db")
	ctx := context.Background()

	s, err := OpenSQLite(path)
	require.NoError(t, err)
	require.NoError(t, s.Set(ctx, "user-1", KeyActiveChild, "child-a"))
	require.NoError(t, s.Close())

	reopened, err := OpenSQLite(path)
	require.NoError(t, err)
	t.Cleanup(func() { _ = reopened.Close() })

	v, ok, err := reopened.Get(ctx, "user-1", KeyActiveChild)
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, "child-a", v)
}
