package main

import (
	"context"
	"path/filepath"
	"testing"

	"readinglog/internal/config"
	"readinglog/internal/prefs"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOpenPrefs_FollowsStoreDriver(t *testing.T) {
	log := logrus.New()

	t.Run("memory", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "prefs.db")
		p, closePrefs, err := openPrefs(&config.Config{StoreDriver: config.DriverMemory, PrefsPath: path}, log)
		require.NoError(t, err)
		defer closePrefs()

		assert.IsType(t, &prefs.Memory{}, p)
		assert.NoFileExists(t, path)
	})

	t.Run("postgres", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "prefs.db")
		p, closePrefs, err := openPrefs(&config.Config{StoreDriver: config.DriverPostgres, PrefsPath: path}, log)
		require.NoError(t, err)
		defer closePrefs()

		assert.IsType(t, &prefs.SQLite{}, p)
		require.NoError(t, p.Set(context.Background(), "u1", prefs.KeyActiveChild, "c1"))
		assert.FileExists(t, path)
	})
}
