package main

import (
	"os"
	"path/filepath"
	"testing"

	"readinglog/internal/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMigrationsDir(t *testing.T) {
	t.Setenv("MIGRATIONS_DIR", "")
	assert.Equal(t, "db/migrations", migrationsDir())

	t.Setenv("MIGRATIONS_DIR", "/custom/migrations")
	assert.Equal(t, "/custom/migrations", migrationsDir())
}

func TestDatabaseDSN(t *testing.T) {
	t.Setenv("DB_DSN", "")
	assert.Equal(t, defaultDSN, databaseDSN())

	t.Setenv("DB_DSN", "postgres://u:p@db:5432/x")
	assert.Equal(t, "postgres://u:p@db:5432/x", databaseDSN())
}

func TestLoadEnvFiles_DoesNotOverrideExistingEnv(t *testing.T) {
	tmp := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(tmp, ".env"), []byte("DB_DSN=from_file\n"), 0o644))

	t.Setenv("DB_DSN", "from_env")
	t.Chdir(tmp)

	config.LoadEnvFiles()

	assert.Equal(t, "from_env", databaseDSN())
}
