package db

import (
	"path/filepath"
	"testing"

	"blog/internal/config"
	"blog/internal/models"

	"github.com/stretchr/testify/require"
)

func TestOpen_UnsupportedDriver(t *testing.T) {
	_, err := Open(config.DatabaseConfig{Driver: "oracle"})
	require.ErrorContains(t, err, `unsupported database driver "oracle"`)
}

func TestMigrate_CreatesSchema(t *testing.T) {
	dsn := filepath.Join(t.TempDir(), "blog.db") + "?_pragma=foreign_keys(1)"
	conn, err := Open(config.DatabaseConfig{Driver: config.DriverSQLite, DSN: dsn})
	require.NoError(t, err)
	t.Cleanup(func() { _ = Close(conn) })

	require.NoError(t, Migrate(conn))

	m := conn.Migrator()
	require.True(t, m.HasTable(&models.User{}))
	require.True(t, m.HasTable(&models.Article{}))
	require.True(t, m.HasIndex(&models.User{}, "idx_users_username"))
	require.True(t, m.HasIndex(&models.User{}, "idx_users_email"))
	require.True(t, m.HasIndex(&models.Article{}, "idx_articles_status"))
	require.True(t, m.HasIndex(&models.Article{}, "idx_articles_created_at"))
	require.True(t, m.HasIndex(&models.Article{}, "idx_articles_author_id"))

	// running twice is harmless
	require.NoError(t, Migrate(conn))
}
