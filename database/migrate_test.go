package database

import (
	"context"
	"database/sql"
	"errors"
	"io/fs"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/pressly/goose/v3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func stubGoose(t *testing.T, fn func(ctx context.Context, db *sql.DB, dir string, opts ...goose.OptionsFunc) error) {
	t.Helper()
	orig := gooseUpContext
	gooseUpContext = fn
	t.Cleanup(func() { gooseUpContext = orig })
}

func TestMigrateDB_Success(t *testing.T) {
	db, _, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	var gotDir string
	stubGoose(t, func(ctx context.Context, d *sql.DB, dir string, opts ...goose.OptionsFunc) error {
		assert.Same(t, db, d)
		gotDir = dir
		return nil
	})

	require.NoError(t, MigrateDB(context.Background(), db))
	assert.Equal(t, "migrations", gotDir)
}

func TestMigrateDB_Error(t *testing.T) {
	db, _, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	boom := errors.New("boom")
	stubGoose(t, func(ctx context.Context, d *sql.DB, dir string, opts ...goose.OptionsFunc) error {
		return boom
	})

	err = MigrateDB(context.Background(), db)
	assert.ErrorIs(t, err, boom)
}

func TestMigrations_Embedded(t *testing.T) {
	files, err := fs.Glob(migrations, "migrations/*.sql")
	require.NoError(t, err)
	assert.Equal(t, []string{
		"migrations/00001_create_users.sql",
		"migrations/00002_create_employees.sql",
		"migrations/00003_create_blog_posts.sql",
	}, files)

	for _, name := range files {
		data, err := fs.ReadFile(migrations, name)
		require.NoError(t, err)
		assert.Contains(t, string(data), "-- +goose Up")
		assert.Contains(t, string(data), "-- +goose Down")
	}
}
