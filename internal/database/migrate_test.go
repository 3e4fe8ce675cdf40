package database

import (
	"context"
	"io/fs"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMigrationsEmbedded(t *testing.T) {
	entries, err := fs.ReadDir(migrationsFS, "migrations")
	require.NoError(t, err)
	require.NotEmpty(t, entries)

	for _, entry := range entries {
		raw, err := fs.ReadFile(migrationsFS, "migrations/"+entry.Name())
		require.NoError(t, err)

		body := string(raw)
		assert.Contains(t, body, "-- +goose Up", entry.Name())
		assert.Contains(t, body, "-- +goose Down", entry.Name())
	}
}

func TestInitialSchemaConstraints(t *testing.T) {
	raw, err := fs.ReadFile(migrationsFS, "migrations/00001_initial.sql")
	require.NoError(t, err)
	schema := strings.ToLower(string(raw))

	// Repositories match on these names when mapping unique violations.
	assert.Contains(t, schema, "users_email_key")
	assert.Contains(t, schema, "refresh_tokens_token_key")
	assert.Contains(t, schema, "on delete cascade")
}

func TestMigrateRequiresPool(t *testing.T) {
	var db *DB
	assert.Error(t, db.Migrate(context.Background()))
	assert.Error(t, (&DB{}).Migrate(context.Background()))
}
