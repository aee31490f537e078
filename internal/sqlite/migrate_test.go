package sqlite

import (
	"database/sql"
	"path/filepath"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cardboxhq/cardbox/pkg/types"
)

func TestMigrations_FreshStore(t *testing.T) {
	b := setupBackend(t)

	b.mu.RLock()
	version, err := readSchemaVersion(b.db)
	b.mu.RUnlock()
	require.NoError(t, err)
	assert.Equal(t, schemaVersion, version)
}

func TestMigrations_Idempotent(t *testing.T) {
	tmpDir := t.TempDir()
	b := NewBackend(zerolog.Nop())
	config := types.Config{DataDir: tmpDir}

	require.NoError(t, b.Attach(config))
	card, err := b.Cards().Create(&types.Card{Content: "survives reattach", Tags: []string{"keep"}})
	require.NoError(t, err)
	require.NoError(t, b.Detach())

	// A second attach re-runs the migration path against a current store.
	require.NoError(t, b.Attach(config))
	defer b.Detach()

	got, err := b.Cards().Get(card.ID)
	require.NoError(t, err)
	assert.Equal(t, "survives reattach", got.Content)
	assert.Equal(t, []string{"keep"}, got.Tags)
}

// TestMigrations_UpgradesOldStore builds a store with the original layout by
// hand and verifies that attach adds the later columns without losing rows.
func TestMigrations_UpgradesOldStore(t *testing.T) {
	tmpDir := t.TempDir()
	path := filepath.Join(tmpDir, types.DefaultDatabase)

	db, err := sql.Open("sqlite", path)
	require.NoError(t, err)
	for _, ddl := range []string{
		`CREATE TABLE cards (
            id INTEGER PRIMARY KEY AUTOINCREMENT,
            create_time INTEGER NOT NULL,
            update_time INTEGER NOT NULL,
            tags TEXT NOT NULL DEFAULT '[]',
            links TEXT NOT NULL DEFAULT '[]',
            content TEXT NOT NULL DEFAULT ''
        );`,
		`CREATE TABLE document_items (
            id INTEGER PRIMARY KEY AUTOINCREMENT,
            create_time INTEGER NOT NULL,
            update_time INTEGER NOT NULL,
            title TEXT NOT NULL DEFAULT '',
            authors TEXT NOT NULL DEFAULT '[]',
            tags TEXT NOT NULL DEFAULT '[]',
            is_directory INTEGER NOT NULL DEFAULT 0,
            children TEXT NOT NULL DEFAULT '[]',
            is_article INTEGER NOT NULL DEFAULT 0,
            article_id INTEGER NOT NULL DEFAULT 0,
            is_card INTEGER NOT NULL DEFAULT 0,
            card_id INTEGER NOT NULL DEFAULT 0,
            content TEXT NOT NULL DEFAULT '',
            banner_bg TEXT NOT NULL DEFAULT '',
            icon TEXT NOT NULL DEFAULT '',
            is_delete INTEGER NOT NULL DEFAULT 0
        );`,
		`INSERT INTO cards (create_time, update_time, tags, content)
         VALUES (1, 1, '["old"]', 'legacy card')`,
		`INSERT INTO document_items (create_time, update_time, title)
         VALUES (1, 1, 'legacy item')`,
	} {
		_, err := db.Exec(ddl)
		require.NoError(t, err)
	}
	require.NoError(t, db.Close())

	b := NewBackend(zerolog.Nop())
	require.NoError(t, b.Attach(types.Config{DataDir: tmpDir}))
	defer b.Detach()

	// Old rows survive and the added columns carry their defaults.
	card, err := b.Cards().Get(1)
	require.NoError(t, err)
	assert.Equal(t, "legacy card", card.Content)
	assert.Equal(t, []string{"old"}, card.Tags)
	assert.Equal(t, "temporary", card.Category)
	// Count is backfilled from the existing content.
	assert.Equal(t, int64(len("legacy card")), card.Count)

	item, err := b.DocumentItems().Get(1)
	require.NoError(t, err)
	assert.Equal(t, "legacy item", item.Title)
	assert.Empty(t, item.Parents)
	assert.Zero(t, item.Count)

	// Version recorded only after the upgrades ran.
	b.mu.RLock()
	version, err := readSchemaVersion(b.db)
	b.mu.RUnlock()
	require.NoError(t, err)
	assert.Equal(t, schemaVersion, version)
}

func TestTableHasColumn(t *testing.T) {
	b := setupBackend(t)
	b.mu.RLock()
	defer b.mu.RUnlock()

	tests := []struct {
		table  string
		column string
		want   bool
	}{
		{"cards", "category", true},
		{"cards", "count", true},
		{"cards", "no_such_column", false},
		{"document_items", "parents", true},
		{"no_such_table", "id", false},
	}
	for _, tt := range tests {
		got, err := tableHasColumn(b.db, tt.table, tt.column)
		require.NoError(t, err)
		assert.Equal(t, tt.want, got, "%s.%s", tt.table, tt.column)
	}
}
