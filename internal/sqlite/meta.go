package sqlite

import (
	"database/sql"
	"fmt"
	"strconv"

	"github.com/cardboxhq/cardbox/pkg/types"
)

// schemaVersionKey is the meta row holding the persisted layout version.
const schemaVersionKey = "schema_version"

// readSchemaVersion returns the persisted layout version, or 0 for a store
// that has never recorded one.
func readSchemaVersion(db *sql.DB) (int, error) {
	var raw string
	err := db.QueryRow(`SELECT value FROM meta WHERE key = ?`, schemaVersionKey).Scan(&raw)
	if err == sql.ErrNoRows {
		return 0, nil
	}
	if err != nil {
		return 0, err
	}
	version, err := strconv.Atoi(raw)
	if err != nil {
		return 0, fmt.Errorf("parsing schema version %q: %w", raw, err)
	}
	return version, nil
}

func writeSchemaVersion(db *sql.DB, version int) error {
	return writeMeta(db, schemaVersionKey, strconv.Itoa(version))
}

func writeMeta(db *sql.DB, key, value string) error {
	_, err := db.Exec(
		`INSERT INTO meta (key, value) VALUES (?, ?)
         ON CONFLICT(key) DO UPDATE SET value = excluded.value`,
		key, value,
	)
	return err
}

// ReadSetting returns the stored value for key, or ErrNotFound when the key
// has never been written.
func (b *Backend) ReadSetting(key string) (string, error) {
	b.mu.RLock()
	defer b.mu.RUnlock()

	if !b.attached {
		return "", types.ErrStoreUnavailable
	}
	var value string
	err := b.db.QueryRow(`SELECT value FROM meta WHERE key = ?`, key).Scan(&value)
	if err == sql.ErrNoRows {
		return "", types.ErrNotFound
	}
	if err != nil {
		return "", fmt.Errorf("reading setting %s: %w", key, err)
	}
	return value, nil
}

// WriteSetting stores value under key, replacing any previous value.
func (b *Backend) WriteSetting(key, value string) error {
	b.mu.Lock()
	defer b.mu.Unlock()

	if !b.attached {
		return types.ErrStoreUnavailable
	}
	if err := writeMeta(b.db, key, value); err != nil {
		return fmt.Errorf("writing setting %s: %w", key, err)
	}
	return nil
}
