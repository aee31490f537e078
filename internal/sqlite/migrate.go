package sqlite

import (
	"database/sql"
	"fmt"
	"strings"

	"github.com/cardboxhq/cardbox/pkg/types"
)

// runMigrations brings the store at db to the current schema version. Missing
// tables and indexes are created first, then each upgrade routine above the
// persisted version runs in order. The version is written back only once
// every routine has succeeded, so a failed run leaves the old version in
// place and the next attach retries the remaining upgrades.
func (b *Backend) runMigrations(db *sql.DB) error {
	for _, t := range schemaDDL {
		if _, err := db.Exec(t.ddl); err != nil {
			return &types.SchemaError{Table: t.name, Err: fmt.Errorf("creating table: %w", err)}
		}
	}
	for _, ddl := range indexDDL {
		if _, err := db.Exec(ddl); err != nil {
			return fmt.Errorf("creating index: %w", err)
		}
	}

	version, err := readSchemaVersion(db)
	if err != nil {
		return fmt.Errorf("reading schema version: %w", err)
	}
	if version >= schemaVersion {
		return nil
	}

	for _, up := range tableUpgrades {
		if up.version <= version {
			continue
		}
		if err := up.apply(db); err != nil {
			return &types.SchemaError{Table: up.table, Err: err}
		}
		b.log.Debug().
			Str("table", up.table).
			Int("version", up.version).
			Msg("applied schema upgrade")
	}

	if err := writeSchemaVersion(db, schemaVersion); err != nil {
		return fmt.Errorf("writing schema version: %w", err)
	}
	b.log.Info().Int("from", version).Int("to", schemaVersion).Msg("schema upgraded")
	return nil
}

// tableHasColumn reports whether the stored CREATE statement for table
// mentions column. SQLite rewrites the stored statement when a column is
// added, so this doubles as an applied-upgrade probe. Column names within a
// table must not be substrings of one another.
func tableHasColumn(db *sql.DB, table, column string) (bool, error) {
	var ddl string
	err := db.QueryRow(
		`SELECT sql FROM sqlite_master WHERE type = 'table' AND name = ?`, table,
	).Scan(&ddl)
	if err == sql.ErrNoRows {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return strings.Contains(ddl, column), nil
}

// addColumn adds column to table unless it is already present.
func addColumn(db *sql.DB, table, column, definition string) error {
	_, err := addColumnIfMissing(db, table, column, definition)
	return err
}

// addColumnIfMissing adds column to table and reports whether the ALTER ran.
func addColumnIfMissing(db *sql.DB, table, column, definition string) (bool, error) {
	present, err := tableHasColumn(db, table, column)
	if err != nil {
		return false, fmt.Errorf("probing %s.%s: %w", table, column, err)
	}
	if present {
		return false, nil
	}
	stmt := fmt.Sprintf(`ALTER TABLE %s ADD COLUMN "%s" %s`, table, column, definition)
	if _, err := db.Exec(stmt); err != nil {
		return false, fmt.Errorf("adding %s.%s: %w", table, column, err)
	}
	return true, nil
}
