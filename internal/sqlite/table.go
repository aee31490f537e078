package sqlite

import (
	"database/sql"
	"fmt"
	"strings"
	"time"

	"github.com/cardboxhq/cardbox/pkg/types"
)

// scanner abstracts sql.Row and sql.Rows so one scan routine serves both.
type scanner interface {
	Scan(dest ...any) error
}

// rowDef maps one entity type onto its table. The per-entity defs live next
// to their store types; everything the CRUD cycle needs to know about an
// entity is captured here so table can stay generic.
type rowDef[E any] struct {
	table       string
	contentType string   // operation log name; empty disables logging
	columns     []string // column names excluding id, in args order
	softDelete  bool
	orderBy     string // List ordering; empty means unordered

	id    func(*E) int64
	setID func(*E, int64)
	touch func(e *E, now int64, create bool) // nil when the table has no timestamps
	args  func(*E) ([]any, error)
	scan  func(scanner, *E) error // scans id followed by columns
}

// table is the generic store over one entity table. Public methods take the
// backend lock; the lowercase variants assume it is already held so stores
// can compose them with their own SQL under a single critical section.
type table[E any] struct {
	backend *Backend
	def     rowDef[E]

	selectCols string
	insertStmt string
	updateStmt string
}

func newTable[E any](b *Backend, def rowDef[E]) *table[E] {
	cols := strings.Join(def.columns, ", ")
	placeholders := strings.TrimSuffix(strings.Repeat("?, ", len(def.columns)), ", ")
	sets := make([]string, len(def.columns))
	for i, c := range def.columns {
		sets[i] = c + " = ?"
	}
	return &table[E]{
		backend:    b,
		def:        def,
		selectCols: "id, " + cols,
		insertStmt: fmt.Sprintf("INSERT INTO %s (%s) VALUES (%s)", def.table, cols, placeholders),
		updateStmt: fmt.Sprintf("UPDATE %s SET %s WHERE id = ?", def.table, strings.Join(sets, ", ")),
	}
}

// Get retrieves one row by id. Soft-deleted rows are still returned;
// filtering them is List's job.
func (t *table[E]) Get(id int64) (*E, error) {
	t.backend.mu.RLock()
	defer t.backend.mu.RUnlock()

	if !t.backend.attached {
		return nil, types.ErrStoreUnavailable
	}
	return t.get(id)
}

func (t *table[E]) get(id int64) (*E, error) {
	if id <= 0 {
		return nil, types.ErrInvalidID
	}
	row := t.backend.db.QueryRow(
		fmt.Sprintf("SELECT %s FROM %s WHERE id = ?", t.selectCols, t.def.table), id,
	)
	var e E
	if err := t.def.scan(row, &e); err != nil {
		if err == sql.ErrNoRows {
			return nil, types.ErrNotFound
		}
		return nil, fmt.Errorf("getting %s row %d: %w", t.def.table, id, err)
	}
	return &e, nil
}

// List returns all live rows. Soft-deleted rows are excluded; a store with
// no rows yields an empty slice, not nil.
func (t *table[E]) List() ([]*E, error) {
	t.backend.mu.RLock()
	defer t.backend.mu.RUnlock()

	if !t.backend.attached {
		return nil, types.ErrStoreUnavailable
	}
	return t.list()
}

func (t *table[E]) list() ([]*E, error) {
	query := fmt.Sprintf("SELECT %s FROM %s", t.selectCols, t.def.table)
	if t.def.softDelete {
		query += " WHERE is_delete = 0"
	}
	if t.def.orderBy != "" {
		query += " ORDER BY " + t.def.orderBy
	}

	rows, err := t.backend.db.Query(query)
	if err != nil {
		return nil, fmt.Errorf("listing %s: %w", t.def.table, err)
	}
	defer rows.Close()

	results := []*E{}
	for rows.Next() {
		var e E
		if err := t.def.scan(rows, &e); err != nil {
			return nil, fmt.Errorf("scanning %s row: %w", t.def.table, err)
		}
		results = append(results, &e)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating %s: %w", t.def.table, err)
	}
	return results, nil
}

// Create inserts e, assigns the generated rowid, records the operation, and
// returns the row as persisted.
func (t *table[E]) Create(e *E) (*E, error) {
	t.backend.mu.Lock()
	defer t.backend.mu.Unlock()

	if !t.backend.attached {
		return nil, types.ErrStoreUnavailable
	}
	return t.create(e)
}

func (t *table[E]) create(e *E) (*E, error) {
	if t.def.touch != nil {
		t.def.touch(e, nowMillis(), true)
	}
	args, err := t.def.args(e)
	if err != nil {
		return nil, err
	}
	res, err := t.backend.db.Exec(t.insertStmt, args...)
	if err != nil {
		return nil, fmt.Errorf("inserting into %s: %w", t.def.table, err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return nil, fmt.Errorf("reading %s rowid: %w", t.def.table, err)
	}
	t.def.setID(e, id)
	t.backend.recordOperation(t.def.contentType, id, types.ActionInsert)
	return t.get(id)
}

// Update persists every column of e, bumps update_time, records the
// operation, and returns the row as persisted. Returns ErrNotFound when no
// row carries e's id.
func (t *table[E]) Update(e *E) (*E, error) {
	t.backend.mu.Lock()
	defer t.backend.mu.Unlock()

	if !t.backend.attached {
		return nil, types.ErrStoreUnavailable
	}
	return t.update(e)
}

func (t *table[E]) update(e *E) (*E, error) {
	id := t.def.id(e)
	if id <= 0 {
		return nil, types.ErrInvalidID
	}
	if t.def.touch != nil {
		t.def.touch(e, nowMillis(), false)
	}
	args, err := t.def.args(e)
	if err != nil {
		return nil, err
	}
	args = append(args, id)
	res, err := t.backend.db.Exec(t.updateStmt, args...)
	if err != nil {
		return nil, fmt.Errorf("updating %s row %d: %w", t.def.table, id, err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return nil, fmt.Errorf("reading %s update count: %w", t.def.table, err)
	}
	if affected == 0 {
		return nil, types.ErrNotFound
	}
	t.backend.recordOperation(t.def.contentType, id, types.ActionUpdate)
	return t.get(id)
}

// Delete removes the row with id: soft-delete tables flip is_delete, the
// rest drop the row. Returns the number of rows affected; deleting a missing
// id is not an error.
func (t *table[E]) Delete(id int64) (int64, error) {
	t.backend.mu.Lock()
	defer t.backend.mu.Unlock()

	if !t.backend.attached {
		return 0, types.ErrStoreUnavailable
	}
	return t.delete(id)
}

func (t *table[E]) delete(id int64) (int64, error) {
	if id <= 0 {
		return 0, types.ErrInvalidID
	}
	var (
		res sql.Result
		err error
	)
	if t.def.softDelete {
		res, err = t.backend.db.Exec(
			fmt.Sprintf("UPDATE %s SET is_delete = 1 WHERE id = ?", t.def.table), id,
		)
	} else {
		res, err = t.backend.db.Exec(
			fmt.Sprintf("DELETE FROM %s WHERE id = ?", t.def.table), id,
		)
	}
	if err != nil {
		return 0, fmt.Errorf("deleting %s row %d: %w", t.def.table, id, err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("reading %s delete count: %w", t.def.table, err)
	}
	if affected > 0 {
		t.backend.recordOperation(t.def.contentType, id, types.ActionDelete)
	}
	return affected, nil
}

// nowMillis is the timestamp source for create_time, update_time, and
// operation_time.
func nowMillis() int64 {
	return time.Now().UnixMilli()
}
