package sqlite

import (
	"database/sql"
	"fmt"

	"github.com/cardboxhq/cardbox/pkg/types"
)

// dailyNoteDef maps types.DailyNote onto the daily_notes table. The date
// column is UNIQUE; creating a second note for a date fails at the store.
var dailyNoteDef = rowDef[types.DailyNote]{
	table:       "daily_notes",
	contentType: types.ContentTypeDailyNote,
	columns:     []string{"date", "content"},
	orderBy:     "date DESC",
	id:          func(n *types.DailyNote) int64 { return n.ID },
	setID:       func(n *types.DailyNote, id int64) { n.ID = id },
	args: func(n *types.DailyNote) ([]any, error) {
		return []any{n.Date, n.Content}, nil
	},
	scan: func(s scanner, n *types.DailyNote) error {
		return s.Scan(&n.ID, &n.Date, &n.Content)
	},
}

// DailyNoteStore persists one journal entry per day.
type DailyNoteStore struct {
	table *table[types.DailyNote]
}

func (s *DailyNoteStore) Create(note *types.DailyNote) (*types.DailyNote, error) {
	return s.table.Create(note)
}

func (s *DailyNoteStore) Get(id int64) (*types.DailyNote, error) {
	return s.table.Get(id)
}

func (s *DailyNoteStore) List() ([]*types.DailyNote, error) {
	return s.table.List()
}

func (s *DailyNoteStore) Update(note *types.DailyNote) (*types.DailyNote, error) {
	return s.table.Update(note)
}

func (s *DailyNoteStore) Delete(id int64) (int64, error) {
	return s.table.Delete(id)
}

// ByDate returns the note for one YYYY-MM-DD date, or ErrNotFound.
func (s *DailyNoteStore) ByDate(date string) (*types.DailyNote, error) {
	b := s.table.backend
	b.mu.RLock()
	defer b.mu.RUnlock()

	if !b.attached {
		return nil, types.ErrStoreUnavailable
	}
	row := b.db.QueryRow(
		`SELECT id, date, content FROM daily_notes WHERE date = ?`, date,
	)
	var n types.DailyNote
	if err := dailyNoteDef.scan(row, &n); err != nil {
		if err == sql.ErrNoRows {
			return nil, types.ErrNotFound
		}
		return nil, fmt.Errorf("getting daily note for %s: %w", date, err)
	}
	return &n, nil
}
