package sqlite

import (
	"fmt"
	"sort"

	"github.com/cardboxhq/cardbox/pkg/types"
)

// timeRecordDef maps types.TimeRecord onto the time_records table. The table
// carries no timestamps of its own; Date is user-supplied.
var timeRecordDef = rowDef[types.TimeRecord]{
	table:       "time_records",
	contentType: types.ContentTypeTimeRecord,
	columns:     []string{"date", "cost", "content", "event_type", "time_type"},
	orderBy:     "date DESC, id DESC",
	id:          func(r *types.TimeRecord) int64 { return r.ID },
	setID:       func(r *types.TimeRecord, id int64) { r.ID = id },
	args: func(r *types.TimeRecord) ([]any, error) {
		return []any{r.Date, r.Cost, r.Content, r.EventType, r.TimeType}, nil
	},
	scan: func(s scanner, r *types.TimeRecord) error {
		return s.Scan(&r.ID, &r.Date, &r.Cost, &r.Content, &r.EventType, &r.TimeType)
	},
}

// TimeRecordStore persists logged time expenditures.
type TimeRecordStore struct {
	table *table[types.TimeRecord]
}

func (s *TimeRecordStore) Create(record *types.TimeRecord) (*types.TimeRecord, error) {
	return s.table.Create(record)
}

func (s *TimeRecordStore) Get(id int64) (*types.TimeRecord, error) {
	return s.table.Get(id)
}

func (s *TimeRecordStore) List() ([]*types.TimeRecord, error) {
	return s.table.List()
}

func (s *TimeRecordStore) Update(record *types.TimeRecord) (*types.TimeRecord, error) {
	return s.table.Update(record)
}

func (s *TimeRecordStore) Delete(id int64) (int64, error) {
	return s.table.Delete(id)
}

// ByDate returns the records logged on one YYYY-MM-DD date.
func (s *TimeRecordStore) ByDate(date string) ([]*types.TimeRecord, error) {
	b := s.table.backend
	b.mu.RLock()
	defer b.mu.RUnlock()

	if !b.attached {
		return nil, types.ErrStoreUnavailable
	}
	rows, err := b.db.Query(
		`SELECT id, date, cost, content, event_type, time_type
         FROM time_records WHERE date = ? ORDER BY id`, date,
	)
	if err != nil {
		return nil, fmt.Errorf("querying time records for %s: %w", date, err)
	}
	defer rows.Close()

	records := []*types.TimeRecord{}
	for rows.Next() {
		var r types.TimeRecord
		if err := timeRecordDef.scan(rows, &r); err != nil {
			return nil, fmt.Errorf("scanning time record: %w", err)
		}
		records = append(records, &r)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating time records: %w", err)
	}
	return records, nil
}

// ByTimeRange returns the records with start <= date <= end, grouped by
// date in ascending order. Dates compare lexically, which is correct for
// YYYY-MM-DD strings.
func (s *TimeRecordStore) ByTimeRange(start, end string) ([]types.TimeRecordGroup, error) {
	b := s.table.backend
	b.mu.RLock()
	defer b.mu.RUnlock()

	if !b.attached {
		return nil, types.ErrStoreUnavailable
	}
	rows, err := b.db.Query(
		`SELECT id, date, cost, content, event_type, time_type
         FROM time_records WHERE date >= ? AND date <= ? ORDER BY date, id`,
		start, end,
	)
	if err != nil {
		return nil, fmt.Errorf("querying time records in [%s, %s]: %w", start, end, err)
	}
	defer rows.Close()

	byDate := make(map[string][]types.TimeRecord)
	for rows.Next() {
		var r types.TimeRecord
		if err := timeRecordDef.scan(rows, &r); err != nil {
			return nil, fmt.Errorf("scanning time record: %w", err)
		}
		byDate[r.Date] = append(byDate[r.Date], r)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating time records: %w", err)
	}

	dates := make([]string, 0, len(byDate))
	for date := range byDate {
		dates = append(dates, date)
	}
	sort.Strings(dates)

	groups := make([]types.TimeRecordGroup, 0, len(dates))
	for _, date := range dates {
		groups = append(groups, types.TimeRecordGroup{Date: date, TimeRecords: byDate[date]})
	}
	return groups, nil
}

// EventTypes returns the distinct event type labels in use, sorted.
func (s *TimeRecordStore) EventTypes() ([]string, error) {
	return s.distinct("event_type")
}

// TimeTypes returns the distinct time type labels in use, sorted.
func (s *TimeRecordStore) TimeTypes() ([]string, error) {
	return s.distinct("time_type")
}

func (s *TimeRecordStore) distinct(column string) ([]string, error) {
	b := s.table.backend
	b.mu.RLock()
	defer b.mu.RUnlock()

	if !b.attached {
		return nil, types.ErrStoreUnavailable
	}
	rows, err := b.db.Query(fmt.Sprintf(
		`SELECT DISTINCT %s FROM time_records WHERE %s != '' ORDER BY %s`,
		column, column, column,
	))
	if err != nil {
		return nil, fmt.Errorf("querying distinct %s: %w", column, err)
	}
	defer rows.Close()

	values := []string{}
	for rows.Next() {
		var v string
		if err := rows.Scan(&v); err != nil {
			return nil, fmt.Errorf("scanning %s: %w", column, err)
		}
		values = append(values, v)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating %s: %w", column, err)
	}
	return values, nil
}
