package sqlite

import (
	"fmt"
	"sort"
	"time"

	"github.com/cardboxhq/cardbox/pkg/types"
)

// recordOperation appends one audit row. Logging is best effort: a failed
// append is logged and the triggering mutation proceeds. The caller must
// hold the write lock.
func (b *Backend) recordOperation(contentType string, contentID int64, action string) {
	if contentType == "" {
		return
	}
	_, err := b.db.Exec(
		`INSERT INTO operation (operation_time, operation_id, operation_content_type, operation_action)
         VALUES (?, ?, ?, ?)`,
		nowMillis(), contentID, contentType, action,
	)
	if err != nil {
		b.log.Warn().
			Err(err).
			Str("content_type", contentType).
			Int64("content_id", contentID).
			Str("action", action).
			Msg("recording operation")
	}
}

// OperationStore reads the append-only audit log. Rows are written as a side
// effect of entity mutations; nothing updates or deletes them.
type OperationStore struct {
	backend *Backend
}

// List returns every operation, oldest first.
func (s *OperationStore) List() ([]types.Operation, error) {
	b := s.backend
	b.mu.RLock()
	defer b.mu.RUnlock()

	if !b.attached {
		return nil, types.ErrStoreUnavailable
	}
	return s.listRange(0, 1<<62)
}

// RecordsByYear groups the operations of one calendar year by local date
// for the activity calendar. Within a day, repeated operations on the same
// (content type, content id) pair collapse to the latest one.
func (s *OperationStore) RecordsByYear(year int) ([]types.OperationRecord, error) {
	b := s.backend
	b.mu.RLock()
	defer b.mu.RUnlock()

	if !b.attached {
		return nil, types.ErrStoreUnavailable
	}
	start := time.Date(year, time.January, 1, 0, 0, 0, 0, time.Local).UnixMilli()
	end := time.Date(year+1, time.January, 1, 0, 0, 0, 0, time.Local).UnixMilli()
	ops, err := s.listRange(start, end)
	if err != nil {
		return nil, err
	}

	type dedupKey struct {
		contentType string
		contentID   int64
	}
	byDate := make(map[string]map[dedupKey]types.Operation)
	for _, op := range ops {
		date := time.UnixMilli(op.Time).Local().Format("2006-01-02")
		day := byDate[date]
		if day == nil {
			day = make(map[dedupKey]types.Operation)
			byDate[date] = day
		}
		// Rows arrive oldest first, so the last write wins.
		day[dedupKey{op.ContentType, op.ContentID}] = op
	}

	dates := make([]string, 0, len(byDate))
	for date := range byDate {
		dates = append(dates, date)
	}
	sort.Strings(dates)

	records := make([]types.OperationRecord, 0, len(dates))
	for _, date := range dates {
		day := byDate[date]
		ops := make([]types.Operation, 0, len(day))
		for _, op := range day {
			ops = append(ops, op)
		}
		sort.Slice(ops, func(i, j int) bool { return ops[i].Time < ops[j].Time })
		records = append(records, types.OperationRecord{Date: date, Operations: ops})
	}
	return records, nil
}

// listRange returns operations with start <= operation_time < end, oldest
// first. The caller must hold at least the read lock.
func (s *OperationStore) listRange(start, end int64) ([]types.Operation, error) {
	rows, err := s.backend.db.Query(
		`SELECT id, operation_time, operation_id, operation_content_type, operation_action
         FROM operation WHERE operation_time >= ? AND operation_time < ?
         ORDER BY operation_time, id`,
		start, end,
	)
	if err != nil {
		return nil, fmt.Errorf("querying operations: %w", err)
	}
	defer rows.Close()

	ops := []types.Operation{}
	for rows.Next() {
		var op types.Operation
		if err := rows.Scan(&op.ID, &op.Time, &op.ContentID, &op.ContentType, &op.Action); err != nil {
			return nil, fmt.Errorf("scanning operation: %w", err)
		}
		ops = append(ops, op)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating operations: %w", err)
	}
	return ops, nil
}
