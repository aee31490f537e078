package sqlite

import (
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/cardboxhq/cardbox/pkg/types"
)

// HistoryStore keeps append-only content snapshots per entity. Snapshots are
// written automatically on card and article updates and can be appended
// explicitly; nothing ever rewrites one.
type HistoryStore struct {
	backend *Backend
}

// Append stores a snapshot of content for the given entity and returns the
// persisted row.
func (s *HistoryStore) Append(contentType string, contentID int64, content string) (*types.History, error) {
	b := s.backend
	b.mu.Lock()
	defer b.mu.Unlock()

	if !b.attached {
		return nil, types.ErrStoreUnavailable
	}
	if contentID <= 0 {
		return nil, types.ErrInvalidID
	}
	return s.append(contentType, contentID, content)
}

// append assumes the write lock is held.
func (s *HistoryStore) append(contentType string, contentID int64, content string) (*types.History, error) {
	id, err := uuid.NewV7()
	if err != nil {
		return nil, fmt.Errorf("generating history ID: %w", err)
	}
	h := types.History{
		HistoryID:   id.String(),
		ContentType: contentType,
		ContentID:   contentID,
		Content:     content,
		CreatedAt:   time.Now().UTC(),
	}
	_, err = s.backend.db.Exec(
		`INSERT INTO history (history_id, content_type, content_id, content, created_at)
         VALUES (?, ?, ?, ?, ?)`,
		h.HistoryID, h.ContentType, h.ContentID, h.Content, h.CreatedAt.Format(time.RFC3339Nano),
	)
	if err != nil {
		return nil, fmt.Errorf("inserting history snapshot: %w", err)
	}
	return &h, nil
}

// ListByContent returns one page of an entity's snapshots, newest first.
// limit <= 0 means no limit.
func (s *HistoryStore) ListByContent(contentType string, contentID int64, limit, offset int) (*types.HistoryPage, error) {
	b := s.backend
	b.mu.RLock()
	defer b.mu.RUnlock()

	if !b.attached {
		return nil, types.ErrStoreUnavailable
	}

	var total int64
	err := b.db.QueryRow(
		`SELECT COUNT(*) FROM history WHERE content_type = ? AND content_id = ?`,
		contentType, contentID,
	).Scan(&total)
	if err != nil {
		return nil, fmt.Errorf("counting history: %w", err)
	}

	query := `SELECT history_id, content_type, content_id, content, created_at
              FROM history WHERE content_type = ? AND content_id = ?
              ORDER BY created_at DESC, rowid DESC`
	args := []any{contentType, contentID}
	if limit > 0 {
		query += " LIMIT ? OFFSET ?"
		args = append(args, limit, offset)
	}
	rows, err := b.db.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("querying history: %w", err)
	}
	defer rows.Close()

	items := []types.History{}
	for rows.Next() {
		var h types.History
		var createdAt string
		if err := rows.Scan(&h.HistoryID, &h.ContentType, &h.ContentID, &h.Content, &createdAt); err != nil {
			return nil, fmt.Errorf("scanning history row: %w", err)
		}
		if h.CreatedAt, err = time.Parse(time.RFC3339Nano, createdAt); err != nil {
			return nil, fmt.Errorf("parsing history created_at: %w", err)
		}
		items = append(items, h)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating history: %w", err)
	}
	return &types.HistoryPage{Items: items, Total: total}, nil
}

// snapshotHistory appends a snapshot best effort, logging failures instead
// of surfacing them. Used by the card and article update paths.
func (b *Backend) snapshotHistory(contentType string, contentID int64, content string) {
	b.mu.Lock()
	defer b.mu.Unlock()

	if !b.attached {
		return
	}
	if _, err := b.history.append(contentType, contentID, content); err != nil {
		b.log.Warn().
			Err(err).
			Str("content_type", contentType).
			Int64("content_id", contentID).
			Msg("snapshotting history")
	}
}
