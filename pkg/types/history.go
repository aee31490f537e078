package types

import "time"

// History is one content snapshot for a (content type, content id) pair.
// History rows are append-only and independent of the operation log.
type History struct {
	HistoryID   string    `json:"history_id"`
	ContentType string    `json:"content_type"`
	ContentID   int64     `json:"content_id"`
	Content     string    `json:"content"`
	CreatedAt   time.Time `json:"created_at"`
}

// HistoryPage is one page of history snapshots, newest first.
type HistoryPage struct {
	Items []History `json:"items"`
	Total int64     `json:"total"`
}
