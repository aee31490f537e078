package types

// Operation actions.
const (
	ActionInsert = "insert"
	ActionUpdate = "update"
	ActionDelete = "delete"
)

// Content type names used by the operation log and the mirror propagator.
const (
	ContentTypeCard         = "card"
	ContentTypeArticle      = "article"
	ContentTypeDocument     = "document"
	ContentTypeDocumentItem = "document_item"
	ContentTypeProject      = "project"
	ContentTypeProjectItem  = "project_item"
	ContentTypeTimeRecord   = "time_record"
	ContentTypeDailyNote    = "daily_note"
	ContentTypeWhiteBoard   = "white_board"
	ContentTypePdf          = "pdf"
)

// Operation is one append-only audit row. Operations are never updated or
// deleted.
type Operation struct {
	ID          int64  `json:"id"`
	Time        int64  `json:"operation_time"`
	ContentType string `json:"operation_content_type"`
	ContentID   int64  `json:"operation_id"`
	Action      string `json:"operation_action"`
}

// OperationRecord collects the operations of a single date for the activity
// calendar.
type OperationRecord struct {
	Date       string      `json:"time"`
	Operations []Operation `json:"operation_list"`
}
