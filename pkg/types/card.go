package types

// Card categories. New cards default to permanent.
const (
	CardCategoryPermanent  = "permanent"
	CardCategoryLiterature = "literature"
	CardCategoryTemporary  = "temporary"
)

// Card is an atomic note. Tags and links are stored as JSON text columns.
// Cards are hard-deleted: nothing references a card row after the wrappers
// pointing at it are cleaned up.
type Card struct {
	ID         int64    `json:"id"`
	CreateTime int64    `json:"create_time"`
	UpdateTime int64    `json:"update_time"`
	Tags       []string `json:"tags"`
	Links      []int64  `json:"links"`
	Content    string   `json:"content"`
	Category   string   `json:"category"`
	Count      int64    `json:"count"`
}
