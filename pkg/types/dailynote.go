package types

// DailyNote is a per-day journal entry. Date is a YYYY-MM-DD string and is
// unique per store.
type DailyNote struct {
	ID      int64  `json:"id"`
	Date    string `json:"date"`
	Content string `json:"content"`
}
