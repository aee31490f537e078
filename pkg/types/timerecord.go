package types

// TimeRecord is one logged time expenditure. Date is a YYYY-MM-DD string;
// Cost is minutes.
type TimeRecord struct {
	ID        int64  `json:"id"`
	Date      string `json:"date"`
	Cost      int64  `json:"cost"`
	Content   string `json:"content"`
	EventType string `json:"event_type"`
	TimeType  string `json:"time_type"`
}

// TimeRecordGroup collects the records of a single date.
type TimeRecordGroup struct {
	Date        string       `json:"date"`
	TimeRecords []TimeRecord `json:"time_records"`
}
