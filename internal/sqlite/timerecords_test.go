package sqlite

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cardboxhq/cardbox/pkg/types"
)

func TestTimeRecordStore_CreateGet(t *testing.T) {
	b := setupBackend(t)

	record, err := b.TimeRecords().Create(&types.TimeRecord{
		Date:      "2026-08-30",
		Cost:      90,
		Content:   "reading",
		EventType: "study",
		TimeType:  "deep",
	})
	require.NoError(t, err)
	assert.Positive(t, record.ID)

	got, err := b.TimeRecords().Get(record.ID)
	require.NoError(t, err)
	assert.Equal(t, record, got)
}

func TestTimeRecordStore_ByDate(t *testing.T) {
	b := setupBackend(t)

	first, err := b.TimeRecords().Create(&types.TimeRecord{Date: "2026-08-30", Content: "a"})
	require.NoError(t, err)
	second, err := b.TimeRecords().Create(&types.TimeRecord{Date: "2026-08-30", Content: "b"})
	require.NoError(t, err)
	_, err = b.TimeRecords().Create(&types.TimeRecord{Date: "2026-08-31", Content: "c"})
	require.NoError(t, err)

	records, err := b.TimeRecords().ByDate("2026-08-30")
	require.NoError(t, err)
	require.Len(t, records, 2)
	assert.Equal(t, first.ID, records[0].ID)
	assert.Equal(t, second.ID, records[1].ID)

	records, err = b.TimeRecords().ByDate("2026-01-01")
	require.NoError(t, err)
	assert.Empty(t, records)
}

func TestTimeRecordStore_ByTimeRange(t *testing.T) {
	b := setupBackend(t)

	for _, r := range []types.TimeRecord{
		{Date: "2026-08-29", Content: "early"},
		{Date: "2026-08-30", Content: "mid1"},
		{Date: "2026-08-30", Content: "mid2"},
		{Date: "2026-08-31", Content: "late"},
		{Date: "2026-09-01", Content: "outside"},
	} {
		record := r
		_, err := b.TimeRecords().Create(&record)
		require.NoError(t, err)
	}

	groups, err := b.TimeRecords().ByTimeRange("2026-08-30", "2026-08-31")
	require.NoError(t, err)
	require.Len(t, groups, 2)

	assert.Equal(t, "2026-08-30", groups[0].Date)
	require.Len(t, groups[0].TimeRecords, 2)
	assert.Equal(t, "mid1", groups[0].TimeRecords[0].Content)
	assert.Equal(t, "mid2", groups[0].TimeRecords[1].Content)

	assert.Equal(t, "2026-08-31", groups[1].Date)
	require.Len(t, groups[1].TimeRecords, 1)
}

func TestTimeRecordStore_DistinctTypes(t *testing.T) {
	b := setupBackend(t)

	for _, r := range []types.TimeRecord{
		{Date: "2026-08-30", EventType: "study", TimeType: "deep"},
		{Date: "2026-08-30", EventType: "study", TimeType: "shallow"},
		{Date: "2026-08-31", EventType: "exercise", TimeType: "deep"},
		{Date: "2026-08-31"},
	} {
		record := r
		_, err := b.TimeRecords().Create(&record)
		require.NoError(t, err)
	}

	eventTypes, err := b.TimeRecords().EventTypes()
	require.NoError(t, err)
	assert.Equal(t, []string{"exercise", "study"}, eventTypes)

	timeTypes, err := b.TimeRecords().TimeTypes()
	require.NoError(t, err)
	assert.Equal(t, []string{"deep", "shallow"}, timeTypes)
}

func TestTimeRecordStore_ListOrder(t *testing.T) {
	b := setupBackend(t)

	older, err := b.TimeRecords().Create(&types.TimeRecord{Date: "2026-08-29"})
	require.NoError(t, err)
	newer, err := b.TimeRecords().Create(&types.TimeRecord{Date: "2026-08-31"})
	require.NoError(t, err)

	records, err := b.TimeRecords().List()
	require.NoError(t, err)
	require.Len(t, records, 2)
	assert.Equal(t, newer.ID, records[0].ID)
	assert.Equal(t, older.ID, records[1].ID)
}
