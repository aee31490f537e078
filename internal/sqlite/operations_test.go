package sqlite

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cardboxhq/cardbox/pkg/types"
)

func TestOperations_MutationsAreLogged(t *testing.T) {
	b := setupBackend(t)

	card, err := b.Cards().Create(&types.Card{Content: "tracked"})
	require.NoError(t, err)
	card.Content = "tracked, edited"
	_, err = b.Cards().Update(card)
	require.NoError(t, err)
	_, err = b.Cards().Delete(card.ID)
	require.NoError(t, err)

	ops, err := b.Operations().List()
	require.NoError(t, err)
	require.Len(t, ops, 3)

	// Oldest first.
	assert.Equal(t, types.ActionInsert, ops[0].Action)
	assert.Equal(t, types.ActionUpdate, ops[1].Action)
	assert.Equal(t, types.ActionDelete, ops[2].Action)
	for _, op := range ops {
		assert.Equal(t, types.ContentTypeCard, op.ContentType)
		assert.Equal(t, card.ID, op.ContentID)
		assert.Positive(t, op.Time)
	}
}

func TestOperations_DeleteMissingNotLogged(t *testing.T) {
	b := setupBackend(t)

	n, err := b.Cards().Delete(123)
	require.NoError(t, err)
	assert.Zero(t, n)

	ops, err := b.Operations().List()
	require.NoError(t, err)
	assert.Empty(t, ops)
}

// insertOperation writes an audit row with a chosen timestamp so grouping
// can be tested across days.
func insertOperation(t *testing.T, b *Backend, at time.Time, contentType string, contentID int64, action string) {
	t.Helper()
	b.mu.Lock()
	defer b.mu.Unlock()
	_, err := b.db.Exec(
		`INSERT INTO operation (operation_time, operation_id, operation_content_type, operation_action)
         VALUES (?, ?, ?, ?)`,
		at.UnixMilli(), contentID, contentType, action,
	)
	require.NoError(t, err)
}

func TestOperations_RecordsByYear(t *testing.T) {
	b := setupBackend(t)

	day1 := time.Date(2026, time.March, 5, 9, 0, 0, 0, time.Local)
	day2 := time.Date(2026, time.March, 6, 9, 0, 0, 0, time.Local)

	// Card 1 is touched twice on day1; only the later row should remain.
	insertOperation(t, b, day1, types.ContentTypeCard, 1, types.ActionInsert)
	insertOperation(t, b, day1.Add(time.Hour), types.ContentTypeCard, 1, types.ActionUpdate)
	insertOperation(t, b, day1.Add(2*time.Hour), types.ContentTypeArticle, 7, types.ActionInsert)
	insertOperation(t, b, day2, types.ContentTypeCard, 2, types.ActionInsert)
	// A different year stays out of the report.
	insertOperation(t, b, day1.AddDate(-1, 0, 0), types.ContentTypeCard, 3, types.ActionInsert)

	records, err := b.Operations().RecordsByYear(2026)
	require.NoError(t, err)
	require.Len(t, records, 2)

	assert.Equal(t, "2026-03-05", records[0].Date)
	require.Len(t, records[0].Operations, 2)
	assert.Equal(t, types.ActionUpdate, records[0].Operations[0].Action)
	assert.Equal(t, int64(1), records[0].Operations[0].ContentID)
	assert.Equal(t, int64(7), records[0].Operations[1].ContentID)

	assert.Equal(t, "2026-03-06", records[1].Date)
	require.Len(t, records[1].Operations, 1)
	assert.Equal(t, int64(2), records[1].Operations[0].ContentID)
}

func TestOperations_RecordsByYearEmpty(t *testing.T) {
	b := setupBackend(t)

	records, err := b.Operations().RecordsByYear(1999)
	require.NoError(t, err)
	assert.Empty(t, records)
}
