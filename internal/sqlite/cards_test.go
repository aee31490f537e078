package sqlite

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cardboxhq/cardbox/pkg/types"
)

func TestCardStore_CreateGet(t *testing.T) {
	b := setupBackend(t)

	card, err := b.Cards().Create(&types.Card{
		Content: "atomic note",
		Tags:    []string{"zettel", "go"},
		Links:   []int64{},
	})
	require.NoError(t, err)
	assert.Positive(t, card.ID)
	assert.Equal(t, types.CardCategoryPermanent, card.Category)
	assert.Positive(t, card.CreateTime)
	assert.Equal(t, card.CreateTime, card.UpdateTime)
	assert.Equal(t, int64(len([]rune("atomic note"))), card.Count)

	got, err := b.Cards().Get(card.ID)
	require.NoError(t, err)
	assert.Equal(t, card, got)
}

func TestCardStore_GetErrors(t *testing.T) {
	b := setupBackend(t)

	_, err := b.Cards().Get(0)
	assert.ErrorIs(t, err, types.ErrInvalidID)

	_, err = b.Cards().Get(999)
	assert.ErrorIs(t, err, types.ErrNotFound)
}

func TestCardStore_TagRoundTrip(t *testing.T) {
	b := setupBackend(t)

	// Order and duplicates survive the JSON column.
	card, err := b.Cards().Create(&types.Card{
		Content: "x",
		Tags:    []string{"a", "B", "a"},
	})
	require.NoError(t, err)

	got, err := b.Cards().Get(card.ID)
	require.NoError(t, err)
	assert.Equal(t, []string{"a", "B", "a"}, got.Tags)
}

func TestCardStore_EmptyListsNotNull(t *testing.T) {
	b := setupBackend(t)

	card, err := b.Cards().Create(&types.Card{Content: "bare"})
	require.NoError(t, err)

	got, err := b.Cards().Get(card.ID)
	require.NoError(t, err)
	assert.NotNil(t, got.Tags)
	assert.NotNil(t, got.Links)
	assert.Empty(t, got.Tags)
	assert.Empty(t, got.Links)
}

func TestCardStore_Update(t *testing.T) {
	b := setupBackend(t)

	card, err := b.Cards().Create(&types.Card{Content: "before"})
	require.NoError(t, err)

	time.Sleep(2 * time.Millisecond)

	card.Content = "after"
	card.Tags = []string{"edited"}
	updated, err := b.Cards().Update(card)
	require.NoError(t, err)

	assert.Equal(t, "after", updated.Content)
	assert.Equal(t, []string{"edited"}, updated.Tags)
	assert.Equal(t, card.CreateTime, updated.CreateTime)
	assert.Greater(t, updated.UpdateTime, updated.CreateTime)
}

func TestCardStore_UpdateMissing(t *testing.T) {
	b := setupBackend(t)

	_, err := b.Cards().Update(&types.Card{ID: 42, Content: "ghost"})
	assert.ErrorIs(t, err, types.ErrNotFound)
}

func TestCardStore_Delete(t *testing.T) {
	b := setupBackend(t)

	card, err := b.Cards().Create(&types.Card{Content: "to delete"})
	require.NoError(t, err)

	n, err := b.Cards().Delete(card.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(1), n)

	// Hard delete: the row is gone.
	_, err = b.Cards().Get(card.ID)
	assert.ErrorIs(t, err, types.ErrNotFound)

	// Deleting again affects nothing and is not an error.
	n, err = b.Cards().Delete(card.ID)
	require.NoError(t, err)
	assert.Zero(t, n)
}

func TestCardStore_ListOrder(t *testing.T) {
	b := setupBackend(t)

	first, err := b.Cards().Create(&types.Card{Content: "first"})
	require.NoError(t, err)
	time.Sleep(2 * time.Millisecond)
	second, err := b.Cards().Create(&types.Card{Content: "second"})
	require.NoError(t, err)

	cards, err := b.Cards().List()
	require.NoError(t, err)
	require.Len(t, cards, 2)
	assert.Equal(t, second.ID, cards[0].ID)
	assert.Equal(t, first.ID, cards[1].ID)

	// Updating the older card moves it to the front.
	time.Sleep(2 * time.Millisecond)
	first.Content = "first, edited"
	_, err = b.Cards().Update(first)
	require.NoError(t, err)

	cards, err = b.Cards().List()
	require.NoError(t, err)
	assert.Equal(t, first.ID, cards[0].ID)
}

func TestCardStore_GroupByTag(t *testing.T) {
	b := setupBackend(t)

	rust, err := b.Cards().Create(&types.Card{Content: "rust card", Tags: []string{"Rust"}})
	require.NoError(t, err)
	_, err = b.Cards().Create(&types.Card{Content: "other", Tags: []string{"go"}})
	require.NoError(t, err)
	// Duplicate tag on one card yields two entries in its group.
	dup, err := b.Cards().Create(&types.Card{Content: "dup", Tags: []string{"Rust", "rust"}})
	require.NoError(t, err)

	groups, err := b.Cards().GroupByTag()
	require.NoError(t, err)

	require.Contains(t, groups, "rust")
	require.Contains(t, groups, "go")
	assert.Len(t, groups["rust"], 3)

	var dupCount int
	for _, c := range groups["rust"] {
		if c.ID == dup.ID {
			dupCount++
		}
	}
	assert.Equal(t, 2, dupCount)

	var seenRust bool
	for _, c := range groups["rust"] {
		if c.ID == rust.ID {
			seenRust = true
		}
	}
	assert.True(t, seenRust)
}
