package sqlite

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cardboxhq/cardbox/pkg/types"
)

func TestWhiteBoardStore_CRUD(t *testing.T) {
	b := setupBackend(t)

	board, err := b.WhiteBoards().Create(&types.WhiteBoard{
		Title:       "sketch",
		Description: "architecture ideas",
		Tags:        []string{"design"},
		Data:        `{"shapes":[]}`,
	})
	require.NoError(t, err)

	got, err := b.WhiteBoards().Get(board.ID)
	require.NoError(t, err)
	assert.Equal(t, board, got)
	// Data passes through untouched.
	assert.Equal(t, `{"shapes":[]}`, got.Data)

	board.Title = "sketch v2"
	updated, err := b.WhiteBoards().Update(board)
	require.NoError(t, err)
	assert.Equal(t, "sketch v2", updated.Title)

	n, err := b.WhiteBoards().Delete(board.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(1), n)

	// Soft delete: resolvable, not listed.
	got, err = b.WhiteBoards().Get(board.ID)
	require.NoError(t, err)
	assert.True(t, got.IsDelete)

	boards, err := b.WhiteBoards().List()
	require.NoError(t, err)
	assert.Empty(t, boards)
}
