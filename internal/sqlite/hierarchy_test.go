package sqlite

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cardboxhq/cardbox/pkg/types"
)

// buildTree creates root -> mid -> leaf and returns the three items.
func buildTree(t *testing.T, b *Backend) (root, mid, leaf *types.DocumentItem) {
	t.Helper()
	items := b.DocumentItems()

	leaf, err := items.Create(&types.DocumentItem{Title: "leaf"})
	require.NoError(t, err)
	mid, err = items.Create(&types.DocumentItem{Title: "mid", Children: []int64{leaf.ID}})
	require.NoError(t, err)
	root, err = items.Create(&types.DocumentItem{Title: "root", Children: []int64{mid.ID}})
	require.NoError(t, err)
	return root, mid, leaf
}

func TestHierarchy_RecomputeAllParents(t *testing.T) {
	b := setupBackend(t)
	root, mid, leaf := buildTree(t, b)

	changed, err := b.DocumentItems().RecomputeAllParents()
	require.NoError(t, err)
	assert.Equal(t, 2, changed)

	got, err := b.DocumentItems().Get(leaf.ID)
	require.NoError(t, err)
	assert.Equal(t, []int64{mid.ID}, got.Parents)

	got, err = b.DocumentItems().Get(mid.ID)
	require.NoError(t, err)
	assert.Equal(t, []int64{root.ID}, got.Parents)

	got, err = b.DocumentItems().Get(root.ID)
	require.NoError(t, err)
	assert.Empty(t, got.Parents)

	// A second run finds every cache current.
	changed, err = b.DocumentItems().RecomputeAllParents()
	require.NoError(t, err)
	assert.Zero(t, changed)
}

func TestHierarchy_RecomputeDoesNotTouchUpdateTime(t *testing.T) {
	b := setupBackend(t)
	_, _, leaf := buildTree(t, b)

	before, err := b.DocumentItems().Get(leaf.ID)
	require.NoError(t, err)

	_, err = b.DocumentItems().RecomputeAllParents()
	require.NoError(t, err)

	after, err := b.DocumentItems().Get(leaf.ID)
	require.NoError(t, err)
	assert.Equal(t, before.UpdateTime, after.UpdateTime)
}

func TestHierarchy_RecomputeParentsFor(t *testing.T) {
	b := setupBackend(t)
	_, mid, leaf := buildTree(t, b)

	changed, err := b.DocumentItems().RecomputeParentsFor([]int64{leaf.ID})
	require.NoError(t, err)
	assert.Equal(t, 1, changed)

	got, err := b.DocumentItems().Get(leaf.ID)
	require.NoError(t, err)
	assert.Equal(t, []int64{mid.ID}, got.Parents)

	// mid was not named, so its cache is still stale.
	got, err = b.DocumentItems().Get(mid.ID)
	require.NoError(t, err)
	assert.Empty(t, got.Parents)
}

func TestHierarchy_IsDescendantOf(t *testing.T) {
	b := setupBackend(t)
	root, mid, leaf := buildTree(t, b)

	ok, err := b.DocumentItems().IsDescendantOf(leaf.ID, root.ID)
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = b.DocumentItems().IsDescendantOf(root.ID, leaf.ID)
	require.NoError(t, err)
	assert.False(t, ok)

	ok, err = b.DocumentItems().IsDescendantOf(leaf.ID, mid.ID)
	require.NoError(t, err)
	assert.True(t, ok)

	_, err = b.DocumentItems().IsDescendantOf(0, root.ID)
	assert.ErrorIs(t, err, types.ErrInvalidID)
}

func TestHierarchy_IsDescendantOfCycle(t *testing.T) {
	b := setupBackend(t)
	items := b.DocumentItems()

	a, err := items.Create(&types.DocumentItem{Title: "a"})
	require.NoError(t, err)
	c, err := items.Create(&types.DocumentItem{Title: "b", Children: []int64{a.ID}})
	require.NoError(t, err)
	a.Children = []int64{c.ID}
	_, err = items.Update(a)
	require.NoError(t, err)

	// Mutual descent terminates and reports true both ways.
	ok, err := items.IsDescendantOf(c.ID, a.ID)
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = items.IsDescendantOf(a.ID, c.ID)
	require.NoError(t, err)
	assert.True(t, ok)
}

func TestHierarchy_DepthCap(t *testing.T) {
	b := setupBackend(t)
	items := b.DocumentItems()

	// Chain of four: n1 -> n2 -> n3 -> n4.
	n4, err := items.Create(&types.DocumentItem{Title: "n4"})
	require.NoError(t, err)
	n3, err := items.Create(&types.DocumentItem{Title: "n3", Children: []int64{n4.ID}})
	require.NoError(t, err)
	n2, err := items.Create(&types.DocumentItem{Title: "n2", Children: []int64{n3.ID}})
	require.NoError(t, err)
	n1, err := items.Create(&types.DocumentItem{Title: "n1", Children: []int64{n2.ID}})
	require.NoError(t, err)

	items.SetDepthCap(2)
	ok, err := items.IsDescendantOf(n3.ID, n1.ID)
	require.NoError(t, err)
	assert.True(t, ok)

	// n4 sits three levels down, beyond the cap.
	ok, err = items.IsDescendantOf(n4.ID, n1.ID)
	require.NoError(t, err)
	assert.False(t, ok)

	items.SetDepthCap(3)
	ok, err = items.IsDescendantOf(n4.ID, n1.ID)
	require.NoError(t, err)
	assert.True(t, ok)

	// Out-of-range caps are ignored.
	items.SetDepthCap(0)
	ok, err = items.IsDescendantOf(n4.ID, n1.ID)
	require.NoError(t, err)
	assert.True(t, ok)
}

func TestHierarchy_AllAncestors(t *testing.T) {
	b := setupBackend(t)
	root, mid, leaf := buildTree(t, b)

	_, err := b.DocumentItems().RecomputeAllParents()
	require.NoError(t, err)

	ancestors, err := b.DocumentItems().AllAncestors(leaf.ID)
	require.NoError(t, err)
	assert.Equal(t, []int64{mid.ID, root.ID}, ancestors)

	ancestors, err = b.DocumentItems().AllAncestors(root.ID)
	require.NoError(t, err)
	assert.Empty(t, ancestors)

	_, err = b.DocumentItems().AllAncestors(999)
	assert.ErrorIs(t, err, types.ErrNotFound)
}
