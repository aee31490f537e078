package sqlite

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cardboxhq/cardbox/pkg/types"
)

func TestProjectStore_CreateGet(t *testing.T) {
	b := setupBackend(t)

	project, err := b.Projects().Create(&types.Project{
		Title: "thesis",
		Desc:  "everything thesis-related",
	})
	require.NoError(t, err)
	assert.Positive(t, project.ID)

	got, err := b.Projects().Get(project.ID)
	require.NoError(t, err)
	assert.Equal(t, project, got)
}

func TestProjectStore_Delete(t *testing.T) {
	b := setupBackend(t)

	project, err := b.Projects().Create(&types.Project{Title: "short-lived"})
	require.NoError(t, err)

	n, err := b.Projects().Delete(project.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(1), n)

	_, err = b.Projects().Get(project.ID)
	assert.ErrorIs(t, err, types.ErrNotFound)
}

func TestProjectItemStore_ByRef(t *testing.T) {
	b := setupBackend(t)

	card, err := b.Cards().Create(&types.Card{Content: "referenced"})
	require.NoError(t, err)
	item, err := b.ProjectItems().Create(&types.ProjectItem{
		Title:   "ref",
		RefType: types.RefTypeCard,
		RefID:   card.ID,
	})
	require.NoError(t, err)
	_, err = b.ProjectItems().Create(&types.ProjectItem{Title: "plain"})
	require.NoError(t, err)

	matches, err := b.ProjectItems().ByRef(types.RefTypeCard, card.ID)
	require.NoError(t, err)
	require.Len(t, matches, 1)
	assert.Equal(t, item.ID, matches[0].ID)

	matches, err = b.ProjectItems().ByRef(types.RefTypeArticle, card.ID)
	require.NoError(t, err)
	assert.Empty(t, matches)
}

func TestProjectItemStore_CountInProject(t *testing.T) {
	b := setupBackend(t)

	project, err := b.Projects().Create(&types.Project{Title: "p"})
	require.NoError(t, err)
	other, err := b.Projects().Create(&types.Project{Title: "q"})
	require.NoError(t, err)

	_, err = b.ProjectItems().Create(&types.ProjectItem{Title: "a", Projects: []int64{project.ID}})
	require.NoError(t, err)
	_, err = b.ProjectItems().Create(&types.ProjectItem{Title: "b", Projects: []int64{project.ID, other.ID}})
	require.NoError(t, err)
	_, err = b.ProjectItems().Create(&types.ProjectItem{Title: "c", Projects: []int64{other.ID}})
	require.NoError(t, err)

	count, err := b.ProjectItems().CountInProject(project.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(2), count)
}

func TestProjectItemStore_ItemsNotInProject(t *testing.T) {
	b := setupBackend(t)
	items := b.ProjectItems()

	nested, err := items.Create(&types.ProjectItem{Title: "nested"})
	require.NoError(t, err)
	top, err := items.Create(&types.ProjectItem{
		Title:    "top",
		Children: []int64{nested.ID},
	})
	require.NoError(t, err)
	stale, err := items.Create(&types.ProjectItem{Title: "stale"})
	require.NoError(t, err)

	project, err := b.Projects().Create(&types.Project{
		Title:    "tree",
		Children: []int64{top.ID},
	})
	require.NoError(t, err)

	// All three claim membership, but stale hangs off no child chain.
	for _, item := range []*types.ProjectItem{nested, top, stale} {
		item.Projects = []int64{project.ID}
		_, err = items.Update(item)
		require.NoError(t, err)
	}

	got, err := items.ItemsNotInProject(project.ID)
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, stale.ID, got[0].ID)

	deleted, err := items.DeleteItemsNotInProject(project.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(1), deleted)

	_, err = items.Get(stale.ID)
	assert.ErrorIs(t, err, types.ErrNotFound)
}

func TestProjectItemStore_Orphans(t *testing.T) {
	b := setupBackend(t)
	items := b.ProjectItems()

	project, err := b.Projects().Create(&types.Project{Title: "home"})
	require.NoError(t, err)

	kept, err := items.Create(&types.ProjectItem{Title: "kept", Projects: []int64{project.ID}})
	require.NoError(t, err)
	orphan, err := items.Create(&types.ProjectItem{Title: "orphan"})
	require.NoError(t, err)

	isOrphan, err := items.IsOrphan(orphan.ID)
	require.NoError(t, err)
	assert.True(t, isOrphan)
	isOrphan, err = items.IsOrphan(kept.ID)
	require.NoError(t, err)
	assert.False(t, isOrphan)

	orphans, err := items.Orphans()
	require.NoError(t, err)
	require.Len(t, orphans, 1)
	assert.Equal(t, orphan.ID, orphans[0].ID)

	deleted, err := items.DeleteOrphans()
	require.NoError(t, err)
	assert.Equal(t, int64(1), deleted)

	_, err = items.Get(orphan.ID)
	assert.ErrorIs(t, err, types.ErrNotFound)

	remaining, err := items.List()
	require.NoError(t, err)
	require.Len(t, remaining, 1)
	assert.Equal(t, kept.ID, remaining[0].ID)
}
