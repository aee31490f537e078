package sqlite

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cardboxhq/cardbox/pkg/types"
)

func TestArticleStore_CreateGet(t *testing.T) {
	b := setupBackend(t)

	article, err := b.Articles().Create(&types.Article{
		Title:   "On note keeping",
		Author:  "pd",
		Content: "body",
		Tags:    []string{"writing"},
	})
	require.NoError(t, err)
	assert.Positive(t, article.ID)
	assert.Positive(t, article.CreateTime)

	got, err := b.Articles().Get(article.ID)
	require.NoError(t, err)
	assert.Equal(t, article, got)
}

func TestArticleStore_SoftDelete(t *testing.T) {
	b := setupBackend(t)

	article, err := b.Articles().Create(&types.Article{Title: "gone soon"})
	require.NoError(t, err)

	n, err := b.Articles().Delete(article.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(1), n)

	// The row survives for references; Get still resolves it.
	got, err := b.Articles().Get(article.ID)
	require.NoError(t, err)
	assert.True(t, got.IsDelete)

	// Listings drop it.
	articles, err := b.Articles().List()
	require.NoError(t, err)
	assert.Empty(t, articles)
}

func TestArticleStore_ListPinnedFirst(t *testing.T) {
	b := setupBackend(t)

	older, err := b.Articles().Create(&types.Article{Title: "older"})
	require.NoError(t, err)
	time.Sleep(2 * time.Millisecond)
	_, err = b.Articles().Create(&types.Article{Title: "newer"})
	require.NoError(t, err)

	require.NoError(t, b.Articles().UpdateIsTop(older.ID, true))

	articles, err := b.Articles().List()
	require.NoError(t, err)
	require.Len(t, articles, 2)
	assert.Equal(t, older.ID, articles[0].ID)
	assert.True(t, articles[0].IsTop)
}

func TestArticleStore_UpdateBannerBg(t *testing.T) {
	b := setupBackend(t)

	article, err := b.Articles().Create(&types.Article{Title: "banner"})
	require.NoError(t, err)

	require.NoError(t, b.Articles().UpdateBannerBg(article.ID, "sunset.png"))

	got, err := b.Articles().Get(article.ID)
	require.NoError(t, err)
	assert.Equal(t, "sunset.png", got.BannerBg)
	// Column updates leave update_time alone.
	assert.Equal(t, article.UpdateTime, got.UpdateTime)

	assert.ErrorIs(t, b.Articles().UpdateBannerBg(999, "x"), types.ErrNotFound)
	assert.ErrorIs(t, b.Articles().UpdateIsTop(0, true), types.ErrInvalidID)
}

func TestArticleStore_UpdateSnapshotsHistory(t *testing.T) {
	b := setupBackend(t)

	article, err := b.Articles().Create(&types.Article{Title: "h", Content: "v1"})
	require.NoError(t, err)

	article.Content = "v2"
	_, err = b.Articles().Update(article)
	require.NoError(t, err)
	article.Content = "v3"
	_, err = b.Articles().Update(article)
	require.NoError(t, err)

	page, err := b.History().ListByContent(types.ContentTypeArticle, article.ID, 0, 0)
	require.NoError(t, err)
	assert.Equal(t, int64(2), page.Total)
	require.Len(t, page.Items, 2)
	// Newest first.
	assert.Equal(t, "v3", page.Items[0].Content)
	assert.Equal(t, "v2", page.Items[1].Content)
}
