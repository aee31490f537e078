package sqlite

import (
	"fmt"

	"github.com/cardboxhq/cardbox/pkg/types"
)

// articleDef maps types.Article onto the articles table. Articles soft
// delete because wrappers hold references into them.
var articleDef = rowDef[types.Article]{
	table:       "articles",
	contentType: types.ContentTypeArticle,
	columns: []string{
		"title", "author", "create_time", "update_time",
		"tags", "links", "content", "banner_bg", "is_top", "is_delete",
	},
	softDelete: true,
	orderBy:    "is_top DESC, update_time DESC",
	id:         func(a *types.Article) int64 { return a.ID },
	setID:      func(a *types.Article, id int64) { a.ID = id },
	touch: func(a *types.Article, now int64, create bool) {
		if create {
			a.CreateTime = now
		}
		a.UpdateTime = now
	},
	args: func(a *types.Article) ([]any, error) {
		tags, err := encodeStrings("tags", a.Tags)
		if err != nil {
			return nil, err
		}
		links, err := encodeIDs("links", a.Links)
		if err != nil {
			return nil, err
		}
		return []any{
			a.Title, a.Author, a.CreateTime, a.UpdateTime,
			tags, links, a.Content, a.BannerBg, a.IsTop, a.IsDelete,
		}, nil
	},
	scan: func(s scanner, a *types.Article) error {
		var tags, links string
		if err := s.Scan(
			&a.ID, &a.Title, &a.Author, &a.CreateTime, &a.UpdateTime,
			&tags, &links, &a.Content, &a.BannerBg, &a.IsTop, &a.IsDelete,
		); err != nil {
			return err
		}
		var err error
		if a.Tags, err = decodeStrings("tags", tags); err != nil {
			return err
		}
		if a.Links, err = decodeIDs("links", links); err != nil {
			return err
		}
		return nil
	},
}

// ArticleStore persists long-form notes.
type ArticleStore struct {
	table *table[types.Article]
}

func (s *ArticleStore) Create(article *types.Article) (*types.Article, error) {
	return s.table.Create(article)
}

func (s *ArticleStore) Get(id int64) (*types.Article, error) {
	return s.table.Get(id)
}

func (s *ArticleStore) List() ([]*types.Article, error) {
	return s.table.List()
}

// Update persists the article, snapshots its content into history, and
// pushes the new title and content into every mirror.
func (s *ArticleStore) Update(article *types.Article) (*types.Article, error) {
	updated, err := s.table.Update(article)
	if err != nil {
		return nil, err
	}
	b := s.table.backend
	b.snapshotHistory(types.ContentTypeArticle, updated.ID, updated.Content)
	b.propagateMirror(types.ContentTypeArticle, updated.ID, updated.Content, updated.Title, 0, 0)
	return updated, nil
}

// Delete marks the article deleted. Get still resolves it so mirrors can
// keep dereferencing; List no longer returns it.
func (s *ArticleStore) Delete(id int64) (int64, error) {
	return s.table.Delete(id)
}

// UpdateBannerBg sets only the banner image without touching update_time.
func (s *ArticleStore) UpdateBannerBg(id int64, bannerBg string) error {
	return s.setColumn(id, "banner_bg", bannerBg)
}

// UpdateIsTop pins or unpins the article in listings.
func (s *ArticleStore) UpdateIsTop(id int64, isTop bool) error {
	return s.setColumn(id, "is_top", isTop)
}

func (s *ArticleStore) setColumn(id int64, column string, value any) error {
	b := s.table.backend
	b.mu.Lock()
	defer b.mu.Unlock()

	if !b.attached {
		return types.ErrStoreUnavailable
	}
	if id <= 0 {
		return types.ErrInvalidID
	}
	res, err := b.db.Exec(
		fmt.Sprintf("UPDATE articles SET %s = ? WHERE id = ?", column), value, id,
	)
	if err != nil {
		return fmt.Errorf("updating articles.%s for %d: %w", column, id, err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("reading articles update count: %w", err)
	}
	if affected == 0 {
		return types.ErrNotFound
	}
	b.recordOperation(types.ContentTypeArticle, id, types.ActionUpdate)
	return nil
}
