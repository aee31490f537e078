package sqlite

import (
	"github.com/cardboxhq/cardbox/pkg/types"
)

// documentDef maps types.Document onto the documents table.
var documentDef = rowDef[types.Document]{
	table:       "documents",
	contentType: types.ContentTypeDocument,
	columns: []string{
		"create_time", "update_time", "title", `"desc"`, "authors", "children",
		"tags", "links", "content", "banner_bg", "icon", "is_top", "is_delete",
	},
	softDelete: true,
	orderBy:    "is_top DESC, update_time DESC",
	id:         func(d *types.Document) int64 { return d.ID },
	setID:      func(d *types.Document, id int64) { d.ID = id },
	touch: func(d *types.Document, now int64, create bool) {
		if create {
			d.CreateTime = now
		}
		d.UpdateTime = now
	},
	args: func(d *types.Document) ([]any, error) {
		authors, err := encodeStrings("authors", d.Authors)
		if err != nil {
			return nil, err
		}
		children, err := encodeIDs("children", d.Children)
		if err != nil {
			return nil, err
		}
		tags, err := encodeStrings("tags", d.Tags)
		if err != nil {
			return nil, err
		}
		links, err := encodeIDs("links", d.Links)
		if err != nil {
			return nil, err
		}
		return []any{
			d.CreateTime, d.UpdateTime, d.Title, d.Desc, authors, children,
			tags, links, d.Content, d.BannerBg, d.Icon, d.IsTop, d.IsDelete,
		}, nil
	},
	scan: func(s scanner, d *types.Document) error {
		var authors, children, tags, links string
		if err := s.Scan(
			&d.ID, &d.CreateTime, &d.UpdateTime, &d.Title, &d.Desc, &authors, &children,
			&tags, &links, &d.Content, &d.BannerBg, &d.Icon, &d.IsTop, &d.IsDelete,
		); err != nil {
			return err
		}
		var err error
		if d.Authors, err = decodeStrings("authors", authors); err != nil {
			return err
		}
		if d.Children, err = decodeIDs("children", children); err != nil {
			return err
		}
		if d.Tags, err = decodeStrings("tags", tags); err != nil {
			return err
		}
		if d.Links, err = decodeIDs("links", links); err != nil {
			return err
		}
		return nil
	},
}

// DocumentStore persists document tree roots.
type DocumentStore struct {
	table *table[types.Document]
}

func (s *DocumentStore) Create(doc *types.Document) (*types.Document, error) {
	return s.table.Create(doc)
}

func (s *DocumentStore) Get(id int64) (*types.Document, error) {
	return s.table.Get(id)
}

func (s *DocumentStore) List() ([]*types.Document, error) {
	return s.table.List()
}

func (s *DocumentStore) Update(doc *types.Document) (*types.Document, error) {
	return s.table.Update(doc)
}

func (s *DocumentStore) Delete(id int64) (int64, error) {
	return s.table.Delete(id)
}

// ListWithCounts returns every live document with its transitive item count.
// Counting walks each document's item tree with a visited set, so items
// reachable along several paths count once and cycles cannot loop.
func (s *DocumentStore) ListWithCounts() ([]types.DocumentWithCount, error) {
	docs, err := s.table.List()
	if err != nil {
		return nil, err
	}
	items, err := s.table.backend.documentItems.table.List()
	if err != nil {
		return nil, err
	}
	children := make(map[int64][]int64, len(items))
	for _, item := range items {
		children[item.ID] = item.Children
	}

	results := make([]types.DocumentWithCount, 0, len(docs))
	for _, doc := range docs {
		visited := make(map[int64]bool)
		queue := append([]int64(nil), doc.Children...)
		for len(queue) > 0 {
			id := queue[0]
			queue = queue[1:]
			next, ok := children[id]
			if !ok || visited[id] {
				continue
			}
			visited[id] = true
			queue = append(queue, next...)
		}
		results = append(results, types.DocumentWithCount{
			Document: *doc,
			Count:    int64(len(visited)),
		})
	}
	return results, nil
}

// documentItemDef maps types.DocumentItem onto the document_items table.
var documentItemDef = rowDef[types.DocumentItem]{
	table:       "document_items",
	contentType: types.ContentTypeDocumentItem,
	columns: []string{
		"create_time", "update_time", "title", "authors", "tags", "is_directory",
		"children", "is_article", "article_id", "is_card", "card_id",
		"content", "banner_bg", "icon", "is_delete", "parents", "count",
	},
	softDelete: true,
	orderBy:    "update_time DESC",
	id:         func(d *types.DocumentItem) int64 { return d.ID },
	setID:      func(d *types.DocumentItem, id int64) { d.ID = id },
	touch: func(d *types.DocumentItem, now int64, create bool) {
		if create {
			d.CreateTime = now
		}
		d.UpdateTime = now
	},
	args: func(d *types.DocumentItem) ([]any, error) {
		authors, err := encodeStrings("authors", d.Authors)
		if err != nil {
			return nil, err
		}
		tags, err := encodeStrings("tags", d.Tags)
		if err != nil {
			return nil, err
		}
		children, err := encodeIDs("children", d.Children)
		if err != nil {
			return nil, err
		}
		parents, err := encodeIDs("parents", d.Parents)
		if err != nil {
			return nil, err
		}
		return []any{
			d.CreateTime, d.UpdateTime, d.Title, authors, tags, d.IsDirectory,
			children, d.IsArticle, d.ArticleID, d.IsCard, d.CardID,
			d.Content, d.BannerBg, d.Icon, d.IsDelete, parents, d.Count,
		}, nil
	},
	scan: func(s scanner, d *types.DocumentItem) error {
		var authors, tags, children, parents string
		if err := s.Scan(
			&d.ID, &d.CreateTime, &d.UpdateTime, &d.Title, &authors, &tags, &d.IsDirectory,
			&children, &d.IsArticle, &d.ArticleID, &d.IsCard, &d.CardID,
			&d.Content, &d.BannerBg, &d.Icon, &d.IsDelete, &parents, &d.Count,
		); err != nil {
			return err
		}
		var err error
		if d.Authors, err = decodeStrings("authors", authors); err != nil {
			return err
		}
		if d.Tags, err = decodeStrings("tags", tags); err != nil {
			return err
		}
		if d.Children, err = decodeIDs("children", children); err != nil {
			return err
		}
		if d.Parents, err = decodeIDs("parents", parents); err != nil {
			return err
		}
		return nil
	},
}

// DocumentItemStore persists document tree nodes. Items wrapping a card or
// article keep their text equal to it: editing the item writes through to
// the source, which then fans out to the remaining mirrors.
type DocumentItemStore struct {
	table    *table[types.DocumentItem]
	depthCap int
}

func (s *DocumentItemStore) Create(item *types.DocumentItem) (*types.DocumentItem, error) {
	item.Count = contentCount(item.Content)
	return s.table.Create(item)
}

func (s *DocumentItemStore) Get(id int64) (*types.DocumentItem, error) {
	return s.table.Get(id)
}

func (s *DocumentItemStore) List() ([]*types.DocumentItem, error) {
	return s.table.List()
}

// GetMany resolves a batch of ids, dropping the ones that no longer exist.
// Order follows ids.
func (s *DocumentItemStore) GetMany(ids []int64) ([]*types.DocumentItem, error) {
	items := make([]*types.DocumentItem, 0, len(ids))
	for _, id := range ids {
		item, err := s.table.Get(id)
		if err == types.ErrNotFound {
			continue
		}
		if err != nil {
			return nil, err
		}
		items = append(items, item)
	}
	return items, nil
}

// Update persists the item. When the item mirrors a card or article, the
// edited text is written back to the source and then pushed to the other
// mirrors; the edited item itself is excluded from the fan-out.
func (s *DocumentItemStore) Update(item *types.DocumentItem) (*types.DocumentItem, error) {
	item.Count = contentCount(item.Content)
	updated, err := s.table.Update(item)
	if err != nil {
		return nil, err
	}
	b := s.table.backend
	switch {
	case updated.IsCard && updated.CardID > 0:
		if err := b.syncSource(types.ContentTypeCard, updated.CardID, updated.Content, ""); err != nil {
			b.log.Warn().Err(err).Int64("card_id", updated.CardID).Msg("syncing card from document item")
			break
		}
		b.propagateMirror(types.ContentTypeCard, updated.CardID, updated.Content, "", updated.ID, 0)
	case updated.IsArticle && updated.ArticleID > 0:
		if err := b.syncSource(types.ContentTypeArticle, updated.ArticleID, updated.Content, updated.Title); err != nil {
			b.log.Warn().Err(err).Int64("article_id", updated.ArticleID).Msg("syncing article from document item")
			break
		}
		b.propagateMirror(types.ContentTypeArticle, updated.ArticleID, updated.Content, updated.Title, updated.ID, 0)
	}
	return updated, nil
}

func (s *DocumentItemStore) Delete(id int64) (int64, error) {
	return s.table.Delete(id)
}
