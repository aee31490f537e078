package sqlite

import (
	"strings"

	"github.com/cardboxhq/cardbox/pkg/types"
)

// cardDef maps types.Card onto the cards table.
var cardDef = rowDef[types.Card]{
	table:       "cards",
	contentType: types.ContentTypeCard,
	columns:     []string{"create_time", "update_time", "tags", "links", "content", "category", "count"},
	orderBy:     "update_time DESC",
	id:          func(c *types.Card) int64 { return c.ID },
	setID:       func(c *types.Card, id int64) { c.ID = id },
	touch: func(c *types.Card, now int64, create bool) {
		if create {
			c.CreateTime = now
		}
		c.UpdateTime = now
	},
	args: func(c *types.Card) ([]any, error) {
		tags, err := encodeStrings("tags", c.Tags)
		if err != nil {
			return nil, err
		}
		links, err := encodeIDs("links", c.Links)
		if err != nil {
			return nil, err
		}
		return []any{c.CreateTime, c.UpdateTime, tags, links, c.Content, c.Category, c.Count}, nil
	},
	scan: func(s scanner, c *types.Card) error {
		var tags, links string
		if err := s.Scan(&c.ID, &c.CreateTime, &c.UpdateTime, &tags, &links, &c.Content, &c.Category, &c.Count); err != nil {
			return err
		}
		var err error
		if c.Tags, err = decodeStrings("tags", tags); err != nil {
			return err
		}
		if c.Links, err = decodeIDs("links", links); err != nil {
			return err
		}
		return nil
	},
}

// CardStore persists atomic notes. Card content flows outward: every update
// is pushed into the document items and project items mirroring the card.
type CardStore struct {
	table *table[types.Card]
}

// Create inserts a new card. An empty category defaults to permanent; the
// word count is derived from the content.
func (s *CardStore) Create(card *types.Card) (*types.Card, error) {
	if card.Category == "" {
		card.Category = types.CardCategoryPermanent
	}
	card.Count = contentCount(card.Content)
	return s.table.Create(card)
}

func (s *CardStore) Get(id int64) (*types.Card, error) {
	return s.table.Get(id)
}

func (s *CardStore) List() ([]*types.Card, error) {
	return s.table.List()
}

// Update persists the card, snapshots its content into history, and pushes
// the new content into every mirror.
func (s *CardStore) Update(card *types.Card) (*types.Card, error) {
	card.Count = contentCount(card.Content)
	updated, err := s.table.Update(card)
	if err != nil {
		return nil, err
	}
	b := s.table.backend
	b.snapshotHistory(types.ContentTypeCard, updated.ID, updated.Content)
	b.propagateMirror(types.ContentTypeCard, updated.ID, updated.Content, "", 0, 0)
	return updated, nil
}

// Delete removes the card row. Mirrors pointing at the card keep their last
// mirrored content.
func (s *CardStore) Delete(id int64) (int64, error) {
	return s.table.Delete(id)
}

// GroupByTag buckets all cards by lower-cased tag. A card appears once per
// tag occurrence, so duplicate tags on one card yield duplicate entries.
func (s *CardStore) GroupByTag() (map[string][]*types.Card, error) {
	cards, err := s.table.List()
	if err != nil {
		return nil, err
	}
	groups := make(map[string][]*types.Card)
	for _, card := range cards {
		for _, tag := range card.Tags {
			key := strings.ToLower(tag)
			groups[key] = append(groups[key], card)
		}
	}
	return groups, nil
}

// contentCount is the character count stored alongside card and item content.
func contentCount(content string) int64 {
	return int64(len([]rune(content)))
}
