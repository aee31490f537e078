package sqlite

import "github.com/cardboxhq/cardbox/pkg/types"

// whiteBoardDef maps types.WhiteBoard onto the white_boards table.
var whiteBoardDef = rowDef[types.WhiteBoard]{
	table:       "white_boards",
	contentType: types.ContentTypeWhiteBoard,
	columns: []string{
		"create_time", "update_time", "title", "description", "tags", "data", "is_delete",
	},
	softDelete: true,
	orderBy:    "update_time DESC",
	id:         func(w *types.WhiteBoard) int64 { return w.ID },
	setID:      func(w *types.WhiteBoard, id int64) { w.ID = id },
	touch: func(w *types.WhiteBoard, now int64, create bool) {
		if create {
			w.CreateTime = now
		}
		w.UpdateTime = now
	},
	args: func(w *types.WhiteBoard) ([]any, error) {
		tags, err := encodeStrings("tags", w.Tags)
		if err != nil {
			return nil, err
		}
		return []any{
			w.CreateTime, w.UpdateTime, w.Title, w.Description, tags, w.Data, w.IsDelete,
		}, nil
	},
	scan: func(s scanner, w *types.WhiteBoard) error {
		var tags string
		if err := s.Scan(
			&w.ID, &w.CreateTime, &w.UpdateTime, &w.Title, &w.Description,
			&tags, &w.Data, &w.IsDelete,
		); err != nil {
			return err
		}
		var err error
		w.Tags, err = decodeStrings("tags", tags)
		return err
	},
}

// WhiteBoardStore persists canvas documents. The data column is opaque to
// the store.
type WhiteBoardStore struct {
	table *table[types.WhiteBoard]
}

func (s *WhiteBoardStore) Create(board *types.WhiteBoard) (*types.WhiteBoard, error) {
	return s.table.Create(board)
}

func (s *WhiteBoardStore) Get(id int64) (*types.WhiteBoard, error) {
	return s.table.Get(id)
}

func (s *WhiteBoardStore) List() ([]*types.WhiteBoard, error) {
	return s.table.List()
}

func (s *WhiteBoardStore) Update(board *types.WhiteBoard) (*types.WhiteBoard, error) {
	return s.table.Update(board)
}

func (s *WhiteBoardStore) Delete(id int64) (int64, error) {
	return s.table.Delete(id)
}
