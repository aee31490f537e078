package sqlite

import (
	"github.com/cardboxhq/cardbox/pkg/types"
)

// projectDef maps types.Project onto the project table.
var projectDef = rowDef[types.Project]{
	table:       "project",
	contentType: types.ContentTypeProject,
	columns:     []string{"create_time", "update_time", "title", `"desc"`, "children"},
	orderBy:     "update_time DESC",
	id:          func(p *types.Project) int64 { return p.ID },
	setID:       func(p *types.Project, id int64) { p.ID = id },
	touch: func(p *types.Project, now int64, create bool) {
		if create {
			p.CreateTime = now
		}
		p.UpdateTime = now
	},
	args: func(p *types.Project) ([]any, error) {
		children, err := encodeIDs("children", p.Children)
		if err != nil {
			return nil, err
		}
		return []any{p.CreateTime, p.UpdateTime, p.Title, p.Desc, children}, nil
	},
	scan: func(s scanner, p *types.Project) error {
		var children string
		if err := s.Scan(&p.ID, &p.CreateTime, &p.UpdateTime, &p.Title, &p.Desc, &children); err != nil {
			return err
		}
		var err error
		p.Children, err = decodeIDs("children", children)
		return err
	},
}

// ProjectStore persists project roots.
type ProjectStore struct {
	table *table[types.Project]
}

func (s *ProjectStore) Create(project *types.Project) (*types.Project, error) {
	return s.table.Create(project)
}

func (s *ProjectStore) Get(id int64) (*types.Project, error) {
	return s.table.Get(id)
}

func (s *ProjectStore) List() ([]*types.Project, error) {
	return s.table.List()
}

func (s *ProjectStore) Update(project *types.Project) (*types.Project, error) {
	return s.table.Update(project)
}

// Delete removes the project row. Items that listed only this project become
// orphans; DeleteOrphans on the item store cleans them up.
func (s *ProjectStore) Delete(id int64) (int64, error) {
	return s.table.Delete(id)
}

// projectItemDef maps types.ProjectItem onto the project_item table.
var projectItemDef = rowDef[types.ProjectItem]{
	table:       "project_item",
	contentType: types.ContentTypeProjectItem,
	columns: []string{
		"create_time", "update_time", "title", "content",
		"children", "parents", "projects", "ref_type", "ref_id", "count",
	},
	orderBy: "update_time DESC",
	id:      func(p *types.ProjectItem) int64 { return p.ID },
	setID:   func(p *types.ProjectItem, id int64) { p.ID = id },
	touch: func(p *types.ProjectItem, now int64, create bool) {
		if create {
			p.CreateTime = now
		}
		p.UpdateTime = now
	},
	args: func(p *types.ProjectItem) ([]any, error) {
		children, err := encodeIDs("children", p.Children)
		if err != nil {
			return nil, err
		}
		parents, err := encodeIDs("parents", p.Parents)
		if err != nil {
			return nil, err
		}
		projects, err := encodeIDs("projects", p.Projects)
		if err != nil {
			return nil, err
		}
		return []any{
			p.CreateTime, p.UpdateTime, p.Title, p.Content,
			children, parents, projects, p.RefType, p.RefID, p.Count,
		}, nil
	},
	scan: func(s scanner, p *types.ProjectItem) error {
		var children, parents, projects string
		if err := s.Scan(
			&p.ID, &p.CreateTime, &p.UpdateTime, &p.Title, &p.Content,
			&children, &parents, &projects, &p.RefType, &p.RefID, &p.Count,
		); err != nil {
			return err
		}
		var err error
		if p.Children, err = decodeIDs("children", children); err != nil {
			return err
		}
		if p.Parents, err = decodeIDs("parents", parents); err != nil {
			return err
		}
		if p.Projects, err = decodeIDs("projects", projects); err != nil {
			return err
		}
		return nil
	},
}

// ProjectItemStore persists project tree nodes. Items referencing a card or
// article write edits through to the source the same way document items do.
type ProjectItemStore struct {
	table *table[types.ProjectItem]
}

func (s *ProjectItemStore) Create(item *types.ProjectItem) (*types.ProjectItem, error) {
	item.Count = contentCount(item.Content)
	return s.table.Create(item)
}

func (s *ProjectItemStore) Get(id int64) (*types.ProjectItem, error) {
	return s.table.Get(id)
}

func (s *ProjectItemStore) List() ([]*types.ProjectItem, error) {
	return s.table.List()
}

// Update persists the item. When the item references a card or article, the
// edited text is written back to the source and then pushed to the other
// mirrors, excluding this item.
func (s *ProjectItemStore) Update(item *types.ProjectItem) (*types.ProjectItem, error) {
	item.Count = contentCount(item.Content)
	updated, err := s.table.Update(item)
	if err != nil {
		return nil, err
	}
	b := s.table.backend
	switch updated.RefType {
	case types.RefTypeCard:
		if updated.RefID <= 0 {
			break
		}
		if err := b.syncSource(types.ContentTypeCard, updated.RefID, updated.Content, ""); err != nil {
			b.log.Warn().Err(err).Int64("card_id", updated.RefID).Msg("syncing card from project item")
			break
		}
		b.propagateMirror(types.ContentTypeCard, updated.RefID, updated.Content, "", 0, updated.ID)
	case types.RefTypeArticle:
		if updated.RefID <= 0 {
			break
		}
		if err := b.syncSource(types.ContentTypeArticle, updated.RefID, updated.Content, updated.Title); err != nil {
			b.log.Warn().Err(err).Int64("article_id", updated.RefID).Msg("syncing article from project item")
			break
		}
		b.propagateMirror(types.ContentTypeArticle, updated.RefID, updated.Content, updated.Title, 0, updated.ID)
	}
	return updated, nil
}

func (s *ProjectItemStore) Delete(id int64) (int64, error) {
	return s.table.Delete(id)
}

// ByRef returns the items referencing the given card or article.
func (s *ProjectItemStore) ByRef(refType string, refID int64) ([]*types.ProjectItem, error) {
	items, err := s.table.List()
	if err != nil {
		return nil, err
	}
	matches := []*types.ProjectItem{}
	for _, item := range items {
		if item.RefType == refType && item.RefID == refID {
			matches = append(matches, item)
		}
	}
	return matches, nil
}

// CountInProject returns how many items list the given project.
func (s *ProjectItemStore) CountInProject(projectID int64) (int64, error) {
	items, err := s.table.List()
	if err != nil {
		return 0, err
	}
	var count int64
	for _, item := range items {
		if containsID(item.Projects, projectID) {
			count++
		}
	}
	return count, nil
}

// ItemsNotInProject returns items that list the given project but are no
// longer reachable from its children tree. These are the stale rows left
// behind by tree edits.
func (s *ProjectItemStore) ItemsNotInProject(projectID int64) ([]*types.ProjectItem, error) {
	project, err := s.table.backend.projects.Get(projectID)
	if err != nil {
		return nil, err
	}
	items, err := s.table.List()
	if err != nil {
		return nil, err
	}
	children := make(map[int64][]int64, len(items))
	for _, item := range items {
		children[item.ID] = item.Children
	}

	reachable := make(map[int64]bool)
	queue := append([]int64(nil), project.Children...)
	for len(queue) > 0 {
		id := queue[0]
		queue = queue[1:]
		if reachable[id] {
			continue
		}
		reachable[id] = true
		queue = append(queue, children[id]...)
	}

	stale := []*types.ProjectItem{}
	for _, item := range items {
		if containsID(item.Projects, projectID) && !reachable[item.ID] {
			stale = append(stale, item)
		}
	}
	return stale, nil
}

// DeleteItemsNotInProject removes the stale rows ItemsNotInProject finds.
// Returns the number of rows deleted.
func (s *ProjectItemStore) DeleteItemsNotInProject(projectID int64) (int64, error) {
	stale, err := s.ItemsNotInProject(projectID)
	if err != nil {
		return 0, err
	}
	var deleted int64
	for _, item := range stale {
		n, err := s.table.Delete(item.ID)
		if err != nil {
			return deleted, err
		}
		deleted += n
	}
	return deleted, nil
}

// IsOrphan reports whether the item belongs to no project.
func (s *ProjectItemStore) IsOrphan(id int64) (bool, error) {
	item, err := s.table.Get(id)
	if err != nil {
		return false, err
	}
	return len(item.Projects) == 0, nil
}

// Orphans returns every item that belongs to no project.
func (s *ProjectItemStore) Orphans() ([]*types.ProjectItem, error) {
	items, err := s.table.List()
	if err != nil {
		return nil, err
	}
	orphans := []*types.ProjectItem{}
	for _, item := range items {
		if len(item.Projects) == 0 {
			orphans = append(orphans, item)
		}
	}
	return orphans, nil
}

// DeleteOrphans removes every item that belongs to no project. Returns the
// number of rows deleted.
func (s *ProjectItemStore) DeleteOrphans() (int64, error) {
	orphans, err := s.Orphans()
	if err != nil {
		return 0, err
	}
	var deleted int64
	for _, item := range orphans {
		n, err := s.table.Delete(item.ID)
		if err != nil {
			return deleted, err
		}
		deleted += n
	}
	return deleted, nil
}

func containsID(ids []int64, id int64) bool {
	for _, v := range ids {
		if v == id {
			return true
		}
	}
	return false
}
