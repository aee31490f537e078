package sqlite

import (
	"fmt"

	"github.com/cardboxhq/cardbox/pkg/types"
)

// The parents column on document_items is a cache of the inverse of the
// children adjacency. It is rebuilt here on demand and never maintained
// transactionally: writers that reshape a tree call one of the recompute
// routines afterwards.

// defaultDepthCap bounds descendant searches. Ten levels outruns any
// realistic document tree while keeping a cyclic children graph from
// looping.
const defaultDepthCap = 10

// SetDepthCap overrides the descendant search bound. Values below one are
// ignored.
func (s *DocumentItemStore) SetDepthCap(depth int) {
	if depth >= 1 {
		s.depthCap = depth
	}
}

// RecomputeAllParents rebuilds the parents column for every live item from
// scratch. Cost is quadratic in the number of items; callers run it after
// bulk edits, not per write. Returns the number of items whose cache
// changed.
func (s *DocumentItemStore) RecomputeAllParents() (int, error) {
	b := s.table.backend
	start := nowMillis()

	items, err := s.table.List()
	if err != nil {
		return 0, err
	}
	changed, err := s.writeParents(items, parentsOf(items))
	if err != nil {
		return 0, err
	}
	b.log.Debug().
		Int("items", len(items)).
		Int("changed", changed).
		Int64("elapsed_ms", nowMillis()-start).
		Msg("recomputed item parents")
	return changed, nil
}

// RecomputeParentsFor rebuilds the parents cache for just the given ids.
// The scan over all items still happens once; only the writes narrow.
func (s *DocumentItemStore) RecomputeParentsFor(ids []int64) (int, error) {
	items, err := s.table.List()
	if err != nil {
		return 0, err
	}
	wanted := make(map[int64]bool, len(ids))
	for _, id := range ids {
		wanted[id] = true
	}
	targets := make([]*types.DocumentItem, 0, len(ids))
	for _, item := range items {
		if wanted[item.ID] {
			targets = append(targets, item)
		}
	}
	return s.writeParents(targets, parentsOf(items))
}

// parentsOf inverts the children adjacency of items.
func parentsOf(items []*types.DocumentItem) map[int64][]int64 {
	parents := make(map[int64][]int64, len(items))
	for _, item := range items {
		for _, child := range item.Children {
			parents[child] = append(parents[child], item.ID)
		}
	}
	return parents
}

// writeParents persists the computed parent lists for targets, skipping
// items whose cache already matches. update_time is left alone: a cache
// rebuild is not an edit.
func (s *DocumentItemStore) writeParents(targets []*types.DocumentItem, parents map[int64][]int64) (int, error) {
	b := s.table.backend
	b.mu.Lock()
	defer b.mu.Unlock()

	if !b.attached {
		return 0, types.ErrStoreUnavailable
	}
	changed := 0
	for _, item := range targets {
		next := parents[item.ID]
		if equalIDs(item.Parents, next) {
			continue
		}
		encoded, err := encodeIDs("parents", next)
		if err != nil {
			return changed, err
		}
		if _, err := b.db.Exec(
			`UPDATE document_items SET parents = ? WHERE id = ?`, encoded, item.ID,
		); err != nil {
			return changed, fmt.Errorf("writing parents for item %d: %w", item.ID, err)
		}
		changed++
	}
	return changed, nil
}

func equalIDs(a, b []int64) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

// IsDescendantOf reports whether childID sits anywhere below ancestorID,
// searching the children adjacency breadth-first down to the store's depth
// cap. A missing ancestor yields false.
func (s *DocumentItemStore) IsDescendantOf(childID, ancestorID int64) (bool, error) {
	if childID <= 0 || ancestorID <= 0 {
		return false, types.ErrInvalidID
	}
	items, err := s.table.List()
	if err != nil {
		return false, err
	}
	children := make(map[int64][]int64, len(items))
	for _, item := range items {
		children[item.ID] = item.Children
	}

	frontier := children[ancestorID]
	visited := map[int64]bool{ancestorID: true}
	for depth := 0; depth < s.depthCap && len(frontier) > 0; depth++ {
		var next []int64
		for _, id := range frontier {
			if id == childID {
				return true, nil
			}
			if visited[id] {
				continue
			}
			visited[id] = true
			next = append(next, children[id]...)
		}
		frontier = next
	}
	return false, nil
}

// AllAncestors returns every item id reachable upward from id through the
// parents cache, nearest first. Each node is visited once, so a cyclic
// cache terminates; a parent id with no backing row contributes nothing
// above itself.
func (s *DocumentItemStore) AllAncestors(id int64) ([]int64, error) {
	item, err := s.table.Get(id)
	if err != nil {
		return nil, err
	}

	ancestors := []int64{}
	visited := map[int64]bool{id: true}
	frontier := item.Parents
	for len(frontier) > 0 {
		var next []int64
		for _, pid := range frontier {
			if visited[pid] {
				continue
			}
			visited[pid] = true
			ancestors = append(ancestors, pid)
			parent, err := s.table.Get(pid)
			if err == types.ErrNotFound {
				continue
			}
			if err != nil {
				return nil, err
			}
			next = append(next, parent.Parents...)
		}
		frontier = next
	}
	return ancestors, nil
}
