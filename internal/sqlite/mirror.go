package sqlite

import (
	"database/sql"

	"github.com/cardboxhq/cardbox/pkg/types"
)

// Mirror propagation keeps the document items and project items wrapping a
// card or article textually equal to it. Propagation is best effort: a
// failed mirror write is logged and never fails the triggering update, and
// no transactional guarantee couples the source row to its mirrors.

// propagateMirror pushes content (and, for articles, title) from a source
// entity into every wrapper row, skipping at most one wrapper on each side.
// skipDocumentItem and skipProjectItem exclude the wrapper that triggered
// the propagation; zero skips nothing. Returns the number of mirror rows
// updated.
func (b *Backend) propagateMirror(contentType string, sourceID int64, content, title string, skipDocumentItem, skipProjectItem int64) int64 {
	b.mu.Lock()
	defer b.mu.Unlock()

	if !b.attached {
		return 0
	}
	now := nowMillis()

	var affected int64
	switch contentType {
	case types.ContentTypeCard:
		affected += b.mirrorExec(
			`UPDATE document_items SET content = ?, count = ?, update_time = ?
             WHERE is_card = 1 AND card_id = ? AND is_delete = 0 AND id != ?`,
			content, contentCount(content), now, sourceID, skipDocumentItem,
		)
		affected += b.mirrorExec(
			`UPDATE project_item SET content = ?, count = ?, update_time = ?
             WHERE ref_type = ? AND ref_id = ? AND id != ?`,
			content, contentCount(content), now, types.RefTypeCard, sourceID, skipProjectItem,
		)
	case types.ContentTypeArticle:
		affected += b.mirrorExec(
			`UPDATE document_items SET content = ?, title = ?, count = ?, update_time = ?
             WHERE is_article = 1 AND article_id = ? AND is_delete = 0 AND id != ?`,
			content, title, contentCount(content), now, sourceID, skipDocumentItem,
		)
		affected += b.mirrorExec(
			`UPDATE project_item SET content = ?, title = ?, count = ?, update_time = ?
             WHERE ref_type = ? AND ref_id = ? AND id != ?`,
			content, title, contentCount(content), now, types.RefTypeArticle, sourceID, skipProjectItem,
		)
	}
	return affected
}

func (b *Backend) mirrorExec(query string, args ...any) int64 {
	res, err := b.db.Exec(query, args...)
	if err != nil {
		b.log.Warn().Err(err).Msg("updating mirrors")
		return 0
	}
	affected, err := res.RowsAffected()
	if err != nil {
		b.log.Warn().Err(err).Msg("reading mirror update count")
		return 0
	}
	return affected
}

// syncSource writes a wrapper's edited text back to the card or article it
// mirrors. Unlike mirror fan-out this is a real write: the source must
// exist, and the write is recorded in the operation log.
func (b *Backend) syncSource(contentType string, sourceID int64, content, title string) error {
	b.mu.Lock()
	defer b.mu.Unlock()

	if !b.attached {
		return types.ErrStoreUnavailable
	}
	now := nowMillis()

	var (
		res sql.Result
		err error
	)
	switch contentType {
	case types.ContentTypeCard:
		res, err = b.db.Exec(
			`UPDATE cards SET content = ?, count = ?, update_time = ? WHERE id = ?`,
			content, contentCount(content), now, sourceID,
		)
	case types.ContentTypeArticle:
		res, err = b.db.Exec(
			`UPDATE articles SET content = ?, title = ?, update_time = ? WHERE id = ?`,
			content, title, now, sourceID,
		)
	default:
		return nil
	}
	if err != nil {
		return err
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return types.ErrNotFound
	}
	b.recordOperation(contentType, sourceID, types.ActionUpdate)
	return nil
}
