package sqlite

import "github.com/cardboxhq/cardbox/pkg/types"

// pdfDef maps types.Pdf onto the pdfs table.
var pdfDef = rowDef[types.Pdf]{
	table:       "pdfs",
	contentType: types.ContentTypePdf,
	columns: []string{
		"create_time", "update_time", "file_name", "file_path", "is_local", "remote_url", "tags",
	},
	orderBy: "create_time DESC",
	id:      func(p *types.Pdf) int64 { return p.ID },
	setID:   func(p *types.Pdf, id int64) { p.ID = id },
	touch: func(p *types.Pdf, now int64, create bool) {
		if create {
			p.CreateTime = now
		}
		p.UpdateTime = now
	},
	args: func(p *types.Pdf) ([]any, error) {
		tags, err := encodeStrings("tags", p.Tags)
		if err != nil {
			return nil, err
		}
		return []any{
			p.CreateTime, p.UpdateTime, p.FileName, p.FilePath, p.IsLocal, p.RemoteURL, tags,
		}, nil
	},
	scan: func(s scanner, p *types.Pdf) error {
		var tags string
		if err := s.Scan(
			&p.ID, &p.CreateTime, &p.UpdateTime, &p.FileName, &p.FilePath,
			&p.IsLocal, &p.RemoteURL, &tags,
		); err != nil {
			return err
		}
		var err error
		p.Tags, err = decodeStrings("tags", tags)
		return err
	},
}

// PdfStore records imported PDF files. The store tracks the reference only;
// the file itself lives on disk or behind the remote URL.
type PdfStore struct {
	table *table[types.Pdf]
}

func (s *PdfStore) Create(pdf *types.Pdf) (*types.Pdf, error) {
	return s.table.Create(pdf)
}

func (s *PdfStore) Get(id int64) (*types.Pdf, error) {
	return s.table.Get(id)
}

func (s *PdfStore) List() ([]*types.Pdf, error) {
	return s.table.List()
}

func (s *PdfStore) Update(pdf *types.Pdf) (*types.Pdf, error) {
	return s.table.Update(pdf)
}

func (s *PdfStore) Delete(id int64) (int64, error) {
	return s.table.Delete(id)
}
