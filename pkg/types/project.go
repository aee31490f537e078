package types

// Reference kinds for ProjectItem.RefType.
const (
	RefTypeCard    = "card"
	RefTypeArticle = "article"
)

// Project groups project items. Projects are hard-deleted; orphaned items
// are cleaned up separately.
type Project struct {
	ID         int64   `json:"id"`
	CreateTime int64   `json:"create_time"`
	UpdateTime int64   `json:"update_time"`
	Title      string  `json:"title"`
	Desc       string  `json:"desc"`
	Children   []int64 `json:"children"`
}

// ProjectItem is a node in a project tree. Projects lists the project ids the
// item belongs to. When RefType/RefID are set, Content (and Title for
// articles) mirror the referenced entity and are kept equal after any write
// to either side.
type ProjectItem struct {
	ID         int64   `json:"id"`
	CreateTime int64   `json:"create_time"`
	UpdateTime int64   `json:"update_time"`
	Title      string  `json:"title"`
	Content    string  `json:"content"`
	Children   []int64 `json:"children"`
	Parents    []int64 `json:"parents"`
	Projects   []int64 `json:"projects"`
	RefType    string  `json:"ref_type"`
	RefID      int64   `json:"ref_id"`
	Count      int64   `json:"count"`
}
