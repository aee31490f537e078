package types

// Document is the root of a hierarchical document tree. Children point into
// the document_items table.
type Document struct {
	ID         int64    `json:"id"`
	CreateTime int64    `json:"create_time"`
	UpdateTime int64    `json:"update_time"`
	Title      string   `json:"title"`
	Desc       string   `json:"desc"`
	Authors    []string `json:"authors"`
	Children   []int64  `json:"children"`
	Tags       []string `json:"tags"`
	Links      []int64  `json:"links"`
	Content    string   `json:"content"`
	BannerBg   string   `json:"banner_bg"`
	Icon       string   `json:"icon"`
	IsTop      bool     `json:"is_top"`
	IsDelete   bool     `json:"is_delete"`
}

// DocumentWithCount pairs a document with its deduplicated transitive child
// count for listing.
type DocumentWithCount struct {
	Document Document `json:"document"`
	Count    int64    `json:"count"`
}

// DocumentItem is a node in a document tree. Children is the authoritative
// adjacency; Parents is a cache recomputed by the hierarchy resolver, not
// enforced transactionally. When IsCard or IsArticle is set the item mirrors
// the content of an externally-owned card or article.
type DocumentItem struct {
	ID          int64    `json:"id"`
	CreateTime  int64    `json:"create_time"`
	UpdateTime  int64    `json:"update_time"`
	Title       string   `json:"title"`
	Authors     []string `json:"authors"`
	Tags        []string `json:"tags"`
	IsDirectory bool     `json:"is_directory"`
	Children    []int64  `json:"children"`
	IsArticle   bool     `json:"is_article"`
	ArticleID   int64    `json:"article_id"`
	IsCard      bool     `json:"is_card"`
	CardID      int64    `json:"card_id"`
	Content     string   `json:"content"`
	BannerBg    string   `json:"banner_bg"`
	Icon        string   `json:"icon"`
	IsDelete    bool     `json:"is_delete"`
	Parents     []int64  `json:"parents"`
	Count       int64    `json:"count"`
}
