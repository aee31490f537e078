package types

// Article is a long-form note. Articles are soft-deleted because document
// items and project items hold references to them.
type Article struct {
	ID         int64    `json:"id"`
	Title      string   `json:"title"`
	Author     string   `json:"author"`
	CreateTime int64    `json:"create_time"`
	UpdateTime int64    `json:"update_time"`
	Tags       []string `json:"tags"`
	Links      []int64  `json:"links"`
	Content    string   `json:"content"`
	BannerBg   string   `json:"banner_bg"`
	IsTop      bool     `json:"is_top"`
	IsDelete   bool     `json:"is_delete"`
}
