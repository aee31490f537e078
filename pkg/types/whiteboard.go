package types

// WhiteBoard holds a free-form canvas. Data is an opaque JSON document owned
// by the canvas editor. Whiteboards are soft-deleted.
type WhiteBoard struct {
	ID          int64    `json:"id"`
	CreateTime  int64    `json:"create_time"`
	UpdateTime  int64    `json:"update_time"`
	Title       string   `json:"title"`
	Description string   `json:"description"`
	Tags        []string `json:"tags"`
	Data        string   `json:"data"`
	IsDelete    bool     `json:"is_delete"`
}
