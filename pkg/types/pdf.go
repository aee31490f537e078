package types

// Pdf records an imported PDF, either a local file or a remote URL.
type Pdf struct {
	ID         int64    `json:"id"`
	CreateTime int64    `json:"create_time"`
	UpdateTime int64    `json:"update_time"`
	FileName   string   `json:"file_name"`
	FilePath   string   `json:"file_path"`
	IsLocal    bool     `json:"is_local"`
	RemoteURL  string   `json:"remote_url"`
	Tags       []string `json:"tags"`
}
