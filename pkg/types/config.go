package types

import "errors"

// Config holds the parameters for Backend.Attach.
type Config struct {
	// DataDir is the directory holding the store files.
	DataDir string `json:"data_dir" yaml:"data_dir"`
	// Database is the store file name, with or without the .db extension.
	// Defaults to "data.db" when empty.
	Database string `json:"database" yaml:"database"`
	// LogLevel is the zerolog level name ("debug", "info", ...).
	LogLevel string `json:"log_level" yaml:"log_level"`
}

// DefaultDatabase is the store file used when Config.Database is empty.
const DefaultDatabase = "data.db"

// Config validation errors.
var (
	ErrDataDirEmpty = errors.New("data dir must not be empty")
)

// Validate checks that the Config is well-formed. It returns a sentinel error
// from this package on failure.
func (c Config) Validate() error {
	if c.DataDir == "" {
		return ErrDataDirEmpty
	}
	return nil
}
