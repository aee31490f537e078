// Shared helpers for cardbox CLI commands.
package main

import (
	"encoding/json"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/rs/zerolog"

	"github.com/cardboxhq/cardbox/internal/sqlite"
	"github.com/cardboxhq/cardbox/pkg/types"
)

// attachBackend resolves the data directory, creates a SQLite backend, and
// attaches it. The caller must defer backend.Detach().
func attachBackend() (*sqlite.Backend, error) {
	dataDir, err := resolveDataDir()
	if err != nil {
		return nil, fmt.Errorf("resolve data dir: %w", err)
	}

	database := flagDatabase
	if database == "" {
		database = configDatabase
	}

	cfg := types.Config{
		DataDir:  dataDir,
		Database: database,
		LogLevel: configLogLevel,
	}

	backend := sqlite.NewBackend(newLogger(cfg.LogLevel))
	if err := backend.Attach(cfg); err != nil {
		return nil, fmt.Errorf("attach backend: %w", err)
	}

	return backend, nil
}

// newLogger builds the CLI's console logger at the configured level.
func newLogger(level string) zerolog.Logger {
	lvl, err := zerolog.ParseLevel(strings.ToLower(level))
	if err != nil || level == "" {
		lvl = zerolog.WarnLevel
	}
	return zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).
		Level(lvl).
		With().Timestamp().Logger()
}

// parseID converts a CLI argument into an entity id.
func parseID(arg string) (int64, error) {
	id, err := strconv.ParseInt(arg, 10, 64)
	if err != nil || id <= 0 {
		return 0, fmt.Errorf("invalid id %q: %w", arg, types.ErrInvalidID)
	}
	return id, nil
}

// printResult renders v as indented JSON when --json is set, otherwise with
// the provided human-readable fallback.
func printResult(v any, human func()) error {
	if !flagJSON {
		human()
		return nil
	}
	out, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal JSON: %w", err)
	}
	fmt.Println(string(out))
	return nil
}

// splitList parses a comma-separated flag value into trimmed parts.
func splitList(raw string) []string {
	if raw == "" {
		return nil
	}
	parts := strings.Split(raw, ",")
	for i := range parts {
		parts[i] = strings.TrimSpace(parts[i])
	}
	return parts
}

// splitIDList parses a comma-separated list of entity ids.
func splitIDList(raw string) ([]int64, error) {
	parts := splitList(raw)
	if parts == nil {
		return nil, nil
	}
	ids := make([]int64, 0, len(parts))
	for _, p := range parts {
		id, err := parseID(p)
		if err != nil {
			return nil, err
		}
		ids = append(ids, id)
	}
	return ids, nil
}

// snippet shortens content for one-line listings.
func snippet(content string) string {
	content = strings.ReplaceAll(content, "\n", " ")
	runes := []rune(content)
	if len(runes) <= 60 {
		return content
	}
	return string(runes[:57]) + "..."
}
