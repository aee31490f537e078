package sqlite

import (
	"encoding/json"

	"github.com/cardboxhq/cardbox/pkg/types"
)

// JSON codecs for the TEXT columns holding lists. Encoding never writes SQL
// NULL: a nil slice is stored as "[]" so every reader sees a valid JSON
// array. Order and duplicates are preserved exactly as given.

func encodeStrings(column string, values []string) (string, error) {
	if values == nil {
		return "[]", nil
	}
	data, err := json.Marshal(values)
	if err != nil {
		return "", &types.SerializationError{Column: column, Err: err}
	}
	return string(data), nil
}

func decodeStrings(column, raw string) ([]string, error) {
	if raw == "" {
		return []string{}, nil
	}
	var values []string
	if err := json.Unmarshal([]byte(raw), &values); err != nil {
		return nil, &types.SerializationError{Column: column, Err: err}
	}
	if values == nil {
		values = []string{}
	}
	return values, nil
}

func encodeIDs(column string, ids []int64) (string, error) {
	if ids == nil {
		return "[]", nil
	}
	data, err := json.Marshal(ids)
	if err != nil {
		return "", &types.SerializationError{Column: column, Err: err}
	}
	return string(data), nil
}

func decodeIDs(column, raw string) ([]int64, error) {
	if raw == "" {
		return []int64{}, nil
	}
	var ids []int64
	if err := json.Unmarshal([]byte(raw), &ids); err != nil {
		return nil, &types.SerializationError{Column: column, Err: err}
	}
	if ids == nil {
		ids = []int64{}
	}
	return ids, nil
}
