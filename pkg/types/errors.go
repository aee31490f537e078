package types

import (
	"errors"
	"fmt"
)

// Store lifecycle errors.
var (
	ErrStoreUnavailable = errors.New("store connection not initialized")
	ErrAlreadyAttached  = errors.New("store is already attached")
)

// Entity operation errors.
var (
	ErrNotFound  = errors.New("entity not found")
	ErrInvalidID = errors.New("invalid entity ID")
)

// SchemaError reports a failed migration step. The persisted schema version
// is left untouched when one of these surfaces.
type SchemaError struct {
	Table string
	Err   error
}

func (e *SchemaError) Error() string {
	return fmt.Sprintf("schema upgrade for %s: %v", e.Table, e.Err)
}

func (e *SchemaError) Unwrap() error { return e.Err }

// SerializationError reports a malformed JSON value in a text column,
// which indicates prior data corruption or a missed migration.
type SerializationError struct {
	Column string
	Err    error
}

func (e *SerializationError) Error() string {
	return fmt.Sprintf("decoding column %s: %v", e.Column, e.Err)
}

func (e *SerializationError) Unwrap() error { return e.Err }
