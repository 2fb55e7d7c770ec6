// Package lookup defines the typed failure returned when a rules table has no
// entry for a key. A miss indicates a content or data error and is surfaced to
// the caller instead of being defaulted.
package lookup

import (
	"errors"
	"fmt"
)

// ErrNotFound is the sentinel wrapped by every *Error.
var ErrNotFound = errors.New("not found")

// Error reports a key missing from a named table.
type Error struct {
	Table string
	Key   string
}

// NotFound returns an *Error for key in table. key is formatted with %v.
func NotFound(table string, key any) *Error {
	return &Error{Table: table, Key: fmt.Sprintf("%v", key)}
}

func (e *Error) Error() string {
	return fmt.Sprintf("%s: key %q not found", e.Table, e.Key)
}

// Unwrap allows errors.Is(err, ErrNotFound).
func (e *Error) Unwrap() error {
	return ErrNotFound
}
