package housing

import (
	"errors"
	"fmt"
)

// ErrTypeMismatch indicates a floor count that is not integer-valued.
var ErrTypeMismatch = errors.New("floor count must be an integer value")

// ErrOutOfRange indicates a floor count that is not positive.
var ErrOutOfRange = errors.New("floor count must be a positive number")

// SourceError indicates the input could not be opened, read, or has a malformed header.
type SourceError struct {
	Path string
	Err  error
}

func (e *SourceError) Error() string {
	if e.Path != "" {
		return fmt.Sprintf("load %s: %v", e.Path, e.Err)
	}
	return fmt.Sprintf("load source: %v", e.Err)
}

func (e *SourceError) Unwrap() error { return e.Err }

// CoercionError indicates a data row whose fields could not be converted to
// their declared types. Row is the 1-based data row number (header excluded).
// Column is empty when the row itself is structurally wrong.
type CoercionError struct {
	Row    int
	Column string
	Value  string
	Err    error
}

func (e *CoercionError) Error() string {
	if e.Column == "" {
		return fmt.Sprintf("row %d: %v", e.Row, e.Err)
	}
	return fmt.Sprintf("row %d, column %s: cannot convert %q: %v", e.Row, e.Column, e.Value, e.Err)
}

func (e *CoercionError) Unwrap() error { return e.Err }

// ClassifyError wraps ErrTypeMismatch or ErrOutOfRange with the offending input.
type ClassifyError struct {
	Value string
	Err   error
}

func (e *ClassifyError) Error() string {
	return fmt.Sprintf("classify %s: %v", e.Value, e.Err)
}

func (e *ClassifyError) Unwrap() error { return e.Err }
