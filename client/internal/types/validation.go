package types

import (
	"context"
	"errors"
	"fmt"
)

// ------------------------------
// Shared Interfaces
// ------------------------------

// Executor performs a Call against the backend (implemented by the public client).
type Executor interface {
	Execute(ctx context.Context, call Call) (*Response, error)
}

// ------------------------------
// Validation
// ------------------------------

// ErrEmptyID is returned when an item operation receives an empty identifier.
var ErrEmptyID = errors.New("id must not be empty")

// FormatID renders a numeric or string identifier for a path segment.
func FormatID(id any) (string, error) {
	if id == nil {
		return "", ErrEmptyID
	}
	s := fmt.Sprint(id)
	if s == "" {
		return "", ErrEmptyID
	}
	return s, nil
}
