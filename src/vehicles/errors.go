package vehicles

import (
	"errors"
	"fmt"
)

// ErrNoHeader indicates the source had no header row.
var ErrNoHeader = errors.New("no header row")

// ErrFetch indicates a remote source answered with a non-success status.
var ErrFetch = errors.New("fetch failed")

// LoadError wraps any failure to fetch or decode a whole data source.
type LoadError struct {
	Source string
	Err    error
}

func (e *LoadError) Error() string {
	return fmt.Sprintf("load %s: %v", e.Source, e.Err)
}

func (e *LoadError) Unwrap() error {
	return e.Err
}
