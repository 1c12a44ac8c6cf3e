package archive

import (
	"errors"
	"fmt"
)

// ErrEntryNotFound is returned when an archive has no entry with the requested name
var ErrEntryNotFound = errors.New("entry not found")

// OpenError reports a path that could not be opened as an archive
type OpenError struct {
	Path string
	Err  error
}

func (e *OpenError) Error() string {
	return fmt.Sprintf("failed to open archive %s: %v", e.Path, e.Err)
}

func (e *OpenError) Unwrap() error {
	return e.Err
}
