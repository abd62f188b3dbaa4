package packaging

import (
	"errors"
	"fmt"
)

// ConflictError reports a unit file left behind by an older release.
// The installer refuses to overwrite or migrate it; the user removes it by hand.
// It supports errors.Is matching against ErrConflict.
type ConflictError struct {
	Path string
}

// Error returns the formatted error string.
func (e *ConflictError) Error() string {
	return fmt.Sprintf("packaging: %s already exists; remove it before installing", e.Path)
}

// Is reports whether target is a *ConflictError. Paths are not compared.
func (e *ConflictError) Is(target error) bool {
	_, ok := target.(*ConflictError)
	return ok
}

// ErrConflict matches any *ConflictError with errors.Is.
var ErrConflict = &ConflictError{}

// FilesystemError wraps an I/O failure on a path.
type FilesystemError struct {
	Op   string
	Path string
	Err  error
}

// Error returns the formatted error string.
func (e *FilesystemError) Error() string {
	return fmt.Sprintf("packaging: %s %s: %v", e.Op, e.Path, e.Err)
}

// Unwrap returns the underlying error.
func (e *FilesystemError) Unwrap() error {
	return e.Err
}

func fsError(op, path string, err error) error {
	return &FilesystemError{Op: op, Path: path, Err: err}
}

// ErrVerifyFailed reports installed files that are missing or differ from the sources.
var ErrVerifyFailed = errors.New("verification failed")
