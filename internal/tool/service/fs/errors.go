package fs

import (
	"fmt"
	"syscall"
)

// -- Errors --

// NotADirectoryError is returned when a listing targets a file.
type NotADirectoryError struct {
	Path string
}

func (e *NotADirectoryError) Error() string {
	return fmt.Sprintf("ENOTDIR: not a directory, scandir '%s'", e.Path)
}
func (e *NotADirectoryError) Unwrap() error { return syscall.ENOTDIR }

type ReadDirError struct {
	Path  string
	Cause error
}

func (e *ReadDirError) Error() string {
	return fmt.Sprintf("failed to read directory %s: %v", e.Path, e.Cause)
}
func (e *ReadDirError) Unwrap() error { return e.Cause }
