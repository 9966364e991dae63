package path

import (
	"errors"
	"fmt"
	"io/fs"
	"strings"
)

// -- Error Types --

// PathNotFoundError is returned when a segment of the requested path has no
// matching directory entry, or more than one entry differing only in case.
type PathNotFoundError struct {
	Path        string
	Suggestions []string
}

func (e *PathNotFoundError) Error() string {
	msg := fmt.Sprintf("ENOENT: no such file or directory, scandir '%s'", e.Path)
	if len(e.Suggestions) == 0 {
		return msg
	}

	var sb strings.Builder
	sb.WriteString(msg)
	sb.WriteString("\nDid you mean:")
	for _, s := range e.Suggestions {
		sb.WriteString("\n  - ")
		sb.WriteString(s)
	}
	return sb.String()
}

// Is makes errors.Is(err, fs.ErrNotExist) hold for resolution failures.
func (e *PathNotFoundError) Is(target error) bool { return target == fs.ErrNotExist }

func (e *PathNotFoundError) Code() string    { return "ENOENT" }
func (e *PathNotFoundError) Errno() int      { return -2 }
func (e *PathNotFoundError) Syscall() string { return "scandir" }

// Ambiguous reports whether the failure carries disambiguation suggestions.
func (e *PathNotFoundError) Ambiguous() bool { return len(e.Suggestions) > 0 }

// InvalidPathError is returned when the target cannot be split into a root
// and segments.
type InvalidPathError struct {
	Path   string
	Reason string
}

func (e *InvalidPathError) Error() string {
	return fmt.Sprintf("invalid path %q: %s", e.Path, e.Reason)
}
func (e *InvalidPathError) Unwrap() error { return ErrInvalidPath }

// -- Sentinels --

var (
	ErrInvalidPath = errors.New("path must be absolute")
)
