package fs

import (
	"os"
	"slices"
)

// OSFileSystem lists directories using the local OS filesystem primitives.
type OSFileSystem struct{}

// NewOSFileSystem creates a new OSFileSystem.
func NewOSFileSystem() *OSFileSystem {
	return &OSFileSystem{}
}

// ReadDirNames returns the names of the entries in the directory at path,
// sorted byte-wise like os.ReadDir. Errors from the OS (ENOENT, ENOTDIR, EACCES) are returned as-is.
func (fs *OSFileSystem) ReadDirNames(path string) ([]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	names, err := f.Readdirnames(-1)
	if err != nil {
		return nil, &os.PathError{Op: "scandir", Path: path, Err: unwrapPathError(err)}
	}
	slices.Sort(names)
	return names, nil
}

func unwrapPathError(err error) error {
	if pe, ok := err.(*os.PathError); ok {
		return pe.Err
	}
	return err
}
