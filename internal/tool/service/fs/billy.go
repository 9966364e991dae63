package fs

import (
	"slices"

	"github.com/go-git/go-billy/v5"
	"github.com/go-git/go-billy/v5/memfs"
	"github.com/go-git/go-billy/v5/osfs"
)

// BillyFileSystem lists directories of a go-billy filesystem. Paths are
// interpreted relative to the filesystem's own root.
type BillyFileSystem struct {
	fs billy.Filesystem
}

// NewBillyFileSystem wraps an existing billy filesystem.
func NewBillyFileSystem(fs billy.Filesystem) *BillyFileSystem {
	return &BillyFileSystem{fs: fs}
}

// NewOSBillyFileSystem exposes the host filesystem rooted at "/".
func NewOSBillyFileSystem() *BillyFileSystem {
	return &BillyFileSystem{fs: osfs.New("/")}
}

// NewMemBillyFileSystem returns an empty in-memory filesystem.
func NewMemBillyFileSystem() *BillyFileSystem {
	return &BillyFileSystem{fs: memfs.New()}
}

// Filesystem returns the wrapped billy filesystem.
func (b *BillyFileSystem) Filesystem() billy.Filesystem {
	return b.fs
}

// ReadDirNames returns the entry names of the directory at path, sorted
// byte-wise so every backend agrees on listing order.
func (b *BillyFileSystem) ReadDirNames(path string) ([]string, error) {
	info, err := b.fs.Stat(path)
	if err != nil {
		return nil, err
	}
	if !info.IsDir() {
		return nil, &NotADirectoryError{Path: path}
	}

	infos, err := b.fs.ReadDir(path)
	if err != nil {
		return nil, &ReadDirError{Path: path, Cause: err}
	}

	names := make([]string, 0, len(infos))
	for _, info := range infos {
		names = append(names, info.Name())
	}
	slices.Sort(names)
	return names, nil
}
