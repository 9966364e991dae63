package mocks

import (
	"slices"
	"sync"

	"github.com/Cyclone1070/discoverpath/internal/tool/service/fs"
	"github.com/Cyclone1070/discoverpath/internal/tool/service/path"
)

// Node is either File or a Dir.
type Node interface {
	isNode()
}

type fileNode struct{}

func (fileNode) isNode() {}

// File marks a regular file in a Dir.
var File Node = fileNode{}

// Entry is a named child of a Dir.
type Entry struct {
	Name string
	Node Node
}

// Dir is an ordered directory. Listings return entries in the order given,
// which lets tests control what the case-insensitive scan sees first.
type Dir []Entry

func (Dir) isNode() {}

func (d Dir) child(name string) (Node, bool) {
	for _, e := range d {
		if e.Name == name {
			return e.Node, true
		}
	}
	return nil, false
}

// MapFileSystem is an in-memory directory tree keyed at the top level by
// root token ("/", "C:\").
type MapFileSystem struct {
	Mu       sync.Mutex
	Tree     Dir
	OpErrors map[string]error // path -> error to return from ReadDirNames
	Calls    []string         // paths passed to ReadDirNames, in order
}

// NewMapFileSystem creates a MapFileSystem over tree.
func NewMapFileSystem(tree Dir) *MapFileSystem {
	return &MapFileSystem{
		Tree:     tree,
		OpErrors: make(map[string]error),
	}
}

// SetError makes ReadDirNames(path) fail with err.
func (f *MapFileSystem) SetError(path string, err error) {
	f.Mu.Lock()
	defer f.Mu.Unlock()
	f.OpErrors[path] = err
}

// ReadDirNames walks the tree along target and lists the directory found.
func (f *MapFileSystem) ReadDirNames(target string) ([]string, error) {
	f.Mu.Lock()
	defer f.Mu.Unlock()

	f.Calls = append(f.Calls, target)
	if err, ok := f.OpErrors[target]; ok {
		return nil, err
	}

	conv := path.ConventionFor(target)
	segments := conv.Split(target)

	parent := f.Tree
	for i, seg := range segments {
		child, ok := parent.child(seg)
		if !ok {
			return nil, &path.PathNotFoundError{Path: conv.Join(segments[:i+1]...)}
		}
		dir, ok := child.(Dir)
		if !ok {
			return nil, &fs.NotADirectoryError{Path: conv.Join(segments[:i+1]...)}
		}
		parent = dir
	}

	names := make([]string, 0, len(parent))
	for _, e := range parent {
		names = append(names, e.Name)
	}
	return names, nil
}

// CallCount returns how many listings were requested.
func (f *MapFileSystem) CallCount() int {
	f.Mu.Lock()
	defer f.Mu.Unlock()
	return len(f.Calls)
}

// Listed returns a copy of the recorded listing calls.
func (f *MapFileSystem) Listed() []string {
	f.Mu.Lock()
	defer f.Mu.Unlock()
	return slices.Clone(f.Calls)
}
