package path

import (
	stdpath "path"
	"strings"
)

// Convention selects the parse and join rules for a path string.
type Convention int

const (
	// Posix paths are rooted at "/" and use "/" as their only separator.
	Posix Convention = iota
	// Windows paths are rooted at a drive ("C:\") or UNC share and accept
	// both "\" and "/" as separators.
	Windows
)

// Parsed holds the components of a path as produced by Convention.Parse.
type Parsed struct {
	Root string
	Dir  string
	Base string
}

// ConventionFor picks the convention for path by its first character.
func ConventionFor(path string) Convention {
	if strings.HasPrefix(path, "/") {
		return Posix
	}
	return Windows
}

func (c Convention) String() string {
	if c == Posix {
		return "posix"
	}
	return "windows"
}

// Separator returns the separator used when joining segments.
func (c Convention) Separator() byte {
	if c == Posix {
		return '/'
	}
	return '\\'
}

func (c Convention) isSeparator(b byte) bool {
	if c == Posix {
		return b == '/'
	}
	return b == '\\' || b == '/'
}

// Parse splits path into root, dir and base. Trailing separators are
// ignored, so "/foo/bar/" parses like "/foo/bar".
func (c Convention) Parse(path string) Parsed {
	root := c.root(path)
	rest := path[len(root):]
	for len(rest) > 0 && c.isSeparator(rest[len(rest)-1]) {
		rest = rest[:len(rest)-1]
	}

	idx := c.lastSeparator(rest)
	if idx < 0 {
		return Parsed{Root: root, Dir: root, Base: rest}
	}
	return Parsed{Root: root, Dir: root + rest[:idx], Base: rest[idx+1:]}
}

// Join joins segments under the convention's rules. The first segment is
// kept verbatim so that roots survive unchanged.
func (c Convention) Join(segments ...string) string {
	if c == Posix {
		return stdpath.Join(segments...)
	}

	var sb strings.Builder
	for _, seg := range segments {
		if sb.Len() > 0 {
			seg = strings.TrimFunc(seg, func(r rune) bool { return r == '\\' || r == '/' })
		}
		if seg == "" {
			continue
		}
		if sb.Len() > 0 {
			if last := sb.String()[sb.Len()-1]; !c.isSeparator(last) {
				sb.WriteByte('\\')
			}
		}
		sb.WriteString(seg)
	}
	if sb.Len() == 0 {
		return "."
	}
	return sb.String()
}

// IsAbs reports whether path carries a complete root for this convention.
// Drive-relative paths such as "C:foo" are not absolute.
func (c Convention) IsAbs(path string) bool {
	root := c.root(path)
	if root == "" {
		return false
	}
	if c == Windows && len(root) > 2 && c.isSeparator(root[0]) && c.isSeparator(root[1]) {
		return true
	}
	return c.isSeparator(root[len(root)-1])
}

func (c Convention) root(path string) string {
	if path == "" {
		return ""
	}
	if c == Posix {
		if path[0] == '/' {
			return "/"
		}
		return ""
	}

	switch {
	case len(path) >= 2 && c.isSeparator(path[0]) && c.isSeparator(path[1]):
		return c.uncRoot(path)
	case len(path) >= 2 && isDriveLetter(path[0]) && path[1] == ':':
		if len(path) >= 3 && c.isSeparator(path[2]) {
			return path[:3]
		}
		return path[:2]
	case c.isSeparator(path[0]):
		return path[:1]
	}
	return ""
}

// uncRoot returns "\\server\share\" for a UNC path, falling back to a lone
// separator when the server or share component is missing.
func (c Convention) uncRoot(path string) string {
	rest := path[2:]
	server := c.firstSeparator(rest)
	if server <= 0 {
		return path[:1]
	}
	share := rest[server+1:]
	end := c.firstSeparator(share)
	switch {
	case end == 0 || share == "":
		return path[:1]
	case end < 0:
		return path
	}
	return path[:2+server+1+end+1]
}

func (c Convention) firstSeparator(s string) int {
	for i := 0; i < len(s); i++ {
		if c.isSeparator(s[i]) {
			return i
		}
	}
	return -1
}

func (c Convention) lastSeparator(s string) int {
	for i := len(s) - 1; i >= 0; i-- {
		if c.isSeparator(s[i]) {
			return i
		}
	}
	return -1
}

func isDriveLetter(b byte) bool {
	return ('a' <= b && b <= 'z') || ('A' <= b && b <= 'Z')
}
