package path

import "strings"

// Split decomposes path into its root followed by every non-empty
// component, outermost first. A path that is only a root yields [root].
func Split(path string) []string {
	return ConventionFor(path).Split(path)
}

// Split is the convention-specific form of the package-level Split.
func (c Convention) Split(path string) []string {
	p := c.Parse(path)
	if p.Root == p.Dir+p.Base {
		return []string{p.Root}
	}

	segments := []string{p.Root}
	rootless := strings.FieldsFunc(p.Dir[len(p.Root):], func(r rune) bool {
		return r < 0x80 && c.isSeparator(byte(r))
	})
	segments = append(segments, rootless...)
	if p.Base != "" {
		segments = append(segments, p.Base)
	}
	return segments
}
