package path

import (
	"slices"
	"strings"

	"github.com/Cyclone1070/discoverpath/internal/tool/service/fs"
	"github.com/rs/zerolog"
)

// caseScanLimit bounds how many directory entries the case-insensitive
// scan inspects. Matches past this position are never found, and a third
// variant is never reported as ambiguous.
const caseScanLimit = 2

// Lister returns the entry names of the directory at path.
type Lister interface {
	ReadDirNames(path string) ([]string, error)
}

// ListerFunc adapts a plain function to Lister.
type ListerFunc func(path string) ([]string, error)

func (f ListerFunc) ReadDirNames(path string) ([]string, error) { return f(path) }

// Resolver recovers the on-disk casing of absolute paths.
type Resolver struct {
	lister Lister
	log    zerolog.Logger
}

// Option configures a Resolver.
type Option func(*Resolver)

// WithLogger traces each segment decision at debug level.
func WithLogger(log zerolog.Logger) Option {
	return func(r *Resolver) { r.log = log }
}

// NewResolver creates a resolver backed by lister. A nil lister reads the
// local filesystem.
func NewResolver(lister Lister, opts ...Option) *Resolver {
	if lister == nil {
		lister = fs.NewOSFileSystem()
	}
	r := &Resolver{
		lister: lister,
		log:    zerolog.Nop(),
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Discover resolves target with a one-off resolver over lister.
func Discover(target string, lister Lister) (string, error) {
	return NewResolver(lister).Discover(target)
}

// Discover walks target from its root outward, replacing each segment with
// the casing found in its parent directory listing.
//
// Listing failures are returned unchanged. A segment with no match fails
// with *PathNotFoundError. So does a segment with two case-insensitive
// matches, which carries one suggestion per match when it is the last one.
func (r *Resolver) Discover(target string) (string, error) {
	conv := ConventionFor(target)
	if target == "" {
		return "", &InvalidPathError{Path: target, Reason: "empty path"}
	}
	if !conv.IsAbs(target) {
		return "", &InvalidPathError{Path: target, Reason: "no root"}
	}

	segments := conv.Split(target)
	matching := make([]string, 1, len(segments))
	matching[0] = segments[0]

	for i := 1; i < len(segments); i++ {
		parent := conv.Join(matching[:i]...)
		current := segments[i]
		log := r.log.With().Stringer("convention", conv).Str("parent", parent).Str("segment", current).Int("index", i).Logger()

		entries, err := r.lister.ReadDirNames(parent)
		if err != nil {
			return "", err
		}

		if slices.Contains(entries, current) {
			log.Debug().Msg("direct")
			matching = append(matching, current)
			continue
		}

		matches := caseInsensitiveMatches(current, entries)
		switch len(matches) {
		case 0:
			log.Debug().Msg("missing")
			return "", &PathNotFoundError{Path: target}
		case 1:
			log.Debug().Str("match", matches[0]).Msg("corrected")
			matching = append(matching, matches[0])
			continue
		}

		log.Debug().Strs("matches", matches).Msg("ambiguous")
		var suggestions []string
		if i == len(segments)-1 {
			suggestions = make([]string, 0, len(matches))
			for _, m := range matches {
				suggestions = append(suggestions, conv.Join(append(slices.Clone(matching), m)...))
			}
		}
		return "", &PathNotFoundError{Path: target, Suggestions: suggestions}
	}

	return conv.Join(matching...), nil
}

func caseInsensitiveMatches(target string, entries []string) []string {
	lowered := strings.ToLower(target)
	var matches []string
	for _, entry := range entries[:min(len(entries), caseScanLimit)] {
		if strings.ToLower(entry) == lowered {
			matches = append(matches, entry)
		}
	}
	return matches
}
