package resolve

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
)

// ErrNotFound is returned when neither the exact path nor the fuzzy
// descent could locate a file.
var ErrNotFound = errors.New("file not found")

// Resolver locates track files under the music root, recovering from
// case and naming mismatches between library metadata and the actual
// filesystem.
//
// Resolution is two-step: an exact existence check first, then a
// per-segment descent that re-matches each path component against the
// directory's real entries. The descent is O(depth × directory size) but
// only runs on misses.
type Resolver struct {
	root     string
	contains bool
}

// New creates a Resolver over the given music root. When contains is
// true, the fuzzy descent also accepts directory entries whose lowercased
// name contains the wanted segment as a substring.
func New(root string, contains bool) *Resolver {
	return &Resolver{root: root, contains: contains}
}

// Root returns the music root the resolver searches under.
func (r *Resolver) Root() string {
	return r.root
}

// Resolve locates the file described by the expected path segments
// (relative to the music root) and returns the segments as they actually
// exist on disk. When the expected path exists as-is, the input segments
// are returned unchanged. Returns ErrNotFound when the descent dead-ends.
func (r *Resolver) Resolve(segments []string) ([]string, error) {
	if r.exists(segments) {
		return segments, nil
	}

	current := r.root
	resolved := make([]string, 0, len(segments))

	for _, segment := range segments {
		next := filepath.Join(current, segment)
		if _, err := os.Stat(next); err != nil {
			segment = r.matchEntry(current, segment)
			next = filepath.Join(current, segment)
			if _, err := os.Stat(next); err != nil {
				return nil, ErrNotFound
			}
		}
		resolved = append(resolved, segment)
		current = next
	}

	return resolved, nil
}

// exists reports whether the exact expected path is present.
func (r *Resolver) exists(segments []string) bool {
	_, err := os.Stat(filepath.Join(append([]string{r.root}, segments...)...))
	return err == nil
}

// matchEntry scans dir for the entry that best matches want:
// case-insensitive equality first, then (in contains mode) a substring
// match where the last hit wins. Falls back to want itself when nothing
// matches, letting the caller's stat produce the failure.
func (r *Resolver) matchEntry(dir, want string) string {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return want
	}

	wantLower := strings.ToLower(want)
	equal := ""
	substring := ""

	for _, entry := range entries {
		name := entry.Name()
		nameLower := strings.ToLower(name)
		if nameLower == wantLower {
			equal = name
		} else if r.contains && strings.Contains(nameLower, wantLower) {
			substring = name
		}
	}

	if equal != "" {
		return equal
	}
	if substring != "" {
		return substring
	}
	return want
}
