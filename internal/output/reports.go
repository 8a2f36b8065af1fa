package output

import (
	"sort"
	"strings"
)

// RenderPathSet renders a set of paths as a sorted, newline-terminated
// list. Sorting makes repeated runs produce identical report files.
func RenderPathSet(paths map[string]struct{}) string {
	sorted := make([]string, 0, len(paths))
	for p := range paths {
		sorted = append(sorted, p)
	}
	sort.Strings(sorted)

	var sb strings.Builder
	for _, p := range sorted {
		sb.WriteString(p)
		sb.WriteString("\n")
	}
	return sb.String()
}

// RenderNames renders a list of names one per line, keeping the order
// the caller collected them in.
func RenderNames(names []string) string {
	var sb strings.Builder
	for _, n := range names {
		sb.WriteString(n)
		sb.WriteString("\n")
	}
	return sb.String()
}
