package output

import (
	"strings"
)

// RenderM3U renders a plain path-list playlist: one path per line in
// member order, every line newline-terminated. There is no #EXTM3U
// header; the consuming media server treats the file as a bare path
// list and fills in metadata from its own library scan.
func RenderM3U(paths []string) string {
	var sb strings.Builder
	for _, p := range paths {
		sb.WriteString(p)
		sb.WriteByte('\n')
	}
	return sb.String()
}
