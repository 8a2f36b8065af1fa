package ioutils

import (
	"os"
	"strings"
)

// invalidChars are replaced with an underscore wherever a metadata field
// ends up inside a file path. Most of these are macOS download behavior,
// a couple are Jellyfin's.
const invalidChars = `/\"'?:<>*|`

// SanitizeField replaces problematic characters in a metadata value with
// underscores so the value is safe as a path component.
//
// Unless displayName is true, a leading or trailing period is also
// rewritten to an underscore: artist and album directories must not look
// like hidden files or end in a dot, while a track's display name keeps
// its periods.
//
// Example:
//
//	SanitizeField("AC/DC", false)   // Returns "AC_DC"
//	SanitizeField(".hidden", false) // Returns "_hidden"
//	SanitizeField("Vol. 2.", true)  // Returns "Vol. 2."
func SanitizeField(value string, displayName bool) string {
	var sb strings.Builder
	sb.Grow(len(value))
	for _, r := range value {
		if strings.ContainsRune(invalidChars, r) {
			sb.WriteByte('_')
		} else {
			sb.WriteRune(r)
		}
	}
	value = sb.String()

	if displayName || value == "" {
		return value
	}
	if value[0] == '.' {
		value = "_" + value[1:]
	}
	if value[len(value)-1] == '.' {
		value = value[:len(value)-1] + "_"
	}
	return value
}

// EscapeXML escapes &, < and > in text destined for XML element data.
// Attribute values are never built from user data here, so quotes are
// left alone.
func EscapeXML(text string) string {
	text = strings.ReplaceAll(text, "&", "&amp;")
	text = strings.ReplaceAll(text, "<", "&lt;")
	text = strings.ReplaceAll(text, ">", "&gt;")
	return text
}

// ContentPath joins root and segments with the configured separator,
// producing the path string written into playlist files. The separator is
// a playlist-content convention (POSIX or Windows) and is independent of
// the host filesystem. An empty root yields a relative path.
//
// Example:
//
//	ContentPath("/music", "/", []string{"Artist", "Album", "01 Song.mp3"})
//	// Returns "/music/Artist/Album/01 Song.mp3"
func ContentPath(root, sep string, segments []string) string {
	rel := strings.Join(segments, sep)
	if root == "" {
		return rel
	}
	root = strings.TrimRight(root, `/\`)
	return root + sep + rel
}

// WriteFile writes data to a file, creating it with mode 0644 or
// truncating it if it already exists.
func WriteFile(path string, data []byte) error {
	return os.WriteFile(path, data, 0644)
}

// EnsureDir creates a directory and all parent directories if they don't
// exist. Already-existing directories are not an error.
func EnsureDir(path string) error {
	return os.MkdirAll(path, 0755)
}

// Exists reports whether a file or directory exists at path.
func Exists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}
