package library

import (
	"strings"

	ioutils "itlexport/internal/io"
)

// defaultAlbum is used when a track has no Album field at all. Tracks
// without an album still need an album directory in the computed path.
const defaultAlbum = "Unknown Album"

// StringField returns the string value stored under name, trimmed of
// surrounding whitespace and sanitized for use as a path component.
//
// A missing Album yields "Unknown Album"; any other missing field yields
// the empty string. Only the display "Name" field keeps leading and
// trailing periods through sanitization.
func StringField(d *Dict, name string) string {
	v, ok := d.Get(name)
	if !ok || v.Kind != KindString {
		if name == "Album" {
			return defaultAlbum
		}
		return ""
	}
	value := strings.TrimSpace(v.Str)
	return ioutils.SanitizeField(value, name == "Name")
}

// RawStringField returns the trimmed string value under name without
// sanitization, or "" when absent. Persistent IDs go through here.
func RawStringField(d *Dict, name string) string {
	v, ok := d.Get(name)
	if !ok || v.Kind != KindString {
		return ""
	}
	return strings.TrimSpace(v.Str)
}

// IntField returns the integer value stored under name.
func IntField(d *Dict, name string) (int64, bool) {
	v, ok := d.Get(name)
	if !ok || v.Kind != KindInteger {
		return 0, false
	}
	return v.Int, true
}
