// Package ioutils provides file system utilities for itlexport.
//
// This package contains functions for:
//   - Metadata field sanitization for cross-platform path components
//   - XML entity escaping for playlist descriptors
//   - Content-path assembly under a configurable separator
//   - File writing and directory creation
//
// # Field Sanitization
//
// Use SanitizeField to make a metadata value safe inside a path:
//
//	safe := ioutils.SanitizeField("AC/DC", false) // Returns "AC_DC"
//
// The displayName flag preserves leading/trailing periods for track
// titles, where they are legitimate.
//
// # Content Paths
//
// Paths written into playlist files follow the configured separator
// convention, not the host's:
//
//	p := ioutils.ContentPath(`C:\Music`, `\`, []string{"Artist", "Album", "01 Song.mp3"})
//	// p == `C:\Music\Artist\Album\01 Song.mp3`
package ioutils
