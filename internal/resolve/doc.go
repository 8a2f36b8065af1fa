// Package resolve reconciles expected track paths against the actual
// filesystem.
//
// Library metadata and on-disk names drift apart: case differences,
// trimmed punctuation, "(Remastered)" suffixes. The Resolver first checks
// the expected path verbatim, then walks the music tree one segment at a
// time, re-matching each component against the directory's real entries
// case-insensitively and (optionally) by substring.
//
//	r := resolve.New("/music", true)
//	segs, err := r.Resolve([]string{"jane shepard", "greatest", "01 Renegade.mp3"})
//	// segs == ["Jane Shepard", "Greatest Hits", "01 Renegade.mp3"]
//
// The descent only runs on misses, so the common all-files-present case
// costs one stat per track.
package resolve
