package model

import (
	"fmt"

	"itlexport/internal/library"
)

// FileExtensions maps the library's "Kind" field to the file extension
// iTunes uses when downloading songs. A kind outside this table means the
// track's on-disk name cannot be inferred and the track is skipped.
var FileExtensions = map[string]string{
	"MPEG audio file":             ".mp3",
	"MPEG-4 video file":           ".m4a",
	"MPEG-4 audio file":           ".mp4",
	"Purchased MPEG-4 video file": ".m4v",
	"AAC audio file":              ".m4a",
	"Purchased AAC audio file":    ".m4a",
	"Matched AAC audio file":      ".m4a",
	"AIFF audio file":             ".aif",
	"WAV audio file":              ".wav",
}

// Track is an immutable view of one track dict from the library export,
// with the path-relevant fields precomputed. Tracks are built per lookup
// and discarded after use; they carry no identity beyond the source
// document.
type Track struct {
	// Name is the sanitized display name of the track.
	Name string

	// Artist is the sanitized track artist ("" when absent).
	Artist string

	// Album is the sanitized album title ("Unknown Album" when absent).
	Album string

	// Kind is the library's file-type description, e.g. "MPEG audio file".
	Kind string

	// ArtistDir is the directory between the music root and the album
	// directory, resolved by the artist precedence rules.
	ArtistDir string

	// TrackPrefix is the numbering prefix of the filename, e.g. "03 " or
	// "1-04 " for multi-disc albums. Empty when the track has no number.
	TrackPrefix string

	// Extension is the mapped file extension including the dot, or ""
	// when Kind is not in FileExtensions.
	Extension string
}

// NewTrack builds a Track from its library dict.
func NewTrack(d *library.Dict) *Track {
	t := &Track{
		Name:   library.StringField(d, "Name"),
		Artist: library.StringField(d, "Artist"),
		Album:  library.StringField(d, "Album"),
		Kind:   library.StringField(d, "Kind"),
	}
	t.ArtistDir = artistDir(d, t.Artist)
	t.TrackPrefix = trackPrefix(d)
	t.Extension = FileExtensions[t.Kind]
	return t
}

// HasExtension reports whether the track's kind mapped to a known file
// extension. Tracks without one are omitted from playlists.
func (t *Track) HasExtension() bool {
	return t.Extension != ""
}

// FileName returns the numbered on-disk file name, e.g. "1-04 Song.mp3".
func (t *Track) FileName() string {
	return t.TrackPrefix + t.Name + t.Extension
}

// PathSegments returns the track's expected location relative to the
// music root, as ordered path segments.
func (t *Track) PathSegments() []string {
	return []string{t.ArtistDir, t.Album, t.FileName()}
}

// artistDir resolves the artist directory with the following precedence:
//
//  1. "Compilations" when the track carries a Compilation flag
//  2. Album Artist (or its sort variant), with Apple's own
//     "Various Artists" → "VARIOUS ARTISTS" folder-name quirk
//  3. Track artist
//  4. "Unknown Artist"
func artistDir(d *library.Dict, artist string) string {
	if d.Has("Compilation") {
		return "Compilations"
	}

	albumArtist := library.StringField(d, "Album Artist")
	if albumArtist == "" {
		albumArtist = library.StringField(d, "Sort Album Artist")
	}
	if albumArtist != "" {
		if albumArtist == "Various Artists" {
			return "VARIOUS ARTISTS"
		}
		return albumArtist
	}

	if artist != "" {
		return artist
	}
	return "Unknown Artist"
}

// trackPrefix formats the filename numbering prefix: a zero-padded
// two-digit track number followed by a space, preceded by "<disc>-" when
// the album spans multiple discs and the track lists its disc number.
func trackPrefix(d *library.Dict) string {
	prefix := ""

	if discCount, ok := library.IntField(d, "Disc Count"); ok && discCount > 1 {
		// Some tracks have a disc count but no listed disc number.
		if discNum, ok := library.IntField(d, "Disc Number"); ok {
			prefix = fmt.Sprintf("%d-", discNum)
		}
	}

	if trackNum, ok := library.IntField(d, "Track Number"); ok {
		prefix += fmt.Sprintf("%02d ", trackNum)
	}

	return prefix
}
