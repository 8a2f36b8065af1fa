package audio

import (
	"path/filepath"
	"strings"

	"github.com/bogem/id3v2"

	ioutils "itlexport/internal/io"
)

// TagChecker cross-checks a fuzzily matched file against the library
// metadata it was matched to, using the file's embedded ID3 tags.
//
// A fuzzy match is a guess; when the pointed-at file is an MP3 with
// readable tags, comparing its title and artist to the library's catches
// the case where the substring search landed on the wrong file. The check
// is advisory: a disagreement produces a warning upstream, never a miss.
type TagChecker struct{}

// NewTagChecker creates a TagChecker.
func NewTagChecker() *TagChecker {
	return &TagChecker{}
}

// Check reads the ID3 title and artist from path and reports whether they
// agree with the expected metadata. Files that are not MP3s, have no
// readable tag, or have empty frames are treated as agreeing: only a
// positive contradiction counts.
//
// The tag values are run through the same sanitization as library fields
// before comparing, since the expected values arrive path-sanitized.
func (c *TagChecker) Check(path, wantTitle, wantArtist string) bool {
	if !strings.EqualFold(filepath.Ext(path), ".mp3") {
		return true
	}

	tag, err := id3v2.Open(path, id3v2.Options{Parse: true})
	if err != nil {
		return true
	}
	defer tag.Close()

	gotTitle := ioutils.SanitizeField(strings.TrimSpace(tag.Title()), true)
	gotArtist := ioutils.SanitizeField(strings.TrimSpace(tag.Artist()), false)

	if gotTitle != "" && wantTitle != "" && !strings.EqualFold(gotTitle, wantTitle) {
		return false
	}
	if gotArtist != "" && wantArtist != "" && !strings.EqualFold(gotArtist, wantArtist) {
		return false
	}
	return true
}
