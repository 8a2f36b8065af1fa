package library

import (
	"fmt"
	"io"
	"os"
	"strconv"
)

// Document is a parsed library export. It is read-only: the converter
// never writes back to the source file.
//
// The export has two major sections: a dictionary of all tracks keyed by
// track ID, and an array of playlists referencing those IDs. A track ID
// referenced by a playlist is not guaranteed to exist in the track table;
// LookupTrack makes that a normal lookup failure rather than a panic.
type Document struct {
	tracks    *Dict
	playlists []*Dict
}

// ParseFile reads and parses the library export at path.
func ParseFile(path string) (*Document, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	doc, err := Parse(f)
	if err != nil {
		return nil, fmt.Errorf("parsing %s: %w", path, err)
	}
	return doc, nil
}

// Parse parses a library export from r.
func Parse(r io.Reader) (*Document, error) {
	root, err := parsePlist(r)
	if err != nil {
		return nil, err
	}
	if root.Kind != KindDict {
		return nil, fmt.Errorf("library: root plist value is not a dict")
	}

	doc := &Document{tracks: &Dict{}}

	if v, ok := root.Dict.Get("Tracks"); ok {
		if v.Kind != KindDict {
			return nil, fmt.Errorf("library: Tracks section is not a dict")
		}
		doc.tracks = v.Dict
	}

	if v, ok := root.Dict.Get("Playlists"); ok {
		if v.Kind != KindArray {
			return nil, fmt.Errorf("library: Playlists section is not an array")
		}
		for _, item := range v.Array {
			if item.Kind == KindDict {
				doc.playlists = append(doc.playlists, item.Dict)
			}
		}
	}

	return doc, nil
}

// LookupTrack returns the track dict for the given track ID.
func (d *Document) LookupTrack(id int64) (*Dict, bool) {
	v, ok := d.tracks.Get(strconv.FormatInt(id, 10))
	if !ok || v.Kind != KindDict {
		return nil, false
	}
	return v.Dict, true
}

// TrackCount returns the number of tracks in the track table.
func (d *Document) TrackCount() int {
	return d.tracks.Len()
}

// Playlists returns the playlist dicts in document order.
func (d *Document) Playlists() []*Dict {
	return d.playlists
}
