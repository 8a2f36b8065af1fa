package model

import (
	"itlexport/internal/library"
)

// Playlist is an immutable view of one playlist dict from the library
// export. Folder-flagged playlists never produce output files themselves
// but contribute to the folder nesting of the real playlists beneath
// them.
type Playlist struct {
	// Name is the sanitized playlist name.
	Name string

	// ID is the playlist's persistent ID.
	ID string

	// ParentID is the persistent ID of the enclosing folder, or "" for a
	// top-level playlist.
	ParentID string

	// Folder reports whether this entry is an organizational folder.
	Folder bool

	// TrackIDs are the member track references in playlist order.
	TrackIDs []int64
}

// NewPlaylist builds a Playlist from its library dict.
//
// The Folder flag is keyed on the presence of the "Folder" key: entries
// that are not folders simply omit it in the export.
func NewPlaylist(d *library.Dict) *Playlist {
	p := &Playlist{
		Name:     library.StringField(d, "Name"),
		ID:       library.RawStringField(d, "Playlist Persistent ID"),
		ParentID: library.RawStringField(d, "Parent Persistent ID"),
		Folder:   d.Has("Folder"),
	}

	if items, ok := d.Get("Playlist Items"); ok && items.Kind == library.KindArray {
		for _, item := range items.Array {
			if item.Kind != library.KindDict {
				continue
			}
			if id, ok := library.IntField(item.Dict, "Track ID"); ok {
				p.TrackIDs = append(p.TrackIDs, id)
			}
		}
	}

	return p
}
