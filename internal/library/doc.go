// Package library parses the XML library export (Library.xml) produced
// by iTunes / Apple Music.
//
// The export is a property list: a <plist> wrapping one <dict> whose
// "Tracks" entry maps track IDs to track dicts and whose "Playlists"
// entry is an array of playlist dicts. Values inside those dicts are flat
// <key>/<value> sequences, and the format's convention is that a field is
// the first value following its key.
//
// The parser keeps dictionaries ordered for exactly that reason; a
// generic map would lose the "first occurrence" rule.
//
// # Basic Usage
//
//	doc, err := library.ParseFile("Library.xml")
//	if err != nil {
//	    return err
//	}
//	for _, pl := range doc.Playlists() {
//	    name := library.StringField(pl, "Name")
//	    ...
//	}
//
// # Field Extraction
//
// StringField applies the converter's default-value and sanitization
// policy, so callers get path-safe values directly:
//
//	album := library.StringField(track, "Album") // "Unknown Album" when absent
package library
