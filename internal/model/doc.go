// Package model defines the core data structures of the converter.
//
// # Track
//
// Track is built from a library dict with its path-relevant fields
// precomputed:
//
//	track := model.NewTrack(dict)
//	track.PathSegments() // ["Daft Punk", "Discovery", "03 Digital Love.mp3"]
//
// The Kind → extension mapping lives in FileExtensions; a kind outside
// the table means the track is skipped rather than failing the run.
//
// # Playlist and Folders
//
// Playlist carries the member track IDs plus the persistent-ID links that
// mirror the source's playlist-folder nesting. FolderTable resolves that
// nesting:
//
//	table := model.NewFolderTable(playlists)
//	path, err := table.Path(pl.ParentID, "/") // "Rock/Classics/"
//
// The walk is iterative and cycle-guarded; a malformed export surfaces as
// MissingFolderError or FolderCycleError instead of infinite recursion.
//
// # Results
//
// ConversionResult and RunSummary carry the per-playlist and run-wide
// miss/incompleteness state threaded through the converter.
package model
