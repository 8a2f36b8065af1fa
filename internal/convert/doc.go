// Package convert orchestrates the library-to-playlists conversion.
//
// # Flow
//
// The Manager parses the library export, derives the folder hierarchy,
// then walks the playlists in document order. Each real playlist is
// resolved member by member against the music directory and written as
// either an m3u file or an XML descriptor; per-playlist .missing files
// and the run-level reports record anything that could not be located.
//
// Progress is surfaced through a callback so both the CLI and the TUI
// can render it their own way.
package convert
