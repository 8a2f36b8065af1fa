package model

import (
	"fmt"
	"strings"
)

// FolderEntry is one organizational folder in the folder table.
type FolderEntry struct {
	Name     string
	ParentID string
}

// FolderTable maps a folder's persistent ID to its name and parent. It is
// built once from all folder-flagged playlists and consulted for every
// real playlist beneath a folder.
type FolderTable map[string]FolderEntry

// NewFolderTable collects the folder-flagged playlists into a table.
func NewFolderTable(playlists []*Playlist) FolderTable {
	table := make(FolderTable)
	for _, p := range playlists {
		if !p.Folder {
			continue
		}
		table[p.ID] = FolderEntry{Name: p.Name, ParentID: p.ParentID}
	}
	return table
}

// MissingFolderError reports a parent reference that is absent from the
// folder table. The export is inconsistent and there is no safe way to
// place the affected playlists, so this aborts the run.
type MissingFolderError struct {
	ParentID string
}

func (e *MissingFolderError) Error() string {
	return fmt.Sprintf("playlist folder %s referenced but not present in library", e.ParentID)
}

// FolderCycleError reports a parent chain that revisits a folder. A
// recursive walk would never terminate on such an export.
type FolderCycleError struct {
	ID string
}

func (e *FolderCycleError) Error() string {
	return fmt.Sprintf("playlist folder %s is part of a parent-reference cycle", e.ID)
}

// Segments walks the parent chain starting at parentID and returns the
// folder names in root-to-leaf order. An empty parentID yields no
// segments. The walk is iterative with a visited set: a dangling parent
// returns MissingFolderError and a revisited ID returns FolderCycleError.
func (t FolderTable) Segments(parentID string) ([]string, error) {
	var reversed []string
	visited := make(map[string]bool)

	for id := parentID; id != ""; {
		if visited[id] {
			return nil, &FolderCycleError{ID: id}
		}
		visited[id] = true

		entry, ok := t[id]
		if !ok {
			return nil, &MissingFolderError{ParentID: id}
		}
		reversed = append(reversed, entry.Name)
		id = entry.ParentID
	}

	segments := make([]string, len(reversed))
	for i, name := range reversed {
		segments[len(reversed)-1-i] = name
	}
	return segments, nil
}

// Path renders the folder chain above parentID as a path fragment with a
// trailing separator, e.g. "Grandparent/Parent/". Top-level playlists
// yield "".
func (t FolderTable) Path(parentID, sep string) (string, error) {
	segments, err := t.Segments(parentID)
	if err != nil {
		return "", err
	}
	if len(segments) == 0 {
		return "", nil
	}
	return strings.Join(segments, sep) + sep, nil
}
