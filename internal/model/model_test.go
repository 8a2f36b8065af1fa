package model

import (
	"errors"
	"strings"
	"testing"

	"itlexport/internal/library"
)

func mustDict(t *testing.T, fragment string) *library.Dict {
	t.Helper()
	d, err := library.ParseDict(strings.NewReader(fragment))
	if err != nil {
		t.Fatalf("ParseDict() error = %v", err)
	}
	return d
}

func TestFileExtensions(t *testing.T) {
	tests := []struct {
		kind string
		want string
	}{
		{"MPEG audio file", ".mp3"},
		{"MPEG-4 video file", ".m4a"},
		{"MPEG-4 audio file", ".mp4"},
		{"Purchased MPEG-4 video file", ".m4v"},
		{"AAC audio file", ".m4a"},
		{"AIFF audio file", ".aif"},
		{"WAV audio file", ".wav"},
	}

	for _, tt := range tests {
		if got := FileExtensions[tt.kind]; got != tt.want {
			t.Errorf("FileExtensions[%q] = %q, want %q", tt.kind, got, tt.want)
		}
	}

	if _, ok := FileExtensions["Internet audio stream"]; ok {
		t.Error("streams must not map to an extension")
	}
}

func TestNewTrackArtistDir(t *testing.T) {
	tests := []struct {
		name     string
		fragment string
		want     string
	}{
		{
			"compilation wins",
			`<dict>
				<key>Compilation</key><true/>
				<key>Album Artist</key><string>Someone</string>
				<key>Artist</key><string>Else</string>
			</dict>`,
			"Compilations",
		},
		{
			"album artist",
			`<dict>
				<key>Album Artist</key><string>The Band</string>
				<key>Artist</key><string>The Band feat. Guest</string>
			</dict>`,
			"The Band",
		},
		{
			"various artists quirk",
			`<dict><key>Album Artist</key><string>Various Artists</string></dict>`,
			"VARIOUS ARTISTS",
		},
		{
			"sort album artist fallback",
			`<dict><key>Sort Album Artist</key><string>Band, The</string></dict>`,
			"Band, The",
		},
		{
			"track artist fallback",
			`<dict><key>Artist</key><string>Solo Act</string></dict>`,
			"Solo Act",
		},
		{
			"unknown artist",
			`<dict><key>Name</key><string>Mystery</string></dict>`,
			"Unknown Artist",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			track := NewTrack(mustDict(t, tt.fragment))
			if track.ArtistDir != tt.want {
				t.Errorf("ArtistDir = %q, want %q", track.ArtistDir, tt.want)
			}
		})
	}
}

func TestNewTrackPrefix(t *testing.T) {
	tests := []struct {
		name     string
		fragment string
		want     string
	}{
		{
			"single digit padded",
			`<dict><key>Track Number</key><integer>3</integer></dict>`,
			"03 ",
		},
		{
			"two digits unpadded",
			`<dict><key>Track Number</key><integer>12</integer></dict>`,
			"12 ",
		},
		{
			"multi disc",
			`<dict>
				<key>Disc Count</key><integer>2</integer>
				<key>Disc Number</key><integer>1</integer>
				<key>Track Number</key><integer>4</integer>
			</dict>`,
			"1-04 ",
		},
		{
			"single disc has no disc prefix",
			`<dict>
				<key>Disc Count</key><integer>1</integer>
				<key>Disc Number</key><integer>1</integer>
				<key>Track Number</key><integer>4</integer>
			</dict>`,
			"04 ",
		},
		{
			"disc count without disc number",
			`<dict>
				<key>Disc Count</key><integer>2</integer>
				<key>Track Number</key><integer>4</integer>
			</dict>`,
			"04 ",
		},
		{
			"no numbering",
			`<dict><key>Name</key><string>Untitled</string></dict>`,
			"",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			track := NewTrack(mustDict(t, tt.fragment))
			if track.TrackPrefix != tt.want {
				t.Errorf("TrackPrefix = %q, want %q", track.TrackPrefix, tt.want)
			}
		})
	}
}

func TestTrackPathSegments(t *testing.T) {
	track := NewTrack(mustDict(t, `<dict>
		<key>Name</key><string>Run Fast</string>
		<key>Artist</key><string>Jane Shepard</string>
		<key>Album</key><string>Greatest Hits</string>
		<key>Kind</key><string>MPEG audio file</string>
		<key>Track Number</key><integer>3</integer>
	</dict>`))

	if !track.HasExtension() {
		t.Fatal("HasExtension() = false")
	}
	if got := track.FileName(); got != "03 Run Fast.mp3" {
		t.Errorf("FileName() = %q", got)
	}

	want := []string{"Jane Shepard", "Greatest Hits", "03 Run Fast.mp3"}
	got := track.PathSegments()
	if len(got) != len(want) {
		t.Fatalf("PathSegments() = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("PathSegments()[%d] = %q, want %q", i, got[i], want[i])
		}
	}
}

func TestTrackUnknownKind(t *testing.T) {
	track := NewTrack(mustDict(t, `<dict>
		<key>Name</key><string>Stream</string>
		<key>Kind</key><string>Internet audio stream</string>
	</dict>`))
	if track.HasExtension() {
		t.Error("HasExtension() = true for unmapped kind")
	}
}

func TestNewPlaylist(t *testing.T) {
	p := NewPlaylist(mustDict(t, `<dict>
		<key>Name</key><string>Cardio</string>
		<key>Playlist Persistent ID</key><string>P001</string>
		<key>Parent Persistent ID</key><string>F001</string>
		<key>Playlist Items</key>
		<array>
			<dict><key>Track ID</key><integer>101</integer></dict>
			<dict><key>Track ID</key><integer>102</integer></dict>
		</array>
	</dict>`))

	if p.Name != "Cardio" || p.ID != "P001" || p.ParentID != "F001" {
		t.Errorf("Playlist = %+v", p)
	}
	if p.Folder {
		t.Error("Folder = true, want false")
	}
	if len(p.TrackIDs) != 2 || p.TrackIDs[0] != 101 || p.TrackIDs[1] != 102 {
		t.Errorf("TrackIDs = %v", p.TrackIDs)
	}
}

func TestNewPlaylistFolder(t *testing.T) {
	p := NewPlaylist(mustDict(t, `<dict>
		<key>Name</key><string>Workouts</string>
		<key>Playlist Persistent ID</key><string>F001</string>
		<key>Folder</key><true/>
	</dict>`))
	if !p.Folder {
		t.Error("Folder = false, want true")
	}
}

func folderFixture() FolderTable {
	return NewFolderTable([]*Playlist{
		{Name: "Genres", ID: "F001", Folder: true},
		{Name: "Rock", ID: "F002", ParentID: "F001", Folder: true},
		{Name: "Not A Folder", ID: "P001"},
	})
}

func TestFolderTablePath(t *testing.T) {
	folders := folderFixture()

	tests := []struct {
		name     string
		parentID string
		want     string
	}{
		{"top level", "", ""},
		{"one deep", "F001", "Genres/"},
		{"nested", "F002", "Genres/Rock/"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := folders.Path(tt.parentID, "/")
			if err != nil {
				t.Fatalf("Path() error = %v", err)
			}
			if got != tt.want {
				t.Errorf("Path(%q) = %q, want %q", tt.parentID, got, tt.want)
			}
		})
	}
}

func TestFolderTableMissingParent(t *testing.T) {
	folders := folderFixture()

	_, err := folders.Segments("F999")
	var missing *MissingFolderError
	if !errors.As(err, &missing) {
		t.Fatalf("Segments() error = %v, want MissingFolderError", err)
	}
	if missing.ParentID != "F999" {
		t.Errorf("ParentID = %q", missing.ParentID)
	}

	// Non-folder playlists never enter the table.
	if _, err := folders.Segments("P001"); err == nil {
		t.Error("Segments() over a non-folder ID should fail")
	}
}

func TestFolderTableCycle(t *testing.T) {
	folders := NewFolderTable([]*Playlist{
		{Name: "A", ID: "F001", ParentID: "F002", Folder: true},
		{Name: "B", ID: "F002", ParentID: "F001", Folder: true},
	})

	_, err := folders.Segments("F001")
	var cycle *FolderCycleError
	if !errors.As(err, &cycle) {
		t.Fatalf("Segments() error = %v, want FolderCycleError", err)
	}
}

func TestConversionResult(t *testing.T) {
	r := NewConversionResult("Cardio")
	if !r.Complete {
		t.Error("new result should start complete")
	}
	r.RecordMiss("/music/a.mp3")
	r.RecordMiss("/music/a.mp3")
	if r.Complete {
		t.Error("result with misses should not be complete")
	}
	if len(r.Missing) != 1 {
		t.Errorf("Missing has %d entries, want 1", len(r.Missing))
	}
}
