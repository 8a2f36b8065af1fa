package library

import (
	"strings"
	"testing"
)

const sampleDocument = `<?xml version="1.0" encoding="UTF-8"?>
<!DOCTYPE plist PUBLIC "-//Apple//DTD PLIST 1.0//EN" "http://www.apple.com/DTDs/PropertyList-1.0.dtd">
<plist version="1.0">
<dict>
	<key>Major Version</key><integer>1</integer>
	<key>Tracks</key>
	<dict>
		<key>1001</key>
		<dict>
			<key>Track ID</key><integer>1001</integer>
			<key>Name</key><string>First Song</string>
			<key>Artist</key><string>Someone</string>
			<key>Kind</key><string>MPEG audio file</string>
		</dict>
		<key>1002</key>
		<dict>
			<key>Track ID</key><integer>1002</integer>
			<key>Name</key><string>Second Song</string>
		</dict>
	</dict>
	<key>Playlists</key>
	<array>
		<dict>
			<key>Name</key><string>Favourites</string>
			<key>Playlist Persistent ID</key><string>ABCD</string>
			<key>Playlist Items</key>
			<array>
				<dict><key>Track ID</key><integer>1001</integer></dict>
			</array>
		</dict>
	</array>
</dict>
</plist>
`

func TestParseDocument(t *testing.T) {
	doc, err := Parse(strings.NewReader(sampleDocument))
	if err != nil {
		t.Fatalf("Parse() error = %v", err)
	}

	if got := doc.TrackCount(); got != 2 {
		t.Errorf("TrackCount() = %d, want 2", got)
	}
	if got := len(doc.Playlists()); got != 1 {
		t.Errorf("len(Playlists()) = %d, want 1", got)
	}

	track, ok := doc.LookupTrack(1001)
	if !ok {
		t.Fatal("LookupTrack(1001) not found")
	}
	if got := StringField(track, "Name"); got != "First Song" {
		t.Errorf("Name = %q", got)
	}

	if _, ok := doc.LookupTrack(9999); ok {
		t.Error("LookupTrack(9999) should not be found")
	}
}

func TestParseRejectsNonPlist(t *testing.T) {
	if _, err := Parse(strings.NewReader("<html></html>")); err == nil {
		t.Error("Parse() should fail on a non-plist document")
	}
	if _, err := Parse(strings.NewReader("")); err == nil {
		t.Error("Parse() should fail on an empty document")
	}
}

func mustDict(t *testing.T, fragment string) *Dict {
	t.Helper()
	d, err := ParseDict(strings.NewReader(fragment))
	if err != nil {
		t.Fatalf("ParseDict() error = %v", err)
	}
	return d
}

func TestDictFirstOccurrenceWins(t *testing.T) {
	d := mustDict(t, `<dict>
		<key>Name</key><string>First</string>
		<key>Name</key><string>Second</string>
	</dict>`)

	v, ok := d.Get("Name")
	if !ok || v.Str != "First" {
		t.Errorf("Get(Name) = %v, %v; want First", v, ok)
	}
	if d.Len() != 2 {
		t.Errorf("Len() = %d, want 2", d.Len())
	}
}

func TestStringFieldDefaults(t *testing.T) {
	d := mustDict(t, `<dict><key>Name</key><string> Song </string></dict>`)

	tests := []struct {
		field string
		want  string
	}{
		{"Name", "Song"},
		{"Album", "Unknown Album"},
		{"Artist", ""},
	}

	for _, tt := range tests {
		if got := StringField(d, tt.field); got != tt.want {
			t.Errorf("StringField(%q) = %q, want %q", tt.field, got, tt.want)
		}
	}
}

func TestStringFieldSanitizes(t *testing.T) {
	d := mustDict(t, `<dict>
		<key>Artist</key><string>AC/DC</string>
		<key>Name</key><string>What?</string>
	</dict>`)

	if got := StringField(d, "Artist"); got != "AC_DC" {
		t.Errorf("Artist = %q, want AC_DC", got)
	}
	if got := StringField(d, "Name"); got != "What_" {
		t.Errorf("Name = %q, want What_", got)
	}
}

func TestIntFieldAndFlags(t *testing.T) {
	d := mustDict(t, `<dict>
		<key>Track Number</key><integer>7</integer>
		<key>Compilation</key><true/>
	</dict>`)

	n, ok := IntField(d, "Track Number")
	if !ok || n != 7 {
		t.Errorf("IntField(Track Number) = %d, %v; want 7", n, ok)
	}
	if _, ok := IntField(d, "Disc Number"); ok {
		t.Error("IntField(Disc Number) should be absent")
	}
	if !d.Has("Compilation") {
		t.Error("Has(Compilation) = false, want true")
	}
}
