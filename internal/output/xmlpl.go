package output

import (
	"strings"
	"time"

	ioutils "itlexport/internal/io"
)

// addedTimeLayout is the timestamp format the playlist descriptor's
// Added element uses: MM/DD/YYYY HH:MM:SS.
const addedTimeLayout = "01/02/2006 15:04:05"

// RenderXML renders a Jellyfin-style playlist descriptor.
//
// The document is deliberately minimal: RunningTime, Genres and
// OwnerUserID are omitted because a library rescan repopulates them, and
// the rescan is brief when the music has been scanned before.
//
// Structure (pretty-printed, two-space indent):
//
//	<?xml version="1.0" encoding="utf-8" standalone="yes"?>
//	<Item>
//	  <Added>06/15/2023 10:30:00</Added>
//	  <LockData>false</LockData>
//	  <LocalTitle>Cardio</LocalTitle>
//	  <PlaylistItems>
//	    <PlaylistItem>
//	      <Path>/music/Artist/Album/01 Song.mp3</Path>
//	    </PlaylistItem>
//	  </PlaylistItems>
//	  <Shares/>
//	  <PlaylistMediaType>Audio</PlaylistMediaType>
//	</Item>
func RenderXML(title string, paths []string, added time.Time) string {
	var sb strings.Builder

	sb.WriteString("<?xml version=\"1.0\" encoding=\"utf-8\" standalone=\"yes\"?>\n")
	sb.WriteString("<Item>\n")
	sb.WriteString("  <Added>" + added.UTC().Format(addedTimeLayout) + "</Added>\n")
	sb.WriteString("  <LockData>false</LockData>\n")
	sb.WriteString("  <LocalTitle>" + ioutils.EscapeXML(title) + "</LocalTitle>\n")

	if len(paths) == 0 {
		sb.WriteString("  <PlaylistItems/>\n")
	} else {
		sb.WriteString("  <PlaylistItems>\n")
		for _, p := range paths {
			sb.WriteString("    <PlaylistItem>\n")
			sb.WriteString("      <Path>" + ioutils.EscapeXML(p) + "</Path>\n")
			sb.WriteString("    </PlaylistItem>\n")
		}
		sb.WriteString("  </PlaylistItems>\n")
	}

	sb.WriteString("  <Shares/>\n")
	sb.WriteString("  <PlaylistMediaType>Audio</PlaylistMediaType>\n")
	sb.WriteString("</Item>\n")

	return sb.String()
}
