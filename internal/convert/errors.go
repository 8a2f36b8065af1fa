package convert

import "fmt"

// TrackNotFoundError reports a playlist entry whose audio file does not
// exist under the music directory. It is returned only under the
// "error" miss policy; the other policies downgrade misses to warnings.
type TrackNotFoundError struct {
	Path string
}

func (e *TrackNotFoundError) Error() string {
	return fmt.Sprintf("file %s not found", e.Path)
}
