package model

// ConversionResult records the outcome of converting one playlist.
type ConversionResult struct {
	// Name is the playlist's sanitized name.
	Name string

	// OutputPath is the on-disk path of the playlist file, whether it was
	// written or found already present.
	OutputPath string

	// Written holds the content paths that went into the output file, in
	// member order.
	Written []string

	// Missing is the set of expected paths that could not be located.
	// Backed by a set: iteration order is not defined.
	Missing map[string]struct{}

	// Complete is false when any member could not be located.
	Complete bool

	// SkippedExisting is true when the output file already existed and
	// the playlist was left untouched.
	SkippedExisting bool
}

// NewConversionResult returns an empty result for the named playlist.
func NewConversionResult(name string) *ConversionResult {
	return &ConversionResult{
		Name:     name,
		Missing:  make(map[string]struct{}),
		Complete: true,
	}
}

// RecordMiss adds an unresolved expected path and marks the playlist
// incomplete.
func (r *ConversionResult) RecordMiss(path string) {
	r.Missing[path] = struct{}{}
	r.Complete = false
}

// RunSummary accumulates run-wide state across the playlist loop. It is
// owned by a single Convert invocation; nothing here is process-global.
type RunSummary struct {
	// TracksReferenced is the set of unique expected paths seen across
	// all playlists, found or not.
	TracksReferenced map[string]struct{}

	// TracksNotFound is the set of unique expected paths that could not
	// be located anywhere in the run.
	TracksNotFound map[string]struct{}

	// IncompletePlaylists lists the names of playlists with at least one
	// miss, in processing order.
	IncompletePlaylists []string

	// TotalPlaylists counts the real playlists in the library: not a
	// folder and not on the ignore list.
	TotalPlaylists int

	// WrittenPlaylists counts the playlists whose output was written in
	// this run.
	WrittenPlaylists int

	// SkippedPlaylists counts the playlists skipped because their output
	// already existed.
	SkippedPlaylists int
}

// NewRunSummary returns an empty summary.
func NewRunSummary() *RunSummary {
	return &RunSummary{
		TracksReferenced: make(map[string]struct{}),
		TracksNotFound:   make(map[string]struct{}),
	}
}
