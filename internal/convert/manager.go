package convert

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"
	"sync/atomic"
	"time"

	"itlexport/internal/audio"
	"itlexport/internal/config"
	ioutils "itlexport/internal/io"
	"itlexport/internal/library"
	"itlexport/internal/model"
	"itlexport/internal/output"
	"itlexport/internal/resolve"
)

// ProgressLevel indicates the severity/type of a progress message.
type ProgressLevel int

const (
	LevelInfo ProgressLevel = iota
	LevelVerbose
	LevelWarning
	LevelError
	LevelSuccess
)

// ProgressEvent represents a conversion progress update.
type ProgressEvent struct {
	Message string
	Level   ProgressLevel
}

// Manager coordinates the conversion of a library export into playlist
// files. It is single-use: create one per run.
type Manager struct {
	settings *config.Settings
	resolver *resolve.Resolver
	tags     *audio.TagChecker

	processed int32
	total     int32

	onProgress func(ProgressEvent)
	now        func() time.Time
}

// NewManager creates a new conversion Manager.
func NewManager(settings *config.Settings, onProgress func(ProgressEvent)) *Manager {
	m := &Manager{
		settings:   settings,
		onProgress: onProgress,
		now:        time.Now,
	}
	if settings.MusicDir != "" {
		m.resolver = resolve.New(settings.MusicDir, settings.FuzzyContains)
	}
	if settings.VerifyTags {
		m.tags = audio.NewTagChecker()
	}
	return m
}

// GetProgress returns how many playlists have been handled so far and
// how many the run covers in total.
func (m *Manager) GetProgress() (processed, total int32) {
	return atomic.LoadInt32(&m.processed), atomic.LoadInt32(&m.total)
}

// Convert runs the whole conversion: parse the export, walk its
// playlists and write one output file per real playlist, plus the run
// reports. The returned summary is populated even on partial progress.
func (m *Manager) Convert(ctx context.Context) (*model.RunSummary, error) {
	summary := model.NewRunSummary()

	m.progress(ProgressEvent{Message: fmt.Sprintf("Parsing library: %s", m.settings.LibraryPath), Level: LevelInfo})

	doc, err := library.ParseFile(m.settings.LibraryPath)
	if err != nil {
		return summary, err
	}
	m.progress(ProgressEvent{Message: fmt.Sprintf("Found %d tracks", doc.TrackCount()), Level: LevelVerbose})

	playlists := make([]*model.Playlist, 0, len(doc.Playlists()))
	for _, d := range doc.Playlists() {
		playlists = append(playlists, model.NewPlaylist(d))
	}
	folders := model.NewFolderTable(playlists)

	if err := ioutils.EnsureDir(m.settings.PlaylistDir); err != nil {
		return summary, err
	}

	for _, pl := range playlists {
		if !pl.Folder && !m.settings.IsIgnored(pl.Name) {
			summary.TotalPlaylists++
		}
	}
	atomic.StoreInt32(&m.total, int32(summary.TotalPlaylists))
	m.progress(ProgressEvent{Message: fmt.Sprintf("Converting %d playlists", summary.TotalPlaylists), Level: LevelInfo})

	for _, pl := range playlists {
		select {
		case <-ctx.Done():
			return summary, ctx.Err()
		default:
		}

		if pl.Folder {
			m.progress(ProgressEvent{Message: fmt.Sprintf("Skipping folder: %s", pl.Name), Level: LevelVerbose})
			continue
		}
		if m.settings.IsIgnored(pl.Name) {
			m.progress(ProgressEvent{Message: fmt.Sprintf("Skipping ignored playlist: %s", pl.Name), Level: LevelVerbose})
			continue
		}

		result, err := m.convertPlaylist(doc, folders, pl, summary)
		if err != nil {
			return summary, err
		}

		atomic.AddInt32(&m.processed, 1)

		if result.SkippedExisting {
			summary.SkippedPlaylists++
			continue
		}
		summary.WrittenPlaylists++
		if !result.Complete {
			summary.IncompletePlaylists = append(summary.IncompletePlaylists, pl.Name)
		}
	}

	if err := m.writeReports(summary); err != nil {
		return summary, err
	}

	return summary, nil
}

// convertPlaylist resolves one playlist's members and writes its output
// file. Folder hierarchy problems are fatal: a dangling or cyclic parent
// reference means the export itself is broken.
func (m *Manager) convertPlaylist(doc *library.Document, folders model.FolderTable, pl *model.Playlist, summary *model.RunSummary) (*model.ConversionResult, error) {
	result := model.NewConversionResult(pl.Name)

	folderSegs, err := folders.Segments(pl.ParentID)
	if err != nil {
		return nil, err
	}

	dirSegs := append([]string{m.settings.PlaylistDir}, folderSegs...)
	if m.settings.OutputFormat == "xml" {
		result.OutputPath = filepath.Join(append(dirSegs, pl.Name, "playlist.xml")...)
	} else {
		result.OutputPath = filepath.Join(append(dirSegs, pl.Name+".m3u")...)
	}

	if ioutils.Exists(result.OutputPath) {
		m.progress(ProgressEvent{Message: fmt.Sprintf("Skipping existing: %s", result.OutputPath), Level: LevelVerbose})
		result.SkippedExisting = true
		return result, nil
	}

	for _, id := range pl.TrackIDs {
		dict, ok := doc.LookupTrack(id)
		if !ok {
			m.progress(ProgressEvent{Message: fmt.Sprintf("Track %d referenced by %s is not in the library", id, pl.Name), Level: LevelWarning})
			result.Complete = false
			continue
		}

		track := model.NewTrack(dict)
		if !track.HasExtension() {
			// Not a miss: streams and other unmapped kinds have no on-disk
			// file to find, so the track is omitted without penalty.
			m.progress(ProgressEvent{Message: fmt.Sprintf("Unsupported kind %q for %s, skipping", track.Kind, track.Name), Level: LevelWarning})
			continue
		}

		expected := ioutils.ContentPath(m.settings.MusicDir, m.settings.Separator(), track.PathSegments())
		summary.TracksReferenced[expected] = struct{}{}

		path, miss, err := m.resolveTrack(track, expected)
		if err != nil {
			return nil, err
		}
		if miss {
			m.progress(ProgressEvent{Message: fmt.Sprintf("File not found: %s", expected), Level: LevelWarning})
			result.RecordMiss(expected)
			summary.TracksNotFound[expected] = struct{}{}
		}
		if path != "" {
			result.Written = append(result.Written, path)
		}
	}

	if err := m.writePlaylist(pl, result); err != nil {
		return nil, err
	}

	return result, nil
}

// resolveTrack turns an expected track location into the content path to
// write. With no music directory the expected path is taken on faith
// (remapped under the container prefix when one is configured). An
// unresolved file is a miss under every policy; "error" additionally
// aborts the run and "none" still emits the expected path so the
// playlist stays intact.
func (m *Manager) resolveTrack(track *model.Track, expected string) (path string, miss bool, err error) {
	if m.resolver == nil {
		return ioutils.ContentPath(m.contentRoot(), m.settings.Separator(), track.PathSegments()), false, nil
	}

	segments, err := m.resolver.Resolve(track.PathSegments())
	if err != nil {
		if !errors.Is(err, resolve.ErrNotFound) {
			return "", false, err
		}
		switch m.settings.MissPolicy {
		case "error":
			return "", false, &TrackNotFoundError{Path: expected}
		case "none":
			return ioutils.ContentPath(m.contentRoot(), m.settings.Separator(), track.PathSegments()), true, nil
		default:
			return "", true, nil
		}
	}

	onDisk := filepath.Join(append([]string{m.settings.MusicDir}, segments...)...)
	if m.tags != nil && !m.tags.Check(onDisk, track.Name, track.Artist) {
		m.progress(ProgressEvent{Message: fmt.Sprintf("Tag mismatch for %s, keeping match anyway", onDisk), Level: LevelWarning})
	}

	return ioutils.ContentPath(m.contentRoot(), m.settings.Separator(), segments), false, nil
}

// contentRoot is the prefix written into playlist content: the container
// directory when mapping paths for another host, the music directory
// otherwise.
func (m *Manager) contentRoot() string {
	if m.settings.ContainerDir != "" {
		return m.settings.ContainerDir
	}
	return m.settings.MusicDir
}

// writePlaylist renders and writes the playlist file plus, when anything
// was missed, a sibling .missing file listing the unresolved paths.
func (m *Manager) writePlaylist(pl *model.Playlist, result *model.ConversionResult) error {
	if err := ioutils.EnsureDir(filepath.Dir(result.OutputPath)); err != nil {
		return err
	}

	var content, missingPath string
	if m.settings.OutputFormat == "xml" {
		content = output.RenderXML(pl.Name, result.Written, m.now())
		missingPath = filepath.Join(filepath.Dir(result.OutputPath), "playlist.missing")
	} else {
		content = output.RenderM3U(result.Written)
		missingPath = result.OutputPath + ".missing"
	}

	if err := ioutils.WriteFile(result.OutputPath, []byte(content)); err != nil {
		return err
	}

	if len(result.Missing) > 0 {
		if err := ioutils.WriteFile(missingPath, []byte(output.RenderPathSet(result.Missing))); err != nil {
			return err
		}
	}

	m.progress(ProgressEvent{Message: fmt.Sprintf("Wrote %s (%d tracks)", result.OutputPath, len(result.Written)), Level: LevelSuccess})
	return nil
}

// writeReports writes the run-level reports into the playlist root:
// the names of incomplete playlists and the union of unresolved paths.
// Nothing is written when a report would be empty.
func (m *Manager) writeReports(summary *model.RunSummary) error {
	if len(summary.IncompletePlaylists) > 0 {
		path := filepath.Join(m.settings.PlaylistDir, "00incomplete_playlists.txt")
		if err := ioutils.WriteFile(path, []byte(output.RenderNames(summary.IncompletePlaylists))); err != nil {
			return err
		}
		m.progress(ProgressEvent{Message: fmt.Sprintf("Wrote %s", path), Level: LevelInfo})
	}

	if len(summary.TracksNotFound) > 0 {
		path := filepath.Join(m.settings.PlaylistDir, "00tracks_not_found.m3u")
		if err := ioutils.WriteFile(path, []byte(output.RenderPathSet(summary.TracksNotFound))); err != nil {
			return err
		}
		m.progress(ProgressEvent{Message: fmt.Sprintf("Wrote %s", path), Level: LevelInfo})
	}

	return nil
}

func (m *Manager) progress(event ProgressEvent) {
	if m.onProgress != nil {
		m.onProgress(event)
	}
}
