package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
)

// Settings holds all configuration options.
type Settings struct {
	// Input
	LibraryPath string `json:"library_path"`

	// Path mapping
	MusicDir     string `json:"music_dir"`
	ContainerDir string `json:"container_dir"`
	WindowsPaths bool   `json:"windows_paths"`

	// Output
	PlaylistDir  string `json:"playlist_dir"`
	OutputFormat string `json:"output_format"` // m3u, xml

	// Reconciliation
	MissPolicy    string `json:"miss_policy"` // warn, error, none
	FuzzyContains bool   `json:"fuzzy_contains"`
	VerifyTags    bool   `json:"verify_tags"`

	// Playlists excluded from conversion
	IgnoredPlaylists []string `json:"ignored_playlists"`
}

// DefaultSettings returns settings with default values.
func DefaultSettings() *Settings {
	return &Settings{
		LibraryPath:   "Library.xml",
		PlaylistDir:   "Playlists",
		OutputFormat:  "xml",
		MissPolicy:    "warn",
		FuzzyContains: true,
		IgnoredPlaylists: []string{
			"Library",
			"Downloaded",
			"Music",
			"Recently Added",
		},
	}
}

// Load reads settings from a JSON file. A missing file yields defaults.
func Load(path string) (*Settings, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return DefaultSettings(), nil
		}
		return nil, err
	}

	settings := DefaultSettings()
	if err := json.Unmarshal(data, settings); err != nil {
		return nil, err
	}

	return settings, nil
}

// Save writes settings to a JSON file.
func (s *Settings) Save(path string) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return err
	}

	data, err := json.MarshalIndent(s, "", "  ")
	if err != nil {
		return err
	}

	return os.WriteFile(path, data, 0644)
}

// Separator returns the path separator used inside generated playlist
// content. It governs the text written into playlists only; files on
// disk are always addressed with the host separator.
func (s *Settings) Separator() string {
	if s.WindowsPaths {
		return "\\"
	}
	return "/"
}

// Validate checks enumerated fields.
func (s *Settings) Validate() error {
	switch s.OutputFormat {
	case "m3u", "xml":
	default:
		return fmt.Errorf("unknown output format %q (want m3u or xml)", s.OutputFormat)
	}

	switch s.MissPolicy {
	case "warn", "error", "none":
	default:
		return fmt.Errorf("unknown miss policy %q (want warn, error or none)", s.MissPolicy)
	}

	if s.LibraryPath == "" {
		return fmt.Errorf("library path is required")
	}

	return nil
}

// Normalize adjusts settings that only make sense in combination.
// Without a music directory there is nothing to check files against,
// so the miss policy drops to "none".
func (s *Settings) Normalize() {
	if s.MusicDir == "" {
		s.MissPolicy = "none"
	}
}

// IsIgnored reports whether a playlist name is on the ignore list.
func (s *Settings) IsIgnored(name string) bool {
	for _, ignored := range s.IgnoredPlaylists {
		if name == ignored {
			return true
		}
	}
	return false
}
