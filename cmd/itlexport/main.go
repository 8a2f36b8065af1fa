package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"sort"
	"syscall"

	"github.com/charmbracelet/lipgloss"

	"itlexport/internal/config"
	"itlexport/internal/convert"
	"itlexport/internal/model"
)

var (
	errorStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("#FF6B6B"))
	warningStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#FFE66D"))
	successStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#95E1A3"))
	infoStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("#A8DADC"))
	dimStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("#6C757D"))
)

func main() {
	var (
		libraryFlag   = flag.String("library", "", "Path to the Library.xml export")
		musicDirFlag  = flag.String("music-dir", "", "Music directory to check files against")
		containerFlag = flag.String("container-dir", "", "Path prefix to write into playlists instead of the music directory")
		playlistFlag  = flag.String("playlist-dir", "", "Output directory for playlist files")
		formatFlag    = flag.String("format", "", "Output format: m3u or xml")
		checkFlag     = flag.String("check", "", "What to do about files not found: warn, error or none")
		windowsFlag   = flag.Bool("windows", false, "Write Windows path separators in playlist content")
		containsFlag  = flag.Bool("contains", true, "Allow substring matches when searching the music directory")
		verifyFlag    = flag.Bool("verify-tags", false, "Verify ID3 tags of fuzzily matched mp3 files")
		configFlag    = flag.String("config", "", "Path to config file")
		extMapFlag    = flag.Bool("ext-map", false, "Print the supported track kinds and exit")
		debugFlag     = flag.Bool("debug", false, "Print raw errors instead of hints")
		verboseFlag   = flag.Bool("verbose", false, "Show verbose output")
	)

	flag.Parse()

	if *extMapFlag {
		printExtensionMap()
		return
	}

	settings := config.DefaultSettings()
	if *configFlag != "" {
		var err error
		settings, err = config.Load(*configFlag)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
			os.Exit(1)
		}
	}

	// Apply flags
	if *libraryFlag != "" {
		settings.LibraryPath = *libraryFlag
	}
	if flag.NArg() > 0 {
		settings.LibraryPath = flag.Arg(0)
	}
	if *musicDirFlag != "" {
		settings.MusicDir = *musicDirFlag
	}
	if *containerFlag != "" {
		settings.ContainerDir = *containerFlag
	}
	if *playlistFlag != "" {
		settings.PlaylistDir = *playlistFlag
	}
	if *formatFlag != "" {
		settings.OutputFormat = *formatFlag
	}
	if *checkFlag != "" {
		settings.MissPolicy = *checkFlag
	}
	if *windowsFlag {
		settings.WindowsPaths = true
	}
	if *verifyFlag {
		settings.VerifyTags = true
	}
	settings.FuzzyContains = *containsFlag

	if err := settings.Validate(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	if settings.MusicDir == "" && settings.MissPolicy != "none" {
		fmt.Println(warningStyle.Render("! No music directory given, file checking disabled"))
	}
	settings.Normalize()

	// Handle interrupts
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, os.Interrupt, syscall.SIGTERM)
	go func() {
		<-sigCh
		fmt.Println("\nInterrupted, cancelling...")
		cancel()
	}()

	manager := convert.NewManager(settings, func(event convert.ProgressEvent) {
		if event.Level == convert.LevelVerbose && !*verboseFlag {
			return
		}

		switch event.Level {
		case convert.LevelError:
			fmt.Println(errorStyle.Render("x " + event.Message))
		case convert.LevelWarning:
			fmt.Println(warningStyle.Render("! " + event.Message))
		case convert.LevelSuccess:
			fmt.Println(successStyle.Render("+ " + event.Message))
		case convert.LevelInfo:
			fmt.Println(infoStyle.Render("> " + event.Message))
		default:
			fmt.Println(dimStyle.Render("  " + event.Message))
		}
	})

	summary, err := manager.Convert(ctx)
	if err != nil {
		if ctx.Err() != nil {
			fmt.Println("\nConversion cancelled.")
			os.Exit(130)
		}
		fail(err, *debugFlag)
	}

	fmt.Println()
	fmt.Printf("Tracks not found: %d / %d\n", len(summary.TracksNotFound), len(summary.TracksReferenced))
	fmt.Printf("Playlists incomplete: %d / %d\n", len(summary.IncompletePlaylists), summary.TotalPlaylists)
	if summary.SkippedPlaylists > 0 {
		fmt.Printf("Playlists skipped (already present): %d\n", summary.SkippedPlaylists)
	}
	fmt.Println(successStyle.Render("Conversion complete!"))
}

// fail prints err with remediation hints and exits. Debug mode prints
// the raw error only.
func fail(err error, debug bool) {
	fmt.Fprintln(os.Stderr, errorStyle.Render(fmt.Sprintf("Error: %v", err)))

	if debug {
		os.Exit(2)
	}

	var (
		notFound      *convert.TrackNotFoundError
		missingFolder *model.MissingFolderError
		folderCycle   *model.FolderCycleError
	)
	switch {
	case errors.As(err, &notFound):
		fmt.Fprintln(os.Stderr)
		fmt.Fprintln(os.Stderr, "A playlist references a file that does not exist under the music")
		fmt.Fprintln(os.Stderr, "directory. Check that the directory layout matches the library's")
		fmt.Fprintln(os.Stderr, "Artist/Album structure (-ext-map shows the supported track kinds),")
		fmt.Fprintln(os.Stderr, "or relax checking with -check warn or -check none.")
		os.Exit(2)

	case errors.As(err, &missingFolder), errors.As(err, &folderCycle):
		fmt.Fprintln(os.Stderr)
		fmt.Fprintln(os.Stderr, "The library's playlist folder hierarchy is inconsistent. Re-export")
		fmt.Fprintln(os.Stderr, "the library; a partial or hand-edited export cannot be converted.")
		os.Exit(2)

	case os.IsNotExist(err):
		fmt.Fprintln(os.Stderr)
		fmt.Fprintln(os.Stderr, "A required file or directory does not exist. Check the -library")
		fmt.Fprintln(os.Stderr, "and -music-dir paths.")
		os.Exit(2)

	case os.IsPermission(err):
		fmt.Fprintln(os.Stderr)
		fmt.Fprintln(os.Stderr, "Permission denied. Directory modes on the way to the output:")
		describeDirModes(os.Stderr)
		os.Exit(2)
	}

	os.Exit(1)
}

// describeDirModes prints the mode of the working directory and its
// parents, the usual culprits when playlist writes fail.
func describeDirModes(w *os.File) {
	dir, err := os.Getwd()
	if err != nil {
		return
	}
	for {
		info, err := os.Stat(dir)
		if err == nil {
			fmt.Fprintf(w, "  %s  %s\n", info.Mode(), dir)
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			return
		}
		dir = parent
	}
}

// printExtensionMap lists the track kinds that map to a file extension.
func printExtensionMap() {
	kinds := make([]string, 0, len(model.FileExtensions))
	for kind := range model.FileExtensions {
		kinds = append(kinds, kind)
	}
	sort.Strings(kinds)

	fmt.Println("Supported track kinds:")
	for _, kind := range kinds {
		fmt.Printf("  %-28s -> %6s\n", kind, model.FileExtensions[kind])
	}
}
