// crawler is a top-down dungeon crawler played in the terminal.
//
// Usage:
//
//	crawler list                  - List available dungeons
//	crawler play <dungeon>        - Play a dungeon
//	crawler menu                  - Pick dungeons interactively
//	crawler serve                 - Start SSH server for remote play
//	crawler scores <dungeon>      - Show high scores and recent runs
//	crawler maps validate <file>  - Check a map file
//
// Global flags:
//
//	--fps <rate>    - Set tick rate (default: 60)
//	--seed <value>  - Set RNG seed for reproducible gameplay
//	--db <path>     - Set database path (default: ~/.crawler/scores.db)
//	--log <path>    - Write logs to a file (default: ~/.crawler/crawler.log)
package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-crawler/internal/config"
	"github.com/vovakirdan/tui-crawler/internal/core"
	"github.com/vovakirdan/tui-crawler/internal/games/dungeon"
	"github.com/vovakirdan/tui-crawler/internal/games/dungeon/level"
	"github.com/vovakirdan/tui-crawler/internal/storage"
)

var (
	// Global flags
	flagFPS     int
	flagSeed    int64
	flagDBPath  string
	flagLogPath string

	logFile *os.File
)

func main() {
	err := rootCmd.Execute()
	closeLog()
	if err != nil {
		// Failed map checks have already been reported line by line.
		if !errors.Is(err, errMapsInvalid) {
			fmt.Fprintln(os.Stderr, err)
		}
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "crawler",
	Short: "Crawler - explore dungeons in your terminal",
	Long: `Crawler is a top-down dungeon crawler for the terminal.
Walk the rooms, open chests, throw your knife and get out alive.

Available commands:
  list     - Show all available dungeons
  play     - Play a specific dungeon directly
  menu     - Interactive dungeon picker
  serve    - Start SSH server for remote play
  scores   - View high scores and recent runs
  maps     - Work with map files

Examples:
  crawler list
  crawler play crypt
  crawler menu
  crawler serve --ssh :2222
  crawler scores crypt`,
	SilenceUsage:      true,
	SilenceErrors:     true,
	PersistentPreRunE: setup,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", storage.DefaultPath, "Path to scores database")
	rootCmd.PersistentFlags().StringVar(&flagLogPath, "log", "", "Log file (default ~/.crawler/crawler.log, serve logs to stderr)")

	// Add subcommands
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(menuCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(mapsCmd)
}

// setup installs the logger and registers user maps before any command runs.
func setup(cmd *cobra.Command, _ []string) error {
	if flagFPS <= 0 {
		return fmt.Errorf("--fps must be positive, got %d", flagFPS)
	}

	path := flagLogPath
	if path == "" && cmd.Name() != "serve" {
		path = config.UserPath("crawler.log")
	}
	if path != "" {
		// The TUI owns the terminal, so logs go to a file or nowhere.
		log.SetOutput(io.Discard)
		if f, err := openLogFile(path); err == nil {
			logFile = f
			log.SetDefault(log.NewWithOptions(f, log.Options{
				ReportTimestamp: true,
				Prefix:          "crawler",
			}))
		}
	}

	loadUserMaps(config.UserPath("maps"))
	return nil
}

func closeLog() {
	if logFile != nil {
		logFile.Close()
		logFile = nil
	}
}

func openLogFile(path string) (*os.File, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, err
	}
	return os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
}

// loadUserMaps registers every valid map under dir.
// Invalid maps and maps reusing a built-in ID are skipped with a warning.
func loadUserMaps(dir string) {
	if dir == "" {
		return
	}
	levels, skipped, err := level.NewLoader(dir).LoadAll()
	if err != nil {
		log.Warn("could not load user maps", "dir", dir, "error", err)
		return
	}
	for _, fe := range skipped {
		log.Warn("skipping invalid map", "path", fe.Path, "error", fe.Err)
	}
	for _, lvl := range levels {
		if !dungeon.Register(lvl) {
			log.Warn("skipping map with duplicate id", "id", lvl.ID)
		}
	}
}

// runtimeConfig builds the runtime config from the terminal and global flags.
func runtimeConfig(holdTicks int) core.RuntimeConfig {
	cfg := core.DefaultConfig()
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		cfg.ScreenW = w
		cfg.ScreenH = h
	}

	cfg.TickRate = flagFPS
	cfg.Seed = flagSeed
	if holdTicks > 0 {
		cfg.HoldTicks = holdTicks
	}
	return cfg
}

// openStore opens the scores database. Games still run without one.
func openStore() *storage.Store {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open scores database: %v\n", err)
		log.Warn("could not open scores database", "path", flagDBPath, "error", err)
		return nil
	}
	return store
}
