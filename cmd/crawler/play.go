package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-crawler/internal/config"
	"github.com/vovakirdan/tui-crawler/internal/games/dungeon"
	"github.com/vovakirdan/tui-crawler/internal/games/dungeon/level"
	"github.com/vovakirdan/tui-crawler/internal/platform/tui"
	"github.com/vovakirdan/tui-crawler/internal/registry"
)

var (
	flagConfig     string
	flagDifficulty string
	flagMapFile    string
)

var playCmd = &cobra.Command{
	Use:   "play [dungeon]",
	Short: "Play a dungeon",
	Long: `Enter the specified dungeon.

Controls:
  Arrows/WASD  - Move
  Mouse        - Aim (hover) and walk to a spot (click)
  Space        - Open chest or door, otherwise throw the knife
  P            - Pause
  R            - Restart (after game over)
  Esc/B        - Back to menu (paused or after game over)
  Q/Ctrl+C     - Quit

Difficulty options:
  easy   - More health, richer chests, slow start
  normal - Default tuning
  hard   - Less health, faster enemies
  fixed  - No progression, stays at config's initial level

Examples:
  crawler play crypt
  crawler play crypt --difficulty hard
  crawler play crypt --config ./my-dungeon.yaml
  crawler play --map ./maps/cellar.yaml`,
	Args: cobra.MaximumNArgs(1),
	Run:  runPlay,
}

func init() {
	playCmd.Flags().StringVar(&flagConfig, "config", "", "Path to custom dungeon config YAML")
	playCmd.Flags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard, fixed")
	playCmd.Flags().StringVar(&flagMapFile, "map", "", "Play a map file instead of an installed dungeon")
}

func runPlay(_ *cobra.Command, args []string) {
	gameID := ""
	if len(args) == 1 {
		gameID = args[0]
	}

	if flagMapFile != "" {
		id, err := registerMapFile(flagMapFile)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		if gameID == "" {
			gameID = id
		}
	}

	if gameID == "" {
		fmt.Fprintln(os.Stderr, "Error: name a dungeon or pass --map")
		os.Exit(1)
	}

	// Check if dungeon exists
	if !registry.Exists(gameID) {
		fmt.Fprintf(os.Stderr, "Error: unknown dungeon %q\n", gameID)
		fmt.Fprintln(os.Stderr, "Run 'crawler list' to see available dungeons.")
		os.Exit(1)
	}

	holdTicks, err := applyDungeonFlags()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	cfg := runtimeConfig(holdTicks)

	game, err := registry.Create(gameID)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating dungeon: %v\n", err)
		os.Exit(1)
	}

	store := openStore()
	runErr := tui.Run(game, store, cfg)

	// Close store before potential exit
	if store != nil {
		store.Close()
	}

	if runErr != nil {
		fmt.Fprintf(os.Stderr, "Error running game: %v\n", runErr)
		os.Exit(1)
	}
}

// applyDungeonFlags hands --config and --difficulty to the dungeon package
// and returns the configured key hold length.
func applyDungeonFlags() (int, error) {
	cfg, err := config.LoadDungeon(flagConfig)
	if err != nil {
		return 0, err
	}
	dungeon.SetConfigPath(flagConfig)
	dungeon.SetDifficultyPreset(flagDifficulty)
	return cfg.World.HoldTicks, nil
}

// registerMapFile loads and registers a map file, returning its ID.
func registerMapFile(path string) (string, error) {
	lvl, err := level.LoadFile(path)
	if err != nil {
		return "", err
	}
	if !dungeon.Register(lvl) {
		return "", fmt.Errorf("map id %q is already taken", lvl.ID)
	}
	return lvl.ID, nil
}

