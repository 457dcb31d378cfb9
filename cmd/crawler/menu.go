package main

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-crawler/internal/platform/tui"
	"github.com/vovakirdan/tui-crawler/internal/registry"
)

var menuCmd = &cobra.Command{
	Use:   "menu",
	Short: "Start the crawler with a dungeon picker menu",
	Long: `Start the crawler in interactive menu mode.

Use arrow keys or j/k to navigate, Enter to select a dungeon.
After a run ends, go back to the menu with Esc.

Controls:
  Up/Down/j/k  - Navigate menu
  Enter        - Select dungeon
  Tab          - Scoreboard
  Q            - Quit

Examples:
  crawler menu
  crawler menu --fps 30
  crawler menu --difficulty easy`,
	Run: runMenu,
}

func init() {
	menuCmd.Flags().StringVar(&flagConfig, "config", "", "Path to custom dungeon config YAML")
	menuCmd.Flags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard, fixed")
}

func runMenu(_ *cobra.Command, _ []string) {
	holdTicks, err := applyDungeonFlags()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	cfg := runtimeConfig(holdTicks)
	store := openStore()

	// Menu loop
	for {
		menuResult, err := tui.RunMenu(store, cfg)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			break
		}

		// Update config with any size changes
		cfg = menuResult.Config

		if menuResult.Quit {
			break
		}

		if menuResult.WantsScoreboard {
			goBack, sbErr := tui.RunScoreboard(store, cfg.ScreenW, cfg.ScreenH)
			if sbErr != nil {
				fmt.Fprintf(os.Stderr, "Error: %v\n", sbErr)
			}
			if goBack {
				continue
			}
			break
		}

		if menuResult.GameID == "" {
			break
		}

		game, err := registry.Create(menuResult.GameID)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error creating dungeon: %v\n", err)
			continue
		}

		// Fresh seed for each run unless pinned
		if flagSeed == 0 {
			cfg.Seed = time.Now().UnixNano()
		}

		if err := tui.Run(game, store, cfg); err != nil {
			fmt.Fprintf(os.Stderr, "Error running game: %v\n", err)
		}
	}

	if store != nil {
		store.Close()
	}
}
