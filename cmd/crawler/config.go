package main

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-crawler/internal/config"
)

var flagForce bool

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Manage the dungeon config",
}

var configShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Print the default dungeon config",
	Run: func(_ *cobra.Command, _ []string) {
		os.Stdout.Write(config.DefaultDungeonYAML())
	},
}

var configInitCmd = &cobra.Command{
	Use:   "init",
	Short: "Write the default config to ~/.crawler/configs/dungeon.yaml",
	Long: `Write the default dungeon config where the crawler looks for it,
so it can be edited. An existing file is kept unless --force is given.`,
	RunE: runConfigInit,
}

func init() {
	configInitCmd.Flags().BoolVar(&flagForce, "force", false, "Overwrite an existing config")
	configCmd.AddCommand(configShowCmd)
	configCmd.AddCommand(configInitCmd)
	rootCmd.AddCommand(configCmd)
}

func runConfigInit(_ *cobra.Command, _ []string) error {
	path := config.UserPath("configs", "dungeon.yaml")
	if path == "" {
		return errors.New("no home directory")
	}

	if _, err := os.Stat(path); err == nil && !flagForce {
		return fmt.Errorf("%s already exists (use --force to overwrite)", path)
	} else if err != nil && !errors.Is(err, fs.ErrNotExist) {
		return err
	}

	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}
	if err := os.WriteFile(path, config.DefaultDungeonYAML(), 0o644); err != nil {
		return err
	}
	fmt.Println("Wrote", path)
	return nil
}
