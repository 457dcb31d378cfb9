package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// AppDir is the per-user directory holding configs, maps, scores and logs.
const AppDir = ".crawler"

// LoadDungeon loads the dungeon configuration.
// Search order: customPath -> ~/.crawler/configs/dungeon.yaml -> ./configs/dungeon.yaml -> embedded default
func LoadDungeon(customPath string) (DungeonConfig, error) {
	// Missing keys keep their default values.
	cfg := DefaultDungeonConfig()

	// Try custom path first
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return cfg, fmt.Errorf("failed to read config %s: %w", customPath, err)
		}
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return cfg, fmt.Errorf("failed to parse config %s: %w", customPath, err)
		}
		return cfg, nil
	}

	// Try user config directory
	if userCfgPath := UserPath("configs", "dungeon.yaml"); userCfgPath != "" {
		if data, err := os.ReadFile(userCfgPath); err == nil {
			if err := yaml.Unmarshal(data, &cfg); err == nil {
				return cfg, nil
			}
			cfg = DefaultDungeonConfig()
		}
	}

	// Try local configs directory
	if data, err := os.ReadFile("configs/dungeon.yaml"); err == nil {
		if err := yaml.Unmarshal(data, &cfg); err == nil {
			return cfg, nil
		}
		cfg = DefaultDungeonConfig()
	}

	// Use embedded default YAML
	if err := yaml.Unmarshal(defaultDungeonYAML, &cfg); err != nil {
		return DefaultDungeonConfig(), nil // Fallback to hardcoded if embed fails
	}
	return cfg, nil
}

// UserPath joins elem under ~/.crawler, or returns empty if home is unavailable.
func UserPath(elem ...string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(append([]string{home, AppDir}, elem...)...)
}

// ApplyDungeonPreset modifies the config based on a difficulty preset.
func ApplyDungeonPreset(cfg *DungeonConfig, preset DifficultyPreset) {
	cfg.Difficulty.Enabled = PresetScales(preset)
	if preset != DifficultyFixed {
		cfg.Difficulty.InitialLevel = InitialLevelForPreset(preset)
	}

	// Adjust gameplay based on difficulty
	switch preset {
	case DifficultyEasy:
		cfg.Player.Health = 10
		cfg.Chest.MaxCoins += 50
	case DifficultyHard:
		cfg.Player.Health = 4
		cfg.Lizard.Speed *= 1.5
		cfg.Wizard.Speed *= 1.5
		cfg.Boss.Speed *= 1.25
		cfg.Fireball.CooldownMs *= 0.75
	}
}
