package config

import (
	_ "embed"
)

//go:embed defaults/dungeon.yaml
var defaultDungeonYAML []byte

// DefaultDungeonConfig returns the hardcoded dungeon configuration.
// It mirrors defaults/dungeon.yaml and is used when that cannot be parsed.
func DefaultDungeonConfig() DungeonConfig {
	return DungeonConfig{
		World: DungeonWorld{
			TileSize:     16,
			CameraPanMs:  1000,
			HoldTicks:    9,
			DeathDelayMs: 1500,
		},
		Player: DungeonPlayer{
			Health:    6,
			Speed:     100,
			DamagedMs: 250,
			Knockback: 200,
			DeadZone:  5,
			Width:     10,
			Height:    12,
		},
		Knife: DungeonKnife{
			Speed:     300,
			Offset:    15,
			Length:    12,
			Thickness: 4,
			Damage:    1,
		},
		Enemies: DungeonEnemies{
			DirectionMs:    2000,
			SightTolerance: 4,
			DyingMs:        500,
			ContactDamage:  1,
		},
		Lizard: EnemyStats{Hitpoints: 2, Speed: 50, DamagedMs: 50, Knockback: 200, Scale: 1, Size: 12},
		Wizard: EnemyStats{Hitpoints: 2, Speed: 50, DamagedMs: 250, Knockback: 200, Scale: 1, Size: 12},
		Boss:   EnemyStats{Hitpoints: 20, Speed: 100, DamagedMs: 50, Knockback: 20, Scale: 3, Size: 12},
		Fireball: DungeonFireball{
			Speed:      300,
			Size:       5,
			CooldownMs: 3000,
			Damage:     1,
		},
		Chest: DungeonChest{
			MinCoins: 50,
			MaxCoins: 200,
		},
		Particles: DungeonParticles{
			Burst:      20,
			LifespanMs: 200,
			TrailMs:    1000,
			Speed:      60,
		},
		Difficulty: DifficultyConfig{
			Enabled:      false,
			InitialLevel: 0.0,
			Progression: ProgressionConfig{
				Type:  "score",
				MaxAt: 1000,
			},
			Scaling: ScalingConfig{
				SpeedMultiplier:    0.6,
				CooldownReduction:  0.5,
				KnockbackReduction: 0.3,
			},
		},
	}
}

// DefaultDungeonYAML returns the embedded default YAML.
func DefaultDungeonYAML() []byte {
	return defaultDungeonYAML
}
