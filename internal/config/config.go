// Package config provides YAML-based game configuration loading and
// difficulty management for the dungeon crawler.
package config

// DungeonConfig contains all tunables of the dungeon game.
// Distances are in pixels (TileSize pixels per map tile) and durations in
// milliseconds, so values read the same as the sprite sheet they came from.
type DungeonConfig struct {
	World      DungeonWorld     `yaml:"world"`
	Player     DungeonPlayer    `yaml:"player"`
	Knife      DungeonKnife     `yaml:"knife"`
	Enemies    DungeonEnemies   `yaml:"enemies"`
	Lizard     EnemyStats       `yaml:"lizard"`
	Wizard     EnemyStats       `yaml:"wizard"`
	Boss       EnemyStats       `yaml:"boss"`
	Fireball   DungeonFireball  `yaml:"fireball"`
	Chest      DungeonChest     `yaml:"chest"`
	Particles  DungeonParticles `yaml:"particles"`
	Difficulty DifficultyConfig `yaml:"difficulty"`
}

// DungeonWorld defines map and camera parameters.
type DungeonWorld struct {
	TileSize     float64 `yaml:"tile_size"`
	CameraPanMs  float64 `yaml:"camera_pan_ms"`
	HoldTicks    int     `yaml:"hold_ticks"` // ticks a key press counts as held
	DeathDelayMs float64 `yaml:"death_delay_ms"`
}

// DungeonPlayer defines player parameters.
type DungeonPlayer struct {
	Health    int     `yaml:"health"` // half hearts
	Speed     float64 `yaml:"speed"`
	DamagedMs float64 `yaml:"damaged_ms"`
	Knockback float64 `yaml:"knockback"`
	DeadZone  float64 `yaml:"dead_zone"`
	Width     float64 `yaml:"width"`
	Height    float64 `yaml:"height"`
}

// DungeonKnife defines the thrown weapon.
type DungeonKnife struct {
	Speed     float64 `yaml:"speed"`
	Offset    float64 `yaml:"offset"`
	Length    float64 `yaml:"length"`
	Thickness float64 `yaml:"thickness"`
	Damage    int     `yaml:"damage"`
}

// DungeonEnemies defines behaviour shared by every enemy kind.
type DungeonEnemies struct {
	DirectionMs    float64 `yaml:"direction_ms"`
	SightTolerance float64 `yaml:"sight_tolerance"`
	DyingMs        float64 `yaml:"dying_ms"`
	ContactDamage  int     `yaml:"contact_damage"`
}

// EnemyStats defines one enemy kind.
type EnemyStats struct {
	Hitpoints int     `yaml:"hitpoints"`
	Speed     float64 `yaml:"speed"`
	DamagedMs float64 `yaml:"damaged_ms"`
	Knockback float64 `yaml:"knockback"`
	Scale     float64 `yaml:"scale"`
	Size      float64 `yaml:"size"` // body side at scale 1
}

// DungeonFireball defines the wizard's projectile.
type DungeonFireball struct {
	Speed      float64 `yaml:"speed"`
	Size       float64 `yaml:"size"`
	CooldownMs float64 `yaml:"cooldown_ms"`
	Damage     int     `yaml:"damage"`
}

// DungeonChest defines treasure chests.
type DungeonChest struct {
	MinCoins int `yaml:"min_coins"`
	MaxCoins int `yaml:"max_coins"`
}

// DungeonParticles defines the sparkle effects around fireballs.
type DungeonParticles struct {
	Burst      int     `yaml:"burst"`
	LifespanMs float64 `yaml:"lifespan_ms"`
	TrailMs    float64 `yaml:"trail_ms"` // emitter lifetime after an explosion
	Speed      float64 `yaml:"speed"`
}

// DifficultyConfig defines the difficulty progression system.
type DifficultyConfig struct {
	Enabled      bool              `yaml:"enabled"`
	InitialLevel float64           `yaml:"initial_level"` // 0.0 = easy, 1.0 = hard
	Progression  ProgressionConfig `yaml:"progression"`
	Scaling      ScalingConfig     `yaml:"scaling"`
}

// ProgressionConfig defines how difficulty increases over a run.
type ProgressionConfig struct {
	Type  string `yaml:"type"`   // "score", "time", or "none"
	MaxAt int    `yaml:"max_at"` // Score/ticks at which max difficulty is reached
}

// ScalingConfig defines the magnitude of difficulty changes.
type ScalingConfig struct {
	SpeedMultiplier    float64 `yaml:"speed_multiplier"`    // Added to enemy speed at max difficulty
	CooldownReduction  float64 `yaml:"cooldown_reduction"`  // Fraction of fireball cooldown removed at max difficulty
	KnockbackReduction float64 `yaml:"knockback_reduction"` // Fraction of player knockback removed at max difficulty
}

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
	DifficultyFixed  DifficultyPreset = "fixed"
)

// ParsePreset converts a CLI string into a preset. Unknown values map to normal.
func ParsePreset(s string) DifficultyPreset {
	switch DifficultyPreset(s) {
	case DifficultyEasy, DifficultyHard, DifficultyFixed:
		return DifficultyPreset(s)
	default:
		return DifficultyNormal
	}
}

// InitialLevelForPreset returns the initial_level for a difficulty preset.
func InitialLevelForPreset(preset DifficultyPreset) float64 {
	switch preset {
	case DifficultyEasy:
		return 0.0
	case DifficultyHard:
		return 0.7
	default:
		return 0.0
	}
}

// PresetScales reports whether the preset turns on difficulty progression.
// Normal and fixed play at the base tuning.
func PresetScales(preset DifficultyPreset) bool {
	return preset == DifficultyEasy || preset == DifficultyHard
}
