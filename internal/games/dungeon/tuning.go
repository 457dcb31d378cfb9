package dungeon

import "github.com/vovakirdan/tui-crawler/internal/config"

// tuning is the config converted to world units: distances in tiles,
// speeds in tiles per second, durations in milliseconds.
type tuning struct {
	cameraPanMs  float64
	deathDelayMs float64
	player       playerTuning
	knife        knifeTuning
	lizard       enemyTuning
	wizard       enemyTuning
	boss         enemyTuning
	fireball     fireballTuning
	directionMs  float64
	sight        float64
	dyingMs      float64
	contact      int
	minCoins     int
	maxCoins     int
	burst        int
	lifespanMs   float64
	trailMs      float64
	sparkSpeed   float64
}

type playerTuning struct {
	health    int
	speed     float64
	damagedMs float64
	knockback float64
	deadZone  float64
	aimStep   float64
	w, h      float64
}

type knifeTuning struct {
	speed     float64
	offset    float64
	length    float64
	thickness float64
	damage    int
}

type enemyTuning struct {
	hitpoints int
	speed     float64
	damagedMs float64
	knockback float64
	size      float64
}

type fireballTuning struct {
	speed      float64
	size       float64
	cooldownMs float64
	damage     int
}

func newTuning(cfg config.DungeonConfig) tuning {
	tile := cfg.World.TileSize
	if tile <= 0 {
		tile = 16
	}
	px := func(v float64) float64 { return v / tile }

	enemy := func(s config.EnemyStats) enemyTuning {
		scale := s.Scale
		if scale <= 0 {
			scale = 1
		}
		return enemyTuning{
			hitpoints: max(1, s.Hitpoints),
			speed:     px(s.Speed),
			damagedMs: s.DamagedMs,
			knockback: px(s.Knockback),
			size:      px(s.Size * scale),
		}
	}

	return tuning{
		cameraPanMs:  cfg.World.CameraPanMs,
		deathDelayMs: cfg.World.DeathDelayMs,
		player: playerTuning{
			health:    max(1, cfg.Player.Health),
			speed:     px(cfg.Player.Speed),
			damagedMs: cfg.Player.DamagedMs,
			knockback: px(cfg.Player.Knockback),
			deadZone:  px(cfg.Player.DeadZone),
			aimStep:   px(10),
			w:         px(cfg.Player.Width),
			h:         px(cfg.Player.Height),
		},
		knife: knifeTuning{
			speed:     px(cfg.Knife.Speed),
			offset:    px(cfg.Knife.Offset),
			length:    px(cfg.Knife.Length),
			thickness: px(cfg.Knife.Thickness),
			damage:    cfg.Knife.Damage,
		},
		lizard: enemy(cfg.Lizard),
		wizard: enemy(cfg.Wizard),
		boss:   enemy(cfg.Boss),
		fireball: fireballTuning{
			speed:      px(cfg.Fireball.Speed),
			size:       px(cfg.Fireball.Size),
			cooldownMs: cfg.Fireball.CooldownMs,
			damage:     cfg.Fireball.Damage,
		},
		directionMs: cfg.Enemies.DirectionMs,
		sight:       px(cfg.Enemies.SightTolerance),
		dyingMs:     cfg.Enemies.DyingMs,
		contact:     cfg.Enemies.ContactDamage,
		minCoins:    cfg.Chest.MinCoins,
		maxCoins:    max(cfg.Chest.MinCoins, cfg.Chest.MaxCoins),
		burst:       cfg.Particles.Burst,
		lifespanMs:  cfg.Particles.LifespanMs,
		trailMs:     cfg.Particles.TrailMs,
		sparkSpeed:  px(cfg.Particles.Speed),
	}
}
