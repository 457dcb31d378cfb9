package dungeon

import (
	"math/rand"

	"github.com/vovakirdan/tui-crawler/internal/games/dungeon/physics"
)

// EnemyKind identifies an enemy variant.
type EnemyKind int

const (
	KindLizard EnemyKind = iota
	KindWizard
	KindBoss
)

func (k EnemyKind) String() string {
	switch k {
	case KindLizard:
		return "lizard"
	case KindWizard:
		return "wizard"
	case KindBoss:
		return "big zombie"
	default:
		return "unknown"
	}
}

// Heading is an enemy's cardinal walking direction.
type Heading int

const (
	HeadUp Heading = iota
	HeadDown
	HeadLeft
	HeadRight
	HeadNone
)

// Vector returns the unit vector for the heading.
func (h Heading) Vector() physics.Vec {
	switch h {
	case HeadUp:
		return physics.V(0, -1)
	case HeadDown:
		return physics.V(0, 1)
	case HeadLeft:
		return physics.V(-1, 0)
	case HeadRight:
		return physics.V(1, 0)
	default:
		return physics.Vec{}
	}
}

// EnemyState is an enemy's damage state machine.
type EnemyState int

const (
	EnemyIdle EnemyState = iota
	EnemyDamage
	EnemyDying
	EnemyGone
)

// Enemy is a wandering monster. All variants share this type; Kind selects
// the stats and whether it throws fireballs.
type Enemy struct {
	Kind      EnemyKind
	Body      *physics.Body
	Hitpoints int
	Heading   Heading
	State     EnemyState
	Tinted    bool
	OnCamera  bool

	damageVector physics.Vec
	sinceDamaged float64
	dyingFor     float64
	cooldown     *Timer
	moveEvent    *Timer
	rng          *rand.Rand
	stats        enemyTuning
}

func newEnemy(kind EnemyKind, pos physics.Vec, stats enemyTuning, rng *rand.Rand) *Enemy {
	e := &Enemy{
		Kind:      kind,
		Body:      physics.NewBody(pos, stats.size, stats.size),
		Hitpoints: stats.hitpoints,
		State:     EnemyIdle,
		rng:       rng,
		stats:     stats,
	}
	e.ChangeDirection()
	return e
}

// wander starts the periodic direction change. Wizards keep still while
// firing; the others only wander while on camera.
func (e *Enemy) wander(clock *Clock, every float64) {
	e.moveEvent = clock.Every(every, func() {
		if e.Kind == KindWizard {
			if !e.Firing() {
				e.ChangeDirection()
			}
			return
		}
		if e.OnCamera {
			e.ChangeDirection()
		}
	})
}

// Pos returns the enemy's center.
func (e *Enemy) Pos() physics.Vec {
	return e.Body.Pos
}

// Alive reports whether the enemy still takes part in collisions.
func (e *Enemy) Alive() bool {
	return e.State == EnemyIdle || e.State == EnemyDamage
}

// Gone reports whether the enemy has finished dying.
func (e *Enemy) Gone() bool {
	return e.State == EnemyGone
}

// Firing reports whether a wizard is waiting out its fireball cooldown.
func (e *Enemy) Firing() bool {
	return e.cooldown.Active()
}

// ChangeDirection picks a random cardinal heading.
func (e *Enemy) ChangeDirection() {
	e.Heading = Heading(e.rng.Intn(4))
}

// HandleDamage applies a hit from a weapon at from. Hits only land while the
// enemy is idle. It reports whether the hit killed the enemy.
func (e *Enemy) HandleDamage(from physics.Vec, damage int) bool {
	if e.State != EnemyIdle {
		return false
	}

	e.Hitpoints -= damage
	if e.Hitpoints <= 0 {
		e.State = EnemyDying
		e.dyingFor = 0
		e.Tinted = false
		e.Body.Enabled = false
		e.Body.Stop()
		e.moveEvent.Stop()
		return true
	}

	e.damageVector = e.Pos().Sub(from).Normalize().Scale(e.stats.knockback)
	e.Tinted = true
	e.sinceDamaged = 0
	e.State = EnemyDamage
	return false
}

// PreUpdate advances timers and sets the velocity for this tick.
// Off-camera enemies hold still.
func (e *Enemy) PreUpdate(dt float64, speed float64, dyingMs float64) {
	if e.State == EnemyDying {
		e.dyingFor += dt
		if e.dyingFor >= dyingMs {
			e.State = EnemyGone
		}
		return
	}
	if e.State == EnemyGone {
		return
	}

	if !e.OnCamera {
		e.Body.Stop()
		return
	}

	if e.State == EnemyDamage {
		e.sinceDamaged += dt
		if e.sinceDamaged > e.stats.damagedMs {
			e.State = EnemyIdle
			e.Tinted = false
			e.sinceDamaged = 0
			e.damageVector = physics.Vec{}
		}
	}

	e.Body.Vel = e.Heading.Vector().Scale(speed).Add(e.damageVector)
}

// Fade returns how far the death fade has progressed, from 0 to 1.
func (e *Enemy) Fade(dyingMs float64) float64 {
	switch e.State {
	case EnemyDying:
		if dyingMs <= 0 {
			return 1
		}
		return min(1, e.dyingFor/dyingMs)
	case EnemyGone:
		return 1
	default:
		return 0
	}
}

// CanSeePlayer reports whether the player lines up with the enemy on either
// axis, within tolerance, with no wall in between.
func (e *Enemy) CanSeePlayer(target physics.Vec, tolerance float64, walls *physics.TileMap) bool {
	d := target.Sub(e.Pos())
	aligned := d.X*d.X <= tolerance*tolerance || d.Y*d.Y <= tolerance*tolerance
	return aligned && walls.LineClear(e.Pos(), target)
}

// startFiring stops the wizard and blocks further shots for cooldown ms.
func (e *Enemy) startFiring(clock *Clock, cooldown float64) {
	e.Heading = HeadNone
	e.cooldown = clock.After(cooldown, func() {})
}
