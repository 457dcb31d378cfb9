package dungeon

import (
	"math"
	"math/rand"

	"github.com/vovakirdan/tui-crawler/internal/games/dungeon/physics"
)

// trailEveryMs is how often a following emitter drops a spark.
const trailEveryMs = 50

// Particle is a single spark.
type Particle struct {
	Pos  physics.Vec
	Vel  physics.Vec
	Age  float64
	Life float64
}

// Emitter spawns sparks, either trailing a fireball or in one burst.
type Emitter struct {
	follow    *Fireball
	particles []Particle
	lifespan  float64
	sinceEmit float64
	removed   bool
}

func newEmitter(follow *Fireball, lifespan float64) *Emitter {
	return &Emitter{follow: follow, lifespan: lifespan}
}

// Explode releases n sparks at once from at, flying outward at speed.
// The emitter stops following its fireball.
func (e *Emitter) Explode(n int, at physics.Vec, speed float64, rng *rand.Rand) {
	e.follow = nil
	for range n {
		angle := rng.Float64() * 2 * math.Pi
		v := speed * (0.5 + rng.Float64()/2)
		e.particles = append(e.particles, Particle{
			Pos:  at,
			Vel:  physics.V(math.Cos(angle)*v, math.Sin(angle)*v),
			Life: e.lifespan,
		})
	}
}

// Update ages and moves sparks, and drops trail sparks behind the fireball.
func (e *Emitter) Update(dt float64) {
	if e.removed {
		return
	}

	if e.follow != nil && e.follow.Active {
		e.sinceEmit += dt
		for e.sinceEmit >= trailEveryMs {
			e.sinceEmit -= trailEveryMs
			e.particles = append(e.particles, Particle{Pos: e.follow.Body.Pos, Life: e.lifespan})
		}
	}

	live := e.particles[:0]
	for _, p := range e.particles {
		p.Age += dt
		if p.Age >= p.Life {
			continue
		}
		p.Pos = p.Pos.Add(p.Vel.Scale(dt / 1000))
		live = append(live, p)
	}
	e.particles = live
}

// Remove destroys the emitter and every spark it owns.
func (e *Emitter) Remove() {
	e.removed = true
	e.follow = nil
	e.particles = nil
}

// Removed reports whether Remove was called.
func (e *Emitter) Removed() bool {
	return e.removed
}

// Particles returns the live sparks.
func (e *Emitter) Particles() []Particle {
	return e.particles
}
