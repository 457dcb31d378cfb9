package dungeon

import "github.com/vovakirdan/tui-crawler/internal/games/dungeon/physics"

// Knife is the player's thrown weapon. Only one is ever in flight.
type Knife struct {
	Body   *physics.Body
	Active bool

	clear bool // has left the thrower's body and may be caught
	t     knifeTuning
}

func newKnife(t knifeTuning) *Knife {
	b := physics.NewBody(physics.Vec{}, t.length, t.thickness)
	b.Enabled = false
	b.Bounce = true
	return &Knife{Body: b, t: t}
}

// Throw launches the knife from origin toward target. It returns false when
// the knife is already in flight. When target is on top of origin the knife
// flies the way the thrower faces. Spawning inside a wall falls back to the
// thrower's position.
func (k *Knife) Throw(origin, target physics.Vec, facing Facing, walls *physics.TileMap) bool {
	if k.Active {
		return false
	}

	u := physics.UnitVector(origin, target)
	if u.IsZero() {
		u = facing.Vector()
	}

	switch facing {
	case FaceUp, FaceDown:
		k.Body.SetSize(k.t.thickness, k.t.length)
	default:
		k.Body.SetSize(k.t.length, k.t.thickness)
	}

	k.Body.Pos = origin.Add(u.Scale(k.t.offset))
	if walls != nil && walls.BoxHitsSolid(k.Body.Bounds()) {
		k.Body.Pos = origin
	}
	k.Body.Vel = u.Scale(k.t.speed)
	k.Body.Enabled = true
	k.Active = true
	k.clear = false
	return true
}

// Disable takes the knife out of play so it can be thrown again.
func (k *Knife) Disable() {
	k.Active = false
	k.Body.Enabled = false
	k.Body.Stop()
}

// Bounced turns the knife's body to match its new heading after a wall hit.
func (k *Knife) Bounced() {
	if k.Vertical() {
		k.Body.SetSize(k.t.thickness, k.t.length)
	} else {
		k.Body.SetSize(k.t.length, k.t.thickness)
	}
}

// Vertical reports whether the knife travels mostly up or down.
func (k *Knife) Vertical() bool {
	v := k.Body.Vel
	return v.Y*v.Y > v.X*v.X
}

// Damage returns the damage the knife deals.
func (k *Knife) Damage() int {
	return k.t.damage
}

// fireballNudge moves a new fireball one pixel off the wizard's center.
const fireballNudge = 1.0 / 16

// Fireball is a wizard's projectile.
type Fireball struct {
	Body   *physics.Body
	Active bool
	Trail  *Emitter
}

func newFireball(size float64) *Fireball {
	b := physics.NewBody(physics.Vec{}, size, size)
	b.Enabled = false
	return &Fireball{Body: b}
}

// Launch fires the fireball from origin toward target at speed.
func (f *Fireball) Launch(origin, target physics.Vec, speed float64) {
	u := physics.UnitVector(origin, target)
	f.Body.Pos = origin.Add(u.Scale(fireballNudge))
	f.Body.Vel = u.Scale(speed)
	f.Body.Enabled = true
	f.Active = true
}

// Disable takes the fireball out of play so the pool can reuse it.
func (f *Fireball) Disable() {
	f.Active = false
	f.Body.Enabled = false
	f.Body.Stop()
	f.Trail = nil
}
