package dungeon

import (
	"math"

	"github.com/vovakirdan/tui-crawler/internal/core"
	"github.com/vovakirdan/tui-crawler/internal/events"
	"github.com/vovakirdan/tui-crawler/internal/games/dungeon/physics"
)

// HealthState is the player's damage state machine.
type HealthState int

const (
	HealthIdle HealthState = iota
	HealthDamage
	HealthDead
)

func (s HealthState) String() string {
	switch s {
	case HealthIdle:
		return "idle"
	case HealthDamage:
		return "damage"
	case HealthDead:
		return "dead"
	default:
		return "unknown"
	}
}

// Direction is the 8-way compass direction the player is moving in.
type Direction int

const (
	DirNorth Direction = iota
	DirNorthEast
	DirEast
	DirSouthEast
	DirSouth
	DirSouthWest
	DirWest
	DirNorthWest
	DirNone
)

// Facing is the way the player sprite looks.
type Facing int

const (
	FaceDown Facing = iota
	FaceUp
	FaceLeft
	FaceRight
)

// Vector returns the unit vector pointing where the sprite faces.
func (f Facing) Vector() physics.Vec {
	switch f {
	case FaceUp:
		return physics.V(0, -1)
	case FaceLeft:
		return physics.V(-1, 0)
	case FaceRight:
		return physics.V(1, 0)
	default:
		return physics.V(0, 1)
	}
}

// Player is the hero: movement, health, coins and what it is touching.
type Player struct {
	Body        *physics.Body
	Health      int // half hearts
	Coins       int
	State       HealthState
	Direction   Direction
	Facing      Facing
	AimTarget   physics.Vec
	MoveTarget  *physics.Vec
	ActiveChest *Chest
	ActiveDoor  *Door
	Tinted      bool

	sinceDamaged float64
	t            playerTuning
	bus          *events.Bus
}

func newPlayer(pos physics.Vec, t playerTuning, bus *events.Bus) *Player {
	return &Player{
		Body:      physics.NewBody(pos, t.w, t.h),
		Health:    t.health,
		State:     HealthIdle,
		Direction: DirNone,
		Facing:    FaceDown,
		AimTarget: pos.Add(physics.V(0, t.aimStep)),
		t:         t,
		bus:       bus,
	}
}

// Pos returns the player's center.
func (p *Player) Pos() physics.Vec {
	return p.Body.Pos
}

// Dead reports whether health has run out.
func (p *Player) Dead() bool {
	return p.Health <= 0
}

// PreUpdate advances the damage timer.
func (p *Player) PreUpdate(dt float64) {
	switch p.State {
	case HealthDamage:
		p.sinceDamaged += dt
		if p.sinceDamaged > p.t.damagedMs {
			p.State = HealthIdle
			p.Tinted = false
			p.sinceDamaged = 0
		}
	case HealthDead:
		p.Tinted = false
		p.sinceDamaged = 0
	}
}

// Update handles the interact key and movement for one tick.
func (p *Player) Update(in core.InputFrame, throw func()) {
	if p.Dead() {
		return
	}

	if in.Has(core.ActionInteract) {
		switch {
		case p.ActiveChest != nil && !p.ActiveChest.IsOpen():
			p.Coins += p.ActiveChest.Open()
			p.bus.Publish(PlayerCoinsChanged{Coins: p.Coins})
		case p.ActiveDoor != nil && !p.ActiveDoor.IsOpen():
			p.bus.Publish(DoorOpened{Door: p.ActiveDoor})
		default:
			throw()
		}
	}

	if p.State == HealthDamage || p.State == HealthDead {
		return
	}

	// Keys override pointer navigation
	if in.AnyDirectionDown() {
		p.MoveTarget = nil
	}
	p.Direction = p.resolveDirection(in)
	p.face()

	if p.MoveTarget == nil {
		p.moveWithKeys()
	} else {
		p.moveWithTarget()
	}
}

// MoveTo starts walking toward a world point.
func (p *Player) MoveTo(target physics.Vec) {
	p.MoveTarget = &target
	p.idle()
}

// AimAt points knife throws at a world point.
func (p *Player) AimAt(target physics.Vec) {
	p.AimTarget = target
}

// CollideWithChest makes the chest the interaction target.
func (p *Player) CollideWithChest(c *Chest) {
	if c != p.ActiveChest {
		p.ActiveChest = c
		p.stop()
	}
}

// CollideWithDoor makes a closed door the interaction target.
func (p *Player) CollideWithDoor(d *Door) {
	if d != p.ActiveDoor && !d.IsOpen() {
		p.ActiveDoor = d
		p.stop()
	}
}

// CollideWithWeapon applies damage from something at position from.
func (p *Player) CollideWithWeapon(damage int, from physics.Vec) {
	p.handleDamage(damage, from)
	p.MoveTarget = nil
}

func (p *Player) handleDamage(damage int, from physics.Vec) {
	if p.State != HealthIdle {
		return
	}

	p.Health -= damage
	if p.Dead() {
		p.Body.Stop()
		p.State = HealthDead
	} else {
		p.Body.Vel = p.Pos().Sub(from).Normalize().Scale(p.t.knockback)
		p.Tinted = true
		p.sinceDamaged = 0
		p.State = HealthDamage
	}
	p.bus.Publish(PlayerHealthChanged{Health: p.Health})
}

// distanceToTarget returns the offset to the move target, with components
// inside the dead zone snapped to zero.
func (p *Player) distanceToTarget() physics.Vec {
	if p.MoveTarget == nil {
		return physics.Vec{}
	}
	d := p.MoveTarget.Sub(p.Pos())
	if math.Abs(d.X) < p.t.deadZone {
		d.X = 0
	}
	if math.Abs(d.Y) < p.t.deadZone {
		d.Y = 0
	}
	return d
}

func (p *Player) resolveDirection(in core.InputFrame) Direction {
	var up, down, left, right bool
	if p.MoveTarget != nil {
		d := p.distanceToTarget()
		left, right = d.X < 0, d.X > 0
		up, down = d.Y < 0, d.Y > 0
	} else {
		up = in.IsDown(core.ActionUp)
		down = in.IsDown(core.ActionDown)
		left = in.IsDown(core.ActionLeft)
		right = in.IsDown(core.ActionRight)
	}

	switch {
	case up && right:
		return DirNorthEast
	case right && down:
		return DirSouthEast
	case down && left:
		return DirSouthWest
	case left && up:
		return DirNorthWest
	case up:
		return DirNorth
	case right:
		return DirEast
	case down:
		return DirSouth
	case left:
		return DirWest
	default:
		return DirNone
	}
}

func (p *Player) face() {
	switch p.Direction {
	case DirNorthEast, DirSouthEast, DirEast:
		p.Facing = FaceRight
	case DirNorthWest, DirWest:
		p.Facing = FaceLeft
	case DirSouthWest, DirSouth:
		p.Facing = FaceDown
	case DirNorth:
		p.Facing = FaceUp
	}
}

func (p *Player) moveWithKeys() {
	s := p.t.speed
	d := p.t.speed / 2
	a := p.t.aimStep
	h := p.t.aimStep / 2

	switch p.Direction {
	case DirNorth:
		p.move(physics.V(0, -s), physics.V(0, -a))
	case DirNorthEast:
		p.move(physics.V(d, -d), physics.V(h, -h))
	case DirEast:
		p.move(physics.V(s, 0), physics.V(a, 0))
	case DirSouthEast:
		p.move(physics.V(d, d), physics.V(h, h))
	case DirSouth:
		p.move(physics.V(0, s), physics.V(0, a))
	case DirSouthWest:
		p.move(physics.V(-d, d), physics.V(-h, h))
	case DirWest:
		p.move(physics.V(-s, 0), physics.V(-a, 0))
	case DirNorthWest:
		p.move(physics.V(-d, -d), physics.V(-h, -h))
	default:
		p.idle()
	}
}

func (p *Player) moveWithTarget() {
	if p.distanceToTarget().IsZero() {
		p.MoveTarget = nil
		p.idle()
		return
	}
	u := physics.UnitVector(p.Pos(), *p.MoveTarget)
	p.Body.Vel = u.Scale(p.t.speed)
	p.ActiveChest = nil
	p.ActiveDoor = nil
}

// move sets the velocity, aims along it and drops any interaction target.
func (p *Player) move(vel, aim physics.Vec) {
	p.Body.Vel = vel
	p.ActiveChest = nil
	p.ActiveDoor = nil
	p.AimAt(p.Pos().Add(aim))
}

func (p *Player) idle() {
	p.Body.Stop()
}

func (p *Player) stop() {
	p.MoveTarget = nil
	p.idle()
}
