package dungeon

import (
	"math"
	"testing"

	"github.com/vovakirdan/tui-crawler/internal/config"
	"github.com/vovakirdan/tui-crawler/internal/core"
	"github.com/vovakirdan/tui-crawler/internal/events"
	"github.com/vovakirdan/tui-crawler/internal/games/dungeon/level"
	"github.com/vovakirdan/tui-crawler/internal/games/dungeon/physics"
)

func defaultTuning() tuning {
	return newTuning(config.DefaultDungeonConfig())
}

func testPlayer() (*Player, *events.Bus) {
	bus := events.NewBus()
	return newPlayer(physics.V(5, 5), defaultTuning().player, bus), bus
}

func TestPlayerDamageStateMachine(t *testing.T) {
	p, bus := testPlayer()
	var reported []int
	bus.Subscribe(TopicPlayerHealthChanged, func(e events.Event) {
		reported = append(reported, e.(PlayerHealthChanged).Health)
	})

	p.CollideWithWeapon(1, physics.V(4, 5))
	if p.State != HealthDamage || p.Health != 5 {
		t.Fatalf("after hit: state=%v health=%d", p.State, p.Health)
	}
	if !p.Tinted {
		t.Error("damaged player should be tinted")
	}
	if p.Body.Vel.X <= 0 || p.Body.Vel.Y != 0 {
		t.Errorf("knockback should push away from the weapon, got %+v", p.Body.Vel)
	}

	// Hits while damaged are ignored
	p.CollideWithWeapon(1, physics.V(4, 5))
	if p.Health != 5 {
		t.Errorf("hit during damage landed: health=%d", p.Health)
	}

	p.PreUpdate(200)
	if p.State != HealthDamage {
		t.Errorf("state after 200ms = %v, want damage", p.State)
	}
	p.PreUpdate(100)
	if p.State != HealthIdle || p.Tinted {
		t.Errorf("state after 300ms = %v tinted=%v, want idle", p.State, p.Tinted)
	}

	p.CollideWithWeapon(5, physics.V(4, 5))
	if p.State != HealthDead || !p.Dead() {
		t.Fatalf("state = %v, want dead", p.State)
	}
	if !p.Body.Vel.IsZero() {
		t.Errorf("dead player still moving: %+v", p.Body.Vel)
	}

	if len(reported) != 2 || reported[0] != 5 || reported[1] != 0 {
		t.Errorf("health events = %v, want [5 0]", reported)
	}
}

func TestPlayerDirections(t *testing.T) {
	pt := defaultTuning().player
	s, d := pt.speed, pt.speed/2

	tests := []struct {
		name   string
		keys   []core.Action
		dir    Direction
		facing Facing
		vel    physics.Vec
	}{
		{"up", []core.Action{core.ActionUp}, DirNorth, FaceUp, physics.V(0, -s)},
		{"right", []core.Action{core.ActionRight}, DirEast, FaceRight, physics.V(s, 0)},
		{"down left", []core.Action{core.ActionDown, core.ActionLeft}, DirSouthWest, FaceDown, physics.V(-d, d)},
		{"up left", []core.Action{core.ActionUp, core.ActionLeft}, DirNorthWest, FaceLeft, physics.V(-d, -d)},
		{"up right", []core.Action{core.ActionUp, core.ActionRight}, DirNorthEast, FaceRight, physics.V(d, -d)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p, _ := testPlayer()
			p.Update(hold(tt.keys...), func() {})

			if p.Direction != tt.dir {
				t.Errorf("direction = %v, want %v", p.Direction, tt.dir)
			}
			if p.Facing != tt.facing {
				t.Errorf("facing = %v, want %v", p.Facing, tt.facing)
			}
			if p.Body.Vel != tt.vel {
				t.Errorf("velocity = %+v, want %+v", p.Body.Vel, tt.vel)
			}

			aim := physics.UnitVector(p.Pos(), p.AimTarget)
			want := tt.vel.Normalize()
			if math.Abs(aim.X-want.X) > 1e-9 || math.Abs(aim.Y-want.Y) > 1e-9 {
				t.Errorf("aim direction %+v does not follow movement %+v", aim, want)
			}
		})
	}
}

func TestPlayerIdleWithoutInput(t *testing.T) {
	p, _ := testPlayer()
	p.Body.Vel = physics.V(3, 3)
	p.Update(core.NewInputFrame(), func() {})

	if p.Direction != DirNone || !p.Body.Vel.IsZero() {
		t.Errorf("direction=%v vel=%+v, want none and still", p.Direction, p.Body.Vel)
	}
	if p.Facing != FaceDown {
		t.Errorf("facing changed to %v", p.Facing)
	}
}

func TestPlayerMoveToStopsInDeadZone(t *testing.T) {
	p, _ := testPlayer()
	p.MoveTo(physics.V(8, 5))
	p.Update(core.NewInputFrame(), func() {})
	if p.Body.Vel.X <= 0 {
		t.Fatalf("not walking toward target: %+v", p.Body.Vel)
	}

	p.Body.Pos = physics.V(7.9, 5.1)
	p.Update(core.NewInputFrame(), func() {})
	if p.MoveTarget != nil {
		t.Error("target should clear inside the dead zone")
	}
	if !p.Body.Vel.IsZero() {
		t.Errorf("player should stop, vel=%+v", p.Body.Vel)
	}
}

func TestPlayerKeysCancelMoveTarget(t *testing.T) {
	p, _ := testPlayer()
	p.MoveTo(physics.V(8, 5))
	p.Update(hold(core.ActionUp), func() {})

	if p.MoveTarget != nil {
		t.Error("directional key should cancel the move target")
	}
	if p.Direction != DirNorth {
		t.Errorf("direction = %v, want north", p.Direction)
	}
}

func TestPlayerInteractPriority(t *testing.T) {
	p, bus := testPlayer()
	var coins, opened int
	bus.Subscribe(TopicPlayerCoinsChanged, func(e events.Event) {
		coins = e.(PlayerCoinsChanged).Coins
	})
	bus.Subscribe(TopicDoorOpened, func(events.Event) { opened++ })
	throws := 0
	throw := func() { throws++ }

	chest := newChest(level.Point{X: 6, Y: 5}, 75)
	door := newDoor(level.Door{Name: "d", X: 5, Y: 4, Room: "a", Destination: "b", Facing: level.FacingNorth})

	p.CollideWithChest(chest)
	p.CollideWithDoor(door)
	p.Update(press(core.ActionInteract), throw)
	if coins != 75 || p.Coins != 75 {
		t.Fatalf("coins = %d (event %d), want 75", p.Coins, coins)
	}
	if opened != 0 || throws != 0 {
		t.Errorf("chest should take priority: opened=%d throws=%d", opened, throws)
	}

	p.Update(press(core.ActionInteract), throw)
	if opened != 1 {
		t.Errorf("door-opened published %d times, want 1", opened)
	}

	door.Open()
	p.Update(press(core.ActionInteract), throw)
	if throws != 1 {
		t.Errorf("throws = %d, want 1", throws)
	}
	if p.Coins != 75 {
		t.Errorf("open chest paid out again: %d", p.Coins)
	}
}

func TestPlayerCollisionStopsAndMovementClears(t *testing.T) {
	p, _ := testPlayer()
	p.MoveTo(physics.V(9, 5))
	p.Body.Vel = physics.V(1, 0)

	chest := newChest(level.Point{X: 6, Y: 5}, 50)
	p.CollideWithChest(chest)
	if p.ActiveChest != chest || p.MoveTarget != nil || !p.Body.Vel.IsZero() {
		t.Fatalf("chest contact should stop the player: active=%v target=%v vel=%+v", p.ActiveChest, p.MoveTarget, p.Body.Vel)
	}

	p.Update(hold(core.ActionLeft), func() {})
	if p.ActiveChest != nil {
		t.Error("moving should clear the active chest")
	}

	door := newDoor(level.Door{Name: "d", X: 4, Y: 5, Facing: level.FacingWest})
	door.Open()
	p.CollideWithDoor(door)
	if p.ActiveDoor != nil {
		t.Error("an open door should not become active")
	}
}

func TestDeadPlayerIgnoresInput(t *testing.T) {
	p, _ := testPlayer()
	p.CollideWithWeapon(p.Health, physics.V(4, 5))

	throws := 0
	p.Update(press(core.ActionInteract), func() { throws++ })
	p.Update(hold(core.ActionRight), func() { throws++ })
	if throws != 0 || !p.Body.Vel.IsZero() {
		t.Errorf("dead player acted: throws=%d vel=%+v", throws, p.Body.Vel)
	}
}

func TestDamagedPlayerCannotSteer(t *testing.T) {
	p, _ := testPlayer()
	p.CollideWithWeapon(1, physics.V(5, 4))
	knock := p.Body.Vel

	p.Update(hold(core.ActionUp), func() {})
	if p.Body.Vel != knock {
		t.Errorf("velocity changed during damage: %+v, want %+v", p.Body.Vel, knock)
	}
}

func TestChestPaysOnce(t *testing.T) {
	c := newChest(level.Point{X: 1, Y: 1}, 120)
	if got := c.Open(); got != 120 {
		t.Errorf("first open = %d, want 120", got)
	}
	if got := c.Open(); got != 0 {
		t.Errorf("second open = %d, want 0", got)
	}
	if !c.IsOpen() {
		t.Error("chest should stay open")
	}
}

func TestDoorOpenIsIdempotent(t *testing.T) {
	d := newDoor(level.Door{Name: "d", X: 3, Y: 2, Facing: level.FacingEast})
	if d.IsOpen() {
		t.Fatal("doors start closed")
	}
	d.Open()
	d.Open()
	if !d.IsOpen() {
		t.Error("door should be open")
	}
	b := d.Bounds()
	if b.X != 3 || b.Y != 2 || b.W != 1 || b.H != 1 {
		t.Errorf("bounds = %+v", b)
	}
}
