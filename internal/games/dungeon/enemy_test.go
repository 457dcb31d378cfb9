package dungeon

import (
	"math/rand"
	"testing"

	"github.com/vovakirdan/tui-crawler/internal/games/dungeon/physics"
)

func testEnemy(kind EnemyKind) *Enemy {
	tn := defaultTuning()
	stats := tn.lizard
	switch kind {
	case KindWizard:
		stats = tn.wizard
	case KindBoss:
		stats = tn.boss
	}
	e := newEnemy(kind, physics.V(5, 5), stats, rand.New(rand.NewSource(1)))
	e.OnCamera = true
	return e
}

func TestEnemyDamageAndKnockback(t *testing.T) {
	e := testEnemy(KindLizard)
	e.Heading = HeadNone

	if killed := e.HandleDamage(physics.V(5, 6), 1); killed {
		t.Fatal("lizard has 2 hitpoints")
	}
	if e.State != EnemyDamage || !e.Tinted || e.Hitpoints != 1 {
		t.Fatalf("state=%v tinted=%v hp=%d", e.State, e.Tinted, e.Hitpoints)
	}

	e.PreUpdate(16, e.stats.speed, 500)
	if e.Body.Vel.Y >= 0 || e.Body.Vel.X != 0 {
		t.Errorf("knockback should push up, away from the weapon: %+v", e.Body.Vel)
	}

	// Ignored while damaged
	if e.HandleDamage(physics.V(5, 6), 5) || e.Hitpoints != 1 {
		t.Errorf("hit landed during damage state: hp=%d", e.Hitpoints)
	}

	e.PreUpdate(50, e.stats.speed, 500)
	if e.State != EnemyIdle || e.Tinted {
		t.Fatalf("state=%v, want idle after damaged time", e.State)
	}
	if !e.Body.Vel.IsZero() {
		t.Errorf("knockback should end with the damage state: %+v", e.Body.Vel)
	}
}

func TestEnemyDyingFade(t *testing.T) {
	e := testEnemy(KindLizard)
	clock := NewClock()
	e.wander(clock, 2000)

	if !e.HandleDamage(physics.V(4, 5), 2) {
		t.Fatal("two damage should kill a lizard")
	}
	if e.State != EnemyDying || e.Alive() || e.Body.Enabled {
		t.Fatalf("state=%v alive=%v enabled=%v", e.State, e.Alive(), e.Body.Enabled)
	}
	if e.moveEvent.Active() {
		t.Error("dying enemy should stop wandering")
	}

	e.PreUpdate(250, 1, 500)
	if f := e.Fade(500); f != 0.5 {
		t.Errorf("fade = %v, want 0.5", f)
	}
	if e.Gone() {
		t.Error("gone too early")
	}

	e.PreUpdate(250, 1, 500)
	if !e.Gone() || e.Fade(500) != 1 {
		t.Errorf("state=%v fade=%v, want gone", e.State, e.Fade(500))
	}
}

func TestEnemyOffCameraHoldsStill(t *testing.T) {
	e := testEnemy(KindLizard)
	e.Heading = HeadRight
	e.OnCamera = false

	e.PreUpdate(16, 3, 500)
	if !e.Body.Vel.IsZero() {
		t.Errorf("off-camera enemy moving: %+v", e.Body.Vel)
	}

	e.OnCamera = true
	e.PreUpdate(16, 3, 500)
	if e.Body.Vel != physics.V(3, 0) {
		t.Errorf("vel = %+v, want (3,0)", e.Body.Vel)
	}
}

func TestEnemyWanderRules(t *testing.T) {
	clock := NewClock()

	lizard := testEnemy(KindLizard)
	lizard.OnCamera = false
	lizard.Heading = HeadNone
	lizard.wander(clock, 100)

	wizard := testEnemy(KindWizard)
	wizard.OnCamera = false
	wizard.wander(clock, 100)
	wizard.startFiring(clock, 1000)

	clock.Advance(100)
	if lizard.Heading != HeadNone {
		t.Error("off-camera lizard changed direction")
	}
	if wizard.Heading != HeadNone {
		t.Error("firing wizard changed direction")
	}

	lizard.OnCamera = true
	clock.Advance(100)
	if lizard.Heading == HeadNone {
		t.Error("on-camera lizard should pick a direction")
	}

	clock.Advance(800)
	if wizard.Firing() {
		t.Error("cooldown should have ended")
	}
	clock.Advance(100)
	if wizard.Heading == HeadNone {
		t.Error("wizard should wander once the cooldown ends")
	}
}

func TestEnemyCanSeePlayer(t *testing.T) {
	walls := physics.NewTileMap(10, 10)
	walls.SetSolid(5, 2, true)

	e := testEnemy(KindWizard)
	e.Body.Pos = physics.V(2.5, 2.5)
	tol := defaultTuning().sight

	tests := []struct {
		name   string
		target physics.Vec
		want   bool
	}{
		{"same column", physics.V(2.5, 8.5), true},
		{"within tolerance", physics.V(2.6, 8.5), true},
		{"diagonal", physics.V(6.5, 6.5), false},
		{"wall in the way", physics.V(8.5, 2.5), false},
		{"same row before wall", physics.V(4.5, 2.5), true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := e.CanSeePlayer(tt.target, tol, walls); got != tt.want {
				t.Errorf("CanSeePlayer(%v) = %v, want %v", tt.target, got, tt.want)
			}
		})
	}
}

func TestEnemyStatsByKind(t *testing.T) {
	boss := testEnemy(KindBoss)
	lizard := testEnemy(KindLizard)

	if boss.Hitpoints != 20 || lizard.Hitpoints != 2 {
		t.Errorf("hitpoints boss=%d lizard=%d", boss.Hitpoints, lizard.Hitpoints)
	}
	if boss.Body.W != 3*lizard.Body.W {
		t.Errorf("boss width %v, want three times %v", boss.Body.W, lizard.Body.W)
	}
	if KindBoss.String() != "big zombie" {
		t.Errorf("boss name %q", KindBoss.String())
	}
}
