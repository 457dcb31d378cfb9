package dungeon

import (
	"strings"
	"testing"

	"github.com/vovakirdan/tui-crawler/internal/core"
	"github.com/vovakirdan/tui-crawler/internal/events"
	"github.com/vovakirdan/tui-crawler/internal/games/dungeon/level"
	"github.com/vovakirdan/tui-crawler/internal/games/dungeon/physics"
	"github.com/vovakirdan/tui-crawler/internal/registry"
)

const baseMap = `id: test
name: Test Hall
view: {w: 8, h: 5}
spawn: west
layout: |
  ################
  #......##......#
  #..............#
  #......##......#
  ################
rooms:
  - {name: west, x: 0, y: 0, w: 8, h: 5}
  - {name: east, x: 8, y: 0, w: 8, h: 5}
doors:
  - {name: w1, x: 7, y: 2, room: west, destination: e1, facing: east}
  - {name: e1, x: 8, y: 2, room: east, destination: w1, facing: west}
`

func testRuntime() core.RuntimeConfig {
	return core.RuntimeConfig{ScreenW: 80, ScreenH: 24, TickRate: 60, Seed: 42}
}

// newTestGame builds a game on the base map plus extra object layers.
func newTestGame(t *testing.T, objects string) *Game {
	t.Helper()
	t.Setenv("HOME", t.TempDir())

	lvl, err := level.Parse([]byte(baseMap + objects))
	if err != nil {
		t.Fatalf("parse test map: %v", err)
	}
	g := New(lvl)
	g.Reset(testRuntime())
	return g
}

func hold(actions ...core.Action) core.InputFrame {
	in := core.NewInputFrame()
	for _, a := range actions {
		in.Hold(a)
	}
	return in
}

func press(actions ...core.Action) core.InputFrame {
	in := core.NewInputFrame()
	for _, a := range actions {
		in.Set(a)
	}
	return in
}

func stepN(g *Game, n int, in core.InputFrame) {
	for range n {
		g.Step(in)
	}
}

func TestBuiltinMapsRegistered(t *testing.T) {
	for _, id := range []string{"crypt", "keep"} {
		if !registry.Exists(id) {
			t.Errorf("map %q not registered", id)
		}
	}

	g, err := registry.Create("crypt")
	if err != nil {
		t.Fatalf("Create(crypt): %v", err)
	}
	if g.Title() != "The Crypt" {
		t.Errorf("Title = %q", g.Title())
	}
}

func TestRegisterSkipsDuplicates(t *testing.T) {
	lvl, err := level.BuiltinByID("crypt")
	if err != nil {
		t.Fatal(err)
	}
	if Register(lvl) {
		t.Error("registering an existing ID should be skipped")
	}
}

func TestDeterminism(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	lvl, err := level.BuiltinByID("crypt")
	if err != nil {
		t.Fatal(err)
	}

	g1 := New(lvl)
	g1.Reset(testRuntime())
	g2 := New(lvl)
	g2.Reset(testRuntime())

	for i := range 600 {
		in := core.NewInputFrame()
		switch {
		case i < 120:
			in.Hold(core.ActionRight)
		case i < 240:
			in.Hold(core.ActionDown)
		case i < 300:
			in.Hold(core.ActionLeft)
			in.Hold(core.ActionUp)
		}
		if i%45 == 0 {
			in.Set(core.ActionInteract)
		}
		g1.Step(in)
		g2.Step(in)
	}

	s1, s2 := g1.Snapshot(), g2.Snapshot()
	if s1 != s2 {
		t.Errorf("snapshots differ:\n%+v\n%+v", s1, s2)
	}
}

func TestResetStartsInSpawnRoom(t *testing.T) {
	g := newTestGame(t, "")
	s := g.Snapshot()

	if s.Room != "west" {
		t.Errorf("Room = %q, want west", s.Room)
	}
	if s.PlayerX != 4 || s.PlayerY != 2.5 {
		t.Errorf("player at (%v,%v), want room center (4,2.5)", s.PlayerX, s.PlayerY)
	}
	if s.CameraX != 4 || s.CameraY != 2.5 {
		t.Errorf("camera at (%v,%v), want (4,2.5)", s.CameraX, s.CameraY)
	}
	if s.Health != 6 {
		t.Errorf("Health = %d, want 6", s.Health)
	}
	if s.State != StatePlaying {
		t.Errorf("State = %s", s.State)
	}
}

func TestClosedDoorBlocksAndOpens(t *testing.T) {
	g := newTestGame(t, "")

	stepN(g, 40, hold(core.ActionRight))
	if x := g.player.Pos().X; x >= 7 {
		t.Fatalf("player passed closed door, x = %v", x)
	}
	if g.player.ActiveDoor == nil || g.player.ActiveDoor.Name != "w1" {
		t.Fatalf("ActiveDoor = %+v, want w1", g.player.ActiveDoor)
	}

	g.Step(press(core.ActionInteract))
	if !g.doorIndex["w1"].IsOpen() || !g.doorIndex["e1"].IsOpen() {
		t.Error("opening a door should open its destination too")
	}
	if g.knife.Active {
		t.Error("interacting with a door must not throw the knife")
	}
}

func TestRoomTransitionPansCamera(t *testing.T) {
	g := newTestGame(t, "")
	var entered []string
	g.Bus().Subscribe(TopicRoomEntered, func(e events.Event) {
		entered = append(entered, e.(RoomEntered).Room)
	})

	g.Bus().Publish(DoorOpened{Door: g.doorIndex["w1"]})
	stepN(g, 60, hold(core.ActionRight))

	if g.currentRoom != "east" {
		t.Fatalf("currentRoom = %q, want east (player x = %v)", g.currentRoom, g.player.Pos().X)
	}
	if len(entered) != 1 || entered[0] != "east" {
		t.Errorf("room-entered events = %v", entered)
	}

	stepN(g, 70, core.NewInputFrame())
	c := g.camera.Center()
	if g.camera.Panning() || c.X != 12 || c.Y != 2.5 {
		t.Errorf("camera = %+v panning=%v, want settled on (12,2.5)", c, g.camera.Panning())
	}
	if g.RunStats().RoomsVisited != 2 {
		t.Errorf("RoomsVisited = %d, want 2", g.RunStats().RoomsVisited)
	}
}

func TestDoorwayRecheckedAfterPan(t *testing.T) {
	g := newTestGame(t, "")
	var entered []string
	g.Bus().Subscribe(TopicRoomEntered, func(e events.Event) {
		entered = append(entered, e.(RoomEntered).Room)
	})
	g.Bus().Publish(DoorOpened{Door: g.doorIndex["w1"]})

	g.enterRoom("east")
	g.player.Body.Pos = physics.V(7.5, 2.5)
	g.Step(core.NewInputFrame())
	if g.currentRoom != "east" || len(entered) != 1 {
		t.Fatalf("doorway handled mid-pan: room=%q entered=%v", g.currentRoom, entered)
	}

	stepN(g, 70, core.NewInputFrame())
	if g.currentRoom != "west" || len(entered) != 2 || entered[1] != "west" {
		t.Errorf("room=%q entered=%v, want west after the pan", g.currentRoom, entered)
	}
}

func TestChestLooting(t *testing.T) {
	g := newTestGame(t, "chests:\n  - {x: 6, y: 2}\n")

	stepN(g, 30, hold(core.ActionRight))
	if g.player.ActiveChest == nil {
		t.Fatal("walking into a chest should make it active")
	}

	g.Step(press(core.ActionInteract))
	coins := g.player.Coins
	if coins < 50 || coins > 200 {
		t.Errorf("coins = %d, want within [50, 200]", coins)
	}
	if g.State().Score != coins {
		t.Errorf("Score = %d, want coins %d", g.State().Score, coins)
	}
	if g.hud.Coins == "0" {
		t.Error("HUD did not receive the coin change")
	}

	// A looted chest no longer absorbs the key: the knife flies instead.
	g.Step(press(core.ActionInteract))
	if g.player.Coins != coins {
		t.Errorf("coins changed on second open: %d", g.player.Coins)
	}
	if !g.knife.Active {
		t.Error("expected knife throw after chest was looted")
	}
}

func TestDefaultConfigKeepsBaseTuningAfterLooting(t *testing.T) {
	g := newTestGame(t, "lizards:\n  - {x: 4, y: 1}\n")
	g.player.Coins = 600

	g.Step(core.NewInputFrame())
	lizard := g.enemies[0]
	if !lizard.OnCamera {
		t.Fatal("lizard in the spawn room should be on camera")
	}
	lizard.Heading = HeadRight
	g.updateEnemies(g.runtime.TickMillis(), g.player.Coins, int(g.tick))

	tile := g.cfg.World.TileSize
	if got := lizard.Body.Vel.Len() * tile; got != 50 {
		t.Errorf("lizard speed = %v px/s, want 50", got)
	}
	if got := g.player.t.knockback * tile; got != 200 {
		t.Errorf("player knockback = %v px, want 200", got)
	}
	if got := g.difficulty.Cooldown(g.tune.fireball.cooldownMs, g.player.Coins, int(g.tick)); got != 3000 {
		t.Errorf("fireball cooldown = %v ms, want 3000", got)
	}
}

func TestWizardFireballHitsPlayer(t *testing.T) {
	g := newTestGame(t, "wizards:\n  - {x: 1, y: 2}\n")

	g.Step(core.NewInputFrame())
	wiz := g.enemies[0]
	if !wiz.Firing() || wiz.Heading != HeadNone {
		t.Fatalf("wizard should fire on sight: firing=%v heading=%v", wiz.Firing(), wiz.Heading)
	}
	if g.Snapshot().Fireballs != 1 {
		t.Fatalf("Fireballs = %d, want 1", g.Snapshot().Fireballs)
	}

	stepN(g, 20, core.NewInputFrame())
	if g.player.Health != 5 {
		t.Errorf("Health = %d, want 5 after fireball", g.player.Health)
	}
	if g.Snapshot().Fireballs != 0 {
		t.Error("fireball should be disabled after hitting the player")
	}
	if len(g.emitters) == 0 {
		t.Fatal("explosion emitter should linger")
	}

	stepN(g, 70, core.NewInputFrame())
	if len(g.emitters) != 0 {
		t.Errorf("emitters = %d, want removed after trail time", len(g.emitters))
	}
}

func TestOffCameraEnemyFrozen(t *testing.T) {
	g := newTestGame(t, "lizards:\n  - {x: 12, y: 2}\n")
	start := g.enemies[0].Pos()

	stepN(g, 120, core.NewInputFrame())
	if g.enemies[0].OnCamera {
		t.Error("enemy in the other room reported on camera")
	}
	if g.enemies[0].Pos() != start {
		t.Errorf("off-camera enemy moved from %+v to %+v", start, g.enemies[0].Pos())
	}
}

func TestKillingLastEnemyWins(t *testing.T) {
	g := newTestGame(t, "lizards:\n  - {x: 1, y: 1}\n")
	var died int
	g.Bus().Subscribe(TopicEnemyDied, func(events.Event) { died++ })

	if !g.enemies[0].HandleDamage(g.player.Pos(), 2) {
		t.Fatal("two damage should kill a lizard")
	}
	stepN(g, 10, core.NewInputFrame())
	if g.State().GameOver {
		t.Fatal("game should wait for the death fade")
	}

	stepN(g, 30, core.NewInputFrame())
	st := g.State()
	if !st.GameOver || st.Outcome != core.OutcomeWon {
		t.Errorf("state = %+v, want won", st)
	}
	if died != 1 || g.RunStats().Kills != 1 {
		t.Errorf("died=%d kills=%d, want 1", died, g.RunStats().Kills)
	}
	if g.Snapshot().State != StateWin {
		t.Errorf("Snapshot.State = %s", g.Snapshot().State)
	}
}

func TestPlayerDeathRemovesColliders(t *testing.T) {
	g := newTestGame(t, "lizards:\n  - {x: 12, y: 2}\n")

	g.Bus().Publish(EnemyHitPlayer{Damage: 6, From: g.player.Pos()})
	if !g.player.Dead() {
		t.Fatal("player should be dead")
	}
	g.Step(core.NewInputFrame())

	if g.playerColliders {
		t.Error("enemy colliders still active after death")
	}
	if n := g.Bus().Count(TopicEnemyHitPlayer); n != 0 {
		t.Errorf("enemy-hit-player handlers = %d, want 0", n)
	}
	if g.Snapshot().State != StateDying {
		t.Errorf("State = %s, want dying", g.Snapshot().State)
	}

	stepN(g, 100, core.NewInputFrame())
	st := g.State()
	if !st.GameOver || st.Outcome != core.OutcomeDead {
		t.Errorf("state = %+v, want dead game over", st)
	}

	g.Step(press(core.ActionRestart))
	if g.State().GameOver || g.player.Health != 6 {
		t.Error("restart should begin a fresh run")
	}
}

func TestPauseStopsSimulation(t *testing.T) {
	g := newTestGame(t, "")

	g.Step(press(core.ActionPause))
	if !g.State().Paused {
		t.Fatal("expected paused")
	}
	x := g.player.Pos().X
	stepN(g, 10, hold(core.ActionRight))
	if g.player.Pos().X != x {
		t.Error("player moved while paused")
	}

	g.Step(press(core.ActionPause))
	if g.State().Paused {
		t.Error("expected unpaused")
	}
}

func TestPointerClickWalks(t *testing.T) {
	g := newTestGame(t, "")

	// Cell for world point (2.25, 1.5): column 4, row 1 of the view.
	click := core.NewInputFrame()
	click.Click = &core.Pointer{X: g.offX + 4, Y: g.offY + 1}
	g.Step(click)

	if g.player.MoveTarget == nil {
		t.Fatal("click should set a move target")
	}
	if got := *g.player.MoveTarget; got.X != 2.25 || got.Y != 1.5 {
		t.Errorf("MoveTarget = %+v, want (2.25,1.5)", got)
	}

	stepN(g, 60, core.NewInputFrame())
	if g.player.MoveTarget != nil {
		t.Error("player should arrive and clear the target")
	}
	if d := g.player.Pos().Sub(g.camera.Center()); d.X >= 0 {
		t.Errorf("player did not walk left: %+v", g.player.Pos())
	}

	outside := core.NewInputFrame()
	outside.Click = &core.Pointer{X: 0, Y: 0}
	g.Step(outside)
	if g.player.MoveTarget != nil {
		t.Error("click outside the map should be ignored")
	}
}

func TestRender(t *testing.T) {
	g := newTestGame(t, "chests:\n  - {x: 2, y: 1}\n")
	screen := core.NewScreen(80, 24)
	g.Render(screen)

	out := screen.String()
	for _, want := range []string{"@", "♥", "$", "[]", "█"} {
		if !strings.Contains(out, want) {
			t.Errorf("render missing %q", want)
		}
	}
}

func TestTooSmall(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	lvl, err := level.BuiltinByID("keep")
	if err != nil {
		t.Fatal(err)
	}
	g := New(lvl)
	g.Reset(core.RuntimeConfig{ScreenW: 30, ScreenH: 10, TickRate: 60, Seed: 1})

	if g.Snapshot().State != StatePausedSmall {
		t.Errorf("State = %s, want paused_small_window", g.Snapshot().State)
	}
	screen := core.NewScreen(30, 10)
	g.Render(screen)
	if !strings.Contains(screen.String(), "too small") {
		t.Error("expected too small message")
	}

	before := g.Snapshot()
	g.Resize(120, 40)
	if g.Snapshot().State != StatePlaying {
		t.Errorf("State after resize = %s, want playing", g.Snapshot().State)
	}
	if g.Snapshot().PlayerX != before.PlayerX || g.Snapshot().Tick != before.Tick {
		t.Error("resize should not restart the run")
	}
}
