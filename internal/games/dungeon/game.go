// Package dungeon implements the top-down dungeon crawler: a player exploring
// rooms joined by doors, looting chests and fighting lizards, wizards and a
// big zombie with a bouncing knife.
//
// Entities never call each other directly when they collide. The scene turns
// overlaps into events on a per-game bus, and bus handlers change entity state.
package dungeon

import (
	"math/rand"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-crawler/internal/config"
	"github.com/vovakirdan/tui-crawler/internal/core"
	"github.com/vovakirdan/tui-crawler/internal/events"
	"github.com/vovakirdan/tui-crawler/internal/games/dungeon/level"
	"github.com/vovakirdan/tui-crawler/internal/games/dungeon/physics"
	"github.com/vovakirdan/tui-crawler/internal/registry"
)

// configPath stores the custom config path set via CLI
var configPath string

// difficultyPreset stores the difficulty preset set via CLI
var difficultyPreset config.DifficultyPreset

// SetConfigPath sets the custom config path for loading.
func SetConfigPath(path string) {
	configPath = path
}

// SetDifficultyPreset sets the difficulty preset. Empty keeps the config as is.
func SetDifficultyPreset(preset string) {
	if preset == "" {
		difficultyPreset = ""
		return
	}
	difficultyPreset = config.ParsePreset(preset)
}

func init() {
	levels, err := level.Builtin()
	if err != nil {
		panic("dungeon: embedded maps: " + err.Error())
	}
	for _, lvl := range levels {
		Register(lvl)
	}
}

// Register adds a map to the game registry. Maps whose ID is taken are skipped.
func Register(lvl *level.Level) bool {
	return registry.TryRegister(lvl.ID, func() registry.Game {
		return New(lvl)
	})
}

// Game is one run through a dungeon map.
type Game struct {
	lvl        *level.Level
	runtime    core.RuntimeConfig
	cfg        config.DungeonConfig
	tune       tuning
	difficulty *config.DifficultyManager
	rng        *rand.Rand

	bus   *events.Bus
	clock *Clock
	walls *physics.TileMap

	player    *Player
	knife     *Knife
	enemies   []*Enemy
	fireballs []*Fireball
	emitters  []*Emitter
	doors     []*Door
	doorIndex map[string]*Door
	chests    []*Chest
	camera    *Camera
	hud       *HUD

	currentRoom     string
	visited         map[string]bool
	playerColliders bool // enemies and fireballs can still hurt the player
	enemyTotal      int
	kills           int
	tick            uint64
	deadFor         float64

	paused   bool
	gameOver bool
	outcome  core.Outcome

	// Layout (computed from screen size)
	offX, offY int
	viewW      int
	viewH      int
	tooSmall   bool
}

// New creates a game for a map.
func New(lvl *level.Level) *Game {
	return &Game{lvl: lvl}
}

// ID returns the map ID.
func (g *Game) ID() string {
	return g.lvl.ID
}

// Title returns the map name.
func (g *Game) Title() string {
	if g.lvl.Name == "" {
		return g.lvl.ID
	}
	return g.lvl.Name
}

// Reset builds the map's entities and starts a fresh run.
func (g *Game) Reset(runtime core.RuntimeConfig) {
	g.runtime = runtime

	cfg, err := config.LoadDungeon(configPath)
	if err != nil {
		log.Warn("dungeon: using default config", "err", err)
		cfg = config.DefaultDungeonConfig()
	}
	if difficultyPreset != "" {
		config.ApplyDungeonPreset(&cfg, difficultyPreset)
	}
	g.cfg = cfg
	g.tune = newTuning(cfg)
	g.difficulty = config.NewDifficultyManager(cfg.Difficulty)
	g.rng = rand.New(rand.NewSource(runtime.Seed))

	// Drop every listener of the previous run
	if g.bus != nil {
		g.bus.Reset()
	}
	g.bus = events.NewBus()
	if g.clock != nil {
		g.clock.Clear()
	}
	g.clock = NewClock()

	g.buildWalls()
	g.spawnEntities()

	spawn, _ := g.lvl.Room(g.lvl.Spawn)
	g.currentRoom = spawn.Name
	g.visited = map[string]bool{spawn.Name: true}
	g.camera = NewCamera(float64(g.lvl.View.W), float64(g.lvl.View.H))
	g.camera.CenterOn(physics.V(spawn.Center()))

	g.hud = NewHUD(g.bus, g.player.Health)
	g.wireEvents()

	g.playerColliders = true
	g.kills = 0
	g.tick = 0
	g.deadFor = 0
	g.paused = false
	g.gameOver = false
	g.outcome = core.OutcomeNone

	g.calculateLayout()
	log.Debug("dungeon started", "dungeon", g.lvl.ID, "seed", runtime.Seed, "enemies", g.enemyTotal,
		"scaling", g.difficulty.IsEnabled())
}

func (g *Game) buildWalls() {
	g.walls = physics.NewTileMap(g.lvl.Width(), g.lvl.Height())
	for y := 0; y < g.lvl.Height(); y++ {
		for x := 0; x < g.lvl.Width(); x++ {
			g.walls.SetSolid(x, y, g.lvl.TileAt(x, y).Solid())
		}
	}
}

func (g *Game) spawnEntities() {
	g.doors = g.doors[:0]
	g.doorIndex = make(map[string]*Door, len(g.lvl.Doors))
	for _, d := range g.lvl.Doors {
		door := newDoor(d)
		g.doors = append(g.doors, door)
		g.doorIndex[door.Name] = door
	}

	g.chests = g.chests[:0]
	for _, p := range g.lvl.Chests {
		coins := g.tune.minCoins + g.rng.Intn(g.tune.maxCoins-g.tune.minCoins+1)
		g.chests = append(g.chests, newChest(p, coins))
	}

	spawn, _ := g.lvl.Room(g.lvl.Spawn)
	g.player = newPlayer(physics.V(spawn.Center()), g.tune.player, g.bus)
	g.knife = newKnife(g.tune.knife)

	g.enemies = g.enemies[:0]
	add := func(kind EnemyKind, pts []level.Point, stats enemyTuning) {
		for _, p := range pts {
			e := newEnemy(kind, physics.V(p.Center()), stats, g.rng)
			e.wander(g.clock, g.tune.directionMs)
			g.enemies = append(g.enemies, e)
		}
	}
	add(KindBoss, g.lvl.Bosses, g.tune.boss)
	add(KindLizard, g.lvl.Lizards, g.tune.lizard)
	add(KindWizard, g.lvl.Wizards, g.tune.wizard)
	g.enemyTotal = len(g.enemies)

	g.fireballs = g.fireballs[:0]
	g.emitters = g.emitters[:0]
}

// calculateLayout centers the room view and status lines on screen.
func (g *Game) calculateLayout() {
	g.viewW = g.lvl.View.W * cellsPerTile
	g.viewH = g.lvl.View.H
	needW := g.viewW
	needH := g.viewH + 2

	g.tooSmall = g.runtime.ScreenW < needW || g.runtime.ScreenH < needH
	g.offX = max(0, (g.runtime.ScreenW-needW)/2)
	g.offY = max(0, (g.runtime.ScreenH-needH)/2) + 1
}

// Resize relays the game out for a new screen size without restarting it.
func (g *Game) Resize(w, h int) {
	g.runtime.ScreenW = w
	g.runtime.ScreenH = h
	g.calculateLayout()
}

// Step advances the game by one tick.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	g.tick++

	if in.Has(core.ActionRestart) && g.gameOver {
		runtime := g.runtime
		runtime.Seed = g.rng.Int63()
		g.Reset(runtime)
		return core.StepResult{State: g.State()}
	}

	if in.Has(core.ActionPause) && !g.gameOver {
		g.paused = !g.paused
	}

	if g.paused || g.gameOver || g.tooSmall {
		return core.StepResult{State: g.State()}
	}

	dt := g.runtime.TickMillis()
	score := g.player.Coins
	ticks := int(g.tick)

	g.handlePointer(in)
	g.player.t.knockback = g.difficulty.Knockback(g.tune.player.knockback, score, ticks)
	g.player.PreUpdate(dt)
	g.player.Update(in, g.throwKnife)

	if g.player.Dead() && g.playerColliders {
		g.removePlayerColliders()
	}

	g.clock.Advance(dt)
	g.camera.Update(dt)
	g.updateEnemies(dt, score, ticks)

	g.moveBodies(dt / 1000)
	g.checkOverlaps()

	for _, em := range g.emitters {
		em.Update(dt)
	}
	g.pruneEmitters()
	g.removeDeadEnemies()

	if g.player.Dead() {
		g.deadFor += dt
		if g.deadFor >= g.tune.deathDelayMs {
			g.gameOver = true
		}
	} else if g.enemyTotal > 0 && len(g.enemies) == 0 {
		g.outcome = core.OutcomeWon
		g.gameOver = true
		log.Info("dungeon cleared", "dungeon", g.lvl.ID, "coins", g.player.Coins, "ticks", g.tick)
	}

	return core.StepResult{State: g.State()}
}

// handlePointer maps mouse input: moving aims, clicking walks.
func (g *Game) handlePointer(in core.InputFrame) {
	if g.player.Dead() {
		return
	}
	if in.Hover != nil {
		if p, ok := g.screenToWorld(*in.Hover); ok {
			g.player.AimAt(p)
		}
	}
	if in.Click != nil {
		if p, ok := g.screenToWorld(*in.Click); ok {
			g.player.AimAt(p)
			g.player.MoveTo(p)
		}
	}
}

// screenToWorld converts a screen cell to the world point at its center.
func (g *Game) screenToWorld(p core.Pointer) (physics.Vec, bool) {
	col := p.X - g.offX
	row := p.Y - g.offY
	if col < 0 || row < 0 || col >= g.viewW || row >= g.viewH {
		return physics.Vec{}, false
	}
	view := g.camera.View()
	return physics.V(
		view.X+(float64(col)+0.5)/cellsPerTile,
		view.Y+float64(row)+0.5,
	), true
}

func (g *Game) throwKnife() {
	g.knife.Throw(g.player.Pos(), g.player.AimTarget, g.player.Facing, g.walls)
}

func (g *Game) throwFireball(wizard *Enemy) {
	cooldown := g.difficulty.Cooldown(g.tune.fireball.cooldownMs, g.player.Coins, int(g.tick))
	wizard.startFiring(g.clock, cooldown)

	fb := g.getFireball()
	fb.Launch(wizard.Pos(), g.player.Pos(), g.tune.fireball.speed)
	g.bus.Publish(WizardFireballThrown{Wizard: wizard, Fireball: fb})
}

// getFireball returns an idle fireball from the pool, growing it when needed.
func (g *Game) getFireball() *Fireball {
	for _, fb := range g.fireballs {
		if !fb.Active {
			return fb
		}
	}
	fb := newFireball(g.tune.fireball.size)
	g.fireballs = append(g.fireballs, fb)
	return fb
}

func (g *Game) updateEnemies(dt float64, score, ticks int) {
	playerPos := g.player.Pos()
	for _, e := range g.enemies {
		e.OnCamera = g.camera.Sees(e.Body.Bounds())
		speed := g.difficulty.Speed(e.stats.speed, score, ticks)
		e.PreUpdate(dt, speed, g.tune.dyingMs)

		if e.Kind == KindWizard && e.Alive() && e.OnCamera && !e.Firing() && g.playerColliders &&
			e.CanSeePlayer(playerPos, g.tune.sight, g.walls) {
			g.throwFireball(e)
		}
	}
}

// enterRoom pans the camera to a room.
func (g *Game) enterRoom(name string) {
	room, ok := g.lvl.Room(name)
	if !ok {
		return
	}
	g.currentRoom = name
	g.camera.Pan(physics.V(room.Center()), g.tune.cameraPanMs)
	g.bus.Publish(RoomEntered{Room: name})
}

func (g *Game) removePlayerColliders() {
	g.playerColliders = false
	g.bus.Off(TopicEnemyHitPlayer)
	g.outcome = core.OutcomeDead
	log.Info("player died", "dungeon", g.lvl.ID, "coins", g.player.Coins, "room", g.currentRoom)
}

func (g *Game) pruneEmitters() {
	live := g.emitters[:0]
	for _, em := range g.emitters {
		if !em.Removed() {
			live = append(live, em)
		}
	}
	g.emitters = live
}

func (g *Game) removeDeadEnemies() {
	live := g.enemies[:0]
	var gone []*Enemy
	for _, e := range g.enemies {
		if e.Gone() {
			gone = append(gone, e)
			continue
		}
		live = append(live, e)
	}
	g.enemies = live
	for _, e := range gone {
		g.bus.Publish(EnemyDied{Enemy: e})
	}
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	score := 0
	if g.player != nil {
		score = g.player.Coins
	}
	return core.GameState{
		Score:    score,
		GameOver: g.gameOver,
		Paused:   g.paused,
		Outcome:  g.outcome,
	}
}

// RunStats summarizes the run for persistence.
func (g *Game) RunStats() core.RunStats {
	return core.RunStats{
		Coins:        g.player.Coins,
		Kills:        g.kills,
		RoomsVisited: len(g.visited),
		Ticks:        g.tick,
	}
}

// Bus exposes the scene's event bus so callers can observe the run.
func (g *Game) Bus() *events.Bus {
	return g.bus
}
