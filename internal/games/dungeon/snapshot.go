package dungeon

// GameStateType represents the current phase of a run.
type GameStateType string

const (
	StatePlaying     GameStateType = "playing"
	StatePaused      GameStateType = "paused"
	StateDying       GameStateType = "dying"
	StateGameOver    GameStateType = "game_over"
	StateWin         GameStateType = "win"
	StatePausedSmall GameStateType = "paused_small_window"
)

// Snapshot captures the game state for determinism testing and replay.
type Snapshot struct {
	Tick        uint64
	PlayerX     float64
	PlayerY     float64
	Health      int
	Coins       int
	PlayerState HealthState
	Room        string
	Enemies     int
	Kills       int
	KnifeActive bool
	Fireballs   int
	OpenDoors   int
	OpenChests  int
	CameraX     float64
	CameraY     float64
	State       GameStateType
}

// Snapshot returns the current game snapshot for determinism verification.
func (g *Game) Snapshot() Snapshot {
	state := StatePlaying
	switch {
	case g.tooSmall:
		state = StatePausedSmall
	case g.gameOver && g.player.Dead():
		state = StateGameOver
	case g.gameOver:
		state = StateWin
	case g.player.Dead():
		state = StateDying
	case g.paused:
		state = StatePaused
	}

	fireballs := 0
	for _, fb := range g.fireballs {
		if fb.Active {
			fireballs++
		}
	}
	openDoors := 0
	for _, d := range g.doors {
		if d.IsOpen() {
			openDoors++
		}
	}
	openChests := 0
	for _, c := range g.chests {
		if c.IsOpen() {
			openChests++
		}
	}

	cam := g.camera.Center()
	return Snapshot{
		Tick:        g.tick,
		PlayerX:     g.player.Pos().X,
		PlayerY:     g.player.Pos().Y,
		Health:      g.player.Health,
		Coins:       g.player.Coins,
		PlayerState: g.player.State,
		Room:        g.currentRoom,
		Enemies:     len(g.enemies),
		Kills:       g.kills,
		KnifeActive: g.knife.Active,
		Fireballs:   fireballs,
		OpenDoors:   openDoors,
		OpenChests:  openChests,
		CameraX:     cam.X,
		CameraY:     cam.Y,
		State:       state,
	}
}
