package dungeon

import (
	"github.com/vovakirdan/tui-crawler/internal/games/dungeon/level"
	"github.com/vovakirdan/tui-crawler/internal/games/dungeon/physics"
)

// Door connects two rooms. Closed doors block movement; open ones can be
// walked through.
type Door struct {
	Name        string
	Room        string
	Destination string
	Facing      level.Facing
	Tile        level.Point
	open        bool
}

func newDoor(d level.Door) *Door {
	return &Door{
		Name:        d.Name,
		Room:        d.Room,
		Destination: d.Destination,
		Facing:      d.Facing,
		Tile:        level.Point{X: d.X, Y: d.Y},
	}
}

// IsOpen reports whether the door is open.
func (d *Door) IsOpen() bool {
	return d.open
}

// Open opens the door. Opening an open door does nothing.
func (d *Door) Open() {
	d.open = true
}

// Bounds returns the door's tile box.
func (d *Door) Bounds() physics.Box {
	return physics.Box{X: float64(d.Tile.X), Y: float64(d.Tile.Y), W: 1, H: 1}
}

// Chest holds a coin reward rolled when the level is built.
type Chest struct {
	Tile  level.Point
	coins int
	open  bool
}

func newChest(p level.Point, coins int) *Chest {
	return &Chest{Tile: p, coins: coins}
}

// IsOpen reports whether the chest has been looted.
func (c *Chest) IsOpen() bool {
	return c.open
}

// Open loots the chest: the coin reward the first time, zero afterwards.
func (c *Chest) Open() int {
	if c.open {
		return 0
	}
	c.open = true
	return c.coins
}

// Bounds returns the chest's tile box.
func (c *Chest) Bounds() physics.Box {
	return physics.Box{X: float64(c.Tile.X), Y: float64(c.Tile.Y), W: 1, H: 1}
}
