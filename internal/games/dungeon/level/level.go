// Package level loads dungeon maps: the tile layout plus the object layers
// (rooms, doors, chests and enemy spawns) the scene builds entities from.
package level

import (
	"errors"
	"fmt"
	"strings"

	"gopkg.in/yaml.v3"
)

// ErrNotFound is returned when a map ID is not known to a loader.
var ErrNotFound = errors.New("level: map not found")

// Tile is a single layout cell.
type Tile byte

const (
	TileVoid  Tile = ' '
	TileFloor Tile = '.'
	TileWall  Tile = '#'
)

// Solid reports whether the tile blocks movement.
func (t Tile) Solid() bool {
	return t != TileFloor
}

// Facing is the side of a doorway a door faces.
type Facing string

const (
	FacingNorth Facing = "north"
	FacingSouth Facing = "south"
	FacingEast  Facing = "east"
	FacingWest  Facing = "west"
)

// Size is a width/height pair in tiles.
type Size struct {
	W int `yaml:"w"`
	H int `yaml:"h"`
}

// Point is a tile coordinate.
type Point struct {
	X int `yaml:"x"`
	Y int `yaml:"y"`
}

// Center returns the world position of the tile's center.
func (p Point) Center() (float64, float64) {
	return float64(p.X) + 0.5, float64(p.Y) + 0.5
}

// Room is a named rectangle of the map that the camera frames as one screen.
type Room struct {
	Name string `yaml:"name"`
	X    int    `yaml:"x"`
	Y    int    `yaml:"y"`
	W    int    `yaml:"w"`
	H    int    `yaml:"h"`
}

// Center returns the room's center in world units.
func (r Room) Center() (float64, float64) {
	return float64(r.X) + float64(r.W)/2, float64(r.Y) + float64(r.H)/2
}

// Contains reports whether a world point lies inside the room.
func (r Room) Contains(x, y float64) bool {
	return x >= float64(r.X) && x < float64(r.X+r.W) && y >= float64(r.Y) && y < float64(r.Y+r.H)
}

// Door is a door object: it belongs to Room and opens together with the
// door named by Destination.
type Door struct {
	Name        string `yaml:"name"`
	X           int    `yaml:"x"`
	Y           int    `yaml:"y"`
	Room        string `yaml:"room"`
	Destination string `yaml:"destination"`
	Facing      Facing `yaml:"facing"`
}

// Level is a parsed dungeon map.
type Level struct {
	ID      string  `yaml:"id"`
	Name    string  `yaml:"name"`
	View    Size    `yaml:"view"`
	Spawn   string  `yaml:"spawn"`
	Layout  string  `yaml:"layout"`
	Rooms   []Room  `yaml:"rooms"`
	Doors   []Door  `yaml:"doors"`
	Chests  []Point `yaml:"chests"`
	Lizards []Point `yaml:"lizards"`
	Wizards []Point `yaml:"wizards"`
	Bosses  []Point `yaml:"bosses"`

	rows   []string
	width  int
	height int
}

// Parse decodes and validates a YAML map.
func Parse(data []byte) (*Level, error) {
	var l Level
	if err := yaml.Unmarshal(data, &l); err != nil {
		return nil, fmt.Errorf("level: yaml unmarshal: %w", err)
	}
	l.index()
	if err := l.Validate(); err != nil {
		return nil, err
	}
	return &l, nil
}

// index splits the layout into rows and measures the map.
func (l *Level) index() {
	l.rows = l.rows[:0]
	for _, row := range strings.Split(strings.TrimRight(l.Layout, "\n"), "\n") {
		l.rows = append(l.rows, row)
		if len(row) > l.width {
			l.width = len(row)
		}
	}
	l.height = len(l.rows)
}

// Width returns the map width in tiles.
func (l *Level) Width() int { return l.width }

// Height returns the map height in tiles.
func (l *Level) Height() int { return l.height }

// TileAt returns the tile at (x, y); positions beyond a short row are void.
func (l *Level) TileAt(x, y int) Tile {
	if y < 0 || y >= len(l.rows) || x < 0 || x >= len(l.rows[y]) {
		return TileVoid
	}
	return Tile(l.rows[y][x])
}

// Room returns the room with the given name.
func (l *Level) Room(name string) (Room, bool) {
	for _, r := range l.Rooms {
		if r.Name == name {
			return r, true
		}
	}
	return Room{}, false
}

// RoomAt returns the first room containing the world point.
func (l *Level) RoomAt(x, y float64) (Room, bool) {
	for _, r := range l.Rooms {
		if r.Contains(x, y) {
			return r, true
		}
	}
	return Room{}, false
}

// EnemyCount returns the number of enemy spawns on the map.
func (l *Level) EnemyCount() int {
	return len(l.Lizards) + len(l.Wizards) + len(l.Bosses)
}
