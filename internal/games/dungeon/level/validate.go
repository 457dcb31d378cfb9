package level

import (
	"fmt"
	"strings"
)

// ValidationError lists every problem found in a map.
type ValidationError struct {
	ID       string
	Problems []string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("level %q: %s", e.ID, strings.Join(e.Problems, "; "))
}

// Validate checks the map for structural problems.
func (l *Level) Validate() error {
	var problems []string
	add := func(format string, args ...any) {
		problems = append(problems, fmt.Sprintf(format, args...))
	}

	if l.ID == "" {
		add("missing id")
	}
	if l.width == 0 || l.height == 0 {
		add("empty layout")
	}
	for y, row := range l.rows {
		for x := 0; x < len(row); x++ {
			switch Tile(row[x]) {
			case TileVoid, TileFloor, TileWall:
			default:
				add("unknown tile %q at (%d,%d)", row[x], x, y)
			}
		}
	}
	if l.View.W <= 0 || l.View.H <= 0 {
		add("view size must be positive")
	}

	if len(l.Rooms) == 0 {
		add("no rooms")
	}
	names := make(map[string]bool, len(l.Rooms))
	for _, r := range l.Rooms {
		if names[r.Name] {
			add("duplicate room %q", r.Name)
		}
		names[r.Name] = true
		if r.X < 0 || r.Y < 0 || r.X+r.W > l.width || r.Y+r.H > l.height {
			add("room %q outside map", r.Name)
		}
	}
	if _, ok := l.Room(l.Spawn); !ok {
		add("spawn room %q does not exist", l.Spawn)
	}

	doors := make(map[string]bool, len(l.Doors))
	for _, d := range l.Doors {
		doors[d.Name] = true
	}
	for _, d := range l.Doors {
		if !names[d.Room] {
			add("door %q: unknown room %q", d.Name, d.Room)
		}
		if d.Destination != "" && !doors[d.Destination] {
			add("door %q: unknown destination %q", d.Name, d.Destination)
		}
		switch d.Facing {
		case FacingNorth, FacingSouth, FacingEast, FacingWest:
		default:
			add("door %q: bad facing %q", d.Name, d.Facing)
		}
		if l.TileAt(d.X, d.Y) != TileFloor {
			add("door %q not on floor", d.Name)
		}
	}

	layers := []struct {
		name string
		pts  []Point
	}{
		{"chest", l.Chests},
		{"lizard", l.Lizards},
		{"wizard", l.Wizards},
		{"boss", l.Bosses},
	}
	for _, layer := range layers {
		for _, p := range layer.pts {
			if l.TileAt(p.X, p.Y) != TileFloor {
				add("%s at (%d,%d) not on floor", layer.name, p.X, p.Y)
			}
			if _, ok := l.RoomAt(p.Center()); !ok {
				add("%s at (%d,%d) outside every room", layer.name, p.X, p.Y)
			}
		}
	}

	if len(problems) > 0 {
		return &ValidationError{ID: l.ID, Problems: problems}
	}
	return nil
}
