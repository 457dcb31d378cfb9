package physics

import "math"

// edge keeps boxes that exactly touch a tile border from counting as inside it.
const edge = 1e-9

// sightStep is the sampling distance used by LineClear.
const sightStep = 0.25

// TileMap is a grid of solid/non-solid tiles. Positions outside the grid are solid.
type TileMap struct {
	width  int
	height int
	solid  []bool
}

// NewTileMap creates an empty (all floor) tile map.
func NewTileMap(width, height int) *TileMap {
	return &TileMap{
		width:  width,
		height: height,
		solid:  make([]bool, width*height),
	}
}

// Width returns the map width in tiles.
func (m *TileMap) Width() int { return m.width }

// Height returns the map height in tiles.
func (m *TileMap) Height() int { return m.height }

// SetSolid marks a tile as colliding or not.
func (m *TileMap) SetSolid(tx, ty int, solid bool) {
	if tx < 0 || ty < 0 || tx >= m.width || ty >= m.height {
		return
	}
	m.solid[ty*m.width+tx] = solid
}

// Solid reports whether the tile at (tx, ty) collides.
func (m *TileMap) Solid(tx, ty int) bool {
	if tx < 0 || ty < 0 || tx >= m.width || ty >= m.height {
		return true
	}
	return m.solid[ty*m.width+tx]
}

// SolidAt reports whether the tile under a world point collides.
func (m *TileMap) SolidAt(p Vec) bool {
	return m.Solid(int(math.Floor(p.X)), int(math.Floor(p.Y)))
}

// BoxHitsSolid reports whether any tile overlapped by the box collides.
func (m *TileMap) BoxHitsSolid(b Box) bool {
	x0 := int(math.Floor(b.X + edge))
	y0 := int(math.Floor(b.Y + edge))
	x1 := int(math.Floor(b.Right() - edge))
	y1 := int(math.Floor(b.Bottom() - edge))
	for ty := y0; ty <= y1; ty++ {
		for tx := x0; tx <= x1; tx++ {
			if m.Solid(tx, ty) {
				return true
			}
		}
	}
	return false
}

// LineClear reports whether the segment from a to b crosses no solid tile.
func (m *TileMap) LineClear(a, b Vec) bool {
	d := b.Sub(a)
	dist := d.Len()
	steps := int(math.Ceil(dist / sightStep))
	for i := 0; i <= steps; i++ {
		t := 1.0
		if steps > 0 {
			t = float64(i) / float64(steps)
		}
		if m.SolidAt(a.Add(d.Scale(t))) {
			return false
		}
	}
	return true
}

// Contact describes what stopped a body during Move.
type Contact struct {
	Tile     bool // a wall tile blocked the body
	Blocker  int  // index of the static blocker that stopped the body, -1 if none
	BlockedX bool
	BlockedY bool
}

// Blocked reports whether anything stopped the body.
func (c Contact) Blocked() bool {
	return c.BlockedX || c.BlockedY
}

// Move integrates the body's velocity over dt seconds, one axis at a time.
// A blocked axis keeps its previous position; the velocity on that axis is
// zeroed, or reflected for bouncy bodies. Static blockers are extra solid
// boxes (closed doors, chests).
func (m *TileMap) Move(b *Body, dt float64, blockers []Box) Contact {
	contact := Contact{Blocker: -1}
	if !b.Enabled {
		return contact
	}

	if b.Vel.X != 0 {
		next := b.Pos
		next.X += b.Vel.X * dt
		if tile, idx := m.hit(BoxAround(next, b.W, b.H), blockers); tile || idx >= 0 {
			contact.BlockedX = true
			contact.Tile = contact.Tile || tile
			if idx >= 0 {
				contact.Blocker = idx
			}
			if b.Bounce {
				b.Vel.X = -b.Vel.X
			} else {
				b.Vel.X = 0
			}
		} else {
			b.Pos = next
		}
	}

	if b.Vel.Y != 0 {
		next := b.Pos
		next.Y += b.Vel.Y * dt
		if tile, idx := m.hit(BoxAround(next, b.W, b.H), blockers); tile || idx >= 0 {
			contact.BlockedY = true
			contact.Tile = contact.Tile || tile
			if idx >= 0 {
				contact.Blocker = idx
			}
			if b.Bounce {
				b.Vel.Y = -b.Vel.Y
			} else {
				b.Vel.Y = 0
			}
		} else {
			b.Pos = next
		}
	}

	return contact
}

func (m *TileMap) hit(box Box, blockers []Box) (tile bool, blocker int) {
	blocker = -1
	tile = m.BoxHitsSolid(box)
	for i, bl := range blockers {
		if box.Overlaps(bl) {
			blocker = i
			break
		}
	}
	return tile, blocker
}
