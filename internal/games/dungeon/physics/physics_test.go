package physics

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// room returns a 10x6 map with a wall border and a pillar at (5, 2).
func room() *TileMap {
	m := NewTileMap(10, 6)
	for x := 0; x < 10; x++ {
		m.SetSolid(x, 0, true)
		m.SetSolid(x, 5, true)
	}
	for y := 0; y < 6; y++ {
		m.SetSolid(0, y, true)
		m.SetSolid(9, y, true)
	}
	m.SetSolid(5, 2, true)
	return m
}

func TestVecMath(t *testing.T) {
	v := V(3, 4)
	assert.InDelta(t, 5.0, v.Len(), 1e-9)

	n := v.Normalize()
	assert.InDelta(t, 0.6, n.X, 1e-9)
	assert.InDelta(t, 0.8, n.Y, 1e-9)

	assert.True(t, Vec{}.Normalize().IsZero(), "zero vector normalizes to zero")
	assert.InDelta(t, math.Pi/2, V(0, 1).Angle(), 1e-9)

	u := UnitVector(V(1, 1), V(1, 5))
	assert.Equal(t, V(0, 1), u)
}

func TestBoxOverlap(t *testing.T) {
	a := BoxAround(V(2, 2), 2, 2)
	assert.True(t, a.Overlaps(Box{X: 2.5, Y: 2.5, W: 1, H: 1}))
	assert.False(t, a.Overlaps(Box{X: 3, Y: 1, W: 1, H: 1}), "touching edges do not overlap")
	assert.True(t, a.Contains(V(1, 1)))
	assert.False(t, a.Contains(V(3, 2)))
}

func TestOutOfBoundsIsSolid(t *testing.T) {
	m := NewTileMap(2, 2)
	assert.False(t, m.Solid(1, 1))
	assert.True(t, m.Solid(-1, 0))
	assert.True(t, m.Solid(2, 0))
}

func TestMoveStopsAtWall(t *testing.T) {
	m := room()
	b := NewBody(V(1.45, 3.5), 0.8, 0.8)
	b.Vel = V(-6, 0)

	c := m.Move(b, 1.0/60, nil)

	assert.True(t, c.Tile)
	assert.True(t, c.BlockedX)
	assert.InDelta(t, 1.45, b.Pos.X, 1e-9, "blocked axis keeps its position")
	assert.Zero(t, b.Vel.X)
}

func TestMoveSlidesAlongWall(t *testing.T) {
	m := room()
	b := NewBody(V(1.45, 3.5), 0.8, 0.8)
	b.Vel = V(-6, 6)

	c := m.Move(b, 1.0/60, nil)

	assert.True(t, c.BlockedX)
	assert.False(t, c.BlockedY)
	assert.InDelta(t, 3.6, b.Pos.Y, 1e-9)
}

func TestMoveBounce(t *testing.T) {
	m := room()
	b := NewBody(V(8.6, 3.5), 0.4, 0.2)
	b.Bounce = true
	b.Vel = V(18, 0)

	c := m.Move(b, 1.0/60, nil)

	require.True(t, c.Tile)
	assert.Equal(t, -18.0, b.Vel.X, "bouncy bodies reflect")
}

func TestMoveBlockers(t *testing.T) {
	m := room()
	b := NewBody(V(3, 3.5), 0.8, 0.8)
	b.Vel = V(12, 0)
	chest := Box{X: 3.5, Y: 3, W: 1, H: 1}

	c := m.Move(b, 1.0/60, []Box{{X: 7, Y: 1, W: 1, H: 1}, chest})

	assert.False(t, c.Tile)
	assert.Equal(t, 1, c.Blocker)
	assert.InDelta(t, 3.0, b.Pos.X, 1e-9)
}

func TestDisabledBodyDoesNotMove(t *testing.T) {
	m := room()
	b := NewBody(V(3, 3), 1, 1)
	b.Enabled = false
	b.Vel = V(5, 5)

	m.Move(b, 1, nil)
	assert.Equal(t, V(3, 3), b.Pos)
}

func TestLineClear(t *testing.T) {
	m := room()

	assert.True(t, m.LineClear(V(1.5, 3.5), V(8.5, 3.5)), "row 3 is open")
	assert.False(t, m.LineClear(V(1.5, 2.5), V(8.5, 2.5)), "pillar blocks row 2")
	assert.True(t, m.LineClear(V(2.5, 2.5), V(2.5, 2.5)))
}
