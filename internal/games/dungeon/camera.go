package dungeon

import "github.com/vovakirdan/tui-crawler/internal/games/dungeon/physics"

// Camera frames one room of the map and pans linearly between rooms.
type Camera struct {
	ViewW, ViewH float64
	center       physics.Vec

	panning  bool
	from, to physics.Vec
	elapsed  float64
	duration float64
}

// NewCamera creates a camera with a view of w by h tiles.
func NewCamera(w, h float64) *Camera {
	return &Camera{ViewW: w, ViewH: h}
}

// CenterOn moves the camera immediately and cancels any pan.
func (c *Camera) CenterOn(p physics.Vec) {
	c.center = p
	c.panning = false
}

// Pan starts a linear move to p over duration ms, replacing any current pan.
func (c *Camera) Pan(p physics.Vec, duration float64) {
	if duration <= 0 {
		c.CenterOn(p)
		return
	}
	c.from = c.center
	c.to = p
	c.elapsed = 0
	c.duration = duration
	c.panning = true
}

// Update advances a running pan. The camera snaps onto the target when done.
func (c *Camera) Update(dt float64) {
	if !c.panning {
		return
	}
	c.elapsed += dt
	progress := c.elapsed / c.duration
	if progress >= 1 {
		c.CenterOn(c.to)
		return
	}
	c.center = c.from.Add(c.to.Sub(c.from).Scale(progress))
}

// Panning reports whether a pan is in progress.
func (c *Camera) Panning() bool {
	return c.panning
}

// Center returns the point the camera looks at.
func (c *Camera) Center() physics.Vec {
	return c.center
}

// View returns the world rectangle the camera shows.
func (c *Camera) View() physics.Box {
	return physics.BoxAround(c.center, c.ViewW, c.ViewH)
}

// Sees reports whether any part of box is in view.
func (c *Camera) Sees(box physics.Box) bool {
	if c.ViewW <= 0 || c.ViewH <= 0 {
		return false
	}
	return c.View().Overlaps(box)
}
