package physics

// Body is a dynamic axis-aligned body centered on Pos.
type Body struct {
	Pos     Vec
	W, H    float64
	Vel     Vec
	Enabled bool
	Bounce  bool // reflect velocity on the blocked axis instead of stopping
}

// NewBody creates an enabled body.
func NewBody(pos Vec, w, h float64) *Body {
	return &Body{Pos: pos, W: w, H: h, Enabled: true}
}

// Bounds returns the body's box.
func (b *Body) Bounds() Box {
	return BoxAround(b.Pos, b.W, b.H)
}

// SetSize changes the body's dimensions around its center.
func (b *Body) SetSize(w, h float64) {
	b.W = w
	b.H = h
}

// Stop zeroes the velocity.
func (b *Body) Stop() {
	b.Vel = Vec{}
}

// Overlaps reports whether two enabled bodies overlap.
func (b *Body) Overlaps(o *Body) bool {
	if !b.Enabled || !o.Enabled {
		return false
	}
	return b.Bounds().Overlaps(o.Bounds())
}
