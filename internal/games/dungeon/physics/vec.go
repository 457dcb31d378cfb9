// Package physics provides the small amount of arcade physics the dungeon
// needs: float vectors, axis-aligned bodies, tile-map collision with optional
// bounce, and wall line-of-sight checks.
//
// All distances are in tiles; velocities are tiles per second.
package physics

import "math"

// Vec is a 2D float vector.
type Vec struct {
	X, Y float64
}

// V is shorthand for constructing a vector.
func V(x, y float64) Vec {
	return Vec{X: x, Y: y}
}

// Add returns v + o.
func (v Vec) Add(o Vec) Vec {
	return Vec{X: v.X + o.X, Y: v.Y + o.Y}
}

// Sub returns v - o.
func (v Vec) Sub(o Vec) Vec {
	return Vec{X: v.X - o.X, Y: v.Y - o.Y}
}

// Scale returns v * k.
func (v Vec) Scale(k float64) Vec {
	return Vec{X: v.X * k, Y: v.Y * k}
}

// Len returns the vector length.
func (v Vec) Len() float64 {
	return math.Hypot(v.X, v.Y)
}

// IsZero reports whether both components are zero.
func (v Vec) IsZero() bool {
	return v.X == 0 && v.Y == 0
}

// Normalize returns the unit vector in the direction of v.
// The zero vector normalizes to itself.
func (v Vec) Normalize() Vec {
	l := v.Len()
	if l == 0 {
		return Vec{}
	}
	return Vec{X: v.X / l, Y: v.Y / l}
}

// Angle returns the angle of v in radians, measured from +X toward +Y.
func (v Vec) Angle() float64 {
	return math.Atan2(v.Y, v.X)
}

// UnitVector returns the unit vector pointing from origin to target.
func UnitVector(origin, target Vec) Vec {
	return target.Sub(origin).Normalize()
}

// Box is an axis-aligned rectangle given by its top-left corner and size.
type Box struct {
	X, Y, W, H float64
}

// BoxAround builds a box of the given size centered on c.
func BoxAround(c Vec, w, h float64) Box {
	return Box{X: c.X - w/2, Y: c.Y - h/2, W: w, H: h}
}

// Right returns the x-coordinate of the right edge.
func (b Box) Right() float64 { return b.X + b.W }

// Bottom returns the y-coordinate of the bottom edge.
func (b Box) Bottom() float64 { return b.Y + b.H }

// Center returns the center point.
func (b Box) Center() Vec {
	return Vec{X: b.X + b.W/2, Y: b.Y + b.H/2}
}

// Overlaps reports whether two boxes share any area.
func (b Box) Overlaps(o Box) bool {
	return b.X < o.Right() && o.X < b.Right() && b.Y < o.Bottom() && o.Y < b.Bottom()
}

// Contains reports whether the point lies inside the box.
func (b Box) Contains(p Vec) bool {
	return p.X >= b.X && p.X < b.Right() && p.Y >= b.Y && p.Y < b.Bottom()
}
