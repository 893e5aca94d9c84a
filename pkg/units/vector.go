package units

import "math"

// Vector is a 2D position or offset tagged with the unit space it is
// expressed in. It is a value type; all operations return new vectors.
// Binary operations convert the right operand to the left operand's unit
// first, so mixed-unit arithmetic is well defined.
type Vector struct {
	X, Y float64
	Unit Unit
}

// NewVector returns a vector in the given unit space.
func NewVector(x, y float64, unit Unit) Vector {
	return Vector{X: x, Y: y, Unit: unit}
}

// Add returns v + other, in v's unit.
func (v Vector) Add(other Vector) Vector {
	o := other.To(v.Unit)
	return Vector{v.X + o.X, v.Y + o.Y, v.Unit}
}

// Sub returns v - other, in v's unit.
func (v Vector) Sub(other Vector) Vector {
	o := other.To(v.Unit)
	return Vector{v.X - o.X, v.Y - o.Y, v.Unit}
}

// Scale returns v * s.
func (v Vector) Scale(s float64) Vector {
	return Vector{v.X * s, v.Y * s, v.Unit}
}

// Neg returns -v.
func (v Vector) Neg() Vector {
	return Vector{-v.X, -v.Y, v.Unit}
}

// Magnitude returns the length of v.
func (v Vector) Magnitude() float64 {
	return math.Hypot(v.X, v.Y)
}

// DistanceTo returns the distance between v and other.
func (v Vector) DistanceTo(other Vector) float64 {
	return v.Sub(other).Magnitude()
}

// To re-expresses v in the given unit space using the current view.
func (v Vector) To(unit Unit) Vector {
	if v.Unit == unit {
		return v
	}
	u := v.toSceneUnits()
	switch unit {
	case SceneUnits:
		return u
	case ScenePixels:
		ppu := current.PixelsPerUnit()
		return Vector{u.X * ppu, u.Y * ppu, ScenePixels}
	case ViewPercentage:
		return Vector{u.X / current.Width, u.Y / current.Height(), ViewPercentage}
	default:
		return u
	}
}

func (v Vector) toSceneUnits() Vector {
	switch v.Unit {
	case ScenePixels:
		ppu := current.PixelsPerUnit()
		return Vector{v.X / ppu, v.Y / ppu, SceneUnits}
	case ViewPercentage:
		return Vector{v.X * current.Width, v.Y * current.Height(), SceneUnits}
	default:
		return Vector{v.X, v.Y, SceneUnits}
	}
}
