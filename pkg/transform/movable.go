// Package transform implements the spatial primitives of the engine:
// movable unit-tagged objects and the mutable polygon used as a
// collision shape.
package transform

import "github.com/hollowbeak/tessera/pkg/units"

// Movable is anything with a position that can be moved by an offset or
// repositioned absolutely. Scene code treats polygons, sprites and
// cameras uniformly through it.
type Movable interface {
	Position() units.Vector
	SetPosition(position units.Vector)
	Move(offset units.Vector)
}
