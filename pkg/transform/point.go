package transform

import (
	"fmt"

	"github.com/hollowbeak/tessera/pkg/units"
)

// ReferenceFrame selects the reference a point's relative position is
// measured from.
type ReferenceFrame uint8

const (
	// FromPoint0 measures offsets from the polygon's first point.
	FromPoint0 ReferenceFrame = iota
	// FromCentroid measures offsets from the polygon's centroid,
	// recomputed at each call.
	FromCentroid
)

// Point is a handle to one vertex of a Polygon. It resolves its index
// against the owning polygon at call time; after any structural change
// to the polygon every previously obtained handle reports
// ErrInvalidPoint instead of reading stale data.
type Point struct {
	poly  *Polygon
	index int
	gen   uint64
}

// Index returns the point's index at the time the handle was obtained.
func (pt Point) Index() int {
	return pt.index
}

func (pt Point) resolve() (*units.Vector, error) {
	if pt.poly == nil || pt.gen != pt.poly.gen {
		return nil, ErrInvalidPoint
	}
	return &pt.poly.points[pt.index], nil
}

// Position returns the point's current position.
func (pt Point) Position() (units.Vector, error) {
	pos, err := pt.resolve()
	if err != nil {
		return units.Vector{}, err
	}
	return *pos, nil
}

// Distance returns the Euclidean distance from the point to the given
// position.
func (pt Point) Distance(position units.Vector) (float64, error) {
	pos, err := pt.resolve()
	if err != nil {
		return 0, err
	}
	return pos.DistanceTo(position), nil
}

// RelativePosition returns the point's position as an offset from the
// chosen reference.
func (pt Point) RelativePosition(from ReferenceFrame) (units.Vector, error) {
	pos, err := pt.resolve()
	if err != nil {
		return units.Vector{}, err
	}
	ref, err := pt.reference(from)
	if err != nil {
		return units.Vector{}, err
	}
	return pos.Sub(ref), nil
}

// SetRelativePosition places the point so that its offset from the
// chosen reference equals the given value. The reference is evaluated
// before the point moves.
func (pt Point) SetRelativePosition(from ReferenceFrame, offset units.Vector) error {
	pos, err := pt.resolve()
	if err != nil {
		return err
	}
	ref, err := pt.reference(from)
	if err != nil {
		return err
	}
	*pos = ref.Add(offset)
	return nil
}

func (pt Point) reference(from ReferenceFrame) (units.Vector, error) {
	switch from {
	case FromPoint0:
		return pt.poly.points[0], nil
	case FromCentroid:
		return pt.poly.Centroid()
	default:
		return units.Vector{}, fmt.Errorf("unknown reference frame %d", from)
	}
}

// Move translates this point by the given offset. Other points and the
// polygon's stored rotation are unaffected.
func (pt Point) Move(offset units.Vector) error {
	pos, err := pt.resolve()
	if err != nil {
		return err
	}
	*pos = pos.Add(offset)
	return nil
}

// Remove deletes this point from its polygon; later points shift down
// by one index. The handle, and every other outstanding handle on the
// polygon, is invalid afterwards.
func (pt Point) Remove() error {
	if _, err := pt.resolve(); err != nil {
		return err
	}
	pt.poly.removeAt(pt.index)
	return nil
}
