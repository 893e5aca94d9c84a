package transform

import (
	"errors"
	"fmt"
	"math"

	"github.com/hollowbeak/tessera/pkg/units"
)

var (
	// ErrIndexOutOfRange reports a point or segment index >= PointCount.
	ErrIndexOutOfRange = errors.New("index out of range")
	// ErrEmptyShape reports an operation that needs at least one point,
	// or a nearest-point search whose exclusion list covers every point.
	ErrEmptyShape = errors.New("polygon has no points")
	// ErrInvalidPoint reports use of a Point handle obtained before a
	// structural change (AddPoint, InsertPoint, Remove) on its polygon.
	ErrInvalidPoint = errors.New("stale point handle")
)

// DefaultTolerance is the segment containment tolerance used by callers
// that have no better value, in the polygon's own unit space.
const DefaultTolerance = 0.01

// Polygon is an ordered, cyclic sequence of points used as a collision
// shape. Point indices are dense: removing a point shifts every later
// index down by one, inserting shifts them up. Any structural change
// invalidates all outstanding Point and Segment handles.
//
// The stored rotation angle is bookkeeping only: it is updated by Rotate
// and SetRotation but never re-derived from point positions, so moving
// points by other means leaves it untouched.
//
// A Polygon is not safe for concurrent use.
type Polygon struct {
	unit   units.Unit
	points []units.Vector
	angle  float64
	gen    uint64
}

// NewPolygon returns an empty polygon whose points live in the given
// unit space.
func NewPolygon(unit units.Unit) *Polygon {
	return &Polygon{unit: unit}
}

// Unit returns the unit space the polygon's points are expressed in.
func (p *Polygon) Unit() units.Unit {
	return p.unit
}

// SetUnit re-expresses every stored point in the given unit space.
// Positions are preserved; only the representation changes.
func (p *Polygon) SetUnit(unit units.Unit) {
	if unit == p.unit {
		return
	}
	for i := range p.points {
		p.points[i] = p.points[i].To(unit)
	}
	p.unit = unit
}

// PointCount returns the number of points in the polygon.
func (p *Polygon) PointCount() int {
	return len(p.points)
}

// AddPoint appends a point and returns its handle. The position is
// converted to the polygon's unit space. Handles from before the call
// are invalidated.
func (p *Polygon) AddPoint(position units.Vector) Point {
	pt, _ := p.InsertPoint(position, len(p.points))
	return pt
}

// InsertPoint inserts a point so that its index is exactly the given
// index; points at or after it shift up by one. index == PointCount
// appends. Handles from before the call are invalidated.
func (p *Polygon) InsertPoint(position units.Vector, index int) (Point, error) {
	if index < 0 || index > len(p.points) {
		return Point{}, fmt.Errorf("%w: insert at %d with %d points", ErrIndexOutOfRange, index, len(p.points))
	}
	pos := position.To(p.unit)
	p.points = append(p.points, units.Vector{})
	copy(p.points[index+1:], p.points[index:])
	p.points[index] = pos
	p.gen++
	return Point{poly: p, index: index, gen: p.gen}, nil
}

// Get returns a handle to the point at the given index.
func (p *Polygon) Get(index int) (Point, error) {
	if index < 0 || index >= len(p.points) {
		return Point{}, fmt.Errorf("%w: point %d of %d", ErrIndexOutOfRange, index, len(p.points))
	}
	return Point{poly: p, index: index, gen: p.gen}, nil
}

// Points returns handles to all points in index order. The handles are
// invalidated by any subsequent structural change.
func (p *Polygon) Points() []Point {
	pts := make([]Point, len(p.points))
	for i := range pts {
		pts[i] = Point{poly: p, index: i, gen: p.gen}
	}
	return pts
}

// removeAt deletes the point at index; later points shift down by one.
func (p *Polygon) removeAt(index int) {
	p.points = append(p.points[:index], p.points[index+1:]...)
	p.gen++
}

// Centroid returns the arithmetic mean of all point positions.
func (p *Polygon) Centroid() (units.Vector, error) {
	if len(p.points) == 0 {
		return units.Vector{}, fmt.Errorf("centroid: %w", ErrEmptyShape)
	}
	sum := units.Vector{Unit: p.unit}
	for _, pt := range p.points {
		sum.X += pt.X
		sum.Y += pt.Y
	}
	return sum.Scale(1 / float64(len(p.points))), nil
}

// Segment is the transient edge from point Index to the next point in
// cyclic order. It is valid until the next structural change.
type Segment struct {
	Index         int
	First, Second Point
}

// Segment returns edge index, the pair (points[index], points[index+1
// mod n]).
func (p *Polygon) Segment(index int) (Segment, error) {
	if index < 0 || index >= len(p.points) {
		return Segment{}, fmt.Errorf("%w: segment %d of %d", ErrIndexOutOfRange, index, len(p.points))
	}
	next := (index + 1) % len(p.points)
	return Segment{
		Index:  index,
		First:  Point{poly: p, index: index, gen: p.gen},
		Second: Point{poly: p, index: next, gen: p.gen},
	}, nil
}

// SegmentAngle returns the direction of segment index in degrees in
// [0, 360), where 0 points up on screen and the angle grows clockwise.
func (p *Polygon) SegmentAngle(index int) (float64, error) {
	a, b, err := p.segmentEnds(index)
	if err != nil {
		return 0, err
	}
	deg := math.Atan2(b.X-a.X, -(b.Y - a.Y)) * 180 / math.Pi
	if deg < 0 {
		deg += 360
	}
	return deg, nil
}

// SegmentLength returns the length of segment index in the polygon's
// unit space.
func (p *Polygon) SegmentLength(index int) (float64, error) {
	a, b, err := p.segmentEnds(index)
	if err != nil {
		return 0, err
	}
	return a.DistanceTo(b), nil
}

func (p *Polygon) segmentEnds(index int) (units.Vector, units.Vector, error) {
	if index < 0 || index >= len(p.points) {
		return units.Vector{}, units.Vector{}, fmt.Errorf("%w: segment %d of %d", ErrIndexOutOfRange, index, len(p.points))
	}
	return p.points[index], p.points[(index+1)%len(p.points)], nil
}

// ClosestSegment returns the segment with the smallest point-to-segment
// distance from the given position. Equidistant segments resolve to the
// lowest index.
func (p *Polygon) ClosestSegment(position units.Vector) (Segment, error) {
	if len(p.points) == 0 {
		return Segment{}, fmt.Errorf("closest segment: %w", ErrEmptyShape)
	}
	q := position.To(p.unit)
	best := 0
	bestDist := math.Inf(1)
	for i := range p.points {
		a, b := p.points[i], p.points[(i+1)%len(p.points)]
		if d := pointSegmentDistance(q, a, b); d < bestDist {
			best, bestDist = i, d
		}
	}
	seg, err := p.Segment(best)
	if err != nil {
		return Segment{}, err
	}
	return seg, nil
}

// ClosestPoint returns the point nearest to the given position among
// those whose indices are not in excluded; ties resolve to the lowest
// index. With neighbor set, it instead returns whichever of the two
// points adjacent to that nearest point is closer to the position
// (the exclusion list does not apply to this second step).
func (p *Polygon) ClosestPoint(position units.Vector, neighbor bool, excluded ...int) (Point, error) {
	q := position.To(p.unit)
	best := -1
	bestDist := math.Inf(1)
	for i, pt := range p.points {
		if indexIn(i, excluded) {
			continue
		}
		if d := pt.DistanceTo(q); d < bestDist {
			best, bestDist = i, d
		}
	}
	if best < 0 {
		return Point{}, fmt.Errorf("closest point: %w", ErrEmptyShape)
	}
	if neighbor {
		n := len(p.points)
		lo := (best + n - 1) % n
		hi := (best + 1) % n
		if lo > hi {
			lo, hi = hi, lo
		}
		best = lo
		if p.points[hi].DistanceTo(q) < p.points[lo].DistanceTo(q) {
			best = hi
		}
	}
	return Point{poly: p, index: best, gen: p.gen}, nil
}

// SegmentContainingPoint returns the first segment whose distance to the
// position, clamped to the segment's extent, is within tolerance. The
// tolerance is measured in the polygon's unit space.
func (p *Polygon) SegmentContainingPoint(position units.Vector, tolerance float64) (Segment, bool) {
	q := position.To(p.unit)
	for i := range p.points {
		a, b := p.points[i], p.points[(i+1)%len(p.points)]
		if pointSegmentDistance(q, a, b) <= tolerance {
			seg, err := p.Segment(i)
			if err != nil {
				return Segment{}, false
			}
			return seg, true
		}
	}
	return Segment{}, false
}

// PointAroundPosition returns the first point whose per-axis distance
// from the position is within tolerance on both axes.
func (p *Polygon) PointAroundPosition(position, tolerance units.Vector) (Point, bool) {
	q := position.To(p.unit)
	tol := tolerance.To(p.unit)
	for i, pt := range p.points {
		if math.Abs(pt.X-q.X) <= tol.X && math.Abs(pt.Y-q.Y) <= tol.Y {
			return Point{poly: p, index: i, gen: p.gen}, true
		}
	}
	return Point{}, false
}

// CentroidAroundPosition reports whether the centroid's per-axis
// distance from the position is within tolerance on both axes.
func (p *Polygon) CentroidAroundPosition(position, tolerance units.Vector) (bool, error) {
	c, err := p.Centroid()
	if err != nil {
		return false, err
	}
	q := position.To(p.unit)
	tol := tolerance.To(p.unit)
	return math.Abs(c.X-q.X) <= tol.X && math.Abs(c.Y-q.Y) <= tol.Y, nil
}

// Position returns the position of point 0, the polygon's anchor. An
// empty polygon has no anchor and reports the zero vector.
func (p *Polygon) Position() units.Vector {
	if len(p.points) == 0 {
		return units.Vector{Unit: p.unit}
	}
	return p.points[0]
}

// SetPosition moves the whole polygon so that point 0 lands on the
// given position.
func (p *Polygon) SetPosition(position units.Vector) {
	p.Move(position.To(p.unit).Sub(p.Position()))
}

// SetPositionFromCentroid moves the whole polygon so that its centroid
// lands on the given position.
func (p *Polygon) SetPositionFromCentroid(position units.Vector) error {
	c, err := p.Centroid()
	if err != nil {
		return err
	}
	p.Move(position.To(p.unit).Sub(c))
	return nil
}

// Move translates every point by the given offset. The stored rotation
// angle is unchanged.
func (p *Polygon) Move(offset units.Vector) {
	off := offset.To(p.unit)
	for i := range p.points {
		p.points[i].X += off.X
		p.points[i].Y += off.Y
	}
}

// Rotate adds angle (degrees, clockwise on screen, matching
// SegmentAngle) to the stored rotation and rotates every point around
// origin by that amount.
func (p *Polygon) Rotate(angle float64, origin units.Vector) {
	p.angle = normalizeDegrees(p.angle + angle)
	rad := angle * math.Pi / 180
	sin, cos := math.Sincos(rad)
	o := origin.To(p.unit)
	for i := range p.points {
		dx := p.points[i].X - o.X
		dy := p.points[i].Y - o.Y
		p.points[i].X = o.X + dx*cos - dy*sin
		p.points[i].Y = o.Y + dx*sin + dy*cos
	}
}

// SetRotation rotates the polygon around origin so that the stored
// rotation becomes the given angle.
func (p *Polygon) SetRotation(angle float64, origin units.Vector) {
	p.Rotate(angle-p.angle, origin)
}

// Rotation returns the stored rotation angle in [0, 360). See the type
// comment for the bookkeeping caveat.
func (p *Polygon) Rotation() float64 {
	return p.angle
}

func normalizeDegrees(a float64) float64 {
	a = math.Mod(a, 360)
	if a < 0 {
		a += 360
	}
	return a
}

// pointSegmentDistance returns the distance from q to the segment ab,
// clamping the projection to the segment's extent. All three vectors
// must share a unit space.
func pointSegmentDistance(q, a, b units.Vector) float64 {
	abx := b.X - a.X
	aby := b.Y - a.Y
	lenSq := abx*abx + aby*aby
	if lenSq == 0 {
		return math.Hypot(q.X-a.X, q.Y-a.Y)
	}
	t := ((q.X-a.X)*abx + (q.Y-a.Y)*aby) / lenSq
	t = math.Max(0, math.Min(1, t))
	return math.Hypot(q.X-(a.X+t*abx), q.Y-(a.Y+t*aby))
}

func indexIn(i int, indices []int) bool {
	for _, x := range indices {
		if x == i {
			return true
		}
	}
	return false
}
