package transform

import (
	"math"
	"testing"

	"github.com/hollowbeak/tessera/pkg/units"
)

func TestPointDistance(t *testing.T) {
	p := square()
	pt, _ := p.Get(0)
	d, err := pt.Distance(vec(3, 4))
	if err != nil {
		t.Fatalf("Distance() error: %v", err)
	}
	if d != 5 {
		t.Errorf("Distance((3,4)) = %v, want 5", d)
	}
}

func TestPointMove(t *testing.T) {
	p := square()
	pt, _ := p.Get(1)
	if err := pt.Move(vec(2, 3)); err != nil {
		t.Fatalf("Move() error: %v", err)
	}
	pos, _ := pt.Position()
	if pos != vec(12, 3) {
		t.Errorf("point 1 at %v after Move, want (12,3)", pos)
	}

	// Moving one point leaves the others and the stored rotation alone.
	other, _ := p.Get(0)
	opos, _ := other.Position()
	if opos != vec(0, 0) {
		t.Errorf("point 0 at %v, want (0,0)", opos)
	}
	if p.Rotation() != 0 {
		t.Errorf("Rotation() = %v after point move, want 0", p.Rotation())
	}
}

func TestRelativePositionFromPoint0(t *testing.T) {
	p := square()
	pt, _ := p.Get(2)
	rel, err := pt.RelativePosition(FromPoint0)
	if err != nil {
		t.Fatalf("RelativePosition() error: %v", err)
	}
	if rel != vec(10, 10) {
		t.Errorf("RelativePosition(FromPoint0) = %v, want (10,10)", rel)
	}

	if err := pt.SetRelativePosition(FromPoint0, vec(3, 3)); err != nil {
		t.Fatalf("SetRelativePosition() error: %v", err)
	}
	pos, _ := pt.Position()
	if pos != vec(3, 3) {
		t.Errorf("point 2 at %v after SetRelativePosition, want (3,3)", pos)
	}
}

func TestRelativePositionFromCentroid(t *testing.T) {
	p := square()
	pt, _ := p.Get(0)
	rel, err := pt.RelativePosition(FromCentroid)
	if err != nil {
		t.Fatalf("RelativePosition() error: %v", err)
	}
	if rel != vec(-5, -5) {
		t.Errorf("RelativePosition(FromCentroid) = %v, want (-5,-5)", rel)
	}
}

func TestSetRelativePositionEvaluatesReferenceFirst(t *testing.T) {
	// Moving point 0 relative to itself must use its position from
	// before the move.
	p := square()
	pt, _ := p.Get(0)
	if err := pt.SetRelativePosition(FromPoint0, vec(1, 1)); err != nil {
		t.Fatalf("SetRelativePosition() error: %v", err)
	}
	pos, _ := pt.Position()
	if pos != vec(1, 1) {
		t.Errorf("point 0 at %v, want (1,1)", pos)
	}

	// Same for the centroid: it is computed before the point moves.
	p = square()
	pt, _ = p.Get(0)
	if err := pt.SetRelativePosition(FromCentroid, vec(0, 0)); err != nil {
		t.Fatalf("SetRelativePosition() error: %v", err)
	}
	pos, _ = pt.Position()
	if !vecApprox(pos, vec(5, 5), 1e-9) {
		t.Errorf("point 0 at %v, want the old centroid (5,5)", pos)
	}
}

func TestRelativeRoundTrip(t *testing.T) {
	p := square()
	for _, frame := range []ReferenceFrame{FromPoint0, FromCentroid} {
		pt, _ := p.Get(2)
		rel, err := pt.RelativePosition(frame)
		if err != nil {
			t.Fatalf("RelativePosition() error: %v", err)
		}
		if err := pt.SetRelativePosition(frame, rel); err != nil {
			t.Fatalf("SetRelativePosition() error: %v", err)
		}
		pos, _ := pt.Position()
		if !vecApprox(pos, vec(10, 10), 1e-9) {
			t.Errorf("point 2 at %v after frame %d round trip, want (10,10)", pos, frame)
		}
	}
}

func TestRemoveRenumbers(t *testing.T) {
	p := square()
	pt, _ := p.Get(1)
	if err := pt.Remove(); err != nil {
		t.Fatalf("Remove() error: %v", err)
	}
	if p.PointCount() != 3 {
		t.Fatalf("PointCount() = %d, want 3", p.PointCount())
	}
	moved, _ := p.Get(1)
	pos, _ := moved.Position()
	if pos != vec(10, 10) {
		t.Errorf("point 1 at %v after remove, want (10,10)", pos)
	}
}

func TestPointDistanceMixedUnits(t *testing.T) {
	units.SetView(units.View{ScreenWidth: 1280, ScreenHeight: 720, Width: 20})
	p := NewPolygon(units.SceneUnits)
	p.AddPoint(vec(0, 0))
	pt, _ := p.Get(0)
	// 192 pixels is 3 scene units at 64 px per unit.
	d, err := pt.Distance(units.NewVector(192, 0, units.ScenePixels))
	if err != nil {
		t.Fatalf("Distance() error: %v", err)
	}
	if math.Abs(d-3) > 1e-9 {
		t.Errorf("Distance() = %v, want 3", d)
	}
}
