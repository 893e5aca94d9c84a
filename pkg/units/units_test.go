package units

import (
	"math"
	"testing"
)

func resetView() {
	SetView(View{ScreenWidth: 1280, ScreenHeight: 720, Width: 20})
}

func TestVectorAdd(t *testing.T) {
	a := NewVector(1, 2, SceneUnits)
	b := NewVector(3, 4, SceneUnits)
	got := a.Add(b)
	want := NewVector(4, 6, SceneUnits)
	if got != want {
		t.Errorf("Vector.Add() = %v, want %v", got, want)
	}
}

func TestVectorSub(t *testing.T) {
	a := NewVector(5, 7, SceneUnits)
	b := NewVector(2, 3, SceneUnits)
	got := a.Sub(b)
	want := NewVector(3, 4, SceneUnits)
	if got != want {
		t.Errorf("Vector.Sub() = %v, want %v", got, want)
	}
}

func TestVectorMagnitude(t *testing.T) {
	v := NewVector(3, 4, SceneUnits)
	if got := v.Magnitude(); got != 5 {
		t.Errorf("Vector.Magnitude() = %v, want 5", got)
	}
}

func TestVectorDistanceTo(t *testing.T) {
	a := NewVector(1, 1, SceneUnits)
	b := NewVector(4, 5, SceneUnits)
	if got := a.DistanceTo(b); got != 5 {
		t.Errorf("Vector.DistanceTo() = %v, want 5", got)
	}
}

func TestToScenePixels(t *testing.T) {
	resetView()
	// 1280px / 20 units = 64 px per unit.
	v := NewVector(2, 3, SceneUnits)
	got := v.To(ScenePixels)
	want := NewVector(128, 192, ScenePixels)
	if got != want {
		t.Errorf("To(ScenePixels) = %v, want %v", got, want)
	}
}

func TestToViewPercentage(t *testing.T) {
	resetView()
	// View is 20 units wide and 11.25 units tall at 16:9.
	v := NewVector(10, 5.625, SceneUnits)
	got := v.To(ViewPercentage)
	if math.Abs(got.X-0.5) > 1e-9 || math.Abs(got.Y-0.5) > 1e-9 {
		t.Errorf("To(ViewPercentage) = %v, want (0.5, 0.5)", got)
	}
}

func TestConversionRoundTrip(t *testing.T) {
	resetView()
	v := NewVector(3.5, -7.25, SceneUnits)
	for _, unit := range []Unit{ScenePixels, ViewPercentage} {
		back := v.To(unit).To(SceneUnits)
		if math.Abs(back.X-v.X) > 1e-9 || math.Abs(back.Y-v.Y) > 1e-9 {
			t.Errorf("round trip through %v = %v, want %v", unit, back, v)
		}
	}
}

func TestMixedUnitArithmetic(t *testing.T) {
	resetView()
	a := NewVector(1, 1, SceneUnits)
	b := NewVector(64, 64, ScenePixels) // one scene unit
	got := a.Add(b)
	want := NewVector(2, 2, SceneUnits)
	if math.Abs(got.X-want.X) > 1e-9 || math.Abs(got.Y-want.Y) > 1e-9 || got.Unit != SceneUnits {
		t.Errorf("mixed Add() = %v, want %v", got, want)
	}
}

func TestParseUnit(t *testing.T) {
	for _, unit := range []Unit{SceneUnits, ScenePixels, ViewPercentage} {
		parsed, ok := ParseUnit(unit.String())
		if !ok || parsed != unit {
			t.Errorf("ParseUnit(%q) = %v, %v", unit.String(), parsed, ok)
		}
	}
	if _, ok := ParseUnit("Furlongs"); ok {
		t.Error("ParseUnit accepted an unknown unit name")
	}
}
