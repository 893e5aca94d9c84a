// Package units provides the tagged coordinate spaces of the engine and a
// 2D vector value type that converts between them.
package units

// Unit tags which coordinate space a vector is expressed in.
type Unit uint8

const (
	// SceneUnits is the logical world space; one unit is one world cell.
	SceneUnits Unit = iota
	// ScenePixels is the world space measured in screen pixels.
	ScenePixels
	// ViewPercentage expresses positions as a fraction of the view
	// rectangle: (1, 1) is the bottom-right corner of the view.
	ViewPercentage
)

// String returns the unit name as used in config and shape files.
func (u Unit) String() string {
	switch u {
	case SceneUnits:
		return "SceneUnits"
	case ScenePixels:
		return "ScenePixels"
	case ViewPercentage:
		return "ViewPercentage"
	default:
		return "Unknown"
	}
}

// ParseUnit converts a unit name back to its Unit tag.
func ParseUnit(name string) (Unit, bool) {
	switch name {
	case "SceneUnits":
		return SceneUnits, true
	case "ScenePixels":
		return ScenePixels, true
	case "ViewPercentage":
		return ViewPercentage, true
	default:
		return SceneUnits, false
	}
}

// View describes the screen and how many scene units it spans. All unit
// conversions are derived from it.
type View struct {
	ScreenWidth  float64 // pixels
	ScreenHeight float64 // pixels
	Width        float64 // scene units spanned horizontally
}

// Height returns the vertical extent of the view in scene units,
// preserving the screen aspect ratio.
func (v View) Height() float64 {
	return v.Width * v.ScreenHeight / v.ScreenWidth
}

// PixelsPerUnit returns the scale between scene units and scene pixels.
func (v View) PixelsPerUnit() float64 {
	return v.ScreenWidth / v.Width
}

var current = View{ScreenWidth: 1280, ScreenHeight: 720, Width: 20}

// SetView installs the view used for all subsequent conversions.
// Call once at startup; conversions are not safe against concurrent
// view changes.
func SetView(v View) {
	current = v
}

// CurrentView returns the view conversions are based on.
func CurrentView() View {
	return current
}
