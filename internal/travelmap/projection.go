package travelmap

import "math"

// Canvas dimensions of the virtual drawing surface. The SVG viewBox uses these
// and the browser scales it to the container.
const (
	CanvasWidth  = 1000.0
	CanvasHeight = 500.0
)

// Point is a plot point in virtual canvas units.
type Point struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// Projector maps geographic coordinates onto a fixed-size canvas using a
// linear longitude transform and a Mercator latitude transform.
type Projector struct {
	width  float64
	height float64
}

// NewProjector returns a projector for a canvas of the given size.
func NewProjector(width, height float64) Projector {
	return Projector{width: width, height: height}
}

// Width returns the canvas width.
func (p Projector) Width() float64 { return p.width }

// Height returns the canvas height.
func (p Projector) Height() float64 { return p.height }

// LngToX maps [-180, 180] linearly onto [0, width]. Input is not clamped.
func (p Projector) LngToX(lng float64) float64 {
	return (lng + 180) / 360 * p.width
}

// LatToY applies the Mercator transform and flips it so north is up. The
// equator lands on height/2 and ±85.05° on the canvas edges. Input is not
// clamped, so values near the poles diverge.
func (p Projector) LatToY(lat float64) float64 {
	rad := lat * math.Pi / 180
	merc := math.Log(math.Tan(math.Pi/4 + rad/2))
	return (1 - merc/math.Pi) / 2 * p.height
}

// Project converts a lat/lng pair into a plot point.
func (p Projector) Project(lat, lng float64) Point {
	return Point{X: p.LngToX(lng), Y: p.LatToY(lat)}
}
