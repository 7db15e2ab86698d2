package travelmap

import (
	"fmt"
	"math"
	"strings"
)

// ArcLift is the fraction of the horizontal distance the connector control
// point is lifted above the higher endpoint.
const ArcLift = 0.08

// Curve is a quadratic Bézier from Start to End.
type Curve struct {
	Start   Point
	Control Point
	End     Point
}

// Connector returns the arc from one plot point to another. The control point
// sits at the horizontal midpoint, lifted to the higher endpoint and then a
// further ArcLift of |dx|, so the arc always bows upward unless dx is zero.
func Connector(from, to Point) Curve {
	mid := Point{X: (from.X + to.X) / 2, Y: (from.Y + to.Y) / 2}
	dx := math.Abs(to.X - from.X)
	dy := math.Abs(to.Y - from.Y)

	return Curve{
		Start:   from,
		Control: Point{X: mid.X, Y: mid.Y - dy/2 - dx*ArcLift},
		End:     to,
	}
}

// Path renders the curve as SVG path data.
func (c Curve) Path() string {
	return fmt.Sprintf("M%.2f,%.2f Q%.2f,%.2f %.2f,%.2f",
		c.Start.X, c.Start.Y, c.Control.X, c.Control.Y, c.End.X, c.End.Y)
}

// Polyline renders the points in order as one continuous SVG path.
func Polyline(points []Point) string {
	if len(points) == 0 {
		return ""
	}

	var b strings.Builder
	fmt.Fprintf(&b, "M%.2f,%.2f", points[0].X, points[0].Y)
	for _, p := range points[1:] {
		fmt.Fprintf(&b, " L%.2f,%.2f", p.X, p.Y)
	}
	return b.String()
}

// Route is a connector from home to one adventure.
type Route struct {
	Location Location
	Curve    Curve
}

// Routes returns one connector per adventure, in configured order.
func (a *Atlas) Routes() []Route {
	home := a.Plot(a.home)
	routes := make([]Route, 0, len(a.adventures))
	for _, loc := range a.adventures {
		routes = append(routes, Route{Location: loc, Curve: Connector(home, a.Plot(loc))})
	}
	return routes
}

// DreamRoutePath projects the dream route waypoints in their fixed order.
func (a *Atlas) DreamRoutePath() string {
	points := make([]Point, len(a.dreamRoute))
	for i, wp := range a.dreamRoute {
		points[i] = a.projector.Project(wp.Lat, wp.Lng)
	}
	return Polyline(points)
}

// Gridline is a horizontal parallel at a fixed latitude.
type Gridline struct {
	Lat float64
	Y   float64
}

// Gridlines projects GridLatitudes onto the canvas.
func (a *Atlas) Gridlines() []Gridline {
	lines := make([]Gridline, len(GridLatitudes))
	for i, lat := range GridLatitudes {
		lines[i] = Gridline{Lat: lat, Y: a.projector.LatToY(lat)}
	}
	return lines
}
