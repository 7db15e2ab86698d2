package travelmap

import (
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConnector_HomeToLadakh(t *testing.T) {
	p := NewProjector(CanvasWidth, CanvasHeight)
	home := p.Project(12.97, 77.59)
	ladakh := p.Project(34.15, 77.57)

	c := Connector(home, ladakh)

	assert.Equal(t, home, c.Start)
	assert.Equal(t, ladakh, c.End)
	assert.Less(t, c.Control.Y, c.Start.Y)
	assert.Less(t, c.Control.Y, c.End.Y)

	path := c.Path()
	assert.True(t, strings.HasPrefix(path, fmt.Sprintf("M%.2f,%.2f Q", home.X, home.Y)), path)
	assert.True(t, strings.HasSuffix(path, fmt.Sprintf(" %.2f,%.2f", ladakh.X, ladakh.Y)), path)
}

func TestConnector_BowsUpwardWhenSeparated(t *testing.T) {
	pairs := [][2]Point{
		{{100, 300}, {400, 300}},
		{{400, 100}, {100, 300}},
		{{700, 250}, {690, 120}},
	}

	for _, pair := range pairs {
		c := Connector(pair[0], pair[1])
		assert.Less(t, c.Control.Y, pair[0].Y)
		assert.Less(t, c.Control.Y, pair[1].Y)
		assert.Equal(t, (pair[0].X+pair[1].X)/2, c.Control.X)
	}
}

func TestConnector_LevelEndpointsLiftByArcFraction(t *testing.T) {
	c := Connector(Point{100, 300}, Point{400, 300})

	assert.InDelta(t, 300-300*ArcLift, c.Control.Y, 1e-9)
}

func TestConnector_VerticalDegeneratesToLine(t *testing.T) {
	c := Connector(Point{500, 400}, Point{500, 100})

	assert.Equal(t, 500.0, c.Control.X)
	assert.Equal(t, 100.0, c.Control.Y)
}

func TestPolyline(t *testing.T) {
	assert.Equal(t, "", Polyline(nil))
	assert.Equal(t, "M1.00,2.00", Polyline([]Point{{1, 2}}))
	assert.Equal(t, "M1.00,2.00 L3.50,4.25 L1.00,2.00", Polyline([]Point{{1, 2}, {3.5, 4.25}, {1, 2}}))
}

func TestAtlas_RoutesStartAtHome(t *testing.T) {
	a := testAtlas(t)
	home := a.Plot(a.Home())

	routes := a.Routes()
	require.Len(t, routes, 2)
	for _, r := range routes {
		assert.Equal(t, home, r.Curve.Start)
		assert.Equal(t, a.Plot(r.Location), r.Curve.End)
	}
	assert.Equal(t, "ladakh", routes[0].Location.ID)
	assert.Equal(t, "kili", routes[1].Location.ID)
}

func TestAtlas_DreamRoutePathFollowsWaypoints(t *testing.T) {
	a := testAtlas(t)
	p := a.Projector()

	path := a.DreamRoutePath()
	segments := strings.Split(path, " ")
	require.Len(t, segments, len(testRoute))

	first := p.Project(testRoute[0].Lat, testRoute[0].Lng)
	assert.Equal(t, fmt.Sprintf("M%.2f,%.2f", first.X, first.Y), segments[0])
	assert.Equal(t, fmt.Sprintf("L%.2f,%.2f", first.X, first.Y), segments[len(segments)-1])
}

func TestAtlas_Gridlines(t *testing.T) {
	lines := testAtlas(t).Gridlines()

	require.Len(t, lines, len(GridLatitudes))
	for _, l := range lines {
		if l.Lat == 0 {
			assert.InDelta(t, CanvasHeight/2, l.Y, 1e-9)
		}
	}
}
