package travelmap

import (
	"errors"
	"fmt"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// Category classifies a location on the map.
type Category string

const (
	CategoryHome           Category = "home"
	CategoryEducation      Category = "education"
	CategoryMotorcycle     Category = "motorcycle-expedition"
	CategoryMountaineering Category = "mountaineering"
)

// Label returns the human readable form, e.g. "Motorcycle Expedition".
func (c Category) Label() string {
	// Casers are stateful; one per call.
	return cases.Title(language.English).String(strings.ReplaceAll(string(c), "-", " "))
}

// Valid reports whether c is one of the known categories.
func (c Category) Valid() bool {
	switch c {
	case CategoryHome, CategoryEducation, CategoryMotorcycle, CategoryMountaineering:
		return true
	}
	return false
}

// Location is a named place drawn on the map.
type Location struct {
	ID          string   `json:"id"`
	Name        string   `json:"name"`
	Subtitle    string   `json:"subtitle,omitempty"`
	Lat         float64  `json:"lat"`
	Lng         float64  `json:"lng"`
	Category    Category `json:"category"`
	Icon        string   `json:"icon"`
	Description string   `json:"description"`
	URL         string   `json:"url,omitempty"`
}

// IsHome reports whether the location is the origin of all connector routes.
func (l Location) IsHome() bool { return l.Category == CategoryHome }

// LatLng is a bare waypoint.
type LatLng struct {
	Lat float64 `json:"lat"`
	Lng float64 `json:"lng"`
}

var (
	ErrNoHome        = errors.New("travelmap: no home location")
	ErrMultipleHomes = errors.New("travelmap: more than one home location")
	ErrOpenRoute     = errors.New("travelmap: dream route is not a closed loop")
)

// Atlas is the validated, immutable set of locations and the dream route.
type Atlas struct {
	projector  Projector
	home       Location
	adventures []Location
	byID       map[string]Location
	dreamRoute []LatLng
}

// NewAtlas validates the location set and dream route. Exactly one home
// location must exist, IDs must be unique and coordinates in range.
func NewAtlas(p Projector, locations []Location, dreamRoute []LatLng) (*Atlas, error) {
	a := &Atlas{
		projector: p,
		byID:      make(map[string]Location, len(locations)),
	}

	homes := 0
	for _, loc := range locations {
		if loc.ID == "" {
			return nil, fmt.Errorf("travelmap: location %q has no id", loc.Name)
		}
		if _, dup := a.byID[loc.ID]; dup {
			return nil, fmt.Errorf("travelmap: duplicate location id %q", loc.ID)
		}
		if !loc.Category.Valid() {
			return nil, fmt.Errorf("travelmap: location %q has unknown category %q", loc.ID, loc.Category)
		}
		if loc.Lat < -90 || loc.Lat > 90 || loc.Lng < -180 || loc.Lng > 180 {
			return nil, fmt.Errorf("travelmap: location %q out of range (%.4f, %.4f)", loc.ID, loc.Lat, loc.Lng)
		}
		a.byID[loc.ID] = loc

		if loc.IsHome() {
			homes++
			a.home = loc
			continue
		}
		a.adventures = append(a.adventures, loc)
	}

	switch {
	case homes == 0:
		return nil, ErrNoHome
	case homes > 1:
		return nil, ErrMultipleHomes
	}

	if len(dreamRoute) < 2 || dreamRoute[0] != dreamRoute[len(dreamRoute)-1] {
		return nil, ErrOpenRoute
	}
	a.dreamRoute = append([]LatLng(nil), dreamRoute...)

	return a, nil
}

// DefaultAtlas returns the compiled-in atlas. It panics if the static data
// violates an invariant.
func DefaultAtlas() *Atlas {
	a, err := NewAtlas(NewProjector(CanvasWidth, CanvasHeight), Locations, DreamRoute)
	if err != nil {
		panic(err)
	}
	return a
}

// Projector returns the projector the atlas plots with.
func (a *Atlas) Projector() Projector { return a.projector }

// Home returns the single home location.
func (a *Atlas) Home() Location { return a.home }

// Adventures returns every non-home location in configured order.
func (a *Atlas) Adventures() []Location {
	return append([]Location(nil), a.adventures...)
}

// Location looks up a location by id.
func (a *Atlas) Location(id string) (Location, bool) {
	loc, ok := a.byID[id]
	return loc, ok
}

// Plot projects a location onto the canvas.
func (a *Atlas) Plot(loc Location) Point {
	return a.projector.Project(loc.Lat, loc.Lng)
}

// DreamRoute returns a copy of the dream route waypoints.
func (a *Atlas) DreamRoute() []LatLng {
	return append([]LatLng(nil), a.dreamRoute...)
}
