package travelmap

import (
	"encoding/json"
	"fmt"
	"html/template"
	"strings"

	g "maragu.dev/gomponents"
	h "maragu.dev/gomponents/html"
)

// Element ids shared by the SVG and the entrance timeline.
const (
	ContainerID   = "travel-map"
	TooltipID     = "map-tooltip"
	HomeMarkerID  = "home-marker"
	DreamRouteID  = "dream-route"
	DreamRevealID = "dream-route-reveal"
	DreamLabelID  = "dream-route-label"
	dreamMaskID   = "dream-route-mask"
)

// Fragment endpoints the markers and the tooltip talk to.
const (
	SelectPath = "/adventures/select"
	ClearPath  = "/adventures/clear"
)

func OutlineID(o Outline) string   { return "outline-" + o.Name }
func RouteID(loc Location) string  { return "route-" + loc.ID }
func MarkerID(loc Location) string { return "marker-" + loc.ID }

// Render builds the map container: the SVG scaffold, the empty tooltip and
// the entrance timeline the client replays on first viewport entry.
func Render(a *Atlas, tl *Timeline) (g.Node, error) {
	entrance, err := json.Marshal(tl)
	if err != nil {
		return nil, fmt.Errorf("encode entrance timeline: %w", err)
	}

	return h.Div(
		h.ID(ContainerID),
		h.Class("travel-map relative"),
		g.Attr("data-entrance", string(entrance)),
		svg(a),
		Tooltip(a, Selection{}),
	), nil
}

func svg(a *Atlas) g.Node {
	p := a.Projector()
	return g.El("svg",
		g.Attr("viewBox", fmt.Sprintf("0 0 %g %g", p.Width(), p.Height())),
		g.Attr("preserveAspectRatio", "xMidYMid meet"),
		g.Attr("role", "img"),
		g.Attr("aria-label", "Map of adventures, connected to home"),
		h.Class("travel-map__svg w-full h-auto"),
		g.El("defs",
			g.El("mask", h.ID(dreamMaskID),
				g.El("path", drawOn(
					h.ID(DreamRevealID),
					g.Attr("d", a.DreamRoutePath()),
					g.Attr("fill", "none"),
					g.Attr("stroke", "white"),
					g.Attr("stroke-width", "4"),
				)...),
			),
		),
		gridlines(a),
		outlines(),
		routes(a),
		dreamRoute(a),
		homeMarker(a),
		g.Map(a.adventures, func(loc Location) g.Node { return adventureMarker(a, loc) }),
	)
}

// drawOn hides a stroke so the entrance can animate its offset back to zero.
func drawOn(nodes ...g.Node) []g.Node {
	return append(nodes,
		g.Attr("pathLength", "1"),
		g.Attr("stroke-dasharray", "1"),
		g.Attr("stroke-dashoffset", "1"),
	)
}

func gridlines(a *Atlas) g.Node {
	w := a.Projector().Width()
	return g.El("g", h.Class("travel-map__grid"),
		g.Map(a.Gridlines(), func(line Gridline) g.Node {
			return g.El("line",
				g.Attr("x1", "0"),
				g.Attr("x2", fmt.Sprintf("%g", w)),
				g.Attr("y1", fmt.Sprintf("%.2f", line.Y)),
				g.Attr("y2", fmt.Sprintf("%.2f", line.Y)),
				g.Attr("data-lat", fmt.Sprintf("%g", line.Lat)),
			)
		}),
	)
}

func outlines() g.Node {
	return g.El("g", h.Class("travel-map__land"),
		g.Map(Outlines, func(o Outline) g.Node {
			return g.El("path", drawOn(
				h.ID(OutlineID(o)),
				g.Attr("d", o.Path),
				g.Attr("opacity", "0"),
			)...)
		}),
	)
}

func routes(a *Atlas) g.Node {
	return g.El("g", h.Class("travel-map__routes"),
		g.Map(a.Routes(), func(r Route) g.Node {
			return g.El("path", drawOn(
				h.ID(RouteID(r.Location)),
				g.Attr("d", r.Curve.Path()),
				g.Attr("fill", "none"),
			)...)
		}),
	)
}

func dreamRoute(a *Atlas) g.Node {
	label := a.Projector().Project(-42, -25)
	return g.El("g", h.Class("travel-map__dream"),
		g.El("path",
			h.ID(DreamRouteID),
			g.Attr("d", a.DreamRoutePath()),
			g.Attr("fill", "none"),
			g.Attr("stroke-dasharray", "4 6"),
			g.Attr("mask", "url(#"+dreamMaskID+")"),
		),
		g.El("text",
			h.ID(DreamLabelID),
			g.Attr("x", fmt.Sprintf("%.2f", label.X)),
			g.Attr("y", fmt.Sprintf("%.2f", label.Y)),
			g.Attr("opacity", "0"),
			g.Text("The dream: around the world on two wheels"),
		),
	)
}

func homeMarker(a *Atlas) g.Node {
	home := a.Home()
	pt := a.Plot(home)
	return g.El("g",
		h.ID(HomeMarkerID),
		h.Class("marker marker--home"),
		g.Attr("transform", translate(pt)),
		g.El("circle", h.Class("marker__pulse"), g.Attr("r", "12")),
		g.El("circle", h.Class("marker__dot"), g.Attr("r", "5")),
		g.El("text", h.Class("marker__label"), g.Attr("y", "22"), g.Text(home.Name)),
	)
}

func adventureMarker(a *Atlas, loc Location) g.Node {
	// a string map always encodes
	vals, _ := json.Marshal(map[string]string{"id": loc.ID})
	return g.El("g",
		h.ID(MarkerID(loc)),
		h.Class("marker marker--adventure"),
		g.Attr("transform", translate(a.Plot(loc))),
		g.Attr("role", "button"),
		g.Attr("tabindex", "0"),
		g.Attr("aria-label", loc.Name),
		g.Attr("data-cursor-hover", ""),
		g.Attr("data-category", string(loc.Category)),
		g.Attr("hx-post", SelectPath),
		g.Attr("hx-vals", string(vals)),
		g.Attr("hx-include", "#"+TooltipID),
		g.Attr("hx-target", "#"+TooltipID),
		g.Attr("hx-swap", "outerHTML"),
		g.Attr("hx-trigger", "click, keyup[key=='Enter']"),
		g.El("circle", h.Class("marker__dot"), g.Attr("r", "9")),
		g.El("text", h.Class("marker__icon"), g.Attr("dy", "4"), g.Text(loc.Icon)),
		g.El("text", h.Class("marker__label"), g.Attr("y", "-14"), g.Text(loc.Name)),
	)
}

// Tooltip renders the overlay for sel. The container is always present so
// HTMX can swap it; it has content only while a location is selected.
func Tooltip(a *Atlas, sel Selection) g.Node {
	id, _ := sel.ID()
	loc, ok := a.Location(id)
	if !ok || loc.IsHome() {
		return h.Div(
			h.ID(TooltipID),
			h.Class("map-tooltip"),
			h.Input(h.Type("hidden"), h.Name("selected"), h.Value("")),
		)
	}

	p := a.Projector()
	pt := a.Plot(loc)
	return h.Div(
		h.ID(TooltipID),
		h.Class("map-tooltip map-tooltip--open"),
		h.Input(h.Type("hidden"), h.Name("selected"), h.Value(loc.ID)),
		h.Div(
			h.Class("map-tooltip__card"),
			h.Style(fmt.Sprintf("left: %.2f%%; top: %.2f%%", pt.X/p.Width()*100, pt.Y/p.Height()*100)),
			h.Button(
				h.Type("button"),
				h.Class("map-tooltip__close"),
				g.Attr("aria-label", "Close"),
				g.Attr("hx-post", ClearPath),
				g.Attr("hx-target", "#"+TooltipID),
				g.Attr("hx-swap", "outerHTML"),
				g.Text("×"),
			),
			h.Span(h.Class("map-tooltip__icon"), g.Text(loc.Icon)),
			h.P(h.Class("map-tooltip__category"), g.Text(loc.Category.Label())),
			h.H4(h.Class("map-tooltip__name"), g.Text(loc.Name)),
			g.If(loc.Subtitle != "", h.P(h.Class("map-tooltip__subtitle"), g.Text(loc.Subtitle))),
			h.P(h.Class("map-tooltip__desc"), g.Text(loc.Description)),
			g.If(loc.URL != "", h.A(
				h.Class("map-tooltip__link"),
				h.Href(loc.URL),
				h.Target("_blank"),
				h.Rel("noopener noreferrer"),
				g.Text("Watch the ride ↗"),
			)),
		),
	)
}

// HTML renders a node for embedding in an html/template page.
func HTML(n g.Node) (template.HTML, error) {
	var b strings.Builder
	if err := n.Render(&b); err != nil {
		return "", err
	}
	return template.HTML(b.String()), nil
}

func translate(p Point) string {
	return fmt.Sprintf("translate(%.2f %.2f)", p.X, p.Y)
}
