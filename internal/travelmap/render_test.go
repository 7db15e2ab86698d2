package travelmap

import (
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	g "maragu.dev/gomponents"
)

func render(t *testing.T, n g.Node) string {
	t.Helper()
	var b strings.Builder
	require.NoError(t, n.Render(&b))
	return b.String()
}

func TestRender_Markers(t *testing.T) {
	a := DefaultAtlas()
	n, err := Render(a, Entrance(a))
	require.NoError(t, err)
	out := render(t, n)

	assert.Equal(t, 1, strings.Count(out, `id="`+HomeMarkerID+`"`))
	assert.Equal(t, len(a.Adventures()), strings.Count(out, `class="marker marker--adventure"`))
	for _, loc := range a.Adventures() {
		assert.Contains(t, out, `id="`+MarkerID(loc)+`"`)
		assert.Contains(t, out, `id="`+RouteID(loc)+`"`)
	}
	assert.NotContains(t, out, `id="marker-bangalore"`)
}

func TestRender_Scaffold(t *testing.T) {
	a := DefaultAtlas()
	n, err := Render(a, Entrance(a))
	require.NoError(t, err)
	out := render(t, n)

	assert.Contains(t, out, `viewBox="0 0 1000 500"`)
	assert.Contains(t, out, `id="`+DreamRouteID+`"`)
	assert.Contains(t, out, `stroke-dasharray="4 6"`)
	assert.Contains(t, out, `id="`+DreamLabelID+`"`)
	assert.Contains(t, out, `data-entrance="`)
	assert.Equal(t, len(Outlines), strings.Count(out, `id="outline-`))
	assert.Equal(t, len(GridLatitudes), strings.Count(out, "<line "))
	assert.Contains(t, out, `id="`+TooltipID+`"`)
	assert.NotContains(t, out, "map-tooltip__card")
	assert.NotContains(t, out, "data-trigger")
}

func TestRender_MarkerPostsItsID(t *testing.T) {
	a := testAtlas(t)
	n, err := Render(a, Entrance(a))
	require.NoError(t, err)
	out := render(t, n)

	assert.Contains(t, out, `hx-post="`+SelectPath+`"`)
	assert.Contains(t, out, `hx-vals="{&#34;id&#34;:&#34;ladakh&#34;}"`)
	assert.Contains(t, out, `hx-vals="{&#34;id&#34;:&#34;kili&#34;}"`)
}

func TestTooltip_Empty(t *testing.T) {
	out := render(t, Tooltip(testAtlas(t), Selection{}))

	assert.Contains(t, out, `id="map-tooltip"`)
	assert.Contains(t, out, `name="selected" value=""`)
	assert.NotContains(t, out, "map-tooltip__card")
}

func TestTooltip_Selected(t *testing.T) {
	a := testAtlas(t)
	out := render(t, Tooltip(a, Selection{}.Select("ladakh")))

	assert.Contains(t, out, "map-tooltip--open")
	assert.Contains(t, out, `value="ladakh"`)
	assert.Contains(t, out, "Ladakh")
	assert.Contains(t, out, "Motorcycle Expedition")
	assert.Contains(t, out, `href="https://example.com/ladakh"`)
	assert.Contains(t, out, `target="_blank"`)
	assert.Contains(t, out, `rel="noopener noreferrer"`)

	pt := a.Plot(a.byID["ladakh"])
	assert.Contains(t, out, fmt.Sprintf("left: %.2f%%; top: %.2f%%", pt.X/CanvasWidth*100, pt.Y/CanvasHeight*100))
}

func TestTooltip_NoLinkWithoutURL(t *testing.T) {
	out := render(t, Tooltip(testAtlas(t), Selection{}.Select("kili")))

	assert.Contains(t, out, "Kilimanjaro")
	assert.Contains(t, out, "5,895m")
	assert.NotContains(t, out, "map-tooltip__link")
}

func TestTooltip_UnknownOrHomeRendersEmpty(t *testing.T) {
	a := testAtlas(t)

	assert.NotContains(t, render(t, Tooltip(a, SelectionOf("atlantis"))), "map-tooltip__card")
	assert.NotContains(t, render(t, Tooltip(a, SelectionOf("home"))), "map-tooltip__card")
}

func TestHTML(t *testing.T) {
	out, err := HTML(Tooltip(testAtlas(t), Selection{}))
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(string(out), `<div id="map-tooltip"`))
}
