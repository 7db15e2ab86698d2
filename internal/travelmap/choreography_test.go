package travelmap

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type recorder struct {
	tweens []Tween
}

func (r *recorder) Animate(t Tween) { r.tweens = append(r.tweens, t) }

type fakeClock struct{ t time.Time }

func (c *fakeClock) now() time.Time          { return c.t }
func (c *fakeClock) advance(d time.Duration) { c.t = c.t.Add(d) }

func TestChoreography_RunsOnce(t *testing.T) {
	a := testAtlas(t)
	rec := &recorder{}
	c := NewChoreography(a, rec)

	assert.True(t, c.ViewportEntered())
	first := len(rec.tweens)
	require.NotZero(t, first)

	// scroll away and back
	assert.False(t, c.ViewportEntered())
	assert.Equal(t, first, len(rec.tweens))
}

func TestChoreography_Phases(t *testing.T) {
	clock := &fakeClock{t: time.Date(2025, 7, 1, 0, 0, 0, 0, time.UTC)}
	c := NewChoreography(testAtlas(t), &recorder{}, WithClock(clock.now))

	assert.Equal(t, PhaseIdle, c.Phase())

	c.ViewportEntered()
	assert.Equal(t, PhaseAnimating, c.Phase())

	clock.advance(6 * time.Second)
	assert.Equal(t, PhaseAnimating, c.Phase())

	// dream route ends at 2.5 + 4.0
	clock.advance(500 * time.Millisecond)
	assert.Equal(t, PhaseDone, c.Phase())

	c.ViewportEntered()
	assert.Equal(t, PhaseDone, c.Phase())
}

func TestChoreography_Schedule(t *testing.T) {
	a := testAtlas(t)
	rec := &recorder{}
	NewChoreography(a, rec).ViewportEntered()

	byTarget := make(map[string]Tween, len(rec.tweens))
	for _, tw := range rec.tweens {
		byTarget[tw.Target] = tw
	}
	require.Len(t, rec.tweens, len(Outlines)+1+2*2+2)

	for i, o := range Outlines {
		tw := byTarget["#"+OutlineID(o)]
		assert.Equal(t, outlineDuration, tw.Duration)
		assert.InDelta(t, float64(i)*outlineStagger, tw.Delay, 1e-9)
	}

	home := byTarget["#"+HomeMarkerID]
	assert.Equal(t, 0.5, home.Delay)
	assert.Equal(t, "back.out(1.7)", home.Ease)
	assert.Equal(t, 1, home.Props["scale"])

	assert.InDelta(t, 0.8, byTarget["#route-ladakh"].Delay, 1e-9)
	assert.InDelta(t, 0.92, byTarget["#route-kili"].Delay, 1e-9)
	assert.Equal(t, 1.2, byTarget["#route-kili"].Duration)

	assert.InDelta(t, 1.5, byTarget["#marker-ladakh"].Delay, 1e-9)
	assert.InDelta(t, 1.6, byTarget["#marker-kili"].Delay, 1e-9)

	dream := byTarget["#"+DreamRevealID]
	assert.Equal(t, 2.5, dream.Delay)
	assert.Equal(t, 4.0, dream.Duration)
	assert.Equal(t, "none", dream.Ease)

	assert.Equal(t, 5.0, byTarget["#"+DreamLabelID].Delay)
}

func TestPhase_String(t *testing.T) {
	assert.Equal(t, "idle", PhaseIdle.String())
	assert.Equal(t, "animating", PhaseAnimating.String())
	assert.Equal(t, "done", PhaseDone.String())
}

func TestEntrance_TimelineJSON(t *testing.T) {
	a := testAtlas(t)
	tl := Entrance(a)

	raw, err := json.Marshal(tl)
	require.NoError(t, err)

	var decoded struct {
		Trigger struct {
			Threshold float64 `json:"threshold"`
		} `json:"trigger"`
		Tweens []Tween `json:"tweens"`
	}
	require.NoError(t, json.Unmarshal(raw, &decoded))

	assert.Equal(t, TriggerThreshold, decoded.Trigger.Threshold)
	assert.Len(t, decoded.Tweens, len(Outlines)+1+2*len(a.Adventures())+2)
	assert.Equal(t, tl.Tweens()[0].Target, decoded.Tweens[0].Target)
}

func TestTimeline_EmptyMarshalsArray(t *testing.T) {
	raw, err := json.Marshal(NewTimeline())
	require.NoError(t, err)
	assert.JSONEq(t, `{"trigger":{"threshold":0.3},"tweens":[]}`, string(raw))
}
