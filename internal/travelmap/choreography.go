package travelmap

import (
	"sync"
	"time"
)

// Phase is the state of the entrance choreography.
type Phase int

const (
	PhaseIdle Phase = iota
	PhaseAnimating
	PhaseDone
)

func (p Phase) String() string {
	switch p {
	case PhaseIdle:
		return "idle"
	case PhaseAnimating:
		return "animating"
	case PhaseDone:
		return "done"
	}
	return "unknown"
}

// Props is the property set a tween animates towards.
type Props map[string]any

// Tween is one scheduled animation. Durations and delays are seconds from the
// timeline origin.
type Tween struct {
	Target   string  `json:"target"`
	Props    Props   `json:"props"`
	Duration float64 `json:"duration"`
	Ease     string  `json:"ease"`
	Delay    float64 `json:"delay"`
}

// End returns when the tween finishes, relative to the timeline origin.
func (t Tween) End() float64 { return t.Delay + t.Duration }

// Animator schedules tweens. It must not block.
type Animator interface {
	Animate(t Tween)
}

// Schedule constants, in seconds from the timeline origin.
const (
	outlineDuration = 2.0
	outlineStagger  = 0.15

	homeDelay    = 0.5
	homeDuration = 0.6

	routeDelay    = 0.8
	routeDuration = 1.2
	routeStagger  = 0.12

	markerDelay    = 1.5
	markerDuration = 0.5
	markerStagger  = 0.1

	dreamDelay    = 2.5
	dreamDuration = 4.0

	labelDelay    = 5.0
	labelDuration = 1.0
)

// Choreography runs the one-shot entrance sequence for a single map mount.
// On the server it plans the sequence into a Timeline at render time; the
// browser replays that timeline and enforces the first-intersection guard.
type Choreography struct {
	atlas    *Atlas
	animator Animator
	now      func() time.Time

	mu      sync.Mutex
	started time.Time
	length  time.Duration
	fired   bool
}

// ChoreographyOption configures a Choreography.
type ChoreographyOption func(*Choreography)

// WithClock replaces time.Now, for tests.
func WithClock(now func() time.Time) ChoreographyOption {
	return func(c *Choreography) { c.now = now }
}

// NewChoreography returns an idle choreography that animates atlas elements
// through animator.
func NewChoreography(atlas *Atlas, animator Animator, opts ...ChoreographyOption) *Choreography {
	c := &Choreography{
		atlas:    atlas,
		animator: animator,
		now:      time.Now,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// ViewportEntered handles the map entering the viewport. The first call
// schedules the whole sequence and returns true; later calls do nothing.
func (c *Choreography) ViewportEntered() bool {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.fired {
		return false
	}
	c.fired = true
	c.started = c.now()

	var end float64
	for _, t := range c.schedule() {
		c.animator.Animate(t)
		if t.End() > end {
			end = t.End()
		}
	}
	c.length = time.Duration(end * float64(time.Second))
	return true
}

// Phase reports the current state. Once started the sequence always runs to
// completion; there is no cancellation.
func (c *Choreography) Phase() Phase {
	c.mu.Lock()
	defer c.mu.Unlock()

	switch {
	case !c.fired:
		return PhaseIdle
	case c.now().Sub(c.started) < c.length:
		return PhaseAnimating
	default:
		return PhaseDone
	}
}

// schedule builds the tweens. Every delay is anchored to the origin, not to
// the end of the previous step.
func (c *Choreography) schedule() []Tween {
	adventures := c.atlas.adventures
	tweens := make([]Tween, 0, len(Outlines)+2*len(adventures)+3)

	for i, o := range Outlines {
		tweens = append(tweens, Tween{
			Target:   "#" + OutlineID(o),
			Props:    Props{"opacity": 1, "strokeDashoffset": 0},
			Duration: outlineDuration,
			Ease:     "power2.inOut",
			Delay:    float64(i) * outlineStagger,
		})
	}

	tweens = append(tweens, Tween{
		Target:   "#" + HomeMarkerID,
		Props:    Props{"scale": 1, "opacity": 1},
		Duration: homeDuration,
		Ease:     "back.out(1.7)",
		Delay:    homeDelay,
	})

	for i, loc := range adventures {
		tweens = append(tweens, Tween{
			Target:   "#" + RouteID(loc),
			Props:    Props{"strokeDashoffset": 0},
			Duration: routeDuration,
			Ease:     "power2.out",
			Delay:    routeDelay + float64(i)*routeStagger,
		})
	}

	for i, loc := range adventures {
		tweens = append(tweens, Tween{
			Target:   "#" + MarkerID(loc),
			Props:    Props{"scale": 1, "opacity": 1},
			Duration: markerDuration,
			Ease:     "back.out(2)",
			Delay:    markerDelay + float64(i)*markerStagger,
		})
	}

	tweens = append(tweens,
		Tween{
			Target:   "#" + DreamRevealID,
			Props:    Props{"strokeDashoffset": 0},
			Duration: dreamDuration,
			Ease:     "none",
			Delay:    dreamDelay,
		},
		Tween{
			Target:   "#" + DreamLabelID,
			Props:    Props{"opacity": 1},
			Duration: labelDuration,
			Ease:     "power2.out",
			Delay:    labelDelay,
		},
	)

	return tweens
}
