package travelmap

import "encoding/json"

// TriggerThreshold is the fraction of the map that must be visible before the
// entrance plays.
const TriggerThreshold = 0.3

// Timeline is an Animator that records tweens so the browser's tween
// scheduler can replay them on first viewport entry.
type Timeline struct {
	tweens []Tween
}

// NewTimeline returns an empty timeline.
func NewTimeline() *Timeline { return &Timeline{} }

// Animate records t.
func (tl *Timeline) Animate(t Tween) { tl.tweens = append(tl.tweens, t) }

// Tweens returns the recorded tweens in scheduling order.
func (tl *Timeline) Tweens() []Tween { return append([]Tween(nil), tl.tweens...) }

type timelineJSON struct {
	Trigger struct {
		Threshold float64 `json:"threshold"`
	} `json:"trigger"`
	Tweens []Tween `json:"tweens"`
}

// MarshalJSON encodes the trigger and tweens for static/js/travelmap.js.
func (tl *Timeline) MarshalJSON() ([]byte, error) {
	var out timelineJSON
	out.Trigger.Threshold = TriggerThreshold
	out.Tweens = tl.tweens
	if out.Tweens == nil {
		out.Tweens = []Tween{}
	}
	return json.Marshal(out)
}

// Entrance prepares the timeline for a fresh map mount. The choreography is
// per mount, so it is triggered exactly once here and the recorded tweens are
// what the client replays.
func Entrance(atlas *Atlas) *Timeline {
	tl := NewTimeline()
	NewChoreography(atlas, tl).ViewportEntered()
	return tl
}
