package areatracker

import (
	"image/color"
	"strings"

	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
)

// noticeFadeSeconds is how long a notice takes to fade out after its hold.
const noticeFadeSeconds = 1.5

var noticeBackground = color.RGBA{0, 0, 0, 0xC0}

// Notice is a block of text shown over the map that holds at full opacity,
// then fades out. Call Update once per frame.
type Notice struct {
	Text string

	hold  float32
	fade  *gween.Tween
	alpha float32
	done  bool
}

// NewNotice shows lines for hold seconds before fading. An empty notice is
// done immediately.
func NewNotice(lines []string, hold float32) *Notice {
	n := &Notice{
		Text:  strings.Join(lines, "\n"),
		hold:  hold,
		fade:  gween.New(1, 0, noticeFadeSeconds, ease.InQuad),
		alpha: 1,
	}
	if len(lines) == 0 {
		n.alpha = 0
		n.done = true
	}
	return n
}

// Update advances the notice by dt seconds.
func (n *Notice) Update(dt float32) {
	if n.done {
		return
	}
	if n.hold > 0 {
		n.hold -= dt
		if n.hold > 0 {
			return
		}
		// Carry the overshoot into the fade.
		dt = -n.hold
		n.hold = 0
	}
	val, finished := n.fade.Update(dt)
	n.alpha = val
	if finished {
		n.alpha = 0
		n.done = true
	}
}

// Alpha returns the current opacity in [0, 1].
func (n *Notice) Alpha() float32 {
	return n.alpha
}

// Done reports whether the notice has fully faded.
func (n *Notice) Done() bool {
	return n.done
}

// Dismiss hides the notice at once.
func (n *Notice) Dismiss() {
	n.alpha = 0
	n.done = true
}
