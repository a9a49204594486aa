package live

import (
	"time"

	"github.com/vango-dev/accordion/pkg/pref"
	"github.com/vango-dev/accordion/pkg/vdom"
)

// host mirrors one browser for a group. Width, natural heights and the
// reduced-motion preference are whatever the client last reported. It is
// owned by the session loop and not safe for concurrent use.
type host struct {
	width   float64
	heights map[string]float64
	motion  *pref.Pref[bool]

	frames    []func(time.Time)
	listeners map[int]func()
	nextID    int

	now func() time.Time
}

func newHost(width float64, reducedMotion bool) *host {
	return &host{
		width:     width,
		heights:   make(map[string]float64),
		motion:    pref.ReducedMotion(reducedMotion),
		listeners: make(map[int]func()),
		now:       time.Now,
	}
}

func (h *host) Width() float64 { return h.width }

func (h *host) OnResize(fn func()) func() {
	id := h.nextID
	h.nextID++
	h.listeners[id] = fn
	return func() { delete(h.listeners, id) }
}

func (h *host) Now() time.Time { return h.now() }

func (h *host) RequestFrame(fn func(time.Time)) {
	h.frames = append(h.frames, fn)
}

func (h *host) PrefersReducedMotion() bool { return h.motion.Get() }

// NaturalHeight returns the last height the client measured for wrapper.
// Unmeasured wrappers report 0, which makes their transitions instant.
func (h *host) NaturalHeight(wrapper *vdom.VNode) float64 {
	return h.heights[wrapper.GetString("id")]
}

// resize records a new width and notifies listeners when it changed.
func (h *host) resize(width float64) {
	if width <= 0 || width == h.width {
		return
	}
	h.width = width
	for _, fn := range h.listeners {
		fn()
	}
}

func (h *host) setHeights(heights map[string]float64) {
	for id, v := range heights {
		if v >= 0 {
			h.heights[id] = v
		}
	}
}

// runFrames runs the frames pending before the call and reports how many
// ran.
func (h *host) runFrames(now time.Time) int {
	frames := h.frames
	h.frames = nil
	for _, fn := range frames {
		fn(now)
	}
	return len(frames)
}
