package tui

import (
	"time"

	"github.com/vango-dev/accordion/pkg/pref"
	"github.com/vango-dev/accordion/pkg/vdom"
)

// termHost is the accordion host for a terminal. Widths are in columns and
// heights in lines.
type termHost struct {
	width  float64
	motion *pref.Pref[bool]
	now    func() time.Time

	measure func(wrapper *vdom.VNode) float64

	frames    []func(time.Time)
	listeners map[int]func()
	nextID    int
}

func (h *termHost) Width() float64 { return h.width }

func (h *termHost) OnResize(fn func()) func() {
	id := h.nextID
	h.nextID++
	h.listeners[id] = fn
	return func() { delete(h.listeners, id) }
}

func (h *termHost) Now() time.Time { return h.now() }

func (h *termHost) RequestFrame(fn func(time.Time)) {
	h.frames = append(h.frames, fn)
}

func (h *termHost) PrefersReducedMotion() bool { return h.motion.Get() }

func (h *termHost) NaturalHeight(wrapper *vdom.VNode) float64 {
	if h.measure == nil {
		return 0
	}
	return h.measure(wrapper)
}

func (h *termHost) resize(width float64) {
	if width == h.width {
		return
	}
	h.width = width
	for _, fn := range h.listeners {
		fn()
	}
}

func (h *termHost) runFrames(now time.Time) int {
	frames := h.frames
	h.frames = nil
	for _, fn := range frames {
		fn(now)
	}
	return len(frames)
}
