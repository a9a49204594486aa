package vtest

import (
	"time"

	"github.com/vango-dev/accordion/pkg/pref"
	"github.com/vango-dev/accordion/pkg/vdom"
)

// DefaultFrameInterval is the simulated frame period (about 60 fps).
const DefaultFrameInterval = 16 * time.Millisecond

// Host is a fake accordion host. It is not safe for concurrent use, matching
// the single event loop of real hosts.
type Host struct {
	// FrameInterval is the clock advance per Step.
	FrameInterval time.Duration

	// DefaultHeight is the natural height of wrappers without an explicit
	// height.
	DefaultHeight float64

	// Motion is the reduced-motion preference.
	Motion *pref.Pref[bool]

	width     float64
	now       time.Time
	frames    []func(time.Time)
	requested int

	listeners map[int]func()
	nextID    int

	heights map[string]float64
}

// NewHost returns a host with the given viewport width, a fixed start time
// and reduced motion off.
func NewHost(width float64) *Host {
	return &Host{
		FrameInterval: DefaultFrameInterval,
		DefaultHeight: 100,
		Motion:        pref.ReducedMotion(false),
		width:         width,
		now:           time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC),
		listeners:     make(map[int]func()),
		heights:       make(map[string]float64),
	}
}

// Width implements accordion.Viewport.
func (h *Host) Width() float64 { return h.width }

// OnResize implements accordion.Viewport.
func (h *Host) OnResize(fn func()) func() {
	id := h.nextID
	h.nextID++
	h.listeners[id] = fn
	return func() { delete(h.listeners, id) }
}

// Listeners returns the number of registered resize listeners.
func (h *Host) Listeners() int { return len(h.listeners) }

// Resize changes the viewport width and notifies listeners.
func (h *Host) Resize(width float64) {
	h.width = width
	for _, fn := range h.listeners {
		fn()
	}
}

// Now implements accordion.Scheduler.
func (h *Host) Now() time.Time { return h.now }

// RequestFrame implements accordion.Scheduler.
func (h *Host) RequestFrame(fn func(time.Time)) {
	h.frames = append(h.frames, fn)
	h.requested++
}

// PrefersReducedMotion implements accordion.Host.
func (h *Host) PrefersReducedMotion() bool { return h.Motion.Get() }

// SetReducedMotion sets the reduced-motion preference.
func (h *Host) SetReducedMotion(v bool) { h.Motion.Set(v) }

// NaturalHeight implements accordion.Host using heights set with SetHeight,
// falling back to DefaultHeight.
func (h *Host) NaturalHeight(wrapper *vdom.VNode) float64 {
	if v, ok := h.heights[wrapper.GetString("id")]; ok {
		return v
	}
	return h.DefaultHeight
}

// SetHeight sets the natural height of the wrapper with the given id.
func (h *Host) SetHeight(id string, height float64) {
	h.heights[id] = height
}

// Pending returns the number of frames waiting to run.
func (h *Host) Pending() int { return len(h.frames) }

// FramesRequested returns the total number of frames ever requested.
func (h *Host) FramesRequested() int { return h.requested }

// Step advances the clock by one frame interval and runs the frames that
// were pending before the step. It returns how many ran.
func (h *Host) Step() int {
	h.now = h.now.Add(h.FrameInterval)
	frames := h.frames
	h.frames = nil
	for _, fn := range frames {
		fn(h.now)
	}
	return len(frames)
}

// Advance steps until at least d has elapsed.
func (h *Host) Advance(d time.Duration) {
	end := h.now.Add(d)
	for h.now.Before(end) {
		h.Step()
	}
}

// Flush steps until no frame is pending. It gives up after max steps and
// reports whether the queue drained.
func (h *Host) Flush() bool {
	const max = 10000
	for i := 0; i < max; i++ {
		if len(h.frames) == 0 {
			return true
		}
		h.Step()
	}
	return len(h.frames) == 0
}
