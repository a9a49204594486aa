package accordion

import (
	"time"

	"github.com/vango-dev/accordion/pkg/vdom"
)

// Viewport reports the container width and its changes.
type Viewport interface {
	// Width returns the current viewport width.
	Width() float64

	// OnResize registers fn to run after every width change and returns a
	// function that removes the registration.
	OnResize(fn func()) (release func())
}

// Scheduler runs callbacks at animation-frame opportunities.
type Scheduler interface {
	// Now returns the host clock.
	Now() time.Time

	// RequestFrame runs fn once at the next frame with the frame time.
	RequestFrame(fn func(now time.Time))
}

// Host is the environment an accordion runs in. All calls happen on the
// host's single event loop.
type Host interface {
	Viewport
	Scheduler

	// PrefersReducedMotion reports the user's reduced-motion preference.
	PrefersReducedMotion() bool

	// NaturalHeight returns the laid-out height of a content wrapper's
	// children, independent of any height rule applied to the wrapper.
	NaturalHeight(wrapper *vdom.VNode) float64
}

// Observer is notified about transitions and breakpoint recomputes.
type Observer interface {
	TransitionStarted(it *Item, from, to float64)
	TransitionFinished(it *Item)
	TransitionDropped(it *Item)
	Recomputed(width float64, disabled bool)
}

// NopObserver ignores all notifications.
type NopObserver struct{}

func (NopObserver) TransitionStarted(*Item, float64, float64) {}
func (NopObserver) TransitionFinished(*Item)                  {}
func (NopObserver) TransitionDropped(*Item)                   {}
func (NopObserver) Recomputed(float64, bool)                  {}

// Observers fans notifications out to several observers.
type Observers []Observer

func (obs Observers) TransitionStarted(it *Item, from, to float64) {
	for _, o := range obs {
		o.TransitionStarted(it, from, to)
	}
}

func (obs Observers) TransitionFinished(it *Item) {
	for _, o := range obs {
		o.TransitionFinished(it)
	}
}

func (obs Observers) TransitionDropped(it *Item) {
	for _, o := range obs {
		o.TransitionDropped(it)
	}
}

func (obs Observers) Recomputed(width float64, disabled bool) {
	for _, o := range obs {
		o.Recomputed(width, disabled)
	}
}
