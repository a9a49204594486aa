package accordion

import (
	"math"
	"time"
)

// easeInOut is CSS ease-in-out, cubic-bezier(0.42, 0, 0.58, 1).
var easeInOut = cubicBezier(0.42, 0, 0.58, 1)

// transitionDriver animates a wrapper's height between two values using
// frames from the host.
type transitionDriver struct {
	host     Host
	observer Observer
	duration time.Duration
}

// animate starts a transition from -> to on it's wrapper. Any transition
// already running on the item is invalidated. With reduced motion, or when
// there is nothing to move, no frame is requested and the wrapper is left
// to the attribute-driven style rules.
func (d *transitionDriver) animate(it *Item, from, to float64) {
	it.gen++
	gen := it.gen

	if it.wrapper == nil || from == to || d.host.PrefersReducedMotion() {
		it.height = nil
		it.project(d.duration)
		return
	}

	start := d.host.Now()
	duration := d.duration
	it.height = &from
	it.project(duration)
	d.observer.TransitionStarted(it, from, to)

	var step func(now time.Time)
	step = func(now time.Time) {
		if it.gen != gen {
			d.observer.TransitionDropped(it)
			return
		}
		p := float64(now.Sub(start)) / float64(duration)
		if p >= 1 {
			// Release the animation so the style rules govern the height.
			it.height = nil
			it.project(duration)
			d.observer.TransitionFinished(it)
			return
		}
		h := from + (to-from)*easeInOut(math.Max(p, 0))
		it.height = &h
		it.project(duration)
		d.host.RequestFrame(step)
	}
	d.host.RequestFrame(step)
}

// cubicBezier returns the timing function for a CSS cubic-bezier curve with
// endpoints (0,0) and (1,1).
func cubicBezier(x1, y1, x2, y2 float64) func(float64) float64 {
	cx := 3 * x1
	bx := 3*(x2-x1) - cx
	ax := 1 - cx - bx
	cy := 3 * y1
	by := 3*(y2-y1) - cy
	ay := 1 - cy - by

	sampleX := func(t float64) float64 { return ((ax*t+bx)*t + cx) * t }
	sampleY := func(t float64) float64 { return ((ay*t+by)*t + cy) * t }
	slopeX := func(t float64) float64 { return (3*ax*t+2*bx)*t + cx }

	solve := func(x float64) float64 {
		t := x
		for i := 0; i < 8; i++ {
			err := sampleX(t) - x
			if math.Abs(err) < 1e-7 {
				return t
			}
			d := slopeX(t)
			if math.Abs(d) < 1e-6 {
				break
			}
			t -= err / d
		}

		lo, hi := 0.0, 1.0
		t = x
		for lo < hi {
			v := sampleX(t)
			if math.Abs(v-x) < 1e-7 {
				return t
			}
			if x > v {
				lo = t
			} else {
				hi = t
			}
			t = (lo + hi) / 2
			if hi-lo < 1e-9 {
				break
			}
		}
		return t
	}

	return func(x float64) float64 {
		switch {
		case x <= 0:
			return 0
		case x >= 1:
			return 1
		}
		return sampleY(solve(x))
	}
}
