// Package vtest provides testing helpers for accordions.
//
// Host is a deterministic accordion.Host: the viewport width, the clock and
// animation frames are all driven by the test.
//
// # Quick Start
//
//	func TestOpen(t *testing.T) {
//	    host := vtest.NewHost(1024)
//	    rec := &vtest.Recorder{}
//	    g := accordion.New(vtest.Markup(false, true), host, accordion.WithObserver(rec))
//
//	    g.Open(g.Item(0))
//	    host.Flush()
//
//	    vtest.ExpectAttr(t, g.Item(0).Root(), "data-expanded", "true")
//	}
//
// # Frames
//
// Step advances the clock by one frame interval and runs the frames that
// were pending; Advance steps until a duration has elapsed; Flush steps
// until no frame is pending.
//
// # Render Assertions
//
//	vtest.ExpectContains(t, g.Container(), `data-is-disabled="true"`)
package vtest
