package main

import (
	"fmt"
	"os"
	"time"

	"github.com/vango-dev/accordion/internal/config"
	"github.com/vango-dev/accordion/pkg/render"
	"github.com/vango-dev/accordion/pkg/vdom"
)

const configFileHint = config.ConfigFileName

// demoPage is served when no page file is given.
const demoPage = `<!DOCTYPE html>
<html>
<head><title>Accordion</title></head>
<body>
<main id="accordion">
  <div class="item-marker">
    <div class="head-marker"><button>What is an accordion? <span class="icon-marker">▾</span></button></div>
    <div class="content-marker"><p>A stack of sections where each body can be shown or hidden by its heading.</p></div>
  </div>
  <div class="item-marker">
    <div class="head-marker"><button aria-expanded="true">Does it animate? <span class="icon-marker">▾</span></button></div>
    <div class="content-marker"><p>Bodies grow and shrink over the configured duration, unless the reader prefers reduced motion.</p></div>
  </div>
  <div class="item-marker">
    <div class="head-marker"><button>What about wide screens? <span class="icon-marker">▾</span></button></div>
    <div class="content-marker"><p>Breakpoints switch collapsing off so every section is shown in full.</p></div>
  </div>
</main>
</body>
</html>
`

// loadConfig loads the config at path, or searches from the working
// directory when path is empty. No config file means defaults.
func loadConfig(path string) (*config.Config, error) {
	if path != "" {
		return config.Load(path)
	}
	root, err := config.FindRoot(".")
	if err != nil {
		return config.Default(), nil
	}
	return config.LoadFromDir(root)
}

// pageSource reads file once and returns a function parsing a fresh tree
// from it. An empty file name selects the demo page.
func pageSource(file string) (func() (*vdom.VNode, error), error) {
	markup := demoPage
	if file != "" {
		data, err := os.ReadFile(file)
		if err != nil {
			return nil, fmt.Errorf("read page: %w", err)
		}
		markup = string(data)
	}
	return func() (*vdom.VNode, error) {
		return render.ParseString(markup)
	}, nil
}

// selectContainer returns the element with the given id, or doc itself when
// id is empty.
func selectContainer(doc *vdom.VNode, id string) (*vdom.VNode, error) {
	if id == "" {
		return doc, nil
	}
	container := vdom.Query(doc, vdom.ByID(id))
	if container == nil {
		return nil, fmt.Errorf("container #%s not found", id)
	}
	return container, nil
}

// staticHost is a fixed-width host without animation. Frames requested
// anyway are run by drain at a time past any transition.
type staticHost struct {
	width  float64
	now    time.Time
	frames []func(time.Time)
}

func newStaticHost(width float64) *staticHost {
	return &staticHost{width: width, now: time.Now()}
}

func (h *staticHost) Width() float64                    { return h.width }
func (h *staticHost) OnResize(func()) func()            { return func() {} }
func (h *staticHost) Now() time.Time                    { return h.now }
func (h *staticHost) RequestFrame(fn func(time.Time))   { h.frames = append(h.frames, fn) }
func (h *staticHost) PrefersReducedMotion() bool        { return true }
func (h *staticHost) NaturalHeight(*vdom.VNode) float64 { return 0 }

func (h *staticHost) drain() {
	end := h.now.Add(time.Hour)
	for len(h.frames) > 0 {
		frames := h.frames
		h.frames = nil
		for _, fn := range frames {
			fn(end)
		}
	}
}
