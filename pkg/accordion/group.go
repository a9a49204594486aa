package accordion

import (
	"log/slog"

	"github.com/vango-dev/accordion/internal/errors"
	"github.com/vango-dev/accordion/pkg/vdom"
)

// Group controls the accordion items found inside one container.
//
// A Group is not safe for concurrent use: hosts call it, and run its frame
// callbacks, from a single event loop.
type Group struct {
	opts     Options
	host     Host
	logger   *slog.Logger
	observer Observer
	driver   *transitionDriver

	container *vdom.VNode
	items     []*Item
	byRoot    map[*vdom.VNode]*Item
	byID      map[string]*Item

	release func()
}

// New binds every item inside container and starts tracking the viewport.
// Markup defects are logged, never returned: a container without items
// yields an empty, inert group.
func New(container *vdom.VNode, host Host, opts ...Option) *Group {
	var o Options
	for _, opt := range opts {
		opt(&o)
	}
	o = o.withDefaults()

	g := &Group{
		opts:      o,
		host:      host,
		logger:    o.Logger.With("component", "accordion"),
		observer:  o.Observer,
		container: container,
		byRoot:    make(map[*vdom.VNode]*Item),
		byID:      make(map[string]*Item),
	}
	g.driver = &transitionDriver{host: host, observer: o.Observer, duration: o.Duration}

	var roots []*vdom.VNode
	if container != nil {
		roots = vdom.QueryAll(container, vdom.ByClass(o.Classes.Item))
	}
	if len(roots) == 0 {
		g.report(errors.New(errors.CodeNoItems).WithClass(o.Classes.Item))
	}

	for i, root := range roots {
		it := g.bind(i, root)
		g.items = append(g.items, it)
		g.byRoot[root] = it
		g.byID[it.id] = it
	}

	if o.Document != nil {
		EnsureStyles(o.Document, o.Classes, o.Duration)
	}

	g.Recompute()
	g.release = host.OnResize(g.Recompute)

	g.logger.Debug("accordion bound", "items", len(g.items), "auto_close", o.AutoClose)
	return g
}

// Open expands it. With auto-close, every other expanded item is closed
// first, each with its own transition.
func (g *Group) Open(it *Item) {
	if g.opts.AutoClose {
		for _, other := range g.items {
			if other != it && other.expanded {
				g.Close(other)
			}
		}
	}

	it.expanded = true
	it.project(g.opts.Duration)

	// The transition is scheduled while unfurled is still false so the
	// wrapper gets one layout pass at its collapsed height.
	g.driver.animate(it, 0, g.naturalHeight(it))

	it.unfurled = true
	it.project(g.opts.Duration)
}

// Close collapses it from its current rendered height. Closing an item that
// is already collapsed and at rest changes nothing.
func (g *Group) Close(it *Item) {
	if !it.expanded && it.height == nil {
		// Already collapsed and at rest: nothing to move.
		it.unfurled = false
		it.project(g.opts.Duration)
		return
	}

	from := it.RenderedHeight(g.naturalHeight(it))

	it.expanded = false
	it.unfurled = false
	it.project(g.opts.Duration)

	g.driver.animate(it, from, 0)
}

// Toggle opens a closed item and closes an open one. It is the control's
// click handler.
func (g *Group) Toggle(it *Item) {
	if it.expanded {
		g.Close(it)
	} else {
		g.Open(it)
	}
}

// OpenAll opens every closed item.
func (g *Group) OpenAll() {
	for _, it := range g.items {
		if !it.expanded {
			g.Open(it)
		}
	}
}

// CloseAll closes every open item.
func (g *Group) CloseAll() {
	for _, it := range g.items {
		if it.expanded {
			g.Close(it)
		}
	}
}

// Reconfigure updates breakpoints, duration and auto-close, then recomputes
// the disabled state. Classes, logger and id source are fixed at bind time.
func (g *Group) Reconfigure(opts ...Option) {
	o := g.opts
	for _, opt := range opts {
		opt(&o)
	}
	if o.Duration <= 0 {
		o.Duration = DefaultDuration
	}
	g.opts.BreakAbove = o.BreakAbove
	g.opts.BreakBelow = o.BreakBelow
	g.opts.AutoClose = o.AutoClose
	g.opts.Duration = o.Duration
	g.driver.duration = o.Duration

	if g.opts.Document != nil {
		EnsureStyles(g.opts.Document, g.opts.Classes, g.opts.Duration)
	}
	g.Recompute()
}

// Release stops tracking viewport changes.
func (g *Group) Release() {
	if g.release != nil {
		g.release()
		g.release = nil
	}
}

// Options returns the effective options.
func (g *Group) Options() Options { return g.opts }

// Container returns the container node the group was built from.
func (g *Group) Container() *vdom.VNode { return g.container }

// Len returns the number of items.
func (g *Group) Len() int { return len(g.items) }

// Item returns the item at index i in document order, or nil.
func (g *Group) Item(i int) *Item {
	if i < 0 || i >= len(g.items) {
		return nil
	}
	return g.items[i]
}

// Items returns the items in document order.
func (g *Group) Items() []*Item {
	out := make([]*Item, len(g.items))
	copy(out, g.items)
	return out
}

// Lookup returns the item bound to root.
func (g *Group) Lookup(root *vdom.VNode) (*Item, bool) {
	it, ok := g.byRoot[root]
	return it, ok
}

// ItemByID returns the item with the given identifier.
func (g *Group) ItemByID(id string) (*Item, bool) {
	it := g.byID[id]
	return it, it != nil
}

// Expanded returns the items currently expanded.
func (g *Group) Expanded() []*Item {
	var out []*Item
	for _, it := range g.items {
		if it.expanded {
			out = append(out, it)
		}
	}
	return out
}

func (g *Group) naturalHeight(it *Item) float64 {
	if it.wrapper == nil {
		return 0
	}
	return g.host.NaturalHeight(it.wrapper)
}
