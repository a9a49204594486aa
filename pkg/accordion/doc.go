// Package accordion turns marked-up items into collapsible panels with
// animated height transitions.
//
// A Group binds every item found under a container: the item's head holds a
// <button aria-expanded> control and its content is wrapped in a generated
// region whose height is animated. Each Item keeps its state (expanded,
// unfurled, disabled) in memory and projects it onto the tree as attributes:
//
//	item root   data-expanded, data-is-disabled, data-accordion-item
//	wrapper     data-expanded, data-unfurled, id, role, aria-labelledby
//	control     aria-expanded, aria-controls, id
//
// Optional breakpoints switch collapsing off at certain viewport widths
// without touching the expanded state, and auto-close keeps at most one item
// open.
//
// The environment is supplied through Host: viewport width and resize
// notification, a frame scheduler, the reduced-motion preference and the
// natural height of a wrapper's content.
//
// # Usage
//
//	g := accordion.New(container, host,
//	    accordion.WithBreakAbove(800),
//	    accordion.WithAutoClose(true),
//	    accordion.WithDocument(doc),
//	)
//	defer g.Release()
//
//	g.Open(g.Item(0))
//	g.CloseAll()
package accordion
