package accordion

import (
	"strconv"
	"time"

	"github.com/vango-dev/accordion/pkg/vdom"
)

// WrapperClass is the class given to the generated content wrapper.
const WrapperClass = "accordion-content-wrapper"

// Attribute names of the projection protocol.
const (
	AttrExpanded = "data-expanded"
	AttrUnfurled = "data-unfurled"
	AttrDisabled = "data-is-disabled"
	AttrItemID   = "data-accordion-item"
)

// Item is one collapsible unit. The record is the source of truth; the
// attributes on its nodes are a projection written after every change.
type Item struct {
	index int
	id    string

	root    *vdom.VNode
	head    *vdom.VNode
	control *vdom.VNode
	content *vdom.VNode
	wrapper *vdom.VNode

	expanded bool
	unfurled bool
	disabled bool

	// gen invalidates frames scheduled by earlier transitions.
	gen uint64
	// height is the transient animated height; nil when no transition
	// holds the wrapper.
	height *float64
}

// Index returns the item's position in document order.
func (it *Item) Index() int { return it.index }

// ID returns the generated identifier, which is also the wrapper's id.
func (it *Item) ID() string { return it.id }

// Root returns the item's root node.
func (it *Item) Root() *vdom.VNode { return it.root }

// Head returns the head node, or nil when the markup lacks one.
func (it *Item) Head() *vdom.VNode { return it.head }

// Control returns the toggle button, or nil when the markup lacks one.
func (it *Item) Control() *vdom.VNode { return it.control }

// Content returns the original content node, or nil.
func (it *Item) Content() *vdom.VNode { return it.content }

// Wrapper returns the generated content wrapper, or nil when there was no
// content to wrap.
func (it *Item) Wrapper() *vdom.VNode { return it.wrapper }

// Expanded reports the logical open state.
func (it *Item) Expanded() bool { return it.expanded }

// Unfurled reports whether the wrapper may take its natural height.
func (it *Item) Unfurled() bool { return it.unfurled }

// Disabled reports whether collapsing is off at the current viewport width.
func (it *Item) Disabled() bool { return it.disabled }

// Animating reports whether a transition currently holds the wrapper.
func (it *Item) Animating() bool { return it.height != nil }

// AnimatedHeight returns the transient height while animating.
func (it *Item) AnimatedHeight() (float64, bool) {
	if it.height == nil {
		return 0, false
	}
	return *it.height, true
}

// RenderedHeight returns the wrapper height the style rules produce for the
// current state, given the content's natural height.
func (it *Item) RenderedHeight(natural float64) float64 {
	switch {
	case it.height != nil:
		return *it.height
	case it.disabled, it.expanded:
		return natural
	default:
		return 0
	}
}

// project writes the item's state onto its nodes.
func (it *Item) project(duration time.Duration) {
	it.root.Set(AttrItemID, it.id)
	it.root.Set(AttrExpanded, strconv.FormatBool(it.expanded))
	it.root.Set(AttrDisabled, strconv.FormatBool(it.disabled))

	if it.control != nil {
		it.control.Set("aria-expanded", it.expanded)
	}

	if it.wrapper != nil {
		it.wrapper.Set(AttrExpanded, strconv.FormatBool(it.expanded))
		it.wrapper.Set(AttrUnfurled, strconv.FormatBool(it.unfurled))
		it.wrapper.Set("style", it.style(duration))
	}
}

func (it *Item) style(duration time.Duration) string {
	s := "transition-duration: " + strconv.FormatInt(duration.Milliseconds(), 10) + "ms"
	if it.height != nil {
		s += "; height: " + strconv.FormatFloat(*it.height, 'f', 2, 64) + "px"
	}
	return s
}
