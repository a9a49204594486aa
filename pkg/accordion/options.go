package accordion

import (
	"log/slog"
	"time"

	"github.com/vango-dev/accordion/pkg/vdom"
)

// DefaultDuration is the transition length used when none is configured.
const DefaultDuration = 300 * time.Millisecond

// Classes names the marker classes used to discover an accordion's parts.
type Classes struct {
	Item    string `json:"item,omitempty"`
	Head    string `json:"head,omitempty"`
	Content string `json:"content,omitempty"`
	Icon    string `json:"icon,omitempty"`
}

// DefaultClasses returns the default marker classes.
func DefaultClasses() Classes {
	return Classes{
		Item:    "item-marker",
		Head:    "head-marker",
		Content: "content-marker",
		Icon:    "icon-marker",
	}
}

// merge fills empty fields of c from base.
func (c Classes) merge(base Classes) Classes {
	if c.Item == "" {
		c.Item = base.Item
	}
	if c.Head == "" {
		c.Head = base.Head
	}
	if c.Content == "" {
		c.Content = base.Content
	}
	if c.Icon == "" {
		c.Icon = base.Icon
	}
	return c
}

// Options configures a Group.
type Options struct {
	// BreakAbove disables collapsing when the viewport is at least this wide.
	BreakAbove *float64

	// BreakBelow disables collapsing when the viewport is at most this wide.
	BreakBelow *float64

	// Duration is the transition length. Values <= 0 use DefaultDuration.
	Duration time.Duration

	// AutoClose closes every other item when one opens.
	AutoClose bool

	// Classes are the marker classes. Empty fields fall back to defaults.
	Classes Classes

	// Logger receives markup diagnostics. Defaults to slog.Default().
	Logger *slog.Logger

	// Observer is notified of transitions and recomputes.
	Observer Observer

	// Document, when set, receives the accordion style block in its <head>.
	Document *vdom.VNode

	// IDs generates wrapper identifiers. Defaults to RandomIDs.
	IDs IDSource
}

// Option configures Options.
type Option func(*Options)

// Px returns a pointer to a viewport width, for use with breakpoints.
func Px(width float64) *float64 { return &width }

// WithBreakAbove disables collapsing at viewport widths >= width.
func WithBreakAbove(width float64) Option {
	return func(o *Options) {
		o.BreakAbove = Px(width)
	}
}

// WithBreakBelow disables collapsing at viewport widths <= width.
func WithBreakBelow(width float64) Option {
	return func(o *Options) {
		o.BreakBelow = Px(width)
	}
}

// WithBreakpoints sets both thresholds; nil clears one.
func WithBreakpoints(above, below *float64) Option {
	return func(o *Options) {
		o.BreakAbove = above
		o.BreakBelow = below
	}
}

// WithDuration sets the transition duration.
func WithDuration(d time.Duration) Option {
	return func(o *Options) {
		o.Duration = d
	}
}

// WithAutoClose enables single-open exclusivity.
func WithAutoClose(enabled bool) Option {
	return func(o *Options) {
		o.AutoClose = enabled
	}
}

// WithClasses replaces the marker classes; empty fields keep their default.
func WithClasses(c Classes) Option {
	return func(o *Options) {
		o.Classes = c
	}
}

// WithLogger sets the diagnostics logger.
func WithLogger(logger *slog.Logger) Option {
	return func(o *Options) {
		o.Logger = logger
	}
}

// WithObserver sets the transition observer.
func WithObserver(obs Observer) Option {
	return func(o *Options) {
		o.Observer = obs
	}
}

// WithDocument injects the style block into doc.
func WithDocument(doc *vdom.VNode) Option {
	return func(o *Options) {
		o.Document = doc
	}
}

// WithIDSource sets the identifier generator.
func WithIDSource(ids IDSource) Option {
	return func(o *Options) {
		o.IDs = ids
	}
}

// withDefaults returns a copy with every unset field filled in.
func (o Options) withDefaults() Options {
	if o.Duration <= 0 {
		o.Duration = DefaultDuration
	}
	o.Classes = o.Classes.merge(DefaultClasses())
	if o.Logger == nil {
		o.Logger = slog.Default()
	}
	if o.Observer == nil {
		o.Observer = NopObserver{}
	}
	if o.IDs == nil {
		o.IDs = RandomIDs()
	}
	return o
}
