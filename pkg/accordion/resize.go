package accordion

// Recompute evaluates the breakpoints for the current viewport width and
// writes the disabled state onto every item. Expanded state is untouched.
// It runs at construction and on every resize notification.
func (g *Group) Recompute() {
	width := g.host.Width()
	disabled := Disabled(width, g.opts.BreakAbove, g.opts.BreakBelow)
	for _, it := range g.items {
		it.disabled = disabled
		it.project(g.opts.Duration)
	}
	g.observer.Recomputed(width, disabled)
}
