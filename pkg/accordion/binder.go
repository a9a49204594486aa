package accordion

import (
	"strconv"

	"github.com/vango-dev/accordion/internal/errors"
	"github.com/vango-dev/accordion/pkg/vdom"
)

// bind wires one item root: it resolves the head, control and content,
// wraps the content, links the accessibility references and registers the
// click handler. Missing parts are reported and skipped.
func (g *Group) bind(index int, root *vdom.VNode) *Item {
	c := g.opts.Classes
	it := &Item{index: index, root: root, id: g.nextID()}

	it.head = vdom.Query(root, vdom.ByClass(c.Head))
	if it.head == nil {
		g.report(errors.New(errors.CodeMissingHead).WithItem(index).WithClass(c.Head))
	} else {
		it.control = vdom.Query(it.head, vdom.ByTagWithAttr("button", "aria-expanded"))
	}
	if it.control == nil {
		g.report(errors.New(errors.CodeMissingControl).WithItem(index).WithClass(c.Head))
	}

	it.content = vdom.Query(root, vdom.ByClass(c.Content))
	if it.content == nil {
		g.report(errors.New(errors.CodeMissingContent).WithItem(index).WithClass(c.Content))
	}

	if it.control != nil {
		v, _ := it.control.Get("aria-expanded")
		it.expanded = vdom.AttrBool(v)
	}
	it.unfurled = it.expanded

	if it.content != nil {
		wrapper := vdom.Div(
			vdom.Class(WrapperClass),
			vdom.ID(it.id),
			vdom.Role("region"),
		)
		if vdom.Wrap(root, it.content, wrapper) {
			it.wrapper = wrapper
		}
	}

	if it.control != nil {
		controlID := it.id + "-btn"
		it.control.Set("id", controlID)
		if it.wrapper != nil {
			it.control.Set("aria-controls", it.id)
			it.wrapper.Set("aria-labelledby", controlID)
		}
		it.control.Set("onclick", func() { g.Toggle(it) })
	}

	it.project(g.opts.Duration)
	return it
}

// maxIDAttempts bounds how often the id source is asked for a fresh id
// before a numeric suffix is used instead.
const maxIDAttempts = 16

// nextID returns an identifier not yet used in this group.
func (g *Group) nextID() string {
	var id string
	for i := 0; i < maxIDAttempts; i++ {
		id = g.opts.IDs.NextID()
		if _, taken := g.byID[id]; !taken {
			g.byID[id] = nil
			return id
		}
	}
	for n := 2; ; n++ {
		candidate := id + "-" + strconv.Itoa(n)
		if _, taken := g.byID[candidate]; !taken {
			g.byID[candidate] = nil
			return candidate
		}
	}
}

func (g *Group) report(e *errors.Error) {
	errors.Report(g.logger, e)
}
