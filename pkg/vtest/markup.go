package vtest

import (
	"fmt"
	"strings"
	"testing"

	"github.com/vango-dev/accordion/pkg/render"
	"github.com/vango-dev/accordion/pkg/vdom"
)

// Markup builds a container holding one well-formed item per state, using
// the default marker classes. Each state is the control's initial
// aria-expanded value.
func Markup(states ...bool) *vdom.VNode {
	items := vdom.Range(states, func(expanded bool, i int) *vdom.VNode {
		return Item(fmt.Sprintf("Item %d", i+1), expanded)
	})
	return vdom.Div(vdom.ID("accordion"), items)
}

// Item builds one well-formed item with default marker classes.
func Item(title string, expanded bool) *vdom.VNode {
	return vdom.Div(vdom.Class("item-marker"),
		vdom.H3(vdom.Class("head-marker"),
			vdom.Button(vdom.Type("button"), vdom.AriaExpanded(expanded),
				vdom.Text(title),
				vdom.Span(vdom.Class("icon-marker"), vdom.AriaHidden(true), vdom.Text("▾")),
			),
		),
		vdom.Div(vdom.Class("content-marker"),
			vdom.P(vdom.Textf("Body of %s", title)),
		),
	)
}

// Document wraps body in an html document with an empty head.
func Document(body ...any) *vdom.VNode {
	return vdom.Html(vdom.Head(vdom.Title(vdom.Text("accordion"))), vdom.Body(body...))
}

// HTML renders node, failing the test on error.
func HTML(t testing.TB, node *vdom.VNode) string {
	t.Helper()
	out, err := render.NewRenderer(render.RendererConfig{}).RenderToString(node)
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	return out
}

// ExpectContains fails the test if the rendered node does not contain want.
func ExpectContains(t testing.TB, node *vdom.VNode, want string) {
	t.Helper()
	if html := HTML(t, node); !strings.Contains(html, want) {
		t.Errorf("expected HTML to contain %q\nHTML: %s", want, html)
	}
}

// ExpectNotContains fails the test if the rendered node contains unwanted.
func ExpectNotContains(t testing.TB, node *vdom.VNode, unwanted string) {
	t.Helper()
	if html := HTML(t, node); strings.Contains(html, unwanted) {
		t.Errorf("expected HTML NOT to contain %q\nHTML: %s", unwanted, html)
	}
}

// ExpectAttr fails the test unless node's attribute renders as want.
func ExpectAttr(t testing.TB, node *vdom.VNode, key, want string) {
	t.Helper()
	if node == nil {
		t.Fatalf("ExpectAttr(%s): node is nil", key)
	}
	if got := node.GetString(key); got != want {
		t.Errorf("%s = %q, want %q", key, got, want)
	}
}
