package vdom

import "testing"

func sampleTree() (root, first, content *VNode) {
	content = Div(Class("content"), P(Text("body")))
	first = Div(Class("item"),
		Div(Class("head"), Button(AriaExpanded(false), Text("One"))),
		content,
	)
	root = Div(Class("root"),
		first,
		Div(Class("item"), Div(Class("head"), Text("Two"))),
	)
	return root, first, content
}

func TestQueryAll(t *testing.T) {
	root, first, _ := sampleTree()

	items := QueryAll(root, ByClass("item"))
	if len(items) != 2 {
		t.Fatalf("len(items) = %d, want 2", len(items))
	}
	if items[0] != first {
		t.Error("items should be in document order")
	}

	if got := QueryAll(first, ByClass("item")); len(got) != 0 {
		t.Errorf("root itself must not match, got %d", len(got))
	}
}

func TestQuery(t *testing.T) {
	root, first, content := sampleTree()

	if got := Query(first, ByClass("content")); got != content {
		t.Errorf("Query(content) = %v, want content node", got)
	}
	if got := Query(root, ByTagWithAttr("button", "aria-expanded")); got == nil {
		t.Error("expected button with aria-expanded")
	}
	if got := Query(root, ByClass("missing")); got != nil {
		t.Errorf("Query(missing) = %v, want nil", got)
	}
}

func TestParent(t *testing.T) {
	root, first, content := sampleTree()

	if got := Parent(root, content); got != first {
		t.Errorf("Parent(content) = %v, want first item", got)
	}
	if got := Parent(root, root); got != nil {
		t.Errorf("Parent(root) = %v, want nil", got)
	}
	if got := Parent(root, Div()); got != nil {
		t.Errorf("Parent(detached) = %v, want nil", got)
	}
}

func TestWrap(t *testing.T) {
	root, first, content := sampleTree()
	wrapper := Div(Class("wrapper"))

	if !Wrap(root, content, wrapper) {
		t.Fatal("Wrap should succeed")
	}
	if first.Children[1] != wrapper {
		t.Error("wrapper should take content's position")
	}
	if len(wrapper.Children) != 1 || wrapper.Children[0] != content {
		t.Error("content should be the wrapper's only child")
	}
	if Wrap(root, Div(), Div()) {
		t.Error("wrapping a detached node should fail")
	}
}

func TestTextContent(t *testing.T) {
	n := Div(Span(Text("a")), Text("b"), Raw("<i>c</i>"))
	if got := TextContent(n); got != "ab" {
		t.Errorf("TextContent = %q, want %q", got, "ab")
	}
}
