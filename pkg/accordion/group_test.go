package accordion_test

import (
	"bytes"
	"log/slog"
	"strings"
	"testing"
	"time"

	"github.com/vango-dev/accordion/pkg/accordion"
	"github.com/vango-dev/accordion/pkg/vdom"
	"github.com/vango-dev/accordion/pkg/vtest"
)

func newGroup(t *testing.T, host *vtest.Host, states []bool, opts ...accordion.Option) (*accordion.Group, *vtest.Recorder) {
	t.Helper()
	rec := &vtest.Recorder{}
	opts = append([]accordion.Option{
		accordion.WithObserver(rec),
		accordion.WithIDSource(accordion.CountingIDs("acc")),
	}, opts...)
	return accordion.New(vtest.Markup(states...), host, opts...), rec
}

func expandedStates(g *accordion.Group) []bool {
	out := make([]bool, g.Len())
	for i, it := range g.Items() {
		out[i] = it.Expanded()
	}
	return out
}

func TestNewBindsItems(t *testing.T) {
	host := vtest.NewHost(1024)
	g, rec := newGroup(t, host, []bool{false, true, false})

	if g.Len() != 3 {
		t.Fatalf("Len() = %d, want 3", g.Len())
	}
	if rec.Recomputes != 1 {
		t.Errorf("Recomputes = %d, want 1 at construction", rec.Recomputes)
	}

	for i, it := range g.Items() {
		if it.Index() != i {
			t.Errorf("item %d: Index() = %d", i, it.Index())
		}
		wantID := "acc-" + string(rune('1'+i))
		if it.ID() != wantID {
			t.Errorf("item %d: ID() = %q, want %q", i, it.ID(), wantID)
		}

		wrapper := it.Wrapper()
		if wrapper == nil {
			t.Fatalf("item %d: no wrapper", i)
		}
		if !wrapper.HasClass(accordion.WrapperClass) {
			t.Errorf("item %d: wrapper lacks class", i)
		}
		if len(wrapper.Children) != 1 || wrapper.Children[0] != it.Content() {
			t.Errorf("item %d: content not wrapped", i)
		}
		if vdom.Parent(it.Root(), wrapper) != it.Root() {
			t.Errorf("item %d: wrapper should sit where the content was", i)
		}

		vtest.ExpectAttr(t, wrapper, "id", it.ID())
		vtest.ExpectAttr(t, wrapper, "role", "region")
		vtest.ExpectAttr(t, wrapper, "aria-labelledby", it.ID()+"-btn")
		vtest.ExpectAttr(t, it.Control(), "id", it.ID()+"-btn")
		vtest.ExpectAttr(t, it.Control(), "aria-controls", it.ID())
		vtest.ExpectAttr(t, it.Root(), accordion.AttrItemID, it.ID())
		vtest.ExpectAttr(t, it.Root(), accordion.AttrDisabled, "false")
		vtest.ExpectAttr(t, wrapper, "style", "transition-duration: 300ms")
	}

	// Initial state comes from the control's aria-expanded.
	if got := expandedStates(g); got[0] || !got[1] || got[2] {
		t.Errorf("initial expanded = %v, want [false true false]", got)
	}
	second := g.Item(1)
	if !second.Unfurled() {
		t.Error("initially expanded item should be unfurled")
	}
	vtest.ExpectAttr(t, second.Wrapper(), accordion.AttrExpanded, "true")
	vtest.ExpectAttr(t, second.Wrapper(), accordion.AttrUnfurled, "true")
	vtest.ExpectAttr(t, second.Root(), accordion.AttrExpanded, "true")
}

func TestInitialStateFromStringAttribute(t *testing.T) {
	container := vtest.Markup(false)
	btn := vdom.Query(container, vdom.ByTag("button"))
	btn.Set("aria-expanded", "true")

	g := accordion.New(container, vtest.NewHost(1024))
	if !g.Item(0).Expanded() {
		t.Error(`aria-expanded="true" should start expanded`)
	}
}

func TestRandomIDsAreUnique(t *testing.T) {
	g := accordion.New(vtest.Markup(false, false, false, false), vtest.NewHost(1024))

	seen := map[string]bool{}
	for _, it := range g.Items() {
		if !strings.HasPrefix(it.ID(), "accordion-") || len(it.ID()) != len("accordion-")+9 {
			t.Errorf("unexpected id %q", it.ID())
		}
		if seen[it.ID()] {
			t.Errorf("duplicate id %q", it.ID())
		}
		seen[it.ID()] = true
	}
}

func TestDuplicateIDsAreRetried(t *testing.T) {
	ids := []string{"dup", "dup", "other"}
	n := 0
	src := accordion.IDFunc(func() string {
		id := ids[n%len(ids)]
		n++
		return id
	})

	g := accordion.New(vtest.Markup(false, false), vtest.NewHost(1024), accordion.WithIDSource(src))
	if g.Item(0).ID() != "dup" || g.Item(1).ID() != "other" {
		t.Errorf("ids = %q, %q", g.Item(0).ID(), g.Item(1).ID())
	}
}

func TestConstantIDSourceGetsSuffixes(t *testing.T) {
	src := accordion.IDFunc(func() string { return "same" })

	g := accordion.New(vtest.Markup(false, true, false), vtest.NewHost(1024), accordion.WithIDSource(src))

	want := []string{"same", "same-2", "same-3"}
	for i, id := range want {
		it := g.Item(i)
		if it.ID() != id {
			t.Errorf("item %d id = %q, want %q", i, it.ID(), id)
		}
		if got := it.Control().GetString("id"); got != id+"-btn" {
			t.Errorf("item %d control id = %q", i, got)
		}
		if found, ok := g.ItemByID(id); !ok || found != it {
			t.Errorf("ItemByID(%q) = %v, %v", id, found, ok)
		}
	}
}

func TestMalformedMarkup(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, nil))

	noHead := vdom.Div(vdom.Class("item-marker"),
		vdom.Div(vdom.Class("content-marker"), vdom.Text("orphan")),
	)
	noState := vdom.Div(vdom.Class("item-marker"),
		vdom.Div(vdom.Class("head-marker"), vdom.Button(vdom.Text("x"))),
		vdom.Div(vdom.Class("content-marker"), vdom.Text("body")),
	)
	noContent := vdom.Div(vdom.Class("item-marker"),
		vdom.Div(vdom.Class("head-marker"), vdom.Button(vdom.AriaExpanded(false))),
	)
	container := vdom.Div(noHead, noState, noContent)

	host := vtest.NewHost(1024)
	g := accordion.New(container, host, accordion.WithLogger(logger))

	if g.Len() != 3 {
		t.Fatalf("Len() = %d, want 3: binding is best effort", g.Len())
	}

	out := buf.String()
	for _, want := range []string{
		"diagnostic.code=A002 diagnostic.category=markup diagnostic.item=0",
		"diagnostic.code=A003 diagnostic.category=markup diagnostic.item=0",
		"diagnostic.code=A003 diagnostic.category=markup diagnostic.item=1",
		"diagnostic.code=A004 diagnostic.category=markup diagnostic.item=2",
		"component=accordion",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("log missing %q\n%s", want, out)
		}
	}

	// Partially wired items still work through the programmatic surface.
	g.OpenAll()
	host.Flush()
	for i, it := range g.Items() {
		if !it.Expanded() {
			t.Errorf("item %d should be expanded", i)
		}
	}
	if g.Item(0).Wrapper() == nil {
		t.Error("item without head still wraps its content")
	}
	if g.Item(0).Wrapper().Has("aria-labelledby") {
		t.Error("wrapper without a control has nothing to be labelled by")
	}
	if g.Item(2).Wrapper() != nil {
		t.Error("item without content has no wrapper")
	}

	g.CloseAll()
	host.Flush()
	if got := len(g.Expanded()); got != 0 {
		t.Errorf("Expanded() = %d after CloseAll", got)
	}
}

func TestNoItems(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, nil))

	for _, container := range []*vdom.VNode{vdom.Div(), nil} {
		g := accordion.New(container, vtest.NewHost(1024), accordion.WithLogger(logger))
		if g.Len() != 0 {
			t.Errorf("Len() = %d, want 0", g.Len())
		}
		g.OpenAll()
		g.CloseAll()
		g.Recompute()
		if g.Item(0) != nil {
			t.Error("Item(0) should be nil")
		}
	}

	if !strings.Contains(buf.String(), "diagnostic.code=A001") {
		t.Errorf("expected A001 in log: %s", buf.String())
	}
}

func TestCloseIsIdempotent(t *testing.T) {
	host := vtest.NewHost(1024)
	g, rec := newGroup(t, host, []bool{false})
	it := g.Item(0)

	g.Close(it)
	g.Close(it)

	if it.Expanded() || it.Unfurled() {
		t.Error("closed item must stay closed")
	}
	if len(rec.Started) != 0 || host.FramesRequested() != 0 {
		t.Errorf("closing a closed item should not animate: %d transitions, %d frames",
			len(rec.Started), host.FramesRequested())
	}
	if it.Animating() {
		t.Error("closed item should not hold an animated height")
	}
	vtest.ExpectAttr(t, it.Wrapper(), accordion.AttrExpanded, "false")
}

func TestToggleInverse(t *testing.T) {
	for _, initial := range []bool{false, true} {
		host := vtest.NewHost(1024)
		g, _ := newGroup(t, host, []bool{initial})
		it := g.Item(0)

		g.Toggle(it)
		if it.Expanded() == initial {
			t.Errorf("initial=%v: first toggle did not flip", initial)
		}
		host.Flush()

		g.Toggle(it)
		host.Flush()
		if it.Expanded() != initial {
			t.Errorf("initial=%v: toggle twice = %v", initial, it.Expanded())
		}
	}
}

func TestClickTogglesItem(t *testing.T) {
	host := vtest.NewHost(1024)
	g, _ := newGroup(t, host, []bool{false})
	it := g.Item(0)

	if !it.Control().Dispatch("click") {
		t.Fatal("control should have a click handler")
	}
	if !it.Expanded() {
		t.Error("click should open the item")
	}
	vtest.ExpectAttr(t, it.Control(), "aria-expanded", "true")

	it.Control().Dispatch("click")
	if it.Expanded() {
		t.Error("second click should close the item")
	}
	vtest.ExpectAttr(t, it.Control(), "aria-expanded", "false")
}

func TestAutoCloseExclusivity(t *testing.T) {
	tests := []struct {
		name    string
		initial []bool
		open    int
	}{
		{"none open", []bool{false, false, false, false}, 2},
		{"one other open", []bool{true, false, false, false}, 3},
		{"all open", []bool{true, true, true, true}, 0},
		{"target already open", []bool{false, true, true, false}, 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			host := vtest.NewHost(1024)
			g, _ := newGroup(t, host, tt.initial, accordion.WithAutoClose(true))

			g.Open(g.Item(tt.open))
			host.Flush()

			for i, expanded := range expandedStates(g) {
				if expanded != (i == tt.open) {
					t.Errorf("item %d expanded = %v", i, expanded)
				}
			}
		})
	}
}

func TestAutoCloseClosesWithOwnTransitions(t *testing.T) {
	host := vtest.NewHost(1024)
	g, rec := newGroup(t, host, []bool{true, false, true}, accordion.WithAutoClose(true))

	g.Open(g.Item(1))

	var closing []int
	for _, tr := range rec.Started {
		if tr.To == 0 {
			closing = append(closing, tr.Item)
		}
	}
	if len(closing) != 2 || closing[0] != 0 || closing[1] != 2 {
		t.Errorf("closing transitions = %v, want [0 2]", closing)
	}
}

func TestBreakpointIsOrthogonalToExpansion(t *testing.T) {
	host := vtest.NewHost(600)
	g, rec := newGroup(t, host, []bool{true, false, true}, accordion.WithBreakAbove(800))

	before := expandedStates(g)
	for _, it := range g.Items() {
		if it.Disabled() {
			t.Fatal("items should be enabled at 600px")
		}
	}

	host.Resize(900)

	if rec.Recomputes != 2 || !rec.Disabled {
		t.Errorf("recomputes = %d disabled = %v", rec.Recomputes, rec.Disabled)
	}
	for i, it := range g.Items() {
		if !it.Disabled() {
			t.Errorf("item %d should be disabled at 900px", i)
		}
		vtest.ExpectAttr(t, it.Root(), accordion.AttrDisabled, "true")
		if it.Expanded() != before[i] {
			t.Errorf("item %d expanded changed on resize", i)
		}
		if it.Unfurled() != before[i] {
			t.Errorf("item %d unfurled changed on resize", i)
		}
	}

	host.Resize(700)
	for i, it := range g.Items() {
		if it.Disabled() {
			t.Errorf("item %d should be enabled again at 700px", i)
		}
	}
}

func TestBreakBelow(t *testing.T) {
	host := vtest.NewHost(1024)
	g, _ := newGroup(t, host, []bool{false}, accordion.WithBreakBelow(480))

	host.Resize(480)
	if !g.Item(0).Disabled() {
		t.Error("width equal to break_below should disable")
	}
}

func TestDisabledDoesNotBlockProgrammaticCalls(t *testing.T) {
	host := vtest.NewHost(1200)
	g, _ := newGroup(t, host, []bool{false}, accordion.WithBreakAbove(800))
	it := g.Item(0)

	if !it.Disabled() {
		t.Fatal("item should start disabled")
	}
	g.Open(it)
	if !it.Expanded() {
		t.Error("Open should work on a disabled item")
	}
	host.Flush()
	g.Close(it)
	if it.Expanded() {
		t.Error("Close should work on a disabled item")
	}
}

func TestOpenAllAnimatesOnlyClosedItems(t *testing.T) {
	host := vtest.NewHost(1024)
	g, rec := newGroup(t, host, []bool{false, true, false})

	g.OpenAll()

	if got := expandedStates(g); !got[0] || !got[1] || !got[2] {
		t.Errorf("expanded = %v, want all true", got)
	}
	if len(rec.Started) != 2 {
		t.Fatalf("transitions = %d, want 2", len(rec.Started))
	}
	if rec.Started[0].Item != 0 || rec.Started[1].Item != 2 {
		t.Errorf("transitions on items %d and %d, want 0 and 2", rec.Started[0].Item, rec.Started[1].Item)
	}
	if g.Item(1).Animating() {
		t.Error("already open item should be untouched")
	}

	host.Flush()
	if len(rec.Finished) != 2 {
		t.Errorf("finished = %v, want two", rec.Finished)
	}
}

func TestCloseAll(t *testing.T) {
	host := vtest.NewHost(1024)
	g, rec := newGroup(t, host, []bool{true, false, true})

	g.CloseAll()
	host.Flush()

	if got := len(g.Expanded()); got != 0 {
		t.Errorf("Expanded() = %d, want 0", got)
	}
	if len(rec.Started) != 2 {
		t.Errorf("transitions = %d, want 2", len(rec.Started))
	}
}

func TestReducedMotionOpenIsSynchronous(t *testing.T) {
	host := vtest.NewHost(1024)
	host.SetReducedMotion(true)
	g, rec := newGroup(t, host, []bool{false})
	it := g.Item(0)

	g.Open(it)

	if !it.Expanded() || !it.Unfurled() {
		t.Error("open should reach its end state immediately")
	}
	if it.Animating() {
		t.Error("no transient height under reduced motion")
	}
	if host.FramesRequested() != 0 || len(rec.Started) != 0 {
		t.Errorf("frames = %d transitions = %d, want none", host.FramesRequested(), len(rec.Started))
	}
	vtest.ExpectAttr(t, it.Wrapper(), accordion.AttrExpanded, "true")
	vtest.ExpectAttr(t, it.Wrapper(), accordion.AttrUnfurled, "true")
	vtest.ExpectAttr(t, it.Wrapper(), "style", "transition-duration: 300ms")

	g.Close(it)
	if it.Expanded() || host.FramesRequested() != 0 {
		t.Error("close should also be immediate")
	}
}

// orderObserver captures item state at the moment a transition starts.
type orderObserver struct {
	accordion.NopObserver
	expanded, unfurled []bool
}

func (o *orderObserver) TransitionStarted(it *accordion.Item, _, _ float64) {
	o.expanded = append(o.expanded, it.Expanded())
	o.unfurled = append(o.unfurled, it.Unfurled())
}

func TestOpenSchedulesBeforeUnfurling(t *testing.T) {
	host := vtest.NewHost(1024)
	obs := &orderObserver{}
	g := accordion.New(vtest.Markup(false), host, accordion.WithObserver(obs))
	it := g.Item(0)

	g.Open(it)

	if len(obs.expanded) != 1 {
		t.Fatalf("transitions = %d, want 1", len(obs.expanded))
	}
	if !obs.expanded[0] || obs.unfurled[0] {
		t.Errorf("at schedule time expanded=%v unfurled=%v, want true/false", obs.expanded[0], obs.unfurled[0])
	}
	if !it.Unfurled() {
		t.Error("item should be unfurled once Open returns")
	}
}

func TestOpenAnimatesToNaturalHeight(t *testing.T) {
	host := vtest.NewHost(1024)
	g, rec := newGroup(t, host, []bool{false}, accordion.WithDuration(160*time.Millisecond))
	it := g.Item(0)
	host.SetHeight(it.ID(), 200)

	g.Open(it)

	if got := rec.Started[0]; got.From != 0 || got.To != 200 {
		t.Fatalf("transition = %+v, want 0 -> 200", got)
	}
	if h, ok := it.AnimatedHeight(); !ok || h != 0 {
		t.Fatalf("animated height = %v, %v, want 0 at start", h, ok)
	}
	vtest.ExpectAttr(t, it.Wrapper(), "style", "transition-duration: 160ms; height: 0.00px")

	prev := 0.0
	for host.Pending() > 0 {
		host.Step()
		h, ok := it.AnimatedHeight()
		if !ok {
			break
		}
		if h < prev || h > 200 {
			t.Fatalf("height %v after %v", h, prev)
		}
		prev = h
	}

	if it.Animating() {
		t.Error("animation should be released on completion")
	}
	if len(rec.Finished) != 1 {
		t.Errorf("finished = %v", rec.Finished)
	}
	// 160ms at 16ms per frame.
	if host.FramesRequested() != 10 {
		t.Errorf("frames = %d, want 10", host.FramesRequested())
	}
	vtest.ExpectAttr(t, it.Wrapper(), "style", "transition-duration: 160ms")
}

func TestCloseAnimatesFromRenderedHeight(t *testing.T) {
	host := vtest.NewHost(1024)
	g, rec := newGroup(t, host, []bool{true})
	it := g.Item(0)
	host.SetHeight(it.ID(), 240)

	g.Close(it)

	if got := rec.Started[0]; got.From != 240 || got.To != 0 {
		t.Errorf("transition = %+v, want 240 -> 0", got)
	}
	if it.Expanded() || it.Unfurled() {
		t.Error("close flips state before animating")
	}
	host.Flush()
	if it.Animating() {
		t.Error("animation should be released")
	}
}

func TestRapidToggleDropsStaleFrames(t *testing.T) {
	host := vtest.NewHost(1024)
	g, rec := newGroup(t, host, []bool{false})
	it := g.Item(0)

	g.Open(it)
	host.Step()
	host.Step()
	host.Step()
	mid, ok := it.AnimatedHeight()
	if !ok || mid <= 0 {
		t.Fatalf("expected a partial height, got %v %v", mid, ok)
	}

	g.Close(it)
	if got := rec.Started[1]; got.From != mid || got.To != 0 {
		t.Errorf("close transition = %+v, want from %v", got, mid)
	}

	host.Flush()

	if len(rec.Dropped) != 1 {
		t.Errorf("dropped = %v, want one stale frame", rec.Dropped)
	}
	if len(rec.Finished) != 1 {
		t.Errorf("finished = %v, want only the close", rec.Finished)
	}
	if it.Expanded() || it.Animating() {
		t.Error("final state should be closed and at rest")
	}
}

func TestReleaseStopsResizeTracking(t *testing.T) {
	host := vtest.NewHost(600)
	g, rec := newGroup(t, host, []bool{false}, accordion.WithBreakAbove(800))

	if host.Listeners() != 1 {
		t.Fatalf("listeners = %d, want 1", host.Listeners())
	}
	g.Release()
	g.Release()
	if host.Listeners() != 0 {
		t.Errorf("listeners = %d after Release", host.Listeners())
	}

	host.Resize(1000)
	if rec.Recomputes != 1 || g.Item(0).Disabled() {
		t.Error("released group should ignore resizes")
	}
}

func TestReconfigure(t *testing.T) {
	host := vtest.NewHost(600)
	g, _ := newGroup(t, host, []bool{false, false})

	g.Reconfigure(accordion.WithBreakBelow(640), accordion.WithDuration(500*time.Millisecond), accordion.WithAutoClose(true))

	if !g.Item(0).Disabled() {
		t.Error("new break_below should apply immediately")
	}
	vtest.ExpectAttr(t, g.Item(0).Wrapper(), "style", "transition-duration: 500ms")

	g.Open(g.Item(0))
	g.Open(g.Item(1))
	if g.Item(0).Expanded() {
		t.Error("auto_close should be active after Reconfigure")
	}

	g.Reconfigure(accordion.WithBreakpoints(nil, nil), accordion.WithDuration(0))
	if g.Item(0).Disabled() {
		t.Error("clearing breakpoints should enable items")
	}
	if g.Options().Duration != accordion.DefaultDuration {
		t.Errorf("Duration = %v, want default", g.Options().Duration)
	}
}

func TestLookup(t *testing.T) {
	g, _ := newGroup(t, vtest.NewHost(1024), []bool{false, false})
	second := g.Item(1)

	if it, ok := g.Lookup(second.Root()); !ok || it != second {
		t.Error("Lookup(root) should find the item")
	}
	if _, ok := g.Lookup(vdom.Div()); ok {
		t.Error("Lookup(unknown) should fail")
	}
	if it, ok := g.ItemByID(second.ID()); !ok || it != second {
		t.Error("ItemByID should find the item")
	}
	if _, ok := g.ItemByID("nope"); ok {
		t.Error("ItemByID(unknown) should fail")
	}
	if g.Item(-1) != nil || g.Item(2) != nil {
		t.Error("out of range Item should be nil")
	}
}

func TestCustomClasses(t *testing.T) {
	container := vdom.Div(
		vdom.Div(vdom.Class("spa_item"),
			vdom.Div(vdom.Class("spa_head"), vdom.Button(vdom.AriaExpanded(false))),
			vdom.Div(vdom.Class("content-marker"), vdom.Text("body")),
		),
	)

	g := accordion.New(container, vtest.NewHost(1024),
		accordion.WithClasses(accordion.Classes{Item: "spa_item", Head: "spa_head"}))

	if g.Len() != 1 {
		t.Fatalf("Len() = %d, want 1", g.Len())
	}
	c := g.Options().Classes
	if c.Content != "content-marker" || c.Icon != "icon-marker" {
		t.Errorf("unset classes should keep defaults: %+v", c)
	}
	if g.Item(0).Wrapper() == nil || g.Item(0).Control() == nil {
		t.Error("item should be fully bound")
	}
}
