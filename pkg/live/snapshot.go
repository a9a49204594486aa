package live

import (
	"github.com/vango-dev/accordion/pkg/accordion"
	"github.com/vango-dev/accordion/pkg/vdom"
)

type patchKey struct {
	target string
	attr   string
}

// snapshot is the projected attribute state of a group as the client sees
// it.
type snapshot map[patchKey]string

// projectedAttrs lists, per part, the attributes the group rewrites.
var (
	rootAttrs    = []string{accordion.AttrExpanded, accordion.AttrDisabled}
	controlAttrs = []string{"aria-expanded"}
	wrapperAttrs = []string{accordion.AttrExpanded, accordion.AttrUnfurled, "style"}
)

// diff records the group's current state into s and returns the patches
// needed to bring the client from the previous state to it, in item order.
func (s snapshot) diff(g *accordion.Group) []Patch {
	var patches []Patch
	visit := func(target string, node *vdom.VNode, attrs []string) {
		if node == nil {
			return
		}
		for _, attr := range attrs {
			key := patchKey{target, attr}
			v := node.GetString(attr)
			if old, ok := s[key]; ok && old == v {
				continue
			}
			s[key] = v
			patches = append(patches, Patch{Target: target, Attr: attr, Value: v})
		}
	}

	for _, it := range g.Items() {
		visit(`[`+accordion.AttrItemID+`="`+it.ID()+`"]`, it.Root(), rootAttrs)
		if it.Control() != nil {
			visit("#"+it.Control().GetString("id"), it.Control(), controlAttrs)
		}
		visit("#"+it.ID(), it.Wrapper(), wrapperAttrs)
	}
	return patches
}
