package accordion

import (
	"fmt"
	"strconv"
	"sync"
	"time"

	"github.com/vango-dev/accordion/pkg/vdom"
)

// StyleID is the id of the first injected style block in a document.
const StyleID = "accordion-styles"

// attrStyleKey identifies the configuration a style block was built for.
const attrStyleKey = "data-accordion-styles"

// stylesheets caches generated CSS per configuration for the process.
var stylesheets sync.Map // string -> string

func styleKey(c Classes, duration time.Duration) string {
	return c.Item + "|" + c.Head + "|" + c.Content + "|" + c.Icon + "|" + strconv.FormatInt(duration.Milliseconds(), 10)
}

// Stylesheet returns the CSS backing the attribute protocol: pointer
// suppression while disabled, icon rotation while expanded (instant under
// reduced motion) and the height rules scoped to non-disabled items.
func Stylesheet(c Classes, duration time.Duration) string {
	c = c.merge(DefaultClasses())
	if duration <= 0 {
		duration = DefaultDuration
	}
	key := styleKey(c, duration)
	if css, ok := stylesheets.Load(key); ok {
		return css.(string)
	}

	ms := duration.Milliseconds()
	css := fmt.Sprintf(`
.%[1]s[data-is-disabled='true'] button[aria-expanded] {
	pointer-events: none;
}

.%[2]s {
	transition: rotate %[3]dms;
}

@media (prefers-reduced-motion: reduce) {
	.%[2]s {
		transition: rotate 0ms;
	}
}

[aria-expanded=true] .%[2]s {
	rotate: 180deg;
}

.%[1]s[data-is-disabled='false'] .%[4]s {
	overflow: hidden;
}

.%[1]s[data-is-disabled='false'] .%[4]s[data-expanded='false'] {
	height: 0;
}

.%[1]s[data-is-disabled='false'] .%[4]s[data-expanded='true'] {
	height: auto;
}
`, c.Item, c.Icon, ms, WrapperClass)

	actual, _ := stylesheets.LoadOrStore(key, css)
	return actual.(string)
}

// EnsureStyles adds the style block for the configuration to doc's <head>
// (or to doc itself when it has no head) unless an identical block is
// already present. It reports whether a block was added.
func EnsureStyles(doc *vdom.VNode, c Classes, duration time.Duration) bool {
	if doc == nil {
		return false
	}
	c = c.merge(DefaultClasses())
	if duration <= 0 {
		duration = DefaultDuration
	}
	key := styleKey(c, duration)

	existing := 0
	present := false
	vdom.Walk(doc, func(n, _ *vdom.VNode) bool {
		if n.Kind == vdom.KindElement && n.Tag == "style" && n.Has(attrStyleKey) {
			existing++
			if n.GetString(attrStyleKey) == key {
				present = true
			}
		}
		return !present
	})
	if present {
		return false
	}

	id := StyleID
	if existing > 0 {
		id = fmt.Sprintf("%s-%d", StyleID, existing+1)
	}
	style := vdom.Style(
		vdom.ID(id),
		vdom.Attribute(attrStyleKey, key),
		vdom.Text(Stylesheet(c, duration)),
	)

	target := doc
	if doc.Tag != "head" {
		if head := vdom.Query(doc, vdom.ByTag("head")); head != nil {
			target = head
		}
	}
	vdom.Append(target, style)
	return true
}
