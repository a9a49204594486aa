package vdom

import (
	"strconv"
	"strings"
)

// VKind is the node type discriminator.
type VKind uint8

const (
	KindElement  VKind = iota // <div>, <button>, etc.
	KindText                  // Plain text node
	KindFragment              // Grouping without wrapper
	KindRaw                   // Raw HTML (dangerous)
)

// String returns the string representation of the VKind.
func (k VKind) String() string {
	switch k {
	case KindElement:
		return "Element"
	case KindText:
		return "Text"
	case KindFragment:
		return "Fragment"
	case KindRaw:
		return "Raw"
	default:
		return "Unknown"
	}
}

// VNode is a node in the document tree.
type VNode struct {
	Kind     VKind    // Node type
	Tag      string   // Element tag name (e.g., "div")
	Props    Props    // Attributes and event handlers
	Children []*VNode // Child nodes
	Text     string   // For KindText and KindRaw
}

// Props holds attributes and event handlers.
type Props map[string]any

// IsInteractive returns true if this node has event handlers.
func (v *VNode) IsInteractive() bool {
	if v == nil || v.Kind != KindElement {
		return false
	}
	for key := range v.Props {
		if strings.HasPrefix(key, "on") {
			return true
		}
	}
	return false
}

// Get returns the raw attribute value and whether it is present.
func (v *VNode) Get(key string) (any, bool) {
	if v == nil || v.Props == nil {
		return nil, false
	}
	val, ok := v.Props[key]
	return val, ok
}

// Has reports whether the attribute is present.
func (v *VNode) Has(key string) bool {
	_, ok := v.Get(key)
	return ok
}

// GetString returns the attribute value formatted as it would be rendered.
// Missing attributes yield "".
func (v *VNode) GetString(key string) string {
	val, ok := v.Get(key)
	if !ok {
		return ""
	}
	return AttrString(val)
}

// Set stores an attribute value, allocating Props if needed.
func (v *VNode) Set(key string, value any) {
	if v == nil {
		return
	}
	if v.Props == nil {
		v.Props = make(Props)
	}
	v.Props[key] = value
}

// Remove deletes an attribute.
func (v *VNode) Remove(key string) {
	if v == nil || v.Props == nil {
		return
	}
	delete(v.Props, key)
}

// Classes returns the whitespace-separated entries of the class attribute.
func (v *VNode) Classes() []string {
	return strings.Fields(v.GetString("class"))
}

// HasClass reports whether the class attribute contains name.
func (v *VNode) HasClass(name string) bool {
	if name == "" {
		return false
	}
	for _, c := range v.Classes() {
		if c == name {
			return true
		}
	}
	return false
}

// AddClass appends name to the class attribute if not already present.
func (v *VNode) AddClass(name string) {
	if name == "" || v.HasClass(name) {
		return
	}
	classes := append(v.Classes(), name)
	v.Set("class", strings.Join(classes, " "))
}

// Handler returns the event handler registered for event (e.g. "click").
func (v *VNode) Handler(event string) func() {
	val, ok := v.Get("on" + event)
	if !ok {
		return nil
	}
	switch h := val.(type) {
	case func():
		return h
	case EventHandler:
		if fn, ok := h.Handler.(func()); ok {
			return fn
		}
	}
	return nil
}

// Dispatch invokes the handler for event, if any. It reports whether a
// handler ran.
func (v *VNode) Dispatch(event string) bool {
	fn := v.Handler(event)
	if fn == nil {
		return false
	}
	fn()
	return true
}

// Attr represents a single attribute.
type Attr struct {
	Key   string
	Value any
}

// IsEmpty returns true if this is an empty/nil attribute.
func (a Attr) IsEmpty() bool {
	return a.Key == ""
}

// EventHandler represents an event handler.
type EventHandler struct {
	Event   string // "onclick", "oninput", etc.
	Handler any    // Function to call
}

// AttrString converts an attribute value to its rendered string form.
func AttrString(value any) string {
	switch v := value.(type) {
	case nil:
		return ""
	case string:
		return v
	case bool:
		return strconv.FormatBool(v)
	case int:
		return strconv.Itoa(v)
	case int64:
		return strconv.FormatInt(v, 10)
	case float64:
		return strconv.FormatFloat(v, 'g', -1, 64)
	default:
		return ""
	}
}

// AttrBool interprets an attribute value as a boolean. Only true and "true"
// count as set.
func AttrBool(value any) bool {
	switch v := value.(type) {
	case bool:
		return v
	case string:
		return v == "true"
	default:
		return false
	}
}
