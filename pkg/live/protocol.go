package live

// Client message types.
const (
	MsgHello   = "hello"
	MsgResize  = "resize"
	MsgHeights = "heights"
	MsgPrefs   = "prefs"
	MsgClick   = "click"
)

// MsgUnknown labels client messages whose type is not one of the above in
// metrics and spans.
const MsgUnknown = "unknown"

// messageKind returns t if it is a client message type, else MsgUnknown.
func messageKind(t string) string {
	switch t {
	case MsgHello, MsgResize, MsgHeights, MsgPrefs, MsgClick:
		return t
	default:
		return MsgUnknown
	}
}

// Server message types.
const (
	MsgPatch = "patch"
	MsgError = "error"
)

// ClientMessage is sent by the browser.
type ClientMessage struct {
	Type string `json:"type"`

	// Width is the viewport width (hello, resize).
	Width float64 `json:"width,omitempty"`

	// Heights maps wrapper ids to the natural height of their content
	// (hello, resize, heights).
	Heights map[string]float64 `json:"heights,omitempty"`

	// ReducedMotion is the prefers-reduced-motion media query result
	// (hello, prefs).
	ReducedMotion *bool `json:"reduced_motion,omitempty"`

	// At is when the client observed its preference, in Unix milliseconds.
	At int64 `json:"at,omitempty"`

	// Item is the id of the clicked item (click).
	Item string `json:"item,omitempty"`
}

// ServerMessage is sent to the browser.
type ServerMessage struct {
	Type    string  `json:"type"`
	Patches []Patch `json:"patches,omitempty"`
	Code    string  `json:"code,omitempty"`
	Error   string  `json:"error,omitempty"`
}

// Patch sets one attribute on the element matching Target, a CSS selector.
type Patch struct {
	Target string `json:"target"`
	Attr   string `json:"attr"`
	Value  string `json:"value"`
}
