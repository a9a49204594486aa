// Package vdom provides the in-memory document tree used by the accordion.
//
// The tree stands in for the host document: nodes carry attributes and
// event handlers, and the accordion writes its attribute protocol onto them.
// Hosts render the tree to HTML (pkg/render) or draw it directly.
//
// # Core Types
//
// VNode is the fundamental building block representing elements, text,
// fragments and raw HTML. Props holds attributes and event handlers. Attr and
// EventHandler are used to build Props.
//
// # Element API
//
// Elements are created using variadic factory functions:
//
//	Div(Class("item-marker"),
//	    Div(Class("head-marker"),
//	        Button(AriaExpanded(false), Text("Shipping")),
//	    ),
//	    Div(Class("content-marker"), P(Text("Ships in 2 days"))),
//	)
//
// # Queries
//
// Walk, Query and QueryAll traverse the tree in document order; Wrap
// re-parents a node under a new wrapper at its original position.
package vdom
