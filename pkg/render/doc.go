// Package render converts between vdom trees and HTML.
//
// Renderer writes a tree as HTML5, handling:
//
//   - Proper text and attribute escaping (XSS prevention)
//   - Void element handling (input, br, img, etc.)
//   - Boolean attribute handling (disabled, hidden, etc.)
//   - Raw text bodies for <style> and <script>
//   - Deterministic attribute order, so output can be compared in tests
//
// Event handlers are never serialized; elements carrying one get a
// data-on-<event>="true" marker instead.
//
// Parse goes the other way, building a tree from an HTML document with
// golang.org/x/net/html so existing markup can be bound by the accordion.
//
// # Basic Usage
//
//	renderer := render.NewRenderer(render.RendererConfig{})
//	html, err := renderer.RenderToString(node)
//
//	doc, err := render.Parse(file)
package render
