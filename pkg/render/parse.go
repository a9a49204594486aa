package render

import (
	"fmt"
	"io"
	"strings"

	"golang.org/x/net/html"

	"github.com/vango-dev/accordion/pkg/vdom"
)

// Parse reads an HTML document and converts it into a vdom tree rooted at the
// <html> element. Comments and the doctype are dropped; attribute values are
// kept as strings.
func Parse(r io.Reader) (*vdom.VNode, error) {
	doc, err := html.Parse(r)
	if err != nil {
		return nil, fmt.Errorf("parse html: %w", err)
	}
	for c := doc.FirstChild; c != nil; c = c.NextSibling {
		if c.Type == html.ElementNode && c.Data == "html" {
			return convert(c), nil
		}
	}
	return nil, fmt.Errorf("parse html: document has no <html> element")
}

// ParseString is Parse over a string.
func ParseString(s string) (*vdom.VNode, error) {
	return Parse(strings.NewReader(s))
}

func convert(n *html.Node) *vdom.VNode {
	switch n.Type {
	case html.ElementNode:
		attrs := make([]vdom.Attr, 0, len(n.Attr))
		for _, a := range n.Attr {
			attrs = append(attrs, vdom.Attribute(a.Key, a.Val))
		}
		node := vdom.El(n.Data, attrs)
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			if child := convert(c); child != nil {
				node.Children = append(node.Children, child)
			}
		}
		return node
	case html.TextNode:
		return vdom.Text(n.Data)
	default:
		return nil
	}
}
