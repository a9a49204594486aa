package vdom

// Walk visits node and its descendants depth-first in document order.
// fn receives each node with its parent (nil for the starting node); when it
// returns false the node's children are skipped.
func Walk(node *VNode, fn func(n, parent *VNode) bool) {
	walk(node, nil, fn)
}

func walk(node, parent *VNode, fn func(n, parent *VNode) bool) {
	if node == nil {
		return
	}
	if !fn(node, parent) {
		return
	}
	for _, child := range node.Children {
		walk(child, node, fn)
	}
}

// QueryAll returns every descendant of root (root excluded) matching pred,
// in document order.
func QueryAll(root *VNode, pred func(*VNode) bool) []*VNode {
	var out []*VNode
	Walk(root, func(n, _ *VNode) bool {
		if n != root && pred(n) {
			out = append(out, n)
		}
		return true
	})
	return out
}

// Query returns the first descendant of root (root excluded) matching pred.
func Query(root *VNode, pred func(*VNode) bool) *VNode {
	var found *VNode
	Walk(root, func(n, _ *VNode) bool {
		if found != nil {
			return false
		}
		if n != root && pred(n) {
			found = n
			return false
		}
		return true
	})
	return found
}

// ByClass matches elements carrying the class name.
func ByClass(name string) func(*VNode) bool {
	return func(n *VNode) bool {
		return n.Kind == KindElement && n.HasClass(name)
	}
}

// ByTagWithAttr matches elements with the tag that carry the attribute.
func ByTagWithAttr(tag, key string) func(*VNode) bool {
	return func(n *VNode) bool {
		return n.Kind == KindElement && n.Tag == tag && n.Has(key)
	}
}

// ByID matches the element whose id attribute equals id.
func ByID(id string) func(*VNode) bool {
	return func(n *VNode) bool {
		return n.Kind == KindElement && id != "" && n.GetString("id") == id
	}
}

// ByTag matches elements with the tag name.
func ByTag(tag string) func(*VNode) bool {
	return func(n *VNode) bool {
		return n.Kind == KindElement && n.Tag == tag
	}
}

// Parent returns the parent of target within root, or nil when target is
// root or not part of the tree.
func Parent(root, target *VNode) *VNode {
	var found *VNode
	Walk(root, func(n, parent *VNode) bool {
		if found != nil {
			return false
		}
		if n == target {
			found = parent
			return false
		}
		return true
	})
	return found
}

// Wrap inserts wrapper at target's position under its parent and moves
// target inside wrapper as its last child. It reports false when target has
// no parent within root.
func Wrap(root, target, wrapper *VNode) bool {
	parent := Parent(root, target)
	if parent == nil {
		return false
	}
	for i, child := range parent.Children {
		if child == target {
			parent.Children[i] = wrapper
			break
		}
	}
	wrapper.Children = append(wrapper.Children, target)
	return true
}

// Append adds children to node.
func Append(node *VNode, children ...*VNode) {
	for _, c := range children {
		if c != nil {
			node.Children = append(node.Children, c)
		}
	}
}
