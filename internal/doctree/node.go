// Package doctree parses the plugdata markdown documentation format into
// a generic attributed tree and serializes that tree to JUCE's ValueTree
// binary format, so the docs can be loaded at startup without re-parsing.
//
// This is a Go port of the parse_documentation.py build script.
package doctree

// Attr is a single named string attribute on a Node.
type Attr struct {
	Name  string
	Value string
}

// Node is the universal tree element: a tag, ordered string attributes,
// and ordered children. Attribute and child order is meaningful (the
// binary encoder writes both in insertion order) and must be preserved,
// which is why attributes are a slice rather than a map.
type Node struct {
	Tag      string
	Attrs    []Attr
	Children []*Node
}

// NewNode creates a node with the given tag and no attributes or children.
func NewNode(tag string) *Node {
	return &Node{Tag: tag}
}

// Set sets an attribute, replacing an existing value in place or
// appending a new attribute at the end.
func (n *Node) Set(name, value string) {
	for i := range n.Attrs {
		if n.Attrs[i].Name == name {
			n.Attrs[i].Value = value
			return
		}
	}
	n.Attrs = append(n.Attrs, Attr{Name: name, Value: value})
}

// Get returns the value of the named attribute and whether it is present.
func (n *Node) Get(name string) (string, bool) {
	for _, attr := range n.Attrs {
		if attr.Name == name {
			return attr.Value, true
		}
	}
	return "", false
}

// Append adds a child at the end of the child list.
func (n *Node) Append(child *Node) {
	n.Children = append(n.Children, child)
}

// Walk traverses the tree in depth-first order, calling fn for each node.
func (n *Node) Walk(fn func(*Node)) {
	if n == nil {
		return
	}
	fn(n)
	for _, child := range n.Children {
		child.Walk(fn)
	}
}
