package render

import "strings"

// MemoryNode is a plain in-memory tree node.
type MemoryNode struct {
	Label    string
	children []*MemoryNode
}

// NewMemoryTree returns a root MemoryNode.
func NewMemoryTree(label string) *MemoryNode {
	return &MemoryNode{Label: label}
}

// MemoryFactory is the NodeFactory for MemoryNode trees.
func MemoryFactory(label string) Node {
	return NewMemoryTree(label)
}

// AddChild appends a child node and returns it.
func (n *MemoryNode) AddChild(label string) Node {
	child := &MemoryNode{Label: label}
	n.children = append(n.children, child)
	return child
}

// Children returns the node's direct children in insertion order.
func (n *MemoryNode) Children() []*MemoryNode {
	out := make([]*MemoryNode, len(n.children))
	copy(out, n.children)
	return out
}

// String renders the tree with two-space indentation per level.
func (n *MemoryNode) String() string {
	var b strings.Builder
	n.write(&b, 0)
	return b.String()
}

func (n *MemoryNode) write(b *strings.Builder, depth int) {
	b.WriteString(strings.Repeat("  ", depth))
	b.WriteString(n.Label)
	b.WriteByte('\n')
	for _, child := range n.children {
		child.write(b, depth+1)
	}
}
