package render

import (
	"github.com/jedib0t/go-pretty/v6/list"
	"github.com/jedib0t/go-pretty/v6/text"
)

// PrettyOptions controls go-pretty rendering.
type PrettyOptions struct {
	Style list.Style
	// BoldRoot emphasizes the root label; only useful on terminals.
	BoldRoot bool
}

// PrettyNode collects a tree and renders it through go-pretty's list writer.
type PrettyNode struct {
	label    string
	children []*PrettyNode
	opts     PrettyOptions
}

// NewPrettyTree returns a root PrettyNode.
func NewPrettyTree(label string, opts PrettyOptions) *PrettyNode {
	if opts.Style.Name == "" {
		opts.Style = list.StyleConnectedRounded
	}
	return &PrettyNode{label: label, opts: opts}
}

// PrettyFactory returns a NodeFactory producing PrettyNode roots.
func PrettyFactory(opts PrettyOptions) NodeFactory {
	return func(label string) Node {
		return NewPrettyTree(label, opts)
	}
}

// AddChild appends a child node and returns it.
func (n *PrettyNode) AddChild(label string) Node {
	child := &PrettyNode{label: label, opts: n.opts}
	n.children = append(n.children, child)
	return child
}

// Render draws the tree rooted at n.
func (n *PrettyNode) Render() string {
	lw := list.NewWriter()
	lw.SetStyle(n.opts.Style)

	label := n.label
	if n.opts.BoldRoot {
		label = text.Bold.Sprint(label)
	}
	lw.AppendItem(label)
	lw.Indent()
	for _, child := range n.children {
		child.append(lw)
	}
	lw.UnIndent()
	return lw.Render()
}

func (n *PrettyNode) append(lw list.Writer) {
	lw.AppendItem(n.label)
	if len(n.children) == 0 {
		return
	}
	lw.Indent()
	for _, child := range n.children {
		child.append(lw)
	}
	lw.UnIndent()
}
