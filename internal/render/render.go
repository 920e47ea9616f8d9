package render

import "orgplan/internal/plan"

// Node is a tree node that can grow labeled children.
type Node interface {
	AddChild(label string) Node
}

// NodeFactory creates a root node with the given label.
type NodeFactory func(label string) Node

// PlanTree mirrors the plan as a display tree rooted at the base path. Each
// folder's files are added before its child folders.
func PlanTree(p plan.Plan, newRoot NodeFactory) Node {
	root := newRoot(p.BasePath())
	for _, f := range p.Folders() {
		addFolder(root, f)
	}
	return root
}

// FolderLabel returns "name" or "name — description".
func FolderLabel(f plan.FolderSpec) string {
	if d := f.Description(); d != "" {
		return f.Name() + " — " + d
	}
	return f.Name()
}

func addFolder(parent Node, f plan.FolderSpec) {
	branch := parent.AddChild(FolderLabel(f))
	for _, file := range f.Files() {
		branch.AddChild(file)
	}
	for _, child := range f.Children() {
		addFolder(branch, child)
	}
}
