// Package render turns organization plans into labeled display trees.
//
// Rendering only needs two capabilities from a tree implementation: creating
// a root node from a label and adding labeled children to any node. Node and
// NodeFactory capture that, and two implementations are provided: a go-pretty
// backed tree for terminals and a minimal in-memory tree. Callers pick one
// when wiring; PlanTree does not care which.
package render
