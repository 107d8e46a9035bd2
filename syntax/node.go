// Package syntax implements labeled syntactic trees and their
// construction from phrase structure rules. Branching is unary or
// binary only; a node is terminal iff it has no children.
package syntax

import (
	"strings"
)

// Node is a labeled syntactic unit. Terminals acquire phonological
// content during vocabulary insertion; until then Inserted is false and
// Phon is empty.
type Node struct {
	Label    string
	Features []string
	Children []*Node
	Phon     string
	Inserted bool
}

// Terminal reports whether the node has no children.
func (n *Node) Terminal() bool {
	return len(n.Children) == 0
}

// Clone returns a deep copy. Snapshots taken during a derivation clone
// the tree so later stages cannot retroactively alter them.
func (n *Node) Clone() *Node {
	if n == nil {
		return nil
	}
	c := &Node{
		Label:    n.Label,
		Phon:     n.Phon,
		Inserted: n.Inserted,
	}
	if n.Features != nil {
		c.Features = make([]string, len(n.Features))
		copy(c.Features, n.Features)
	}
	for _, child := range n.Children {
		c.Children = append(c.Children, child.Clone())
	}
	return c
}

// Walk visits the tree in pre-order. The visitor returns false to stop
// the traversal.
func (n *Node) Walk(visit func(*Node) bool) bool {
	if n == nil {
		return true
	}
	if !visit(n) {
		return false
	}
	for _, child := range n.Children {
		if !child.Walk(visit) {
			return false
		}
	}
	return true
}

// Terminals returns the terminal nodes in left-to-right order.
func (n *Node) Terminals() []*Node {
	var out []*Node
	n.Walk(func(node *Node) bool {
		if node.Terminal() {
			out = append(out, node)
		}
		return true
	})
	return out
}

// Depth returns the length of the longest path from the node to a leaf.
// A terminal has depth zero.
func (n *Node) Depth() int {
	max := -1
	for _, child := range n.Children {
		if d := child.Depth(); d > max {
			max = d
		}
	}
	return max + 1
}

// Word concatenates the inserted phonological content of the terminals,
// left to right.
func (n *Node) Word() string {
	var sb strings.Builder
	for _, t := range n.Terminals() {
		sb.WriteString(t.Phon)
	}
	return sb.String()
}

// String renders the tree as a labeled bracketing, with inserted
// exponents after a colon: [TP [T:ta] [VP [V:ba]]].
func (n *Node) String() string {
	var sb strings.Builder
	n.bracket(&sb)
	return sb.String()
}

func (n *Node) bracket(sb *strings.Builder) {
	sb.WriteByte('[')
	sb.WriteString(n.Label)
	if n.Inserted {
		sb.WriteByte(':')
		sb.WriteString(n.Phon)
	}
	for _, child := range n.Children {
		sb.WriteByte(' ')
		child.bracket(sb)
	}
	sb.WriteByte(']')
}
