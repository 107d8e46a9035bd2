// Package morphology implements vocabulary insertion: assigning each
// terminal node its phonological exponent from the vocabulary table.
package morphology

import (
	"fmt"

	"github.com/romiHill/reduplication-in-dm/grammar"
	"github.com/romiHill/reduplication-in-dm/syntax"
)

// Error reports a terminal no vocabulary entry applies to. A validated
// grammar never produces one, but insertion checks anyway.
type Error struct {
	Label string
}

func (e *Error) Error() string {
	return fmt.Sprintf("vocabulary insertion: no entry for terminal %q", e.Label)
}

// Insert assigns an exponent to every terminal, mutating the tree in
// place. For each terminal the first entry whose head matches the label
// and whose features are satisfied wins.
func Insert(tree *syntax.Node, table *grammar.Table) error {
	for _, t := range tree.Terminals() {
		entry, ok := table.Lookup(t.Label, t.Features)
		if !ok {
			return &Error{Label: t.Label}
		}
		t.Phon = entry.Phon
		t.Inserted = true
	}
	return nil
}

// InsertStepwise performs insertion bottom-up, one tree depth at a
// time: the deepest terminals are spelled out first, then each
// shallower layer. It returns a deep-copied snapshot of the tree after
// every layer, so a renderer can show insertion climbing the tree. The
// final snapshot is the fully inserted tree.
func InsertStepwise(tree *syntax.Node, table *grammar.Table) ([]*syntax.Node, error) {
	byDepth := make(map[int][]*syntax.Node)
	maxDepth := 0
	var walk func(n *syntax.Node, depth int)
	walk = func(n *syntax.Node, depth int) {
		if n.Terminal() {
			byDepth[depth] = append(byDepth[depth], n)
			if depth > maxDepth {
				maxDepth = depth
			}
			return
		}
		for _, c := range n.Children {
			walk(c, depth+1)
		}
	}
	walk(tree, 0)

	var snapshots []*syntax.Node
	for d := maxDepth; d >= 0; d-- {
		terms := byDepth[d]
		if len(terms) == 0 {
			continue
		}
		for _, t := range terms {
			entry, ok := table.Lookup(t.Label, t.Features)
			if !ok {
				return nil, &Error{Label: t.Label}
			}
			t.Phon = entry.Phon
			t.Inserted = true
		}
		snapshots = append(snapshots, tree.Clone())
	}
	return snapshots, nil
}
