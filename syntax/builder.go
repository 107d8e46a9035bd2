package syntax

import (
	"github.com/romiHill/reduplication-in-dm/grammar"
)

// Build expands the grammar's start symbol into a tree. Each label with
// a phrase structure rule expands by its first rule; a label with no
// rule becomes a terminal, provided the vocabulary can later insert an
// exponent for it. Expansion is deterministic: alternatives beyond the
// first rule are never explored.
func Build(g *grammar.Grammar) (*Node, error) {
	if g.Start == "" {
		return nil, &grammar.Error{Reason: "no start symbol"}
	}
	return expand(g, grammar.Daughter{Label: g.Start}, nil)
}

func expand(g *grammar.Grammar, d grammar.Daughter, path []string) (*Node, error) {
	n := &Node{Label: d.Label, Features: d.Features}

	rule, ok := g.RuleFor(d.Label)
	if !ok {
		if !g.HasEntry(d.Label) {
			return nil, &grammar.Error{Label: d.Label, Reason: "no rule and no vocabulary entry"}
		}
		return n, nil
	}

	// The path of labels currently being expanded guards against a
	// cyclic rule set that validation did not see.
	for _, seen := range path {
		if seen == d.Label {
			return nil, &grammar.Error{Label: d.Label, Reason: "cyclic expansion with no terminal base"}
		}
	}
	path = append(path, d.Label)

	for _, daughter := range rule.Daughters {
		child, err := expand(g, daughter, path)
		if err != nil {
			return nil, err
		}
		n.Children = append(n.Children, child)
	}
	return n, nil
}
