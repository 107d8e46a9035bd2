// Package redup implements reduplicant phrase attachment: finding the
// node a RedP may dominate and restructuring the tree around it.
package redup

import (
	"fmt"
	"strings"

	"github.com/romiHill/reduplication-in-dm/grammar"
	"github.com/romiHill/reduplication-in-dm/prosody"
	"github.com/romiHill/reduplication-in-dm/syntax"
)

// Labels of the nodes inserted by attachment.
const (
	LabelRedP = "RedP"
	LabelRed  = "Red"
)

// Error reports that no node satisfies the reduplication constraints.
type Error struct {
	Targets []string
}

func (e *Error) Error() string {
	return fmt.Sprintf("reduplication: no attachment site for targets %s", strings.Join(e.Targets, ", "))
}

// Attachment is one legal restructuring: a copy of the input tree with
// a [RedP Red base] layer wrapped around the attachment site.
type Attachment struct {
	Tree *syntax.Node    // restructured tree
	Base *syntax.Node    // the dominated constituent inside Tree
	Red  *syntax.Node    // the Red terminal inside Tree
	Rule grammar.RedRule // the rule that licensed the site
}

// Attach wraps a RedP around the first qualifying site in pre-order and
// returns the restructured tree. The input tree is not modified.
func Attach(tree *syntax.Node, g *grammar.Grammar, table *grammar.Table) (Attachment, error) {
	all := AttachAll(tree, g, table)
	if len(all) == 0 {
		return Attachment{}, newError(g)
	}
	return all[0], nil
}

// AttachAll returns one restructured tree per qualifying site, in
// pre-order traversal order. Sites are matched node-first: each node is
// tested against every reduplication rule before the traversal moves
// on, so an earlier node with a later rule still precedes a later node.
func AttachAll(tree *syntax.Node, g *grammar.Grammar, table *grammar.Table) []Attachment {
	var found []Attachment
	index := 0
	tree.Walk(func(n *syntax.Node) bool {
		for _, rule := range g.RedRules {
			if n.Label == rule.Target && environmentHolds(rule, n, table) {
				found = append(found, wrapAt(tree, index, rule))
				break
			}
		}
		index++
		return true
	})
	return found
}

func newError(g *grammar.Grammar) *Error {
	e := &Error{}
	for _, r := range g.RedRules {
		e.Targets = append(e.Targets, r.Target)
	}
	return e
}

// environmentHolds evaluates a rule's phonological environment against
// the material the site would copy. Attachment precedes insertion, but
// the vocabulary table is immutable, so the exponent the base's
// leftmost terminal will receive can be resolved ahead of time.
func environmentHolds(rule grammar.RedRule, site *syntax.Node, table *grammar.Table) bool {
	switch rule.Environment {
	case "":
		return true
	case grammar.EnvVowelInitial:
		return prosody.VowelInitial(BasePhon(site, table))
	default:
		return false
	}
}

// BasePhon resolves, from the vocabulary table, the phonological string
// the site's terminals will spell out, left to right. Unresolvable
// terminals contribute nothing; insertion will reject them later.
func BasePhon(site *syntax.Node, table *grammar.Table) string {
	var sb strings.Builder
	for _, t := range site.Terminals() {
		if entry, ok := table.Lookup(t.Label, t.Features); ok {
			sb.WriteString(entry.Phon)
		}
	}
	return sb.String()
}

// wrapAt clones the tree and wraps [RedP Red _] around the node with
// the given pre-order index.
func wrapAt(tree *syntax.Node, target int, rule grammar.RedRule) Attachment {
	att := Attachment{Rule: rule}
	counter := 0
	att.Tree = wrapNode(tree.Clone(), &counter, target, &att)
	return att
}

func wrapNode(n *syntax.Node, counter *int, target int, att *Attachment) *syntax.Node {
	if *counter == target {
		*counter++
		red := &syntax.Node{Label: LabelRed}
		att.Base = n
		att.Red = red
		return &syntax.Node{Label: LabelRedP, Children: []*syntax.Node{red, n}}
	}
	*counter++
	for i, c := range n.Children {
		n.Children[i] = wrapNode(c, counter, target, att)
	}
	return n
}
