// Package grammar implements the declarative rule tables that drive a
// derivation: phrase structure rules, vocabulary entries, reduplication
// rules, the prosodic template, and phonological rewrite rules.
// All tables preserve source order; ties are always broken by taking the
// first listed entry.
package grammar

import (
	"fmt"
	"strings"
)

// Scope identifies the prosodic shape a reduplicant must conform to.
type Scope string

const (
	// ScopeFull copies the entire phonological string of the base.
	ScopeFull Scope = "full"
	// ScopeBisyllabic copies the first two syllables of the base,
	// stripping any coda from the second syllable.
	ScopeBisyllabic Scope = "bisyllabic"
)

// Daughter is one expansion slot of a phrase structure rule.
// Features written as T[+past] in the description are attached to the
// node created for this slot.
type Daughter struct {
	Label    string
	Features []string
}

// Rule is a phrase structure rule expanding a mother label into one or
// two daughter labels.
type Rule struct {
	Mother    string
	Daughters []Daughter
}

// Entry is a vocabulary item: the phonological exponent for a terminal
// head, optionally conditioned on features. Phon may be empty (a null
// exponent is still an exponent).
type Entry struct {
	Head     string
	Features []string
	Phon     string
}

// Matches reports whether the entry's feature requirements are satisfied
// by the given node features. An entry with no features matches anything.
func (e Entry) Matches(features []string) bool {
	for _, want := range e.Features {
		found := false
		for _, have := range features {
			if have == want {
				found = true
				break
			}
		}
		if !found {
			return false
		}
	}
	return true
}

// RedRule names a label the reduplicant phrase may dominate, with an
// optional phonological environment restricting attachment and the
// epenthesis vowel used when the template needs padding.
type RedRule struct {
	Target      string
	Environment string // "" (anywhere) or EnvVowelInitial
	Epenthesis  string
}

// EnvVowelInitial restricts attachment to bases whose copied material is
// vowel-initial.
const EnvVowelInitial = "VOWEL"

// Template is the prosodic target shape for the reduplicant.
type Template struct {
	Scope      Scope
	Epenthesis string
}

// PhonRule is a conditioned rewrite: Target becomes Replacement when the
// left context precedes and the right context follows. The boundary
// symbol "#" denotes the word edge; an empty context is unconditioned.
type PhonRule struct {
	Target      string
	Replacement string
	Left        string
	Right       string
}

// String renders the rule in the usual A -> B / L _ R notation.
func (r PhonRule) String() string {
	s := fmt.Sprintf("%s -> %s", r.Target, r.Replacement)
	if r.Left != "" || r.Right != "" {
		s += fmt.Sprintf(" / %s _ %s", r.Left, r.Right)
	}
	return strings.TrimRight(s, " ")
}

// Grammar is a complete language description. It is immutable once
// loaded; every derivation reads from it and none writes back.
type Grammar struct {
	Start      string
	Rules      []Rule
	Vocabulary []Entry
	RedRules   []RedRule
	Template   Template
	PhonRules  []PhonRule
	Expected   []string // optional evaluation word list

	ruleIndex  map[string]int   // mother -> index of first rule
	vocabIndex map[string][]int // head -> entry indices, file order
	headOrder  []string         // heads in order of first appearance
}

// New assembles a grammar from its tables and builds the lookup indices.
// The first rule's mother becomes the start symbol unless start is set.
func New(start string, rules []Rule, vocab []Entry, red []RedRule, tmpl Template, phon []PhonRule) *Grammar {
	g := &Grammar{
		Start:      start,
		Rules:      rules,
		Vocabulary: vocab,
		RedRules:   red,
		Template:   tmpl,
		PhonRules:  phon,
	}
	if g.Start == "" && len(rules) > 0 {
		g.Start = rules[0].Mother
	}
	g.index()
	return g
}

func (g *Grammar) index() {
	g.ruleIndex = make(map[string]int)
	for i, r := range g.Rules {
		if _, seen := g.ruleIndex[r.Mother]; !seen {
			g.ruleIndex[r.Mother] = i
		}
	}
	g.vocabIndex = make(map[string][]int)
	g.headOrder = nil
	for i, e := range g.Vocabulary {
		if _, seen := g.vocabIndex[e.Head]; !seen {
			g.headOrder = append(g.headOrder, e.Head)
		}
		g.vocabIndex[e.Head] = append(g.vocabIndex[e.Head], i)
	}
}

// RuleFor returns the first phrase structure rule expanding the label.
func (g *Grammar) RuleFor(label string) (Rule, bool) {
	i, ok := g.ruleIndex[label]
	if !ok {
		return Rule{}, false
	}
	return g.Rules[i], true
}

// Entries returns the vocabulary entries for a head, in file order.
func (g *Grammar) Entries(head string) []Entry {
	idx := g.vocabIndex[head]
	if len(idx) == 0 {
		return nil
	}
	out := make([]Entry, len(idx))
	for i, j := range idx {
		out[i] = g.Vocabulary[j]
	}
	return out
}

// HasEntry reports whether any vocabulary entry exists for the head.
func (g *Grammar) HasEntry(head string) bool {
	return len(g.vocabIndex[head]) > 0
}

// Heads returns the vocabulary heads in order of first appearance.
func (g *Grammar) Heads() []string {
	out := make([]string, len(g.headOrder))
	copy(out, g.headOrder)
	return out
}

// Epenthesis returns the epenthesis vowel in effect: the template's, or
// the first reduplication rule that declares one.
func (g *Grammar) Epenthesis() string {
	if g.Template.Epenthesis != "" {
		return g.Template.Epenthesis
	}
	for _, r := range g.RedRules {
		if r.Epenthesis != "" {
			return r.Epenthesis
		}
	}
	return ""
}
