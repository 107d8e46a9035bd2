// Package phonology applies ordered conditioned rewrite rules to the
// phonological word. Each rule fires exactly once per pass, left to
// right over non-overlapping matches, and the output of each rule feeds
// the next; rules are never iterated to a fixpoint, so rule order is
// significant.
//
// Rewriting is morpheme-aware: every segment remembers which morpheme
// it belongs to, so a rewrite spanning a morpheme boundary updates both
// morphemes and the adjusted per-morpheme strings can be written back
// into the tree.
package phonology

import (
	"strings"

	"github.com/romiHill/reduplication-in-dm/grammar"
)

// segment is one phoneme tagged with the index of its owning morpheme.
type segment struct {
	r     rune
	morph int
}

// Word is a phonological word assembled from morpheme exponents.
type Word struct {
	segs  []segment
	count int // number of morphemes the word was built from
}

// NewWord concatenates morpheme exponents into a tagged word.
func NewWord(morphemes []string) *Word {
	w := &Word{count: len(morphemes)}
	for i, m := range morphemes {
		for _, r := range m {
			w.segs = append(w.segs, segment{r: r, morph: i})
		}
	}
	return w
}

// String returns the flat phonological word.
func (w *Word) String() string {
	var sb strings.Builder
	for _, s := range w.segs {
		sb.WriteRune(s.r)
	}
	return sb.String()
}

// Morphemes redistributes the segments back onto the morphemes the word
// was built from. A morpheme whose segments were all deleted comes back
// empty.
func (w *Word) Morphemes() []string {
	out := make([]string, w.count)
	var sbs = make([]strings.Builder, w.count)
	for _, s := range w.segs {
		sbs[s.morph].WriteRune(s.r)
	}
	for i := range sbs {
		out[i] = sbs[i].String()
	}
	return out
}

// Apply runs the rules in order, once each, and returns the word for
// chaining.
func (w *Word) Apply(rules []grammar.PhonRule) *Word {
	for _, r := range rules {
		w.applyRule(r)
	}
	return w
}

func (w *Word) applyRule(rule grammar.PhonRule) {
	target := []rune(rule.Target)
	if len(target) == 0 {
		return
	}
	replacement := []rune(rule.Replacement)

	var out []segment
	i := 0
	for i < len(w.segs) {
		if !w.matchAt(i, target, rule) {
			out = append(out, w.segs[i])
			i++
			continue
		}
		// Replacement segments inherit morpheme ownership positionally
		// from the segments they replace, so a rewrite at a morpheme
		// boundary keeps both morphemes' material with them.
		for j, r := range replacement {
			k := j
			if k >= len(target) {
				k = len(target) - 1
			}
			out = append(out, segment{r: r, morph: w.segs[i+k].morph})
		}
		i += len(target)
	}
	w.segs = out
}

// matchAt reports whether the target matches at position i with the
// rule's contexts satisfied. The boundary symbol "#" anchors a context
// to the word edge.
func (w *Word) matchAt(i int, target []rune, rule grammar.PhonRule) bool {
	if i+len(target) > len(w.segs) {
		return false
	}
	for j, r := range target {
		if w.segs[i+j].r != r {
			return false
		}
	}
	switch rule.Left {
	case "":
	case "#":
		if i != 0 {
			return false
		}
	default:
		left := []rune(rule.Left)
		if i < len(left) {
			return false
		}
		for j, r := range left {
			if w.segs[i-len(left)+j].r != r {
				return false
			}
		}
	}
	end := i + len(target)
	switch rule.Right {
	case "":
	case "#":
		if end != len(w.segs) {
			return false
		}
	default:
		right := []rune(rule.Right)
		if end+len(right) > len(w.segs) {
			return false
		}
		for j, r := range right {
			if w.segs[end+j].r != r {
				return false
			}
		}
	}
	return true
}

// Apply runs the rules over a flat string, without morpheme tracking.
func Apply(s string, rules []grammar.PhonRule) string {
	return NewWord([]string{s}).Apply(rules).String()
}
