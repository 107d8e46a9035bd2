package grammar

// Table is the vocabulary view a single derivation inserts from:
// candidate entries per head, tried in file order, first satisfied entry
// wins. A table never aliases grammar state, so per-derivation overrides
// (the reduplicant's computed exponent) cannot leak between derivations.
type Table struct {
	heads   []string
	entries map[string][]Entry
}

// Table returns a vocabulary table over the full entry set.
func (g *Grammar) Table() *Table {
	t := &Table{
		heads:   g.Heads(),
		entries: make(map[string][]Entry, len(g.headOrder)),
	}
	for _, h := range g.headOrder {
		t.entries[h] = g.Entries(h)
	}
	return t
}

// Has reports whether the table holds any entry for the head.
func (t *Table) Has(head string) bool {
	return len(t.entries[head]) > 0
}

// Lookup returns the first entry for the head whose feature requirements
// are satisfied by the given node features.
func (t *Table) Lookup(head string, features []string) (Entry, bool) {
	for _, e := range t.entries[head] {
		if e.Matches(features) {
			return e, true
		}
	}
	return Entry{}, false
}

// WithEntry returns a copy of the table in which the head resolves to the
// single given entry.
func (t *Table) WithEntry(head string, e Entry) *Table {
	out := &Table{
		heads:   make([]string, len(t.heads)),
		entries: make(map[string][]Entry, len(t.entries)+1),
	}
	copy(out.heads, t.heads)
	for h, es := range t.entries {
		out.entries[h] = es
	}
	if !t.Has(head) {
		out.heads = append(out.heads, head)
	}
	out.entries[head] = []Entry{e}
	return out
}

// Variants enumerates every combination of vocabulary choices: one entry
// per head, heads in first-appearance order, the last head varying
// fastest. A grammar whose heads each have a single entry yields exactly
// one variant.
func (g *Grammar) Variants() []*Table {
	groups := make([][]Entry, len(g.headOrder))
	total := 1
	for i, h := range g.headOrder {
		groups[i] = g.Entries(h)
		total *= len(groups[i])
	}

	variants := make([]*Table, 0, total)
	pick := make([]int, len(groups))
	for {
		t := &Table{
			heads:   g.Heads(),
			entries: make(map[string][]Entry, len(groups)),
		}
		for i, h := range g.headOrder {
			t.entries[h] = []Entry{groups[i][pick[i]]}
		}
		variants = append(variants, t)

		i := len(pick) - 1
		for ; i >= 0; i-- {
			pick[i]++
			if pick[i] < len(groups[i]) {
				break
			}
			pick[i] = 0
		}
		if i < 0 {
			break
		}
	}
	return variants
}
