package grammar

// Validate checks that the rule set can drive a derivation: a start
// symbol exists, every label reachable from the start either expands by
// a rule or is insertable from the vocabulary, expansion terminates, and
// rules branch at most binarily.
func (g *Grammar) Validate() error {
	if g.Start == "" {
		return &Error{Reason: "no start symbol (empty rule set)"}
	}
	for _, r := range g.Rules {
		if len(r.Daughters) < 1 || len(r.Daughters) > 2 {
			return &Error{Label: r.Mother, Reason: "rules must have one or two daughters"}
		}
	}
	for _, r := range g.RedRules {
		if r.Environment != "" && r.Environment != EnvVowelInitial {
			return &Error{Label: r.Target, Reason: "unknown attachment environment " + r.Environment}
		}
	}
	return g.check(g.Start, nil)
}

// check walks the first-rule expansion of a label, carrying the path of
// labels currently being expanded so cycles are caught rather than
// recursed into forever.
func (g *Grammar) check(label string, path []string) error {
	for _, seen := range path {
		if seen == label {
			return &Error{Label: label, Reason: "cyclic expansion with no terminal base"}
		}
	}
	rule, ok := g.RuleFor(label)
	if !ok {
		if !g.HasEntry(label) {
			return &Error{Label: label, Reason: "no rule and no vocabulary entry"}
		}
		return nil
	}
	path = append(path, label)
	for _, d := range rule.Daughters {
		if err := g.check(d.Label, path); err != nil {
			return err
		}
	}
	return nil
}
