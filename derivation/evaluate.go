package derivation

// Report is the outcome of checking generated words against the
// expected word list from the language description.
type Report struct {
	Unexpected []string // generated but not expected
	Missing    []string // expected but not generated
}

// Passed reports whether the generated words exactly cover the
// expected list.
func (r Report) Passed() bool {
	return len(r.Unexpected) == 0 && len(r.Missing) == 0
}

// Evaluate compares generated words with the expected list, ignoring
// order and multiplicity. Each word is reported at most once.
func Evaluate(words, expected []string) Report {
	want := toSet(expected)
	have := toSet(words)

	var report Report
	seen := make(map[string]bool)
	for _, w := range words {
		if !want[w] && !seen[w] {
			seen[w] = true
			report.Unexpected = append(report.Unexpected, w)
		}
	}
	seen = make(map[string]bool)
	for _, w := range expected {
		if !have[w] && !seen[w] {
			seen[w] = true
			report.Missing = append(report.Missing, w)
		}
	}
	return report
}

func toSet(words []string) map[string]bool {
	set := make(map[string]bool, len(words))
	for _, w := range words {
		set[w] = true
	}
	return set
}
