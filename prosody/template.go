package prosody

import (
	"fmt"

	"github.com/romiHill/reduplication-in-dm/grammar"
)

// Error reports a base that cannot satisfy the prosodic template even
// after epenthesis.
type Error struct {
	Source string
	Reason string
}

func (e *Error) Error() string {
	return fmt.Sprintf("template: %q: %s", e.Source, e.Reason)
}

// Fill shapes the copied base material to the prosodic template and
// returns the reduplicant's phonological content.
//
// Full scope copies the base unmodified. Bisyllabic scope keeps the
// first two syllables and strips the second syllable's coda; when the
// base has only one nucleus, the epenthesis vowel completes the second
// syllable (any trailing consonants of the base become its onset).
//
// An empty base yields an empty reduplicant under either scope.
func Fill(source string, tmpl grammar.Template) (string, error) {
	if source == "" {
		return "", nil
	}
	if tmpl.Scope != grammar.ScopeBisyllabic {
		return source, nil
	}

	sylls := Syllabify(source)
	switch NucleusCount(source) {
	case 0:
		return "", &Error{Source: source, Reason: "no syllable nucleus"}
	case 1:
		if tmpl.Epenthesis == "" {
			return "", &Error{Source: source, Reason: "one syllable and no epenthesis vowel to complete the template"}
		}
		return source + tmpl.Epenthesis, nil
	default:
		return sylls[0].String() + sylls[1].Onset + sylls[1].Nucleus, nil
	}
}
