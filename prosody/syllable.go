// Package prosody implements syllabification and the prosodic template
// that shapes a reduplicant: full copy, or two syllables with no coda,
// padded by an epenthesis vowel when the base is too short.
package prosody

import "strings"

var vowels = map[rune]bool{'a': true, 'e': true, 'i': true, 'o': true, 'u': true}

// IsVowel reports whether the segment is a vowel (a syllable nucleus).
func IsVowel(r rune) bool {
	return vowels[r]
}

// VowelInitial reports whether the string begins with a vowel.
func VowelInitial(s string) bool {
	for _, r := range s {
		return IsVowel(r)
	}
	return false
}

// Syllable is an onset-nucleus-coda span. Every vowel is the nucleus of
// exactly one syllable.
type Syllable struct {
	Onset   string
	Nucleus string
	Coda    string
}

func (s Syllable) String() string {
	return s.Onset + s.Nucleus + s.Coda
}

// Syllabify splits a string into syllables by onset maximization:
// consonants attach to the following vowel's onset; consonants with no
// following vowel close the final syllable as its coda. A string with
// no vowel at all yields a single nucleus-less syllable.
func Syllabify(s string) []Syllable {
	var sylls []Syllable
	var onset strings.Builder
	for _, r := range s {
		if IsVowel(r) {
			sylls = append(sylls, Syllable{Onset: onset.String(), Nucleus: string(r)})
			onset.Reset()
		} else {
			onset.WriteRune(r)
		}
	}
	if onset.Len() > 0 {
		if len(sylls) == 0 {
			return []Syllable{{Onset: onset.String()}}
		}
		sylls[len(sylls)-1].Coda = onset.String()
	}
	return sylls
}

// NucleusCount returns the number of syllable nuclei in the string.
func NucleusCount(s string) int {
	n := 0
	for _, r := range s {
		if IsVowel(r) {
			n++
		}
	}
	return n
}
