package prosody

import (
	"testing"

	"github.com/romiHill/reduplication-in-dm/grammar"
)

func TestSyllabifyOnsetMaximization(t *testing.T) {
	cases := []struct {
		in   string
		want []string
	}{
		{"manok", []string{"ma", "nok"}},
		{"baba", []string{"ba", "ba"}},
		{"amigo", []string{"a", "mi", "go"}},
		{"strap", []string{"strap"}},
		{"a", []string{"a"}},
	}
	for _, c := range cases {
		sylls := Syllabify(c.in)
		if len(sylls) != len(c.want) {
			t.Errorf("%s: expected %d syllables, got %d", c.in, len(c.want), len(sylls))
			continue
		}
		for i, s := range sylls {
			if s.String() != c.want[i] {
				t.Errorf("%s: syllable %d is %s, want %s", c.in, i, s.String(), c.want[i])
			}
		}
	}
}

func TestSyllabifyNoVowel(t *testing.T) {
	sylls := Syllabify("pst")
	if len(sylls) != 1 {
		t.Fatalf("Expected 1 syllable, got %d", len(sylls))
	}
	if sylls[0].Nucleus != "" || sylls[0].Onset != "pst" {
		t.Errorf("Vowelless string should be a single nucleus-less syllable, got %+v", sylls[0])
	}
}

func TestVowelInitial(t *testing.T) {
	if !VowelInitial("amigo") {
		t.Error("amigo is vowel-initial")
	}
	if VowelInitial("baba") {
		t.Error("baba is not vowel-initial")
	}
	if VowelInitial("") {
		t.Error("Empty string is not vowel-initial")
	}
}

func TestNucleusCount(t *testing.T) {
	if n := NucleusCount("amigo"); n != 3 {
		t.Errorf("Expected 3 nuclei, got %d", n)
	}
	if n := NucleusCount("pst"); n != 0 {
		t.Errorf("Expected 0 nuclei, got %d", n)
	}
}

func TestFillFullCopiesSource(t *testing.T) {
	got, err := Fill("manok", grammar.Template{Scope: grammar.ScopeFull})
	if err != nil {
		t.Fatal(err)
	}
	if got != "manok" {
		t.Errorf("Full scope should copy the base, got %q", got)
	}
}

func TestFillBisyllabicStripsSecondCoda(t *testing.T) {
	cases := []struct {
		in, want string
	}{
		{"manok", "mano"},
		{"amigo", "ami"},
		{"baba", "baba"},
		{"balikbayan", "bali"},
	}
	tmpl := grammar.Template{Scope: grammar.ScopeBisyllabic, Epenthesis: "i"}
	for _, c := range cases {
		got, err := Fill(c.in, tmpl)
		if err != nil {
			t.Errorf("%s: %v", c.in, err)
			continue
		}
		if got != c.want {
			t.Errorf("%s: got %q, want %q", c.in, got, c.want)
		}
	}
}

func TestFillMonosyllableTakesEpenthesis(t *testing.T) {
	got, err := Fill("ba", grammar.Template{Scope: grammar.ScopeBisyllabic, Epenthesis: "i"})
	if err != nil {
		t.Fatal(err)
	}
	if got != "bai" {
		t.Errorf("Expected bai, got %q", got)
	}

	// Trailing consonants become the second syllable's onset.
	got, err = Fill("bat", grammar.Template{Scope: grammar.ScopeBisyllabic, Epenthesis: "i"})
	if err != nil {
		t.Fatal(err)
	}
	if got != "bati" {
		t.Errorf("Expected bati, got %q", got)
	}
}

func TestFillMonosyllableWithoutEpenthesis(t *testing.T) {
	_, err := Fill("ba", grammar.Template{Scope: grammar.ScopeBisyllabic})
	if err == nil {
		t.Fatal("One syllable with no epenthesis vowel should fail")
	}
	if _, ok := err.(*Error); !ok {
		t.Errorf("Expected template error, got %T", err)
	}
}

func TestFillNoNucleus(t *testing.T) {
	_, err := Fill("pst", grammar.Template{Scope: grammar.ScopeBisyllabic, Epenthesis: "i"})
	if err == nil {
		t.Error("Vowelless base should fail the bisyllabic template")
	}
}

func TestFillEmptySource(t *testing.T) {
	got, err := Fill("", grammar.Template{Scope: grammar.ScopeBisyllabic, Epenthesis: "i"})
	if err != nil {
		t.Fatal(err)
	}
	if got != "" {
		t.Errorf("Empty base should yield an empty reduplicant, got %q", got)
	}
}
