package derivation

import (
	"testing"

	"github.com/romiHill/reduplication-in-dm/grammar"
)

// devoicing returns the grammar for a language whose only verb is baba,
// with full reduplication of the VP and word-initial devoicing.
func devoicing() *grammar.Grammar {
	rules := []grammar.Rule{
		{Mother: "TP", Daughters: []grammar.Daughter{{Label: "T"}, {Label: "VP"}}},
		{Mother: "VP", Daughters: []grammar.Daughter{{Label: "V"}}},
	}
	vocab := []grammar.Entry{
		{Head: "T", Phon: ""},
		{Head: "V", Phon: "baba"},
	}
	red := []grammar.RedRule{{Target: "VP"}}
	phon := []grammar.PhonRule{{Target: "b", Replacement: "p", Left: "#"}}
	return grammar.New("", rules, vocab, red, grammar.Template{Scope: grammar.ScopeFull}, phon)
}

func bisyllabic() *grammar.Grammar {
	rules := []grammar.Rule{
		{Mother: "DP", Daughters: []grammar.Daughter{{Label: "D"}, {Label: "NP"}}},
		{Mother: "NP", Daughters: []grammar.Daughter{{Label: "N"}}},
	}
	vocab := []grammar.Entry{
		{Head: "D", Phon: ""},
		{Head: "N", Phon: "manok"},
	}
	red := []grammar.RedRule{{Target: "NP"}}
	return grammar.New("", rules, vocab, red, grammar.Template{Scope: grammar.ScopeBisyllabic, Epenthesis: "i"}, nil)
}

func TestDeriveBase(t *testing.T) {
	g := devoicing()
	d, err := NewPipeline(g).DeriveBase(g.Table())
	if err != nil {
		t.Fatalf("DeriveBase failed: %v", err)
	}
	if d.Word != "paba" {
		t.Errorf("Expected paba, got %q", d.Word)
	}
	if d.Reduplicated {
		t.Error("Base derivation should not be marked reduplicated")
	}
	if d.ID == "" {
		t.Error("Derivation should carry an id")
	}
}

func TestDeriveFullReduplication(t *testing.T) {
	g := devoicing()
	d, err := NewPipeline(g).Derive(g.Table())
	if err != nil {
		t.Fatalf("Derive failed: %v", err)
	}
	if d.Word != "pabababa" {
		t.Errorf("Expected pabababa, got %q", d.Word)
	}
	if !d.Reduplicated {
		t.Error("Derivation should be marked reduplicated")
	}
}

func TestDeriveBisyllabicReduplication(t *testing.T) {
	g := bisyllabic()
	d, err := NewPipeline(g).Derive(g.Table())
	if err != nil {
		t.Fatalf("Derive failed: %v", err)
	}
	if d.Word != "manomanok" {
		t.Errorf("Expected manomanok, got %q", d.Word)
	}
}

func TestDeriveStageSequence(t *testing.T) {
	g := devoicing()
	d, err := NewPipeline(g).Derive(g.Table())
	if err != nil {
		t.Fatal(err)
	}

	var stages []Stage
	for _, s := range d.Snapshots {
		if len(stages) == 0 || stages[len(stages)-1] != s.Stage {
			stages = append(stages, s.Stage)
		}
	}
	want := []Stage{StageBuilt, StageAttached, StageFilled, StageInserted, StagePhonologized}
	if len(stages) != len(want) {
		t.Fatalf("Expected stages %v, got %v", want, stages)
	}
	for i := range want {
		if stages[i] != want[i] {
			t.Errorf("Stage %d: expected %s, got %s", i, want[i], stages[i])
		}
	}
}

func TestDeriveSnapshotsAreFrozen(t *testing.T) {
	g := devoicing()
	d, err := NewPipeline(g).Derive(g.Table())
	if err != nil {
		t.Fatal(err)
	}

	// The Built snapshot predates attachment and insertion.
	built := d.Snapshots[0]
	if built.Tree.String() != "[TP [T] [VP [V]]]" {
		t.Errorf("Built snapshot contaminated: %s", built.Tree.String())
	}

	// Insertion snapshots fill in bottom-up without touching earlier ones.
	attached := d.Snapshots[1]
	for _, term := range attached.Tree.Terminals() {
		if term.Inserted {
			t.Errorf("Attached snapshot already has %s inserted", term.Label)
		}
	}
}

func TestDeriveFinalSnapshotMatchesWord(t *testing.T) {
	g := devoicing()
	d, err := NewPipeline(g).Derive(g.Table())
	if err != nil {
		t.Fatal(err)
	}
	final := d.Snapshots[len(d.Snapshots)-1]
	if final.Stage != StagePhonologized {
		t.Fatalf("Final snapshot should be phonologized, got %s", final.Stage)
	}
	if final.Tree.Word() != d.Word {
		t.Errorf("Final tree spells %q, word is %q", final.Tree.Word(), d.Word)
	}
}

func TestDeriveIsRepeatable(t *testing.T) {
	g := devoicing()
	p := NewPipeline(g)
	table := g.Table()

	first, err := p.Derive(table)
	if err != nil {
		t.Fatal(err)
	}
	second, err := p.Derive(table)
	if err != nil {
		t.Fatal(err)
	}
	if first.Word != second.Word {
		t.Errorf("Derivation should be deterministic: %q vs %q", first.Word, second.Word)
	}

	// The shared table must not have picked up the Red override.
	if _, ok := table.Lookup("Red", nil); ok {
		t.Error("Red exponent leaked into the shared table")
	}

	base, err := p.DeriveBase(table)
	if err != nil {
		t.Fatal(err)
	}
	if base.Word != "paba" {
		t.Errorf("Base derivation after reduplication should still give paba, got %q", base.Word)
	}
}

func TestDeriveVowelEpenthesisSuffix(t *testing.T) {
	rules := []grammar.Rule{
		{Mother: "TP", Daughters: []grammar.Daughter{{Label: "T"}, {Label: "VP"}}},
		{Mother: "VP", Daughters: []grammar.Daughter{{Label: "V"}}},
	}
	vocab := []grammar.Entry{
		{Head: "T", Phon: ""},
		{Head: "V", Phon: "agas"},
	}
	red := []grammar.RedRule{{Target: "VP", Environment: grammar.EnvVowelInitial, Epenthesis: "d"}}
	g := grammar.New("", rules, vocab, red, grammar.Template{Scope: grammar.ScopeFull, Epenthesis: "d"}, nil)

	d, err := NewPipeline(g).Derive(g.Table())
	if err != nil {
		t.Fatalf("Derive failed: %v", err)
	}
	if d.Word != "agasdagas" {
		t.Errorf("Expected agasdagas, got %q", d.Word)
	}
}

func TestDeriveTemplateFailure(t *testing.T) {
	rules := []grammar.Rule{
		{Mother: "DP", Daughters: []grammar.Daughter{{Label: "D"}, {Label: "NP"}}},
		{Mother: "NP", Daughters: []grammar.Daughter{{Label: "N"}}},
	}
	vocab := []grammar.Entry{
		{Head: "D", Phon: ""},
		{Head: "N", Phon: "ba"},
	}
	red := []grammar.RedRule{{Target: "NP"}}
	g := grammar.New("", rules, vocab, red, grammar.Template{Scope: grammar.ScopeBisyllabic}, nil)

	_, err := NewPipeline(g).Derive(g.Table())
	if err == nil {
		t.Fatal("Monosyllabic base with no epenthesis should fail")
	}
	se, ok := err.(*StageError)
	if !ok {
		t.Fatalf("Expected stage error, got %T", err)
	}
	if se.Stage != StageFilled {
		t.Errorf("Failure should be attributed to the fill stage, got %s", se.Stage)
	}
}

func TestDeriveNoAttachmentSite(t *testing.T) {
	rules := []grammar.Rule{
		{Mother: "TP", Daughters: []grammar.Daughter{{Label: "T"}, {Label: "VP"}}},
		{Mother: "VP", Daughters: []grammar.Daughter{{Label: "V"}}},
	}
	vocab := []grammar.Entry{
		{Head: "T", Phon: ""},
		{Head: "V", Phon: "baba"},
	}
	red := []grammar.RedRule{{Target: "DP"}}
	g := grammar.New("", rules, vocab, red, grammar.Template{Scope: grammar.ScopeFull}, nil)

	_, err := NewPipeline(g).Derive(g.Table())
	if err == nil {
		t.Fatal("No site should fail")
	}
	se, ok := err.(*StageError)
	if !ok || se.Stage != StageAttached {
		t.Errorf("Failure should be attributed to attachment, got %v", err)
	}
}
