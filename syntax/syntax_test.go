package syntax

import (
	"testing"

	"github.com/romiHill/reduplication-in-dm/grammar"
)

func testGrammar() *grammar.Grammar {
	rules := []grammar.Rule{
		{Mother: "TP", Daughters: []grammar.Daughter{{Label: "T", Features: []string{"+past"}}, {Label: "VP"}}},
		{Mother: "VP", Daughters: []grammar.Daughter{{Label: "V"}}},
	}
	vocab := []grammar.Entry{
		{Head: "T", Phon: "ta"},
		{Head: "V", Phon: "baba"},
	}
	return grammar.New("", rules, vocab, nil, grammar.Template{Scope: grammar.ScopeFull}, nil)
}

func TestBuildExpandsStartSymbol(t *testing.T) {
	tree, err := Build(testGrammar())
	if err != nil {
		t.Fatalf("Build failed: %v", err)
	}
	if tree.String() != "[TP [T] [VP [V]]]" {
		t.Errorf("Unexpected tree: %s", tree.String())
	}
}

func TestBuildAttachesDaughterFeatures(t *testing.T) {
	tree, err := Build(testGrammar())
	if err != nil {
		t.Fatalf("Build failed: %v", err)
	}
	tNode := tree.Children[0]
	if tNode.Label != "T" {
		t.Fatalf("Expected T first, got %s", tNode.Label)
	}
	if len(tNode.Features) != 1 || tNode.Features[0] != "+past" {
		t.Errorf("Expected features [+past], got %v", tNode.Features)
	}
}

func TestBuildMissingEntry(t *testing.T) {
	g := grammar.New("TP",
		[]grammar.Rule{{Mother: "TP", Daughters: []grammar.Daughter{{Label: "T"}}}},
		nil, nil, grammar.Template{Scope: grammar.ScopeFull}, nil)
	if _, err := Build(g); err == nil {
		t.Error("Terminal with no vocabulary entry should fail")
	}
}

func TestBuildCyclicRules(t *testing.T) {
	g := grammar.New("A",
		[]grammar.Rule{
			{Mother: "A", Daughters: []grammar.Daughter{{Label: "B"}}},
			{Mother: "B", Daughters: []grammar.Daughter{{Label: "A"}}},
		},
		nil, nil, grammar.Template{Scope: grammar.ScopeFull}, nil)
	if _, err := Build(g); err == nil {
		t.Error("Cyclic expansion should fail")
	}
}

func TestBuildEmptyGrammar(t *testing.T) {
	g := grammar.New("", nil, nil, nil, grammar.Template{Scope: grammar.ScopeFull}, nil)
	if _, err := Build(g); err == nil {
		t.Error("Empty grammar should fail")
	}
}

func TestTerminalsLeftToRight(t *testing.T) {
	tree, err := Build(testGrammar())
	if err != nil {
		t.Fatal(err)
	}
	terms := tree.Terminals()
	if len(terms) != 2 || terms[0].Label != "T" || terms[1].Label != "V" {
		t.Errorf("Unexpected terminals: %v", terms)
	}
}

func TestCloneIsDeep(t *testing.T) {
	tree, err := Build(testGrammar())
	if err != nil {
		t.Fatal(err)
	}
	clone := tree.Clone()
	clone.Children[0].Phon = "xx"
	clone.Children[0].Inserted = true
	clone.Children[0].Features[0] = "+pl"

	if tree.Children[0].Phon != "" || tree.Children[0].Inserted {
		t.Error("Clone should not share node state with the original")
	}
	if tree.Children[0].Features[0] != "+past" {
		t.Error("Clone should not share feature slices with the original")
	}
}

func TestDepth(t *testing.T) {
	tree, err := Build(testGrammar())
	if err != nil {
		t.Fatal(err)
	}
	if tree.Depth() != 2 {
		t.Errorf("Expected depth 2, got %d", tree.Depth())
	}
	if tree.Children[0].Depth() != 0 {
		t.Errorf("Terminal should have depth 0, got %d", tree.Children[0].Depth())
	}
}

func TestWordConcatenatesTerminals(t *testing.T) {
	tree, err := Build(testGrammar())
	if err != nil {
		t.Fatal(err)
	}
	terms := tree.Terminals()
	terms[0].Phon, terms[0].Inserted = "ta", true
	terms[1].Phon, terms[1].Inserted = "baba", true
	if tree.Word() != "tababa" {
		t.Errorf("Expected tababa, got %s", tree.Word())
	}
}

func TestStringShowsInsertedExponents(t *testing.T) {
	tree, err := Build(testGrammar())
	if err != nil {
		t.Fatal(err)
	}
	terms := tree.Terminals()
	terms[0].Phon, terms[0].Inserted = "ta", true
	if tree.String() != "[TP [T:ta] [VP [V]]]" {
		t.Errorf("Unexpected bracketing: %s", tree.String())
	}
}

func TestWalkStopsEarly(t *testing.T) {
	tree, err := Build(testGrammar())
	if err != nil {
		t.Fatal(err)
	}
	visited := 0
	tree.Walk(func(n *Node) bool {
		visited++
		return n.Label != "T"
	})
	if visited != 2 {
		t.Errorf("Walk should stop after T, visited %d nodes", visited)
	}
}
