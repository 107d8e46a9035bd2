// Package derivation runs the generation pipeline: build the syntax
// tree, attach the reduplicant phrase, fill the prosodic template,
// insert vocabulary, and apply phonology. Every stage freezes a
// deep-copied snapshot of the tree, so the full derivation can be
// rendered step by step afterwards.
package derivation

import (
	"fmt"

	"github.com/google/uuid"

	"github.com/romiHill/reduplication-in-dm/grammar"
	"github.com/romiHill/reduplication-in-dm/morphology"
	"github.com/romiHill/reduplication-in-dm/phonology"
	"github.com/romiHill/reduplication-in-dm/prosody"
	"github.com/romiHill/reduplication-in-dm/redup"
	"github.com/romiHill/reduplication-in-dm/syntax"
)

// Stage names the pipeline states a derivation moves through.
type Stage string

const (
	StageBuilt        Stage = "Built"
	StageAttached     Stage = "Attached"
	StageFilled       Stage = "Filled"
	StageInserted     Stage = "Inserted"
	StagePhonologized Stage = "Phonologized"
)

// Snapshot is a frozen tree state tagged with the stage that produced
// it. Insertion emits one snapshot per tree layer, numbered by Step.
type Snapshot struct {
	Stage Stage
	Step  int
	Note  string
	Tree  *syntax.Node
}

// Derivation is one completed run of the pipeline.
type Derivation struct {
	ID           string
	Reduplicated bool
	Snapshots    []Snapshot
	Word         string
}

// StageError wraps a stage failure so the report names where the
// pipeline aborted. A failed derivation emits no partial output.
type StageError struct {
	Stage Stage
	Err   error
}

func (e *StageError) Error() string {
	return fmt.Sprintf("%s: %v", e.Stage, e.Err)
}

func (e *StageError) Unwrap() error {
	return e.Err
}

// Pipeline derives words from an immutable grammar. A pipeline may be
// shared across goroutines; each derivation works on its own tree.
type Pipeline struct {
	g *grammar.Grammar
}

// NewPipeline creates a pipeline over the grammar.
func NewPipeline(g *grammar.Grammar) *Pipeline {
	return &Pipeline{g: g}
}

// DeriveBase derives the plain (non-reduplicated) word using the given
// vocabulary table.
func (p *Pipeline) DeriveBase(table *grammar.Table) (*Derivation, error) {
	d := &Derivation{ID: uuid.New().String()}

	tree, err := syntax.Build(p.g)
	if err != nil {
		return nil, &StageError{Stage: StageBuilt, Err: err}
	}
	d.snapshot(StageBuilt, 0, "", tree)

	if err := p.finish(d, tree, table); err != nil {
		return nil, err
	}
	return d, nil
}

// Derive derives the reduplicated word at the first qualifying
// attachment site.
func (p *Pipeline) Derive(table *grammar.Table) (*Derivation, error) {
	tree, err := syntax.Build(p.g)
	if err != nil {
		return nil, &StageError{Stage: StageBuilt, Err: err}
	}
	att, err := redup.Attach(tree, p.g, table)
	if err != nil {
		return nil, &StageError{Stage: StageAttached, Err: err}
	}
	return p.DeriveAt(att, table)
}

// DeriveAt derives the reduplicated word for one specific attachment,
// as produced by redup.Attach or redup.AttachAll.
func (p *Pipeline) DeriveAt(att redup.Attachment, table *grammar.Table) (*Derivation, error) {
	d := &Derivation{ID: uuid.New().String(), Reduplicated: true}

	base, err := syntax.Build(p.g)
	if err != nil {
		return nil, &StageError{Stage: StageBuilt, Err: err}
	}
	d.snapshot(StageBuilt, 0, "", base)
	d.snapshot(StageAttached, 0, "", att.Tree)

	source := redup.BasePhon(att.Base, table)
	content, err := prosody.Fill(source, p.g.Template)
	if err != nil {
		return nil, &StageError{Stage: StageFilled, Err: err}
	}
	// Vowel-conditioned attachment carries an epenthesis suffix under
	// full copy: the copied material ends in the template vowel.
	if att.Rule.Environment == grammar.EnvVowelInitial && p.g.Template.Scope == grammar.ScopeFull {
		content += p.epenthesis(att.Rule)
	}
	d.snapshot(StageFilled, 0, fmt.Sprintf("Red = %q", content), att.Tree)

	table = table.WithEntry(redup.LabelRed, grammar.Entry{Head: redup.LabelRed, Phon: content})
	if err := p.finish(d, att.Tree, table); err != nil {
		return nil, err
	}
	return d, nil
}

func (p *Pipeline) epenthesis(rule grammar.RedRule) string {
	if rule.Epenthesis != "" {
		return rule.Epenthesis
	}
	return p.g.Template.Epenthesis
}

// finish runs the insertion and phonology stages over the tree and
// records the final word.
func (p *Pipeline) finish(d *Derivation, tree *syntax.Node, table *grammar.Table) error {
	layers, err := morphology.InsertStepwise(tree, table)
	if err != nil {
		return &StageError{Stage: StageInserted, Err: err}
	}
	for i, layer := range layers {
		// Already deep-copied by InsertStepwise.
		d.Snapshots = append(d.Snapshots, Snapshot{Stage: StageInserted, Step: i, Tree: layer})
	}

	terminals := tree.Terminals()
	morphemes := make([]string, len(terminals))
	for i, t := range terminals {
		morphemes[i] = t.Phon
	}
	word := phonology.NewWord(morphemes).Apply(p.g.PhonRules)
	for i, m := range word.Morphemes() {
		terminals[i].Phon = m
	}
	d.Word = word.String()
	d.snapshot(StagePhonologized, 0, d.Word, tree)
	return nil
}

func (d *Derivation) snapshot(stage Stage, step int, note string, tree *syntax.Node) {
	d.Snapshots = append(d.Snapshots, Snapshot{Stage: stage, Step: step, Note: note, Tree: tree.Clone()})
}
