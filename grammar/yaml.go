package grammar

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// yamlDescription is the single-file YAML form of a language
// description, equivalent to the text folder layout.
type yamlDescription struct {
	Start         string         `yaml:"start"`
	Rules         []yamlRule     `yaml:"rules"`
	Vocabulary    []yamlEntry    `yaml:"vocabulary"`
	Reduplication yamlRedup      `yaml:"reduplication"`
	Phonology     []yamlPhonRule `yaml:"phonology"`
	Expected      []string       `yaml:"expected"`
}

type yamlRule struct {
	Mother    string   `yaml:"mother"`
	Daughters []string `yaml:"daughters"`
}

type yamlEntry struct {
	Head     string   `yaml:"head"`
	Features []string `yaml:"features"`
	Phon     string   `yaml:"phon"`
}

type yamlRedup struct {
	Scope      string       `yaml:"scope"`
	Epenthesis string       `yaml:"epenthesis"`
	Targets    []yamlTarget `yaml:"targets"`
}

type yamlTarget struct {
	Target      string `yaml:"target"`
	Environment string `yaml:"environment"`
	Epenthesis  string `yaml:"epenthesis"`
}

type yamlPhonRule struct {
	Target      string `yaml:"target"`
	Replacement string `yaml:"replacement"`
	Left        string `yaml:"left"`
	Right       string `yaml:"right"`
}

// LoadYAML reads a language description from a single YAML document.
// Sequence order in the document carries the same first-wins meaning as
// line order in the text format.
func LoadYAML(path string) (*Grammar, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read description: %w", err)
	}
	var desc yamlDescription
	if err := yaml.Unmarshal(data, &desc); err != nil {
		return nil, fmt.Errorf("parse description: %w", err)
	}

	var rules []Rule
	for _, yr := range desc.Rules {
		r := Rule{Mother: yr.Mother}
		for _, d := range yr.Daughters {
			r.Daughters = append(r.Daughters, parseDaughter(d))
		}
		rules = append(rules, r)
	}

	var vocab []Entry
	for _, ye := range desc.Vocabulary {
		vocab = append(vocab, Entry{Head: ye.Head, Features: ye.Features, Phon: ye.Phon})
	}

	var red []RedRule
	for _, yt := range desc.Reduplication.Targets {
		red = append(red, RedRule{
			Target:      yt.Target,
			Environment: yt.Environment,
			Epenthesis:  yt.Epenthesis,
		})
	}

	scope := Scope(desc.Reduplication.Scope)
	if scope == "" {
		scope = ScopeFull
	}
	if scope != ScopeFull && scope != ScopeBisyllabic {
		return nil, fmt.Errorf("parse description: unknown scope %q", desc.Reduplication.Scope)
	}

	var phon []PhonRule
	for _, yp := range desc.Phonology {
		phon = append(phon, PhonRule(yp))
	}

	g := New(desc.Start, rules, vocab, red, Template{Scope: scope, Epenthesis: desc.Reduplication.Epenthesis}, phon)
	g.Template.Epenthesis = g.Epenthesis()
	g.Expected = desc.Expected

	if err := g.Validate(); err != nil {
		return nil, err
	}
	return g, nil
}
