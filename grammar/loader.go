package grammar

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// Description file names inside a language folder.
const (
	psrFile   = "psr.txt"
	vocabFile = "vi_rules.txt"
	redFile   = "red.txt"
	scopeFile = "scope.txt"
	phonoFile = "phono_rules.txt"
	evalFile  = "eval.txt"
)

// Load reads a language description folder into a validated grammar.
//
// The folder layout:
//
//	psr.txt          first line is the start symbol; then "Mother,D1[,D2]"
//	vi_rules.txt     "Head[,feature...],Phon" — the last field is the
//	                 exponent, intervening fields are feature requirements
//	red.txt          "Target[,Environment[,Epenthesis]]"
//	scope.txt        first line: "full" or "bisyllabic"
//	phono_rules.txt  "Target,Replacement[,Left[,Right]]" ("#" = word edge)
//	eval.txt         optional expected words, one per line
//
// Daughter labels in psr.txt may carry feature annotations, written
// "T[+past;+pl]"; the features are attached to the node built for that
// daughter. Entry order is preserved throughout: wherever several rules
// or entries compete, the first listed wins.
func Load(dir string) (*Grammar, error) {
	start, rules, err := loadRules(filepath.Join(dir, psrFile))
	if err != nil {
		return nil, err
	}
	vocab, err := loadVocabulary(filepath.Join(dir, vocabFile))
	if err != nil {
		return nil, err
	}
	red, err := loadRedRules(filepath.Join(dir, redFile))
	if err != nil {
		return nil, err
	}
	scope, err := loadScope(filepath.Join(dir, scopeFile))
	if err != nil {
		return nil, err
	}
	phon, err := loadPhonRules(filepath.Join(dir, phonoFile))
	if err != nil {
		return nil, err
	}

	g := New(start, rules, vocab, red, Template{Scope: scope}, phon)
	g.Template.Epenthesis = g.Epenthesis()
	g.Expected = loadExpected(filepath.Join(dir, evalFile))

	if err := g.Validate(); err != nil {
		return nil, err
	}
	return g, nil
}

func readLines(path string) ([]string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", filepath.Base(path), err)
	}
	var lines []string
	for _, line := range strings.Split(string(data), "\n") {
		line = strings.TrimSpace(line)
		if line != "" {
			lines = append(lines, line)
		}
	}
	return lines, nil
}

func loadRules(path string) (string, []Rule, error) {
	lines, err := readLines(path)
	if err != nil {
		return "", nil, err
	}
	if len(lines) == 0 {
		return "", nil, fmt.Errorf("%s: empty rule file", filepath.Base(path))
	}
	start := lines[0]
	var rules []Rule
	for _, line := range lines[1:] {
		fields := splitFields(line)
		if len(fields) < 2 || len(fields) > 3 {
			return "", nil, fmt.Errorf("%s: rule %q must have one or two daughters", filepath.Base(path), line)
		}
		r := Rule{Mother: fields[0]}
		for _, f := range fields[1:] {
			r.Daughters = append(r.Daughters, parseDaughter(f))
		}
		rules = append(rules, r)
	}
	return start, rules, nil
}

// parseDaughter splits a daughter field like "T[+past;+pl]" into its
// label and feature annotations.
func parseDaughter(field string) Daughter {
	open := strings.IndexByte(field, '[')
	if open < 0 || !strings.HasSuffix(field, "]") {
		return Daughter{Label: field}
	}
	d := Daughter{Label: field[:open]}
	for _, f := range strings.Split(field[open+1:len(field)-1], ";") {
		if f = strings.TrimSpace(f); f != "" {
			d.Features = append(d.Features, f)
		}
	}
	return d
}

func loadVocabulary(path string) ([]Entry, error) {
	lines, err := readLines(path)
	if err != nil {
		return nil, err
	}
	var entries []Entry
	for _, line := range lines {
		fields := splitFields(line)
		if len(fields) < 2 {
			return nil, fmt.Errorf("%s: entry %q needs a head and an exponent", filepath.Base(path), line)
		}
		e := Entry{Head: fields[0], Phon: fields[len(fields)-1]}
		for _, f := range fields[1 : len(fields)-1] {
			if f != "" {
				e.Features = append(e.Features, f)
			}
		}
		entries = append(entries, e)
	}
	return entries, nil
}

func loadRedRules(path string) ([]RedRule, error) {
	lines, err := readLines(path)
	if err != nil {
		return nil, err
	}
	var rules []RedRule
	for _, line := range lines {
		fields := splitFields(line)
		r := RedRule{Target: fields[0]}
		if len(fields) > 1 {
			r.Environment = fields[1]
		}
		if len(fields) > 2 {
			r.Epenthesis = fields[2]
		}
		rules = append(rules, r)
	}
	return rules, nil
}

func loadScope(path string) (Scope, error) {
	lines, err := readLines(path)
	if err != nil {
		return "", err
	}
	if len(lines) == 0 {
		return ScopeFull, nil
	}
	switch s := Scope(lines[0]); s {
	case ScopeFull, ScopeBisyllabic:
		return s, nil
	default:
		return "", fmt.Errorf("%s: unknown scope %q", filepath.Base(path), lines[0])
	}
}

func loadPhonRules(path string) ([]PhonRule, error) {
	lines, err := readLines(path)
	if err != nil {
		return nil, err
	}
	var rules []PhonRule
	for _, line := range lines {
		fields := splitFields(line)
		if len(fields) < 2 {
			return nil, fmt.Errorf("%s: rule %q needs a target and a replacement", filepath.Base(path), line)
		}
		r := PhonRule{Target: fields[0], Replacement: fields[1]}
		if len(fields) > 2 {
			r.Left = fields[2]
		}
		if len(fields) > 3 {
			r.Right = fields[3]
		}
		rules = append(rules, r)
	}
	return rules, nil
}

// loadExpected reads the optional evaluation file; absence is not an
// error.
func loadExpected(path string) []string {
	lines, err := readLines(path)
	if err != nil {
		return nil
	}
	return lines
}

func splitFields(line string) []string {
	fields := strings.Split(line, ",")
	for i := range fields {
		fields[i] = strings.TrimSpace(fields[i])
	}
	return fields
}
