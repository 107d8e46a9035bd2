package main

import (
	"flag"
	"fmt"
	"os"
)

func validate(args []string) error {
	fs := flag.NewFlagSet("validate", flag.ExitOnError)
	input := fs.String("input", "", "Language description folder or YAML file (required)")

	fs.Usage = func() {
		fmt.Fprintf(os.Stderr, `Usage: redup validate [options]

Load a language description and report whether it is well formed:
the start symbol expands, every branch reaches a terminal with a
vocabulary entry, and the reduplication rules are consistent.

Options:
`)
		fs.PrintDefaults()
		fmt.Fprintf(os.Stderr, `
Example:
  redup validate -input languages/pangasinan
`)
	}

	if err := fs.Parse(args); err != nil {
		return err
	}
	if *input == "" {
		fs.Usage()
		return fmt.Errorf("-input required")
	}

	g, err := loadDescription(*input)
	if err != nil {
		return err
	}

	fmt.Printf("✓ Description is valid: %s\n", *input)
	fmt.Printf("  Phrase structure rules: %d\n", len(g.Rules))
	fmt.Printf("  Vocabulary entries: %d\n", len(g.Vocabulary))
	fmt.Printf("  Reduplication rules: %d\n", len(g.RedRules))
	fmt.Printf("  Phonological rules: %d\n", len(g.PhonRules))
	fmt.Printf("  Template scope: %s\n", g.Template.Scope)
	if len(g.Expected) > 0 {
		fmt.Printf("  Expected words: %d\n", len(g.Expected))
	}
	return nil
}
