package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"runtime"

	"github.com/romiHill/reduplication-in-dm/derivation"
)

func words(args []string) error {
	fs := flag.NewFlagSet("words", flag.ExitOnError)
	input := fs.String("input", "", "Language description folder or YAML file (required)")
	jobs := fs.Int("jobs", runtime.NumCPU(), "Parallel derivations")
	debug := fs.Bool("debug", false, "Verbose logging")

	fs.Usage = func() {
		fmt.Fprintf(os.Stderr, `Usage: redup words [options]

Derive every word the language description licenses and print the word
list, without writing any diagrams.

Options:
`)
		fs.PrintDefaults()
		fmt.Fprintf(os.Stderr, `
Example:
  redup words -input languages/pangasinan
`)
	}

	if err := fs.Parse(args); err != nil {
		return err
	}
	if *input == "" {
		fs.Usage()
		return fmt.Errorf("-input required")
	}

	logger, err := newLogger(*debug)
	if err != nil {
		return fmt.Errorf("logger: %w", err)
	}
	defer logger.Sync()

	g, err := loadDescription(*input)
	if err != nil {
		return err
	}

	results, err := derivation.NewGenerator(g, logger, *jobs).Generate(context.Background())
	if err != nil {
		return err
	}
	for _, r := range results {
		if r.Err != nil {
			fmt.Fprintf(os.Stderr, "derivation failed (variant %d, site %d): %v\n", r.Variant, r.Site, r.Err)
		}
	}

	base, reduplicated := derivation.Words(results)
	idx := 0
	for _, w := range base {
		fmt.Printf("%d. %s\n", idx, w)
		idx++
	}
	fmt.Println("--- reduplicated words ---")
	for _, w := range reduplicated {
		fmt.Printf("%d. %s\n", idx, w)
		idx++
	}

	if len(g.Expected) > 0 {
		printReport(derivation.Evaluate(append(base, reduplicated...), g.Expected))
	}
	return nil
}
