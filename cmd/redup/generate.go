package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"runtime"

	"github.com/romiHill/reduplication-in-dm/derivation"
	"github.com/romiHill/reduplication-in-dm/render"
	"github.com/romiHill/reduplication-in-dm/store"
)

func generate(args []string) error {
	fs := flag.NewFlagSet("generate", flag.ExitOnError)
	input := fs.String("input", "", "Language description folder or YAML file (required)")
	output := fs.String("output", "", "Folder for SVG diagrams and the word list (required)")
	dbPath := fs.String("db", "", "SQLite file to log the run (optional)")
	jobs := fs.Int("jobs", runtime.NumCPU(), "Parallel derivations")
	debug := fs.Bool("debug", false, "Verbose logging")

	fs.Usage = func() {
		fmt.Fprintf(os.Stderr, `Usage: redup generate [options]

Derive the base word and every reduplicated variant for each vocabulary
combination, write one SVG per derivation step, the word list, and the
evaluation report when the description carries expected words.

Options:
`)
		fs.PrintDefaults()
		fmt.Fprintf(os.Stderr, `
Examples:
  redup generate -input languages/pangasinan -output out/

  # Log the run to a database
  redup generate -input languages/pangasinan -output out/ -db runs.db
`)
	}

	if err := fs.Parse(args); err != nil {
		return err
	}
	if *input == "" || *output == "" {
		fs.Usage()
		return fmt.Errorf("-input and -output required")
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

	ctx := context.Background()
	results, err := derivation.NewGenerator(g, logger, *jobs).Generate(ctx)
	if err != nil {
		return err
	}

	if err := render.PrepareDir(*output); err != nil {
		return err
	}
	failures := 0
	for _, r := range results {
		if r.Err != nil {
			failures++
			fmt.Fprintf(os.Stderr, "derivation failed (variant %d, site %d): %v\n", r.Variant, r.Site, r.Err)
			continue
		}
		prefix := fmt.Sprintf("base_word_%02d", r.Variant)
		if r.Reduplicated {
			prefix = fmt.Sprintf("redup_word_%02d_site_%02d", r.Variant, r.Site)
		}
		if err := render.WriteDerivation(*output, prefix, r.Derivation, nil); err != nil {
			return err
		}
	}

	base, reduplicated := derivation.Words(results)
	wordsPath := filepath.Join(*output, "all_words.txt")
	if err := render.WriteWords(wordsPath, base, reduplicated); err != nil {
		return err
	}

	fmt.Printf("✓ Generated %d word(s) to %s\n", len(base)+len(reduplicated), *output)
	fmt.Printf("  Base words: %d\n", len(base))
	fmt.Printf("  Reduplicated words: %d\n", len(reduplicated))
	if failures > 0 {
		fmt.Printf("  Failed derivations: %d\n", failures)
	}

	if len(g.Expected) > 0 {
		printReport(derivation.Evaluate(append(base, reduplicated...), g.Expected))
	}

	if *dbPath != "" {
		st, err := store.Open(*dbPath)
		if err != nil {
			return err
		}
		defer st.Close()
		runID, err := st.LogRun(ctx, *input, results)
		if err != nil {
			return err
		}
		fmt.Printf("  Run logged as %s\n", runID)
	}
	return nil
}

func printReport(report derivation.Report) {
	if report.Passed() {
		fmt.Println("✓ Evaluation passed")
		return
	}
	if len(report.Unexpected) > 0 {
		fmt.Println("--- generated words not in evaluation file ---")
		for _, w := range report.Unexpected {
			fmt.Println(w)
		}
	}
	if len(report.Missing) > 0 {
		fmt.Println("--- evaluation words not generated ---")
		for _, w := range report.Missing {
			fmt.Println(w)
		}
	}
}
