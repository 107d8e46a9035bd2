package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/romiHill/reduplication-in-dm/derivation"
	"github.com/romiHill/reduplication-in-dm/render"
)

func renderTree(args []string) error {
	fs := flag.NewFlagSet("render", flag.ExitOnError)
	input := fs.String("input", "", "Language description folder or YAML file (required)")
	output := fs.String("output", "tree.svg", "SVG file to write")
	reduplicated := fs.Bool("redup", false, "Render the reduplicated derivation instead of the base")

	fs.Usage = func() {
		fmt.Fprintf(os.Stderr, `Usage: redup render [options]

Derive one word for the first vocabulary combination and write its
final tree as a single SVG file.

Options:
`)
		fs.PrintDefaults()
		fmt.Fprintf(os.Stderr, `
Examples:
  redup render -input languages/pangasinan -output base.svg
  redup render -input languages/pangasinan -output redup.svg -redup
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
	variants := g.Variants()
	if len(variants) == 0 {
		return fmt.Errorf("vocabulary is empty")
	}

	pipeline := derivation.NewPipeline(g)
	var d *derivation.Derivation
	if *reduplicated {
		d, err = pipeline.Derive(variants[0])
	} else {
		d, err = pipeline.DeriveBase(variants[0])
	}
	if err != nil {
		return err
	}

	final := d.Snapshots[len(d.Snapshots)-1]
	svg := render.TreeSVG(final.Tree, nil)
	if err := os.WriteFile(*output, []byte(svg), 0o644); err != nil {
		return fmt.Errorf("write %s: %w", *output, err)
	}
	fmt.Printf("✓ Rendered %q to %s\n", d.Word, *output)
	return nil
}
