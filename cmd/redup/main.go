package main

import (
	"fmt"
	"os"
)

func main() {
	if len(os.Args) < 2 {
		printUsage()
		os.Exit(1)
	}

	command := os.Args[1]
	args := os.Args[2:]

	switch command {
	case "generate":
		if err := generate(args); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
	case "words":
		if err := words(args); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
	case "validate":
		if err := validate(args); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
	case "render":
		if err := renderTree(args); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
	case "help", "-h", "--help":
		printUsage()
	case "version", "-v", "--version":
		fmt.Println("redup version 1.0.0")
	default:
		fmt.Fprintf(os.Stderr, "Unknown command: %s\n\n", command)
		printUsage()
		os.Exit(1)
	}
}

func printUsage() {
	fmt.Println(`redup - reduplicated word form generator (Distributed Morphology)

Usage:
  redup <command> [options]

Commands:
  generate   Derive every word a language description licenses and save
             the step-by-step derivation diagrams
  words      Print the generated words without writing diagrams
  validate   Check a language description for problems
  render     Render a single derivation tree as SVG
  help       Show this help message
  version    Show version information

Examples:
  # Full run: SVG per derivation step plus all_words.txt
  redup generate -input languages/pangasinan -output out/

  # Just the words
  redup words -input languages/pangasinan

  # Single reduplicated tree
  redup render -input languages/pangasinan -output tree.svg --redup

For command-specific help, run:
  redup <command> --help`)
}
