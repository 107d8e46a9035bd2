package render

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/romiHill/reduplication-in-dm/derivation"
)

// PrepareDir creates the output folder if needed and clears any files
// left by a previous run.
func PrepareDir(dir string) error {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("create output folder: %w", err)
	}
	entries, err := os.ReadDir(dir)
	if err != nil {
		return fmt.Errorf("read output folder: %w", err)
	}
	for _, e := range entries {
		if e.IsDir() {
			continue
		}
		if err := os.Remove(filepath.Join(dir, e.Name())); err != nil {
			return fmt.Errorf("clear output folder: %w", err)
		}
	}
	return nil
}

// WriteDerivation writes one SVG per snapshot into dir, named
// <prefix>_step_NN.svg; the final snapshot gets a _FINAL suffix.
func WriteDerivation(dir, prefix string, d *derivation.Derivation, opts *TreeSVGOptions) error {
	for i, snap := range d.Snapshots {
		name := fmt.Sprintf("%s_step_%02d", prefix, i)
		if i == len(d.Snapshots)-1 {
			name += "_FINAL"
		}
		svg := TreeSVG(snap.Tree, opts)
		path := filepath.Join(dir, name+".svg")
		if err := os.WriteFile(path, []byte(svg), 0o644); err != nil {
			return fmt.Errorf("write %s: %w", path, err)
		}
	}
	return nil
}

// WriteWords writes the generated word list: numbered base words, a
// divider, then numbered reduplicated words.
func WriteWords(path string, base, reduplicated []string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("write word list: %w", err)
	}
	defer f.Close()

	idx := 0
	for _, w := range base {
		if _, err := fmt.Fprintf(f, "%d. %s\n", idx, w); err != nil {
			return err
		}
		idx++
	}
	if _, err := fmt.Fprintln(f, "--- reduplicated words ---"); err != nil {
		return err
	}
	for _, w := range reduplicated {
		if _, err := fmt.Fprintf(f, "%d. %s\n", idx, w); err != nil {
			return err
		}
		idx++
	}
	return nil
}
