package derivation

import (
	"context"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/romiHill/reduplication-in-dm/grammar"
	"github.com/romiHill/reduplication-in-dm/redup"
	"github.com/romiHill/reduplication-in-dm/syntax"
)

// Result is the outcome of one derivation in a batch: either a
// completed derivation or the typed error that aborted it. Failures are
// isolated per derivation; the batch always runs to completion.
type Result struct {
	Variant      int // vocabulary variant index
	Site         int // attachment site index, -1 for base derivations
	Reduplicated bool
	Derivation   *Derivation
	Err          error
}

// Generator derives every word a grammar licenses: the base word for
// each vocabulary variant, then each reduplicated variant (vocabulary
// variant x attachment site). Derivations share only the read-only
// grammar, so they fan out over a bounded worker pool.
type Generator struct {
	g      *grammar.Grammar
	logger *zap.Logger
	jobs   int
}

// NewGenerator creates a batch generator. jobs bounds the worker pool;
// values below one mean sequential. A nil logger disables logging.
func NewGenerator(g *grammar.Grammar, logger *zap.Logger, jobs int) *Generator {
	if logger == nil {
		logger = zap.NewNop()
	}
	if jobs < 1 {
		jobs = 1
	}
	return &Generator{g: g, logger: logger, jobs: jobs}
}

type task struct {
	variant      int
	site         int
	reduplicated bool
}

// Generate runs every derivation and returns results in a fixed order:
// all base words in variant order, then all reduplicated words ordered
// by variant, then site. Result order does not depend on scheduling.
func (gen *Generator) Generate(ctx context.Context) ([]Result, error) {
	tree, err := syntax.Build(gen.g)
	if err != nil {
		return nil, err
	}
	variants := gen.g.Variants()

	var tasks []task
	var attachments [][]redup.Attachment
	for i := range variants {
		tasks = append(tasks, task{variant: i, site: -1})
	}
	if len(gen.g.RedRules) > 0 {
		attachments = make([][]redup.Attachment, len(variants))
		for i, table := range variants {
			attachments[i] = redup.AttachAll(tree, gen.g, table)
			if len(attachments[i]) == 0 {
				// Surface the failed variant instead of skipping it.
				tasks = append(tasks, task{variant: i, site: 0, reduplicated: true})
				continue
			}
			for s := range attachments[i] {
				tasks = append(tasks, task{variant: i, site: s, reduplicated: true})
			}
		}
	}

	results := make([]Result, len(tasks))
	grp, ctx := errgroup.WithContext(ctx)
	grp.SetLimit(gen.jobs)

	pipeline := NewPipeline(gen.g)
	for i, tk := range tasks {
		i, tk := i, tk
		grp.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			results[i] = gen.run(pipeline, variants, attachments, tk)
			if results[i].Err != nil {
				gen.logger.Warn("derivation failed",
					zap.Int("variant", tk.variant),
					zap.Int("site", tk.site),
					zap.Bool("reduplicated", tk.reduplicated),
					zap.Error(results[i].Err))
			} else {
				gen.logger.Debug("derived word",
					zap.Int("variant", tk.variant),
					zap.Int("site", tk.site),
					zap.Bool("reduplicated", tk.reduplicated),
					zap.String("word", results[i].Derivation.Word))
			}
			return nil
		})
	}
	if err := grp.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}

func (gen *Generator) run(p *Pipeline, variants []*grammar.Table, attachments [][]redup.Attachment, tk task) Result {
	res := Result{Variant: tk.variant, Site: tk.site, Reduplicated: tk.reduplicated}
	table := variants[tk.variant]

	if !tk.reduplicated {
		res.Site = -1
		res.Derivation, res.Err = p.DeriveBase(table)
		return res
	}
	atts := attachments[tk.variant]
	if len(atts) == 0 {
		res.Err = &StageError{Stage: StageAttached, Err: redupError(gen.g)}
		return res
	}
	res.Derivation, res.Err = p.DeriveAt(atts[tk.site], table)
	return res
}

func redupError(g *grammar.Grammar) error {
	e := &redup.Error{}
	for _, r := range g.RedRules {
		e.Targets = append(e.Targets, r.Target)
	}
	return e
}

// Words splits the successful results into base and reduplicated word
// lists, preserving result order.
func Words(results []Result) (base, reduplicated []string) {
	for _, r := range results {
		if r.Err != nil {
			continue
		}
		if r.Reduplicated {
			reduplicated = append(reduplicated, r.Derivation.Word)
		} else {
			base = append(base, r.Derivation.Word)
		}
	}
	return base, reduplicated
}
