package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/abhisek/simplify/internal/fraction"
	"github.com/abhisek/simplify/internal/llm"
	"github.com/abhisek/simplify/internal/problemgen"
)

// previewWorkers bounds concurrent generator calls.
const previewWorkers = 4

var previewCmd = &cobra.Command{
	Use:   "preview",
	Short: "Print a batch of generated exercises (no database)",
	Long: `Generate exercises without starting a session and show how each one reduces.

This is a stateless developer tool: no database and no practice log. Useful for
checking the mix of reducible and irreducible fractions and the quality of LLM
exercises. With --from, the listed fractions are shown instead of generated ones.`,
	RunE: runPreview,
}

func init() {
	previewCmd.Flags().IntP("count", "n", 10, "Number of exercises to generate")
	previewCmd.Flags().String("generator", "random", "Exercise source: random or llm")
	previewCmd.Flags().StringSlice("from", nil, "Fractions to show instead of generating, e.g. 30/80,12/18")
}

type previewResult struct {
	fraction fraction.Fraction
	err      error
}

func runPreview(cmd *cobra.Command, args []string) error {
	count, _ := cmd.Flags().GetInt("count")
	source, _ := cmd.Flags().GetString("generator")
	if count < 1 {
		return fmt.Errorf("count must be positive, got %d", count)
	}

	from, _ := cmd.Flags().GetStringSlice("from")
	if len(from) > 0 {
		fractions, err := parseFractions(from)
		if err != nil {
			return err
		}
		results := make([]previewResult, len(fractions))
		for i, f := range fractions {
			results[i] = previewResult{fraction: f}
		}
		printPreview(results)
		return nil
	}

	ctx := cmd.Context()

	var gen problemgen.Generator
	switch source {
	case problemgen.SourceRandom:
		gen = problemgen.NewRandom()
	case problemgen.SourceLLM:
		// No EventRepo: request logging skipped.
		provider, err := llm.NewProviderFromEnv(ctx, nil)
		if err != nil {
			return fmt.Errorf("LLM provider: %w", err)
		}
		gen = problemgen.NewLLM(provider, problemgen.DefaultConfig())
	default:
		return fmt.Errorf("invalid generator %q: must be random or llm", source)
	}

	results := make([]previewResult, count)
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(previewWorkers)
	for i := range results {
		g.Go(func() error {
			f, err := gen.Generate(gctx)
			results[i] = previewResult{fraction: f, err: err}
			return nil
		})
	}
	_ = g.Wait()

	printPreview(results)
	return nil
}

// parseFractions reads fractions written as "n/d" with positive terms.
func parseFractions(list []string) ([]fraction.Fraction, error) {
	out := make([]fraction.Fraction, 0, len(list))
	for _, s := range list {
		f, err := fraction.Parse(s)
		if err != nil {
			return nil, err
		}
		if !f.Valid() {
			return nil, fmt.Errorf("fraction %s: both terms must be positive", f)
		}
		out = append(out, f)
	}
	return out, nil
}

func printPreview(results []previewResult) {
	fmt.Printf("%-4s  %-8s  %-10s  %-4s  %s\n", "#", "Fraction", "Reducible", "GCD", "Steps")
	fmt.Println(strings.Repeat("─", 60))

	var reducible, failed int
	for i, r := range results {
		if r.err != nil {
			failed++
			fmt.Printf("%-4d  generation failed: %v\n", i+1, r.err)
			continue
		}
		f := r.fraction
		mark := "no"
		if f.IsReducible() {
			mark = "yes"
			reducible++
		}
		fmt.Printf("%-4d  %-8s  %-10s  %-4d  %s\n", i+1, f, mark, f.GCD(), fraction.FormatChain(smallestSteps(f)))
	}

	fmt.Println(strings.Repeat("─", 60))
	fmt.Printf("%d reducible, %d irreducible, %d failed\n", reducible, len(results)-reducible-failed, failed)
}

// smallestSteps reduces f one smallest common factor at a time.
func smallestSteps(f fraction.Fraction) []fraction.Fraction {
	chain := []fraction.Fraction{f}
	for f.IsReducible() {
		next, ok := f.Divide(f.SmallestCommonFactor())
		if !ok {
			break
		}
		f = next
		chain = append(chain, f)
	}
	return chain
}
