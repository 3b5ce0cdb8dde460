package cmd

import (
	"context"
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/s0up4200/alquran/quran"
)

var testCmd = &cobra.Command{
	Use:   "test",
	Short: "Test connection to the API",
	Long:  `Query the language, type and format listings concurrently and report how each responded.`,
	Args:  cobra.NoArgs,
	RunE:  runTest,
}

func init() {
	rootCmd.AddCommand(testCmd)
}

type probe struct {
	name    string
	run     func(ctx context.Context) (int, error)
	count   int
	elapsed time.Duration
	err     error
}

func probes() []*probe {
	return []*probe{
		{name: "languages", run: func(ctx context.Context) (int, error) {
			resp, err := api.GetLanguages(ctx)
			if err != nil {
				return 0, err
			}
			return len(resp.Data), nil
		}},
		{name: "edition types", run: func(ctx context.Context) (int, error) {
			resp, err := api.GetEditionTypes(ctx)
			if err != nil {
				return 0, err
			}
			return len(resp.Data), nil
		}},
		{name: "formats", run: func(ctx context.Context) (int, error) {
			resp, err := api.GetFormats(ctx)
			if err != nil {
				return 0, err
			}
			return len(resp.Data), nil
		}},
	}
}

// runProbes runs every probe concurrently. A failing probe does not cancel
// the others.
func runProbes(ctx context.Context, ps []*probe) {
	var g errgroup.Group
	g.SetLimit(len(ps))

	for _, p := range ps {
		g.Go(func() error {
			start := time.Now()
			p.count, p.err = p.run(ctx)
			p.elapsed = time.Since(start)
			return nil
		})
	}
	_ = g.Wait()
}

func describeFailure(err error) string {
	switch {
	case errors.Is(err, quran.ErrTransport):
		return "transport"
	case errors.Is(err, quran.ErrDecoding):
		return "decoding"
	default:
		return "error"
	}
}

func printProbes(w io.Writer, ps []*probe) int {
	var failed int
	for _, p := range ps {
		if p.err != nil {
			failed++
			fmt.Fprintf(w, "✗ %s: %s: %v\n", p.name, describeFailure(p.err), p.err)
			continue
		}
		fmt.Fprintf(w, "✓ %s: %d entries (%s)\n", p.name, p.count, p.elapsed.Round(time.Millisecond))
	}
	return failed
}

func runTest(cmd *cobra.Command, args []string) error {
	w := cmd.OutOrStdout()
	fmt.Fprintf(w, "Testing connection to %s...\n", cfg.API.BaseURL)

	ps := probes()
	runProbes(cmd.Context(), ps)

	if failed := printProbes(w, ps); failed > 0 {
		return fmt.Errorf("%d of %d checks failed", failed, len(ps))
	}

	fmt.Fprintln(w, "✓ Connection successful!")
	return nil
}
