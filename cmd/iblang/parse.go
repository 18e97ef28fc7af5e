package main

import (
	"context"
	"fmt"
	"io"
	"runtime"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"
	"iblang/internal/parser"
)

var parseTrace bool

var parseCmd = &cobra.Command{
	Use:   "parse <files...>",
	Short: "Print the syntax tree and diagnostics of each file",
	Long: `Parse files concurrently and print, in argument order, each file's
debug tree followed by its diagnostics. Exits non-zero if any file has a
diagnostic.`,
	Args: cobra.MinimumNArgs(1),
	RunE: runParse,
}

func init() {
	parseCmd.Flags().BoolVar(&parseTrace, "trace", false, "Log every production the parser enters (debug level)")
}

func runParse(cmd *cobra.Command, args []string) error {
	results, err := parseAll(commandContext(cmd), args, parser.WithTrace(parseTrace || cfg.Parser.Trace))
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	failed := 0
	for _, r := range results {
		if len(results) > 1 {
			fmt.Fprintf(out, "== %s\n", r.Name)
		}
		if _, err := io.WriteString(out, r.Dump()); err != nil {
			return err
		}
		if len(r.Diagnostics) > 0 {
			failed++
			if err := r.WriteDiagnostics(out); err != nil {
				return err
			}
		}
	}

	if failed > 0 {
		return fmt.Errorf("%d of %d file(s) have diagnostics", failed, len(results))
	}
	return nil
}

// parseAll parses every path concurrently. Results keep argument order; the
// first read error cancels the rest.
func parseAll(ctx context.Context, paths []string, opts ...parser.Option) ([]*parser.ParseResult, error) {
	results := make([]*parser.ParseResult, len(paths))

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(workers())

	for i, path := range paths {
		i, path := i, path
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			r, err := parser.ParseFile(path, opts...)
			if err != nil {
				return fmt.Errorf("%s: %w", path, err)
			}
			results[i] = r
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}

func workers() int {
	if cfg.Golden.Parallel > 0 {
		return cfg.Golden.Parallel
	}
	return runtime.NumCPU()
}
