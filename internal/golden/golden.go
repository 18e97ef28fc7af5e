// Package golden runs source files whose "//" comment lines spell out the
// expected parser output and compares them with the real output.
package golden

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"sort"
	"strings"

	"github.com/pmezard/go-difflib/difflib"
	"github.com/tliron/commonlog"
	"golang.org/x/sync/errgroup"
	"iblang/internal/parser"
)

var log = commonlog.GetLogger("iblang.golden")

const DefaultExtension = ".ib"

// Result is the outcome of one golden file.
type Result struct {
	Path     string
	Expected string
	Actual   string
	Diff     string
	Passed   bool
}

// Options tunes RunDir. Zero values mean DefaultExtension and one worker per CPU.
type Options struct {
	Extension string
	Parallel  int
}

// Expected collects every line starting with "//", minus the prefix and one
// following space.
func Expected(source string) string {
	var b strings.Builder
	for _, line := range strings.Split(source, "\n") {
		line = strings.TrimSuffix(line, "\r")
		if !strings.HasPrefix(line, "//") {
			continue
		}
		line = strings.TrimPrefix(line[2:], " ")
		b.WriteString(line)
		b.WriteByte('\n')
	}
	return b.String()
}

// Actual renders a parse the way golden files spell it: the debug tree, then
// one "error: line:col: message" line per diagnostic.
func Actual(result *parser.ParseResult) string {
	var b strings.Builder
	b.WriteString(result.Dump())
	for _, summary := range result.Summaries() {
		b.WriteString("error: ")
		b.WriteString(summary)
		b.WriteByte('\n')
	}
	return b.String()
}

// RunSource checks one in-memory source unit.
func RunSource(name, source string) *Result {
	r := &Result{
		Path:     name,
		Expected: Expected(source),
		Actual:   Actual(parser.ParseSource(name, source)),
	}
	r.Passed = r.Expected == r.Actual
	if !r.Passed {
		r.Diff = unifiedDiff(r.Expected, r.Actual)
	}
	log.Debugf("%s: passed=%t", name, r.Passed)
	return r
}

func RunFile(path string) (*Result, error) {
	source, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read golden file %s: %w", path, err)
	}
	return RunSource(path, string(source)), nil
}

// RunDir runs every golden file directly inside dir in parallel. Results are
// sorted by path.
func RunDir(ctx context.Context, dir string, opts Options) ([]*Result, error) {
	paths, err := Collect([]string{dir}, opts.Extension)
	if err != nil {
		return nil, err
	}
	return RunFiles(ctx, paths, opts.Parallel)
}

// Collect expands directories into the golden files directly inside them,
// sorted by path, and keeps plain files as given. An empty ext means
// DefaultExtension.
func Collect(paths []string, ext string) ([]string, error) {
	if ext == "" {
		ext = DefaultExtension
	}

	var files []string
	for _, path := range paths {
		info, err := os.Stat(path)
		if err != nil {
			return nil, fmt.Errorf("failed to stat %s: %w", path, err)
		}
		if !info.IsDir() {
			files = append(files, path)
			continue
		}

		matches, err := filepath.Glob(filepath.Join(path, "*"+ext))
		if err != nil {
			return nil, fmt.Errorf("failed to list %s: %w", path, err)
		}
		sort.Strings(matches)
		files = append(files, matches...)
	}
	return files, nil
}

// RunFiles runs the given golden files with at most parallel workers and
// returns results in argument order.
func RunFiles(ctx context.Context, paths []string, parallel int) ([]*Result, error) {
	if parallel < 1 {
		parallel = runtime.NumCPU()
	}

	type job struct {
		index int
		path  string
	}

	results := make([]*Result, len(paths))
	g, ctx := errgroup.WithContext(ctx)
	jobs := make(chan job, parallel*2)

	g.Go(func() error {
		defer close(jobs)
		for i, path := range paths {
			select {
			case jobs <- job{index: i, path: path}:
			case <-ctx.Done():
				return ctx.Err()
			}
		}
		return nil
	})

	for i := 0; i < parallel; i++ {
		g.Go(func() error {
			for j := range jobs {
				r, err := RunFile(j.path)
				if err != nil {
					return err
				}
				results[j.index] = r
			}
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}

	failed := 0
	for _, r := range results {
		if !r.Passed {
			failed++
		}
	}
	log.Infof("ran %d golden files, %d failed", len(results), failed)
	return results, nil
}

func unifiedDiff(expected, actual string) string {
	diff, err := difflib.GetUnifiedDiffString(difflib.UnifiedDiff{
		A:        difflib.SplitLines(expected),
		B:        difflib.SplitLines(actual),
		FromFile: "expected",
		ToFile:   "actual",
		Context:  3,
	})
	if err != nil {
		return err.Error()
	}
	return diff
}
