package main

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
	"iblang/internal/golden"
)

var (
	testExtension string
	testParallel  int
)

var testCmd = &cobra.Command{
	Use:   "test <files or dirs...>",
	Short: "Run golden files against the parser",
	Long: `Run golden files: each file's "//" comment lines spell out the expected
debug tree and "error: line:col: message" lines. Directories are expanded to
the golden files directly inside them. A failing file prints a unified diff.`,
	Args: cobra.MinimumNArgs(1),
	RunE: runTest,
}

func init() {
	testCmd.Flags().StringVar(&testExtension, "ext", "", "Golden file extension (default from config, .ib)")
	testCmd.Flags().IntVar(&testParallel, "parallel", 0, "Number of files run at once (default from config, one per CPU)")
}

func runTest(cmd *cobra.Command, args []string) error {
	ext := cfg.Golden.Extension
	if testExtension != "" {
		ext = testExtension
	}
	parallel := cfg.Golden.Parallel
	if testParallel > 0 {
		parallel = testParallel
	}

	paths, err := golden.Collect(args, ext)
	if err != nil {
		return err
	}

	results, err := golden.RunFiles(commandContext(cmd), paths, parallel)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	pass := color.New(color.FgGreen).SprintFunc()
	fail := color.New(color.FgRed).SprintFunc()

	failed := 0
	for _, r := range results {
		if r.Passed {
			fmt.Fprintf(out, "%s %s\n", pass("PASS"), r.Path)
			continue
		}
		failed++
		fmt.Fprintf(out, "%s %s\n%s\n", fail("FAIL"), r.Path, r.Diff)
	}

	fmt.Fprintf(out, "%d passed, %d failed\n", len(results)-failed, failed)
	if failed > 0 {
		return fmt.Errorf("%d golden file(s) failed", failed)
	}
	return nil
}
