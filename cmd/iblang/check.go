package main

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
	"iblang/grammar"
)

var strict bool

var checkCmd = &cobra.Command{
	Use:   "check [--strict] <files...>",
	Short: "Report diagnostics without printing trees",
	Long: `Check files for lexer and parser diagnostics. With --strict the files
must also conform to the strict reference grammar, which has no error
recovery and requires commas between parameters and arguments.`,
	Args: cobra.MinimumNArgs(1),
	RunE: runCheck,
}

func init() {
	checkCmd.Flags().BoolVar(&strict, "strict", false, "Also validate against the strict reference grammar")
}

func runCheck(cmd *cobra.Command, args []string) error {
	results, err := parseAll(commandContext(cmd), args)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	green := color.New(color.FgGreen).SprintFunc()

	failed := 0
	for _, r := range results {
		diags := r.Diagnostics
		if strict {
			diags = append(diags, grammar.Check(r.Name, r.Source)...)
		}

		if len(diags) == 0 {
			fmt.Fprintf(out, "%s %s\n", green("ok"), r.Name)
			continue
		}

		failed++
		if err := r.Reporter().WriteAll(out, diags); err != nil {
			return err
		}
	}

	if failed > 0 {
		return fmt.Errorf("%d of %d file(s) have diagnostics", failed, len(results))
	}
	return nil
}
