package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"golang.org/x/term"
	"iblang/repl"
)

const historyFile = ".iblang_history"

var replTokens bool

var replCmd = &cobra.Command{
	Use:   "repl",
	Short: "Start an interactive session",
	Long: `Read IB source interactively. Input continues over several lines while
braces are unbalanced; each complete input is parsed and its tree and
diagnostics printed. :tokens toggles the token echo, :quit exits.`,
	Args: cobra.NoArgs,
	RunE: runRepl,
}

func init() {
	replCmd.Flags().BoolVar(&replTokens, "tokens", false, "Start with the token echo on")
}

func runRepl(cmd *cobra.Command, args []string) error {
	out := cmd.OutOrStdout()
	opts := []repl.Option{
		repl.WithTokens(replTokens),
		repl.WithWhitespace(cfg.Lexer.ShowWhitespace),
		repl.WithTrace(cfg.Parser.Trace),
	}

	// piped input is read line by line without line editing
	if f, ok := cmd.InOrStdin().(*os.File); !ok || !term.IsTerminal(int(f.Fd())) {
		return repl.New(repl.NewScannerReader(cmd.InOrStdin()), out, opts...).Run()
	}

	fmt.Fprintf(out, "iblang v%s. Type :tokens to toggle the token echo, :quit to exit.\n", version)

	history := ""
	if home, err := os.UserHomeDir(); err == nil {
		history = filepath.Join(home, historyFile)
	}
	return repl.Start(out, history, opts...)
}
