package main

import (
	"context"

	"github.com/spf13/cobra"
	"github.com/tliron/commonlog"
	"iblang/internal/config"
)

var log = commonlog.GetLogger("iblang.cli")

var (
	configPath string
	verbosity  int
	noColor    bool

	cfg = config.Default()
)

var rootCmd = &cobra.Command{
	Use:   "iblang",
	Short: "iblang - lexer, parser and tooling for IB source files",
	Long: `iblang lexes and parses IB source files, reports diagnostics in a
rust-like format and runs golden tests against the parser's debug output.

Settings are read from --config, $IBLANG_CONFIG, ./.iblang.yaml, ./.iblang.yml,
./.iblang.toml or ~/.config/iblang/config.yaml, whichever is found first.`,
	SilenceUsage:      true,
	PersistentPreRunE: setup,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "Path to a YAML or TOML config file")
	rootCmd.PersistentFlags().CountVarP(&verbosity, "verbose", "v", "Increase log verbosity (repeatable)")
	rootCmd.PersistentFlags().BoolVar(&noColor, "no-color", false, "Disable coloured output")

	// Add subcommands
	rootCmd.AddCommand(lexCmd)
	rootCmd.AddCommand(parseCmd)
	rootCmd.AddCommand(checkCmd)
	rootCmd.AddCommand(testCmd)
	rootCmd.AddCommand(replCmd)
	rootCmd.AddCommand(versionCmd)
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

// setup loads the config and configures colour and logging for every subcommand.
func setup(cmd *cobra.Command, args []string) error {
	loaded, err := config.Discover(configPath)
	if err != nil {
		return err
	}
	cfg = loaded

	if noColor {
		cfg.Color = config.ColorNever
	}
	cfg.ApplyColor()

	commonlog.Configure(cfg.Log.Verbosity+verbosity, cfg.LogPath())
	if cfg.Path() != "" {
		log.Infof("using config %s", cfg.Path())
	}
	return nil
}

func commandContext(cmd *cobra.Command) context.Context {
	if ctx := cmd.Context(); ctx != nil {
		return ctx
	}
	return context.Background()
}
