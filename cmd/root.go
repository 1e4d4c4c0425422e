// =============================================================================
// Projected Journal Generator - Root Command
// =============================================================================
//
// This file defines the root command for the Cobra CLI. The root command is
// the base all subcommands attach to:
//
//   pjournal
//   ├── generate (build the projected journal from the four workbooks)
//   └── version  (build information)
//
// The root command owns the global flags (--config, --verbose) and the
// structured-logging setup.
//
// =============================================================================

package cmd

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"
)

// cfgFile is the path to the configuration file, overridable via --config.
var cfgFile string

// verbose forces debug-level logging regardless of the configured level.
var verbose bool

// rootCmd is the entry point for the CLI.
var rootCmd = &cobra.Command{
	Use:   "pjournal",
	Short: "Projected Journal Generator - build a 13-week cash journal from spreadsheet inputs",
	Long: `Projected Journal Generator ingests four spreadsheet inputs - a Beginning
Balance Sheet, a GAAP chart-of-accounts mapping, a cash-flow section mapping
and an AP/AR cash grid of unknown layout - and produces a single normalized
journal of dated, classified cash-flow line items spanning a 13-week horizon
in the fixed 17-column schema, all amounts in USD.

The cash grid may arrive in either supported layout: a wide time-series
(one row per counterparty, 13 weekly columns) or an event list (one row per
transaction with explicit date and amount columns). Layout detection, column
discovery and AP/AR inference are automatic.

Example usage:
  pjournal generate --ap-grid "AP Cash Grid.xlsx" --bs "Beginning BS.xlsx" \
    --gaap-map "GAAP Mapping.xlsx" --cf-map "Cashflow Mapping.xlsx" \
    --out out/Projected_Journal.xlsx`,

	// Without a subcommand there is nothing to do but explain ourselves.
	Run: func(cmd *cobra.Command, args []string) {
		cmd.Help()
	},

	SilenceUsage: true,
}

// Execute runs the root command. Called once from main.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(
		&cfgFile,
		"config",
		"config.yaml",
		"Path to the configuration file",
	)

	rootCmd.PersistentFlags().BoolVarP(
		&verbose,
		"verbose",
		"v",
		false,
		"Enable debug logging",
	)
}

// setupLogging installs the process-wide slog handler. The --verbose flag
// wins over the configured level.
func setupLogging(configLevel string) {
	level := slog.LevelInfo
	switch configLevel {
	case "debug":
		level = slog.LevelDebug
	case "warn":
		level = slog.LevelWarn
	case "error":
		level = slog.LevelError
	}
	if verbose {
		level = slog.LevelDebug
	}

	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: level,
	})))
}
