// =============================================================================
// Projected Journal Generator - Generate Command
// =============================================================================
//
// The generate command runs the full pipeline:
//
//   load workbooks -> normalize cash grid -> validate -> assemble journal
//     -> export styled XLSX -> (optionally) archive inputs
//
// Any failure prints a structured JSON error report to stderr and exits
// non-zero, so both humans and calling automation get the same diagnostics.
//
// =============================================================================

package cmd

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"github.com/spf13/cobra"

	"github.com/ginjaninja78/projected-journal/internal/config"
	"github.com/ginjaninja78/projected-journal/internal/errs"
	"github.com/ginjaninja78/projected-journal/internal/exporter"
	"github.com/ginjaninja78/projected-journal/internal/journal"
	"github.com/ginjaninja78/projected-journal/internal/loader"
	"github.com/ginjaninja78/projected-journal/internal/normalize"
	"github.com/ginjaninja78/projected-journal/internal/validate"
	"github.com/ginjaninja78/projected-journal/pkg/utils"
)

// Generate command flags. Each workbook flag overrides the configured default.
var (
	apGridPath  string
	apGridSheet string
	bsPath      string
	gaapMapPath string
	cfMapPath   string
	outputPath  string
	dryRun      bool
)

// generateCmd builds the projected journal from the four input workbooks.
var generateCmd = &cobra.Command{
	Use:   "generate",
	Short: "Generate the projected journal from the input workbooks",
	Long: `Generate loads the four input workbooks, normalizes the AP/AR cash grid
into canonical transactions, validates the fixed-schema inputs, assembles the
17-column projected journal and writes it as a styled XLSX workbook.

Workbook paths default to the configuration file and can be overridden per
run with flags. With --dry-run the pipeline executes fully but nothing is
written or archived.`,
	RunE: runGenerate,
}

func init() {
	rootCmd.AddCommand(generateCmd)

	generateCmd.Flags().StringVar(&apGridPath, "ap-grid", "", "AP/AR cash grid workbook (flexible layout)")
	generateCmd.Flags().StringVar(&apGridSheet, "sheet", "", "Cash grid worksheet name (default: first sheet)")
	generateCmd.Flags().StringVar(&bsPath, "bs", "", "Beginning Balance Sheet workbook")
	generateCmd.Flags().StringVar(&gaapMapPath, "gaap-map", "", "GAAP chart-of-accounts mapping workbook")
	generateCmd.Flags().StringVar(&cfMapPath, "cf-map", "", "Cash-flow section mapping workbook")
	generateCmd.Flags().StringVarP(&outputPath, "out", "o", "", "Output journal path (default: output_dir + output_name_format)")
	generateCmd.Flags().BoolVar(&dryRun, "dry-run", false, "Run the full pipeline without writing or archiving anything")
}

// runGenerate executes the pipeline. Pipeline conditions are rendered as a
// JSON report; everything else propagates as a plain error.
func runGenerate(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load(cfgFile)
	if err != nil {
		return err
	}
	setupLogging(cfg.LogLevel)

	now := time.Now()
	paths := resolvePaths(cfg)

	slog.Info("loading input workbooks",
		"ap_grid", paths.APGrid,
		"beginning_bs", paths.BeginningBS,
		"gaap_mapping", paths.GAAPMapping,
		"cashflow_mapping", paths.CashflowMapping,
	)

	bundle, err := loader.LoadBundle(paths)
	if err != nil {
		return reportFailure(err)
	}

	slog.Info("normalizing cash grid",
		"sheet", bundle.CashGridSheet,
		"columns", len(bundle.CashGrid.Columns),
		"rows", bundle.CashGrid.NumRows(),
	)

	cashRows, err := normalize.Normalize(bundle.CashGrid, bundle.CashGridSheet, normalize.Options{
		Clock:        func() time.Time { return now },
		HorizonWeeks: cfg.HorizonWeeks,
	})
	if err != nil {
		return reportFailure(err)
	}
	slog.Info("cash grid normalized", "transactions", len(cashRows))

	if details := validate.All(bundle, cfg.Currency); len(details) > 0 {
		return reportFailure(errs.SchemaWithDetails("input validation failed", details))
	}
	if details := validate.MappingCoverage(bundle.GAAPMapping, bundle.CashflowMapping); len(details) > 0 {
		return reportFailure(errs.MappingConflict("GAAP accounts missing cashflow mapping", details))
	}

	rows, err := journal.Build(bundle, cashRows, journal.Params{
		Now:       now,
		Currency:  cfg.Currency,
		APAccount: cfg.APAccount,
		ARAccount: cfg.ARAccount,
	})
	if err != nil {
		return reportFailure(err)
	}
	slog.Info("journal assembled", "rows", len(rows))

	if dryRun {
		fmt.Printf("Dry run complete: %d journal rows, nothing written\n", len(rows))
		return nil
	}

	out := outputPath
	if out == "" {
		out = filepath.Join(cfg.OutputDir, utils.RenderOutputName(cfg.OutputNameFormat, now))
	}

	if err := exporter.WriteJournal(rows, out); err != nil {
		return reportFailure(err)
	}

	if cfg.ArchiveInputs {
		archiveInputs(paths, cfg.ArchiveDir)
	}

	fmt.Printf("Journal written: %s (%d rows)\n", out, len(rows))
	return nil
}

// resolvePaths merges the configured workbook defaults with the flag
// overrides.
func resolvePaths(cfg *config.Config) loader.Paths {
	paths := loader.Paths{
		APGrid:          cfg.Workbooks.APGrid,
		APGridSheet:     cfg.Workbooks.APGridSheet,
		BeginningBS:     cfg.Workbooks.BeginningBS,
		GAAPMapping:     cfg.Workbooks.GAAPMapping,
		CashflowMapping: cfg.Workbooks.CashflowMapping,
	}
	if apGridPath != "" {
		paths.APGrid = apGridPath
	}
	if apGridSheet != "" {
		paths.APGridSheet = apGridSheet
	}
	if bsPath != "" {
		paths.BeginningBS = bsPath
	}
	if gaapMapPath != "" {
		paths.GAAPMapping = gaapMapPath
	}
	if cfMapPath != "" {
		paths.CashflowMapping = cfMapPath
	}
	return paths
}

// archiveInputs moves the processed workbooks into the archive directory.
// Archival failure after a successful export is logged, not fatal: the
// journal already exists.
func archiveInputs(paths loader.Paths, archiveDir string) {
	for _, src := range []string{paths.APGrid, paths.BeginningBS, paths.GAAPMapping, paths.CashflowMapping} {
		dst, err := utils.ArchiveFile(src, archiveDir)
		if err != nil {
			slog.Warn("failed to archive input", "file", src, "error", err)
			continue
		}
		slog.Info("archived input", "file", src, "archived_as", dst)
	}
}

// reportFailure renders a pipeline condition as a JSON error report on
// stderr and returns a short error for the exit code.
func reportFailure(err error) error {
	report, jsonErr := errs.ReportJSON(errs.DetailsOf(err))
	if jsonErr != nil {
		return err
	}
	fmt.Fprintln(os.Stderr, string(report))
	return fmt.Errorf("journal generation failed: %v", err)
}
