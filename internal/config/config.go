// =============================================================================
// Projected Journal Generator - Configuration Module
// =============================================================================
//
// This module loads the application configuration from a YAML file, applies
// defaults for anything unset, and validates the result. The configuration
// covers directories, default workbook paths (all overridable by CLI flags),
// journal assembly settings and logging.
//
// A missing configuration file is not an error: the defaults describe a
// fully working setup, so the CLI runs with nothing but the four workbook
// flags.
//
// =============================================================================

package config

import (
	"fmt"
	"os"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"

	"github.com/ginjaninja78/projected-journal/internal/models"
)

// =============================================================================
// CONFIGURATION STRUCTURE
// =============================================================================

// Config holds the application configuration.
type Config struct {
	// =========================================================================
	// DIRECTORY SETTINGS
	// =========================================================================

	// OutputDir is where generated journals are written when --out is not
	// given. Default: "./output"
	OutputDir string `yaml:"output_dir" validate:"required"`

	// ArchiveDir is where processed input workbooks are moved after a
	// successful run (when archive_inputs is true). Default: "./archive"
	ArchiveDir string `yaml:"archive_dir" validate:"required"`

	// ArchiveInputs moves the input workbooks into ArchiveDir after a
	// successful export. Default: false
	ArchiveInputs bool `yaml:"archive_inputs"`

	// =========================================================================
	// WORKBOOK PATHS
	// =========================================================================

	// Workbooks are the default input paths; each is overridable by the
	// matching generate flag.
	Workbooks WorkbookPaths `yaml:"workbooks"`

	// =========================================================================
	// JOURNAL SETTINGS
	// =========================================================================

	// OutputNameFormat names the journal file when --out is not given.
	// Placeholders:
	//   {uuid}      - a random UUID
	//   {timestamp} - run timestamp (YYYYMMDD_HHMMSS)
	// Default: "Projected_Journal_{timestamp}_{uuid}.xlsx"
	OutputNameFormat string `yaml:"output_name_format" validate:"required"`

	// HorizonWeeks is the projection window length. The wide-time-series
	// layout is recognised by exactly this many numeric columns. Default: 13
	HorizonWeeks int `yaml:"horizon_weeks" validate:"min=1,max=53"`

	// Currency is the journal currency code. The pipeline performs no
	// conversion and rejects anything but USD at validation. Default: "USD"
	Currency string `yaml:"currency" validate:"required,len=3"`

	// APAccount is the GAAP account assigned to normalized AP rows.
	// Default: "2000-AP"
	APAccount string `yaml:"ap_account" validate:"required"`

	// ARAccount is the GAAP account assigned to normalized AR rows.
	// Default: "1100-AR"
	ARAccount string `yaml:"ar_account" validate:"required"`

	// =========================================================================
	// LOGGING SETTINGS
	// =========================================================================

	// LogLevel controls verbosity: "debug", "info", "warn" or "error".
	// Default: "info"
	LogLevel string `yaml:"log_level" validate:"oneof=debug info warn error"`
}

// WorkbookPaths are the default locations of the four input workbooks.
type WorkbookPaths struct {
	// APGrid is the AP/AR cash grid workbook (flexible layout).
	APGrid string `yaml:"ap_grid"`

	// APGridSheet optionally names the cash grid worksheet. Empty means the
	// first sheet; the chosen sheet's name doubles as the AP/AR hint.
	APGridSheet string `yaml:"ap_grid_sheet"`

	// BeginningBS is the Beginning Balance Sheet workbook.
	BeginningBS string `yaml:"beginning_bs"`

	// GAAPMapping is the GAAP chart-of-accounts mapping workbook.
	GAAPMapping string `yaml:"gaap_mapping"`

	// CashflowMapping is the cash-flow section mapping workbook.
	CashflowMapping string `yaml:"cashflow_mapping"`
}

// =============================================================================
// LOADING
// =============================================================================

// Load reads the configuration from path. A non-existent file yields the
// defaults; a malformed or invalid file is an error.
func Load(path string) (*Config, error) {
	cfg := &Config{}

	data, err := os.ReadFile(path)
	switch {
	case err != nil && os.IsNotExist(err):
		// No config file: run on defaults.
	case err != nil:
		return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
	default:
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("failed to parse config file %s: %w", path, err)
		}
	}

	applyDefaults(cfg)

	if err := validator.New().Struct(cfg); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return cfg, nil
}

// applyDefaults fills every unset option with its documented default.
func applyDefaults(cfg *Config) {
	if cfg.OutputDir == "" {
		cfg.OutputDir = "./output"
	}
	if cfg.ArchiveDir == "" {
		cfg.ArchiveDir = "./archive"
	}
	if cfg.OutputNameFormat == "" {
		cfg.OutputNameFormat = "Projected_Journal_{timestamp}_{uuid}.xlsx"
	}
	if cfg.HorizonWeeks == 0 {
		cfg.HorizonWeeks = models.HorizonWeeks
	}
	if cfg.Currency == "" {
		cfg.Currency = models.MandatoryCurrency
	}
	if cfg.APAccount == "" {
		cfg.APAccount = "2000-AP"
	}
	if cfg.ARAccount == "" {
		cfg.ARAccount = "1100-AR"
	}
	if cfg.LogLevel == "" {
		cfg.LogLevel = "info"
	}
}
