// =============================================================================
// Projected Journal Generator - Version Command
// =============================================================================
//
// Build metadata is injected at link time:
//
//   go build -ldflags "-X github.com/ginjaninja78/projected-journal/cmd.Version=1.0.0 \
//     -X github.com/ginjaninja78/projected-journal/cmd.BuildDate=2026-08-24"
//
// =============================================================================

package cmd

import (
	"fmt"
	"runtime"

	"github.com/spf13/cobra"
)

// Build metadata, overridden via ldflags.
var (
	Version   = "dev"
	BuildDate = "unknown"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("Projected Journal Generator %s\n", Version)
		fmt.Printf("  Build date: %s\n", BuildDate)
		fmt.Printf("  Go version: %s\n", runtime.Version())
		fmt.Printf("  Platform:   %s/%s\n", runtime.GOOS, runtime.GOARCH)
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
