// =============================================================================
// Projected Journal Generator - Main Entry Point
// =============================================================================

package main

import "github.com/ginjaninja78/projected-journal/cmd"

func main() {
	cmd.Execute()
}
