// =============================================================================
// Projected Journal Generator - File Management Utilities
// =============================================================================
//
// Shared filesystem helpers: directory bootstrap, input archival after a
// successful run, and output-name templating with {uuid} and {timestamp}
// placeholders.
//
// =============================================================================

package utils

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"
)

// timestampLayout is the {timestamp} placeholder format.
const timestampLayout = "20060102_150405"

// EnsureDir creates the directory (and parents) if it does not exist.
func EnsureDir(path string) error {
	if path == "" || path == "." {
		return nil
	}
	if err := os.MkdirAll(path, 0o755); err != nil {
		return fmt.Errorf("failed to create directory %s: %w", path, err)
	}
	return nil
}

// ArchiveFile moves src into archiveDir, creating the directory as needed.
// A name collision gets a timestamp suffix instead of overwriting. Returns
// the archived path.
func ArchiveFile(src, archiveDir string) (string, error) {
	if err := EnsureDir(archiveDir); err != nil {
		return "", err
	}

	dst := filepath.Join(archiveDir, filepath.Base(src))
	if _, err := os.Stat(dst); err == nil {
		ext := filepath.Ext(dst)
		dst = strings.TrimSuffix(dst, ext) + "_" + time.Now().Format(timestampLayout) + ext
	}

	if err := os.Rename(src, dst); err != nil {
		return "", fmt.Errorf("failed to archive %s: %w", src, err)
	}
	return dst, nil
}

// RenderOutputName expands the output-name format. Placeholders:
//
//	{uuid}      - a random UUID
//	{timestamp} - now, formatted YYYYMMDD_HHMMSS
//
// The result always carries an .xlsx extension.
func RenderOutputName(format string, now time.Time) string {
	name := format
	name = strings.ReplaceAll(name, "{uuid}", uuid.New().String())
	name = strings.ReplaceAll(name, "{timestamp}", now.Format(timestampLayout))

	if filepath.Ext(name) != ".xlsx" {
		name += ".xlsx"
	}
	return name
}
