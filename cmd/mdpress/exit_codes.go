package main

import (
	"errors"
	"os"

	mdpress "github.com/mdpress/mdpress"
	"github.com/mdpress/mdpress/internal/scenario"
)

// Exit codes for the mdpress CLI.
// Follows Unix conventions: 0=success, 1=general, 2=usage, custom codes < 126.
const (
	ExitSuccess = 0 // All documents converted
	ExitGeneral = 1 // Unexpected error, or at least one file failed
	ExitUsage   = 2 // Invalid flags or style config
	ExitIO      = 3 // Missing input directory, unreadable files
	ExitRender  = 4 // Renderer missing or broken
)

// exitCodeFor returns the appropriate exit code for an error.
// It uses errors.Is to check wrapped errors, so callers must wrap with %w.
func exitCodeFor(err error) int {
	if err == nil {
		return ExitSuccess
	}

	// Renderer errors (exit 4)
	if errors.Is(err, mdpress.ErrRendererNotFound) ||
		errors.Is(err, mdpress.ErrRenderFailed) ||
		errors.Is(err, mdpress.ErrNoRenderOutput) ||
		errors.Is(err, mdpress.ErrBrowserConnect) ||
		errors.Is(err, mdpress.ErrPageCreate) ||
		errors.Is(err, mdpress.ErrPageLoad) ||
		errors.Is(err, mdpress.ErrPDFGeneration) {
		return ExitRender
	}

	// I/O errors (exit 3)
	if errors.Is(err, os.ErrNotExist) ||
		errors.Is(err, os.ErrPermission) ||
		errors.Is(err, scenario.ErrInputDirNotFound) ||
		errors.Is(err, ErrReadMarkdown) {
		return ExitIO
	}

	// Usage/config errors (exit 2)
	if errors.Is(err, mdpress.ErrConfigNotFound) ||
		errors.Is(err, mdpress.ErrConfigParse) ||
		errors.Is(err, mdpress.ErrInvalidPageSize) ||
		errors.Is(err, mdpress.ErrInvalidMargin) ||
		errors.Is(err, mdpress.ErrInvalidFontSize) ||
		errors.Is(err, mdpress.ErrInvalidColor) ||
		errors.Is(err, scenario.ErrEmptyName) ||
		errors.Is(err, scenario.ErrInvalidName) ||
		errors.Is(err, ErrUnknownRenderer) ||
		errors.Is(err, ErrInvalidWorkerCount) ||
		errors.Is(err, ErrInvalidTimeout) {
		return ExitUsage
	}

	return ExitGeneral
}
