package mdpress

import "errors"

// Sentinel errors for library operations.
var (
	ErrEmptyMarkdown  = errors.New("markdown content cannot be empty")
	ErrEmptyOutput    = errors.New("output path cannot be empty")
	ErrHTMLConversion = errors.New("HTML conversion failed")

	// Style config errors.
	ErrConfigNotFound = errors.New("style config file not found")
	ErrConfigParse    = errors.New("failed to parse style config")

	// Style validation errors.
	ErrInvalidPageSize = errors.New("invalid page size")
	ErrInvalidMargin   = errors.New("invalid margin")
	ErrInvalidFontSize = errors.New("invalid font size")
	ErrInvalidColor    = errors.New("invalid color")

	// Renderer errors (wkhtmltopdf backend).
	ErrRendererNotFound = errors.New("wkhtmltopdf binary not found")
	ErrRenderFailed     = errors.New("PDF rendering failed")
	ErrNoRenderOutput   = errors.New("renderer produced no output")

	// Renderer errors (Chrome backend).
	ErrBrowserConnect = errors.New("failed to connect to browser")
	ErrPageCreate     = errors.New("failed to create browser page")
	ErrPageLoad       = errors.New("failed to load page")
	ErrPDFGeneration  = errors.New("PDF generation failed")
)
