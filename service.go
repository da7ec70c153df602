package mdpress

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"
)

// Service orchestrates the markdown-to-PDF pipeline for one immutable Style.
// Create with NewService, convert documents with Convert, and Close when done.
type Service struct {
	cfg          serviceConfig
	style        Style
	stylesheet   string
	preprocessor markdownPreprocessor
	converter    htmlConverter
	renderer     Renderer
}

// NewService creates a Service for the given style. The stylesheet is built
// once here; the style is read-only for the remainder of the run.
// Use options to customize behavior (e.g. WithTimeout, WithRenderer).
func NewService(style Style, opts ...Option) (*Service, error) {
	if err := style.Validate(); err != nil {
		return nil, err
	}

	stylesheet, err := buildStylesheet(style)
	if err != nil {
		return nil, err
	}

	s := &Service{
		cfg:          serviceConfig{timeout: defaultTimeout},
		style:        style,
		stylesheet:   stylesheet,
		preprocessor: &commonMarkPreprocessor{},
		converter:    newGoldmarkConverter(),
	}

	for _, opt := range opts {
		opt(s)
	}

	// Default backend if none injected.
	if s.renderer == nil {
		s.renderer = NewWkhtmltopdfRenderer(s.cfg.timeout)
	}

	return s, nil
}

// Convert runs the full pipeline for one document and writes the PDF to
// input.OutputPath. The context is used for cancellation and timeout.
func (s *Service) Convert(ctx context.Context, input Input) error {
	if err := s.validateInput(input); err != nil {
		return err
	}

	mdContent := s.preprocessor.PreprocessMarkdown(ctx, input.Markdown)
	if err := ctx.Err(); err != nil {
		return err
	}

	body, err := s.converter.ToHTML(ctx, mdContent)
	if err != nil {
		return fmt.Errorf("converting to HTML: %w", err)
	}

	if input.SourceDir != "" {
		body, err = rewriteRelativePaths(body, input.SourceDir)
		if err != nil {
			return fmt.Errorf("rewriting relative paths: %w", err)
		}
	}

	doc := injectDocument(s.documentTitle(input), s.stylesheet, body)

	if err := s.renderer.Render(ctx, doc, input.OutputPath, s.renderOptions()); err != nil {
		return fmt.Errorf("rendering PDF: %w", err)
	}

	return nil
}

// Close releases renderer resources.
func (s *Service) Close() error {
	if s.renderer != nil {
		return s.renderer.Close()
	}
	return nil
}

// validateInput checks that required fields are present.
func (s *Service) validateInput(input Input) error {
	if input.Markdown == "" {
		return ErrEmptyMarkdown
	}
	if input.OutputPath == "" {
		return ErrEmptyOutput
	}
	return nil
}

// documentTitle resolves the HTML title: explicit title, else output basename.
func (s *Service) documentTitle(input Input) string {
	if input.Title != "" {
		return input.Title
	}
	base := filepath.Base(input.OutputPath)
	return strings.TrimSuffix(base, filepath.Ext(base))
}

// renderOptions derives renderer page options from the style.
func (s *Service) renderOptions() RenderOptions {
	return RenderOptions{
		PageSize:    s.style.PageSize,
		Margins:     s.style.Margins,
		PageNumbers: s.style.PageNumbers,
		HeaderText:  s.style.HeaderText,
		FooterText:  s.style.FooterText,
	}
}
