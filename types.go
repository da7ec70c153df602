package mdpress

import "time"

// Input contains parameters for a single document conversion.
type Input struct {
	Markdown   string // Markdown content (required)
	OutputPath string // Destination PDF path (required)
	SourceDir  string // Directory for resolving relative image/link paths (optional)
	Title      string // Document title for the HTML <title> (optional, defaults to output basename)
}

// Option configures a Service.
type Option func(*Service)

// serviceConfig holds internal configuration for Service.
type serviceConfig struct {
	timeout time.Duration
}

// defaultTimeout bounds a single PDF render when no timeout is specified.
const defaultTimeout = 60 * time.Second

// WithTimeout sets the per-document rendering timeout.
// Panics if d <= 0 (programmer error, similar to time.NewTicker).
func WithTimeout(d time.Duration) Option {
	if d <= 0 {
		panic("mdpress: WithTimeout duration must be positive")
	}
	return func(s *Service) {
		s.cfg.timeout = d
	}
}

// WithRenderer injects a renderer backend, replacing the default
// wkhtmltopdf backend. Used for the Chrome fallback and by tests.
func WithRenderer(r Renderer) Option {
	return func(s *Service) {
		s.renderer = r
	}
}
