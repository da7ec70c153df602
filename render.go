package mdpress

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"runtime"
	"strings"
	"time"

	"github.com/mdpress/mdpress/internal/fileutil"
	"github.com/mdpress/mdpress/internal/hints"
	"github.com/mdpress/mdpress/internal/process"
)

// Renderer converts a complete styled HTML document into a PDF file on disk.
// Implementations must leave no empty or partial file at outputPath on failure.
type Renderer interface {
	Render(ctx context.Context, htmlContent, outputPath string, opts RenderOptions) error
	Close() error
}

// RenderOptions holds the page-level settings passed to the renderer.
// Header and footer text may contain [page] and [topage] placeholders,
// replaced by the renderer with the current and total page count.
type RenderOptions struct {
	PageSize    string
	Margins     Margins
	PageNumbers bool
	HeaderText  string
	FooterText  string
}

// defaultFooterText is used when page numbers are enabled and no footer
// text is configured.
const defaultFooterText = "Page [page]"

// headerFooterFontSize is the wkhtmltopdf font size for header/footer lines.
const headerFooterFontSize = "10"

// commandRunner abstracts external process execution to enable testing
// without a real wkhtmltopdf binary.
type commandRunner interface {
	Run(ctx context.Context, name string, args ...string) (stderr string, err error)
}

// execRunner implements commandRunner using os/exec. The child runs in its
// own process group so cancellation also kills any helpers it spawned.
type execRunner struct{}

func (r *execRunner) Run(ctx context.Context, name string, args ...string) (string, error) {
	cmd := exec.CommandContext(ctx, name, args...)
	process.SetGroup(cmd)
	cmd.Cancel = func() error {
		process.KillGroup(cmd.Process.Pid)
		return nil
	}

	var stderr bytes.Buffer
	cmd.Stderr = &stderr

	err := cmd.Run()
	return stderr.String(), err
}

// WkhtmltopdfRenderer renders HTML to PDF by invoking the wkhtmltopdf binary.
// This is the default backend: the binary must be installed on the host.
type WkhtmltopdfRenderer struct {
	binPath string
	lookup  func() (string, error)
	runner  commandRunner
	timeout time.Duration
}

// Compile-time interface check.
var _ Renderer = (*WkhtmltopdfRenderer)(nil)

// NewWkhtmltopdfRenderer creates a renderer with the given per-document
// timeout. The binary is located lazily on first render.
func NewWkhtmltopdfRenderer(timeout time.Duration) *WkhtmltopdfRenderer {
	return &WkhtmltopdfRenderer{
		lookup:  LookupWkhtmltopdf,
		runner:  &execRunner{},
		timeout: timeout,
	}
}

// Render writes htmlContent to a temp file, invokes wkhtmltopdf with the
// page options, and verifies a non-empty PDF exists at outputPath.
// Fails with ErrRendererNotFound if the binary is missing, ErrRenderFailed
// on a non-zero exit or timeout, ErrNoRenderOutput if the output is
// missing or empty afterward.
func (r *WkhtmltopdfRenderer) Render(ctx context.Context, htmlContent, outputPath string, opts RenderOptions) error {
	bin, err := r.binary()
	if err != nil {
		return err
	}

	tmpPath, cleanup, err := fileutil.WriteTempFile(htmlContent, "html")
	if err != nil {
		return err
	}
	defer cleanup()

	if _, ok := ctx.Deadline(); !ok && r.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, r.timeout)
		defer cancel()
	}

	args := buildWkhtmltopdfArgs(opts, tmpPath, outputPath)
	stderr, err := r.runner.Run(ctx, bin, args...)
	if err != nil {
		// Never leave a partial artifact behind.
		_ = os.Remove(outputPath)

		if errors.Is(ctx.Err(), context.DeadlineExceeded) {
			return fmt.Errorf("%w: timed out after %s%s", ErrRenderFailed, r.timeout, hints.ForTimeout())
		}
		return fmt.Errorf("%w: %s", ErrRenderFailed, renderFailureReason(stderr, err))
	}

	info, err := os.Stat(outputPath)
	if err != nil || info.Size() == 0 {
		_ = os.Remove(outputPath)
		return fmt.Errorf("%w: %s", ErrNoRenderOutput, outputPath)
	}

	return nil
}

// Close is a no-op: the renderer holds no persistent resources.
func (r *WkhtmltopdfRenderer) Close() error {
	return nil
}

// binary resolves and caches the wkhtmltopdf path.
func (r *WkhtmltopdfRenderer) binary() (string, error) {
	if r.binPath != "" {
		return r.binPath, nil
	}

	path, err := r.lookup()
	if err != nil {
		return "", err
	}
	r.binPath = path
	return path, nil
}

// buildWkhtmltopdfArgs constructs the wkhtmltopdf argument list for a
// single conversion: global page options, then input and output paths.
func buildWkhtmltopdfArgs(opts RenderOptions, inputPath, outputPath string) []string {
	args := []string{
		"--encoding", "UTF-8",
		"--enable-local-file-access",
		"--print-media-type",
		"--no-outline",
		"--enable-smart-shrinking",
		"--page-size", wkhtmltopdfPageSize(opts.PageSize),
		"--margin-top", opts.Margins.Top,
		"--margin-right", opts.Margins.Right,
		"--margin-bottom", opts.Margins.Bottom,
		"--margin-left", opts.Margins.Left,
	}

	if opts.HeaderText != "" {
		args = append(args,
			"--header-center", opts.HeaderText,
			"--header-font-size", headerFooterFontSize,
			"--header-spacing", "5",
		)
	}

	footer := opts.FooterText
	if footer == "" && opts.PageNumbers {
		footer = defaultFooterText
	}
	if footer != "" {
		args = append(args,
			"--footer-right", footer,
			"--footer-font-size", headerFooterFontSize,
			"--footer-spacing", "5",
		)
	}

	return append(args, inputPath, outputPath)
}

// wkhtmltopdfPageSize maps a style page size to wkhtmltopdf's spelling.
func wkhtmltopdfPageSize(size string) string {
	switch strings.ToLower(size) {
	case PageSizeA4:
		return "A4"
	case PageSizeLegal:
		return "Legal"
	default:
		return "Letter"
	}
}

// renderFailureReason builds a concise human-readable cause from the
// process error and its stderr. Raw renderer output is trimmed to the
// last meaningful line.
func renderFailureReason(stderr string, err error) string {
	lines := strings.Split(strings.TrimSpace(stderr), "\n")
	for i := len(lines) - 1; i >= 0; i-- {
		if line := strings.TrimSpace(lines[i]); line != "" {
			return fmt.Sprintf("%s (%v)", line, err)
		}
	}
	return err.Error()
}

// wkhtmltopdfEnvVar overrides binary discovery when set.
const wkhtmltopdfEnvVar = "MDPRESS_WKHTMLTOPDF"

// LookupWkhtmltopdf locates the wkhtmltopdf binary: the MDPRESS_WKHTMLTOPDF
// override first, then PATH, then common install locations. Its absence is
// a setup error, reported with install hints.
func LookupWkhtmltopdf() (string, error) {
	if override := os.Getenv(wkhtmltopdfEnvVar); override != "" {
		if fileutil.FileExists(override) {
			return override, nil
		}
		return "", fmt.Errorf("%w: %s points to %s%s", ErrRendererNotFound, wkhtmltopdfEnvVar, override, hints.ForRendererNotFound())
	}

	if path, err := exec.LookPath("wkhtmltopdf"); err == nil {
		return path, nil
	}

	for _, path := range commonInstallPaths() {
		if fileutil.FileExists(path) {
			return path, nil
		}
	}

	return "", fmt.Errorf("%w%s", ErrRendererNotFound, hints.ForRendererNotFound())
}

// commonInstallPaths returns well-known wkhtmltopdf locations per OS.
func commonInstallPaths() []string {
	if runtime.GOOS == "windows" {
		return []string{
			filepath.Join(`C:\Program Files\wkhtmltopdf\bin`, "wkhtmltopdf.exe"),
			filepath.Join(`C:\Program Files (x86)\wkhtmltopdf\bin`, "wkhtmltopdf.exe"),
		}
	}
	return []string{
		"/usr/local/bin/wkhtmltopdf",
		"/usr/bin/wkhtmltopdf",
		"/opt/homebrew/bin/wkhtmltopdf",
	}
}
