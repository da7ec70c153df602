package mdpress

import (
	"context"
	"fmt"
	"html"
	"io"
	"os"
	"strings"
	"time"

	"github.com/go-rod/rod"
	"github.com/go-rod/rod/lib/launcher"
	"github.com/go-rod/rod/lib/proto"

	"github.com/mdpress/mdpress/internal/fileutil"
	"github.com/mdpress/mdpress/internal/hints"
)

// paperSize holds page dimensions in inches.
type paperSize struct {
	width  float64
	height float64
}

// paperSizes maps style page sizes to physical dimensions.
var paperSizes = map[string]paperSize{
	PageSizeLetter: {width: 8.5, height: 11},
	PageSizeA4:     {width: 8.27, height: 11.69},
	PageSizeLegal:  {width: 8.5, height: 14},
}

// pdfFilePermissions applies to written PDF files.
const pdfFilePermissions = 0o644

// ChromeRenderer renders HTML to PDF via headless Chrome using go-rod.
// It is the fallback backend for hosts without wkhtmltopdf; rod downloads
// a managed Chromium on first run if none is found.
type ChromeRenderer struct {
	browser *rod.Browser
	timeout time.Duration
}

// Compile-time interface check.
var _ Renderer = (*ChromeRenderer)(nil)

// NewChromeRenderer creates a ChromeRenderer with the given per-document
// timeout. The browser is launched lazily on first render.
func NewChromeRenderer(timeout time.Duration) *ChromeRenderer {
	return &ChromeRenderer{timeout: timeout}
}

// ensureBrowser lazily launches and connects to the browser.
func (r *ChromeRenderer) ensureBrowser() error {
	if r.browser != nil {
		return nil
	}

	l := launcher.New()

	// Use a pre-installed browser if specified (Docker/containerized hosts).
	if bin := os.Getenv("ROD_BROWSER_BIN"); bin != "" {
		l = l.Bin(bin)
	}

	// NoSandbox required for CI and containerized environments.
	if os.Getenv("CI") == "true" || os.Getenv("ROD_BROWSER_BIN") != "" {
		l = l.NoSandbox(true)
	}

	u, err := l.Launch()
	if err != nil {
		return fmt.Errorf("%w: %v%s", ErrBrowserConnect, err, hints.ForBrowserConnect())
	}

	r.browser = rod.New().ControlURL(u)
	if err := r.browser.Connect(); err != nil {
		r.browser = nil
		return fmt.Errorf("%w: %v%s", ErrBrowserConnect, err, hints.ForBrowserConnect())
	}
	return nil
}

// Render opens the HTML in headless Chrome, prints it to PDF with the page
// options, and writes the result to outputPath. Same contract as the
// wkhtmltopdf backend: no empty or partial file is left on failure.
func (r *ChromeRenderer) Render(ctx context.Context, htmlContent, outputPath string, opts RenderOptions) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	if err := r.ensureBrowser(); err != nil {
		return err
	}

	tmpPath, cleanup, err := fileutil.WriteTempFile(htmlContent, "html")
	if err != nil {
		return err
	}
	defer cleanup()

	page, err := r.browser.Page(proto.TargetCreateTarget{URL: "file://" + tmpPath})
	if err != nil {
		return fmt.Errorf("%w: %v", ErrPageCreate, err)
	}
	defer page.Close()

	timeout := r.timeout
	if deadline, ok := ctx.Deadline(); ok {
		timeout = time.Until(deadline)
		if timeout <= 0 {
			return context.DeadlineExceeded
		}
	}

	if err := page.Timeout(timeout).WaitLoad(); err != nil {
		return fmt.Errorf("%w: %v", ErrPageLoad, err)
	}

	if err := ctx.Err(); err != nil {
		return err
	}

	printOpts, err := buildPrintOptions(opts)
	if err != nil {
		return err
	}

	reader, err := page.PDF(printOpts)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrPDFGeneration, err)
	}

	pdfBytes, err := io.ReadAll(reader)
	if err != nil {
		return fmt.Errorf("%w: reading PDF stream: %v", ErrPDFGeneration, err)
	}
	if len(pdfBytes) == 0 {
		return fmt.Errorf("%w: %s", ErrNoRenderOutput, outputPath)
	}

	if err := os.WriteFile(outputPath, pdfBytes, pdfFilePermissions); err != nil {
		_ = os.Remove(outputPath)
		return fmt.Errorf("writing PDF file: %w", err)
	}

	return nil
}

// Close releases browser resources.
func (r *ChromeRenderer) Close() error {
	if r.browser != nil {
		err := r.browser.Close()
		r.browser = nil
		return err
	}
	return nil
}

// buildPrintOptions constructs proto.PagePrintToPDF from RenderOptions.
// Margins are converted from CSS length strings to inches.
func buildPrintOptions(opts RenderOptions) (*proto.PagePrintToPDF, error) {
	size, ok := paperSizes[strings.ToLower(opts.PageSize)]
	if !ok {
		size = paperSizes[PageSizeLetter]
	}

	top, err := ParseLength(opts.Margins.Top)
	if err != nil {
		return nil, err
	}
	bottom, err := ParseLength(opts.Margins.Bottom)
	if err != nil {
		return nil, err
	}
	left, err := ParseLength(opts.Margins.Left)
	if err != nil {
		return nil, err
	}
	right, err := ParseLength(opts.Margins.Right)
	if err != nil {
		return nil, err
	}

	printOpts := &proto.PagePrintToPDF{
		PaperWidth:      floatPtr(size.width),
		PaperHeight:     floatPtr(size.height),
		MarginTop:       floatPtr(top),
		MarginBottom:    floatPtr(bottom),
		MarginLeft:      floatPtr(left),
		MarginRight:     floatPtr(right),
		PrintBackground: true,
	}

	footer := opts.FooterText
	if footer == "" && opts.PageNumbers {
		footer = defaultFooterText
	}

	if opts.HeaderText != "" || footer != "" {
		printOpts.DisplayHeaderFooter = true
		printOpts.HeaderTemplate = headerFooterTemplate(opts.HeaderText, "center")
		printOpts.FooterTemplate = headerFooterTemplate(footer, "right")
	}

	return printOpts, nil
}

// headerFooterTemplate builds Chrome's native header/footer HTML from text
// carrying [page]/[topage] placeholders. Chrome substitutes page counts via
// the pageNumber/totalPages CSS classes.
func headerFooterTemplate(text, align string) string {
	if text == "" {
		return "<span></span>"
	}

	content := html.EscapeString(text)
	content = strings.ReplaceAll(content, "[page]", `<span class="pageNumber"></span>`)
	content = strings.ReplaceAll(content, "[topage]", `<span class="totalPages"></span>`)

	return fmt.Sprintf(`<div style="font-size: 10px; font-family: sans-serif; color: #777; width: 100%%; text-align: %s; padding: 0 0.5in;">%s</div>`, align, content)
}

// floatPtr returns a pointer to a float64 value.
func floatPtr(v float64) *float64 {
	return &v
}
