// Package mdpress converts Markdown documents to styled PDF files using an
// external HTML-to-PDF renderer.
//
// # Quick Start
//
// Load a style, create a service, and convert:
//
//	style, err := mdpress.LoadStyle("config/styles.yaml")
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	svc, err := mdpress.NewService(style)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	defer svc.Close()
//
//	err = svc.Convert(ctx, mdpress.Input{
//	    Markdown:   "# Hello\n\nWorld",
//	    OutputPath: "hello.pdf",
//	})
//
// # Conversion Pipeline
//
// Each conversion follows these stages:
//
//  1. Markdown preprocessing (line ending normalization)
//  2. Markdown to HTML conversion via Goldmark (GFM, syntax highlighting)
//  3. Relative image/link path rewriting to file:// URLs
//  4. Stylesheet injection (fonts, colors, margins from the style config)
//  5. PDF rendering via wkhtmltopdf, or headless Chrome as a fallback backend
//
// # Renderer Requirements
//
// The default backend invokes the wkhtmltopdf binary. It must be installed
// and reachable on PATH (or pointed to via MDPRESS_WKHTMLTOPDF). The Chrome
// backend uses go-rod, which downloads a managed Chromium on first run;
// set ROD_NO_SANDBOX=1 in containers and ROD_BROWSER_BIN for a custom binary.
package mdpress
