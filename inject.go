package mdpress

import (
	"fmt"
	"html"
	"strings"
)

// documentTemplate wraps a body fragment and stylesheet in a complete
// HTML5 document with exactly one <style> block in <head>.
const documentTemplate = `<!DOCTYPE html>
<html>
<head>
<meta charset="utf-8">
<meta name="viewport" content="width=device-width, initial-scale=1.0">
<title>%s</title>
<style>
%s
</style>
</head>
<body>
%s
</body>
</html>
`

// injectDocument builds the final styled HTML document from a title, a
// stylesheet, and an HTML body fragment. Pure function, no failure modes:
// the stylesheet is well-formed by the time it reaches this stage.
func injectDocument(title, css, body string) string {
	return fmt.Sprintf(documentTemplate, html.EscapeString(title), sanitizeCSS(css), body)
}

// sanitizeCSS escapes sequences that could close the <style> block early.
func sanitizeCSS(css string) string {
	return strings.ReplaceAll(css, "</", `<\/`)
}
