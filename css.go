package mdpress

import (
	"fmt"
	"strings"

	chromahtml "github.com/alecthomas/chroma/v2/formatters/html"
	"github.com/alecthomas/chroma/v2/styles"
)

// highlightStyleName is the chroma style used for fenced code blocks.
const highlightStyleName = "github"

// buildStylesheet generates the document stylesheet from a Style.
// The layout mirrors the generated HTML: body text, links, inline code,
// code blocks, tables, and images, followed by syntax highlighting classes.
func buildStylesheet(s Style) (string, error) {
	var buf strings.Builder

	fmt.Fprintf(&buf, `@page {
  margin: %s %s %s %s;
}
body {
  font-family: %s;
  font-size: %.4gpt;
  line-height: %.4g;
  color: %s;
  background-color: %s;
}
a {
  color: %s;
}
code {
  font-family: %s;
  font-size: %.4gpt;
  background-color: %s;
  padding: %s;
  border-radius: %s;
}
pre {
  font-family: %s;
  font-size: %.4gpt;
  background-color: %s;
  padding: %s;
  border-radius: %s;
  white-space: pre-wrap;
}
pre code {
  padding: 0;
  background-color: transparent;
}
table {
  border-collapse: collapse;
  margin: %s;
  width: 100%%;
}
th, td {
  border: %s solid %s;
  padding: %s;
  text-align: left;
}
th {
  background-color: %s;
}
img {
  max-width: %s;
  height: auto;
}
blockquote {
  margin: 1em 0;
  padding-left: 1em;
  border-left: 3px solid %s;
}
`,
		s.Margins.Top, s.Margins.Right, s.Margins.Bottom, s.Margins.Left,
		s.FontFamily, s.FontSize, s.LineHeight, s.Colors.Text, s.Colors.Background,
		s.Colors.Link,
		s.Code.Family, s.Code.Size, s.Code.Background, s.Code.Padding, s.Code.BorderRadius,
		s.Code.Family, s.Code.Size, s.Code.Background, s.Code.Padding, s.Code.BorderRadius,
		s.Tables.Margin,
		s.Tables.BorderWidth, s.Colors.TableBorder, s.Tables.CellPadding,
		s.Colors.TableHeaderBg,
		s.Images.MaxWidth,
		s.Colors.TableBorder,
	)

	highlight, err := highlightCSS()
	if err != nil {
		return "", err
	}
	buf.WriteString(highlight)

	return buf.String(), nil
}

// highlightCSS generates the chroma class stylesheet matching the classes
// emitted by the Goldmark highlighting extension.
func highlightCSS() (string, error) {
	style := styles.Get(highlightStyleName)
	formatter := chromahtml.New(chromahtml.WithClasses(true))

	var buf strings.Builder
	if err := formatter.WriteCSS(&buf, style); err != nil {
		return "", fmt.Errorf("generating highlight CSS: %w", err)
	}
	return buf.String(), nil
}
