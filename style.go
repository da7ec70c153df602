package mdpress

import (
	"fmt"
	"os"
	"regexp"
	"strconv"
	"strings"

	"github.com/mdpress/mdpress/internal/yamlutil"
)

// Page size constants.
const (
	PageSizeLetter = "letter"
	PageSizeA4     = "a4"
	PageSizeLegal  = "legal"
)

// Font size bounds in points.
const (
	MinFontSize = 6
	MaxFontSize = 72
)

// Margins holds per-side page margins as CSS length strings (e.g. "1in", "2cm").
type Margins struct {
	Top    string `yaml:"top"`
	Bottom string `yaml:"bottom"`
	Left   string `yaml:"left"`
	Right  string `yaml:"right"`
}

// Colors holds document color settings as hex or named CSS colors.
type Colors struct {
	Text          string `yaml:"text"`
	Background    string `yaml:"background"`
	Link          string `yaml:"link"`
	TableBorder   string `yaml:"table_border"`
	TableHeaderBg string `yaml:"table_header_bg"`
}

// CodeStyle holds styling for inline code and fenced code blocks.
type CodeStyle struct {
	Family       string  `yaml:"family"`
	Size         float64 `yaml:"size"` // points
	Background   string  `yaml:"background"`
	Padding      string  `yaml:"padding"`
	BorderRadius string  `yaml:"border_radius"`
}

// TableStyle holds table layout settings.
type TableStyle struct {
	Margin      string `yaml:"margin"`
	BorderWidth string `yaml:"border_width"`
	CellPadding string `yaml:"cell_padding"`
}

// ImageStyle holds image layout settings.
type ImageStyle struct {
	MaxWidth string `yaml:"max_width"`
}

// Style is the resolved, immutable styling configuration for a run.
// Every field is populated: LoadStyle substitutes defaults for omitted keys.
type Style struct {
	FontFamily  string
	FontSize    float64 // points
	LineHeight  float64
	PageSize    string // "letter", "a4", "legal"
	Margins     Margins
	Colors      Colors
	PageNumbers bool
	HeaderText  string // optional, may contain [page]/[topage] placeholders
	FooterText  string // optional, may contain [page]/[topage] placeholders
	Code        CodeStyle
	Tables      TableStyle
	Images      ImageStyle
}

// styleFile mirrors Style for YAML decoding. PageNumbers is a pointer so
// an omitted key can be told apart from an explicit false.
type styleFile struct {
	FontFamily  string     `yaml:"font_family"`
	FontSize    float64    `yaml:"font_size"`
	LineHeight  float64    `yaml:"line_height"`
	PageSize    string     `yaml:"page_size"`
	Margins     Margins    `yaml:"margins"`
	Colors      Colors     `yaml:"colors"`
	PageNumbers *bool      `yaml:"page_numbers"`
	HeaderText  string     `yaml:"header_text"`
	FooterText  string     `yaml:"footer_text"`
	Code        CodeStyle  `yaml:"code"`
	Tables      TableStyle `yaml:"tables"`
	Images      ImageStyle `yaml:"images"`
}

// DefaultStyle returns the documented fallback styling: US Letter, 1 inch
// margins on all sides, page numbers enabled.
func DefaultStyle() Style {
	return Style{
		FontFamily: "Helvetica, Arial, sans-serif",
		FontSize:   12,
		LineHeight: 1.6,
		PageSize:   PageSizeLetter,
		Margins: Margins{
			Top:    "1in",
			Bottom: "1in",
			Left:   "1in",
			Right:  "1in",
		},
		Colors: Colors{
			Text:          "#1a1a1a",
			Background:    "#ffffff",
			Link:          "#0b61c4",
			TableBorder:   "#d0d7de",
			TableHeaderBg: "#f6f8fa",
		},
		PageNumbers: true,
		Code: CodeStyle{
			Family:       "Menlo, Consolas, monospace",
			Size:         10,
			Background:   "#f6f8fa",
			Padding:      "0.2em 0.4em",
			BorderRadius: "4px",
		},
		Tables: TableStyle{
			Margin:      "1em 0",
			BorderWidth: "1px",
			CellPadding: "6px",
		},
		Images: ImageStyle{
			MaxWidth: "100%",
		},
	}
}

// LoadStyle reads a YAML style file and returns the resolved Style.
// Unknown keys are rejected (strict parsing). Omitted keys fall back to
// DefaultStyle values. The loaded style is validated before return.
func LoadStyle(path string) (Style, error) {
	if path == "" {
		return Style{}, fmt.Errorf("%w: empty path", ErrConfigNotFound)
	}

	data, err := os.ReadFile(path) // #nosec G304 -- style path is user-provided
	if err != nil {
		if os.IsNotExist(err) {
			return Style{}, fmt.Errorf("%w: %s", ErrConfigNotFound, path)
		}
		return Style{}, fmt.Errorf("reading style file: %w", err)
	}

	return ParseStyle(data)
}

// ParseStyle decodes YAML style data and resolves defaults.
func ParseStyle(data []byte) (Style, error) {
	var raw styleFile
	if err := yamlutil.UnmarshalStrict(data, &raw); err != nil {
		return Style{}, fmt.Errorf("%w: %v", ErrConfigParse, err)
	}

	style := resolveStyle(raw)
	if err := style.Validate(); err != nil {
		return Style{}, err
	}
	return style, nil
}

// resolveStyle merges decoded values over DefaultStyle. Zero values mean
// the key was omitted and keep the default.
func resolveStyle(raw styleFile) Style {
	s := DefaultStyle()

	setString(&s.FontFamily, raw.FontFamily)
	setFloat(&s.FontSize, raw.FontSize)
	setFloat(&s.LineHeight, raw.LineHeight)
	setString(&s.PageSize, raw.PageSize)

	setString(&s.Margins.Top, raw.Margins.Top)
	setString(&s.Margins.Bottom, raw.Margins.Bottom)
	setString(&s.Margins.Left, raw.Margins.Left)
	setString(&s.Margins.Right, raw.Margins.Right)

	setString(&s.Colors.Text, raw.Colors.Text)
	setString(&s.Colors.Background, raw.Colors.Background)
	setString(&s.Colors.Link, raw.Colors.Link)
	setString(&s.Colors.TableBorder, raw.Colors.TableBorder)
	setString(&s.Colors.TableHeaderBg, raw.Colors.TableHeaderBg)

	if raw.PageNumbers != nil {
		s.PageNumbers = *raw.PageNumbers
	}
	s.HeaderText = raw.HeaderText
	s.FooterText = raw.FooterText

	setString(&s.Code.Family, raw.Code.Family)
	setFloat(&s.Code.Size, raw.Code.Size)
	setString(&s.Code.Background, raw.Code.Background)
	setString(&s.Code.Padding, raw.Code.Padding)
	setString(&s.Code.BorderRadius, raw.Code.BorderRadius)

	setString(&s.Tables.Margin, raw.Tables.Margin)
	setString(&s.Tables.BorderWidth, raw.Tables.BorderWidth)
	setString(&s.Tables.CellPadding, raw.Tables.CellPadding)

	setString(&s.Images.MaxWidth, raw.Images.MaxWidth)

	return s
}

func setString(dst *string, v string) {
	if v != "" {
		*dst = v
	}
}

func setFloat(dst *float64, v float64) {
	if v != 0 {
		*dst = v
	}
}

// Validate checks page size, margins, font sizes, and colors.
func (s Style) Validate() error {
	if !isValidPageSize(s.PageSize) {
		return fmt.Errorf("%w: %q", ErrInvalidPageSize, s.PageSize)
	}

	margins := map[string]string{
		"top":    s.Margins.Top,
		"bottom": s.Margins.Bottom,
		"left":   s.Margins.Left,
		"right":  s.Margins.Right,
	}
	for side, m := range margins {
		if _, err := ParseLength(m); err != nil {
			return fmt.Errorf("%w: %s %q", ErrInvalidMargin, side, m)
		}
	}

	if s.FontSize < MinFontSize || s.FontSize > MaxFontSize {
		return fmt.Errorf("%w: %.1f (must be between %d and %d points)", ErrInvalidFontSize, s.FontSize, MinFontSize, MaxFontSize)
	}

	colors := []string{
		s.Colors.Text, s.Colors.Background, s.Colors.Link,
		s.Colors.TableBorder, s.Colors.TableHeaderBg,
	}
	for _, c := range colors {
		if !isValidColor(c) {
			return fmt.Errorf("%w: %q", ErrInvalidColor, c)
		}
	}

	return nil
}

// isValidPageSize checks if size is a known page size (case-insensitive).
func isValidPageSize(size string) bool {
	switch strings.ToLower(size) {
	case PageSizeLetter, PageSizeA4, PageSizeLegal:
		return true
	}
	return false
}

// hexColorPattern matches #rgb and #rrggbb hex colors.
var hexColorPattern = regexp.MustCompile(`^#(?:[0-9a-fA-F]{3}|[0-9a-fA-F]{6})$`)

// namedColorPattern matches CSS color keywords (letters only).
var namedColorPattern = regexp.MustCompile(`^[a-zA-Z]+$`)

// isValidColor accepts hex colors and CSS color keywords.
func isValidColor(c string) bool {
	if strings.HasPrefix(c, "#") {
		return hexColorPattern.MatchString(c)
	}
	return namedColorPattern.MatchString(c)
}

// lengthPattern matches a number followed by a supported CSS unit.
var lengthPattern = regexp.MustCompile(`^([0-9]+(?:\.[0-9]+)?)(in|cm|mm|pt|px)$`)

// Inches per unit, for converting CSS lengths to the renderer's dimensions.
const (
	inchesPerCm = 1.0 / 2.54
	inchesPerMm = 1.0 / 25.4
	inchesPerPt = 1.0 / 72.0
	inchesPerPx = 1.0 / 96.0
)

// ParseLength converts a CSS length string ("1in", "2.5cm", "15mm", "36pt",
// "96px") to inches. Returns ErrInvalidMargin for anything unparsable.
func ParseLength(s string) (float64, error) {
	m := lengthPattern.FindStringSubmatch(strings.TrimSpace(s))
	if m == nil {
		return 0, fmt.Errorf("%w: %q (expected number with in/cm/mm/pt/px unit)", ErrInvalidMargin, s)
	}

	value, err := strconv.ParseFloat(m[1], 64)
	if err != nil {
		return 0, fmt.Errorf("%w: %q", ErrInvalidMargin, s)
	}

	switch m[2] {
	case "in":
		return value, nil
	case "cm":
		return value * inchesPerCm, nil
	case "mm":
		return value * inchesPerMm, nil
	case "pt":
		return value * inchesPerPt, nil
	case "px":
		return value * inchesPerPx, nil
	}
	return 0, fmt.Errorf("%w: %q", ErrInvalidMargin, s)
}
