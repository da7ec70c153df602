package mdpress

import (
	"errors"
	"strings"
	"testing"
)

func TestBuildPrintOptions(t *testing.T) {
	t.Parallel()

	opts := RenderOptions{
		PageSize: "a4",
		Margins:  Margins{Top: "1in", Bottom: "2.54cm", Left: "36pt", Right: "96px"},
	}

	got, err := buildPrintOptions(opts)
	if err != nil {
		t.Fatalf("buildPrintOptions() error = %v", err)
	}

	if *got.PaperWidth != 8.27 || *got.PaperHeight != 11.69 {
		t.Errorf("paper = %vx%v, want 8.27x11.69", *got.PaperWidth, *got.PaperHeight)
	}

	approx := func(got, want float64) bool {
		d := got - want
		return d < 1e-9 && d > -1e-9
	}
	if !approx(*got.MarginTop, 1) {
		t.Errorf("MarginTop = %v, want 1", *got.MarginTop)
	}
	if !approx(*got.MarginBottom, 1) {
		t.Errorf("MarginBottom = %v, want 1", *got.MarginBottom)
	}
	if !approx(*got.MarginLeft, 0.5) {
		t.Errorf("MarginLeft = %v, want 0.5", *got.MarginLeft)
	}
	if !approx(*got.MarginRight, 1) {
		t.Errorf("MarginRight = %v, want 1", *got.MarginRight)
	}

	if !got.PrintBackground {
		t.Error("PrintBackground = false, want true")
	}
	if got.DisplayHeaderFooter {
		t.Error("DisplayHeaderFooter = true without header or footer")
	}
}

func TestBuildPrintOptionsUnknownPageSize(t *testing.T) {
	t.Parallel()

	got, err := buildPrintOptions(RenderOptions{
		PageSize: "weird",
		Margins:  Margins{Top: "1in", Bottom: "1in", Left: "1in", Right: "1in"},
	})
	if err != nil {
		t.Fatalf("buildPrintOptions() error = %v", err)
	}
	if *got.PaperWidth != 8.5 || *got.PaperHeight != 11 {
		t.Errorf("paper = %vx%v, want letter fallback", *got.PaperWidth, *got.PaperHeight)
	}
}

func TestBuildPrintOptionsBadMargin(t *testing.T) {
	t.Parallel()

	_, err := buildPrintOptions(RenderOptions{
		PageSize: "letter",
		Margins:  Margins{Top: "nope", Bottom: "1in", Left: "1in", Right: "1in"},
	})
	if !errors.Is(err, ErrInvalidMargin) {
		t.Errorf("buildPrintOptions() error = %v, want ErrInvalidMargin", err)
	}
}

func TestBuildPrintOptionsFooter(t *testing.T) {
	t.Parallel()

	got, err := buildPrintOptions(RenderOptions{
		PageSize:    "letter",
		Margins:     Margins{Top: "1in", Bottom: "1in", Left: "1in", Right: "1in"},
		PageNumbers: true,
	})
	if err != nil {
		t.Fatalf("buildPrintOptions() error = %v", err)
	}
	if !got.DisplayHeaderFooter {
		t.Error("DisplayHeaderFooter = false with page numbers enabled")
	}
	if !strings.Contains(got.FooterTemplate, `class="pageNumber"`) {
		t.Errorf("FooterTemplate = %q, missing pageNumber span", got.FooterTemplate)
	}
}

func TestHeaderFooterTemplate(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		text string
		want []string
	}{
		{
			name: "empty is placeholder span",
			text: "",
			want: []string{"<span></span>"},
		},
		{
			name: "page placeholder translated",
			text: "Page [page]",
			want: []string{`Page <span class="pageNumber"></span>`},
		},
		{
			name: "both placeholders translated",
			text: "[page] of [topage]",
			want: []string{`<span class="pageNumber"></span>`, `<span class="totalPages"></span>`},
		},
		{
			name: "text escaped",
			text: "<b>x</b>",
			want: []string{"&lt;b&gt;x&lt;/b&gt;"},
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got := headerFooterTemplate(tt.text, "right")
			for _, want := range tt.want {
				if !strings.Contains(got, want) {
					t.Errorf("headerFooterTemplate(%q) = %q, missing %q", tt.text, got, want)
				}
			}
		})
	}
}
