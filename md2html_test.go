package mdpress

import (
	"context"
	"errors"
	"strings"
	"testing"
)

func TestToHTMLElements(t *testing.T) {
	t.Parallel()

	conv := newGoldmarkConverter()

	tests := []struct {
		name     string
		markdown string
		want     []string
	}{
		{
			name:     "heading",
			markdown: "# Title",
			want:     []string{"<h1>Title</h1>"},
		},
		{
			name:     "emphasis",
			markdown: "*soft* and **loud**",
			want:     []string{"<em>soft</em>", "<strong>loud</strong>"},
		},
		{
			name:     "unordered list",
			markdown: "- one\n- two",
			want:     []string{"<ul>", "<li>one</li>", "<li>two</li>"},
		},
		{
			name:     "ordered list",
			markdown: "1. first\n2. second",
			want:     []string{"<ol>", "<li>first</li>"},
		},
		{
			name:     "link",
			markdown: "[docs](https://example.com)",
			want:     []string{`<a href="https://example.com">docs</a>`},
		},
		{
			name:     "image",
			markdown: "![logo](logo.png)",
			want:     []string{`<img src="logo.png" alt="logo"`},
		},
		{
			name:     "gfm table",
			markdown: "| a | b |\n|---|---|\n| 1 | 2 |",
			want:     []string{"<table>", "<th>a</th>", "<td>1</td>"},
		},
		{
			name:     "gfm strikethrough",
			markdown: "~~gone~~",
			want:     []string{"<del>gone</del>"},
		},
		{
			name:     "blockquote",
			markdown: "> wisdom",
			want:     []string{"<blockquote>"},
		},
		{
			name:     "fenced code with highlighting classes",
			markdown: "```go\nfunc main() {}\n```",
			want:     []string{`class="chroma"`},
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got, err := conv.ToHTML(context.Background(), tt.markdown)
			if err != nil {
				t.Fatalf("ToHTML() error = %v", err)
			}
			for _, want := range tt.want {
				if !strings.Contains(got, want) {
					t.Errorf("ToHTML(%q) = %q, missing %q", tt.markdown, got, want)
				}
			}
		})
	}
}

func TestToHTMLBodyFragment(t *testing.T) {
	t.Parallel()

	conv := newGoldmarkConverter()

	got, err := conv.ToHTML(context.Background(), "# Title")
	if err != nil {
		t.Fatalf("ToHTML() error = %v", err)
	}

	// The converter emits a body fragment; document assembly adds the shell.
	for _, forbidden := range []string{"<html", "<head", "<body", "<!DOCTYPE"} {
		if strings.Contains(got, forbidden) {
			t.Errorf("ToHTML() output contains %q, want body fragment only", forbidden)
		}
	}
}

func TestToHTMLDeterministic(t *testing.T) {
	t.Parallel()

	conv := newGoldmarkConverter()
	ctx := context.Background()
	markdown := "# Title\n\nSome *text* with a [link](a.md).\n\n```go\nvar x int\n```\n"

	first, err := conv.ToHTML(ctx, markdown)
	if err != nil {
		t.Fatalf("ToHTML() error = %v", err)
	}

	for i := 0; i < 5; i++ {
		got, err := conv.ToHTML(ctx, markdown)
		if err != nil {
			t.Fatalf("ToHTML() run %d error = %v", i, err)
		}
		if got != first {
			t.Fatalf("ToHTML() run %d differs from first run", i)
		}
	}
}

func TestToHTMLMalformedInputDegrades(t *testing.T) {
	t.Parallel()

	conv := newGoldmarkConverter()

	// Broken constructs pass through as text instead of erroring.
	got, err := conv.ToHTML(context.Background(), "[unclosed link(")
	if err != nil {
		t.Fatalf("ToHTML() error = %v", err)
	}
	if !strings.Contains(got, "[unclosed link(") {
		t.Errorf("ToHTML() = %q, want literal passthrough", got)
	}
}

func TestToHTMLContextCanceled(t *testing.T) {
	t.Parallel()

	conv := newGoldmarkConverter()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := conv.ToHTML(ctx, "# Title")
	if !errors.Is(err, context.Canceled) {
		t.Errorf("ToHTML() error = %v, want context.Canceled", err)
	}
}
