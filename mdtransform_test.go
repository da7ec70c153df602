package mdpress

import (
	"context"
	"testing"
)

func TestPreprocessMarkdown(t *testing.T) {
	t.Parallel()

	p := &commonMarkPreprocessor{}

	tests := []struct {
		name  string
		input string
		want  string
	}{
		{name: "crlf normalized", input: "a\r\nb\r\n", want: "a\nb\n"},
		{name: "bare cr normalized", input: "a\rb", want: "a\nb"},
		{name: "blank runs compressed", input: "a\n\n\n\n\nb", want: "a\n\nb"},
		{name: "double blank kept", input: "a\n\nb", want: "a\n\nb"},
		{name: "crlf blanks compressed", input: "a\r\n\r\n\r\n\r\nb", want: "a\n\nb"},
		{name: "unchanged", input: "# Title\n\nBody.\n", want: "# Title\n\nBody.\n"},
		{name: "empty", input: "", want: ""},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got := p.PreprocessMarkdown(context.Background(), tt.input)
			if got != tt.want {
				t.Errorf("PreprocessMarkdown(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestPreprocessMarkdownCanceledContext(t *testing.T) {
	t.Parallel()

	p := &commonMarkPreprocessor{}

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	input := "a\r\nb"
	if got := p.PreprocessMarkdown(ctx, input); got != input {
		t.Errorf("PreprocessMarkdown() with canceled ctx = %q, want input unchanged", got)
	}
}
