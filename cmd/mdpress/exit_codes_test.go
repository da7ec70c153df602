package main

import (
	"errors"
	"fmt"
	"os"
	"testing"

	mdpress "github.com/mdpress/mdpress"
	"github.com/mdpress/mdpress/internal/scenario"
)

func TestExitCodeFor(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		err  error
		want int
	}{
		{name: "nil", err: nil, want: ExitSuccess},
		{name: "renderer missing", err: mdpress.ErrRendererNotFound, want: ExitRender},
		{name: "render failed", err: mdpress.ErrRenderFailed, want: ExitRender},
		{name: "no output", err: mdpress.ErrNoRenderOutput, want: ExitRender},
		{name: "browser connect", err: mdpress.ErrBrowserConnect, want: ExitRender},
		{name: "wrapped render error", err: fmt.Errorf("rendering PDF: %w", mdpress.ErrRenderFailed), want: ExitRender},
		{name: "file not exist", err: os.ErrNotExist, want: ExitIO},
		{name: "permission", err: os.ErrPermission, want: ExitIO},
		{name: "input dir missing", err: scenario.ErrInputDirNotFound, want: ExitIO},
		{name: "unreadable markdown", err: ErrReadMarkdown, want: ExitIO},
		{name: "config missing", err: mdpress.ErrConfigNotFound, want: ExitUsage},
		{name: "config parse", err: mdpress.ErrConfigParse, want: ExitUsage},
		{name: "bad page size", err: mdpress.ErrInvalidPageSize, want: ExitUsage},
		{name: "bad margin", err: mdpress.ErrInvalidMargin, want: ExitUsage},
		{name: "empty scenario name", err: scenario.ErrEmptyName, want: ExitUsage},
		{name: "bad scenario name", err: scenario.ErrInvalidName, want: ExitUsage},
		{name: "unknown renderer flag", err: ErrUnknownRenderer, want: ExitUsage},
		{name: "bad worker count", err: ErrInvalidWorkerCount, want: ExitUsage},
		{name: "bad timeout", err: ErrInvalidTimeout, want: ExitUsage},
		{name: "unclassified", err: errors.New("something else"), want: ExitGeneral},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			if got := exitCodeFor(tt.err); got != tt.want {
				t.Errorf("exitCodeFor(%v) = %d, want %d", tt.err, got, tt.want)
			}
		})
	}
}
