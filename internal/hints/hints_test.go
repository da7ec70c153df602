package hints

import (
	"strings"
	"testing"
)

func TestForRendererNotFound(t *testing.T) {
	t.Parallel()

	got := ForRendererNotFound()

	if !strings.Contains(got, "\n  hint: ") {
		t.Errorf("ForRendererNotFound() = %q, want hint formatting", got)
	}
	if !strings.Contains(got, "MDPRESS_WKHTMLTOPDF") {
		t.Error("missing env override hint")
	}
	if !strings.Contains(got, "--renderer chrome") {
		t.Error("missing chrome fallback hint")
	}
}

func TestForBrowserConnect(t *testing.T) {
	restore := IsInContainer
	defer func() { IsInContainer = restore }()

	t.Run("container without sandbox var", func(t *testing.T) {
		IsInContainer = func() bool { return true }
		t.Setenv("ROD_NO_SANDBOX", "")
		t.Setenv("ROD_BROWSER_BIN", "")

		got := ForBrowserConnect()
		if !strings.Contains(got, "ROD_NO_SANDBOX=1") {
			t.Errorf("ForBrowserConnect() = %q, want sandbox hint", got)
		}
	})

	t.Run("sandbox already disabled", func(t *testing.T) {
		IsInContainer = func() bool { return true }
		t.Setenv("ROD_NO_SANDBOX", "1")
		t.Setenv("ROD_BROWSER_BIN", "/usr/bin/chromium")

		if got := ForBrowserConnect(); got != "" {
			t.Errorf("ForBrowserConnect() = %q, want empty", got)
		}
	})
}

func TestInCI(t *testing.T) {
	t.Setenv("CI", "")
	t.Setenv("GITHUB_ACTIONS", "")
	t.Setenv("GITLAB_CI", "")
	t.Setenv("JENKINS_URL", "")

	if InCI() {
		t.Error("InCI() = true with no CI variables set")
	}

	t.Setenv("GITHUB_ACTIONS", "true")
	if !InCI() {
		t.Error("InCI() = false with GITHUB_ACTIONS set")
	}
}

func TestFormatHints(t *testing.T) {
	t.Parallel()

	if got := formatHints(nil); got != "" {
		t.Errorf("formatHints(nil) = %q, want empty", got)
	}

	got := formatHints([]string{"first", "second"})
	want := "\n  hint: first\n  hint: second"
	if got != want {
		t.Errorf("formatHints() = %q, want %q", got, want)
	}
}
