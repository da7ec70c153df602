// Package hints provides actionable error hints for common failure scenarios.
// Hints are formatted consistently as "\n  hint: <text>" for appending to
// error messages.
package hints

import (
	"os"
	"runtime"
	"strings"

	"github.com/mdpress/mdpress/internal/fileutil"
)

// IsInContainer detects if running inside a Docker container or similar.
// Checks for /.dockerenv which Docker creates automatically.
var IsInContainer = func() bool {
	return fileutil.FileExists("/.dockerenv")
}

// InCI detects common CI environments.
func InCI() bool {
	return os.Getenv("CI") != "" ||
		os.Getenv("GITHUB_ACTIONS") != "" ||
		os.Getenv("GITLAB_CI") != "" ||
		os.Getenv("JENKINS_URL") != ""
}

// ForRendererNotFound returns install instructions for wkhtmltopdf,
// matched to the host OS.
func ForRendererNotFound() string {
	var install string
	switch runtime.GOOS {
	case "darwin":
		install = "brew install wkhtmltopdf"
	case "windows":
		install = "download from https://wkhtmltopdf.org/downloads.html"
	default:
		install = "apt-get install wkhtmltopdf (or your distro's equivalent)"
	}

	return formatHints([]string{
		"install it: " + install,
		"or set MDPRESS_WKHTMLTOPDF to the binary path",
		"or run with --renderer chrome",
	})
}

// ForBrowserConnect returns hints for Chrome backend connection errors.
// Detects CI/Docker environments and suggests relevant variables.
func ForBrowserConnect() string {
	var hints []string

	if (InCI() || IsInContainer()) && os.Getenv("ROD_NO_SANDBOX") != "1" {
		hints = append(hints, "set ROD_NO_SANDBOX=1 for Docker/CI")
	}
	if os.Getenv("ROD_BROWSER_BIN") == "" {
		hints = append(hints, "set ROD_BROWSER_BIN to use a pre-installed Chrome")
	}

	return formatHints(hints)
}

// ForTimeout returns a hint about raising the timeout for slow documents.
func ForTimeout() string {
	return format("for large documents, raise --timeout")
}

// ForConfigNotFound returns a hint for missing style config files.
func ForConfigNotFound(path string) string {
	return format("create " + path + " or pass --style /path/to/styles.yaml")
}

// ForOutputDirectory returns a hint for output directory creation errors.
func ForOutputDirectory() string {
	return format("check parent directory exists and is writable")
}

// format renders a single hint.
func format(hint string) string {
	return "\n  hint: " + hint
}

// formatHints renders multiple hints, one per line.
func formatHints(hints []string) string {
	if len(hints) == 0 {
		return ""
	}
	var b strings.Builder
	for _, h := range hints {
		b.WriteString(format(h))
	}
	return b.String()
}
