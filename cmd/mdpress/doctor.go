package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"os/exec"
	"runtime"
	"strings"

	"github.com/go-rod/rod/lib/launcher"

	mdpress "github.com/mdpress/mdpress"
	"github.com/mdpress/mdpress/internal/hints"
)

// Injectable lookups for testing.
var (
	lookupWkhtmltopdf = mdpress.LookupWkhtmltopdf
	lookupChrome      = launcher.LookPath
)

// doctorResult holds all diagnostic information.
type doctorResult struct {
	Status   string       `json:"status"` // "ready", "warnings", "errors"
	Renderer rendererInfo `json:"renderer"`
	Chrome   chromeInfo   `json:"chrome"`
	Env      envInfo      `json:"environment"`
	System   systemInfo   `json:"system"`
	Warnings []string     `json:"warnings,omitempty"`
	Errors   []string     `json:"errors,omitempty"`
}

// rendererInfo holds wkhtmltopdf detection results.
type rendererInfo struct {
	Found   bool   `json:"found"`
	Path    string `json:"path,omitempty"`
	Version string `json:"version,omitempty"`
}

// chromeInfo holds Chrome/Chromium fallback detection results.
type chromeInfo struct {
	Found bool   `json:"found"`
	Path  string `json:"path,omitempty"`
}

// envInfo holds environment detection results.
type envInfo struct {
	OS        string `json:"os"`
	Arch      string `json:"arch"`
	Container bool   `json:"container"`
	CI        bool   `json:"ci"`
}

// systemInfo holds system check results.
type systemInfo struct {
	TempWritable bool `json:"temp_writable"`
}

// runDoctorCmd executes the doctor command and returns an exit code.
// Exit codes: 0 = OK (including warnings), 1 = errors found.
func runDoctorCmd(args []string, env *Environment) int {
	jsonOutput := false
	for _, arg := range args {
		if arg == "--json" {
			jsonOutput = true
		}
	}

	result := runDoctor()

	if jsonOutput {
		enc := json.NewEncoder(env.Stdout)
		enc.SetIndent("", "  ")
		_ = enc.Encode(result)
	} else {
		printDoctorResult(env.Stdout, result)
	}

	if result.Status == "errors" {
		return ExitGeneral
	}
	return ExitSuccess
}

// runDoctor performs all diagnostic checks.
func runDoctor() *doctorResult {
	result := &doctorResult{
		Status: "ready",
		Env: envInfo{
			OS:        runtime.GOOS,
			Arch:      runtime.GOARCH,
			Container: hints.IsInContainer(),
			CI:        hints.InCI(),
		},
	}

	checkRenderer(result)
	checkChrome(result)
	checkSystem(result)

	if len(result.Errors) > 0 {
		result.Status = "errors"
	} else if len(result.Warnings) > 0 {
		result.Status = "warnings"
	}

	return result
}

// checkRenderer detects the wkhtmltopdf binary and its version.
func checkRenderer(result *doctorResult) {
	path, err := lookupWkhtmltopdf()
	if err != nil {
		return
	}

	result.Renderer.Found = true
	result.Renderer.Path = path
	result.Renderer.Version = rendererVersion(path)
}

// rendererVersion asks the binary for its version, best-effort.
func rendererVersion(path string) string {
	out, err := exec.Command(path, "--version").Output() // #nosec G204 -- path from our own lookup
	if err != nil {
		return ""
	}
	return strings.TrimSpace(strings.SplitN(string(out), "\n", 2)[0])
}

// checkChrome detects the Chrome fallback and cross-checks the renderer state.
func checkChrome(result *doctorResult) {
	path, found := lookupChrome()
	result.Chrome.Found = found
	result.Chrome.Path = path

	switch {
	case !result.Renderer.Found && !found:
		result.Errors = append(result.Errors,
			"no renderer available: install wkhtmltopdf or Chrome/Chromium")
	case !result.Renderer.Found:
		result.Warnings = append(result.Warnings,
			"wkhtmltopdf not found; use --renderer chrome for the fallback backend")
	}

	if found && result.Env.Container && os.Getenv("ROD_NO_SANDBOX") != "1" {
		result.Warnings = append(result.Warnings,
			"running in a container: set ROD_NO_SANDBOX=1 for the chrome backend")
	}
}

// checkSystem verifies the temp directory is writable (renderers stage
// HTML input there).
func checkSystem(result *doctorResult) {
	tmp, err := os.CreateTemp("", "mdpress-doctor-*")
	if err != nil {
		result.Errors = append(result.Errors, "temp directory not writable: "+err.Error())
		return
	}
	_ = tmp.Close()
	_ = os.Remove(tmp.Name())
	result.System.TempWritable = true
}

// printDoctorResult writes a human-readable report.
func printDoctorResult(w io.Writer, result *doctorResult) {
	fmt.Fprintf(w, "Status: %s\n\n", result.Status)

	if result.Renderer.Found {
		fmt.Fprintf(w, "wkhtmltopdf: %s", result.Renderer.Path)
		if result.Renderer.Version != "" {
			fmt.Fprintf(w, " (%s)", result.Renderer.Version)
		}
		fmt.Fprintln(w)
	} else {
		fmt.Fprintln(w, "wkhtmltopdf: not found")
	}

	if result.Chrome.Found {
		fmt.Fprintf(w, "chrome:      %s\n", result.Chrome.Path)
	} else {
		fmt.Fprintln(w, "chrome:      not found")
	}

	fmt.Fprintf(w, "system:      %s/%s, container=%t, ci=%t, temp_writable=%t\n",
		result.Env.OS, result.Env.Arch, result.Env.Container, result.Env.CI, result.System.TempWritable)

	for _, warning := range result.Warnings {
		fmt.Fprintf(w, "\nwarning: %s\n", warning)
	}
	for _, e := range result.Errors {
		fmt.Fprintf(w, "\nerror: %s\n", e)
	}
}
