package main

import (
	"bytes"
	"strings"
	"testing"
)

func testEnv() (*Environment, *bytes.Buffer, *bytes.Buffer) {
	stdout := &bytes.Buffer{}
	stderr := &bytes.Buffer{}
	return &Environment{Stdout: stdout, Stderr: stderr}, stdout, stderr
}

func TestRunVersion(t *testing.T) {
	t.Parallel()

	for _, arg := range []string{"version", "--version"} {
		env, stdout, _ := testEnv()

		code := run([]string{"mdpress", arg}, env)
		if code != ExitSuccess {
			t.Errorf("run(%q) = %d, want %d", arg, code, ExitSuccess)
		}
		if !strings.Contains(stdout.String(), "mdpress "+Version) {
			t.Errorf("run(%q) stdout = %q", arg, stdout.String())
		}
	}
}

func TestRunHelp(t *testing.T) {
	t.Parallel()

	for _, arg := range []string{"help", "-h", "--help"} {
		env, stdout, _ := testEnv()

		code := run([]string{"mdpress", arg}, env)
		if code != ExitSuccess {
			t.Errorf("run(%q) = %d, want %d", arg, code, ExitSuccess)
		}
		if !strings.Contains(stdout.String(), "Usage") {
			t.Errorf("run(%q) stdout = %q, want usage text", arg, stdout.String())
		}
	}
}

func TestRunNoArgs(t *testing.T) {
	t.Parallel()

	env, _, stderr := testEnv()

	code := run([]string{"mdpress"}, env)
	if code != ExitUsage {
		t.Errorf("run() = %d, want %d", code, ExitUsage)
	}
	if stderr.Len() == 0 {
		t.Error("usage not printed to stderr")
	}
}

func TestRunConvertMissingScenario(t *testing.T) {
	t.Parallel()

	env, _, stderr := testEnv()

	// Bare scenario name dispatches to convert; the directory doesn't exist.
	code := run([]string{"mdpress", "no_such_scenario", "--root", t.TempDir()}, env)
	if code != ExitIO {
		t.Errorf("run() = %d, want %d for missing input dir", code, ExitIO)
	}
	if !strings.Contains(stderr.String(), "input directory not found") {
		t.Errorf("stderr = %q", stderr.String())
	}
}

func TestRunConvertBadFlags(t *testing.T) {
	t.Parallel()

	env, _, _ := testEnv()

	code := run([]string{"mdpress", "convert", "docs", "--renderer", "phantomjs"}, env)
	if code != ExitUsage {
		t.Errorf("run() = %d, want %d for unknown renderer", code, ExitUsage)
	}
}

func TestRunConvertNoPositional(t *testing.T) {
	t.Parallel()

	env, _, stderr := testEnv()

	code := run([]string{"mdpress", "convert"}, env)
	if code != ExitUsage {
		t.Errorf("run() = %d, want %d without scenario name", code, ExitUsage)
	}
	if stderr.Len() == 0 {
		t.Error("convert usage not printed")
	}
}
