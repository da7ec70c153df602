package main

import (
	"errors"
	"fmt"
	"os"
	"time"

	flag "github.com/spf13/pflag"
)

// Renderer backend names.
const (
	rendererWkhtmltopdf = "wkhtmltopdf"
	rendererChrome      = "chrome"
)

// MaxWorkers bounds the parallel worker count.
const MaxWorkers = 16

// Sentinel errors for flag validation.
var (
	ErrUnknownRenderer    = errors.New("unknown renderer backend")
	ErrInvalidWorkerCount = errors.New("invalid worker count")
	ErrInvalidTimeout     = errors.New("invalid timeout")
)

// convertFlags holds all flags for the convert command.
type convertFlags struct {
	root     string
	style    string
	renderer string
	workers  int
	timeout  string
	quiet    bool
	verbose  bool
}

// parseConvertFlags parses convert command flags and returns positional args.
func parseConvertFlags(args []string) (*convertFlags, []string, error) {
	fs := flag.NewFlagSet("convert", flag.ContinueOnError)
	f := &convertFlags{}

	fs.StringVarP(&f.root, "root", "r", ".", "project root holding config/ and data/")
	fs.StringVarP(&f.style, "style", "s", "", "style config path (default: <root>/config/styles.yaml)")
	fs.StringVar(&f.renderer, "renderer", rendererWkhtmltopdf, "renderer backend: wkhtmltopdf, chrome")
	fs.IntVarP(&f.workers, "workers", "w", 1, "parallel workers (0 = one per CPU)")
	fs.StringVarP(&f.timeout, "timeout", "t", "", "per-document render timeout (e.g. 30s, 2m)")
	fs.BoolVarP(&f.quiet, "quiet", "q", false, "only show errors")
	fs.BoolVarP(&f.verbose, "verbose", "v", false, "show detailed timing")

	fs.Usage = func() { printConvertUsage(os.Stderr) }

	if err := fs.Parse(args); err != nil {
		return nil, nil, err
	}

	return f, fs.Args(), nil
}

// validate checks flag values that pflag cannot reject on its own.
func (f *convertFlags) validate() error {
	switch f.renderer {
	case rendererWkhtmltopdf, rendererChrome:
	default:
		return fmt.Errorf("%w: %q (must be %s or %s)", ErrUnknownRenderer, f.renderer, rendererWkhtmltopdf, rendererChrome)
	}

	if f.workers < 0 {
		return fmt.Errorf("%w: %d (must be >= 0, 0 means one per CPU)", ErrInvalidWorkerCount, f.workers)
	}
	if f.workers > MaxWorkers {
		return fmt.Errorf("%w: %d (maximum is %d)", ErrInvalidWorkerCount, f.workers, MaxWorkers)
	}

	if f.timeout != "" {
		d, err := time.ParseDuration(f.timeout)
		if err != nil || d <= 0 {
			return fmt.Errorf("%w: %q (expected a positive duration like 30s)", ErrInvalidTimeout, f.timeout)
		}
	}

	return nil
}

// renderTimeout returns the parsed timeout, or zero when unset.
// Call validate first; unparsable values are rejected there.
func (f *convertFlags) renderTimeout() time.Duration {
	if f.timeout == "" {
		return 0
	}
	d, err := time.ParseDuration(f.timeout)
	if err != nil {
		return 0
	}
	return d
}
