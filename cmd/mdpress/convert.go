package main

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.uber.org/automaxprocs/maxprocs"

	mdpress "github.com/mdpress/mdpress"
	"github.com/mdpress/mdpress/internal/hints"
	"github.com/mdpress/mdpress/internal/scenario"
)

// defaultChromeTimeout bounds a Chrome render when --timeout is unset.
const defaultChromeTimeout = 60 * time.Second

// runConvertCmd parses flags, sets up the runtime, and runs the batch.
func runConvertCmd(args []string, env *Environment) int {
	flags, positional, err := parseConvertFlags(args)
	if err != nil {
		fmt.Fprintln(env.Stderr, err)
		return ExitUsage
	}

	if len(positional) != 1 {
		printConvertUsage(env.Stderr)
		return ExitUsage
	}

	if err := flags.validate(); err != nil {
		fmt.Fprintln(env.Stderr, err)
		return ExitUsage
	}

	// Error ignored: maxprocs.Set only fails on an invalid GOMAXPROCS env,
	// in which case Go runtime defaults apply and the program continues.
	if flags.verbose {
		_, _ = maxprocs.Set(maxprocs.Logger(func(format string, a ...interface{}) {
			fmt.Fprintf(env.Stderr, format+"\n", a...)
		}))
	} else {
		_, _ = maxprocs.Set(maxprocs.Logger(func(string, ...interface{}) {}))
	}

	ctx, stop := notifyContext(context.Background())
	defer stop()

	code, err := runConvert(ctx, positional[0], flags, env)
	if err != nil {
		fmt.Fprintln(env.Stderr, "Error:", err)
		return exitCodeFor(err)
	}
	return code
}

// runConvert resolves the scenario, loads the style, and converts every
// markdown file in the input directory. Per-file failures are recorded and
// reported; only structural errors (paths, config) are returned.
func runConvert(ctx context.Context, name string, flags *convertFlags, env *Environment) (int, error) {
	paths, err := scenario.Resolve(flags.root, name)
	if err != nil {
		return ExitGeneral, err
	}

	style, err := loadScenarioStyle(flags, paths, env)
	if err != nil {
		return ExitGeneral, err
	}

	files, err := discoverFiles(paths.InputDir, paths.OutputDir)
	if err != nil {
		return ExitGeneral, fmt.Errorf("discovering files: %w", err)
	}
	if len(files) == 0 {
		fmt.Fprintf(env.Stdout, "No markdown files found in %s\n", paths.InputDir)
		return ExitSuccess, nil
	}

	poolSize := resolvePoolSize(flags.workers, len(files))
	if flags.verbose {
		fmt.Fprintf(env.Stderr, "Converting %d files with %d workers (%s backend)\n",
			len(files), poolSize, flags.renderer)
	}

	pool := NewServicePool(poolSize, func() (*mdpress.Service, error) {
		return newScenarioService(style, flags)
	})
	defer pool.Close()

	results := convertBatch(ctx, pool, files)
	failed := printResults(results, flags.quiet, flags.verbose, env)

	if failed > 0 {
		return ExitGeneral, nil
	}
	return ExitSuccess, nil
}

// loadScenarioStyle loads the style config. An explicitly requested style
// file that is missing or malformed is fatal; when the scenario's default
// style file does not exist, built-in defaults apply.
func loadScenarioStyle(flags *convertFlags, paths scenario.Paths, env *Environment) (mdpress.Style, error) {
	if flags.style != "" {
		style, err := mdpress.LoadStyle(flags.style)
		if err != nil {
			return mdpress.Style{}, fmt.Errorf("loading style: %w", err)
		}
		return style, nil
	}

	style, err := mdpress.LoadStyle(paths.StyleFile)
	if err != nil {
		if errors.Is(err, mdpress.ErrConfigNotFound) {
			if flags.verbose {
				fmt.Fprintf(env.Stderr, "No style file at %s, using defaults%s\n",
					paths.StyleFile, hints.ForConfigNotFound(paths.StyleFile))
			}
			return mdpress.DefaultStyle(), nil
		}
		return mdpress.Style{}, fmt.Errorf("loading style: %w", err)
	}
	return style, nil
}

// newScenarioService builds a Service for the selected renderer backend.
func newScenarioService(style mdpress.Style, flags *convertFlags) (*mdpress.Service, error) {
	var opts []mdpress.Option

	timeout := flags.renderTimeout()
	if timeout > 0 {
		opts = append(opts, mdpress.WithTimeout(timeout))
	}

	if flags.renderer == rendererChrome {
		chromeTimeout := timeout
		if chromeTimeout <= 0 {
			chromeTimeout = defaultChromeTimeout
		}
		opts = append(opts, mdpress.WithRenderer(mdpress.NewChromeRenderer(chromeTimeout)))
	}

	return mdpress.NewService(style, opts...)
}
