package main

import (
	"fmt"
	"os"
)

// Version is set at build time via ldflags.
var Version = "dev"

func main() {
	os.Exit(run(os.Args, DefaultEnv()))
}

// run dispatches to a subcommand and returns the process exit code.
// A bare scenario name is shorthand for the convert command.
func run(args []string, env *Environment) int {
	if len(args) < 2 {
		printUsage(env.Stderr)
		return ExitUsage
	}

	switch args[1] {
	case "version", "--version":
		fmt.Fprintf(env.Stdout, "mdpress %s\n", Version)
		return ExitSuccess
	case "help", "-h", "--help":
		printUsage(env.Stdout)
		return ExitSuccess
	case "doctor":
		return runDoctorCmd(args[2:], env)
	case "convert":
		return runConvertCmd(args[2:], env)
	default:
		return runConvertCmd(args[1:], env)
	}
}
