package main

import (
	"context"
	"fmt"
	"os"

	"go.uber.org/automaxprocs/maxprocs"
)

// Version is set at build time via ldflags.
var Version = "dev"

func main() {
	// Error ignored: maxprocs.Set only fails if GOMAXPROCS env is invalid,
	// in which case Go runtime defaults apply and the program continues safely.
	_, _ = maxprocs.Set(maxprocs.Logger(func(string, ...interface{}) {}))

	os.Exit(run(context.Background(), os.Args[1:], DefaultEnv()))
}

// run dispatches the top-level command and returns the exit code.
func run(ctx context.Context, args []string, env *Environment) int {
	if len(args) == 0 {
		printUsage(env.Stderr)
		return ExitUsage
	}

	switch args[0] {
	case "convert":
		if err := runConvert(ctx, args[1:], env); err != nil {
			fmt.Fprintln(env.Stderr, "Error:", err)
			return exitCodeFor(err)
		}
		return ExitSuccess
	case "doctor":
		return runDoctor(env)
	case "version", "--version":
		fmt.Fprintf(env.Stdout, "gongwen %s\n", Version)
		return ExitSuccess
	case "help", "--help", "-h":
		runHelp(args[1:], env)
		return ExitSuccess
	default:
		fmt.Fprintf(env.Stderr, "Unknown command: %s\n\n", args[0])
		printUsage(env.Stderr)
		return ExitUsage
	}
}
