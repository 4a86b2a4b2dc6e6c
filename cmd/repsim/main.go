// SPDX-License-Identifier: MIT

// Command repsim compares neural network layer representations with
// Centered Kernel Alignment and tracks the scores.
//
// Usage:
//
//	repsim compare   [-config f] -a FILE[,FILE] -b FILE[,FILE] [-model-a m -layer-a l ...]
//	repsim sweep     [-config f] -manifest FILE
//	repsim report    [-config f] [-format text|csv]
//	repsim synth     -o FILE -shape N,D[,...] [-seed s]
//	repsim estimators
//
// Flags given on the command line override the configuration file.
package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"sort"
	"strings"
)

// command is one subcommand entry point.
type command struct {
	summary string
	run     func(ctx context.Context, args []string, stdout, stderr io.Writer) error
}

var commands = map[string]command{
	"compare":    {"score one pair of layers", runCompare},
	"sweep":      {"score every pair listed in a manifest", runSweep},
	"report":     {"print tracked scores as per-model tables", runReport},
	"synth":      {"write a synthetic Gaussian representation file", runSynth},
	"estimators": {"list the HSIC estimators", runEstimators},
}

// errUsage marks a bad invocation; the flag package has already printed why.
var errUsage = errors.New("usage")

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	code := run(ctx, os.Args[1:], os.Stdout, os.Stderr)
	stop()
	os.Exit(code)
}

// run dispatches args to a subcommand and returns the process exit code.
func run(ctx context.Context, args []string, stdout, stderr io.Writer) int {
	if len(args) < 1 {
		usage(stderr)
		return 2
	}
	cmd, ok := commands[args[0]]
	if !ok {
		fmt.Fprintf(stderr, "repsim: unknown command %q\n", args[0])
		usage(stderr)
		return 2
	}
	if err := cmd.run(ctx, args[1:], stdout, stderr); err != nil {
		if errors.Is(err, errUsage) {
			return 2
		}
		fmt.Fprintf(stderr, "repsim %s: %v\n", args[0], err)
		return 1
	}

	return 0
}

func usage(w io.Writer) {
	names := make([]string, 0, len(commands))
	for name := range commands {
		names = append(names, name)
	}
	sort.Strings(names)

	var sb strings.Builder
	sb.WriteString("Usage: repsim <command> [flags]\n\nCommands:\n")
	for _, name := range names {
		fmt.Fprintf(&sb, "  %-11s %s\n", name, commands[name].summary)
	}
	fmt.Fprint(w, sb.String())
}
