// Command swmc drives compilation of sw-mc-builder graphs: init scaffolds a
// new build script, run resolves, optimizes and emits one or more already
// built *core.Microcontroller values and optionally exports them into the
// host simulator's microcontroller directory or merges them into a vehicle.
//
// Subcommand dispatch follows the flag package directly rather than a
// framework, matching how cmd-style Go tools in this stack structure their
// entry points: no subcommand abstraction beyond a small switch, flags
// parsed per-subcommand with their own FlagSet.
package main

import (
	"fmt"
	"log/slog"
	"os"
)

func main() {
	logger := slog.New(slog.NewTextHandler(os.Stderr, nil))
	slog.SetDefault(logger)

	if len(os.Args) < 2 {
		usage()
		os.Exit(2)
	}

	var err error
	switch os.Args[1] {
	case "init":
		err = runInit(os.Args[2:])
	case "run":
		err = runRun(os.Args[2:])
	case "-h", "--help", "help":
		usage()
		return
	default:
		fmt.Fprintf(os.Stderr, "swmc: unknown subcommand %q\n", os.Args[1])
		usage()
		os.Exit(2)
	}
	if err != nil {
		slog.Error("swmc", "error", err)
		os.Exit(1)
	}
}

func usage() {
	fmt.Fprintln(os.Stderr, `usage: swmc <command> [flags]

commands:
  init <name>   scaffold a new build script for a microcontroller named <name>
  run <file>    compile a build script and export its microcontroller(s)`)
}
