// popbench compares pop-with-default idioms on Go maps.
//
// Usage:
//
//	go run ./cmd/popbench                # demo + four scenarios, 10M iterations each
//	go run ./cmd/popbench -n 1000 -v 1   # fewer iterations, one line per run
package main

import (
	"flag"
	"fmt"
	"log/slog"
	"os"

	"github.com/codeGROOVE-dev/popbench"
)

func main() {
	verbosity := flag.Int("v", popbench.DefaultVerbosity, "Report level: 0 silent, 1 one line, 2 full summary")
	iterations := flag.Int("n", popbench.DefaultIterations, "Iterations per scenario")
	debug := flag.Bool("debug", false, "Enable debug logging on stderr")
	flag.Parse()

	level := slog.LevelInfo
	if *debug {
		level = slog.LevelDebug
	}
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level})))

	if err := popbench.Demonstrate(os.Stdout); err != nil {
		fatal("writing demonstration: %v", err)
	}

	if _, err := popbench.RunScenarios(os.Stdout,
		popbench.WithIterations(*iterations),
		popbench.WithVerbosity(*verbosity),
	); err != nil {
		fatal("running scenarios: %v", err)
	}
}

func fatal(format string, args ...any) {
	slog.Error(fmt.Sprintf(format, args...))
	os.Exit(1)
}
