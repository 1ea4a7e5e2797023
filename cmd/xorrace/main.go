// Package main implements the xorrace CLI, a lost-update demonstrator.
//
// The default action runs the demonstration: 32 workers concurrently XOR
// random 64-bit operands into two shared accumulators, one updated with
// an atomic read-modify-write and one updated with a plain unprotected
// read-modify-write. Both receive the identical operand sequence, so the
// difference between the two final values printed at the end is purely
// the synchronization strategy: the unsynchronized one loses updates.
//
// Usage:
//
//	xorrace            # run the demonstration
//	xorrace run        # same as the default action
//	xorrace check      # flag the unsynchronized counter's race with the
//	                   # happens-before instrument
//	xorrace version    # show version information
//
// The demonstration itself consumes no flags or environment; thread and
// iteration counts are fixed constants.
package main

import (
	"fmt"
	"os"

	"github.com/kolkov/xorrace/internal/workload"
)

func main() {
	if len(os.Args) < 2 {
		runDemo()
		return
	}

	switch os.Args[1] {
	case "run":
		runDemo()
	case "check":
		os.Exit(runCheck(os.Stdout))
	case "version", "--version", "-v":
		printVersion()
	case "help", "--help", "-h":
		printUsage()
	default:
		fmt.Fprintf(os.Stderr, "Unknown command: %s\n\n", os.Args[1])
		printUsage()
		os.Exit(1)
	}
}

func runDemo() {
	warnOldGoVersion()
	res := workload.Run(workload.Default())
	workload.Report(os.Stdout, res)
}

func printUsage() {
	fmt.Print(`xorrace - lost-update demonstrator

USAGE:
    xorrace [command]

COMMANDS:
    (none), run    Run the demonstration with the fixed workload
                   (32 workers x 256 operands x 2048 repeats) and print
                   both final values plus elapsed time
    check          Drive the unsynchronized counter under the built-in
                   happens-before instrument and print the race reports;
                   exits 1 if no race was flagged
    version        Show version information
    help           Show this help message

OUTPUT:
    unsync: <64-bit binary>   final value of the unsynchronized counter
    atomic: <64-bit binary>   final value of the atomic counter
    took <duration>           elapsed wall time of the concurrent phase

    The atomic line is the XOR of every operand applied. The unsync line
    usually is not: concurrent unprotected read-modify-writes discard
    each other's updates. An occasional accidentally-correct run is part
    of the lesson.
`)
}
