// SPDX-License-Identifier: MIT

// Command lvgauss solves a dense linear system Ax = b by Gaussian
// elimination without pivoting, either generated from a size or loaded from
// a file, on one of the parallel backends.
//
// Usage:
//
//	lvgauss [flags] <file|size> [units]
//
// A numeric first argument generates an n×n system whose exact solution is
// all ones; anything else is read as a file in the augmented-matrix format.
package main

import (
	"errors"
	"fmt"
	"io"
	"os"
)

const (
	exitOK    = 0
	exitFail  = 1
	exitUsage = 2
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

// run executes the CLI and maps the outcome to an exit code.
func run(args []string, stdout, stderr io.Writer) int {
	cmd := newRootCmd(stdout, stderr)
	cmd.SetArgs(args)
	err := cmd.Execute()
	switch {
	case err == nil:
		return exitOK
	case errors.Is(err, errUsage):
		fmt.Fprintln(stderr, "lvgauss:", err)
		fmt.Fprint(stderr, cmd.UsageString())
		return exitUsage
	default:
		fmt.Fprintln(stderr, "lvgauss:", err)
		return exitFail
	}
}
