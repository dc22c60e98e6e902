// SPDX-License-Identifier: MIT

// Command pwe computes photonic band structures of 2D rod lattices.
//
//	pwe bands --epsilon 8.9 --r-over-a 0.2 --order 5 --num-bands 4
//	pwe path --lattice triangular --k-points-per-segment 10
//
// Results are written to stdout as JSON; logs go to stderr.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/katalvlaran/pwe/bands"
)

// Exit codes per error kind.
const (
	exitInternal    = 1
	exitInvalid     = 2
	exitUnsupported = 3
	exitNumerical   = 4
	exitInterrupted = 130
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := newRootCmd().ExecuteContext(ctx); err != nil {
		fmt.Fprintf(os.Stderr, "pwe: %v\n", err)
		os.Exit(exitCode(err))
	}
}

func exitCode(err error) int {
	switch bands.Kind(err) {
	case bands.CodeInvalidParameter:
		return exitInvalid
	case bands.CodeUnsupportedLattice:
		return exitUnsupported
	case bands.CodeNumericalInstability:
		return exitNumerical
	case bands.CodeCanceled:
		return exitInterrupted
	default:
		return exitInternal
	}
}
