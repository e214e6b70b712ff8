// Command memosolve solves the battery and machine puzzles from input files.
//
//	memosolve battery input.txt
//	memosolve --backend generational --iterative machine input.txt
//
// Settings come from an optional YAML file (--config) and are overridden by
// any flag that is set explicitly.
package main

import (
	"context"
	"os"
	"os/signal"

	"github.com/on-the-ground/memo_ive_go/shared/log"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err := newRootCmd(log.New).ExecuteContext(ctx); err != nil {
		stop()
		os.Exit(1)
	}
}
