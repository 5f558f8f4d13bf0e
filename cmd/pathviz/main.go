// Command pathviz runs stepwise grid path searches in the terminal.
//
//	pathviz run --grid maze.txt --algorithm astar --speed 8
//	pathviz compare --grid maze.txt
//	pathviz algorithms
package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := newRootCmd().ExecuteContext(ctx); err != nil {
		stop()
		os.Exit(1)
	}
}
