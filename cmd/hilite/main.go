// Package main provides the hilite command. It reads lines from standard
// input and writes them to standard output with every match of the given
// patterns colored.
package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	// A blocked read only sees the first signal once input arrives, so
	// restore the default handling and let a second one terminate.
	go func() {
		<-ctx.Done()
		stop()
	}()

	code := run(ctx, os.Args[1:], streams{in: os.Stdin, out: os.Stdout, err: os.Stderr})
	stop()
	os.Exit(code)
}
