package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/rchilly/sscan/internal/cli"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)

	code := cli.Run(ctx, os.Args[1:], os.Stdout, os.Stderr)
	// Normalize cancellation exit code.
	if ctx.Err() != nil && code == cli.ExitOK {
		code = cli.ExitStopped
	}

	stop()
	os.Exit(code)
}
