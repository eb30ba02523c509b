// Package main is the entry point for the planner CLI.
package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/pkordes/travel-planner/backend/internal/cli"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	code := cli.Execute(ctx)
	stop()
	os.Exit(code)
}
