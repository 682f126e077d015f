package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/Belphemur/popcorn/internal/cli"
)

// version is set at build time with -ldflags "-X main.version=..."
var version = "dev"

func main() {
	// Ctrl-C cancels the in-flight request instead of killing the process
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	code := cli.Run(ctx, os.Args[1:], cli.DefaultDependencies(version))
	stop()
	os.Exit(code)
}
