// cmd/fqoverlap/main.go
package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"fqgen/internal/overlapapp"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	code := overlapapp.RunContext(ctx, os.Args[1:], os.Stdout, os.Stderr)
	os.Exit(code)
}
