// cmd/fqcount/main.go
package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"fqgen/internal/countapp"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	code := countapp.RunContext(ctx, os.Args[1:], os.Stdout, os.Stderr)
	os.Exit(code)
}
