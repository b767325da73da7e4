// cmd/fqshared/main.go
package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"fqgen/internal/sharedapp"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	code := sharedapp.RunContext(ctx, os.Args[1:], os.Stdout, os.Stderr)
	os.Exit(code)
}
