package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/es-debug/nginx-log-analyzer/internal/application/analyzer"
)

// Set via ldflags: -X main.version=v1.0.0
var version = "dev"

const (
	exitOK    = 0
	exitError = 1
	exitUsage = 2
)

func main() {
	os.Exit(run())
}

func run() int {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	err := analyzer.Start(ctx, os.Args[1:], os.Stdout, os.Stderr, version)
	if err == nil {
		return exitOK
	}

	var (
		noData    analyzer.ErrNoData
		flagErr   analyzer.ErrFlag
		emptyPath analyzer.ErrEmptyLogPath
	)

	switch {
	case errors.As(err, &noData):
		fmt.Fprintf(os.Stderr, "Warning: %v\n", err)

		return exitError
	case errors.As(err, &flagErr), errors.As(err, &emptyPath):
		fmt.Fprintf(os.Stderr, "Error: %v\nRun 'nginxstat --help' for usage.\n", err)

		return exitUsage
	default:
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)

		return exitError
	}
}
