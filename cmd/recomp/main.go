// Package main is the entry point for recomp.
package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/grindlemire/graft"
	"go.trai.ch/recomp/cmd/recomp/commands"
	"go.trai.ch/recomp/internal/app"
	_ "go.trai.ch/recomp/internal/wiring"
)

func main() {
	os.Exit(run())
}

func run() int {
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	// Each invocation owns its mirror and telemetry tape, so nothing is shared across runs.
	components, _, err := graft.ExecuteFor[*app.Components](ctx, graft.DisableCache())
	if err != nil {
		// The logger is not available when initialization failed.
		_, _ = os.Stderr.WriteString("Error: " + err.Error() + "\n")
		return 1
	}
	defer func() { _ = components.Telemetry.Close() }()

	cli := commands.New(components.App, components.Logger)
	if err := cli.Execute(ctx); err != nil {
		components.Logger.Error(err)
		return 1
	}
	return 0
}
