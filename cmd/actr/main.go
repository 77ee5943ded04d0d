// Package main is the entry point for the actr CLI.
package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/grindlemire/graft"
	"go.actr.dev/actr/cmd/actr/commands"
	"go.actr.dev/actr/internal/adapters/config"
	"go.actr.dev/actr/internal/app"
	_ "go.actr.dev/actr/internal/wiring"
)

func main() {
	os.Exit(run())
}

func run() int {
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	// The project directory must be known before the container is built,
	// so the flag is resolved ahead of cobra parsing.
	if dir := projectDirArg(os.Args[1:]); dir != "" {
		_ = os.Setenv(config.ProjectDirEnv, dir)
	}

	components, _, err := graft.ExecuteFor[*app.Components](ctx)
	if err != nil {
		// Logger is not available if initialization failed.
		_, _ = os.Stderr.WriteString("Error: " + err.Error() + "\n")
		return 1
	}
	defer func() { _ = components.App.Close() }()

	cli := commands.New(components.App)
	if err := cli.Execute(ctx); err != nil {
		commands.RenderError(os.Stderr, err)
		return 1
	}
	return 0
}

// projectDirArg scans raw args for --project/-p before cobra runs.
func projectDirArg(args []string) string {
	for i, arg := range args {
		switch arg {
		case "--project", "-p":
			if i+1 < len(args) {
				return args[i+1]
			}
		default:
			if v, ok := cutFlag(arg, "--project="); ok {
				return v
			}
		}
	}
	return ""
}

func cutFlag(arg, prefix string) (string, bool) {
	if len(arg) > len(prefix) && arg[:len(prefix)] == prefix {
		return arg[len(prefix):], true
	}
	return "", false
}
