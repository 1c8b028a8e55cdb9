package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/jaminalder/timetravel-tic-tac-toe/internal/config"
	"github.com/jaminalder/timetravel-tic-tac-toe/internal/logging"
	"github.com/jaminalder/timetravel-tic-tac-toe/internal/term"
)

// main plays one game in the terminal. Logs go to stderr so they do not
// interleave with the board.
func main() {
	conf, err := config.Load("")
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	logger := logging.New(os.Stderr, conf.LogLevel, "text")

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	g := term.NewGame(term.NewRenderer(os.Stdout), logger)
	if err := g.Run(ctx, os.Stdin); err != nil && !errors.Is(err, context.Canceled) {
		logger.Error("game stopped", "error", err)
		os.Exit(1)
	}
}
