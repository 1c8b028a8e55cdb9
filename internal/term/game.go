package term

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"log/slog"
	"strconv"
	"strings"

	"github.com/jaminalder/timetravel-tic-tac-toe/internal/app"
)

// Game runs one terminal session, reading commands line by line.
type Game struct {
	session *app.Session
	r       *Renderer
	log     *slog.Logger
}

// NewGame starts a fresh session drawn by r. A nil logger discards output.
func NewGame(r *Renderer, log *slog.Logger) *Game {
	if log == nil {
		log = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return &Game{session: app.NewSession(), r: r, log: log}
}

// Session exposes the running session.
func (g *Game) Session() *app.Session { return g.session }

// Run renders the board and applies commands from in until "q", end of input
// or ctx is cancelled.
func (g *Game) Run(ctx context.Context, in io.Reader) error {
	if err := g.r.Help(); err != nil {
		return err
	}
	if err := g.r.Render(g.session.View()); err != nil {
		return err
	}

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()
	lines, readErr := readLines(ctx, in)
	for {
		if err := ctx.Err(); err != nil {
			return err
		}
		var line string
		select {
		case <-ctx.Done():
			return ctx.Err()
		case l, ok := <-lines:
			if !ok {
				if err := <-readErr; err != nil {
					return fmt.Errorf("read input: %w", err)
				}
				return nil
			}
			line = l
		}

		quit, msg := g.apply(line)
		if quit {
			return nil
		}
		if msg != "" {
			if err := g.r.Message(msg); err != nil {
				return err
			}
		}
		if err := g.r.Render(g.session.View()); err != nil {
			return err
		}
	}
}

// readLines scans in on its own goroutine so a blocked read never holds up
// cancellation. The error channel receives the scan error before lines is
// closed. A read still blocked after ctx ends is abandoned.
func readLines(ctx context.Context, in io.Reader) (<-chan string, <-chan error) {
	lines := make(chan string)
	errc := make(chan error, 1)
	go func() {
		defer close(lines)
		sc := bufio.NewScanner(in)
		for sc.Scan() {
			select {
			case lines <- sc.Text():
			case <-ctx.Done():
				errc <- nil
				return
			}
		}
		errc <- sc.Err()
	}()
	return lines, errc
}

// apply runs one command line. Unknown or ignored commands leave the session
// as it was and return a message for the player.
func (g *Game) apply(line string) (quit bool, msg string) {
	fields := strings.Fields(line)
	if len(fields) == 0 {
		return false, ""
	}

	switch cmd := strings.ToLower(fields[0]); {
	case cmd == "q" || cmd == "quit":
		return true, ""
	case cmd == "o" || cmd == "order":
		g.session.ToggleOrder()
	case cmd == "n" || cmd == "new":
		g.session = app.NewSession()
		g.log.Info("new game")
	case cmd == "j" || cmd == "jump":
		if len(fields) != 2 {
			return false, "usage: j N"
		}
		move, err := strconv.Atoi(fields[1])
		if err != nil || !g.session.JumpTo(move) {
			g.log.Debug("jump ignored", "arg", fields[1])
			return false, "no such move"
		}
	default:
		i, err := strconv.Atoi(cmd)
		if err != nil {
			return false, "unknown command " + strconv.Quote(fields[0])
		}
		if !g.session.Click(i) {
			g.log.Debug("click ignored", "index", i)
		}
	}
	return false, ""
}
