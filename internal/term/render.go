package term

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/muesli/termenv"

	"github.com/jaminalder/timetravel-tic-tac-toe/internal/app"
)

// Renderer draws a game view as text, styled when the output supports it.
type Renderer struct {
	out *termenv.Output
}

// NewRenderer draws to w; opts select the color profile.
func NewRenderer(w io.Writer, opts ...termenv.OutputOption) *Renderer {
	return &Renderer{out: termenv.NewOutput(w, opts...)}
}

// Render writes the status lines, the board and the move list.
func (r *Renderer) Render(v app.View) error {
	var b strings.Builder

	fmt.Fprintln(&b, v.MoveLine)
	fmt.Fprintln(&b, r.out.String(v.Status).Bold().String())
	b.WriteString("\n")
	for row := 0; row < 3; row++ {
		cells := make([]string, 3)
		for col := 0; col < 3; col++ {
			cells[col] = r.cell(v.Squares[row*3+col])
		}
		b.WriteString(strings.Join(cells, "|") + "\n")
		if row < 2 {
			b.WriteString("---+---+---\n")
		}
	}
	b.WriteString("\n")

	fmt.Fprintf(&b, "moves (%s):\n", v.Order)
	for _, m := range v.Moves {
		line := "  " + m.Label
		if m.Current {
			line = r.out.String("> " + m.Label).Bold().String()
		}
		fmt.Fprintf(&b, "%3d %s\n", m.Move, line)
	}

	_, err := io.WriteString(r.out, b.String())
	return err
}

// Help writes the command summary.
func (r *Renderer) Help() error {
	_, err := io.WriteString(r.out, "commands: 0-8 play, j N jump to move N, o toggle order, n new game, q quit\n")
	return err
}

// Message writes a single line.
func (r *Renderer) Message(msg string) error {
	_, err := io.WriteString(r.out, r.out.String(msg).Faint().String()+"\n")
	return err
}

func (r *Renderer) cell(sq app.Square) string {
	switch {
	case sq.Mark == "":
		return " " + r.out.String(strconv.Itoa(sq.Index)).Faint().String() + " "
	case sq.Winning:
		return r.out.String("[" + sq.Mark + "]").Foreground(r.out.Color("2")).Bold().String()
	default:
		return " " + sq.Mark + " "
	}
}
