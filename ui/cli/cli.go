package cli

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"clickchess/src"
	"clickchess/src/base"
	"clickchess/src/engine"
	"clickchess/src/engine/minimax"

	"github.com/corentings/chess/v2"

	"golang.org/x/term"
)

type DrawFunc func(b *chess.Board)

type CLIProcessing struct {
	builder *src.GameBuilder
	draw    DrawFunc
	in      *os.File
	out     io.Writer
}

func NewCLI(b *src.GameBuilder, draw DrawFunc) *CLIProcessing {
	return &CLIProcessing{builder: b, draw: draw, in: os.Stdin, out: os.Stdout}
}

// raw processing
// - enter SAN move, the automated side replies
// - left arrow to undo the last reply/move pair
// - 1..5 to set the search level
// - q or Ctrl+C to exit
// - redraw board every move
func (c *CLIProcessing) Run() error {
	fd := int(c.in.Fd())
	oldState, err := term.MakeRaw(fd)
	if err != nil {
		return c.RunLineMode()
	}
	defer term.Restore(fd, oldState) //nolint:errcheck

	r := bufio.NewReader(c.in)
	var inputBuf strings.Builder

	// initial draw
	c.redraw()
	fmt.Fprint(c.out, "\nType SAN and press Enter, left arrow to undo, 'm' to moves, '1'-'5' to set level, 'q' to quit.\n")

	for {
		b, err := r.ReadByte()
		if err != nil {
			return err
		}

		// handle control
		if b == 3 { // Ctrl+C
			fmt.Fprintln(c.out, "\nInterrupted")
			return nil
		}
		if b == 0x1b { // escape sequence — possible arrow
			// read next two bytes (CSI)
			b1, err := r.ReadByte()
			if err != nil {
				continue
			}
			b2, err := r.ReadByte()
			if err != nil {
				continue
			}
			if b1 == '[' && b2 == 'D' { // left arrow
				c.builder.Undo()
				c.redraw()
			}
			continue
		}

		// newline/enter
		if b == '\r' || b == '\n' {
			s := strings.TrimSpace(inputBuf.String())
			inputBuf.Reset()
			if s == "" {
				continue
			}
			if quit := c.handleCommand(s); quit {
				return nil
			}
			continue
		}

		// printable chars: append to buffer
		if b >= 32 && b <= 126 {
			inputBuf.WriteByte(b)
			// echo
			fmt.Fprintf(c.out, "%c", b)
			continue
		}
		// other keys ignored
	}
}

// RunLineMode is the fallback when the terminal cannot enter raw mode:
// basic line input using bufio.Scanner.
func (c *CLIProcessing) RunLineMode() error {
	scanner := bufio.NewScanner(c.in)
	c.redraw()
	fmt.Fprintln(c.out, "Enter SAN and press Enter. Use 'undo' to take back, 'moves', 'fen', 'q' to quit.")
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		if line == "undo" {
			c.builder.Undo()
			c.redraw()
			continue
		}
		if quit := c.handleCommand(line); quit {
			return nil
		}
	}
	return scanner.Err()
}

// handleCommand runs one command or SAN move; returns true to quit.
func (c *CLIProcessing) handleCommand(s string) bool {
	switch {
	case s == "q" || s == "Q" || s == "quit":
		fmt.Fprintln(c.out, "\nQuitting")
		return true
	case s >= "1" && s <= "5" && len(s) == 1:
		lvl, _ := strconv.Atoi(s)
		fmt.Fprintf(c.out, "\nSet level %d\n", lvl)
		c.builder.SetSelector(minimax.New(engine.LevelFromInt(lvl)))
		return false
	case s == "m" || s == "moves":
		fmt.Fprintf(c.out, "\nMoves: %s\n", c.builder.MovesText())
		return false
	case s == "f" || s == "fen":
		fmt.Fprintf(c.out, "\nFEN: %s\n", c.builder.FEN())
		return false
	}

	// try SAN move
	status, err := c.builder.MoveSAN(s)
	if err != nil {
		fmt.Fprintf(c.out, "\nInvalid move: %s\n", s)
		c.redraw()
		return false
	}
	if !status.Terminal() && !c.builder.HumanTurn() {
		if _, err := c.builder.EngineReply(); err != nil {
			fmt.Fprintf(c.out, "\nError selecting reply: %v\n", err)
		}
	}
	c.redraw()
	return c.builder.Status().Terminal()
}

func (c *CLIProcessing) redraw() {
	c.draw(c.builder.CurrentBoard())
	c.printStatus()
}

func (c *CLIProcessing) printStatus() {
	status := c.builder.Status()
	fmt.Fprintln(c.out)
	fmt.Fprintf(c.out, "FEN: %s\n", c.builder.FEN())
	fmt.Fprintf(c.out, "Moves: %s\n", c.builder.MovesText())
	fmt.Fprintf(c.out, "Status: %s\n", statusString(status))
}

func statusString(s base.GameStatus) string {
	switch s {
	case base.Check:
		return "Check"
	case base.Checkmate:
		return "Checkmate"
	case base.Stalemate:
		return "Stalemate"
	case base.Draw:
		return "Draw"
	case base.Pass:
		return "Normal"
	case base.InvalidGame:
		return "Invalid"
	default:
		return fmt.Sprintf("Unknown(%d)", s)
	}
}
