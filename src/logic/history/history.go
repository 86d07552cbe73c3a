package history

import (
	"fmt"
	"strings"

	"clickchess/src/base"
)

// Entry is one applied move above the baseline.
type Entry struct {
	UCI      string // e.g. "e2e4", "e7e8q"
	SAN      string // e.g. "e4", "e8=Q+"
	ByEngine bool
}

// History is a LIFO stack of applied moves anchored at a baseline FEN.
// The baseline is the position undo can never cross: the starting
// position, or the position after the automated side's opening move.
type History struct {
	baseline      string
	baselineWhite bool // side to move at the baseline
	entries       []Entry
}

func NewHistory() *History {
	return &History{baseline: base.FEN_START_GAME, baselineWhite: true}
}

// Anchor drops all entries and re-anchors the stack at fen.
func (h *History) Anchor(fen string) {
	h.baseline = fen
	h.baselineWhite = sideToMoveOf(fen)
	h.entries = h.entries[:0]
}

func (h *History) Baseline() string { return h.baseline }
func (h *History) Len() int         { return len(h.entries) }

func (h *History) Push(e Entry) {
	h.entries = append(h.entries, e)
}

// Pop removes and returns the most recent entry.
func (h *History) Pop() (Entry, bool) {
	if len(h.entries) == 0 {
		return Entry{}, false
	}
	e := h.entries[len(h.entries)-1]
	h.entries = h.entries[:len(h.entries)-1]
	return e, true
}

// Top returns the most recent entry without removing it.
func (h *History) Top() (Entry, bool) {
	if len(h.entries) == 0 {
		return Entry{}, false
	}
	return h.entries[len(h.entries)-1], true
}

func (h *History) Entries() []Entry {
	out := make([]Entry, len(h.entries))
	copy(out, h.entries)
	return out
}

// UCIMoves returns the stacked moves in apply order, the input of a
// rebuild from the baseline.
func (h *History) UCIMoves() []string {
	out := make([]string, len(h.entries))
	for i, e := range h.entries {
		out[i] = e.UCI
	}
	return out
}

// MovesText renders the stacked moves as a numbered SAN line.
// Example: "1. e4 e5 2. Nf3 Nc6 3. Bb5"
// A black-to-move baseline opens with an ellipsis: "1... e5 2. Nf3".
func (h *History) MovesText() string {
	if h == nil || h.Len() == 0 {
		return ""
	}

	var b strings.Builder
	moveNum := 1
	whiteToMove := h.baselineWhite

	for i, e := range h.entries {
		if i > 0 {
			b.WriteString(" ")
		}
		if whiteToMove {
			b.WriteString(fmt.Sprintf("%d. %s", moveNum, e.SAN))
		} else {
			if i == 0 {
				b.WriteString(fmt.Sprintf("%d... %s", moveNum, e.SAN))
			} else {
				b.WriteString(e.SAN)
			}
			moveNum++
		}
		whiteToMove = !whiteToMove
	}

	return b.String()
}

// sideToMoveOf reads the active-color field of a FEN. Defaults to
// white on malformed input; Anchor callers validate the FEN first.
func sideToMoveOf(fen string) bool {
	fields := strings.Fields(fen)
	if len(fields) < 2 {
		return true
	}
	return fields[1] != "b"
}
