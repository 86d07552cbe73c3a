// Package random is a uniform selector over the legal-move list. It
// keeps the selection policy pluggable behind the same contract the
// minimax selector satisfies.
package random

import (
	"errors"
	"math/rand"
	"time"

	"github.com/corentings/chess/v2"
)

var ErrNoLegalMoves = errors.New("no legal moves")

type Random struct {
	rnd *rand.Rand
}

func New() *Random {
	return NewSeeded(time.Now().UnixNano())
}

func NewSeeded(seed int64) *Random {
	return &Random{rnd: rand.New(rand.NewSource(seed))}
}

func (r *Random) Name() string { return "random" }

func (r *Random) SelectMove(g *chess.Game) (*chess.Move, error) {
	moves := g.ValidMoves()
	if len(moves) == 0 {
		return nil, ErrNoLegalMoves
	}
	mv := moves[r.rnd.Intn(len(moves))]
	return &mv, nil
}
