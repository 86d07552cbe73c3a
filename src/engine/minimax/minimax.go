// Package minimax is a fixed-depth negamax selector with alpha-beta
// pruning over a material evaluation. Root moves are shuffled so that
// equal-score moves resolve randomly.
package minimax

import (
	"errors"
	"math/rand"
	"time"

	"clickchess/src/engine"

	"github.com/corentings/chess/v2"
)

var ErrNoLegalMoves = errors.New("no legal moves")

const mateScore = 1000000

var pieceValues = map[chess.PieceType]int{
	chess.Pawn:   100,
	chess.Knight: 320,
	chess.Bishop: 330,
	chess.Rook:   500,
	chess.Queen:  900,
	chess.King:   10000,
}

type Minimax struct {
	depth int
	rnd   *rand.Rand
}

func New(lvl engine.Level) *Minimax {
	return NewSeeded(lvl, time.Now().UnixNano())
}

// NewSeeded fixes the tie-break shuffle; tests use it.
func NewSeeded(lvl engine.Level, seed int64) *Minimax {
	return &Minimax{
		depth: engine.LevelToDepth(lvl),
		rnd:   rand.New(rand.NewSource(seed)),
	}
}

func (m *Minimax) Name() string { return "minimax" }

func (m *Minimax) SelectMove(g *chess.Game) (*chess.Move, error) {
	moves := g.ValidMoves()
	if len(moves) == 0 {
		return nil, ErrNoLegalMoves
	}

	m.rnd.Shuffle(len(moves), func(i, j int) { moves[i], moves[j] = moves[j], moves[i] })

	alpha, beta := -2*mateScore, 2*mateScore
	best := moves[0]
	bestScore := -2 * mateScore
	for i := range moves {
		mv := moves[i]
		child := g.Clone()
		if err := child.Move(&mv, nil); err != nil {
			continue
		}
		score := -m.negamax(child, m.depth-1, -beta, -alpha)
		if score > bestScore {
			bestScore = score
			best = mv
			if score > alpha {
				alpha = score
			}
		}
	}
	return &best, nil
}

func (m *Minimax) negamax(g *chess.Game, depth, alpha, beta int) int {
	moves := g.ValidMoves()
	if len(moves) == 0 {
		if g.Method() == chess.Checkmate {
			// side to move is mated; deeper remaining depth means a
			// shallower mate, score it higher for the mating side
			return -(mateScore + depth)
		}
		return 0
	}
	if g.Outcome() == chess.Draw {
		return 0
	}
	if depth <= 0 {
		return evaluate(g.Position())
	}

	for i := range moves {
		mv := moves[i]
		child := g.Clone()
		if err := child.Move(&mv, nil); err != nil {
			continue
		}
		score := -m.negamax(child, depth-1, -beta, -alpha)
		if score >= beta {
			return score
		}
		if score > alpha {
			alpha = score
		}
	}
	return alpha
}

// material balance from the side to move's point of view
func evaluate(pos *chess.Position) int {
	score := 0
	for _, p := range pos.Board().SquareMap() {
		v := pieceValues[p.Type()]
		if p.Color() == chess.White {
			score += v
		} else {
			score -= v
		}
	}
	if pos.Turn() == chess.Black {
		score = -score
	}
	return score
}
