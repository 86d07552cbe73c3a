// Package rules adapts the corentings/chess move generator to the
// game core. It is the only place the library types are interpreted;
// everything above works with squares, statuses and UCI strings.
package rules

import (
	"fmt"

	"clickchess/src/base"

	"github.com/corentings/chess/v2"
)

// NewClassic returns a game at the standard starting position.
func NewClassic() *chess.Game {
	return chess.NewGame()
}

// NewFromFEN returns a game at an arbitrary position.
func NewFromFEN(fen string) (*chess.Game, error) {
	opt, err := chess.FEN(fen)
	if err != nil {
		return nil, fmt.Errorf("error parse FEN: %w", err)
	}
	return chess.NewGame(opt), nil
}

// Rebuild replays uciMoves on top of the baseline FEN. Undo is
// implemented as a rebuild without the popped moves.
func Rebuild(fen string, uciMoves []string) (*chess.Game, error) {
	g, err := NewFromFEN(fen)
	if err != nil {
		return nil, err
	}
	for i, mv := range uciMoves {
		if err := g.PushNotationMove(mv, chess.UCINotation{}, nil); err != nil {
			return nil, fmt.Errorf("error replay move %d (%s): %w", i+1, mv, err)
		}
	}
	return g, nil
}

// return status: Check, Checkmate, Stalemate, Draw or Pass
func StatusOf(g *chess.Game) base.GameStatus {
	if g == nil {
		return base.InvalidGame
	}
	switch g.Method() {
	case chess.Checkmate:
		return base.Checkmate
	case chess.Stalemate:
		return base.Stalemate
	}
	if g.Outcome() == chess.Draw {
		return base.Draw
	}
	if InCheck(g) {
		return base.Check
	}
	return base.Pass
}

// InCheck reports whether the side to move is in check. Derived from
// the position itself so games loaded from a FEN report it too: a
// null move hands the turn to the opponent, and a reply landing on
// the king square means the king is attacked.
func InCheck(g *chess.Game) bool {
	pos := g.Position()
	kingSq := chess.NoSquare
	for sq, p := range pos.Board().SquareMap() {
		if p.Type() == chess.King && p.Color() == pos.Turn() {
			kingSq = sq
			break
		}
	}
	if kingSq == chess.NoSquare {
		return false
	}
	for _, m := range pos.Update(nil).ValidMoves() {
		if m.S2() == kingSq {
			return true
		}
	}
	return false
}

// FindMove resolves a from/to pair against the legal-move list.
// Promotions collapse to the queen. Returns false when no legal move
// matches the pair.
func FindMove(g *chess.Game, from, to chess.Square) (*chess.Move, bool) {
	for _, m := range g.ValidMoves() {
		if m.S1() != from || m.S2() != to {
			continue
		}
		if m.Promo() != chess.NoPieceType && m.Promo() != chess.Queen {
			continue
		}
		mv := m
		return &mv, true
	}
	return nil, false
}

// TargetsFrom lists the destination squares of the piece on from.
// Empty when the square holds no piece of the side to move. The four
// promotion moves of a pawn collapse to one destination.
func TargetsFrom(g *chess.Game, from chess.Square) []chess.Square {
	var targets []chess.Square
	for _, m := range g.ValidMoves() {
		if m.S1() != from {
			continue
		}
		if m.Promo() != chess.NoPieceType && m.Promo() != chess.Queen {
			continue
		}
		targets = append(targets, m.S2())
	}
	return targets
}

// OwnPieceAt reports whether sq holds a piece of the side to move.
func OwnPieceAt(g *chess.Game, sq chess.Square) bool {
	p := g.Position().Board().Piece(sq)
	return p != chess.NoPiece && p.Color() == g.Position().Turn()
}
