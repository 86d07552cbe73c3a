package minimax

import (
	"testing"

	"clickchess/src/engine"

	"github.com/corentings/chess/v2"
)

func gameFromFEN(t *testing.T, fen string) *chess.Game {
	t.Helper()
	opt, err := chess.FEN(fen)
	if err != nil {
		t.Fatalf("FEN: %v", err)
	}
	return chess.NewGame(opt)
}

func TestSelectMoveIsLegal(t *testing.T) {
	g := chess.NewGame()
	m := NewSeeded(engine.LevelTwo, 1)

	mv, err := m.SelectMove(g)
	if err != nil {
		t.Fatalf("SelectMove: %v", err)
	}
	for _, legal := range g.ValidMoves() {
		if legal.S1() == mv.S1() && legal.S2() == mv.S2() && legal.Promo() == mv.Promo() {
			return
		}
	}
	t.Fatalf("selected move %s%s not in the legal set", mv.S1(), mv.S2())
}

func TestSelectMoveFindsMateInOne(t *testing.T) {
	// back-rank mate, Ra8#
	g := gameFromFEN(t, "6k1/5ppp/8/8/8/8/8/R5K1 w - - 0 1")
	m := NewSeeded(engine.LevelOne, 7)

	mv, err := m.SelectMove(g)
	if err != nil {
		t.Fatalf("SelectMove: %v", err)
	}
	if err := g.Move(mv, nil); err != nil {
		t.Fatalf("Move: %v", err)
	}
	if g.Method() != chess.Checkmate {
		t.Fatalf("selected %s%s, expected the mating move a1a8", mv.S1(), mv.S2())
	}
}

func TestSelectMoveTakesHangingQueen(t *testing.T) {
	g := gameFromFEN(t, "q6k/8/8/8/8/8/8/R6K w - - 0 1")
	m := NewSeeded(engine.LevelTwo, 3)

	mv, err := m.SelectMove(g)
	if err != nil {
		t.Fatalf("SelectMove: %v", err)
	}
	if mv.S1() != chess.A1 || mv.S2() != chess.A8 {
		t.Fatalf("selected %s%s, want a1a8", mv.S1(), mv.S2())
	}
}

func TestSelectMoveNoLegalMoves(t *testing.T) {
	// fool's mate, white is mated
	g := gameFromFEN(t, "rnb1kbnr/pppp1ppp/8/4p3/6Pq/5P2/PPPPP2P/RNBQKBNR w KQkq - 1 3")
	m := NewSeeded(engine.LevelOne, 1)

	if _, err := m.SelectMove(g); err == nil {
		t.Fatal("expected error with no legal moves")
	}
}

func TestSelectMoveDeterministicWithSeed(t *testing.T) {
	a := NewSeeded(engine.LevelOne, 42)
	b := NewSeeded(engine.LevelOne, 42)

	mva, err := a.SelectMove(chess.NewGame())
	if err != nil {
		t.Fatalf("SelectMove: %v", err)
	}
	mvb, err := b.SelectMove(chess.NewGame())
	if err != nil {
		t.Fatalf("SelectMove: %v", err)
	}
	if mva.S1() != mvb.S1() || mva.S2() != mvb.S2() {
		t.Fatalf("same seed picked %s%s and %s%s", mva.S1(), mva.S2(), mvb.S1(), mvb.S2())
	}
}
