package random

import (
	"testing"

	"github.com/corentings/chess/v2"
)

func TestSelectMoveIsLegal(t *testing.T) {
	g := chess.NewGame()
	r := NewSeeded(1)

	mv, err := r.SelectMove(g)
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

func TestSelectMoveDeterministicWithSeed(t *testing.T) {
	mva, err := NewSeeded(42).SelectMove(chess.NewGame())
	if err != nil {
		t.Fatalf("SelectMove: %v", err)
	}
	mvb, err := NewSeeded(42).SelectMove(chess.NewGame())
	if err != nil {
		t.Fatalf("SelectMove: %v", err)
	}
	if mva.S1() != mvb.S1() || mva.S2() != mvb.S2() {
		t.Fatalf("same seed picked %s%s and %s%s", mva.S1(), mva.S2(), mvb.S1(), mvb.S2())
	}
}

func TestSelectMoveNoLegalMoves(t *testing.T) {
	opt, err := chess.FEN("rnb1kbnr/pppp1ppp/8/4p3/6Pq/5P2/PPPPP2P/RNBQKBNR w KQkq - 1 3")
	if err != nil {
		t.Fatalf("FEN: %v", err)
	}
	if _, err := NewSeeded(1).SelectMove(chess.NewGame(opt)); err == nil {
		t.Fatal("expected error with no legal moves")
	}
}
