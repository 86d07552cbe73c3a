package rules

import (
	"testing"

	"clickchess/src/base"

	"github.com/corentings/chess/v2"
)

func mustRebuild(t *testing.T, fen string, moves ...string) *chess.Game {
	t.Helper()
	g, err := Rebuild(fen, moves)
	if err != nil {
		t.Fatalf("Rebuild: %v", err)
	}
	return g
}

func TestNewFromFENInvalid(t *testing.T) {
	if _, err := NewFromFEN("this is not a fen"); err == nil {
		t.Fatal("expected error on malformed FEN")
	}
}

func TestRebuildReplaysMoves(t *testing.T) {
	g := mustRebuild(t, base.FEN_START_GAME, "e2e4", "e7e5")
	want := "rnbqkbnr/pppp1ppp/8/4p3/4P3/8/PPPP1PPP/RNBQKBNR w KQkq e6 0 2"
	if got := g.FEN(); got != want {
		t.Fatalf("FEN = %q, want %q", got, want)
	}
}

func TestRebuildRejectsIllegalMove(t *testing.T) {
	if _, err := Rebuild(base.FEN_START_GAME, []string{"e2e5"}); err == nil {
		t.Fatal("expected error replaying illegal move")
	}
}

func TestFindMove(t *testing.T) {
	g := NewClassic()

	mv, ok := FindMove(g, chess.E2, chess.E4)
	if !ok {
		t.Fatal("e2e4 not found in the legal set")
	}
	if mv.S1() != chess.E2 || mv.S2() != chess.E4 {
		t.Fatalf("FindMove = %s%s", mv.S1(), mv.S2())
	}

	if _, ok := FindMove(g, chess.E2, chess.E5); ok {
		t.Fatal("e2e5 resolved although illegal")
	}
	if _, ok := FindMove(g, chess.E7, chess.E5); ok {
		t.Fatal("opponent move resolved on the human's turn")
	}
}

func TestFindMovePromotionDefaultsToQueen(t *testing.T) {
	g, err := NewFromFEN("4r2k/P7/8/8/8/8/8/6K1 w - - 0 1")
	if err != nil {
		t.Fatalf("NewFromFEN: %v", err)
	}

	mv, ok := FindMove(g, chess.A7, chess.A8)
	if !ok {
		t.Fatal("promotion push not found")
	}
	if mv.Promo() != chess.Queen {
		t.Fatalf("Promo = %v, want queen", mv.Promo())
	}
}

func TestTargetsFrom(t *testing.T) {
	g := NewClassic()

	targets := TargetsFrom(g, chess.B1)
	if len(targets) != 2 {
		t.Fatalf("knight b1 targets = %v, want a3 c3", targets)
	}
	seen := map[chess.Square]bool{}
	for _, sq := range targets {
		seen[sq] = true
	}
	if !seen[chess.A3] || !seen[chess.C3] {
		t.Fatalf("knight b1 targets = %v, want a3 c3", targets)
	}

	if got := TargetsFrom(g, chess.E7); len(got) != 0 {
		t.Fatalf("opponent pawn has targets: %v", got)
	}
	if got := TargetsFrom(g, chess.E4); len(got) != 0 {
		t.Fatalf("empty square has targets: %v", got)
	}
}

func TestTargetsFromCollapsesPromotions(t *testing.T) {
	g, err := NewFromFEN("4r2k/P7/8/8/8/8/8/6K1 w - - 0 1")
	if err != nil {
		t.Fatalf("NewFromFEN: %v", err)
	}
	if got := TargetsFrom(g, chess.A7); len(got) != 1 || got[0] != chess.A8 {
		t.Fatalf("promotion targets = %v, want [a8]", got)
	}
}

// A piece pinned against its own king has no destinations: the
// generator never offers a self-check move.
func TestTargetsFromPinnedPiece(t *testing.T) {
	g, err := NewFromFEN("4r2k/8/8/8/8/4N3/8/4K3 w - - 0 1")
	if err != nil {
		t.Fatalf("NewFromFEN: %v", err)
	}
	if got := TargetsFrom(g, chess.E3); len(got) != 0 {
		t.Fatalf("pinned knight has targets: %v", got)
	}
}

func TestOwnPieceAt(t *testing.T) {
	g := NewClassic()
	if !OwnPieceAt(g, chess.E2) {
		t.Fatal("e2 should be a friendly piece for white")
	}
	if OwnPieceAt(g, chess.E7) {
		t.Fatal("e7 is an opponent piece")
	}
	if OwnPieceAt(g, chess.E4) {
		t.Fatal("e4 is empty")
	}
}

func TestStatusOf(t *testing.T) {
	tests := []struct {
		name  string
		fen   string
		moves []string
		want  base.GameStatus
	}{
		{
			name: "start position",
			fen:  base.FEN_START_GAME,
			want: base.Pass,
		},
		{
			name:  "check",
			fen:   base.FEN_START_GAME,
			moves: []string{"e2e4", "f7f6", "d1h5"},
			want:  base.Check,
		},
		{
			name: "check loaded from FEN, black to move",
			fen:  "4k3/8/8/8/8/8/8/4R1K1 b - - 0 1",
			want: base.Check,
		},
		{
			name: "check loaded from FEN, white to move",
			fen:  "4r2k/P7/8/8/8/8/8/4K3 w - - 0 1",
			want: base.Check,
		},
		{
			name:  "fools mate",
			fen:   base.FEN_START_GAME,
			moves: []string{"f2f3", "e7e5", "g2g4", "d8h4"},
			want:  base.Checkmate,
		},
		{
			name:  "stalemate",
			fen:   "7k/5K2/8/6Q1/8/8/8/8 w - - 0 1",
			moves: []string{"g5g6"},
			want:  base.Stalemate,
		},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			g := mustRebuild(t, tc.fen, tc.moves...)
			if got := StatusOf(g); got != tc.want {
				t.Fatalf("StatusOf = %v, want %v", got, tc.want)
			}
		})
	}
}
