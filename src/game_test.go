package src

import (
	"testing"

	"clickchess/src/base"
	"clickchess/src/engine"
	"clickchess/src/engine/minimax"
	"clickchess/src/logx"

	"github.com/corentings/chess/v2"
)

func newTestBuilder(t *testing.T, humanWhite bool) *GameBuilder {
	t.Helper()
	gb := NewBuilderBoard(logx.NewNop())
	gb.SetSelector(minimax.NewSeeded(engine.LevelOne, 1))
	gb.SetHumanWhite(humanWhite)
	return gb
}

// pick any legal move for the human side
func anyHumanMove(t *testing.T, gb *GameBuilder) (chess.Square, chess.Square) {
	t.Helper()
	for sq := chess.A1; sq <= chess.H8; sq++ {
		if !gb.OwnPieceAt(sq) {
			continue
		}
		targets := gb.LegalTargets(sq)
		if len(targets) > 0 {
			return sq, targets[0]
		}
	}
	t.Fatal("no legal move for the human side")
	return chess.NoSquare, chess.NoSquare
}

func TestCreateClassicHumanWhite(t *testing.T) {
	gb := newTestBuilder(t, true)

	if st := gb.CreateClassic(); st != base.Pass {
		t.Fatalf("status = %v, want pass", st)
	}
	if gb.FEN() != base.FEN_START_GAME {
		t.Fatalf("FEN = %q, want start position", gb.FEN())
	}
	if gb.HistoryLen() != 0 {
		t.Fatalf("history len = %d, want 0", gb.HistoryLen())
	}
	if !gb.HumanTurn() {
		t.Fatal("human (white) should own the first move")
	}
}

func TestCreateClassicHumanBlackEngineOpens(t *testing.T) {
	gb := newTestBuilder(t, false)

	if st := gb.CreateClassic(); st != base.Pass {
		t.Fatalf("status = %v, want pass", st)
	}
	if gb.FEN() == base.FEN_START_GAME {
		t.Fatal("automated white opening was not played")
	}
	if gb.HistoryLen() != 0 {
		t.Fatalf("history len = %d, want 0 (opening is the baseline)", gb.HistoryLen())
	}
	if !gb.HumanTurn() {
		t.Fatal("black (human) should move after the opening")
	}
}

func TestHumanMoveThenReplyThenUndo(t *testing.T) {
	gb := newTestBuilder(t, false)
	gb.CreateClassic()
	baseline := gb.FEN()

	from, to := anyHumanMove(t, gb)
	if _, err := gb.HumanMove(from, to); err != nil {
		t.Fatalf("HumanMove: %v", err)
	}
	if _, err := gb.EngineReply(); err != nil {
		t.Fatalf("EngineReply: %v", err)
	}
	if gb.HistoryLen() != 2 {
		t.Fatalf("history len = %d, want 2", gb.HistoryLen())
	}

	gb.Undo()
	if gb.HistoryLen() != 0 {
		t.Fatalf("history len after undo = %d, want 0", gb.HistoryLen())
	}
	if gb.FEN() != baseline {
		t.Fatalf("FEN after undo = %q, want baseline %q", gb.FEN(), baseline)
	}
	if !gb.HumanTurn() {
		t.Fatal("undo should hand the move back to the human")
	}
}

func TestThreeMovesThreeUndos(t *testing.T) {
	gb := newTestBuilder(t, false)
	gb.CreateClassic()
	baseline := gb.FEN()

	for i := 0; i < 3; i++ {
		from, to := anyHumanMove(t, gb)
		if _, err := gb.HumanMove(from, to); err != nil {
			t.Fatalf("HumanMove %d: %v", i+1, err)
		}
		if !gb.Status().Terminal() {
			if _, err := gb.EngineReply(); err != nil {
				t.Fatalf("EngineReply %d: %v", i+1, err)
			}
		}
	}
	for i := 0; i < 3; i++ {
		gb.Undo()
	}

	if gb.HistoryLen() != 0 {
		t.Fatalf("history len = %d, want 0", gb.HistoryLen())
	}
	if gb.FEN() != baseline {
		t.Fatalf("FEN = %q, want baseline %q", gb.FEN(), baseline)
	}
}

func TestUndoOnEmptyHistoryIsNoop(t *testing.T) {
	gb := newTestBuilder(t, true)
	gb.CreateClassic()

	if st := gb.Undo(); st != base.Pass {
		t.Fatalf("status = %v, want pass", st)
	}
	if gb.FEN() != base.FEN_START_GAME {
		t.Fatalf("FEN changed on empty undo: %q", gb.FEN())
	}
}

func TestIllegalHumanMoveChangesNothing(t *testing.T) {
	gb := newTestBuilder(t, true)
	gb.CreateClassic()

	if _, err := gb.HumanMove(chess.E2, chess.E5); err == nil {
		t.Fatal("expected error on illegal move")
	}
	if gb.FEN() != base.FEN_START_GAME {
		t.Fatalf("FEN changed after rejected move: %q", gb.FEN())
	}
	if gb.HistoryLen() != 0 {
		t.Fatalf("history len = %d, want 0", gb.HistoryLen())
	}
}

func TestMoveIgnoredWhileTerminal(t *testing.T) {
	gb := newTestBuilder(t, true)
	// fool's mate, white to move and mated
	if _, err := gb.CreateFromFEN("rnb1kbnr/pppp1ppp/8/4p3/6Pq/5P2/PPPPP2P/RNBQKBNR w KQkq - 1 3"); err != nil {
		t.Fatalf("CreateFromFEN: %v", err)
	}
	if gb.Status() != base.Checkmate {
		t.Fatalf("status = %v, want checkmate", gb.Status())
	}
	if _, err := gb.HumanMove(chess.E2, chess.E4); err == nil {
		t.Fatal("expected error moving in a finished game")
	}
	if got := gb.LegalTargets(chess.E2); len(got) != 0 {
		t.Fatalf("terminal position offered targets: %v", got)
	}
}

func TestUndoLeavesTerminalState(t *testing.T) {
	gb := newTestBuilder(t, true)
	if _, err := gb.CreateFromFEN("6k1/5ppp/8/8/8/8/8/R5K1 w - - 0 1"); err != nil {
		t.Fatalf("CreateFromFEN: %v", err)
	}

	if st, err := gb.HumanMove(chess.A1, chess.A8); err != nil || st != base.Checkmate {
		t.Fatalf("mating move: status %v, err %v", st, err)
	}
	if st := gb.Undo(); st.Terminal() {
		t.Fatalf("status after undo = %v, want in progress", st)
	}
	if gb.HistoryLen() != 0 {
		t.Fatalf("history len = %d, want 0", gb.HistoryLen())
	}
}

func TestMoveSAN(t *testing.T) {
	gb := newTestBuilder(t, true)
	gb.CreateClassic()

	if st, err := gb.MoveSAN("e4"); err != nil || st != base.Pass {
		t.Fatalf("MoveSAN e4: status %v, err %v", st, err)
	}
	if _, err := gb.MoveSAN("Qxh7"); err == nil {
		t.Fatal("expected error on impossible SAN")
	}
	if gb.HistoryLen() != 1 {
		t.Fatalf("history len = %d, want 1", gb.HistoryLen())
	}
}

func TestResetReturnsToStart(t *testing.T) {
	gb := newTestBuilder(t, true)
	gb.CreateClassic()

	if _, err := gb.HumanMove(chess.E2, chess.E4); err != nil {
		t.Fatalf("HumanMove: %v", err)
	}
	if st := gb.Reset(); st != base.Pass {
		t.Fatalf("status = %v, want pass", st)
	}
	if gb.FEN() != base.FEN_START_GAME {
		t.Fatalf("FEN = %q, want start position", gb.FEN())
	}
	if gb.HistoryLen() != 0 {
		t.Fatalf("history len = %d, want 0", gb.HistoryLen())
	}
}

func TestMovesText(t *testing.T) {
	gb := newTestBuilder(t, true)
	gb.CreateClassic()
	gb.MoveSAN("e4")
	gb.MoveSAN("e5")
	gb.MoveSAN("Nf3")

	if got := gb.MovesText(); got != "1. e4 e5 2. Nf3" {
		t.Fatalf("MovesText = %q", got)
	}
}
