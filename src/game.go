package src

import (
	"fmt"

	"clickchess/src/base"
	"clickchess/src/engine"
	"clickchess/src/logic/history"
	"clickchess/src/logic/rules"
	"clickchess/src/logx"

	"github.com/corentings/chess/v2"
)

// GameBuilder owns the single mutable game: position, history, move
// selector and the human color. At first use Create* methods.
type GameBuilder struct {
	game       *chess.Game
	history    *history.History
	status     base.GameStatus
	selector   engine.Selector
	humanWhite bool
	logger     logx.Logger
}

func NewBuilderBoard(logger logx.Logger) *GameBuilder {
	return &GameBuilder{
		history: history.NewHistory(),
		status:  base.InvalidGame,
		logger:  logger,
	}
}

func (gb *GameBuilder) SetSelector(s engine.Selector) {
	gb.selector = s
}

func (gb *GameBuilder) Selector() engine.Selector { return gb.selector }

func (gb *GameBuilder) SetHumanWhite(white bool) {
	gb.humanWhite = white
}

func (gb *GameBuilder) HumanIsWhite() bool { return gb.humanWhite }

func (gb *GameBuilder) CreateClassic() base.GameStatus {
	gb.logger.Debug("create classic game")
	st, _ := gb.CreateFromFEN(base.FEN_START_GAME)
	return st
}

func (gb *GameBuilder) CreateFromFEN(fen string) (base.GameStatus, error) {
	gb.logger.Debugf("create game by FEN: %v", fen)
	g, err := rules.NewFromFEN(fen)
	if err != nil {
		gb.status = base.InvalidGame
		return gb.status, err
	}
	gb.game = g
	gb.history.Anchor(g.FEN())
	gb.status = rules.StatusOf(g)
	if err := gb.playOpening(); err != nil {
		gb.status = base.InvalidGame
		return gb.status, err
	}
	return gb.status, nil
}

// Reset is CreateClassic under the name the controller binds to.
func (gb *GameBuilder) Reset() base.GameStatus {
	return gb.CreateClassic()
}

// When the automated side owns the first move, its opening reply is
// played immediately and becomes the history baseline: undo never
// crosses it.
func (gb *GameBuilder) playOpening() error {
	if gb.selector == nil || gb.HumanTurn() || gb.status.Terminal() {
		return nil
	}
	if _, err := gb.EngineReply(); err != nil {
		return err
	}
	gb.history.Anchor(gb.game.FEN())
	return nil
}

func (gb *GameBuilder) Status() base.GameStatus { return gb.status }

func (gb *GameBuilder) IsWhiteToMove() bool {
	return gb.game.Position().Turn() == chess.White
}

func (gb *GameBuilder) HumanTurn() bool {
	return gb.IsWhiteToMove() == gb.humanWhite
}

func (gb *GameBuilder) CurrentBoard() *chess.Board {
	return gb.game.Position().Board()
}

func (gb *GameBuilder) PieceAt(sq chess.Square) chess.Piece {
	return gb.game.Position().Board().Piece(sq)
}

// OwnPieceAt reports whether sq holds a piece of the side to move.
func (gb *GameBuilder) OwnPieceAt(sq chess.Square) bool {
	return rules.OwnPieceAt(gb.game, sq)
}

// LegalTargets lists the destinations of the side to move's piece on
// from; empty when the square holds no friendly piece or the game is
// over.
func (gb *GameBuilder) LegalTargets(from chess.Square) []chess.Square {
	if gb.status.Terminal() {
		return nil
	}
	return rules.TargetsFrom(gb.game, from)
}

// HumanMove validates the from/to pair against the legal-move list,
// applies it and records a history entry. Illegal pairs return an
// error and change nothing.
func (gb *GameBuilder) HumanMove(from, to chess.Square) (base.GameStatus, error) {
	if gb.status.Terminal() {
		return gb.status, fmt.Errorf("game is over")
	}
	mv, ok := rules.FindMove(gb.game, from, to)
	if !ok {
		return gb.status, fmt.Errorf("illegal move: %s%s", from, to)
	}
	gb.logger.Infof("human move %s%s", from, to)
	return gb.applyMove(mv, false)
}

// MoveSAN applies a move given in algebraic notation (terminal mode).
func (gb *GameBuilder) MoveSAN(san string) (base.GameStatus, error) {
	if gb.status.Terminal() {
		return gb.status, fmt.Errorf("game is over")
	}
	mv, err := chess.AlgebraicNotation{}.Decode(gb.game.Position(), san)
	if err != nil {
		return gb.status, fmt.Errorf("parse SAN: %w", err)
	}
	gb.logger.Infof("move SAN: %v", san)
	return gb.applyMove(mv, false)
}

// EngineReply asks the selector for the automated side's move and
// applies it. Must not be called while terminal.
func (gb *GameBuilder) EngineReply() (base.GameStatus, error) {
	if gb.selector == nil {
		return base.InvalidGame, fmt.Errorf("no move selector")
	}
	if gb.status.Terminal() {
		return gb.status, fmt.Errorf("game is over")
	}
	mv, err := gb.selector.SelectMove(gb.game)
	if err != nil {
		return base.InvalidGame, fmt.Errorf("select move: %w", err)
	}
	gb.logger.Infof("%s replies %s%s", gb.selector.Name(), mv.S1(), mv.S2())
	return gb.applyMove(mv, true)
}

func (gb *GameBuilder) applyMove(mv *chess.Move, byEngine bool) (base.GameStatus, error) {
	pos := gb.game.Position()
	uci := chess.UCINotation{}.Encode(pos, mv)
	san := chess.AlgebraicNotation{}.Encode(pos, mv)
	if err := gb.game.Move(mv, nil); err != nil {
		return gb.status, fmt.Errorf("apply %s: %w", uci, err)
	}
	gb.history.Push(history.Entry{UCI: uci, SAN: san, ByEngine: byEngine})
	gb.status = rules.StatusOf(gb.game)
	return gb.status, nil
}

// Undo pops the trailing automated/human pair (one entry if only a
// human move is on top) and rebuilds the game from the baseline plus
// the surviving moves. No-op on empty history.
func (gb *GameBuilder) Undo() base.GameStatus {
	gb.logger.Debug("call undo")
	popped := 0
	if e, ok := gb.history.Top(); ok && e.ByEngine {
		gb.history.Pop()
		popped++
	}
	if e, ok := gb.history.Top(); ok && !e.ByEngine {
		gb.history.Pop()
		popped++
	}
	if popped == 0 {
		return gb.status
	}

	g, err := rules.Rebuild(gb.history.Baseline(), gb.history.UCIMoves())
	if err != nil {
		gb.logger.Errorf("rebuild after undo: %v", err)
		gb.status = base.InvalidGame
		return gb.status
	}
	gb.game = g
	gb.status = rules.StatusOf(g)
	return gb.status
}

func (gb *GameBuilder) HistoryLen() int { return gb.history.Len() }

// return FEN of this game
func (gb *GameBuilder) FEN() string {
	return gb.game.FEN()
}

// all SAN moves above the baseline
func (gb *GameBuilder) MovesText() string {
	return gb.history.MovesText()
}
