package engine

import (
	"github.com/corentings/chess/v2"
)

// Selector picks the automated side's reply. Implementations must
// return a member of ValidMoves() whenever that set is non-empty, and
// must terminate; selection runs synchronously on the caller's
// goroutine.
type Selector interface {
	Name() string
	SelectMove(g *chess.Game) (*chess.Move, error)
}

type Level uint8

const (
	LevelInvalid Level = 0
	LevelOne     Level = 1
	LevelTwo     Level = 2
	LevelThree   Level = 3
	LevelFour    Level = 4
	LevelFive    Level = 5
)

const LevelDefault = LevelThree

// LevelToDepth maps a level to a search depth in plies.
func LevelToDepth(lvl Level) int {
	if lvl < LevelOne || lvl > LevelFive {
		return int(LevelDefault)
	}
	return int(lvl)
}

// LevelFromInt clamps an arbitrary integer (CLI flag, config field)
// onto the supported range.
func LevelFromInt(n int) Level {
	if n < int(LevelOne) || n > int(LevelFive) {
		return LevelDefault
	}
	return Level(n)
}
