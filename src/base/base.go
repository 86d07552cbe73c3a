package base

// Forsyth–Edwards Notation
const FEN_START_GAME string = "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1"

type GameStatus uint8

const (
	Check       GameStatus = 10
	Checkmate   GameStatus = 11
	Stalemate   GameStatus = 12
	Draw        GameStatus = 13
	InvalidGame GameStatus = 88
	Pass        GameStatus = 99
)

func (gs GameStatus) String() string {
	switch gs {
	case Check:
		return "check"
	case Checkmate:
		return "checkmate"
	case Stalemate:
		return "stalemate"
	case Draw:
		return "draw"
	case Pass:
		return "pass"
	default:
		return "invalid"
	}
}

// Checkmate, stalemate and draw end the game; selection and
// move input are ignored while terminal.
func (gs GameStatus) Terminal() bool {
	return gs == Checkmate || gs == Stalemate || gs == Draw
}
