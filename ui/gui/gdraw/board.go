package gdraw

import (
	"github.com/corentings/chess/v2"
)

// inBoard reports whether the pixel lies inside the board rectangle.
func inBoard(px, py, bx, by, sqSize int) bool {
	return px >= bx && py >= by && px < bx+sqSize*8 && py < by+sqSize*8
}

// pixelToSquare maps screen cords to a square. With flipped=false
// white sits at the bottom (top-left pixel is a8); flipped mirrors
// both axes for a black human.
func pixelToSquare(px, py, bx, by, sqSize int, flipped bool) chess.Square {
	fx := (px - bx) / sqSize
	fy := (py - by) / sqSize
	if fx < 0 {
		fx = 0
	}
	if fx > 7 {
		fx = 7
	}
	if fy < 0 {
		fy = 0
	}
	if fy > 7 {
		fy = 7
	}

	var file, rank int
	if !flipped {
		file = fx
		// fy: 0 = top row on screen -> that's rank 7, so rank = 7 - fy
		rank = 7 - fy
	} else {
		// flipped: top-left on screen corresponds to h1
		file = 7 - fx
		rank = fy
	}
	return chess.NewSquare(chess.File(file), chess.Rank(rank))
}

// squareToPixel is the inverse mapping: top-left pixel of the square.
func squareToPixel(sq chess.Square, bx, by, sqSize int, flipped bool) (int, int) {
	fs := int(sq.File())
	rs := 7 - int(sq.Rank())
	if flipped {
		fs = 7 - fs
		rs = 7 - rs
	}
	return bx + fs*sqSize, by + rs*sqSize
}

func containsSquare(squares []chess.Square, sq chess.Square) bool {
	for _, s := range squares {
		if s == sq {
			return true
		}
	}
	return false
}
