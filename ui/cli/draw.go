package cli

import (
	"fmt"

	"github.com/corentings/chess/v2"
)

// PrintBoard writes an ANSI-colored unicode board, white at the
// bottom.
func PrintBoard(b *chess.Board) {
	// ANSI-code
	const (
		reset   = "\033[0m"
		lightBg = "\033[47m"
		darkBg  = "\033[100m"
		whiteF  = "\033[97m"
		blackF  = "\033[30m"
		dimF    = "\033[90m"
	)

	// Piece -> unicode glyph
	glyph := func(p chess.Piece) string {
		switch p {
		case chess.WhiteKing:
			return "♔"
		case chess.WhiteQueen:
			return "♕"
		case chess.WhiteRook:
			return "♖"
		case chess.WhiteBishop:
			return "♗"
		case chess.WhiteKnight:
			return "♘"
		case chess.WhitePawn:
			return "♙"
		case chess.BlackKing:
			return "♚"
		case chess.BlackQueen:
			return "♛"
		case chess.BlackRook:
			return "♜"
		case chess.BlackBishop:
			return "♝"
		case chess.BlackKnight:
			return "♞"
		case chess.BlackPawn:
			return "♟"
		case chess.NoPiece:
			return " "
		default:
			return "?"
		}
	}

	fmt.Println()
	fmt.Println("   a  b  c  d  e  f  g  h")
	for rank := 7; rank >= 0; rank-- {
		fmt.Printf("%d ", rank+1)
		for file := 0; file < 8; file++ {
			p := b.Piece(chess.NewSquare(chess.File(file), chess.Rank(rank)))
			g := glyph(p)

			lightSquare := (rank+file)%2 == 0

			var bg, fg string
			if lightSquare {
				bg = lightBg
				if p == chess.NoPiece {
					fg = dimF
				} else {
					fg = blackF
				}
			} else {
				bg = darkBg
				if p == chess.NoPiece {
					fg = dimF
				} else if p.Color() == chess.White {
					fg = whiteF
				} else {
					fg = blackF
				}
			}

			fmt.Printf("%s%s %s %s", bg, fg, g, reset)
		}
		fmt.Printf(" %d\n", rank+1)
	}
	fmt.Println("   a  b  c  d  e  f  g  h")
	fmt.Println()
}
