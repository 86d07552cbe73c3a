package gimages

import (
	"bytes"
	"fmt"
	"image"
	"os"
	"path/filepath"

	"github.com/corentings/chess/v2"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/srwiley/oksvg"
	"github.com/srwiley/rasterx"
)

const spriteSize = 60

var pieceFiles = map[chess.Piece]string{
	chess.WhiteKing:   "wK",
	chess.WhiteQueen:  "wQ",
	chess.WhiteRook:   "wR",
	chess.WhiteBishop: "wB",
	chess.WhiteKnight: "wN",
	chess.WhitePawn:   "wP",
	chess.BlackKing:   "bK",
	chess.BlackQueen:  "bQ",
	chess.BlackRook:   "bR",
	chess.BlackBishop: "bB",
	chess.BlackKnight: "bN",
	chess.BlackPawn:   "bP",
}

// LoadPieceImages reads one sprite per piece from workdir. SVG files
// are rasterized, PNG files are decoded directly. A missing sprite is
// an error; the caller treats it as fatal.
func LoadPieceImages(workdir string) (map[chess.Piece]*ebiten.Image, error) {
	pieceImages := make(map[chess.Piece]*ebiten.Image, len(pieceFiles))
	for p, name := range pieceFiles {
		img, err := loadPiece(workdir, name)
		if err != nil {
			return nil, err
		}
		pieceImages[p] = img
	}
	return pieceImages, nil
}

func loadPiece(workdir, name string) (*ebiten.Image, error) {
	svgPath := filepath.Join(workdir, name+".svg")
	if data, err := os.ReadFile(svgPath); err == nil {
		rgba, err := RasterizeSVG(data, spriteSize)
		if err != nil {
			return nil, fmt.Errorf("error rasterize %s: %w", svgPath, err)
		}
		return ebiten.NewImageFromImage(rgba), nil
	}

	pngPath := filepath.Join(workdir, name+".png")
	img, _, err := ebitenutil.NewImageFromFile(pngPath)
	if err != nil {
		return nil, fmt.Errorf("no sprite %s.svg or %s.png under %s: %w", name, name, workdir, err)
	}
	return img, nil
}

// RasterizeSVG renders SVG bytes onto a size x size RGBA image.
func RasterizeSVG(data []byte, size int) (*image.RGBA, error) {
	icon, err := oksvg.ReadIconStream(bytes.NewReader(data))
	if err != nil {
		return nil, err
	}
	icon.SetTarget(0, 0, float64(size), float64(size))
	rgba := image.NewRGBA(image.Rect(0, 0, size, size))
	scanner := rasterx.NewScannerGV(size, size, rgba, rgba.Bounds())
	raster := rasterx.NewDasher(size, size, scanner)
	icon.Draw(raster, 1.0)
	return rgba, nil
}
