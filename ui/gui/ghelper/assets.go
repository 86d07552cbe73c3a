package ghelper

import (
	"path/filepath"

	"clickchess/ui/gui/gbase/gconf"
	"clickchess/ui/gui/ghelper/gfont"
	"clickchess/ui/gui/ghelper/gimages"
	"clickchess/ui/gui/ghelper/glang"

	"github.com/corentings/chess/v2"
	"github.com/hajimehoshi/ebiten/v2"
)

type GUIAssetsWorker struct {
	pieceImages map[chess.Piece]*ebiten.Image
	fonts       *gfont.Fonts
	lang        *glang.GUILangWorker
}

// NewGUIAssetsWorker loads everything the scenes need before the loop
// starts: piece sprites from <assets>/pieces, language dictionaries
// from <assets>/lang, embedded fonts. Any missing asset is an error
// and the caller treats it as fatal.
func NewGUIAssetsWorker(cfg *gconf.GUIConfigWorker) (*GUIAssetsWorker, error) {
	imgs, err := gimages.LoadPieceImages(filepath.Join(cfg.Config.AssetsDir, "pieces"))
	if err != nil {
		return nil, err
	}
	fonts, err := gfont.LoadFonts()
	if err != nil {
		return nil, err
	}
	l, err := glang.NewGUILangWorker(filepath.Join(cfg.Config.AssetsDir, "lang"), cfg.Config.Lang)
	if err != nil {
		return nil, err
	}
	return &GUIAssetsWorker{pieceImages: imgs, fonts: fonts, lang: l}, nil
}

// ReloadPieces re-reads the sprites after the directory changed in
// the settings scene.
func (aw *GUIAssetsWorker) ReloadPieces(assetsDir string) error {
	imgs, err := gimages.LoadPieceImages(filepath.Join(assetsDir, "pieces"))
	if err != nil {
		return err
	}
	aw.pieceImages = imgs
	return nil
}

func (aw *GUIAssetsWorker) Piece(p chess.Piece) *ebiten.Image {
	return aw.pieceImages[p]
}

func (aw *GUIAssetsWorker) Fonts() *gfont.Fonts {
	return aw.fonts
}

func (aw *GUIAssetsWorker) Lang() *glang.GUILangWorker {
	return aw.lang
}
