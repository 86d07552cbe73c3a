package gui

import (
	"clickchess/src"
	"clickchess/src/logx"
	"clickchess/ui/gui/gbase/gconf"
	"clickchess/ui/gui/gctx"
	"clickchess/ui/gui/gdraw"
	"clickchess/ui/gui/ghelper"

	"github.com/hajimehoshi/ebiten/v2"
)

type GUIProcessing struct {
	current gdraw.Scene
	ctx     *gctx.GUIGameContext
}

// NewGUI loads config and assets and starts on the menu scene. A
// missing sprite directory surfaces here as an error and the process
// exits before any window opens.
func NewGUI(b *src.GameBuilder, logger logx.Logger) (*GUIProcessing, error) {
	cw, err := gconf.NewGUIConfigWorker()
	if err != nil {
		return nil, err
	}
	aw, err := ghelper.NewGUIAssetsWorker(cw)
	if err != nil {
		return nil, err
	}
	ctx := gctx.NewGUIGameContext(b, aw, cw, logger)
	return &GUIProcessing{
		current: gdraw.NewGUIMenuDrawer(ctx),
		ctx:     ctx,
	}, nil
}

func (gp *GUIProcessing) Run() error {
	conf := gp.ctx.ConfigWorker.Config
	ebiten.SetWindowSize(conf.WindowW, conf.WindowH)
	ebiten.SetWindowTitle("ClickChess")
	return ebiten.RunGame(gp)
}

func (gp *GUIProcessing) Update() error {
	next, err := gp.current.Update(gp.ctx)
	if err != nil {
		return err
	}
	gp.current = next.ToScene(gp.current, gp.ctx)
	return nil
}

func (gp *GUIProcessing) Draw(screen *ebiten.Image) {
	gp.current.Draw(gp.ctx, screen)
}

func (gp *GUIProcessing) Layout(outsideWidth, outsideHeight int) (screenWidth, screenHeight int) {
	conf := gp.ctx.ConfigWorker.Config
	return conf.WindowW, conf.WindowH
}
