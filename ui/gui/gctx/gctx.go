package gctx

import (
	"clickchess/src"
	"clickchess/src/logx"
	"clickchess/ui/gui/gbase"
	"clickchess/ui/gui/gbase/gconf"
	"clickchess/ui/gui/ghelper"
)

// ---- GUI Context ----

// GUIGameContext is handed to every scene: the game core, loaded
// assets, config and theme.
type GUIGameContext struct {
	Builder      *src.GameBuilder
	AssetsWorker *ghelper.GUIAssetsWorker
	ConfigWorker *gconf.GUIConfigWorker
	Theme        gbase.Palette
	Logx         logx.Logger
}

func NewGUIGameContext(b *src.GameBuilder, a *ghelper.GUIAssetsWorker, c *gconf.GUIConfigWorker, l logx.Logger) *GUIGameContext {
	return &GUIGameContext{
		Builder:      b,
		AssetsWorker: a,
		ConfigWorker: c,
		Theme:        gbase.PaletteFromString(c.Config.Theme),
		Logx:         l,
	}
}
