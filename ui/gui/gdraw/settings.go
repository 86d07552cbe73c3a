package gdraw

import (
	"fmt"
	"path/filepath"
	"time"

	"clickchess/src/engine"
	"clickchess/ui/gui/gbase"
	"clickchess/ui/gui/gctx"
	"clickchess/ui/gui/ghelper"
	"clickchess/ui/gui/ghelper/gdialog"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/text"
)

type GUISettingsDrawer struct {
	msg     *ghelper.MessageBox
	buttons []*ghelper.Button

	// index of buttons
	btnLangEnIdx     int
	btnLangRuIdx     int
	btnThemeLightIdx int
	btnThemeDarkIdx  int
	btnColorWhiteIdx int
	btnColorBlackIdx int
	btnMinimaxIdx    int
	btnRandomIdx     int
	btnLevelIdx      int
	btnBrowseIdx     int
	btnDebugIdx      int
	btnApplyIdx      int
	btnBackIdx       int

	// internal ui state
	prevMouseDown bool
	browseActive  bool
	browseCh      chan string // dialog result, consumed in Update

	lastTick time.Time
}

func NewGUISettingsDrawer(ctx *gctx.GUIGameContext) *GUISettingsDrawer {
	sd := &GUISettingsDrawer{
		lastTick: time.Now(),
		browseCh: make(chan string, 1),
	}
	conf := ctx.ConfigWorker.Config

	// buttons
	sd.buttons = []*ghelper.Button{}
	btnW := 220
	btnH := 56
	spacingX := 20 // horizontal
	spacingY := 18 // vertical
	startX := 300
	startY := 90

	appendButton := func(label string, x, y, w, h int) int {
		b := &ghelper.Button{Label: label, X: x, Y: y, W: w, H: h}
		b.Scale, b.TargetScale = 1.0, 1.0
		b.AnimSpeed = 10.0
		b.Image = ghelper.RenderRoundedRect(w, h, 12, ctx.Theme.ButtonFill, ctx.Theme.ButtonStroke, 3)
		sd.buttons = append(sd.buttons, b)
		return len(sd.buttons) - 1
	}

	// lang
	sd.btnLangEnIdx = appendButton("", startX, startY, btnW, btnH)
	sd.btnLangRuIdx = appendButton("", startX+btnW+spacingX, startY, btnW, btnH)
	// theme
	themeY := startY + btnH + spacingY
	sd.btnThemeLightIdx = appendButton("", startX, themeY, btnW, btnH)
	sd.btnThemeDarkIdx = appendButton("", startX+btnW+spacingX, themeY, btnW, btnH)
	// side the human plays
	colorY := themeY + btnH + spacingY
	sd.btnColorWhiteIdx = appendButton("", startX, colorY, btnW, btnH)
	sd.btnColorBlackIdx = appendButton("", startX+btnW+spacingX, colorY, btnW, btnH)
	// opponent policy
	engineY := colorY + btnH + spacingY
	sd.btnMinimaxIdx = appendButton("", startX, engineY, btnW, btnH)
	sd.btnRandomIdx = appendButton("", startX+btnW+spacingX, engineY, btnW, btnH)
	// search level and debug toggle share a row
	levelY := engineY + btnH + spacingY
	sd.btnLevelIdx = appendButton("", startX, levelY, btnW, btnH)
	sd.btnDebugIdx = appendButton("", startX+btnW+spacingX, levelY, btnW, btnH)
	// sprite directory
	browseY := levelY + btnH + spacingY
	browseW := btnW*2 + spacingX
	sd.btnBrowseIdx = appendButton(filepath.Base(conf.AssetsDir), startX, browseY, browseW, btnH)
	// apply
	applyW, applyH := 160, 56
	applyX := conf.WindowW - applyW - 60
	applyY := conf.WindowH - applyH - 60
	sd.btnApplyIdx = appendButton("", applyX, applyY, applyW, applyH)
	// back
	backX := conf.WindowW - applyW - 240
	sd.btnBackIdx = appendButton("", backX, applyY, applyW, applyH)

	sd.refreshButtons(ctx)
	sd.msg = &ghelper.MessageBox{}
	return sd
}

func (sd *GUISettingsDrawer) Update(ctx *gctx.GUIGameContext) (SceneType, error) {
	conf := ctx.ConfigWorker.Config

	// mouse handling
	mx, my := ebiten.CursorPosition()
	mouseDown := ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft)
	justClicked := mouseDown && !sd.prevMouseDown
	justReleased := !mouseDown && sd.prevMouseDown
	sd.prevMouseDown = mouseDown

	now := time.Now()
	dt := now.Sub(sd.lastTick).Seconds()
	sd.lastTick = now

	// finished directory dialog, if any
	select {
	case dir := <-sd.browseCh:
		sd.applyBrowseResult(ctx, dir)
	default:
	}

	// if message box open -> handle clicks on it
	if sd.msg.Open {
		if justClicked {
			bounds := text.BoundString(ctx.AssetsWorker.Fonts().Normal, sd.msg.Text)
			sd.msg.CollapseMessageInRect(conf.WindowW, conf.WindowH, bounds.Dx(), bounds.Dy())
		}
		sd.msg.AnimateMessage()
		return SceneNotChanged, nil
	}

	// HandleInput + UpdateAnim
	for i, b := range sd.buttons {
		clicked := b.HandleInput(mx, my, justClicked, justReleased)
		b.UpdateAnim(dt)
		if clicked {
			switch i {
			case sd.btnLangEnIdx:
				if err := ctx.AssetsWorker.Lang().SetLang("en"); err == nil {
					conf.Lang = "en"
				} else {
					ctx.Logx.Errorf("error switch lang: %v", err)
				}
			case sd.btnLangRuIdx:
				if err := ctx.AssetsWorker.Lang().SetLang("ru"); err == nil {
					conf.Lang = "ru"
				} else {
					ctx.Logx.Errorf("error switch lang: %v", err)
				}
			case sd.btnThemeLightIdx:
				ctx.Theme = gbase.LightPalette
				conf.Theme = ctx.Theme.String()
			case sd.btnThemeDarkIdx:
				ctx.Theme = gbase.DarkPalette
				conf.Theme = ctx.Theme.String()
			case sd.btnColorWhiteIdx:
				conf.HumanColor = "white"
			case sd.btnColorBlackIdx:
				conf.HumanColor = "black"
			case sd.btnMinimaxIdx:
				conf.Selector = "minimax"
			case sd.btnRandomIdx:
				conf.Selector = "random"
			case sd.btnLevelIdx:
				conf.Level++
				if conf.Level > int(engine.LevelFive) {
					conf.Level = int(engine.LevelOne)
				}
			case sd.btnBrowseIdx:
				if !sd.browseActive {
					sd.browseActive = true
					b.Label = ctx.AssetsWorker.Lang().T("settings.sprites.selecting")
					title := ctx.AssetsWorker.Lang().T("settings.sprites.title")

					// the goroutine only runs the dialog; every
					// mutation happens back in Update via browseCh
					go func() {
						dir, err := gdialog.ChooseDirectory(title)
						if err != nil {
							ctx.Logx.Errorf("error dialog: %v", err)
							dir = ""
						}
						sd.browseCh <- dir
					}()
				}
			case sd.btnDebugIdx:
				conf.Debug = !conf.Debug
			case sd.btnApplyIdx:
				if err := ctx.ConfigWorker.Save(); err != nil {
					ctx.Logx.Errorf("error save config: %v", err)
					sd.msg.ShowMessage(ctx.AssetsWorker.Lang().T("settings.save.failed"), nil)
				} else {
					sd.msg.ShowMessage(ctx.AssetsWorker.Lang().T("settings.save.success"), nil)
				}
			case sd.btnBackIdx:
				if !sd.browseActive {
					return SceneMenu, nil
				}
				sd.msg.ShowMessage(ctx.AssetsWorker.Lang().T("settings.sprites.selecting.active"), nil)
				return SceneNotChanged, nil
			}
			sd.refreshButtons(ctx)
		}
	}

	// escape -> back to menu
	if ebiten.IsKeyPressed(ebiten.KeyEscape) {
		if !sd.browseActive {
			return SceneMenu, nil
		}
		sd.msg.ShowMessage(ctx.AssetsWorker.Lang().T("settings.sprites.selecting.active"), nil)
		return SceneNotChanged, nil
	}

	return SceneNotChanged, nil
}

// applyBrowseResult consumes a finished directory dialog on the
// update goroutine. An empty dir means cancelled or failed.
func (sd *GUISettingsDrawer) applyBrowseResult(ctx *gctx.GUIGameContext, dir string) {
	conf := ctx.ConfigWorker.Config
	sd.browseActive = false
	sd.buttons[sd.btnBrowseIdx].Label = filepath.Base(conf.AssetsDir)
	if dir == "" {
		return
	}
	if err := ctx.AssetsWorker.ReloadPieces(dir); err != nil {
		ctx.Logx.Errorf("bad sprite directory %s: %v", dir, err)
		sd.msg.ShowMessage(ctx.AssetsWorker.Lang().T("settings.sprites.failed"), nil)
		return
	}
	conf.AssetsDir = dir
	sd.buttons[sd.btnBrowseIdx].Label = filepath.Base(dir)
}

func (sd *GUISettingsDrawer) Draw(ctx *gctx.GUIGameContext, screen *ebiten.Image) {
	conf := ctx.ConfigWorker.Config

	// background
	screen.Fill(ctx.Theme.Bg)

	// titles
	titlesX := 40
	titlesY := 60
	spacingY := 74
	lang := ctx.AssetsWorker.Lang()
	fonts := ctx.AssetsWorker.Fonts()
	text.Draw(screen, lang.T("settings.title"), fonts.Bold, titlesX, titlesY, ctx.Theme.MenuText)
	text.Draw(screen, lang.T("settings.lang"), fonts.Normal, titlesX+20, titlesY+spacingY, ctx.Theme.MenuText)
	text.Draw(screen, lang.T("settings.theme"), fonts.Normal, titlesX+20, titlesY+2*spacingY, ctx.Theme.MenuText)
	text.Draw(screen, lang.T("settings.color"), fonts.Normal, titlesX+20, titlesY+3*spacingY, ctx.Theme.MenuText)
	text.Draw(screen, lang.T("settings.opponent"), fonts.Normal, titlesX+20, titlesY+4*spacingY, ctx.Theme.MenuText)
	text.Draw(screen, lang.T("settings.level"), fonts.Normal, titlesX+20, titlesY+5*spacingY, ctx.Theme.MenuText)
	text.Draw(screen, lang.T("settings.sprites"), fonts.Normal, titlesX+20, titlesY+6*spacingY, ctx.Theme.MenuText)

	// draw buttons
	for _, b := range sd.buttons {
		b.DrawAnimated(screen, fonts.Normal, ctx.Theme)
	}

	// if message box open -> draw overlay and modal
	if sd.msg.Open || sd.msg.Animating {
		DrawModal(ctx, sd.msg.Scale, sd.msg.Text, screen)
	}

	// debug TPS
	if conf.Debug {
		ebitenutil.DebugPrint(screen, fmt.Sprintf("TPS: %0.2f", ebiten.ActualTPS()))
	}
}

// update accent buttons
func (sd *GUISettingsDrawer) refreshButtons(ctx *gctx.GUIGameContext) {
	conf := ctx.ConfigWorker.Config
	lang := ctx.AssetsWorker.Lang()
	stroke := ctx.Theme.ButtonStroke
	for i, b := range sd.buttons {
		fill := ctx.Theme.ButtonFill
		switch i {
		case sd.btnLangEnIdx:
			b.Label = lang.T("settings.lang.en")
			if lang.Lang() == "en" {
				fill = ctx.Theme.Accent
			}
		case sd.btnLangRuIdx:
			b.Label = lang.T("settings.lang.ru")
			if lang.Lang() == "ru" {
				fill = ctx.Theme.Accent
			}
		case sd.btnThemeLightIdx:
			b.Label = lang.T("settings.theme.light")
			if ctx.Theme == gbase.LightPalette {
				fill = ctx.Theme.Accent
			}
		case sd.btnThemeDarkIdx:
			b.Label = lang.T("settings.theme.dark")
			if ctx.Theme == gbase.DarkPalette {
				fill = ctx.Theme.Accent
			}
		case sd.btnColorWhiteIdx:
			b.Label = lang.T("settings.color.white")
			if conf.HumanColor == "white" {
				fill = ctx.Theme.Accent
			}
		case sd.btnColorBlackIdx:
			b.Label = lang.T("settings.color.black")
			if conf.HumanColor == "black" {
				fill = ctx.Theme.Accent
			}
		case sd.btnMinimaxIdx:
			b.Label = lang.T("settings.opponent.minimax")
			if conf.Selector == "minimax" {
				fill = ctx.Theme.Accent
			}
		case sd.btnRandomIdx:
			b.Label = lang.T("settings.opponent.random")
			if conf.Selector == "random" {
				fill = ctx.Theme.Accent
			}
		case sd.btnLevelIdx:
			b.Label = fmt.Sprintf("%s %d", lang.T("settings.level.prefix"), conf.Level)
		case sd.btnDebugIdx:
			if conf.Debug {
				b.Label = lang.T("settings.debug.on")
				fill = ctx.Theme.Accent
			} else {
				b.Label = lang.T("settings.debug.off")
			}
		case sd.btnBackIdx:
			b.Label = lang.T("button.back")
		case sd.btnApplyIdx:
			b.Label = lang.T("button.save")
		}
		b.Image = ghelper.RenderRoundedRect(b.W, b.H, 12, fill, stroke, 3)
	}
}
