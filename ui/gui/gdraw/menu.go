package gdraw

import (
	"fmt"
	"math"
	"time"

	"clickchess/ui/gui/gbase"
	"clickchess/ui/gui/gctx"
	"clickchess/ui/gui/ghelper"

	"github.com/corentings/chess/v2"
	"github.com/fogleman/gg"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/text"
)

type GUIMenuDrawer struct {
	buttons     []*ghelper.Button
	idxPlay     int
	idxSettings int
	idxExit     int

	// messagebox
	msg ghelper.MessageBox

	// language selector square bottom-left
	langBoxX, langBoxY, langBoxS int

	// about selector square bottom-left
	aboutBoxX, aboutBoxY, aboutBoxS int

	// click tracking
	prevMouseDown bool

	// bobbing king over the play button
	kingImg         *ebiten.Image
	kingScale       int
	kingElapsed     float64
	kingBaseOffsetY float64
	shadowImg       *ebiten.Image

	prevTime time.Time
}

func NewGUIMenuDrawer(ctx *gctx.GUIGameContext) *GUIMenuDrawer {
	md := &GUIMenuDrawer{}
	md.prevTime = time.Now()
	md.makeLayout(ctx)
	md.initKing(ctx.AssetsWorker.Piece(chess.WhiteKing), 2)
	return md
}

func (md *GUIMenuDrawer) Update(ctx *gctx.GUIGameContext) (SceneType, error) {
	mx, my := ebiten.CursorPosition()
	mouseDown := ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft)
	justClicked := mouseDown && !md.prevMouseDown
	justReleased := !mouseDown && md.prevMouseDown
	md.prevMouseDown = mouseDown

	now := time.Now()
	dt := now.Sub(md.prevTime).Seconds()
	md.prevTime = now

	// if message box open -> handle clicks on it
	if md.msg.Open {
		if justClicked {
			bounds := text.BoundString(ctx.AssetsWorker.Fonts().Normal, md.msg.Text)
			conf := ctx.ConfigWorker.Config
			md.msg.CollapseMessageInRect(conf.WindowW, conf.WindowH, bounds.Dx(), bounds.Dy())
		}
		md.msg.AnimateMessage()
		return SceneNotChanged, nil
	}

	// handle clicks on menu buttons
	for i, b := range md.buttons {
		clicked := b.HandleInput(mx, my, justClicked, justReleased)
		b.UpdateAnim(dt)
		if clicked {
			ctx.Logx.Infof("%s clicked", b.Label)
			switch i {
			case md.idxPlay:
				return ScenePlay, nil
			case md.idxSettings:
				return SceneSettings, nil
			case md.idxExit:
				return SceneNotChanged, gbase.ErrExit
			}
			return SceneNotChanged, nil
		}
	}

	if justClicked {
		// language box click
		if ghelper.PointInRect(mx, my, md.langBoxX, md.langBoxY, md.langBoxS, md.langBoxS) {
			next := "en"
			if ctx.AssetsWorker.Lang().Lang() == "en" {
				next = "ru"
			}
			if err := ctx.AssetsWorker.Lang().SetLang(next); err != nil {
				ctx.Logx.Errorf("error switch lang: %v", err)
			} else {
				ctx.ConfigWorker.Config.Lang = next
				md.refreshButtons(ctx)
			}
			return SceneNotChanged, nil
		}
		if ghelper.PointInRect(mx, my, md.aboutBoxX, md.aboutBoxY, md.aboutBoxS, md.aboutBoxS) {
			md.msg.ShowMessage(ctx.AssetsWorker.Lang().T("about.body"), nil)
			return SceneNotChanged, nil
		}
	}

	md.kingElapsed += dt

	return SceneNotChanged, nil
}

func (md *GUIMenuDrawer) Draw(ctx *gctx.GUIGameContext, screen *ebiten.Image) {
	screen.Fill(ctx.Theme.Bg)

	for _, b := range md.buttons {
		b.DrawAnimated(screen, ctx.AssetsWorker.Fonts().Bold, ctx.Theme)
	}
	md.drawBoxes(ctx, screen)

	// if message box open -> draw overlay and modal
	if md.msg.Open || md.msg.Animating {
		DrawModal(ctx, md.msg.Scale, md.msg.Text, screen)
	}

	md.drawKing(screen)

	// debug overlay
	if ctx.ConfigWorker.Config.Debug {
		ebitenutil.DebugPrint(screen, fmt.Sprintf("TPS: %0.2f", ebiten.ActualTPS()))
	}
}

func (md *GUIMenuDrawer) makeLayout(ctx *gctx.GUIGameContext) {
	conf := ctx.ConfigWorker.Config

	// center buttons vertically
	btnW, btnH := 320, 64
	gap := 18
	labels := []string{
		ctx.AssetsWorker.Lang().T("menu.play"),
		ctx.AssetsWorker.Lang().T("menu.settings"),
		ctx.AssetsWorker.Lang().T("menu.exit"),
	}
	n := len(labels)
	totalH := n*btnH + (n-1)*gap
	startY := (conf.WindowH - totalH) / 2
	cx := conf.WindowW / 2
	md.buttons = []*ghelper.Button{}
	for i, lab := range labels {
		x := cx - btnW/2
		y := startY + i*(btnH+gap)
		b := &ghelper.Button{
			Label: lab,
			X:     x, Y: y, W: btnW, H: btnH,
		}

		b.Scale = 1.0
		b.TargetScale = 1.0
		b.OffsetY = 0
		b.TargetOffsetY = 0
		b.AnimSpeed = 10.0

		// pre-render button image
		b.Image = ghelper.RenderRoundedRect(
			btnW, btnH, 16,
			ctx.Theme.ButtonFill,
			ctx.Theme.ButtonStroke,
			3,
		)
		md.buttons = append(md.buttons, b)
	}
	md.idxPlay, md.idxSettings, md.idxExit = 0, 1, 2

	// language box bottom-left
	md.langBoxS = 56
	md.langBoxX = 20
	md.langBoxY = conf.WindowH - md.langBoxS - 20

	// about box next to it
	md.aboutBoxS = md.langBoxS
	md.aboutBoxX = md.langBoxX + 70
	md.aboutBoxY = conf.WindowH - md.aboutBoxS - 20
}

func (md *GUIMenuDrawer) refreshButtons(ctx *gctx.GUIGameContext) {
	labels := []string{
		ctx.AssetsWorker.Lang().T("menu.play"),
		ctx.AssetsWorker.Lang().T("menu.settings"),
		ctx.AssetsWorker.Lang().T("menu.exit"),
	}
	for i := range md.buttons {
		md.buttons[i].Label = labels[i]

		md.buttons[i].Image = ghelper.RenderRoundedRect(
			md.buttons[i].W, md.buttons[i].H,
			16,
			ctx.Theme.ButtonFill,
			ctx.Theme.ButtonStroke,
			3,
		)
	}
}

func (md *GUIMenuDrawer) initKing(img *ebiten.Image, scale int) {
	md.kingImg = img
	md.kingScale = scale
	md.kingBaseOffsetY = -100.0
	md.shadowImg = nil // first render Draw
	md.kingElapsed = 0
}

func (md *GUIMenuDrawer) drawBoxes(ctx *gctx.GUIGameContext, screen *ebiten.Image) {
	conf := ctx.ConfigWorker.Config

	// language box bottom-left (square)
	langImg := ghelper.RenderRoundedRect(md.langBoxS, md.langBoxS, 8, ctx.Theme.ButtonFill, ctx.Theme.ButtonStroke, 2)
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Translate(float64(md.langBoxX), float64(md.langBoxY))
	op.Filter = ebiten.FilterNearest
	screen.DrawImage(langImg, op)
	text.Draw(screen, ctx.AssetsWorker.Lang().T("lang.type"), ctx.AssetsWorker.Fonts().Normal, md.langBoxX+16, md.langBoxY+md.langBoxS/2+4, ctx.Theme.ButtonText)

	// about box
	aboutImg := ghelper.RenderRoundedRect(md.aboutBoxS, md.aboutBoxS, 8, ctx.Theme.ButtonFill, ctx.Theme.ButtonStroke, 2)
	op = &ebiten.DrawImageOptions{}
	op.GeoM.Translate(float64(md.aboutBoxX), float64(md.aboutBoxY))
	op.Filter = ebiten.FilterNearest
	screen.DrawImage(aboutImg, op)
	text.Draw(screen, ctx.AssetsWorker.Lang().T("about.title"), ctx.AssetsWorker.Fonts().Normal, md.aboutBoxX+16, md.aboutBoxY+md.aboutBoxS/2+4, ctx.Theme.ButtonText)

	// version on bottom-right
	ver := ctx.AssetsWorker.Lang().T("version")
	text.Draw(screen, ver, ctx.AssetsWorker.Fonts().Normal, conf.WindowW-160, conf.WindowH-24, ctx.Theme.MenuText)
}

func (md *GUIMenuDrawer) drawKing(screen *ebiten.Image) {
	if md.kingImg == nil || len(md.buttons) == 0 {
		return
	}

	play := md.buttons[md.idxPlay]
	centerX := float64(play.X + play.W/2)
	topY := float64(play.Y)

	// bobbing params
	freq := 1.0
	amp := 10.0
	slowAmp := 2.0
	rotFreq := 0.8
	rotAmpDeg := 6.0

	dy := math.Sin(2*math.Pi*freq*md.kingElapsed)*amp + math.Sin(2*math.Pi*0.15*md.kingElapsed)*slowAmp
	rot := math.Sin(2*math.Pi*rotFreq*md.kingElapsed) * (rotAmpDeg * math.Pi / 180.0)

	w := md.kingImg.Bounds().Dx()
	h := md.kingImg.Bounds().Dy()
	finalX := centerX
	finalY := topY - (float64(h)*float64(md.kingScale))/2.0 + md.kingBaseOffsetY + dy

	// shadow
	if md.shadowImg == nil {
		sw := int(float64(w*md.kingScale) * 1.6)
		sh := int(float64(h*md.kingScale) * 0.5)
		if sw < 4 {
			sw = 4
		}
		if sh < 2 {
			sh = 2
		}
		dc := gg.NewContext(sw, sh)
		for i := 0; i < 8; i++ {
			alpha := 0.18 * (1.0 - float64(i)/8.0)
			dc.SetRGBA(0, 0, 0, alpha)
			pad := float64(i)
			dc.DrawEllipse(float64(sw)/2, float64(sh)/2+pad*0.2, float64(sw)/2-pad, float64(sh)/2-pad*0.6)
			dc.Fill()
		}
		md.shadowImg = ebiten.NewImageFromImage(dc.Image())
	}

	// draw shadow (scale & alpha vary with height)
	maxRange := amp + slowAmp
	heightFactor := (dy + maxRange) / (2 * maxRange) // 0..1
	shadowScale := 0.7 + (1.0-heightFactor)*0.25
	sW := float64(md.shadowImg.Bounds().Dx()) * shadowScale
	sH := float64(md.shadowImg.Bounds().Dy()) * shadowScale
	sop := &ebiten.DrawImageOptions{}
	sop.GeoM.Scale(sW/float64(md.shadowImg.Bounds().Dx()), sH/float64(md.shadowImg.Bounds().Dy()))
	shadowY := (topY + float64(play.H)) - (sH * 0.6) - 120
	sop.GeoM.Translate(finalX-sW/2.0, shadowY)
	sop.Filter = ebiten.FilterLinear
	screen.DrawImage(md.shadowImg, sop)

	// draw the king
	op := &ebiten.DrawImageOptions{}
	op.Filter = ebiten.FilterNearest
	op.GeoM.Translate(-float64(w)/2.0, -float64(h)/2.0)
	op.GeoM.Scale(float64(md.kingScale), float64(md.kingScale))
	op.GeoM.Rotate(rot)
	op.GeoM.Translate(finalX, finalY)
	screen.DrawImage(md.kingImg, op)
}
