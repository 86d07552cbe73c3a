package gdraw

import (
	"fmt"
	"time"

	"clickchess/src"
	"clickchess/src/base"
	"clickchess/src/engine"
	"clickchess/src/engine/minimax"
	"clickchess/src/engine/random"
	"clickchess/ui/gui/gbase/gconf"
	"clickchess/ui/gui/gctx"
	"clickchess/ui/gui/ghelper"

	"github.com/corentings/chess/v2"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/text"
)

// GUIPlayDrawer is the play scene: board, click handling, the
// automated reply and the game-over banner.
type GUIPlayDrawer struct {
	// layout
	boardX, boardY int // top-left pixel
	boardSize      int // pixel size (square*8)
	sqSize         int // pixel size per square

	// interaction
	selectedSq chess.Square
	targets    []chess.Square

	// flip board (black human looks from the black side)
	flipped bool

	// buttons
	buttons    []*ghelper.Button
	idxNewGame int
	idxUndo    int
	idxBack    int

	// pre-rendered destination dot
	targetImg *ebiten.Image

	// message box reuse
	msg *ghelper.MessageBox

	prevMouseDown bool
	prevKeyR      bool
	prevKeyZ      bool
	lastTick      time.Time
}

func NewGUIPlayDrawer(ctx *gctx.GUIGameContext) *GUIPlayDrawer {
	pd := &GUIPlayDrawer{
		selectedSq: chess.NoSquare,
		lastTick:   time.Now(),
	}

	conf := ctx.ConfigWorker.Config
	if ctx.Builder == nil {
		ctx.Builder = src.NewBuilderBoard(ctx.Logx)
	}
	if ctx.Builder.Status() == base.InvalidGame {
		bindFromConfig(ctx.Builder, conf)
		ctx.Builder.CreateClassic()
	}
	pd.flipped = !ctx.Builder.HumanIsWhite()

	pd.recalcLayout(ctx)
	pd.makeLayoutButtons(ctx)
	pd.msg = &ghelper.MessageBox{}
	return pd
}

func selectorFromConfig(name string, level int) engine.Selector {
	if name == "random" {
		return random.New()
	}
	return minimax.New(engine.LevelFromInt(level))
}

// bindFromConfig pushes the configured human color and selector onto
// the builder. Runs at first launch and on every reset, so settings
// changes take effect with the next game rather than the next process.
func bindFromConfig(b *src.GameBuilder, conf *gconf.Config) {
	b.SetHumanWhite(conf.HumanColor == "white")
	b.SetSelector(selectorFromConfig(conf.Selector, conf.Level))
}

// using boardX/Y/size
func (pd *GUIPlayDrawer) recalcLayout(ctx *gctx.GUIGameContext) {
	conf := ctx.ConfigWorker.Config
	ww := conf.WindowW
	wh := conf.WindowH

	maxSize := ww - 400
	if maxSize > wh-120 {
		maxSize = wh - 120
	}
	if maxSize < 320 {
		maxSize = 320
	}
	pd.boardSize = maxSize
	pd.sqSize = pd.boardSize / 8
	pd.boardX = (ww - pd.boardSize) / 2
	pd.boardY = (wh-pd.boardSize)/2 - 20

	d := pd.sqSize / 3
	if d < 8 {
		d = 8
	}
	pd.targetImg = ghelper.RenderCircle(d, ctx.Theme.BoardTarget)
}

func (pd *GUIPlayDrawer) makeLayoutButtons(ctx *gctx.GUIGameContext) {
	pd.buttons = []*ghelper.Button{}

	addBtn := func(label string, x, y, w, h int) int {
		img := ghelper.RenderRoundedRect(w, h, 12, ctx.Theme.ButtonFill, ctx.Theme.ButtonStroke, 3)
		b := &ghelper.Button{
			Label: label,
			X:     x, Y: y, W: w, H: h,
			Image: img,
			Scale: 1.0, TargetScale: 1.0, OffsetY: 0, TargetOffsetY: 0, AnimSpeed: 10.0,
		}
		idx := len(pd.buttons)
		pd.buttons = append(pd.buttons, b)
		return idx
	}

	x := pd.boardX - 200
	if x < 20 {
		x = 20
	}
	y := pd.boardY + 160
	w, h := 160, 48
	pd.idxNewGame = addBtn(ctx.AssetsWorker.Lang().T("play.newgame"), x, y, w, h)
	y += h + 14
	pd.idxUndo = addBtn(ctx.AssetsWorker.Lang().T("play.undo"), x, y, w, h)
	y += h + 14
	pd.idxBack = addBtn(ctx.AssetsWorker.Lang().T("button.back"), x, y, w, h)
}

// Update
func (pd *GUIPlayDrawer) Update(ctx *gctx.GUIGameContext) (SceneType, error) {
	pd.recalcLayout(ctx)

	now := time.Now()
	dt := now.Sub(pd.lastTick).Seconds()
	pd.lastTick = now

	// Input edges
	mx, my := ebiten.CursorPosition()
	mouseDown := ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft)
	justPressed := mouseDown && !pd.prevMouseDown
	justReleased := !mouseDown && pd.prevMouseDown
	pd.prevMouseDown = mouseDown

	keyR := ebiten.IsKeyPressed(ebiten.KeyR)
	keyZ := ebiten.IsKeyPressed(ebiten.KeyZ)
	resetPressed := keyR && !pd.prevKeyR
	undoPressed := keyZ && !pd.prevKeyZ
	pd.prevKeyR = keyR
	pd.prevKeyZ = keyZ

	// if message box open -> it swallows all input
	if pd.msg.Open {
		if justPressed {
			bounds := text.BoundString(ctx.AssetsWorker.Fonts().Normal, pd.msg.Text)
			conf := ctx.ConfigWorker.Config
			pd.msg.CollapseMessageInRect(conf.WindowW, conf.WindowH, bounds.Dx(), bounds.Dy())
		}
		pd.msg.AnimateMessage()
		return SceneNotChanged, nil
	}

	// Keyboard: R resets, Z undoes
	if resetPressed {
		pd.resetGame(ctx)
	}
	if undoPressed {
		ctx.Builder.Undo()
		pd.clearSelection()
	}

	// Buttons handling
	for i, b := range pd.buttons {
		clicked := b.HandleInput(mx, my, justPressed, justReleased)
		b.UpdateAnim(dt)
		if clicked {
			switch i {
			case pd.idxNewGame:
				pd.resetGame(ctx)
			case pd.idxUndo:
				ctx.Builder.Undo()
				pd.clearSelection()
			case pd.idxBack:
				return SceneMenu, nil
			}
			return SceneNotChanged, nil
		}
	}

	// Board interaction: click to select, click to move
	if justReleased {
		pd.boardClick(ctx, mx, my)
	}

	return SceneNotChanged, nil
}

// boardClick routes a released click. Clicks outside the board are
// ignored and the selection survives them; clicks inside feed the
// selection state machine while it is the human's turn.
func (pd *GUIPlayDrawer) boardClick(ctx *gctx.GUIGameContext, mx, my int) {
	if !inBoard(mx, my, pd.boardX, pd.boardY, pd.sqSize) {
		return
	}
	if !ctx.Builder.HumanTurn() || ctx.Builder.Status().Terminal() {
		return
	}
	sq := pixelToSquare(mx, my, pd.boardX, pd.boardY, pd.sqSize, pd.flipped)
	pd.handleClick(ctx, sq)
}

// handleClick runs the selection state machine for one board click.
func (pd *GUIPlayDrawer) handleClick(ctx *gctx.GUIGameContext, sq chess.Square) {
	b := ctx.Builder

	if pd.selectedSq == chess.NoSquare {
		// select own piece, ignore anything else
		if b.OwnPieceAt(sq) {
			pd.selectedSq = sq
			pd.targets = b.LegalTargets(sq)
		}
		return
	}
	if sq == pd.selectedSq {
		pd.clearSelection()
		return
	}
	if containsSquare(pd.targets, sq) {
		from := pd.selectedSq
		pd.clearSelection()
		if _, err := b.HumanMove(from, sq); err != nil {
			ctx.Logx.Errorf("error move %s%s: %v", from, sq, err)
			return
		}
		// automated reply, same update
		if !b.Status().Terminal() && !b.HumanTurn() {
			if _, err := b.EngineReply(); err != nil {
				ctx.Logx.Errorf("error engine reply: %v", err)
			}
		}
		return
	}
	if b.OwnPieceAt(sq) {
		// re-select another own piece
		pd.selectedSq = sq
		pd.targets = b.LegalTargets(sq)
		return
	}
	pd.clearSelection()
}

func (pd *GUIPlayDrawer) clearSelection() {
	pd.selectedSq = chess.NoSquare
	pd.targets = nil
}

func (pd *GUIPlayDrawer) resetGame(ctx *gctx.GUIGameContext) {
	bindFromConfig(ctx.Builder, ctx.ConfigWorker.Config)
	ctx.Builder.Reset()
	pd.clearSelection()
	pd.flipped = !ctx.Builder.HumanIsWhite()
}

// Draw
func (pd *GUIPlayDrawer) Draw(ctx *gctx.GUIGameContext, screen *ebiten.Image) {
	conf := ctx.ConfigWorker.Config

	// background
	screen.Fill(ctx.Theme.Bg)

	// board border
	borderImg := ghelper.RenderRoundedRect(pd.boardSize+8, pd.boardSize+8, 6, ctx.Theme.ButtonFill, ctx.Theme.ButtonStroke, 2)
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Translate(float64(pd.boardX-4), float64(pd.boardY-4))
	screen.DrawImage(borderImg, op)

	// squares
	for row := 0; row < 8; row++ {
		for col := 0; col < 8; col++ {
			sx := pd.boardX + col*pd.sqSize
			sy := pd.boardY + row*pd.sqSize
			sqCol := ctx.Theme.BoardDark
			if ((col + row) & 1) == 0 {
				sqCol = ctx.Theme.BoardLight
			}
			ghelper.EbitenutilDrawRect(screen, float64(sx), float64(sy), float64(pd.sqSize), float64(pd.sqSize), sqCol)
		}
	}

	// selection highlight under the pieces
	if pd.selectedSq != chess.NoSquare {
		sx, sy := squareToPixel(pd.selectedSq, pd.boardX, pd.boardY, pd.sqSize, pd.flipped)
		ghelper.EbitenutilDrawRect(screen, float64(sx), float64(sy), float64(pd.sqSize), float64(pd.sqSize), ctx.Theme.BoardSelected)
	}

	// pieces
	for sq := chess.A1; sq <= chess.H8; sq++ {
		piece := ctx.Builder.PieceAt(sq)
		if piece == chess.NoPiece {
			continue
		}
		px, py := squareToPixel(sq, pd.boardX, pd.boardY, pd.sqSize, pd.flipped)

		img := ctx.AssetsWorker.Piece(piece)
		if img != nil {
			iw := img.Bounds().Dx()
			scale := float64(pd.sqSize) / float64(iw)
			op3 := &ebiten.DrawImageOptions{}
			op3.GeoM.Scale(scale, scale)
			op3.GeoM.Translate(float64(px), float64(py))
			op3.Filter = ebiten.FilterLinear
			screen.DrawImage(img, op3)
		}
	}

	// legal-destination markers on top
	if pd.selectedSq != chess.NoSquare {
		d := pd.targetImg.Bounds().Dx()
		for _, sq := range pd.targets {
			px, py := squareToPixel(sq, pd.boardX, pd.boardY, pd.sqSize, pd.flipped)
			op4 := &ebiten.DrawImageOptions{}
			op4.GeoM.Translate(float64(px+(pd.sqSize-d)/2), float64(py+(pd.sqSize-d)/2))
			screen.DrawImage(pd.targetImg, op4)
		}
	}

	pd.drawStatusLine(ctx, screen)

	// selector label near top-right corner of board
	if sel := ctx.Builder.Selector(); sel != nil {
		label := fmt.Sprintf("%s %d", sel.Name(), conf.Level)
		bounds := text.BoundString(ctx.AssetsWorker.Fonts().Small, label)
		text.Draw(screen, label, ctx.AssetsWorker.Fonts().Small, pd.boardX+pd.boardSize-bounds.Dx()-8, pd.boardY-8, ctx.Theme.MenuText)
	}

	// moves line under the board
	if moves := ctx.Builder.MovesText(); moves != "" {
		text.Draw(screen, moves, ctx.AssetsWorker.Fonts().Small, pd.boardX, pd.boardY+pd.boardSize+24, ctx.Theme.MenuText)
	}

	// UI buttons
	for _, b := range pd.buttons {
		b.DrawAnimated(screen, ctx.AssetsWorker.Fonts().Normal, ctx.Theme)
	}

	// game-over banner
	if ctx.Builder.Status().Terminal() {
		pd.drawGameOver(ctx, screen)
	}

	// message box if open
	if pd.msg.Open || pd.msg.Animating {
		DrawModal(ctx, pd.msg.Scale, pd.msg.Text, screen)
	}

	if conf.Debug {
		ebitenutil.DebugPrint(screen, fmt.Sprintf("TPS: %0.2f", ebiten.ActualTPS()))
	}
}

func (pd *GUIPlayDrawer) drawStatusLine(ctx *gctx.GUIGameContext, screen *ebiten.Image) {
	lang := ctx.AssetsWorker.Lang()

	turn := lang.T("play.black_to_move")
	if ctx.Builder.IsWhiteToMove() {
		turn = lang.T("play.white_to_move")
	}
	text.Draw(screen, turn, ctx.AssetsWorker.Fonts().Normal, pd.boardX+8, pd.boardY-8, ctx.Theme.MenuText)

	if ctx.Builder.Status() == base.Check {
		bounds := text.BoundString(ctx.AssetsWorker.Fonts().Normal, turn)
		text.Draw(screen, lang.T("play.check"), ctx.AssetsWorker.Fonts().Bold, pd.boardX+16+bounds.Dx(), pd.boardY-8, ctx.Theme.Danger)
	}
}

func (pd *GUIPlayDrawer) drawGameOver(ctx *gctx.GUIGameContext, screen *ebiten.Image) {
	conf := ctx.ConfigWorker.Config
	lang := ctx.AssetsWorker.Lang()

	var key, score string
	switch ctx.Builder.Status() {
	case base.Checkmate:
		key = "play.gameover.checkmate"
		// the side to move is the mated side
		if ctx.Builder.IsWhiteToMove() {
			score = "0-1"
		} else {
			score = "1-0"
		}
	case base.Stalemate:
		key = "play.gameover.stalemate"
		score = "1/2-1/2"
	default:
		key = "play.gameover.draw"
		score = "1/2-1/2"
	}
	msg := fmt.Sprintf("%s  %s", lang.T(key), score)

	overlay := ebiten.NewImage(conf.WindowW, conf.WindowH)
	overlay.Fill(ctx.Theme.ModalBg)
	screen.DrawImage(overlay, nil)

	bounds := text.BoundString(ctx.AssetsWorker.Fonts().Title, msg)
	tx := (conf.WindowW - bounds.Dx()) / 2
	ty := (conf.WindowH) / 2
	text.Draw(screen, msg, ctx.AssetsWorker.Fonts().Title, tx, ty, ctx.Theme.ButtonFill)

	hint := lang.T("play.gameover.hint")
	hb := text.BoundString(ctx.AssetsWorker.Fonts().Normal, hint)
	text.Draw(screen, hint, ctx.AssetsWorker.Fonts().Normal, (conf.WindowW-hb.Dx())/2, ty+40, ctx.Theme.ButtonFill)
}
