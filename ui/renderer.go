package ui

import (
	"fmt"
	"os"
	"path/filepath"

	rl "github.com/gen2brain/raylib-go/raylib"
	"go.uber.org/zap"

	"snaker/config"
	"snaker/game"
	"snaker/game/types"
	"snaker/ui/layout"
)

var (
	gold   = rl.Color{R: 255, G: 215, B: 0, A: 255}
	silver = rl.Color{R: 192, G: 192, B: 192, A: 255}
	bronze = rl.Color{R: 205, G: 127, B: 50, A: 255}
	orange = rl.Color{R: 255, G: 140, B: 0, A: 255}
)

type sprites struct {
	background rl.Texture2D
	head       rl.Texture2D
	body       rl.Texture2D
	food       rl.Texture2D
}

// Renderer draws the game into a raylib window. It must be created after
// rl.InitWindow and used from the window's thread.
type Renderer struct {
	cfg          *config.Config
	log          *zap.Logger
	cellSize     int32
	screenWidth  int32
	screenHeight int32
	dialog       layout.Dialog
	sprites      sprites
}

func NewRenderer(cfg *config.Config, log *zap.Logger) *Renderer {
	r := &Renderer{
		cfg:          cfg,
		log:          log,
		cellSize:     int32(cfg.Window.GridSize),
		screenWidth:  int32(cfg.Window.Width),
		screenHeight: int32(cfg.Window.Height),
		dialog:       layout.NewDialog(cfg.Window.Width, cfg.Window.Height, cfg.UI.Dialog),
	}
	r.loadSprites()
	return r
}

// loadSprites loads the optional images. Anything missing is drawn with
// plain shapes instead.
func (r *Renderer) loadSprites() {
	dir := r.cfg.Resources.Directory
	r.sprites = sprites{
		background: r.loadTexture(filepath.Join(dir, "background.png")),
		head:       r.loadTexture(filepath.Join(dir, "snake_head.png")),
		body:       r.loadTexture(filepath.Join(dir, "snake_body.png")),
		food:       r.loadTexture(filepath.Join(dir, "food.png")),
	}
}

func (r *Renderer) loadTexture(path string) rl.Texture2D {
	if _, err := os.Stat(path); err != nil {
		r.log.Debug("sprite not found, using shapes", zap.String("path", path))
		return rl.Texture2D{}
	}
	tex := rl.LoadTexture(path)
	if tex.ID == 0 {
		r.log.Warn("failed to load sprite, using shapes", zap.String("path", path))
	}
	return tex
}

// Close releases the textures.
func (r *Renderer) Close() {
	for _, tex := range []rl.Texture2D{r.sprites.background, r.sprites.head, r.sprites.body, r.sprites.food} {
		if tex.ID != 0 {
			rl.UnloadTexture(tex)
		}
	}
}

func toColor(c config.RGB, alpha float64) rl.Color {
	return rl.Color{R: c[0], G: c[1], B: c[2], A: uint8(alpha * 255)}
}

func (r *Renderer) colors() config.Colors { return r.cfg.UI.Colors }

func (r *Renderer) BeginFrame() {
	rl.BeginDrawing()
}

func (r *Renderer) EndFrame() {
	rl.EndDrawing()
}

func (r *Renderer) DrawBackground() {
	if r.sprites.background.ID != 0 {
		r.drawStretched(r.sprites.background, 0, 0, r.screenWidth, r.screenHeight, 0)
		return
	}
	rl.ClearBackground(toColor(r.colors().DarkBG, 1))
}

func (r *Renderer) drawStretched(tex rl.Texture2D, x, y, w, h int32, rotation float32) {
	src := rl.Rectangle{Width: float32(tex.Width), Height: float32(tex.Height)}
	dst := rl.Rectangle{X: float32(x + w/2), Y: float32(y + h/2), Width: float32(w), Height: float32(h)}
	origin := rl.Vector2{X: float32(w) / 2, Y: float32(h) / 2}
	rl.DrawTexturePro(tex, src, dst, origin, rotation, rl.White)
}

func headRotation(dir types.Direction) float32 {
	switch dir {
	case types.RIGHT:
		return 90
	case types.DOWN:
		return 180
	case types.LEFT:
		return 270
	default:
		return 0
	}
}

func (r *Renderer) DrawSnake(body []types.Point, dir types.Direction) {
	for i, p := range body {
		x := int32(p.X) * r.cellSize
		y := int32(p.Y) * r.cellSize
		if i == 0 {
			r.drawHead(x, y, dir)
			continue
		}
		if r.sprites.body.ID != 0 {
			r.drawStretched(r.sprites.body, x+2, y+2, r.cellSize-4, r.cellSize-4, 0)
			continue
		}
		rec := rl.Rectangle{X: float32(x + 2), Y: float32(y + 2), Width: float32(r.cellSize - 4), Height: float32(r.cellSize - 4)}
		rl.DrawRectangleRounded(rec, 0.4, 4, toColor(r.colors().DarkGreen, 1))
	}
}

func (r *Renderer) drawHead(headX, headY int32, dir types.Direction) {
	if r.sprites.head.ID != 0 {
		r.drawStretched(r.sprites.head, headX, headY, r.cellSize, r.cellSize, headRotation(dir))
		return
	}

	rl.DrawRectangle(headX, headY, r.cellSize, r.cellSize, toColor(r.colors().LightGreen, 1))

	// Direction indicator
	halfCell := r.cellSize / 2
	cx, cy := float32(headX+halfCell), float32(headY+halfCell)
	var tip, left, right rl.Vector2
	switch dir {
	case types.RIGHT:
		tip = rl.Vector2{X: float32(headX + r.cellSize), Y: cy}
		left = rl.Vector2{X: cx, Y: float32(headY)}
		right = rl.Vector2{X: cx, Y: float32(headY + r.cellSize)}
	case types.LEFT:
		tip = rl.Vector2{X: float32(headX), Y: cy}
		left = rl.Vector2{X: cx, Y: float32(headY + r.cellSize)}
		right = rl.Vector2{X: cx, Y: float32(headY)}
	case types.DOWN:
		tip = rl.Vector2{X: cx, Y: float32(headY + r.cellSize)}
		left = rl.Vector2{X: float32(headX + r.cellSize), Y: cy}
		right = rl.Vector2{X: float32(headX), Y: cy}
	default:
		tip = rl.Vector2{X: cx, Y: float32(headY)}
		left = rl.Vector2{X: float32(headX), Y: cy}
		right = rl.Vector2{X: float32(headX + r.cellSize), Y: cy}
	}
	// raylib wants counter-clockwise vertex order.
	rl.DrawTriangle(tip, left, right, rl.Yellow)
}

func (r *Renderer) DrawFood(pos types.Point) {
	x := int32(pos.X) * r.cellSize
	y := int32(pos.Y) * r.cellSize
	if r.sprites.food.ID != 0 {
		r.drawStretched(r.sprites.food, x, y, r.cellSize, r.cellSize, 0)
		return
	}
	rl.DrawRectangle(x, y, r.cellSize, r.cellSize, toColor(r.colors().Red, 1))
}

func (r *Renderer) DrawHUD(score, speed int) {
	text := fmt.Sprintf("Score: %d  Speed: %d", score, speed)
	rl.DrawText(text, 10, 10, int32(r.cfg.UI.Fonts.Score), toColor(r.colors().White, 1))
}

// DrawLeaderboard draws the scrolled table clipped to its viewport and
// returns the offset it clamped to.
func (r *Renderer) DrawLeaderboard(board game.Leaderboard, scroll int) int {
	cfg := r.cfg.UI.Leaderboard
	fonts := r.cfg.UI.Fonts
	white := toColor(r.colors().White, 1)
	gray := toColor(r.colors().Gray, 1)

	scroll = layout.Scroll(board, cfg, cfg.Height, scroll)
	x, y := int32(cfg.XOffset), int32(cfg.YOffset)
	w, h := int32(cfg.Width), int32(cfg.Height)
	top := y - int32(scroll)

	rl.DrawRectangle(x, y, w, h, toColor(r.colors().Panel, cfg.Opacity))
	rl.BeginScissorMode(x, y, w, h)

	title := "Leaderboard"
	titleSize := int32(fonts.LeaderboardTitle)
	rl.DrawText(title, x+(w-rl.MeasureText(title, titleSize))/2, top+20, titleSize, white)

	itemSize := int32(fonts.LeaderboardItem)
	padding := int32(cfg.ItemPadding)
	for _, row := range layout.Rows(board, cfg) {
		rowY := top + int32(row.Y)
		if rowY+itemSize < y || rowY > y+h {
			continue
		}
		color := white
		dateColor := gray
		switch row.Tier {
		case layout.TierGold:
			color = gold
		case layout.TierSilver:
			color = silver
		case layout.TierBronze:
			color = bronze
		case layout.TierLast:
			color, dateColor = orange, orange
		}
		rl.DrawText(row.Rank, x+padding, rowY, itemSize, color)
		rl.DrawText(row.Date, x+(w-rl.MeasureText(row.Date, itemSize))/2, rowY, itemSize, dateColor)
		rl.DrawText(row.Score, x+w-padding-rl.MeasureText(row.Score, itemSize), rowY, itemSize, color)
	}

	rl.EndScissorMode()
	return scroll
}

func (r *Renderer) DrawGameOver() {
	text := "Press 3 to play again"
	size := int32(r.cfg.UI.Fonts.GameOver)
	x := (r.screenWidth - rl.MeasureText(text, size)) / 2
	rl.DrawText(text, x, r.screenHeight-50, size, toColor(r.colors().White, 1))
}

func (r *Renderer) DrawHint() {
	rl.DrawText("Press S for key help", 10, r.screenHeight-30, int32(r.cfg.UI.Fonts.Score), toColor(r.colors().White, 1))
}

func (r *Renderer) DrawKeyHelp() {
	cfg := r.cfg.UI.KeyHelp
	box := layout.Centered(int(r.screenWidth), int(r.screenHeight), cfg.Width, cfg.Height)
	white := toColor(r.colors().White, 1)

	rl.DrawRectangle(int32(box.X), int32(box.Y), int32(box.W), int32(box.H), toColor(r.colors().Panel, cfg.Opacity))
	titleSize := int32(cfg.TitleSize)
	rl.DrawText(cfg.Title, int32(box.X)+(int32(box.W)-rl.MeasureText(cfg.Title, titleSize))/2, int32(box.Y)+20, titleSize, white)

	y := int32(box.Y) + 70
	for _, item := range cfg.Items {
		rl.DrawText(item, int32(box.X)+30, y, int32(cfg.TextSize), white)
		y += int32(cfg.Spacing)
	}
}

func (r *Renderer) DrawDialog(d game.Dialog) {
	cfg := r.cfg.UI.Dialog
	white := toColor(r.colors().White, 1)
	gray := toColor(r.colors().Gray, 1)
	box := r.dialog.Box
	size := int32(cfg.TextSize)

	rl.DrawRectangle(0, 0, r.screenWidth, r.screenHeight, rl.Fade(rl.Black, 0.5))
	rl.DrawRectangle(int32(box.X), int32(box.Y), int32(box.W), int32(box.H), toColor(r.colors().Panel, cfg.Opacity))
	rl.DrawText(cfg.Text, int32(box.X)+(int32(box.W)-rl.MeasureText(cfg.Text, size))/2, int32(box.Y)+30, size, white)

	buttons := []struct {
		rect   layout.Rect
		label  string
		button game.DialogButton
	}{
		{r.dialog.Yes, cfg.YesText, game.ButtonConfirm},
		{r.dialog.No, cfg.NoText, game.ButtonCancel},
	}
	for _, b := range buttons {
		fill, text := gray, white
		if d.Selected == b.button {
			fill, text = white, rl.Black
		}
		rec := rl.Rectangle{X: float32(b.rect.X), Y: float32(b.rect.Y), Width: float32(b.rect.W), Height: float32(b.rect.H)}
		rl.DrawRectangleRounded(rec, 0.25, 4, fill)
		tx := int32(b.rect.X) + (int32(b.rect.W)-rl.MeasureText(b.label, size))/2
		ty := int32(b.rect.Y) + (int32(b.rect.H)-size)/2
		rl.DrawText(b.label, tx, ty, size, text)
	}
}

func (r *Renderer) DrawFarewell(quote string) {
	size := int32(r.cfg.Quotes.FontSize)
	rl.DrawRectangle(0, 0, r.screenWidth, r.screenHeight, rl.Fade(rl.Black, 0.8))
	x := (r.screenWidth - rl.MeasureText(quote, size)) / 2
	y := (r.screenHeight - size) / 2
	rl.DrawText(quote, x, y, size, toColor(r.colors().White, 1))
}
