// Package layout holds the screen geometry shared by the frontends. It has no
// drawing dependencies so it can be tested without a window.
package layout

import (
	"fmt"

	"snaker/config"
	"snaker/game"
	"snaker/game/manager"
)

// Rect is an axis aligned rectangle in pixels (or terminal cells).
type Rect struct {
	X, Y, W, H int
}

func (r Rect) Contains(x, y int) bool {
	return x >= r.X && x < r.X+r.W && y >= r.Y && y < r.Y+r.H
}

// Centered places a w x h box in the middle of an outerW x outerH area.
func Centered(outerW, outerH, w, h int) Rect {
	return Rect{X: (outerW - w) / 2, Y: (outerH - h) / 2, W: w, H: h}
}

// Dialog is the exit dialog box and its two buttons.
type Dialog struct {
	Box, Yes, No Rect
}

// NewDialog lays the dialog out in the middle of a screenW x screenH window.
func NewDialog(screenW, screenH int, cfg config.Dialog) Dialog {
	box := Centered(screenW, screenH, cfg.Width, cfg.Height)
	buttonY := box.Y + box.H - cfg.ButtonHeight - 20
	return Dialog{
		Box: box,
		Yes: Rect{X: box.X + cfg.ButtonSpacing, Y: buttonY, W: cfg.ButtonWidth, H: cfg.ButtonHeight},
		No:  Rect{X: box.X + box.W - cfg.ButtonWidth - cfg.ButtonSpacing, Y: buttonY, W: cfg.ButtonWidth, H: cfg.ButtonHeight},
	}
}

// Hit reports which button, if any, is under (x, y).
func (d Dialog) Hit(x, y int) (game.DialogButton, bool) {
	switch {
	case d.Yes.Contains(x, y):
		return game.ButtonConfirm, true
	case d.No.Contains(x, y):
		return game.ButtonCancel, true
	}
	return 0, false
}

// Tier picks the highlight of a leaderboard row.
type Tier int

const (
	TierPlain Tier = iota
	TierGold
	TierSilver
	TierBronze
	TierLast
)

// Row is one formatted leaderboard line.
type Row struct {
	Rank  string
	Score string
	Date  string
	Tier  Tier
	// Y is the row's top edge relative to the top of the content.
	Y int
}

// DateLayout is how record timestamps are shown in the table.
const DateLayout = "01-02 15:04"

// Rows formats the board for drawing. The most recent game wins over the
// podium colors.
func Rows(board game.Leaderboard, cfg config.Leaderboard) []Row {
	rows := make([]Row, 0, len(board.Records))
	for i, rec := range board.Records {
		rank := i + 1
		tier := TierPlain
		switch {
		case board.IsLast(rank):
			tier = TierLast
		case rank == 1:
			tier = TierGold
		case rank == 2:
			tier = TierSilver
		case rank == 3:
			tier = TierBronze
		}
		rows = append(rows, Row{
			Rank:  fmt.Sprintf("#%d", rank),
			Score: fmt.Sprintf("%d", rec.Score),
			Date:  rec.Timestamp.Format(DateLayout),
			Tier:  tier,
			Y:     cfg.TitleSpacing + 20 + i*cfg.Spacing,
		})
	}
	return rows
}

// Scroll clamps offset for a board drawn into a viewport of the given
// height.
func Scroll(board game.Leaderboard, cfg config.Leaderboard, viewport, offset int) int {
	content := board.ContentHeight(cfg.TitleSpacing, cfg.Spacing)
	return manager.ClampScroll(offset, content, viewport)
}
