// Package terminal runs the game in a text terminal through tcell. Each grid
// cell is two columns wide so the board keeps a roughly square aspect.
package terminal

import (
	"fmt"

	"github.com/gdamore/tcell/v2"
	"go.uber.org/zap"

	"snaker/config"
	"snaker/game"
	"snaker/game/types"
	"snaker/ui/layout"
)

const (
	cellWidth = 2
	boardTop  = 1
)

// Screen is both the game.Renderer and the game.InputSource of the terminal
// frontend.
type Screen struct {
	screen tcell.Screen
	cfg    *config.Config
	log    *zap.Logger
	events chan tcell.Event
	done   chan struct{}
	styles styles
}

type styles struct {
	base, hud, snake, head, food, panel, gray, selected tcell.Style
	gold, silver, bronze, last                           tcell.Style
}

func rgb(c config.RGB) tcell.Color {
	return tcell.NewRGBColor(int32(c[0]), int32(c[1]), int32(c[2]))
}

func newStyles(c config.Colors) styles {
	base := tcell.StyleDefault.Background(rgb(c.DarkBG)).Foreground(rgb(c.White))
	panel := tcell.StyleDefault.Background(rgb(c.Panel)).Foreground(rgb(c.White))
	return styles{
		base:     base,
		hud:      base.Bold(true),
		snake:    base.Foreground(rgb(c.DarkGreen)),
		head:     base.Foreground(rgb(c.LightGreen)),
		food:     base.Foreground(rgb(c.Red)),
		panel:    panel,
		gray:     panel.Foreground(rgb(c.Gray)),
		selected: panel.Reverse(true),
		gold:     panel.Foreground(tcell.NewRGBColor(255, 215, 0)),
		silver:   panel.Foreground(tcell.NewRGBColor(192, 192, 192)),
		bronze:   panel.Foreground(tcell.NewRGBColor(205, 127, 50)),
		last:     panel.Foreground(tcell.NewRGBColor(255, 140, 0)),
	}
}

// Open initializes the real terminal.
func Open(cfg *config.Config, log *zap.Logger) (*Screen, error) {
	s, err := tcell.NewScreen()
	if err != nil {
		return nil, err
	}
	return New(s, cfg, log)
}

// New takes over an uninitialized tcell screen and starts reading its
// events.
func New(s tcell.Screen, cfg *config.Config, log *zap.Logger) (*Screen, error) {
	if err := s.Init(); err != nil {
		return nil, err
	}
	s.EnableMouse()
	s.HideCursor()

	t := &Screen{
		screen: s,
		cfg:    cfg,
		log:    log,
		events: make(chan tcell.Event, 100),
		done:   make(chan struct{}),
		styles: newStyles(cfg.UI.Colors),
	}
	s.SetStyle(t.styles.base)

	if w, h := s.Size(); w < cfg.GridWidth()*cellWidth || h < cfg.GridHeight()+2 {
		log.Warn("terminal smaller than the board, edges will be cut",
			zap.Int("columns", w), zap.Int("rows", h),
			zap.Int("need_columns", cfg.GridWidth()*cellWidth), zap.Int("need_rows", cfg.GridHeight()+2))
	}

	go t.pump()
	return t, nil
}

// pump forwards tcell events until the screen is finalized.
func (t *Screen) pump() {
	for {
		ev := t.screen.PollEvent()
		if ev == nil {
			return
		}
		select {
		case t.events <- ev:
		case <-t.done:
			return
		}
	}
}

// Close restores the terminal.
func (t *Screen) Close() {
	close(t.done)
	t.screen.Fini()
}

// Poll drains the pending terminal events without blocking.
func (t *Screen) Poll() []game.Input {
	var out []game.Input
	for {
		select {
		case ev := <-t.events:
			if in, ok := t.translate(ev); ok {
				out = append(out, in)
			}
		default:
			return out
		}
	}
}

func (t *Screen) translate(ev tcell.Event) (game.Input, bool) {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		return translateKey(ev)
	case *tcell.EventMouse:
		switch {
		case ev.Buttons()&tcell.WheelUp != 0:
			return game.Input{Kind: game.InputScroll, Amount: 1}, true
		case ev.Buttons()&tcell.WheelDown != 0:
			return game.Input{Kind: game.InputScroll, Amount: -1}, true
		}
	case *tcell.EventResize:
		t.screen.Sync()
	}
	return game.Input{}, false
}

func translateKey(ev *tcell.EventKey) (game.Input, bool) {
	kind := game.InputNone
	switch ev.Key() {
	case tcell.KeyUp:
		kind = game.InputUp
	case tcell.KeyDown:
		kind = game.InputDown
	case tcell.KeyLeft:
		kind = game.InputLeft
	case tcell.KeyRight:
		kind = game.InputRight
	case tcell.KeyEscape:
		kind = game.InputEscape
	case tcell.KeyEnter:
		kind = game.InputConfirm
	case tcell.KeyCtrlC:
		kind = game.InputClose
	case tcell.KeyRune:
		switch ev.Rune() {
		case 'k', 'K':
			kind = game.InputPause
		case '1':
			kind = game.InputSpeedUp
		case '2':
			kind = game.InputSpeedDown
		case '3':
			kind = game.InputRestart
		case ' ':
			kind = game.InputToggleMusic
		case 's', 'S':
			kind = game.InputToggleHelp
		}
	}
	return game.Input{Kind: kind}, kind != game.InputNone
}

func (t *Screen) text(x, y int, s string, style tcell.Style) {
	for _, r := range s {
		t.screen.SetContent(x, y, r, nil, style)
		x++
	}
}

func (t *Screen) fill(r layout.Rect, style tcell.Style) {
	for y := r.Y; y < r.Y+r.H; y++ {
		for x := r.X; x < r.X+r.W; x++ {
			t.screen.SetContent(x, y, ' ', nil, style)
		}
	}
}

func (t *Screen) size() (int, int) { return t.screen.Size() }

func (t *Screen) cell(p types.Point, r rune, style tcell.Style) {
	x := p.X * cellWidth
	y := boardTop + p.Y
	for i := 0; i < cellWidth; i++ {
		t.screen.SetContent(x+i, y, r, nil, style)
	}
}

func (t *Screen) BeginFrame() {
	t.screen.Clear()
}

func (t *Screen) EndFrame() {
	t.screen.Show()
}

func (t *Screen) DrawBackground() {
	w, h := t.size()
	t.fill(layout.Rect{W: w, H: h}, t.styles.base)
}

var headGlyphs = map[types.Direction]rune{
	types.UP:    '▲',
	types.RIGHT: '▶',
	types.DOWN:  '▼',
	types.LEFT:  '◀',
}

func (t *Screen) DrawSnake(body []types.Point, dir types.Direction) {
	for i := len(body) - 1; i >= 0; i-- {
		if i == 0 {
			t.cell(body[i], headGlyphs[dir], t.styles.head)
			continue
		}
		t.cell(body[i], '█', t.styles.snake)
	}
}

func (t *Screen) DrawFood(pos types.Point) {
	t.cell(pos, '●', t.styles.food)
}

func (t *Screen) DrawHUD(score, speed int) {
	t.text(0, 0, fmt.Sprintf("Score: %d  Speed: %d", score, speed), t.styles.hud)
}

// leaderboardBox maps the configured pixel viewport onto terminal rows:
// one row per leaderboard line.
func (t *Screen) leaderboardBox() layout.Rect {
	cfg := t.cfg.UI.Leaderboard
	w, h := t.size()
	rows := cfg.Height / cfg.Spacing
	return layout.Centered(w, h, 40, rows)
}

func (t *Screen) DrawLeaderboard(board game.Leaderboard, scroll int) int {
	cfg := t.cfg.UI.Leaderboard
	scroll = layout.Scroll(board, cfg, cfg.Height, scroll)
	box := t.leaderboardBox()
	t.fill(box, t.styles.panel)

	line := func(pixelY int) int { return box.Y + (pixelY-scroll)/cfg.Spacing }
	visible := func(y int) bool { return y >= box.Y && y < box.Y+box.H }

	if y := line(20); visible(y) {
		title := "Leaderboard"
		t.text(box.X+(box.W-len(title))/2, y, title, t.styles.panel.Bold(true))
	}
	for _, row := range layout.Rows(board, cfg) {
		y := line(row.Y)
		if !visible(y) {
			continue
		}
		style, dateStyle := t.styles.panel, t.styles.gray
		switch row.Tier {
		case layout.TierGold:
			style = t.styles.gold
		case layout.TierSilver:
			style = t.styles.silver
		case layout.TierBronze:
			style = t.styles.bronze
		case layout.TierLast:
			style, dateStyle = t.styles.last, t.styles.last
		}
		t.text(box.X+2, y, row.Rank, style)
		t.text(box.X+(box.W-len(row.Date))/2, y, row.Date, dateStyle)
		t.text(box.X+box.W-2-len(row.Score), y, row.Score, style)
	}
	return scroll
}

func (t *Screen) DrawGameOver() {
	w, h := t.size()
	msg := "Press 3 to play again"
	t.text((w-len(msg))/2, h-2, msg, t.styles.hud)
}

func (t *Screen) DrawHint() {
	_, h := t.size()
	t.text(0, h-1, "Press S for key help", t.styles.base)
}

func (t *Screen) DrawKeyHelp() {
	cfg := t.cfg.UI.KeyHelp
	w, h := t.size()
	box := layout.Centered(w, h, 36, len(cfg.Items)+4)
	t.fill(box, t.styles.panel)
	t.text(box.X+(box.W-len(cfg.Title))/2, box.Y+1, cfg.Title, t.styles.panel.Bold(true))
	for i, item := range cfg.Items {
		t.text(box.X+2, box.Y+3+i, item, t.styles.panel)
	}
}

func (t *Screen) DrawDialog(d game.Dialog) {
	cfg := t.cfg.UI.Dialog
	w, h := t.size()
	box := layout.Centered(w, h, 30, 7)
	t.fill(box, t.styles.panel)
	t.text(box.X+(box.W-len(cfg.Text))/2, box.Y+2, cfg.Text, t.styles.panel)

	yes := "[ " + cfg.YesText + " ]"
	no := "[ " + cfg.NoText + " ]"
	yesStyle, noStyle := t.styles.selected, t.styles.panel
	if d.Selected == game.ButtonCancel {
		yesStyle, noStyle = t.styles.panel, t.styles.selected
	}
	t.text(box.X+3, box.Y+4, yes, yesStyle)
	t.text(box.X+box.W-3-len(no), box.Y+4, no, noStyle)
}

func (t *Screen) DrawFarewell(quote string) {
	w, h := t.size()
	t.fill(layout.Rect{W: w, H: h}, t.styles.panel)
	t.text((w-len(quote))/2, h/2, quote, t.styles.panel.Bold(true))
}
