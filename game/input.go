package game

import "snaker/game/types"

// InputKind is a frontend-independent player action. Frontends translate
// their native key, mouse and window events into these.
type InputKind int

const (
	InputNone InputKind = iota
	InputUp
	InputDown
	InputLeft
	InputRight
	InputPause
	InputSpeedUp
	InputSpeedDown
	InputRestart
	InputToggleMusic
	InputToggleHelp
	InputEscape  // quit request from the keyboard; cancels an open dialog
	InputClose   // quit request from the window manager
	InputConfirm // Enter
	InputScroll  // Amount holds wheel notches, positive scrolls up
	InputDialogClick
	InputDialogHover
)

// Input is one event delivered to Game.HandleInput.
type Input struct {
	Kind   InputKind
	Amount float64
	Button DialogButton
}

// InputSource is polled once per frame for everything that happened since
// the previous poll, oldest first.
type InputSource interface {
	Poll() []Input
}

func (k InputKind) direction() types.Direction {
	switch k {
	case InputUp:
		return types.UP
	case InputDown:
		return types.DOWN
	case InputLeft:
		return types.LEFT
	case InputRight:
		return types.RIGHT
	default:
		return types.NONE
	}
}

// DialogButton identifies a button of the exit dialog.
type DialogButton int

const (
	ButtonConfirm DialogButton = iota
	ButtonCancel
)

// Dialog is the exit confirmation overlay.
type Dialog struct {
	Showing  bool
	Selected DialogButton
}

func (d *Dialog) show() {
	d.Showing = true
	d.Selected = ButtonConfirm
}

func (d *Dialog) toggle() {
	if d.Selected == ButtonConfirm {
		d.Selected = ButtonCancel
	} else {
		d.Selected = ButtonConfirm
	}
}
