package ui

import (
	rl "github.com/gen2brain/raylib-go/raylib"

	"snaker/config"
	"snaker/game"
	"snaker/ui/layout"
)

var keyBindings = map[int32]game.InputKind{
	rl.KeyUp:      game.InputUp,
	rl.KeyDown:    game.InputDown,
	rl.KeyLeft:    game.InputLeft,
	rl.KeyRight:   game.InputRight,
	rl.KeyK:       game.InputPause,
	rl.KeyOne:     game.InputSpeedUp,
	rl.KeyTwo:     game.InputSpeedDown,
	rl.KeyThree:   game.InputRestart,
	rl.KeySpace:   game.InputToggleMusic,
	rl.KeyS:       game.InputToggleHelp,
	rl.KeyEscape:  game.InputEscape,
	rl.KeyEnter:   game.InputConfirm,
	rl.KeyKpEnter: game.InputConfirm,
}

// Input polls raylib for keyboard, wheel, mouse and window events.
type Input struct {
	dialog layout.Dialog
	// closing latches WindowShouldClose so one click on the close button
	// asks once.
	closing bool
}

// NewInput disables raylib's built-in exit key so Escape reaches the game.
func NewInput(cfg *config.Config) *Input {
	rl.SetExitKey(0)
	return &Input{dialog: layout.NewDialog(cfg.Window.Width, cfg.Window.Height, cfg.UI.Dialog)}
}

func (in *Input) Poll() []game.Input {
	var events []game.Input

	for key := rl.GetKeyPressed(); key != 0; key = rl.GetKeyPressed() {
		if kind, ok := keyBindings[key]; ok {
			events = append(events, game.Input{Kind: kind})
		}
	}

	if wheel := rl.GetMouseWheelMove(); wheel != 0 {
		events = append(events, game.Input{Kind: game.InputScroll, Amount: float64(wheel)})
	}

	mouse := rl.GetMousePosition()
	if button, ok := in.dialog.Hit(int(mouse.X), int(mouse.Y)); ok {
		if rl.IsMouseButtonPressed(rl.MouseButtonLeft) {
			events = append(events, game.Input{Kind: game.InputDialogClick, Button: button})
		} else if delta := rl.GetMouseDelta(); delta.X != 0 || delta.Y != 0 {
			events = append(events, game.Input{Kind: game.InputDialogHover, Button: button})
		}
	}

	shouldClose := rl.WindowShouldClose()
	if shouldClose && !in.closing {
		events = append(events, game.Input{Kind: game.InputClose})
	}
	in.closing = shouldClose

	return events
}
