package manager

import (
	"github.com/pkg/errors"
)

// ErrInvalidTransition is returned when an input is not allowed in the
// current phase. Callers treat it as a no-op.
var ErrInvalidTransition = errors.New("invalid state transition")

// Phase is the primary state of a game session.
type Phase int

const (
	PhaseRunning Phase = iota
	PhasePaused
	PhaseGameOver
)

func (p Phase) String() string {
	switch p {
	case PhasePaused:
		return "paused"
	case PhaseGameOver:
		return "game over"
	default:
		return "running"
	}
}

// SpeedLimits bounds the tick rate in ticks per second.
type SpeedLimits struct {
	Min, Max, Default int
}

// StateManager owns the mutable GameState aggregate. Paused and game over are
// never set at the same time.
type StateManager struct {
	running  bool
	paused   bool
	terminal bool
	speed    int
	scroll   int
	limits   SpeedLimits
}

func NewStateManager(limits SpeedLimits) *StateManager {
	return &StateManager{
		running: true,
		speed:   limits.Default,
		limits:  limits,
	}
}

func (sm *StateManager) Phase() Phase {
	switch {
	case sm.terminal:
		return PhaseGameOver
	case sm.paused:
		return PhasePaused
	default:
		return PhaseRunning
	}
}

func (sm *StateManager) IsRunning() bool { return sm.running }

// Stop ends the session loop.
func (sm *StateManager) Stop() { sm.running = false }

func (sm *StateManager) Speed() int { return sm.speed }

func (sm *StateManager) ScrollOffset() int { return sm.scroll }

// TogglePause flips between running and paused.
func (sm *StateManager) TogglePause() error {
	if sm.terminal {
		return errors.Wrap(ErrInvalidTransition, "pause during game over")
	}
	sm.paused = !sm.paused
	return nil
}

// EndGame enters the game over phase.
func (sm *StateManager) EndGame() error {
	if sm.terminal {
		return errors.Wrap(ErrInvalidTransition, "game already over")
	}
	sm.paused = false
	sm.terminal = true
	return nil
}

// Restart leaves game over and resets the speed to its default.
func (sm *StateManager) Restart() error {
	if !sm.terminal {
		return errors.Wrap(ErrInvalidTransition, "restart while not game over")
	}
	sm.terminal = false
	sm.paused = false
	sm.speed = sm.limits.Default
	return nil
}

// AdjustSpeed moves the speed by delta within the configured limits.
func (sm *StateManager) AdjustSpeed(delta int) error {
	if sm.terminal {
		return errors.Wrap(ErrInvalidTransition, "speed change during game over")
	}
	next := sm.speed + delta
	if next < sm.limits.Min || next > sm.limits.Max {
		return errors.Wrapf(ErrInvalidTransition, "speed %d outside [%d, %d]", next, sm.limits.Min, sm.limits.Max)
	}
	sm.speed = next
	return nil
}

// Scroll moves the leaderboard by delta pixels. The renderer clamps the
// result against the content it actually drew.
func (sm *StateManager) Scroll(delta int) error {
	if !sm.paused && !sm.terminal {
		return errors.Wrap(ErrInvalidTransition, "scroll while running")
	}
	sm.scroll += delta
	if sm.scroll < 0 {
		sm.scroll = 0
	}
	return nil
}

// SetScrollOffset stores the offset the renderer clamped to.
func (sm *StateManager) SetScrollOffset(offset int) {
	if offset < 0 {
		offset = 0
	}
	sm.scroll = offset
}

// ClampScroll limits offset to [0, content-viewport], or 0 when everything
// fits.
func ClampScroll(offset, content, viewport int) int {
	maxScroll := content - viewport
	if maxScroll < 0 {
		maxScroll = 0
	}
	if offset > maxScroll {
		offset = maxScroll
	}
	if offset < 0 {
		offset = 0
	}
	return offset
}
