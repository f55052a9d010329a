package manager

import "snaker/game/types"

// InputManager buffers requested direction changes in FIFO order.
type InputManager struct {
	queue []types.Direction
}

func NewInputManager() *InputManager {
	return &InputManager{queue: make([]types.Direction, 0, 4)}
}

// Enqueue appends d unless it repeats the newest pending entry.
func (im *InputManager) Enqueue(d types.Direction) bool {
	if d == types.NONE {
		return false
	}
	if n := len(im.queue); n > 0 && im.queue[n-1] == d {
		return false
	}
	im.queue = append(im.queue, d)
	return true
}

// ConsumeOne looks at the front entry and pops it only if it is not the
// reverse of current. A reversed front stays queued and blocks everything
// behind it.
func (im *InputManager) ConsumeOne(current types.Direction) (types.Direction, bool) {
	if len(im.queue) == 0 {
		return types.NONE, false
	}
	next := im.queue[0]
	if next.IsReverseOf(current) {
		return types.NONE, false
	}
	im.queue = im.queue[1:]
	return next, true
}

func (im *InputManager) Pending() []types.Direction {
	return append([]types.Direction(nil), im.queue...)
}

func (im *InputManager) Len() int {
	return len(im.queue)
}

func (im *InputManager) Clear() {
	im.queue = im.queue[:0]
}
