package game

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/benbjohnson/clock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"
	"golang.org/x/exp/rand"

	"snaker/config"
)

type scriptedInput struct {
	frames [][]Input
	polls  int
}

func (s *scriptedInput) Poll() []Input {
	defer func() { s.polls++ }()
	if s.polls < len(s.frames) {
		return s.frames[s.polls]
	}
	return nil
}

func newLoopGame(t *testing.T) (*Game, *fakeAudio) {
	t.Helper()
	cfg := config.Default()
	cfg.Game.MaxSpeed = 1000
	cfg.Game.DefaultSpeed = 1000
	cfg.Quotes.DisplayTime = 0
	cfg.Quotes.File = filepath.Join(t.TempDir(), "quotes_history.txt")
	audio := &fakeAudio{musicOn: true}
	g := NewGame(cfg, Deps{
		Audio: audio,
		Clock: clock.New(),
		Log:   zaptest.NewLogger(t),
		Rand:  rand.New(rand.NewSource(11)),
	})
	return g, audio
}

func TestRunStopsAfterFarewell(t *testing.T) {
	g, audio := newLoopGame(t)
	in := &scriptedInput{frames: [][]Input{
		{{Kind: InputEscape}, {Kind: InputConfirm}},
	}}
	r := &fakeRenderer{}

	err := g.Run(context.Background(), in, r)

	require.NoError(t, err)
	assert.False(t, g.IsRunning())
	assert.NotEmpty(t, g.Farewell())
	assert.GreaterOrEqual(t, in.polls, 2)
	assert.Contains(t, r.calls, "farewell")
	assert.Equal(t, 1, audio.bgStarts)
	assert.Equal(t, 1, audio.bgStops)
}

func TestRunHonorsCancelledContext(t *testing.T) {
	g, _ := newLoopGame(t)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err := g.Run(ctx, &scriptedInput{}, &fakeRenderer{})

	assert.ErrorIs(t, err, context.Canceled)
	assert.True(t, g.IsRunning())
}
