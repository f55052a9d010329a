package terminal

import (
	"strings"
	"testing"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"snaker/config"
	"snaker/game"
	"snaker/game/types"
	"snaker/store"
)

var (
	_ game.Renderer    = (*Screen)(nil)
	_ game.InputSource = (*Screen)(nil)
)

func newSimScreen(t *testing.T) (*Screen, tcell.SimulationScreen) {
	t.Helper()
	sim := tcell.NewSimulationScreen("UTF-8")
	s, err := New(sim, config.Default(), zap.NewNop())
	require.NoError(t, err)
	sim.SetSize(100, 40)
	t.Cleanup(s.Close)
	return s, sim
}

func runeAt(sim tcell.SimulationScreen, x, y int) rune {
	cells, w, _ := sim.GetContents()
	c := cells[y*w+x]
	if len(c.Runes) == 0 {
		return ' '
	}
	return c.Runes[0]
}

func lineAt(sim tcell.SimulationScreen, y int) string {
	_, w, _ := sim.GetContents()
	var b strings.Builder
	for x := 0; x < w; x++ {
		b.WriteRune(runeAt(sim, x, y))
	}
	return b.String()
}

func TestPollTranslatesKeys(t *testing.T) {
	s, sim := newSimScreen(t)

	sim.InjectKey(tcell.KeyUp, 0, tcell.ModNone)
	sim.InjectKey(tcell.KeyRune, 'k', tcell.ModNone)
	sim.InjectKey(tcell.KeyRune, '1', tcell.ModNone)
	sim.InjectKey(tcell.KeyRune, 'x', tcell.ModNone)
	sim.InjectKey(tcell.KeyEscape, 0, tcell.ModNone)
	sim.InjectKey(tcell.KeyEnter, 0, tcell.ModNone)

	var got []game.InputKind
	require.Eventually(t, func() bool {
		for _, in := range s.Poll() {
			got = append(got, in.Kind)
		}
		return len(got) >= 5
	}, time.Second, 10*time.Millisecond)

	assert.Equal(t, []game.InputKind{
		game.InputUp, game.InputPause, game.InputSpeedUp, game.InputEscape, game.InputConfirm,
	}, got)
}

func TestPollEmptyDoesNotBlock(t *testing.T) {
	s, _ := newSimScreen(t)

	assert.Empty(t, s.Poll())
}

func TestDrawBoard(t *testing.T) {
	s, sim := newSimScreen(t)

	s.BeginFrame()
	s.DrawBackground()
	s.DrawSnake([]types.Point{{X: 3, Y: 2}, {X: 2, Y: 2}}, types.RIGHT)
	s.DrawFood(types.Point{X: 5, Y: 0})
	s.DrawHUD(7, 12)
	s.EndFrame()

	assert.Equal(t, '▶', runeAt(sim, 6, 3))
	assert.Equal(t, '▶', runeAt(sim, 7, 3))
	assert.Equal(t, '█', runeAt(sim, 4, 3))
	assert.Equal(t, '●', runeAt(sim, 10, 1))
	assert.True(t, strings.HasPrefix(lineAt(sim, 0), "Score: 7  Speed: 12"))
}

func TestDrawLeaderboardClampsScroll(t *testing.T) {
	s, sim := newSimScreen(t)
	at := time.Date(2024, 2, 3, 4, 5, 0, 0, time.Local)
	board := game.Leaderboard{
		Records: []store.Record{{Score: 99, Timestamp: at}, {Score: 42, Timestamp: at}},
		Last:    store.Rank{Score: 42, Rank: 2},
		HasLast: true,
	}

	s.BeginFrame()
	got := s.DrawLeaderboard(board, 500)
	s.EndFrame()

	assert.Zero(t, got, "two rows fit in the viewport")

	var text strings.Builder
	_, _, h := sim.GetContents()
	for y := 0; y < h; y++ {
		text.WriteString(lineAt(sim, y))
	}
	assert.Contains(t, text.String(), "Leaderboard")
	assert.Contains(t, text.String(), "#1")
	assert.Contains(t, text.String(), "02-03 04:05")
}

func TestDrawDialogMarksSelection(t *testing.T) {
	s, sim := newSimScreen(t)

	s.BeginFrame()
	s.DrawDialog(game.Dialog{Showing: true, Selected: game.ButtonCancel})
	s.EndFrame()

	var found bool
	_, _, h := sim.GetContents()
	for y := 0; y < h; y++ {
		line := lineAt(sim, y)
		if strings.Contains(line, "[ Yes ]") && strings.Contains(line, "[ No ]") {
			found = true
		}
	}
	assert.True(t, found)
}

func TestFarewellCentersQuote(t *testing.T) {
	s, sim := newSimScreen(t)

	s.BeginFrame()
	s.DrawFarewell("Bye")
	s.EndFrame()

	assert.Contains(t, lineAt(sim, 20), "Bye")
}
