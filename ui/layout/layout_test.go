package layout

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"snaker/config"
	"snaker/game"
	"snaker/store"
)

func TestCentered(t *testing.T) {
	r := Centered(800, 600, 360, 160)

	assert.Equal(t, Rect{X: 220, Y: 220, W: 360, H: 160}, r)
	assert.True(t, r.Contains(220, 220))
	assert.False(t, r.Contains(580, 220))
}

func TestDialogHit(t *testing.T) {
	d := NewDialog(800, 600, config.Default().UI.Dialog)

	assert.Equal(t, Rect{X: 270, Y: 320, W: 100, H: 40}, d.Yes)
	assert.Equal(t, Rect{X: 430, Y: 320, W: 100, H: 40}, d.No)

	btn, ok := d.Hit(300, 330)
	require.True(t, ok)
	assert.Equal(t, game.ButtonConfirm, btn)

	btn, ok = d.Hit(529, 359)
	require.True(t, ok)
	assert.Equal(t, game.ButtonCancel, btn)

	_, ok = d.Hit(400, 330)
	assert.False(t, ok)
}

func TestRowsTiers(t *testing.T) {
	cfg := config.Default().UI.Leaderboard
	at := time.Date(2024, 5, 17, 21, 4, 9, 0, time.Local)
	board := game.Leaderboard{
		Records: []store.Record{
			{Score: 50, Timestamp: at},
			{Score: 40, Timestamp: at},
			{Score: 30, Timestamp: at},
			{Score: 20, Timestamp: at},
			{Score: 10, Timestamp: at},
		},
		Last:    store.Rank{Score: 20, Rank: 4},
		HasLast: true,
	}

	rows := Rows(board, cfg)

	require.Len(t, rows, 5)
	assert.Equal(t, []Tier{TierGold, TierSilver, TierBronze, TierLast, TierPlain},
		[]Tier{rows[0].Tier, rows[1].Tier, rows[2].Tier, rows[3].Tier, rows[4].Tier})
	assert.Equal(t, "#4", rows[3].Rank)
	assert.Equal(t, "20", rows[3].Score)
	assert.Equal(t, "05-17 21:04", rows[3].Date)
	assert.Equal(t, 80, rows[0].Y)
	assert.Equal(t, 110, rows[1].Y)
}

func TestRowsLastBeatsPodium(t *testing.T) {
	board := game.Leaderboard{
		Records: []store.Record{{Score: 9}, {Score: 3}},
		Last:    store.Rank{Score: 9, Rank: 1},
		HasLast: true,
	}

	rows := Rows(board, config.Default().UI.Leaderboard)

	assert.Equal(t, TierLast, rows[0].Tier)
	assert.Equal(t, TierSilver, rows[1].Tier)
}

func TestScroll(t *testing.T) {
	cfg := config.Default().UI.Leaderboard
	board := game.Leaderboard{Records: make([]store.Record, 20)}
	// 60 + 20*30 + 40 = 700 pixels of content.

	assert.Equal(t, 240, Scroll(board, cfg, 460, 1000))
	assert.Equal(t, 100, Scroll(board, cfg, 460, 100))
	assert.Zero(t, Scroll(board, cfg, 460, -5))
	assert.Zero(t, Scroll(game.Leaderboard{}, cfg, 460, 300))
}
