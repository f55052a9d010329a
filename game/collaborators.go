package game

import (
	"context"

	"snaker/game/types"
	"snaker/store"
)

// Sound names an audio cue.
type Sound string

const (
	SoundEat        Sound = "eat"
	SoundDeath      Sound = "death"
	SoundButton     Sound = "button"
	SoundBackground Sound = "background"
)

// AudioSink plays sound effects and the looping background track.
// Implementations swallow their own failures.
type AudioSink interface {
	Play(s Sound)
	// PlayBackground starts the loop if music is enabled.
	PlayBackground()
	StopBackground()
	// ToggleBackground flips the music switch and returns the new state.
	ToggleBackground() bool
}

// ScoreStore persists completed games.
type ScoreStore interface {
	Save(ctx context.Context, score int) error
	TopN(ctx context.Context, n int) ([]store.Record, error)
	LastRank(ctx context.Context) (store.Rank, bool, error)
}

// Renderer draws one frame from plain data. Only DrawLeaderboard reports
// back, with the scroll offset it clamped to.
type Renderer interface {
	BeginFrame()
	DrawBackground()
	DrawSnake(body []types.Point, dir types.Direction)
	DrawFood(pos types.Point)
	DrawHUD(score, speed int)
	DrawLeaderboard(board Leaderboard, scroll int) int
	DrawGameOver()
	DrawHint()
	DrawKeyHelp()
	DrawDialog(d Dialog)
	DrawFarewell(quote string)
	EndFrame()
}

// Leaderboard is what the renderer needs to draw the score table.
type Leaderboard struct {
	Records []store.Record
	Last    store.Rank
	HasLast bool
}

// IsLast reports whether the 1-based row i is the most recent game.
func (b Leaderboard) IsLast(i int) bool {
	if !b.HasLast || i < 1 || i > len(b.Records) {
		return false
	}
	return i == b.Last.Rank && b.Records[i-1].Score == b.Last.Score
}

// ContentHeight is the full pixel height of the table before clipping.
func (b Leaderboard) ContentHeight(titleSpacing, spacing int) int {
	return titleSpacing + len(b.Records)*spacing + 40
}
