package game

import (
	"context"
	"time"

	"github.com/benbjohnson/clock"
	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/zap"
	"golang.org/x/exp/rand"

	"snaker/config"
	"snaker/game/entity"
	"snaker/game/manager"
	"snaker/game/types"
)

// ErrInvalidTransition is reported (and ignored) when an input doesn't apply
// to the current phase.
var ErrInvalidTransition = manager.ErrInvalidTransition

// Phase aliases the state machine phases for frontends.
type Phase = manager.Phase

const (
	PhaseRunning  = manager.PhaseRunning
	PhasePaused   = manager.PhasePaused
	PhaseGameOver = manager.PhaseGameOver
)

const eventResumeMusic = "resume-music"

// Deps are the collaborators a Game is built with. Store may be nil when the
// database could not be opened; scores are then only logged.
type Deps struct {
	Store ScoreStore
	Audio AudioSink
	Clock clock.Clock
	Log   *zap.Logger
	Rand  *rand.Rand
}

// Game is the single-player state machine. It is driven from one goroutine:
// HandleInput for each event, then Tick, then Render, once per frame.
type Game struct {
	UUID string
	Grid types.Grid

	cfg          *config.Config
	snake        *entity.Snake
	inputMgr     *manager.InputManager
	foodMgr      *manager.FoodManager
	collisionMgr *manager.CollisionManager
	stateMgr     *manager.StateManager
	quotes       *QuoteManager
	events       Scheduler

	store ScoreStore
	audio AudioSink
	clock clock.Clock
	log   *zap.Logger

	dialog      Dialog
	showKeyHelp bool
	board       Leaderboard
	quitting    bool
	farewell    string
	farewellAt  time.Time
}

func NewGame(cfg *config.Config, deps Deps) *Game {
	if deps.Clock == nil {
		deps.Clock = clock.New()
	}
	if deps.Log == nil {
		deps.Log = zap.NewNop()
	}
	if deps.Rand == nil {
		deps.Rand = rand.New(rand.NewSource(uint64(deps.Clock.Now().UnixNano())))
	}
	if deps.Audio == nil {
		deps.Audio = silentSink{}
	}

	gameUUID := uuid.New().String()
	grid := types.Grid{Width: cfg.GridWidth(), Height: cfg.GridHeight()}
	foodMgr := manager.NewFoodManager(grid, deps.Rand)
	log := deps.Log.With(zap.String("session", gameUUID))

	g := &Game{
		UUID:         gameUUID,
		Grid:         grid,
		cfg:          cfg,
		snake:        entity.NewSnake(grid, deps.Rand),
		inputMgr:     manager.NewInputManager(),
		foodMgr:      foodMgr,
		collisionMgr: manager.NewCollisionManager(foodMgr),
		stateMgr: manager.NewStateManager(manager.SpeedLimits{
			Min:     cfg.Game.MinSpeed,
			Max:     cfg.Game.MaxSpeed,
			Default: cfg.Game.DefaultSpeed,
		}),
		quotes: NewQuoteManager(cfg.Quotes.Items, cfg.Quotes.File, deps.Rand, deps.Clock, log),
		store:  deps.Store,
		audio:  deps.Audio,
		clock:  deps.Clock,
		log:    log,
	}
	g.log.Info("game created",
		zap.Int("grid_width", grid.Width),
		zap.Int("grid_height", grid.Height),
		zap.Stringer("direction", g.snake.Direction))
	return g
}

// Start kicks off the background music.
func (g *Game) Start() {
	g.audio.PlayBackground()
}

func (g *Game) IsRunning() bool { return g.stateMgr.IsRunning() }

func (g *Game) Phase() Phase { return g.stateMgr.Phase() }

func (g *Game) Speed() int { return g.stateMgr.Speed() }

func (g *Game) ScrollOffset() int { return g.stateMgr.ScrollOffset() }

func (g *Game) Dialog() Dialog { return g.dialog }

func (g *Game) Farewell() string { return g.farewell }

// Quitting reports whether the exit dialog was confirmed.
func (g *Game) Quitting() bool { return g.quitting }

func (g *Game) Leaderboard() Leaderboard { return g.board }

func (g *Game) Snake() *entity.Snake { return g.snake }

func (g *Game) Food() types.Point { return g.foodMgr.GetFood() }

func (g *Game) KeyHelpVisible() bool { return g.showKeyHelp }

// PlaceFood moves the food to p, wrapped onto the grid.
func (g *Game) PlaceFood(p types.Point) { g.foodMgr.Place(p) }

// PendingDirections returns the queued direction changes, oldest first.
func (g *Game) PendingDirections() []types.Direction { return g.inputMgr.Pending() }

// HandleInput applies one player event.
func (g *Game) HandleInput(in Input) {
	if g.quitting {
		return
	}
	if g.dialog.Showing {
		g.handleDialog(in)
		return
	}

	switch in.Kind {
	case InputEscape, InputClose:
		g.dialog.show()
		return
	case InputPause, InputSpeedUp, InputSpeedDown, InputRestart:
		g.audio.Play(SoundButton)
	}

	if g.stateMgr.Phase() == PhaseGameOver {
		switch in.Kind {
		case InputRestart:
			g.restart()
		case InputScroll:
			g.scroll(in.Amount)
		default:
			if in.Kind != InputNone {
				g.reject(errors.Wrapf(ErrInvalidTransition, "input %d during game over", in.Kind))
			}
		}
		return
	}

	switch in.Kind {
	case InputUp, InputDown, InputLeft, InputRight:
		g.steer(in.Kind.direction())
	case InputPause:
		if err := g.stateMgr.TogglePause(); err != nil {
			g.reject(err)
			return
		}
		if g.stateMgr.Phase() == PhasePaused {
			g.refreshLeaderboard()
		}
	case InputSpeedUp:
		g.reject(g.stateMgr.AdjustSpeed(1))
	case InputSpeedDown:
		g.reject(g.stateMgr.AdjustSpeed(-1))
	case InputToggleMusic:
		enabled := g.audio.ToggleBackground()
		g.audio.Play(SoundButton)
		g.log.Debug("background music toggled", zap.Bool("enabled", enabled))
	case InputToggleHelp:
		g.showKeyHelp = !g.showKeyHelp
		g.audio.Play(SoundButton)
	case InputScroll:
		g.scroll(in.Amount)
	case InputRestart:
		g.reject(g.stateMgr.Restart())
	}
}

// steer queues dir unless it points straight back at the current heading.
func (g *Game) steer(dir types.Direction) {
	if dir.IsReverseOf(g.snake.Direction) {
		return
	}
	g.inputMgr.Enqueue(dir)
}

func (g *Game) scroll(notches float64) {
	delta := -int(notches * float64(g.cfg.UI.ScrollStep))
	g.reject(g.stateMgr.Scroll(delta))
}

func (g *Game) handleDialog(in Input) {
	switch in.Kind {
	case InputLeft, InputRight:
		g.dialog.toggle()
		g.audio.Play(SoundButton)
	case InputDialogHover:
		g.dialog.Selected = in.Button
	case InputConfirm:
		g.resolveDialog(g.dialog.Selected == ButtonConfirm)
	case InputDialogClick:
		g.resolveDialog(in.Button == ButtonConfirm)
	case InputEscape:
		g.resolveDialog(false)
	}
}

func (g *Game) resolveDialog(quit bool) {
	g.dialog.Showing = false
	if !quit {
		return
	}
	if !g.snake.Terminated && g.snake.Score > 0 {
		g.saveScore(g.snake.Score)
	}
	g.quitting = true
	g.farewell = g.quotes.Random()
	g.farewellAt = g.clock.Now()
	g.log.Info("quit confirmed", zap.Int("score", g.snake.Score), zap.String("quote", g.farewell))
}

func (g *Game) restart() {
	if err := g.stateMgr.Restart(); err != nil {
		g.reject(err)
		return
	}
	g.snake.Reset()
	g.inputMgr.Clear()
	g.log.Info("game restarted", zap.Stringer("direction", g.snake.Direction))
}

// Tick advances the game by one frame at wall time now.
func (g *Game) Tick(now time.Time) {
	g.events.Fire(now)

	if g.quitting {
		if !now.Before(g.farewellAt.Add(g.cfg.FarewellDuration())) {
			g.stateMgr.Stop()
		}
		return
	}
	if g.dialog.Showing || g.stateMgr.Phase() != PhaseRunning {
		return
	}

	if next, ok := g.inputMgr.ConsumeOne(g.snake.Direction); ok {
		g.snake.SetDirection(next)
	}

	res := g.collisionMgr.HandleMovement(g.snake)
	switch {
	case res.Dead:
		g.gameOver(now)
	case res.AteFood:
		g.audio.Play(SoundEat)
	}
}

func (g *Game) gameOver(now time.Time) {
	if err := g.stateMgr.EndGame(); err != nil {
		g.reject(err)
		return
	}
	score := g.snake.Score
	g.log.Info("game over", zap.Int("score", score), zap.Int("length", g.snake.Length))
	if score > 0 {
		g.saveScore(score)
	}

	g.audio.StopBackground()
	g.audio.Play(SoundDeath)
	g.events.After(now, g.cfg.DeathPause(), eventResumeMusic, g.audio.PlayBackground)

	g.refreshLeaderboard()
}

func (g *Game) persistContext() (context.Context, context.CancelFunc) {
	return context.WithTimeout(context.Background(), g.cfg.PersistTimeout())
}

func (g *Game) saveScore(score int) {
	if g.store == nil {
		g.log.Warn("no score store, score not saved", zap.Int("score", score))
		return
	}
	ctx, cancel := g.persistContext()
	defer cancel()
	if err := g.store.Save(ctx, score); err != nil {
		g.log.Warn("failed to save score", zap.Int("score", score), zap.Error(err))
	}
}

func (g *Game) refreshLeaderboard() {
	if g.store == nil {
		return
	}
	ctx, cancel := g.persistContext()
	defer cancel()

	records, err := g.store.TopN(ctx, g.cfg.UI.Leaderboard.Limit)
	if err != nil {
		g.log.Warn("failed to load leaderboard", zap.Error(err))
		return
	}
	last, ok, err := g.store.LastRank(ctx)
	if err != nil {
		g.log.Warn("failed to load last rank", zap.Error(err))
	}
	g.board = Leaderboard{Records: records, Last: last, HasLast: ok && err == nil}
}

// reject logs an invalid transition. nil is ignored.
func (g *Game) reject(err error) {
	if err == nil {
		return
	}
	g.log.Debug("input ignored", zap.Error(err))
}

// Render draws the current frame. The renderer only reads state here.
func (g *Game) Render(r Renderer) {
	r.BeginFrame()

	switch g.stateMgr.Phase() {
	case PhaseRunning:
		g.drawBoard(r)
	case PhasePaused:
		g.drawBoard(r)
		g.drawLeaderboard(r)
	case PhaseGameOver:
		r.DrawBackground()
		g.drawLeaderboard(r)
		r.DrawGameOver()
	}

	r.DrawHint()
	if g.showKeyHelp {
		r.DrawKeyHelp()
	}
	if g.dialog.Showing {
		r.DrawDialog(g.dialog)
	}
	if g.quitting {
		r.DrawFarewell(g.farewell)
	}
	r.EndFrame()
}

func (g *Game) drawBoard(r Renderer) {
	r.DrawBackground()
	r.DrawSnake(g.snake.Body, g.snake.Direction)
	r.DrawFood(g.foodMgr.GetFood())
	r.DrawHUD(g.snake.Score, g.stateMgr.Speed())
}

func (g *Game) drawLeaderboard(r Renderer) {
	actual := r.DrawLeaderboard(g.board, g.stateMgr.ScrollOffset())
	g.stateMgr.SetScrollOffset(actual)
}

type silentSink struct{}

func (silentSink) Play(Sound)             {}
func (silentSink) PlayBackground()        {}
func (silentSink) StopBackground()        {}
func (silentSink) ToggleBackground() bool { return false }
