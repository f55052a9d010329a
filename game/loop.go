package game

import (
	"context"
	"time"

	"go.uber.org/zap"
)

// Run drives the game until it stops or ctx is cancelled. Each frame drains
// the input source, advances one tick, renders, then sleeps out the rest of
// the tick interval for the current speed.
func (g *Game) Run(ctx context.Context, in InputSource, r Renderer) error {
	g.Start()
	defer g.audio.StopBackground()

	for g.stateMgr.IsRunning() {
		if err := ctx.Err(); err != nil {
			g.log.Info("game loop cancelled", zap.Error(err))
			return err
		}

		frameStart := g.clock.Now()
		for _, ev := range in.Poll() {
			g.HandleInput(ev)
		}
		g.Tick(frameStart)
		g.Render(r)

		if wait := g.frameInterval() - g.clock.Since(frameStart); wait > 0 {
			g.clock.Sleep(wait)
		}
	}

	g.log.Info("game loop finished", zap.Int("score", g.snake.Score))
	return nil
}

func (g *Game) frameInterval() time.Duration {
	speed := g.stateMgr.Speed()
	if speed <= 0 {
		speed = 1
	}
	return time.Second / time.Duration(speed)
}
