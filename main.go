package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"

	rl "github.com/gen2brain/raylib-go/raylib"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"snaker/audio"
	"snaker/config"
	"snaker/game"
	"snaker/store"
	"snaker/ui"
	"snaker/ui/terminal"
)

func main() {
	os.Exit(run())
}

func run() int {
	configPath := flag.String("config", "config.yaml", "Path to the YAML config file")
	frontend := flag.String("ui", "raylib", "Frontend to play in: raylib or terminal")
	debug := flag.Bool("debug", false, "Log at debug level")
	logPath := flag.String("log", "snaker.log", "Log file")
	scores := flag.Bool("scores", false, "Print the leaderboard and exit")
	limit := flag.Int("n", 10, "Number of leaderboard rows printed by -scores")
	mute := flag.Bool("mute", false, "Disable all sound")
	flag.Parse()

	log, err := newLogger(*logPath, *debug)
	if err != nil {
		fmt.Fprintf(os.Stderr, "logger: %v\n", err)
		return 1
	}
	defer log.Sync()

	cfg, found, err := config.Load(*configPath)
	if err != nil {
		log.Error("failed to load config", zap.String("path", *configPath), zap.Error(err))
		fmt.Fprintf(os.Stderr, "config: %v\n", err)
		return 1
	}
	if !found {
		log.Info("config file not found, using defaults", zap.String("path", *configPath))
	}

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	dbPath := filepath.Join(cfg.Resources.Directory, cfg.Resources.DBName)
	st, err := store.Open(ctx, dbPath, cfg.Game.PlayerName, store.WithLogger(log.Named("store")))

	if *scores {
		if err != nil {
			fmt.Fprintf(os.Stderr, "scores: %v\n", err)
			return 1
		}
		defer st.Close()
		if err := printScores(ctx, os.Stdout, st, *limit); err != nil {
			fmt.Fprintf(os.Stderr, "scores: %v\n", err)
			return 1
		}
		return 0
	}

	deps := game.Deps{Log: log}
	if err != nil {
		log.Warn("score store unavailable, scores will not be saved", zap.String("path", dbPath), zap.Error(err))
	} else {
		defer st.Close()
		deps.Store = st
	}

	if *mute {
		deps.Audio = &audio.Silent{}
	} else {
		player := audio.Load(cfg.Audio, log.Named("audio"))
		if err := player.Init(); err != nil {
			log.Warn("audio device unavailable, playing silently", zap.Error(err))
		}
		defer player.Close()
		deps.Audio = player
	}

	g := game.NewGame(cfg, deps)

	switch *frontend {
	case "terminal":
		err = runTerminal(ctx, g, cfg, log)
	case "raylib":
		err = runWindow(ctx, g, cfg, log)
	default:
		fmt.Fprintf(os.Stderr, "unknown -ui %q, want raylib or terminal\n", *frontend)
		return 2
	}
	if err != nil && ctx.Err() == nil {
		log.Error("game stopped", zap.Error(err))
		fmt.Fprintf(os.Stderr, "snaker: %v\n", err)
		return 1
	}
	return 0
}

func runWindow(ctx context.Context, g *game.Game, cfg *config.Config, log *zap.Logger) error {
	rl.SetTraceLogLevel(rl.LogWarning)
	rl.InitWindow(int32(cfg.Window.Width), int32(cfg.Window.Height), cfg.Window.Title)
	defer rl.CloseWindow()

	renderer := ui.NewRenderer(cfg, log.Named("ui"))
	defer renderer.Close()

	return g.Run(ctx, ui.NewInput(cfg), renderer)
}

func runTerminal(ctx context.Context, g *game.Game, cfg *config.Config, log *zap.Logger) error {
	screen, err := terminal.Open(cfg, log.Named("terminal"))
	if err != nil {
		return err
	}
	defer screen.Close()

	return g.Run(ctx, screen, screen)
}

// newLogger writes JSON logs to path so nothing is printed over the game.
func newLogger(path string, debug bool) (*zap.Logger, error) {
	zcfg := zap.NewProductionConfig()
	zcfg.OutputPaths = []string{path}
	zcfg.ErrorOutputPaths = []string{path}
	zcfg.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
	if debug {
		zcfg.Level = zap.NewAtomicLevelAt(zap.DebugLevel)
		zcfg.Development = true
	}
	return zcfg.Build()
}
