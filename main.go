package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"
	"time"

	"snake-engine/ai"
	"snake-engine/config"
	"snake-engine/game"
	"snake-engine/input"
	"snake-engine/sound"
	"snake-engine/term"
	"snake-engine/ui"

	"github.com/gdamore/tcell/v2"
	rl "github.com/gen2brain/raylib-go/raylib"
	"github.com/rs/zerolog"
)

func main() {
	os.Exit(run())
}

// run returns the process exit code so deferred cleanup runs before exit
func run() int {
	configPath := flag.String("config", "", "Path to a TOML config file")
	frontend := flag.String("frontend", "", "Front-end: raylib, terminal or headless")
	speed := flag.Int("speed", 0, "Tick interval in milliseconds (lower = faster)")
	seed := flag.Uint64("seed", 0, "Random seed for food placement (0 = time based)")
	ticks := flag.Int("ticks", 0, "Number of ticks to run in headless mode")
	brain := flag.String("autopilot", "", "Autopilot brain: table or dqn")
	autoplay := flag.Bool("autoplay", false, "Let the autopilot play in the window or terminal")
	logLevel := flag.String("log-level", "", "Log level: debug, info, warn, error")
	logFile := flag.String("log-file", "", "Write logs to this file instead of stderr")
	mute := flag.Bool("mute", false, "Disable sound cues")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return 1
	}
	applyFlags(&cfg, *frontend, *speed, *seed, *ticks, *logLevel, *logFile, *mute)
	if *brain != "" {
		cfg.Autopilot = *brain
	}
	if *autoplay {
		cfg.AutoPlay = true
	}
	if err := cfg.Validate(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		return 2
	}

	logger, closeLog, err := newLogger(cfg)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return 1
	}
	defer closeLog()

	g := game.NewGame(cfg.GameSettings(), game.WithLogger(logger))

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	var pilot *ai.Autopilot
	if cfg.Frontend == config.FrontendHeadless || cfg.AutoPlay {
		if pilot, err = newAutopilot(cfg); err != nil {
			logger.Error().Err(err).Msg("autopilot setup failed")
			return 1
		}
	}

	switch cfg.Frontend {
	case config.FrontendHeadless:
		err = runHeadless(ctx, g, pilot, cfg, logger)
	case config.FrontendTerminal:
		err = runTerminal(ctx, g, pilot, cfg, logger)
	default:
		var src input.Source = ui.NewKeyboard()
		if pilot != nil {
			src = pilot
		}
		runWindow(ctx, g, src, cfg, logger)
	}
	if err != nil {
		logger.Error().Err(err).Msg("front-end failed")
		return 1
	}

	stats := g.GetStats()
	event := logger.Info().
		Int("games", stats.GamesPlayed).
		Int("best", stats.BestLength).
		Float64("average", stats.AverageScore).
		Float64("median", stats.MedianScore).
		Float64("elapsed_s", g.ElapsedTime())
	if pilot != nil {
		event = event.
			Str("autopilot", cfg.Autopilot).
			Int("autopilot_games", pilot.GamesPlayed).
			Float64("autopilot_reward", pilot.TotalReward)
	}
	event.Msg("session finished")
	return 0
}

func applyFlags(cfg *config.Config, frontend string, speed int, seed uint64, ticks int, level, file string, mute bool) {
	if frontend != "" {
		cfg.Frontend = frontend
	}
	if speed > 0 {
		cfg.TickMillis = speed
	}
	if seed != 0 {
		cfg.Seed = seed
	}
	if ticks > 0 {
		cfg.HeadlessTicks = ticks
	}
	if level != "" {
		cfg.LogLevel = level
	}
	if file != "" {
		cfg.LogFile = file
	}
	if mute {
		cfg.Sound = false
	}
}

// newLogger writes to the configured file, or to stderr. The terminal
// front-end owns stderr's screen, so without a file its logs are dropped.
func newLogger(cfg config.Config) (zerolog.Logger, func(), error) {
	level, err := zerolog.ParseLevel(cfg.LogLevel)
	if err != nil {
		return zerolog.Nop(), func() {}, fmt.Errorf("invalid log level: %w", err)
	}

	var out io.Writer = zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.Kitchen}
	closeFn := func() {}
	switch {
	case cfg.LogFile != "":
		f, err := os.OpenFile(cfg.LogFile, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
		if err != nil {
			return zerolog.Nop(), closeFn, fmt.Errorf("failed to open log file: %w", err)
		}
		out = f
		closeFn = func() { f.Close() }
	case cfg.Frontend == config.FrontendTerminal:
		out = io.Discard
	}

	return zerolog.New(out).Level(level).With().Timestamp().Logger(), closeFn, nil
}

func newSound(cfg config.Config, logger zerolog.Logger) sound.Player {
	if !cfg.Sound {
		return sound.Mute{}
	}
	beeper, err := sound.NewBeeper()
	if err != nil {
		// Non-fatal, game can run without sound
		logger.Warn().Err(err).Msg("audio initialization failed")
		return sound.Mute{}
	}
	return beeper
}

func newAutopilot(cfg config.Config) (*ai.Autopilot, error) {
	brain, err := ai.NewBrain(cfg.Autopilot, cfg.Grid(), cfg.Seed+2)
	if err != nil {
		return nil, err
	}
	return ai.NewAutopilot(cfg.Grid(), brain, cfg.Seed+1), nil
}

// runHeadless plays a fixed number of ticks from src without a display
func runHeadless(ctx context.Context, g *game.Game, src input.Source, cfg config.Config, logger zerolog.Logger) error {
	frame := g.State()
	for i := 0; i < cfg.HeadlessTicks; i++ {
		if ctx.Err() != nil {
			break
		}
		if err := input.Feed(src, frame); err != nil {
			return err
		}
		frame = g.Tick(src.Sample())
	}
	logger.Info().
		Int("ticks", int(frame.Tick)).
		Str("autopilot", cfg.Autopilot).
		Msg("headless run complete")
	return nil
}

func runTerminal(ctx context.Context, g *game.Game, pilot *ai.Autopilot, cfg config.Config, logger zerolog.Logger) error {
	screen, err := tcell.NewScreen()
	if err != nil {
		return fmt.Errorf("problem creating screen: %w", err)
	}
	if err := screen.Init(); err != nil {
		return fmt.Errorf("init problem: %w", err)
	}
	// Restore the terminal even if the game panics
	defer func() {
		if r := recover(); r != nil {
			screen.Fini()
			panic(r)
		}
		screen.Fini()
	}()

	t := term.New(screen, cfg.Grid(), newSound(cfg, logger), logger)
	src := t.Keys()
	if pilot != nil {
		src = pilot
	}
	return t.Run(ctx, g, src, cfg.TickInterval())
}

func runWindow(ctx context.Context, g *game.Game, src input.Source, cfg config.Config, logger zerolog.Logger) {
	rl.InitWindow(800, 800, "Snake")
	rl.SetWindowState(rl.FlagWindowResizable)
	defer rl.CloseWindow()

	rl.SetTargetFPS(60)

	renderer := ui.NewRenderer(cfg.Grid())
	clock := game.NewClock(cfg.TickInterval(), time.Now())
	player := newSound(cfg, logger)

	frame := g.State()
	stats := g.GetStats()
	feed(src, frame, logger)

	for !rl.WindowShouldClose() {
		if rl.IsKeyPressed(rl.KeyQ) || ctx.Err() != nil {
			break
		}

		// Input every frame, simulation at the fixed interval
		clock.Sample(src.Sample())
		if clock.Due(time.Now()) {
			frame = g.Tick(clock.Take())
			feed(src, frame, logger)
			player.Play(frame)
			if frame.JustReset {
				stats = g.GetStats()
			}
		}

		renderer.Draw(frame, stats)
	}
}

func feed(src input.Source, frame game.FrameState, logger zerolog.Logger) {
	if err := input.Feed(src, frame); err != nil {
		logger.Warn().Err(err).Msg("input source rejected frame")
	}
}
