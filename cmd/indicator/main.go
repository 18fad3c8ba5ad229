// Command indicator runs the container indicator simulation without a window. It builds
// a demo world, drives scripted inventory changes for a number of ticks while meshing
// in the background, and prints the resulting indicator flags.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"go.uber.org/multierr"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"container-indicator/internal/config"
	"container-indicator/internal/game"
	"container-indicator/internal/logger"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintln(os.Stderr, "indicator:", err)
		os.Exit(1)
	}
}

func run() error {
	configPath := flag.String("config", "indicator.yaml", "settings file, rewritten on start")
	dataDir := flag.String("data", "", "block database directory (empty keeps it in memory)")
	debug := flag.Bool("debug", false, "log at debug level")
	ticks := flag.Int("ticks", 200, "number of simulation ticks to run")
	every := flag.Int("step", 5, "apply one scripted inventory change every n ticks")
	realtime := flag.Bool("realtime", false, "pace ticks at the game's tick rate")
	flag.Parse()

	cfg, cfgErr := config.Load(*configPath)
	level := cfg.Logging.Level
	if *debug {
		level = "debug"
	}
	if err := logger.Init(level, cfg.Logging.LogFile); err != nil {
		return fmt.Errorf("init logger: %w", err)
	}
	defer logger.Sync()
	log := logger.Named("indicator")
	if cfgErr != nil {
		log.Warn("could not write config", zap.String("path", *configPath), zap.Error(cfgErr))
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	s, err := game.NewSession(game.Options{
		ConfigPath: *configPath,
		Config:     cfg,
		DataDir:    *dataDir,
		Logger:     logger.Named("game"),
	})
	if err != nil {
		return err
	}

	demo := game.BuildDemo(s.World)
	if _, err := s.Load(); err != nil {
		log.Warn("some stored blocks could not be restored", zap.Error(err))
	}

	var (
		meshed   int
		overlays int
	)
	kick := make(chan struct{}, 1)
	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		defer close(kick)
		limiter := game.NewLimiter(0)
		if *realtime {
			limiter = game.NewLimiter(game.TicksPerSecond)
		}
		step := max(1, *every)
		for tick := range *ticks {
			select {
			case <-gctx.Done():
				return nil
			default:
			}
			if tick%step == 0 {
				demo.Step(s.World, tick/step)
			}
			s.Tick()
			select {
			case kick <- struct{}{}:
			default:
			}
			limiter.Wait()
		}
		s.Settle(*ticks)
		return nil
	})

	g.Go(func() error {
		for range kick {
			meshes, err := s.Meshes(gctx)
			if err != nil {
				return err
			}
			meshed += len(meshes)
			for _, m := range meshes {
				overlays += m.OverlayQuads
			}
		}
		return nil
	})

	err = g.Wait()
	if errors.Is(err, context.Canceled) {
		err = nil
	}

	printSummary(s, meshed, overlays)
	return multierr.Append(err, s.Close())
}

func printSummary(s *game.Session, meshed, overlays int) {
	cfg := s.Config.Get()
	fmt.Printf("session %s: %d ticks, indicators %v, colour %v, fuel %v\n",
		s.ID, s.Ticks(), cfg.Enabled, cfg.IndicatorColor, cfg.FuelColor)
	for _, b := range s.Summaries() {
		fmt.Println(" ", b)
	}
	fmt.Printf("meshed %d chunks, %d overlay quads drawn in total\n", meshed, overlays)
}
