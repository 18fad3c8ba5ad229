// Command indicator-viewer draws the demo world with its container indicators.
//
// Keys: A/D and W/S (or the arrows) orbit, E/Q zoom, Space steps the demo script, P runs
// it continuously, I toggles all indicators, C toggles chests, T cycles the indicator
// colour (Shift reverses), F5 saves, V logs the frame profile and Esc quits. Dragging
// with the left button orbits and the wheel zooms.
package main

import (
	"flag"
	"fmt"
	"os"
	"runtime"

	"github.com/go-gl/glfw/v3.3/glfw"
	"go.uber.org/multierr"
	"go.uber.org/zap"

	"container-indicator/internal/config"
	"container-indicator/internal/game"
	"container-indicator/internal/logger"
	"container-indicator/internal/viewer"
)

func init() {
	runtime.LockOSThread()
}

func main() {
	if err := run(); err != nil {
		fmt.Fprintln(os.Stderr, "indicator-viewer:", err)
		os.Exit(1)
	}
}

func run() error {
	configPath := flag.String("config", "indicator.yaml", "settings file, rewritten on start")
	dataDir := flag.String("data", "", "block database directory (empty keeps it in memory)")
	debug := flag.Bool("debug", false, "log at debug level")
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
	log := logger.Named("viewer")
	if cfgErr != nil {
		log.Warn("could not write config", zap.String("path", *configPath), zap.Error(cfgErr))
	}

	if err := glfw.Init(); err != nil {
		return fmt.Errorf("init glfw: %w", err)
	}
	defer glfw.Terminate()

	window, err := viewer.SetupWindow("container indicator", 1280, 720)
	if err != nil {
		return fmt.Errorf("create window: %w", err)
	}

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

	app, err := viewer.NewApp(window, s, demo, log)
	if err != nil {
		return multierr.Append(err, s.Close())
	}
	app.Run()
	app.Dispose()
	return s.Close()
}
