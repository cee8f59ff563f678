// Command procsnake-term runs the creature in a terminal. Click or drag to
// move the target.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"procsnake/internal/config"
	"procsnake/internal/logger"
	"procsnake/internal/term"
)

func main() {
	cfgPath := flag.String("config", "", "YAML config file (default $"+config.EnvConfig+")")
	preset := flag.String("preset", "", "creature preset: basic, outline or ribbon")
	volume := flag.Float64("volume", 0.3, "audio volume, 0 mutes")
	logFile := flag.String("log", "", "write logs to this file; the terminal is taken by the screen")
	cellW := flag.Float64("cell-w", term.DefaultViewport.CellW, "world pixels per column")
	cellH := flag.Float64("cell-h", term.DefaultViewport.CellH, "world pixels per row")
	flag.Parse()

	if err := run(*cfgPath, *preset, *logFile, *volume, term.Viewport{CellW: *cellW, CellH: *cellH}); err != nil {
		fmt.Fprintln(os.Stderr, "procsnake-term:", err)
		os.Exit(1)
	}
}

func run(cfgPath, preset, logFile string, volume float64, vp term.Viewport) error {
	cfg, err := config.FromEnv(cfgPath)
	if err != nil {
		return err
	}
	if preset != "" {
		cfg.Preset = preset
	}

	var out io.Writer = io.Discard
	if logFile != "" {
		f, err := os.OpenFile(logFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return fmt.Errorf("open log: %w", err)
		}
		defer f.Close()
		out = f
	}
	log := logger.Init(logger.Config{Level: cfg.Logging.Level, Format: cfg.Logging.Format, Output: out})

	cc, err := cfg.Resolve()
	if err != nil {
		return err
	}
	// World coordinates follow the terminal, so the creature starts top left
	// instead of the desktop's off-screen corner.
	cc.Start = vp.CellCenter(0, 0)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	log.Info("starting", "preset", cfg.Preset, "cell_w", vp.CellW, "cell_h", vp.CellH)
	err = term.Run(ctx, term.Options{
		Creature:   cc,
		Viewport:   vp,
		ShowTarget: true,
		Volume:     volume,
		Logger:     log,
	})
	if err != nil && !errors.Is(err, context.Canceled) {
		log.Error("terminal", "err", err)
		return err
	}
	return nil
}
