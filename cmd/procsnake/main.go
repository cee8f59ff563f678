// Command procsnake opens a window with a creature that chases the mouse cursor.
package main

import (
	"flag"
	"log/slog"
	"os"

	"procsnake/internal/config"
	"procsnake/internal/game"
	"procsnake/internal/logger"
	"procsnake/internal/render"
)

func main() {
	cfgPath := flag.String("config", "", "YAML config file (default $"+config.EnvConfig+")")
	preset := flag.String("preset", "", "creature preset: basic, outline or ribbon")
	volume := flag.Float64("volume", 0.5, "audio volume, 0 mutes")
	spine := flag.Bool("spine", false, "start with the skeleton overlay on")
	flag.Parse()

	cfg, err := config.FromEnv(*cfgPath)
	if err != nil {
		slog.Error("load config", "err", err)
		os.Exit(1)
	}
	if *preset != "" {
		cfg.Preset = *preset
	}
	log := logger.Init(logger.Config{Level: cfg.Logging.Level, Format: cfg.Logging.Format})

	cc, err := cfg.Resolve()
	if err != nil {
		log.Error("resolve config", "err", err)
		os.Exit(1)
	}

	style := render.DefaultStyle()
	style.ShowSpine = *spine
	log.Info("starting", "preset", cfg.Preset, "segments", len(cc.Radii))
	if err := game.RunDesktop(game.Options{
		Creature: cc,
		Style:    style,
		Volume:   *volume,
		Logger:   log,
	}); err != nil {
		log.Error("desktop", "err", err)
		os.Exit(1)
	}
}
