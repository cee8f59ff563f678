// Command procsnake-trace runs a creature along a scripted target path with no
// window and writes a plot, a chart and the resolved configuration.
package main

import (
	"flag"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"gonum.org/v1/plot/vg"

	"procsnake/internal/config"
	"procsnake/internal/logger"
	"procsnake/internal/trace"
)

// world matches the desktop window by default.
var world struct{ w, h float64 }

func main() {
	cfgPath := flag.String("config", "", "YAML config file (default $"+config.EnvConfig+")")
	preset := flag.String("preset", "", "creature preset: basic, outline or ribbon")
	path := flag.String("path", trace.PathLissajous, "target path: "+strings.Join(trace.PathNames(), ", "))
	ticks := flag.Int("ticks", 1200, "ticks to simulate")
	every := flag.Int("every", 120, "keep an outline every N ticks for the plot, 0 for the last only")
	pauses := flag.String("pause", "", "comma separated ticks at which pause toggles")
	out := flag.String("out", "trace-out", "output directory")
	size := flag.Float64("size", 8, "plot size in inches")
	flag.Float64Var(&world.w, "w", 800, "world width the path is scaled to")
	flag.Float64Var(&world.h, "h", 450, "world height the path is scaled to")
	flag.Parse()

	if err := run(*cfgPath, *preset, *path, *ticks, *every, *pauses, *out, vg.Length(*size)*vg.Inch); err != nil {
		logger.L().Error("trace failed", "err", err)
		os.Exit(1)
	}
}

func run(cfgPath, preset, pathName string, ticks, every int, pauses, out string, size vg.Length) error {
	cfg, err := config.FromEnv(cfgPath)
	if err != nil {
		return err
	}
	if preset != "" {
		cfg.Preset = preset
	}
	log := logger.Init(logger.Config{Level: cfg.Logging.Level, Format: cfg.Logging.Format})

	cc, err := cfg.Resolve()
	if err != nil {
		return err
	}
	// Start in the middle so the first frames are on the plot.
	cc.Start.X, cc.Start.Y = world.w/2, world.h/2

	path, err := trace.NewPath(pathName, world.w, world.h)
	if err != nil {
		return err
	}
	toggles, err := parseTicks(pauses)
	if err != nil {
		return err
	}

	tr, err := trace.Run(cc, path, trace.Options{Ticks: ticks, Every: every, TogglePauseAt: toggles, Logger: log})
	if err != nil {
		return err
	}

	if err := os.MkdirAll(out, 0o755); err != nil {
		return fmt.Errorf("create output dir: %w", err)
	}
	png := filepath.Join(out, "trace.png")
	if err := tr.SavePNG(png, size); err != nil {
		return err
	}
	if err := writeFile(filepath.Join(out, "trace.html"), tr.WriteHTML); err != nil {
		return err
	}
	if err := writeFile(filepath.Join(out, "config.yaml"), tr.WriteConfig); err != nil {
		return err
	}

	log.Info("trace written",
		"dir", out,
		"preset", cfg.Preset,
		"ticks", tr.Stats.Ticks,
		"paused", tr.Stats.PausedTicks,
		"parks", tr.Stats.Parks,
		"resumes", tr.Stats.Resumes,
		"mean_reach", tr.Stats.MeanReach,
	)
	return nil
}

func writeFile(name string, write func(w io.Writer) error) error {
	f, err := os.Create(name)
	if err != nil {
		return err
	}
	if err := write(f); err != nil {
		f.Close()
		return fmt.Errorf("write %s: %w", name, err)
	}
	return f.Close()
}

func parseTicks(s string) ([]int, error) {
	if s == "" {
		return nil, nil
	}
	var out []int
	for _, f := range strings.Split(s, ",") {
		n, err := strconv.Atoi(strings.TrimSpace(f))
		if err != nil {
			return nil, fmt.Errorf("pause tick %q: %w", f, err)
		}
		out = append(out, n)
	}
	return out, nil
}
