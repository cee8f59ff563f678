// Package term runs the creature in a terminal: the mouse steers the head,
// SPACE pauses, and the body is rasterised onto character cells.
package term

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/gdamore/tcell/v2"

	"procsnake/internal/creature"
	"procsnake/internal/geom"
	"procsnake/internal/render"
)

// Options configures the terminal shell.
type Options struct {
	Creature   creature.Config
	Viewport   Viewport
	ShowTarget bool
	Volume     float64 // 0 mutes
	Logger     *slog.Logger
}

const (
	frameInterval = time.Second / 60
	hintPause     = "SPACE pause  TAB target  q quit"
	hintUnpause   = "SPACE unpause  TAB target  q quit"
)

func rgb(c render.RGB) tcell.Color {
	return tcell.NewRGBColor(int32(c.R), int32(c.G), int32(c.B))
}

type cellLook struct {
	ch    rune
	style tcell.Style
}

// cellStyles maps kinds to a rune and style on the scene background.
func cellStyles() map[CellKind]cellLook {
	p := render.Palette
	base := tcell.StyleDefault.Background(rgb(p.Background)).Foreground(rgb(p.Stroke))
	return map[CellKind]cellLook{
		CellEmpty:  {' ', base},
		CellBody:   {' ', base.Background(rgb(p.Fill))},
		CellEdge:   {' ', base.Background(rgb(p.Stroke))},
		CellHead:   {' ', base.Background(rgb(p.Fill.Mul(210)))},
		CellEye:    {'●', base.Background(rgb(p.Fill)).Foreground(rgb(p.Stroke))},
		CellTarget: {'●', base.Foreground(rgb(p.Target))},
	}
}

type shell struct {
	opts   Options
	screen tcell.Screen
	c      *creature.Creature
	snd    *Sounder
	log    *slog.Logger

	target geom.Point
	grid   Grid
}

// Run takes over the terminal until ctx is cancelled or the user quits.
func Run(ctx context.Context, opts Options) error {
	if opts.Viewport.CellW <= 0 || opts.Viewport.CellH <= 0 {
		opts.Viewport = DefaultViewport
	}
	log := opts.Logger
	if log == nil {
		log = slog.Default()
	}
	c, err := creature.New(opts.Creature)
	if err != nil {
		return err
	}

	screen, err := tcell.NewScreen()
	if err != nil {
		return fmt.Errorf("new screen: %w", err)
	}
	if err := screen.Init(); err != nil {
		return fmt.Errorf("init screen: %w", err)
	}
	defer screen.Fini()
	screen.EnableMouse()
	screen.HideCursor()

	snd, err := NewSounder(opts.Volume)
	if err != nil {
		// Non-fatal, the shell runs without sound.
		log.Warn("audio init failed", "err", err)
	}
	defer snd.Close()

	sh := &shell{opts: opts, screen: screen, c: c, snd: snd, log: log, target: c.Snapshot().Target}
	return sh.run(ctx)
}

// pumpEvents forwards polled events to out until poll returns nil (the
// screen was finalised) or ctx is done.
func pumpEvents(ctx context.Context, poll func() tcell.Event, out chan<- tcell.Event) {
	for {
		ev := poll()
		if ev == nil {
			return
		}
		select {
		case out <- ev:
		case <-ctx.Done():
			return
		}
	}
}

func (sh *shell) run(ctx context.Context) error {
	ticker := time.NewTicker(frameInterval)
	defer ticker.Stop()

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	eventChan := make(chan tcell.Event, 100)
	go pumpEvents(ctx, sh.screen.PollEvent, eventChan)

	styles := cellStyles()
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()

		case ev := <-eventChan:
			if !sh.handleInput(ev) {
				sh.log.Info("terminal shell stopped", "ticks", sh.c.Ticks())
				return nil
			}

		case <-ticker.C:
			res := sh.c.Tick(sh.target)
			switch {
			case res.JustStopped:
				sh.snd.Play(CuePark)
				sh.log.Debug("head parked", "tick", sh.c.Ticks())
			case res.JustResumed:
				sh.snd.Play(CueChase)
				sh.log.Debug("head chasing", "tick", sh.c.Ticks())
			}
			sh.draw(styles)
		}
	}
}

func (sh *shell) handleInput(ev tcell.Event) bool {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		if ev.Key() == tcell.KeyEscape || ev.Key() == tcell.KeyCtrlC ||
			(ev.Key() == tcell.KeyRune && ev.Rune() == 'q') {
			return false
		}
		switch {
		case ev.Key() == tcell.KeyTab:
			sh.opts.ShowTarget = !sh.opts.ShowTarget
		case ev.Key() == tcell.KeyRune && ev.Rune() == ' ':
			if sh.c.TogglePause() {
				sh.snd.Play(CuePause)
				sh.log.Debug("paused", "tick", sh.c.Ticks())
			} else {
				sh.snd.Play(CueResume)
				sh.log.Debug("resumed", "tick", sh.c.Ticks())
			}
		}

	case *tcell.EventMouse:
		x, y := ev.Position()
		sh.target = sh.opts.Viewport.CellCenter(x, y)

	case *tcell.EventResize:
		sh.screen.Sync()
	}
	return true
}

func (sh *shell) draw(styles map[CellKind]cellLook) {
	w, h := sh.screen.Size()
	if w <= 0 || h <= 1 {
		return
	}
	snap := sh.c.Snapshot()
	snap.Target = sh.target

	sh.grid.Resize(w, h-1)
	sh.grid.Rasterize(snap, sh.opts.Viewport, sh.opts.ShowTarget)
	for y := 0; y < sh.grid.H; y++ {
		for x := 0; x < sh.grid.W; x++ {
			cs := styles[sh.grid.At(x, y)]
			sh.screen.SetContent(x, y, cs.ch, nil, cs.style)
		}
	}

	hint, col := hintPause, render.Palette.Hint
	if snap.Paused {
		hint, col = hintUnpause, render.Palette.Paused
	}
	bar := styles[CellEmpty].style.Foreground(rgb(col))
	for x := 0; x < w; x++ {
		sh.screen.SetContent(x, h-1, ' ', nil, bar)
	}
	start := max((w-len(hint))/2, 0)
	for i, r := range hint {
		sh.screen.SetContent(start+i, h-1, r, nil, bar)
	}
	sh.screen.Show()
}
