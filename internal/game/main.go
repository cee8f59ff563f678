package game

import (
	"fmt"
	"log/slog"
	"runtime"

	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/go-gl/glfw/v3.3/glfw"

	"procsnake/internal/creature"
	"procsnake/internal/render"
)

// Options configures the desktop shell.
type Options struct {
	Creature creature.Config
	Style    render.Style
	Volume   float64 // 0 mutes
	Logger   *slog.Logger
}

// RunDesktop opens a window and animates one creature chasing the cursor
// until the window is closed or Escape is pressed.
func RunDesktop(opts Options) error {
	runtime.LockOSThread()
	log := opts.Logger
	if log == nil {
		log = slog.Default()
	}

	c, err := creature.New(opts.Creature)
	if err != nil {
		return err
	}

	window, err := initWindow(WindowTitle, WindowWidth, WindowHeight)
	if err != nil {
		return err
	}
	defer glfw.Terminate()
	defer window.Destroy()

	if err := gl.Init(); err != nil {
		return fmt.Errorf("gl init: %w", err)
	}

	// GL state.
	gl.Disable(gl.DEPTH_TEST)
	gl.Disable(gl.CULL_FACE)
	gl.Enable(gl.PROGRAM_POINT_SIZE)
	gl.Enable(gl.MULTISAMPLE)
	gl.PixelStorei(gl.UNPACK_ALIGNMENT, 1)

	rend, err := NewRenderer()
	if err != nil {
		return fmt.Errorf("renderer: %w", err)
	}
	defer rend.Destroy()
	if err := rend.InitFont(); err != nil {
		// The creature still renders without the hint line.
		log.Warn("font init failed, continuing without text", "err", err)
	}

	bus := NewEventBus()
	bus.SubscribeAll(func(e Event) {
		log.Debug(e.Type.String(), "tick", e.Tick, "x", e.Pos.X, "y", e.Pos.Y)
	})
	if opts.Volume > 0 {
		audio, err := NewAudio(opts.Volume)
		if err != nil {
			log.Warn("audio init failed (continuing without sound)", "err", err)
		} else {
			audio.Subscribe(bus)
		}
	}

	cfg := c.Config()
	log.Info("desktop shell started",
		"segments", cfg.Segments(),
		"contour", cfg.Contour,
		"max_bend", cfg.MaxBend,
	)

	var (
		cam    Camera
		target cursorTarget
		frame  render.Frame
		style  = opts.Style
		input  = NewInput()
		acc    float64
	)
	const tickDt = 1.0 / TickRate

	last := glfw.GetTime()
	for !window.ShouldClose() {
		now := glfw.GetTime()
		dt := now - last
		last = now
		if dt > 0.1 {
			dt = 0.1
		}

		glfw.PollEvents()
		if window.GetKey(glfw.KeyEscape) == glfw.Press {
			window.SetShouldClose(true)
			continue
		}

		fbW, fbH := window.GetFramebufferSize()
		if fbW <= 0 || fbH <= 0 {
			continue
		}
		winW, winH := window.GetSize()
		cam.FitWindow(winW, winH, fbW, fbH)

		if input.JustPressed(window, glfw.KeySpace) {
			ev := Event{Type: EventResumed, Pos: c.Snapshot().Head.Position, Tick: c.Ticks()}
			if c.TogglePause() {
				ev.Type = EventPaused
			}
			bus.Emit(ev)
		}
		if input.JustPressed(window, glfw.KeyTab) {
			style.ShowSpine = !style.ShowSpine
		}

		target.update(window, cam, fbW, fbH)
		acc += dt
		for n := 0; acc >= tickDt && n < MaxTicksPerDraw; n++ {
			acc -= tickDt
			res := c.Step(&target)
			switch {
			case res.JustStopped:
				bus.Emit(Event{Type: EventHeadParked, Pos: target.pos, Tick: c.Ticks()})
			case res.JustResumed:
				bus.Emit(Event{Type: EventHeadChasing, Pos: target.pos, Tick: c.Ticks()})
			}
		}
		if acc > tickDt {
			acc = 0
		}

		snap := c.Snapshot()
		if snap.Paused {
			snap.Target = target.pos
		}
		frame.Build(snap, style)

		rend.BeginFrame(render.Palette.Background, fbW, fbH)
		rend.DrawFrame(&frame, cam, fbW, fbH)
		rend.drawHint(snap.Paused, style.ShowSpine, cam, fbW, fbH)
		rend.FlushText(fbW, fbH)

		window.SwapBuffers()
	}
	log.Info("desktop shell stopped", "ticks", c.Ticks())
	return nil
}
