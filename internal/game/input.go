package game

import (
	"github.com/go-gl/glfw/v3.3/glfw"

	"procsnake/internal/geom"
)

type Input struct {
	prevKeys map[glfw.Key]bool
}

func NewInput() *Input {
	return &Input{
		prevKeys: make(map[glfw.Key]bool),
	}
}

func (in *Input) JustPressed(window *glfw.Window, key glfw.Key) bool {
	down := window.GetKey(key) == glfw.Press
	jp := down && !in.prevKeys[key]
	in.prevKeys[key] = down
	return jp
}

// CursorWorldPos converts cursor position to world coordinates.
func CursorWorldPos(window *glfw.Window, cam Camera, fbW, fbH int) geom.Point {
	cx, cy := window.GetCursorPos()
	winW, winH := window.GetSize()
	if winW <= 0 || winH <= 0 || cam.Zoom <= 0 {
		return geom.Pt(cam.X, cam.Y)
	}
	scaleX := float64(fbW) / float64(winW)
	scaleY := float64(fbH) / float64(winH)
	fx := cx * scaleX
	fy := cy * scaleY
	wx := cam.X + (fx-float64(fbW)*0.5)/cam.Zoom
	wy := cam.Y + (fy-float64(fbH)*0.5)/cam.Zoom
	return geom.Pt(wx, wy)
}

// cursorTarget feeds the mouse position to the creature. The cursor is read
// once per frame and shared by every tick run in that frame.
type cursorTarget struct {
	pos geom.Point
}

func (c *cursorTarget) update(window *glfw.Window, cam Camera, fbW, fbH int) {
	c.pos = CursorWorldPos(window, cam, fbW, fbH)
}

func (c *cursorTarget) Target() geom.Point { return c.pos }
