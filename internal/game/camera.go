package game

// Camera maps world pixels to framebuffer pixels. The view is fixed on the
// window; Zoom only absorbs the framebuffer/window ratio on HiDPI displays.
type Camera struct {
	X, Y float64 // world-pixel space, camera centre
	Zoom float64 // framebuffer pixels per world pixel
}

// FitWindow centres the camera on the window and matches its pixel density.
func (c *Camera) FitWindow(winW, winH, fbW, fbH int) {
	c.X = float64(winW) * 0.5
	c.Y = float64(winH) * 0.5
	c.Zoom = 1
	if winW > 0 && fbW > 0 {
		c.Zoom = float64(fbW) / float64(winW)
	}
}
