package render

// RGB is an 8-bit per channel colour.
type RGB struct {
	R, G, B uint8
}

func (c RGB) Mul(k uint8) RGB {
	return RGB{
		R: uint8((uint16(c.R) * uint16(k)) / 255),
		G: uint8((uint16(c.G) * uint16(k)) / 255),
		B: uint8((uint16(c.B) * uint16(k)) / 255),
	}
}

// Floats returns the colour as normalised GL components.
func (c RGB) Floats() (r, g, b float32) {
	return float32(c.R) / 255.0, float32(c.G) / 255.0, float32(c.B) / 255.0
}

func lerpU8(a, b uint8, t float64) uint8 {
	if t <= 0 {
		return a
	}
	if t >= 1 {
		return b
	}
	return uint8(float64(a) + (float64(b)-float64(a))*t)
}

// Lerp blends a toward b.
func Lerp(a, b RGB, t float64) RGB {
	return RGB{R: lerpU8(a.R, b.R, t), G: lerpU8(a.G, b.G, t), B: lerpU8(a.B, b.B, t)}
}

// Palette holds the creature scene colours.
var Palette = struct {
	Background RGB
	Fill       RGB
	Stroke     RGB
	Spine      RGB
	Ghost      RGB
	Target     RGB
	Hint       RGB
	Paused     RGB
}{
	Background: RGB{R: 255, G: 255, B: 255},
	Fill:       RGB{R: 103, G: 212, B: 219},
	Stroke:     RGB{R: 0, G: 0, B: 0},
	Spine:      RGB{R: 200, G: 200, B: 200},
	Ghost:      RGB{R: 80, G: 80, B: 80},
	Target:     RGB{R: 230, G: 41, B: 55},
	Hint:       RGB{R: 80, G: 80, B: 80},
	Paused:     RGB{R: 190, G: 33, B: 55},
}
