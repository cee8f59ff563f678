package game

// Window defaults. World coordinates are window pixels, origin top-left.
const (
	WindowWidth  = 800
	WindowHeight = 450
	WindowTitle  = "Procedural Animals"
)

// Simulation rate. The creature moves a fixed distance per tick, so ticks are
// decoupled from the display refresh.
const (
	TickRate        = 60
	MaxTicksPerDraw = 5
)

// HUD text.
const (
	HintScale      = 0.5 // 16 px glyphs at 1x
	HintMargin     = 20
	HintPause      = "Press SPACE to pause the movement"
	HintUnpause    = "Press SPACE to unpause the movement"
	SpineDebugHint = "TAB: skeleton"
)

// Audio.
const (
	SampleRate   = 44100
	ChannelCount = 2
	BitDepth     = 0 // 32-bit float (oto.FormatFloat32LE)
)
