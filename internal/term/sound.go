package term

import (
	"math"
	"sync"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
	"github.com/gopxl/beep/generators"
	"github.com/gopxl/beep/speaker"
)

const sampleRate = beep.SampleRate(44100)

// Cue is a short sound tied to a creature state change.
type Cue int

const (
	CuePause Cue = iota
	CueResume
	CuePark
	CueChase
)

type tone struct {
	freq float64
	dur  time.Duration
}

var cueTones = map[Cue][]tone{
	CuePause:  {{880, 60 * time.Millisecond}, {587.33, 90 * time.Millisecond}},
	CueResume: {{587.33, 60 * time.Millisecond}, {880, 90 * time.Millisecond}},
	CuePark:   {{196, 120 * time.Millisecond}},
	CueChase:  {{523.25, 40 * time.Millisecond}, {783.99, 40 * time.Millisecond}},
}

// cueStreamer builds the tone sequence for c at the given volume (0..1).
func cueStreamer(c Cue, sr beep.SampleRate, vol float64) (beep.Streamer, error) {
	var parts []beep.Streamer
	for _, tn := range cueTones[c] {
		sine, err := generators.SineTone(sr, tn.freq)
		if err != nil {
			return nil, err
		}
		parts = append(parts, beep.Take(sr.N(tn.dur), sine))
	}
	return newVolume(beep.Seq(parts...), vol), nil
}

// newVolume wraps s in a volume effect. math.Log2(0) is -Inf, so zero volume
// becomes silence.
func newVolume(s beep.Streamer, vol float64) beep.Streamer {
	if vol <= 0 {
		return &effects.Volume{Streamer: s, Base: 2, Volume: 0, Silent: true}
	}
	return &effects.Volume{Streamer: s, Base: 2, Volume: math.Log2(vol), Silent: false}
}

// Sounder plays cues through the speaker. The zero value and a nil pointer
// are silent.
type Sounder struct {
	mu     sync.Mutex
	vol    float64
	active bool
}

// NewSounder initialises the speaker. On failure the returned Sounder is
// silent and the error says why.
func NewSounder(vol float64) (*Sounder, error) {
	s := &Sounder{vol: vol}
	if vol <= 0 {
		return s, nil
	}
	if err := speaker.Init(sampleRate, sampleRate.N(time.Second/10)); err != nil {
		return s, err
	}
	s.active = true
	return s, nil
}

// Play queues c. Errors building the tone drop the cue.
func (s *Sounder) Play(c Cue) {
	if s == nil {
		return
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	if !s.active {
		return
	}
	st, err := cueStreamer(c, sampleRate, s.vol)
	if err != nil {
		return
	}
	speaker.Play(st)
}

// Close releases the speaker.
func (s *Sounder) Close() {
	if s == nil {
		return
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.active {
		speaker.Close()
		s.active = false
	}
}
