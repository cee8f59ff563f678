package game

import (
	"io"
	"math"
	"time"

	"github.com/hajimehoshi/oto/v2"
)

// SoundKind identifies the creature's cues.
type SoundKind int

const (
	SoundPause SoundKind = iota
	SoundResume
	SoundPark
	SoundChase
)

// AudioSystem plays procedural sound effects.
type AudioSystem struct {
	ctx    *oto.Context
	ready  chan struct{}
	volume float64
	cache  map[SoundKind][]byte
}

// NewAudio opens the output device. The context becomes usable once ready closes.
func NewAudio(volume float64) (*AudioSystem, error) {
	ctx, ready, err := oto.NewContext(SampleRate, ChannelCount, BitDepth)
	if err != nil {
		return nil, err
	}
	a := &AudioSystem{ctx: ctx, ready: ready, volume: clampF(volume, 0, 1), cache: make(map[SoundKind][]byte)}
	for _, k := range []SoundKind{SoundPause, SoundResume, SoundPark, SoundChase} {
		a.cache[k] = generateSound(k)
	}
	return a, nil
}

// Play starts kind on its own player. A nil system or a context that is not
// ready yet drops the cue.
func (a *AudioSystem) Play(kind SoundKind) {
	if a == nil {
		return
	}
	select {
	case <-a.ready:
	default:
		return
	}
	samples := a.cache[kind]
	if len(samples) == 0 {
		return
	}
	go func() {
		reader := &soundReader{data: samples}
		player := a.ctx.NewPlayer(reader)
		player.SetVolume(a.volume)
		player.Play()
		for player.IsPlaying() {
			time.Sleep(10 * time.Millisecond)
		}
		player.Close()
	}()
}

// Subscribe wires the cues to bus events.
func (a *AudioSystem) Subscribe(bus *EventBus) {
	cues := map[EventType]SoundKind{
		EventPaused:      SoundPause,
		EventResumed:     SoundResume,
		EventHeadParked:  SoundPark,
		EventHeadChasing: SoundChase,
	}
	for t, kind := range cues {
		bus.Subscribe(t, func(Event) { a.Play(kind) })
	}
}

type soundReader struct {
	data []byte
	pos  int
}

func (r *soundReader) Read(p []byte) (int, error) {
	if r.pos >= len(r.data) {
		return 0, io.EOF
	}
	n := copy(p, r.data[r.pos:])
	r.pos += n
	return n, nil
}

// putStereoF32 writes a [-1,1] sample as float32 LE to both stereo channels at frame i.
func putStereoF32(buf []byte, i int, sample float64) {
	v := math.Float32bits(float32(sample))
	buf[i*8] = byte(v)
	buf[i*8+1] = byte(v >> 8)
	buf[i*8+2] = byte(v >> 16)
	buf[i*8+3] = byte(v >> 24)
	buf[i*8+4] = byte(v)
	buf[i*8+5] = byte(v >> 8)
	buf[i*8+6] = byte(v >> 16)
	buf[i*8+7] = byte(v >> 24)
}

// softSat applies gentle tanh-like saturation.
func softSat(x float64) float64 {
	if x > 1.0 {
		return 1.0 - 0.5/(x)
	}
	if x < -1.0 {
		return -1.0 + 0.5/(-x)
	}
	return x - x*x*x/3.0
}

// adsr returns an envelope at normalized progress [0,1].
// attack/decay/release are fractions of the total duration.
func adsr(progress, attack, decay, sustain, release float64) float64 {
	switch {
	case progress < attack:
		return progress / attack
	case progress < attack+decay:
		return 1.0 - (progress-attack)/decay*(1.0-sustain)
	case progress < 1.0-release:
		return sustain
	default:
		return sustain * (1.0 - (progress-(1.0-release))/release)
	}
}

// fm returns an FM-synthesized sample.
// carrier: base frequency, modRatio: modulator/carrier ratio, modIdx: modulation depth.
func fm(t, carrier, modRatio, modIdx float64) float64 {
	mod := math.Sin(2 * math.Pi * carrier * modRatio * t)
	return math.Sin(2*math.Pi*carrier*t + modIdx*mod)
}

// makeBuf allocates a stereo float32 buffer for n samples.
func makeBuf(n int) []byte { return make([]byte, n*8) }

// ---- Sound effects -------------------------------------------------------

func generateSound(kind SoundKind) []byte {
	switch kind {
	case SoundPause:
		return genTwoNote(880, 587.33)
	case SoundResume:
		return genTwoNote(587.33, 880)
	case SoundPark:
		return genPark()
	case SoundChase:
		return genChase()
	}
	return nil
}

// genTwoNote: two short FM bell notes, used as a falling (pause) or rising
// (resume) pair.
func genTwoNote(first, second float64) []byte {
	noteLen := SampleRate * 70 / 1000
	tail := int(0.12 * SampleRate)
	total := 2*noteLen + tail
	mix := make([]float64, total)

	for fi, freq := range []float64{first, second} {
		start := fi * noteLen
		dur := total - start
		for j := 0; j < dur; j++ {
			t := float64(start+j) / SampleRate
			np := float64(j) / float64(dur)
			env := adsr(np, 0.006, 0.5, 0.05, 0.35)
			mix[start+j] += fm(t, freq, 2.0, 2.5*env) * env * 0.34
		}
	}
	buf := makeBuf(total)
	for i, s := range mix {
		putStereoF32(buf, i, softSat(s))
	}
	return buf
}

// genPark: soft low settle, the head reached the target.
func genPark() []byte {
	n := int(0.16 * SampleRate)
	buf := makeBuf(n)
	for i := 0; i < n; i++ {
		t := float64(i) / SampleRate
		p := float64(i) / float64(n)
		env := math.Exp(-p * 6)
		freq := 220 - 90*p
		s := fm(t, freq, 0.5, 1.1*env) * env * 0.32
		putStereoF32(buf, i, softSat(s))
	}
	return buf
}

// genChase: quick rising chirp, the head set off again.
func genChase() []byte {
	n := int(0.08 * SampleRate)
	buf := makeBuf(n)
	for i := 0; i < n; i++ {
		t := float64(i) / SampleRate
		p := float64(i) / float64(n)
		env := adsr(p, 0.02, 0.5, 0.0, 0.1)
		freq := 420 + 540*p
		s := fm(t, freq, 2.0, 3.0*env) * env * 0.28
		s += math.Sin(2*math.Pi*freq*3*t) * env * 0.04
		putStereoF32(buf, i, softSat(s))
	}
	return buf
}
