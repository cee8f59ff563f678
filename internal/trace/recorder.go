package trace

import (
	"log/slog"
	"slices"

	"gonum.org/v1/gonum/floats"

	"procsnake/internal/creature"
	"procsnake/internal/geom"
)

// Sample is one tick of a run.
type Sample struct {
	Tick          int
	Target        geom.Point
	Head          geom.Point
	Paused        bool
	Stopped       bool
	SegmentsMoved int
	// Reach is the largest distance between a segment and the point it follows.
	Reach float64
}

// Options controls a recorded run.
type Options struct {
	Ticks int
	// Every keeps a full snapshot every N ticks for the plot. Zero keeps only the last.
	Every int
	// TogglePauseAt lists ticks before which the pause state flips.
	TogglePauseAt []int
	Logger        *slog.Logger
}

// Trace is the result of a run.
type Trace struct {
	Config    creature.Config
	Path      string
	Samples   []Sample
	Keyframes []creature.Snapshot
	Final     creature.Snapshot
	Stats     Stats
}

// Stats summarises a run.
type Stats struct {
	Ticks       int
	PausedTicks int
	MovedTicks  int
	Parks       int
	Resumes     int
	MaxReach    float64
	MeanReach   float64
}

// Run drives a fresh creature built from cfg along path for opts.Ticks ticks.
func Run(cfg creature.Config, path *Path, opts Options) (*Trace, error) {
	c, err := creature.New(cfg)
	if err != nil {
		return nil, err
	}
	log := opts.Logger
	if log == nil {
		log = slog.Default()
	}

	tr := &Trace{Config: c.Config(), Path: path.Name(), Samples: make([]Sample, 0, opts.Ticks)}
	reaches := make([]float64, 0, opts.Ticks)
	for tick := 0; tick < opts.Ticks; tick++ {
		if slices.Contains(opts.TogglePauseAt, tick) {
			paused := c.TogglePause()
			log.Debug("pause toggled", "tick", tick, "paused", paused)
		}
		res := c.Step(path)
		snap := c.Snapshot()

		s := Sample{
			Tick:          tick,
			Target:        snap.Target,
			Head:          snap.Head.Position,
			Paused:        res.Paused,
			Stopped:       res.Stopped,
			SegmentsMoved: res.SegmentsMoved,
			Reach:         reach(snap),
		}
		tr.Samples = append(tr.Samples, s)
		reaches = append(reaches, s.Reach)

		st := &tr.Stats
		st.Ticks++
		switch {
		case res.Paused:
			st.PausedTicks++
		case res.HeadMoved:
			st.MovedTicks++
		}
		if res.JustStopped {
			st.Parks++
			log.Debug("head parked", "tick", tick, "x", s.Head.X, "y", s.Head.Y)
		}
		if res.JustResumed {
			st.Resumes++
			log.Debug("head chasing", "tick", tick)
		}
		if opts.Every > 0 && tick%opts.Every == 0 {
			tr.Keyframes = append(tr.Keyframes, snap)
		}
	}
	tr.Final = c.Snapshot()
	if len(reaches) > 0 {
		tr.Stats.MaxReach = floats.Max(reaches)
		tr.Stats.MeanReach = floats.Sum(reaches) / float64(len(reaches))
	}
	log.Info("trace finished",
		"path", tr.Path,
		"ticks", tr.Stats.Ticks,
		"moved", tr.Stats.MovedTicks,
		"parks", tr.Stats.Parks,
		"max_reach", tr.Stats.MaxReach,
	)
	return tr, nil
}

// reach is the largest gap between a segment and the point it follows.
func reach(s creature.Snapshot) float64 {
	var m float64
	lead := s.Head.Position
	for _, seg := range s.Segments {
		m = max(m, geom.Dist(lead, seg.Position))
		lead = seg.Position
	}
	return m
}
