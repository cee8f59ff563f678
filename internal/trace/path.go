// Package trace drives a creature along scripted target paths without a
// window and writes what happened as a PNG plot, an HTML chart and the
// configuration that produced them.
package trace

import (
	"fmt"
	"math"
	"sort"

	"procsnake/internal/geom"
)

// Path is a deterministic target source. Each Target call advances one tick.
type Path struct {
	name string
	at   func(tick int) geom.Point
	tick int
}

// Target returns the point for the current tick and advances.
func (p *Path) Target() geom.Point {
	pt := p.at(p.tick)
	p.tick++
	return pt
}

// Name identifies the path shape.
func (p *Path) Name() string { return p.name }

// Reset rewinds to tick zero.
func (p *Path) Reset() { p.tick = 0 }

// Circle loops around center once every period ticks, starting due east.
func Circle(center geom.Point, radius float64, period int) *Path {
	period = max(period, 1)
	return &Path{name: "circle", at: func(tick int) geom.Point {
		a := 2 * math.Pi * float64(tick%period) / float64(period)
		return geom.Polar(center, a, radius)
	}}
}

// Lissajous traces a figure with fx:fy lobes over period ticks.
func Lissajous(center geom.Point, ax, ay float64, fx, fy, period int) *Path {
	period = max(period, 1)
	return &Path{name: "lissajous", at: func(tick int) geom.Point {
		t := 2 * math.Pi * float64(tick%period) / float64(period)
		return geom.Pt(center.X+ax*math.Sin(float64(fx)*t+math.Pi/2), center.Y+ay*math.Sin(float64(fy)*t))
	}}
}

// Waypoints holds each point for dwell ticks, then jumps to the next and
// wraps around. Long dwells let the head park at every point.
func Waypoints(pts []geom.Point, dwell int) *Path {
	dwell = max(dwell, 1)
	pts = append([]geom.Point(nil), pts...)
	return &Path{name: "waypoints", at: func(tick int) geom.Point {
		if len(pts) == 0 {
			return geom.Point{}
		}
		return pts[(tick/dwell)%len(pts)]
	}}
}

// Preset path names understood by NewPath.
const (
	PathCircle    = "circle"
	PathLissajous = "lissajous"
	PathWaypoints = "waypoints"
)

var pathMakers = map[string]func(w, h float64) *Path{
	PathCircle: func(w, h float64) *Path {
		return Circle(geom.Pt(w/2, h/2), math.Min(w, h)*0.35, 360)
	},
	PathLissajous: func(w, h float64) *Path {
		return Lissajous(geom.Pt(w/2, h/2), w*0.4, h*0.35, 3, 2, 900)
	},
	PathWaypoints: func(w, h float64) *Path {
		return Waypoints([]geom.Point{
			geom.Pt(w*0.2, h*0.25),
			geom.Pt(w*0.8, h*0.3),
			geom.Pt(w*0.7, h*0.8),
			geom.Pt(w*0.25, h*0.7),
		}, 150)
	},
}

// NewPath builds a named path sized for a w x h world.
func NewPath(name string, w, h float64) (*Path, error) {
	mk, ok := pathMakers[name]
	if !ok {
		return nil, fmt.Errorf("unknown path %q (have %v)", name, PathNames())
	}
	return mk(w, h), nil
}

// PathNames lists the known path names in stable order.
func PathNames() []string {
	names := make([]string, 0, len(pathMakers))
	for n := range pathMakers {
		names = append(names, n)
	}
	sort.Strings(names)
	return names
}
