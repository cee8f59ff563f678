// Package geom holds the small amount of planar math the creature solver needs.
// Points are gonum r2 vectors so they can be handed to gonum consumers directly.
package geom

import (
	"math"

	"gonum.org/v1/gonum/spatial/r2"
)

// Point is a position in the host's 2D coordinate space (y grows downward on
// screen front ends, the math does not care).
type Point = r2.Vec

// Pt is shorthand for a Point literal.
func Pt(x, y float64) Point { return Point{X: x, Y: y} }

// Dist returns the euclidean distance between a and b.
func Dist(a, b Point) float64 {
	return r2.Norm(r2.Sub(b, a))
}

// Heading returns the angle of the vector from -> to, in radians.
// ok is false when the two points coincide and the angle is undefined.
func Heading(from, to Point) (angle float64, ok bool) {
	d := r2.Sub(to, from)
	if d.X == 0 && d.Y == 0 {
		return 0, false
	}
	return math.Atan2(d.Y, d.X), true
}

// Unit returns the unit vector pointing at angle.
func Unit(angle float64) Point {
	s, c := math.Sincos(angle)
	return Point{X: c, Y: s}
}

// Polar returns origin offset by r along angle.
func Polar(origin Point, angle, r float64) Point {
	return r2.Add(origin, r2.Scale(r, Unit(angle)))
}

// Step moves p toward target by exactly dist. The caller guarantees p != target.
func Step(p, target Point, dist float64) Point {
	return r2.Add(p, r2.Scale(dist, r2.Unit(r2.Sub(target, p))))
}

// Wrap folds an angle difference into [-π, π].
func Wrap(a float64) float64 {
	for a > math.Pi {
		a -= 2 * math.Pi
	}
	for a < -math.Pi {
		a += 2 * math.Pi
	}
	return a
}

// Midpoint returns the point halfway between a and b.
func Midpoint(a, b Point) Point {
	return r2.Scale(0.5, r2.Add(a, b))
}
