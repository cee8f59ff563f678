package creature

import (
	"math"

	"procsnake/internal/geom"
)

// SidePoints returns the outline points either side of a segment facing angle.
func SidePoints(pos geom.Point, angle, radius float64) (left, right geom.Point) {
	left = geom.Polar(pos, angle+math.Pi/2, radius)
	right = geom.Polar(pos, angle-math.Pi/2, radius)
	return left, right
}

// TailFan fills dst with a half circle of points trailing behind pos,
// running from the right side round the back to the left side.
func TailFan(dst []geom.Point, pos geom.Point, angle, radius float64) {
	n := len(dst)
	if n == 1 {
		dst[0] = geom.Polar(pos, angle-math.Pi, radius)
		return
	}
	step := math.Pi / float64(n-1)
	for j := range dst {
		offset := math.Pi/2 + step*float64(j)
		dst[j] = geom.Polar(pos, angle-offset, radius)
	}
}
