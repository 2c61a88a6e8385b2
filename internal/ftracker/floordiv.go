package ftracker

import "math"

// floorDiv returns a/b rounded toward negative infinity.
//
// The quotient is derived from math.Mod rather than math.Floor(a/b): a/b may
// round up to the next integer, e.g. 1/0.1 gives 10 while the floored
// quotient is 9.
func floorDiv(a, b float64) float64 {
	mod := math.Mod(a, b)
	div := (a - mod) / b
	if mod != 0 && (b < 0) != (mod < 0) {
		div -= 1
	}
	if div == 0 {
		return math.Copysign(0, a/b)
	}
	res := math.Floor(div)
	if div-res > 0.5 {
		res += 1
	}
	return res
}
