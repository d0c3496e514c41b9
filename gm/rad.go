package gm

import "math"

type Rad float64

func (r Rad) Degrees() float64 {
	return float64(r) * (180 / math.Pi)
}

// Radians returns the value of the angle in radians as float64.
func (r Rad) Radians() float64 {
	return float64(r)
}

// Normalized returns the angle normalized to the range [-π, π)
func (r Rad) Normalized() Rad {
	angle := float64(r)

	angle = math.Mod(angle+math.Pi, 2*math.Pi)
	if angle < 0 {
		angle += 2 * math.Pi
	}

	return Rad(angle - math.Pi)
}

// Clamp limits the angle to the range [lo, hi].
func (r Rad) Clamp(lo, hi Rad) Rad {
	return max(lo, min(hi, r))
}

func DegToRad(deg float64) Rad {
	return Rad(math.Pi / 180 * deg)
}
