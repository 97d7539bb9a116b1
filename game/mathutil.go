package game

import "math"

func absf(v float32) float32 {
	if v < 0 {
		return -v
	}
	return v
}

func minf(a, b float32) float32 {
	if a < b {
		return a
	}
	return b
}

func copysignf(mag, sign float32) float32 {
	return float32(math.Copysign(float64(mag), float64(sign)))
}
