package audio

import "math"

// SampleRate is the output rate for all synthesized effects.
const SampleRate = 44100

// Shape selects the waveform of a synthesized tone.
type Shape int

const (
	ShapeSine Shape = iota
	ShapeSquare
	ShapeSawtooth
)

// Synthesize generates duration seconds of a single tone as mono float32
// samples in [-amplitude, amplitude]. It is pure: same inputs, same buffer.
func Synthesize(freq, duration, amplitude float64, shape Shape) []float32 {
	n := int(duration * SampleRate)
	buf := make([]float32, n)
	for i := 0; i < n; i++ {
		t := float64(i) / SampleRate
		var v float64
		switch shape {
		case ShapeSquare:
			if math.Sin(2*math.Pi*freq*t) >= 0 {
				v = 1
			} else {
				v = -1
			}
		case ShapeSawtooth:
			v = 2 * (t*freq - math.Floor(0.5+t*freq))
		default:
			v = math.Sin(2 * math.Pi * freq * t)
		}
		buf[i] = float32(amplitude * v)
	}
	return buf
}
