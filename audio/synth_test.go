package audio

import (
	"math"
	"testing"
)

func TestSynthesizeLength(t *testing.T) {
	if got := len(Synthesize(440, 0.5, 0.3, ShapeSine)); got != SampleRate/2 {
		t.Errorf("half a second = %d samples, want %d", got, SampleRate/2)
	}
	if got := len(Synthesize(440, 1, 0.3, ShapeSquare)); got != SampleRate {
		t.Errorf("one second = %d samples, want %d", got, SampleRate)
	}
	if got := len(Synthesize(440, 0, 0.3, ShapeSawtooth)); got != 0 {
		t.Errorf("zero duration = %d samples, want 0", got)
	}
}

func TestSynthesizeAmplitudeBounds(t *testing.T) {
	const amp = 0.3
	for _, shape := range []Shape{ShapeSine, ShapeSquare, ShapeSawtooth} {
		buf := Synthesize(660, 0.05, amp, shape)
		for i, v := range buf {
			if math.Abs(float64(v)) > amp+1e-6 {
				t.Fatalf("shape %d sample %d = %v exceeds amplitude %v", shape, i, v, amp)
			}
		}
	}
}

func TestSquareSamplesAreFullScale(t *testing.T) {
	const amp = 0.3
	buf := Synthesize(660, 0.01, amp, ShapeSquare)
	for i, v := range buf {
		if v != amp && v != -amp {
			t.Fatalf("sample %d = %v, square wave must sit at +-%v", i, v, amp)
		}
	}
}

func TestWaveformsStartAtPhaseZero(t *testing.T) {
	if v := Synthesize(440, 0.01, 0.3, ShapeSine)[0]; v != 0 {
		t.Errorf("sine starts at %v, want 0", v)
	}
	if v := Synthesize(440, 0.01, 0.3, ShapeSawtooth)[0]; v != 0 {
		t.Errorf("sawtooth starts at %v, want 0", v)
	}
}

func TestSynthesizeIsDeterministic(t *testing.T) {
	a := Synthesize(880, 0.1, 0.3, ShapeSine)
	b := Synthesize(880, 0.1, 0.3, ShapeSine)
	if len(a) != len(b) {
		t.Fatalf("lengths differ: %d vs %d", len(a), len(b))
	}
	for i := range a {
		if a[i] != b[i] {
			t.Fatalf("sample %d differs: %v vs %v", i, a[i], b[i])
		}
	}
}
