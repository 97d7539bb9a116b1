package audio

import "ultrapong/game"

const effectAmplitude = 0.3

// effectSpec fixes how one simulation event sounds.
type effectSpec struct {
	freq     float64
	duration float64
	shape    Shape
}

var effectTable = map[game.SoundEvent]effectSpec{
	game.SoundPaddleHit: {freq: 660, duration: 0.03, shape: ShapeSquare},
	game.SoundWallHit:   {freq: 330, duration: 0.02, shape: ShapeSawtooth},
	game.SoundScore:     {freq: 880, duration: 0.1, shape: ShapeSine},
}

// Dispatcher turns simulation sound events into playback on a Sink. All
// three effect buffers are synthesized once up front.
type Dispatcher struct {
	sink  Sink
	cache map[game.SoundEvent][]float32
}

func NewDispatcher(sink Sink) *Dispatcher {
	cache := make(map[game.SoundEvent][]float32, len(effectTable))
	for ev, spec := range effectTable {
		cache[ev] = Synthesize(spec.freq, spec.duration, effectAmplitude, spec.shape)
	}
	return &Dispatcher{sink: sink, cache: cache}
}

// Dispatch plays every event from one simulation tick. Unknown events are
// dropped.
func (d *Dispatcher) Dispatch(events []game.SoundEvent) {
	for _, ev := range events {
		if buf, ok := d.cache[ev]; ok {
			d.sink.Submit(buf)
		}
	}
}
