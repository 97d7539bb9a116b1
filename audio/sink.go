package audio

import (
	"io"
	"math"
	"time"

	"github.com/hajimehoshi/oto/v2"
)

const (
	channelCount = 2
	bitDepth     = 0 // 32-bit float samples (oto.FormatFloat32LE)
)

// Sink accepts a finished sample buffer for playback. Implementations must
// not block the caller: the simulation tick never waits on audio.
type Sink interface {
	Submit(samples []float32)
}

// NullSink discards every buffer. It stands in when no audio device is
// available so nothing upstream has to check.
type NullSink struct{}

func (NullSink) Submit([]float32) {}

// OtoSink plays buffers through an oto context, one short-lived player per
// effect. Buffers submitted before the device is ready are dropped rather
// than queued.
type OtoSink struct {
	ctx    *oto.Context
	ready  chan struct{}
	volume float64
}

func NewOtoSink() (*OtoSink, error) {
	ctx, ready, err := oto.NewContext(SampleRate, channelCount, bitDepth)
	if err != nil {
		return nil, err
	}
	return &OtoSink{ctx: ctx, ready: ready, volume: 1.0}, nil
}

func (s *OtoSink) Submit(samples []float32) {
	select {
	case <-s.ready:
	default:
		return
	}
	if len(samples) == 0 {
		return
	}
	data := make([]byte, len(samples)*8)
	for i, v := range samples {
		putStereoF32(data, i, v)
	}
	go func() {
		player := s.ctx.NewPlayer(&soundReader{data: data})
		player.SetVolume(s.volume)
		player.Play()
		for player.IsPlaying() {
			time.Sleep(10 * time.Millisecond)
		}
		player.Close()
	}()
}

type soundReader struct {
	data []byte
	pos  int
}

func (r *soundReader) Read(p []byte) (int, error) {
	if r.pos >= len(r.data) {
		return 0, io.EOF
	}
	n := copy(p, r.data[r.pos:])
	r.pos += n
	return n, nil
}

// putStereoF32 writes a sample as float32 LE to both stereo channels at
// frame i.
func putStereoF32(buf []byte, i int, sample float32) {
	v := math.Float32bits(sample)
	buf[i*8] = byte(v)
	buf[i*8+1] = byte(v >> 8)
	buf[i*8+2] = byte(v >> 16)
	buf[i*8+3] = byte(v >> 24)
	buf[i*8+4] = byte(v)
	buf[i*8+5] = byte(v >> 8)
	buf[i*8+6] = byte(v >> 16)
	buf[i*8+7] = byte(v >> 24)
}
