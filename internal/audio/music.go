package audio

import (
	"time"

	"github.com/gopxl/beep"
)

const musicStep = 180 * time.Millisecond

// musicBass and musicLead are one bar of the background loop, one note per
// step. Zero is a rest.
var (
	musicBass = []float64{
		110.00, 0, 110.00, 0, 130.81, 0, 146.83, 0, // A2 A2 C3 D3
		98.00, 0, 98.00, 0, 123.47, 0, 130.81, 0, // G2 G2 B2 C3
	}
	musicLead = []float64{
		440.00, 523.25, 659.25, 523.25, 587.33, 659.25, 783.99, 659.25,
		392.00, 493.88, 587.33, 493.88, 523.25, 587.33, 659.25, 0,
	}
)

// NewMusic builds the endless background loop.
func NewMusic(rate beep.SampleRate, volume float64) beep.Streamer {
	return &loop{build: func() beep.Streamer {
		bass := newVolume(voice(rate, WaveSaw, musicBass), 0.35)
		lead := newVolume(voice(rate, WaveSine, musicLead), 0.5)
		return newVolume(NewLowpass(beep.Mix(bass, lead), 2500, rate), volume)
	}}
}

func voice(rate beep.SampleRate, wave WaveType, notes []float64) beep.Streamer {
	seq := make([]beep.Streamer, 0, len(notes))
	for _, f := range notes {
		if f == 0 {
			seq = append(seq, beep.Silence(rate.N(musicStep)))
			continue
		}
		osc := NewOscillator(f, musicStep, wave, rate)
		seq = append(seq, NewEnvelope(osc, musicStep, 8*time.Millisecond, rate))
	}
	return beep.Seq(seq...)
}

// loop replays the streamer returned by build whenever it drains.
type loop struct {
	build func() beep.Streamer
	cur   beep.Streamer
}

func (l *loop) Stream(samples [][2]float64) (n int, ok bool) {
	fresh := false
	for n < len(samples) {
		if l.cur == nil {
			l.cur = l.build()
			fresh = true
		}
		m, more := l.cur.Stream(samples[n:])
		n += m
		if !more || m == 0 {
			if fresh && m == 0 {
				return n, n > 0
			}
			l.cur = nil
			continue
		}
		fresh = false
	}
	return n, true
}

func (l *loop) Err() error { return nil }
