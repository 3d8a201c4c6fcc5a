package audio

import (
	"time"

	"github.com/gopxl/beep"
)

// Cue identifies a one-shot sound.
type Cue int

const (
	CueCrash Cue = iota
	CueLevelComplete
	CueNewHighScore
	CueMeasuring
)

const (
	crashDuration = 300 * time.Millisecond
	chimeNote     = 120 * time.Millisecond
	blipDuration  = 60 * time.Millisecond
	musicVolume   = 0.15

	// Propeller buzz pitches; the two sides are detuned so they are
	// distinguishable.
	leftPropellerHz  = 180.0
	rightPropellerHz = 200.0
)

// NewCrash builds the crash: filtered noise burst over a falling thump.
func NewCrash(rate beep.SampleRate, volume float64) beep.Streamer {
	noise := NewOscillator(0, crashDuration, WaveNoise, rate)
	burst := NewEnvelope(NewLowpass(noise, 1000, rate), crashDuration, 2*time.Millisecond, rate)

	thump := NewEnvelope(NewSweep(150, 40, crashDuration, WaveSine, rate), crashDuration, 5*time.Millisecond, rate)

	return newVolume(beep.Mix(newVolume(burst, 0.6), newVolume(thump, 0.8)), volume)
}

// NewChime builds a rising arpeggio from the given note frequencies.
func NewChime(rate beep.SampleRate, volume float64, notes ...float64) beep.Streamer {
	seq := make([]beep.Streamer, 0, len(notes))
	for _, f := range notes {
		osc := NewOscillator(f, chimeNote, WaveSine, rate)
		seq = append(seq, NewEnvelope(osc, chimeNote, 5*time.Millisecond, rate))
	}
	return newVolume(beep.Seq(seq...), volume)
}

// NewBlip builds the short tick played when measuring starts.
func NewBlip(rate beep.SampleRate, volume float64) beep.Streamer {
	osc := NewOscillator(1200, blipDuration, WaveSine, rate)
	return newVolume(NewEnvelope(osc, blipDuration, 2*time.Millisecond, rate), volume)
}

// NewPropeller builds an endless sawtooth buzz.
func NewPropeller(rate beep.SampleRate, freq, volume float64) beep.Streamer {
	return newVolume(NewOscillator(freq, -1, WaveSaw, rate), volume)
}

// cueStreamer returns the streamer for a one-shot cue.
func cueStreamer(c Cue, rate beep.SampleRate, master float64) beep.Streamer {
	switch c {
	case CueCrash:
		return NewCrash(rate, master)
	case CueLevelComplete:
		return NewChime(rate, 0.5*master, 523.25, 659.25, 783.99) // C5 E5 G5
	case CueNewHighScore:
		return NewChime(rate, 0.5*master, 783.99, 987.77, 1174.66, 1567.98)
	case CueMeasuring:
		return NewBlip(rate, 0.3*master)
	default:
		return nil
	}
}
