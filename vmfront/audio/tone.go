// Package audio generates the PC-speaker beep stream.
package audio

import (
	"math"
	"sync"
)

const (
	// Amplitude of the generated sine tone in 16-bit sample units.
	Amplitude = 8000
	// SampleRate is the rate requested from the host audio device; the
	// device may negotiate a different one.
	SampleRate = 44100
	// BufferSamples is the generation granularity requested from the host.
	BufferSamples = 4096
)

// Tone synthesizes a single sine tone whose frequency is set from the main
// context while samples are pulled from the audio context. The frequency is
// the only shared value; the phase accumulator belongs to the generation
// path alone.
type Tone struct {
	mu   sync.Mutex
	freq float64

	phase float64
	rate  float64
}

// NewTone creates a generator for the given negotiated sample rate.
func NewTone(sampleRate int) *Tone {
	return &Tone{rate: float64(sampleRate)}
}

// SetFrequency sets the tone frequency in Hz. Zero silences the output.
func (t *Tone) SetFrequency(hz int) {
	t.mu.Lock()
	t.freq = float64(hz)
	t.mu.Unlock()
}

// Frequency returns the current tone frequency in Hz.
func (t *Tone) Frequency() int {
	t.mu.Lock()
	defer t.mu.Unlock()
	return int(t.freq)
}

// Fill writes signed 16-bit samples into buf. Runs on the audio context.
func (t *Tone) Fill(buf []int16) {
	t.mu.Lock()
	freq := t.freq
	t.mu.Unlock()

	if freq == 0 {
		for i := range buf {
			buf[i] = 0
		}
		return
	}

	step := 2 * math.Pi * freq / t.rate
	for i := range buf {
		buf[i] = int16(Amplitude * math.Sin(t.phase))
		t.phase += step
		if t.phase >= 2*math.Pi {
			t.phase -= 2 * math.Pi
		}
	}
}
