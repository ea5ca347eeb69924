//go:build sdl2

package sdl2

import (
	"encoding/binary"
	"log/slog"
	"time"

	"github.com/valerio/go-vmfront/vmfront/audio"
	"github.com/veandco/go-sdl2/sdl"
)

// beeper feeds the tone generator into an SDL audio device.
//
// go-sdl2 cannot register a Go function as an SDL audio callback without a
// cgo export, so the device is queue-fed instead: a goroutine keeps the
// device queue topped up from the generator. That goroutine is the audio
// execution context; it shares only the tone frequency with the main
// context, under the generator's lock.
type beeper struct {
	dev  sdl.AudioDeviceID
	spec sdl.AudioSpec
	tone *audio.Tone
	stop chan struct{}
	done chan struct{}
}

func openBeeper() (*beeper, error) {
	want := sdl.AudioSpec{
		Freq:     audio.SampleRate,
		Format:   sdl.AUDIO_S16LSB,
		Channels: 1,
		Samples:  audio.BufferSamples,
	}

	var have sdl.AudioSpec
	dev, err := sdl.OpenAudioDevice("", false, &want, &have, sdl.AUDIO_ALLOW_FREQUENCY_CHANGE)
	if err != nil {
		return nil, err
	}

	b := &beeper{
		dev:  dev,
		spec: have,
		tone: audio.NewTone(int(have.Freq)),
		stop: make(chan struct{}),
		done: make(chan struct{}),
	}

	sdl.PauseAudioDevice(dev, false)
	go b.feed()

	slog.Info("Audio device opened", "rate", have.Freq, "samples", have.Samples)
	return b, nil
}

// feed keeps roughly two buffers of samples queued on the device.
func (b *beeper) feed() {
	defer close(b.done)

	samples := make([]int16, audio.BufferSamples)
	raw := make([]byte, len(samples)*2)
	lowWater := uint32(len(raw)) * 2

	interval := time.Second * time.Duration(audio.BufferSamples) / time.Duration(b.spec.Freq) / 4
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-b.stop:
			return
		case <-ticker.C:
			for sdl.GetQueuedAudioSize(b.dev) < lowWater {
				b.tone.Fill(samples)
				for i, s := range samples {
					binary.LittleEndian.PutUint16(raw[i*2:], uint16(s))
				}
				if err := sdl.QueueAudio(b.dev, raw); err != nil {
					slog.Warn("Failed to queue audio", "error", err)
					return
				}
			}
		}
	}
}

// close stops the feeder and waits for it to exit before releasing the
// device, so no queue call can land on a closed device.
func (b *beeper) close() {
	close(b.stop)
	<-b.done
	sdl.CloseAudioDevice(b.dev)
}
