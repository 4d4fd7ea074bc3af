//go:build (linux && cgo) || windows || darwin

package sink

import (
	"context"
	"math"
	"sync"
	"time"

	"github.com/gigurra/morse/cmd/common/logging"
	"github.com/gigurra/morse/cmd/common/morse"
	"github.com/gopxl/beep/v2"
	"github.com/gopxl/beep/v2/speaker"
)

// AudioAvailable indicates whether tone playback is compiled in.
const AudioAvailable = true

const sampleRate = beep.SampleRate(44100)

var (
	speakerOnce sync.Once
	speakerErr  error
)

func initSpeaker() error {
	speakerOnce.Do(func() {
		speakerErr = speaker.Init(sampleRate, sampleRate.N(time.Second/10))
	})
	return speakerErr
}

// Audio plays pulses as a sine tone through the default output device.
type Audio struct {
	freq   float64
	volume float64
	sleep  sleepFunc
}

// NewAudio returns an Audio sink, or a Bell when the speaker can't be opened.
func NewAudio(opts Options) Sink {
	if err := initSpeaker(); err != nil {
		logging.L().Warn().Err(err).Msg("audio device unavailable, falling back to bell")
		return NewBell(opts)
	}
	def := DefaultOptions()
	if opts.ToneHz <= 0 {
		opts.ToneHz = def.ToneHz
	}
	if opts.Volume <= 0 || opts.Volume > 1 {
		opts.Volume = def.Volume
	}
	return &Audio{freq: opts.ToneHz, volume: opts.Volume, sleep: sleep}
}

func (a *Audio) Pulse(ctx context.Context, p morse.Pulse) error {
	if !p.On() {
		return a.sleep(ctx, p.Duration)
	}

	done := make(chan struct{})
	speaker.Play(beep.Seq(newTone(a.freq, a.volume, p.Duration), beep.Callback(func() {
		close(done)
	})))

	select {
	case <-done:
		return nil
	case <-ctx.Done():
		speaker.Clear()
		return ctx.Err()
	}
}

func (a *Audio) Close() error {
	speaker.Clear()
	return nil
}

// toneStreamer generates a sine wave with a short fade at both ends to avoid clicks.
type toneStreamer struct {
	samples   int
	position  int
	frequency float64
	volume    float64
}

func newTone(freq, volume float64, d time.Duration) *toneStreamer {
	return &toneStreamer{
		samples:   sampleRate.N(d),
		frequency: freq,
		volume:    volume,
	}
}

func (t *toneStreamer) Stream(samples [][2]float64) (n int, ok bool) {
	fadeLen := max(t.samples/20, 10) // 5% fade

	for i := range samples {
		if t.position >= t.samples {
			return i, i > 0
		}

		phase := 2 * math.Pi * t.frequency * float64(t.position) / float64(sampleRate)
		value := math.Sin(phase)

		envelope := 1.0
		if t.position < fadeLen {
			envelope = float64(t.position) / float64(fadeLen)
		} else if t.position > t.samples-fadeLen {
			envelope = float64(t.samples-t.position) / float64(fadeLen)
		}

		value *= envelope * t.volume
		samples[i][0] = value
		samples[i][1] = value
		t.position++
	}
	return len(samples), true
}

func (t *toneStreamer) Err() error {
	return nil
}
