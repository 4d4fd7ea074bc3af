// Package sink realizes Morse pulse events as sound or light.
//
// Pulse generation in package morse is pure; everything that blocks, sleeps
// or touches a device lives here. Constructors never fail: when the preferred
// output is unavailable they hand back a simpler sink instead.
package sink

import (
	"context"
	"io"
	"iter"
	"os"
	"time"

	"github.com/gigurra/morse/cmd/common/logging"
	"github.com/gigurra/morse/cmd/common/morse"
)

// Sink realizes one pulse at a time. Pulse blocks for the pulse duration.
type Sink interface {
	Pulse(ctx context.Context, p morse.Pulse) error
	Close() error
}

// Options configures the sinks.
type Options struct {
	ToneHz float64
	Volume float64
	Out    io.Writer

	// Glyphs and lipgloss color for the visual sink.
	DotGlyph  string
	DashGlyph string
	Color     string
}

// DefaultOptions matches the defaults of the config file.
func DefaultOptions() Options {
	return Options{
		ToneHz:    700,
		Volume:    0.5,
		Out:       os.Stdout,
		DotGlyph:  "●",
		DashGlyph: "▬▬▬",
		Color:     "196",
	}
}

// New returns the sink for mode, falling back as needed. An unknown mode
// gets a Nop.
func New(mode morse.Mode, opts Options) Sink {
	switch mode {
	case morse.Audio:
		return NewAudio(opts)
	case morse.Visual:
		return NewVisual(opts)
	default:
		logging.L().Warn().Stringer("mode", mode).Msg("unknown playback mode, discarding pulses")
		return Nop{}
	}
}

// Play feeds pulses to s in order. It stops as soon as ctx is done, which
// is how an interrupted playback ends.
func Play(ctx context.Context, pulses iter.Seq[morse.Pulse], s Sink) error {
	for p := range pulses {
		if err := ctx.Err(); err != nil {
			return err
		}
		if err := s.Pulse(ctx, p); err != nil {
			return err
		}
	}
	return nil
}

type sleepFunc func(ctx context.Context, d time.Duration) error

func sleep(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return ctx.Err()
	}
	timer := time.NewTimer(d)
	defer timer.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}

// Nop discards pulses without waiting.
type Nop struct{}

func (Nop) Pulse(ctx context.Context, p morse.Pulse) error { return ctx.Err() }
func (Nop) Close() error { return nil }
