package common

import (
	"context"
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/atotto/clipboard"
	"github.com/gigurra/morse/cmd/common/config"
	"github.com/gigurra/morse/cmd/common/history"
	"github.com/gigurra/morse/cmd/common/morse"
	"github.com/gigurra/morse/cmd/common/sink"
)

// Swappable in tests.
var (
	NewSink           = sink.New
	ClipboardWriteAll = clipboard.WriteAll
	Now               = time.Now
)

// Settings is the loaded config plus the timing resolved from flags.
type Settings struct {
	Config *config.Config
	Timing morse.Timing
}

// LoadSettings loads the config file. dotMs and wpm override it when positive.
func LoadSettings(dotMs, wpm int) (*Settings, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, err
	}
	timing, err := cfg.Timing(dotMs, wpm)
	if err != nil {
		return nil, err
	}
	return &Settings{Config: cfg, Timing: timing}, nil
}

// SinkOptions maps the config onto sink options writing to out.
func (s *Settings) SinkOptions(out io.Writer) sink.Options {
	return sink.Options{
		ToneHz:    s.Config.ToneHz,
		Volume:    s.Config.Volume,
		Out:       out,
		DotGlyph:  s.Config.Visual.Dot,
		DashGlyph: s.Config.Visual.Dash,
		Color:     s.Config.Visual.Color,
	}
}

// Play renders code in the given mode and realizes it. An interrupt is not
// reported as an error.
func (s *Settings) Play(ctx context.Context, code string, mode morse.Mode, out io.Writer) error {
	sk := NewSink(mode, s.SinkOptions(out))
	defer sk.Close()

	err := sink.Play(ctx, morse.Render(morse.Parse(code), s.Timing, mode), sk)
	if errors.Is(err, context.Canceled) {
		return nil
	}
	return err
}

// PlayModes plays code as audio and then visually, each only when requested.
func (s *Settings) PlayModes(ctx context.Context, code string, audio, visual bool, out io.Writer) error {
	if audio {
		if err := s.Play(ctx, code, morse.Audio, out); err != nil {
			return err
		}
	}
	if visual && ctx.Err() == nil {
		return s.Play(ctx, code, morse.Visual, out)
	}
	return nil
}

// Save appends a translation to the history file.
func (s *Settings) Save(text, code string) error {
	return history.Append(s.Config.HistoryPath, history.Record{Time: Now(), Text: text, Morse: code})
}

// Copy puts text on the system clipboard.
func Copy(text string) error {
	if err := ClipboardWriteAll(text); err != nil {
		return fmt.Errorf("failed to write to clipboard: %w", err)
	}
	return nil
}
