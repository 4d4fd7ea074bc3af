package common

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/gigurra/morse/cmd/common/config"
	"github.com/gigurra/morse/cmd/common/history"
	"github.com/gigurra/morse/cmd/common/morse"
	"github.com/gigurra/morse/cmd/common/sink"
)

func TestInputs_Args(t *testing.T) {
	lines, err := Inputs([]string{"hello", "world"}, nil)
	if err != nil {
		t.Fatal(err)
	}
	if len(lines) != 1 || lines[0] != "hello world" {
		t.Errorf("Inputs = %q", lines)
	}
}

func TestInputs_BlankArgs(t *testing.T) {
	if _, err := Inputs([]string{" ", ""}, nil); !errors.Is(err, ErrEmptyInput) {
		t.Errorf("expected ErrEmptyInput, got %v", err)
	}
}

func TestInputs_Stdin(t *testing.T) {
	lines, err := Inputs(nil, strings.NewReader("sos\n\n   \nhi there\n"))
	if err != nil {
		t.Fatal(err)
	}
	if len(lines) != 2 || lines[0] != "sos" || lines[1] != "hi there" {
		t.Errorf("Inputs = %q", lines)
	}
}

func TestInputs_Trimmed(t *testing.T) {
	lines, err := Inputs([]string{"hi "}, nil)
	if err != nil || len(lines) != 1 || lines[0] != "hi" {
		t.Errorf("Inputs(args) = %q, %v", lines, err)
	}
	lines, err = Inputs(nil, strings.NewReader("  sos \r\n\tok"))
	if err != nil || len(lines) != 2 || lines[0] != "sos" || lines[1] != "ok" {
		t.Errorf("Inputs(stdin) = %q, %v", lines, err)
	}
}

func TestInputs_LongLine(t *testing.T) {
	long := strings.Repeat("e", 200*1024)
	lines, err := Inputs(nil, strings.NewReader(long+"\nt\n"))
	if err != nil {
		t.Fatal(err)
	}
	if len(lines) != 2 {
		t.Fatalf("got %d lines, want 2", len(lines))
	}
	if lines[0] != long || lines[1] != "t" {
		t.Errorf("long line not preserved (length %d)", len(lines[0]))
	}
}

func TestInputs_BlankStdin(t *testing.T) {
	if _, err := Inputs(nil, strings.NewReader("\n  \n")); !errors.Is(err, ErrEmptyInput) {
		t.Errorf("expected ErrEmptyInput, got %v", err)
	}
}

func testSettings(t *testing.T) *Settings {
	t.Helper()
	cfg := config.DefaultConfig()
	cfg.HistoryPath = filepath.Join(t.TempDir(), "history.txt")
	timing, _ := morse.NewTiming(time.Millisecond)
	return &Settings{Config: cfg, Timing: timing}
}

type countingSink struct {
	on int
}

func (c *countingSink) Pulse(ctx context.Context, p morse.Pulse) error {
	if p.On() {
		c.on++
	}
	return nil
}

func (c *countingSink) Close() error { return nil }

func TestSettings_Play(t *testing.T) {
	s := testSettings(t)
	rec := &countingSink{}
	var gotMode morse.Mode = -1
	orig := NewSink
	NewSink = func(mode morse.Mode, opts sink.Options) sink.Sink {
		gotMode = mode
		return rec
	}
	defer func() { NewSink = orig }()

	if err := s.Play(context.Background(), "... --- ...", morse.Visual, os.Stdout); err != nil {
		t.Fatal(err)
	}
	if gotMode != morse.Visual {
		t.Errorf("sink created for mode %v", gotMode)
	}
	if rec.on != 9 {
		t.Errorf("realized %d tones, want 9", rec.on)
	}
}

func TestSettings_PlayInterrupted(t *testing.T) {
	s := testSettings(t)
	orig := NewSink
	NewSink = func(morse.Mode, sink.Options) sink.Sink { return sink.Nop{} }
	defer func() { NewSink = orig }()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if err := s.Play(ctx, ".-", morse.Audio, os.Stdout); err != nil {
		t.Errorf("interrupt should not be an error, got %v", err)
	}
}

func TestSettings_Save(t *testing.T) {
	s := testSettings(t)
	origNow := Now
	Now = func() time.Time { return time.Date(2026, 1, 2, 3, 4, 5, 0, time.Local) }
	defer func() { Now = origNow }()

	if err := s.Save("SOS", "... --- ..."); err != nil {
		t.Fatal(err)
	}
	records, err := history.Load(s.Config.HistoryPath)
	if err != nil {
		t.Fatal(err)
	}
	if len(records) != 1 || records[0].Text != "SOS" || records[0].Time.Hour() != 3 {
		t.Errorf("records = %+v", records)
	}
}

func TestCopy(t *testing.T) {
	var copied string
	orig := ClipboardWriteAll
	ClipboardWriteAll = func(text string) error {
		copied = text
		return nil
	}
	defer func() { ClipboardWriteAll = orig }()

	if err := Copy(".-"); err != nil || copied != ".-" {
		t.Errorf("Copy: err=%v copied=%q", err, copied)
	}

	ClipboardWriteAll = func(string) error { return errors.New("no clipboard") }
	if err := Copy(".-"); err == nil || !strings.Contains(err.Error(), "clipboard") {
		t.Errorf("expected wrapped clipboard error, got %v", err)
	}
}

func TestLoadSettings_Overrides(t *testing.T) {
	t.Setenv(config.EnvPath, filepath.Join(t.TempDir(), "missing.yaml"))
	s, err := LoadSettings(50, 0)
	if err != nil {
		t.Fatal(err)
	}
	if s.Timing.Dot() != 50*time.Millisecond {
		t.Errorf("dot = %v", s.Timing.Dot())
	}
}
