package sink

import (
	"bytes"
	"context"
	"errors"
	"iter"
	"strings"
	"testing"
	"time"

	"github.com/gigurra/morse/cmd/common/morse"
)

type recorder struct {
	pulses []morse.Pulse
	closed bool
}

func (r *recorder) Pulse(ctx context.Context, p morse.Pulse) error {
	r.pulses = append(r.pulses, p)
	return nil
}

func (r *recorder) Close() error {
	r.closed = true
	return nil
}

type sleeps struct {
	total time.Duration
	calls int
}

func (s *sleeps) sleep(ctx context.Context, d time.Duration) error {
	s.total += d
	s.calls++
	return ctx.Err()
}

func pulses(code string) iter.Seq[morse.Pulse] {
	timing, _ := morse.NewTiming(time.Millisecond)
	return morse.Render(morse.Parse(code), timing, morse.Audio)
}

func TestPlay_FeedsEveryPulse(t *testing.T) {
	rec := &recorder{}
	if err := Play(context.Background(), pulses("... --- ..."), rec); err != nil {
		t.Fatal(err)
	}
	// 9 elements, each followed by a gap, plus 2 letter gaps.
	if len(rec.pulses) != 20 {
		t.Errorf("got %d pulses, want 20", len(rec.pulses))
	}
}

func TestPlay_StopsWhenCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	rec := &recorder{}
	err := Play(ctx, pulses("... --- ..."), rec)
	if !errors.Is(err, context.Canceled) {
		t.Errorf("Play error = %v, want context.Canceled", err)
	}
	if len(rec.pulses) != 0 {
		t.Errorf("cancelled playback still realized %d pulses", len(rec.pulses))
	}
}

func TestSleep_HonoursContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	start := time.Now()
	if err := sleep(ctx, time.Hour); !errors.Is(err, context.Canceled) {
		t.Errorf("sleep error = %v", err)
	}
	if time.Since(start) > time.Second {
		t.Errorf("sleep ignored cancellation")
	}
	if err := sleep(context.Background(), time.Millisecond); err != nil {
		t.Errorf("sleep error = %v", err)
	}
}

func TestNop(t *testing.T) {
	if err := Play(context.Background(), pulses(".- / -..."), Nop{}); err != nil {
		t.Errorf("Nop playback failed: %v", err)
	}
}

func TestBell_UsesSystemBeep(t *testing.T) {
	var out bytes.Buffer
	var beeps []int
	s := &sleeps{}
	bell := NewBell(Options{ToneHz: 800, Out: &out})
	bell.beep = func(freq float64, ms int) error {
		if freq != 800 {
			t.Errorf("freq = %v, want 800", freq)
		}
		beeps = append(beeps, ms)
		return nil
	}
	bell.sleep = s.sleep

	timing, _ := morse.NewTiming(100 * time.Millisecond)
	if err := Play(context.Background(), morse.Render(morse.Parse(".-"), timing, morse.Audio), bell); err != nil {
		t.Fatal(err)
	}
	if len(beeps) != 2 || beeps[0] != 100 || beeps[1] != 300 {
		t.Errorf("beeps = %v", beeps)
	}
	if out.Len() != 0 {
		t.Errorf("terminal bell written although beep worked: %q", out.String())
	}
	if s.total != 200*time.Millisecond {
		t.Errorf("slept %v, want only the gaps (200ms)", s.total)
	}
}

func TestBell_FallsBackToTerminalBell(t *testing.T) {
	var out bytes.Buffer
	calls := 0
	s := &sleeps{}
	bell := NewBell(Options{Out: &out})
	bell.beep = func(float64, int) error {
		calls++
		return errors.New("no console")
	}
	bell.sleep = s.sleep

	if err := Play(context.Background(), pulses("..."), bell); err != nil {
		t.Fatal(err)
	}
	if calls != 1 {
		t.Errorf("system beep tried %d times, want 1", calls)
	}
	if strings.Count(out.String(), "\a") != 3 {
		t.Errorf("expected 3 bells, got %q", out.String())
	}
}

func TestVisual_NonTerminalKeepsGlyphs(t *testing.T) {
	var out bytes.Buffer
	s := &sleeps{}
	v := NewVisual(Options{Out: &out, DotGlyph: "o", DashGlyph: "==="})
	v.sleep = s.sleep

	if err := Play(context.Background(), pulses(".- -"), v); err != nil {
		t.Fatal(err)
	}
	v.Close()

	if got := out.String(); got != "o======\n" {
		t.Errorf("output = %q", got)
	}
	if s.total != pulsesTotal(".- -") {
		t.Errorf("slept %v, want %v", s.total, pulsesTotal(".- -"))
	}
}

func TestVisual_ErasesOnTerminal(t *testing.T) {
	var out bytes.Buffer
	v := NewVisual(Options{Out: &out, DotGlyph: "*"})
	v.sleep = (&sleeps{}).sleep
	v.erase = true

	if err := v.Pulse(context.Background(), morse.Pulse{Kind: morse.Dot, Duration: time.Millisecond}); err != nil {
		t.Fatal(err)
	}
	if !strings.HasSuffix(out.String(), "\b \b") {
		t.Errorf("glyph not erased: %q", out.String())
	}
}

func TestNew_PicksVisual(t *testing.T) {
	if _, ok := New(morse.Visual, DefaultOptions()).(*Visual); !ok {
		t.Errorf("New(Visual) should return *Visual")
	}
}

func TestNew_UnknownModeDiscards(t *testing.T) {
	if _, ok := New(morse.Mode(42), DefaultOptions()).(Nop); !ok {
		t.Errorf("New with an unknown mode should return Nop")
	}
}

func pulsesTotal(code string) time.Duration {
	return morse.Total(pulses(code))
}
