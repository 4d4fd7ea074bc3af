package morse

import (
	"errors"
	"testing"
	"time"
)

func TestNewTiming_Ratios(t *testing.T) {
	for _, dot := range []time.Duration{1, 7 * time.Nanosecond, time.Millisecond, 200 * time.Millisecond, time.Second} {
		timing, err := NewTiming(dot)
		if err != nil {
			t.Fatalf("NewTiming(%v): %v", dot, err)
		}
		if timing.Dot() != dot ||
			timing.Dash() != 3*dot ||
			timing.IntraSymbolGap() != dot ||
			timing.LetterGap() != 3*dot ||
			timing.WordGap() != 7*dot {
			t.Errorf("ratios broken for dot=%v: %+v", dot, timing)
		}
	}
}

func TestNewTiming_DefaultValues(t *testing.T) {
	timing, _ := NewTiming(200 * time.Millisecond)
	if timing.Dash() != 600*time.Millisecond {
		t.Errorf("Dash() = %v", timing.Dash())
	}
	if timing.LetterGap() != 600*time.Millisecond {
		t.Errorf("LetterGap() = %v", timing.LetterGap())
	}
	if timing.WordGap() != 1400*time.Millisecond {
		t.Errorf("WordGap() = %v", timing.WordGap())
	}
}

func TestNewTiming_Invalid(t *testing.T) {
	for _, dot := range []time.Duration{0, -time.Millisecond} {
		if _, err := NewTiming(dot); !errors.Is(err, ErrInvalidDot) {
			t.Errorf("NewTiming(%v) error = %v, want ErrInvalidDot", dot, err)
		}
	}
}

func TestTimingForWPM(t *testing.T) {
	timing, err := TimingForWPM(15)
	if err != nil {
		t.Fatal(err)
	}
	if timing.Dot() != 80*time.Millisecond {
		t.Errorf("15 WPM dot = %v, want 80ms", timing.Dot())
	}
	if timing.WPM() != 15 {
		t.Errorf("WPM() = %d, want 15", timing.WPM())
	}

	if _, err := TimingForWPM(0); !errors.Is(err, ErrInvalidWPM) {
		t.Errorf("TimingForWPM(0) error = %v, want ErrInvalidWPM", err)
	}
}
