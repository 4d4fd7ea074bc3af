package morse

import (
	"errors"
	"time"
)

// Timing ratios relative to one dot.
const (
	DashRatio      = 3
	IntraGapRatio  = 1
	LetterGapRatio = 3
	WordGapRatio   = 7

	// DitsPerWord is the length of the standard word "PARIS" in dot units.
	DitsPerWord = 50
)

var (
	ErrInvalidDot = errors.New("dot duration must be positive")
	ErrInvalidWPM = errors.New("WPM must be positive")
)

// Timing holds the durations used for playback. Only the dot is stored, so
// every other duration is always an exact multiple of it.
type Timing struct {
	dot time.Duration
}

// NewTiming builds a profile from the base dot duration.
func NewTiming(dot time.Duration) (Timing, error) {
	if dot <= 0 {
		return Timing{}, ErrInvalidDot
	}
	return Timing{dot: dot}, nil
}

// TimingForWPM derives the dot from a words-per-minute rate using PARIS.
func TimingForWPM(wpm int) (Timing, error) {
	if wpm <= 0 {
		return Timing{}, ErrInvalidWPM
	}
	return NewTiming(time.Minute / time.Duration(DitsPerWord*wpm))
}

func (t Timing) Dot() time.Duration            { return t.dot }
func (t Timing) Dash() time.Duration           { return DashRatio * t.dot }
func (t Timing) IntraSymbolGap() time.Duration { return IntraGapRatio * t.dot }
func (t Timing) LetterGap() time.Duration      { return LetterGapRatio * t.dot }
func (t Timing) WordGap() time.Duration        { return WordGapRatio * t.dot }

// WPM is the PARIS speed matching the dot, rounded down.
func (t Timing) WPM() int {
	if t.dot <= 0 {
		return 0
	}
	return int(time.Minute / (DitsPerWord * t.dot))
}
