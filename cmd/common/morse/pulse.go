package morse

import (
	"fmt"
	"iter"
	"time"
)

// Mode selects how pulses are meant to be realized.
type Mode int

const (
	Audio Mode = iota
	Visual
)

func (m Mode) String() string {
	switch m {
	case Audio:
		return "audio"
	case Visual:
		return "visual"
	default:
		return fmt.Sprintf("Mode(%d)", int(m))
	}
}

// PulseKind is what a pulse does while it lasts.
type PulseKind int

const (
	Silence PulseKind = iota
	Dot
	Dash
)

func (k PulseKind) String() string {
	switch k {
	case Silence:
		return "silence"
	case Dot:
		return "dot"
	case Dash:
		return "dash"
	default:
		return fmt.Sprintf("PulseKind(%d)", int(k))
	}
}

// Pulse is one timed event: a tone/flash for a dot or dash, or a silence.
type Pulse struct {
	Kind     PulseKind
	Duration time.Duration
	Mode     Mode
}

// On reports whether the pulse should sound or light up.
func (p Pulse) On() bool {
	return p.Kind != Silence
}

// Render returns the pulses for seq. The result is lazy and can be ranged
// over any number of times; nothing is slept or written here.
//
// Each element is followed by an intra-symbol gap. Between letters the
// remaining letter gap is added, and a word separator adds the remaining
// word gap (the full word gap if no element precedes it). Units without any
// dot or dash, such as UnknownUnit, are skipped.
func Render(seq Sequence, t Timing, mode Mode) iter.Seq[Pulse] {
	return func(yield func(Pulse) bool) {
		afterLetter := false
		emit := func(kind PulseKind, d time.Duration) bool {
			if d <= 0 {
				return true
			}
			return yield(Pulse{Kind: kind, Duration: d, Mode: mode})
		}

		for _, u := range seq {
			if u == WordSeparator {
				gap := t.WordGap()
				if afterLetter {
					gap -= t.IntraSymbolGap()
				}
				if !emit(Silence, gap) {
					return
				}
				afterLetter = false
				continue
			}

			elements := u.Elements()
			if len(elements) == 0 {
				continue
			}
			if afterLetter && !emit(Silence, t.LetterGap()-t.IntraSymbolGap()) {
				return
			}
			for _, e := range elements {
				kind, d := Dot, t.Dot()
				if e == '-' {
					kind, d = Dash, t.Dash()
				}
				if !emit(kind, d) || !emit(Silence, t.IntraSymbolGap()) {
					return
				}
			}
			afterLetter = true
		}
	}
}

// Total sums the durations of pulses.
func Total(pulses iter.Seq[Pulse]) time.Duration {
	var total time.Duration
	for p := range pulses {
		total += p.Duration
	}
	return total
}
