package sink

import (
	"context"
	"fmt"
	"io"

	"github.com/gen2brain/beeep"
	"github.com/gigurra/morse/cmd/common/logging"
	"github.com/gigurra/morse/cmd/common/morse"
)

// BellHz is the beep frequency when no tone is configured.
const BellHz = 800

// Bell sounds pulses with the system beeper, or with the terminal bell when
// no beeper is reachable.
type Bell struct {
	freq     float64
	out      io.Writer
	beep     func(freq float64, ms int) error
	sleep    sleepFunc
	terminal bool
}

// NewBell returns a Bell writing terminal bells to opts.Out.
func NewBell(opts Options) *Bell {
	out := opts.Out
	if out == nil {
		out = io.Discard
	}
	freq := opts.ToneHz
	if freq <= 0 {
		freq = BellHz
	}
	return &Bell{
		freq:  freq,
		out:   out,
		beep:  beeep.Beep,
		sleep: sleep,
	}
}

func (b *Bell) Pulse(ctx context.Context, p morse.Pulse) error {
	if !p.On() {
		return b.sleep(ctx, p.Duration)
	}
	if !b.terminal {
		err := b.beep(b.freq, int(p.Duration.Milliseconds()))
		if err == nil {
			return ctx.Err()
		}
		logging.L().Info().Err(err).Msg("system beep unavailable, using terminal bell")
		b.terminal = true
	}
	fmt.Fprint(b.out, "\a")
	return b.sleep(ctx, p.Duration)
}

func (b *Bell) Close() error { return nil }
