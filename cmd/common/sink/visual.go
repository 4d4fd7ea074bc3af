package sink

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/gigurra/morse/cmd/common/morse"
	"github.com/mattn/go-runewidth"
	"golang.org/x/term"
)

// Visual flashes a glyph for every dot and dash. On a terminal the glyph is
// erased again when the pulse ends; elsewhere the glyphs are left in place.
type Visual struct {
	out      io.Writer
	dot      string
	dash     string
	style    lipgloss.Style
	erase    bool
	sleep    sleepFunc
	flashing bool
}

// NewVisual returns a Visual drawing to opts.Out.
func NewVisual(opts Options) *Visual {
	out := opts.Out
	if out == nil {
		out = io.Discard
	}
	def := DefaultOptions()
	dot, dash := opts.DotGlyph, opts.DashGlyph
	if dot == "" {
		dot = def.DotGlyph
	}
	if dash == "" {
		dash = def.DashGlyph
	}
	style := lipgloss.NewStyle()
	if opts.Color != "" {
		style = style.Foreground(lipgloss.Color(opts.Color))
	}
	return &Visual{
		out:   out,
		dot:   dot,
		dash:  dash,
		style: style,
		erase: isTerminal(out),
		sleep: sleep,
	}
}

func isTerminal(w io.Writer) bool {
	f, ok := w.(interface{ Fd() uintptr })
	return ok && term.IsTerminal(int(f.Fd()))
}

func (v *Visual) glyph(kind morse.PulseKind) string {
	if kind == morse.Dash {
		return v.dash
	}
	return v.dot
}

func (v *Visual) Pulse(ctx context.Context, p morse.Pulse) error {
	if !p.On() {
		return v.sleep(ctx, p.Duration)
	}

	glyph := v.glyph(p.Kind)
	fmt.Fprint(v.out, v.style.Render(glyph))
	v.flashing = true
	err := v.sleep(ctx, p.Duration)
	v.clear(glyph)
	return err
}

func (v *Visual) clear(glyph string) {
	if !v.erase || !v.flashing {
		return
	}
	width := runewidth.StringWidth(glyph)
	fmt.Fprint(v.out, strings.Repeat("\b", width)+strings.Repeat(" ", width)+strings.Repeat("\b", width))
	v.flashing = false
}

// Close ends the line so the prompt doesn't follow the last glyph.
func (v *Visual) Close() error {
	_, err := fmt.Fprintln(v.out)
	return err
}
