package play

import (
	"context"
	"fmt"
	"io"
	"iter"
	"os"
	"time"

	"github.com/GiGurra/boa/pkg/boa"
	"github.com/gigurra/morse/cmd/common"
	"github.com/gigurra/morse/cmd/common/morse"
	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"
)

type Params struct {
	Code   []string `pos:"true" optional:"true" help:"Morse code to play. If none provided, reads lines from stdin."`
	Text   bool     `short:"t" help:"Treat the input as plain text and encode it first." default:"false"`
	Events bool     `short:"e" help:"Print the timed pulse events instead of playing them." default:"false"`
	WPM    int      `short:"w" help:"Words per minute (0 = from config)." default:"0"`
	Dot    int      `help:"Dot duration in milliseconds, overrides --wpm (0 = from config)." default:"0"`
}

func Cmd() *cobra.Command {
	return boa.CmdT[Params]{
		Use:         "play",
		Short:       "Play Morse code as audio",
		Long:        "Play Morse code as tones. Falls back to system beeps or the terminal bell when no audio device is available. Use -e to list the pulse timeline.",
		ParamEnrich: common.DefaultParamEnricher(),
		RunFunc: func(params *Params, cmd *cobra.Command, args []string) {
			ctx, cancel := common.InterruptContext()
			defer cancel()
			os.Exit(Run(ctx, params, morse.Audio, os.Stdin, os.Stdout, os.Stderr))
		},
	}.ToCobra()
}

func Run(ctx context.Context, params *Params, mode morse.Mode, stdin io.Reader, stdout, stderr io.Writer) int {
	lines, err := common.Inputs(params.Code, stdin)
	if err != nil {
		fmt.Fprintf(stderr, "%s: %v\n", commandName(mode), err)
		return 1
	}

	settings, err := common.LoadSettings(params.Dot, params.WPM)
	if err != nil {
		fmt.Fprintf(stderr, "%s: %v\n", commandName(mode), err)
		return 1
	}

	for _, line := range lines {
		code := line
		if params.Text {
			code = morse.Encode(line)
			fmt.Fprintln(stdout, code)
		}

		if params.Events {
			printEvents(stdout, morse.Render(morse.Parse(code), settings.Timing, mode))
			continue
		}

		if err := settings.Play(ctx, code, mode, stdout); err != nil {
			fmt.Fprintf(stderr, "%s: %v\n", commandName(mode), err)
			return 1
		}
		if ctx.Err() != nil {
			fmt.Fprintln(stderr, "Interrupted")
			return 130
		}
	}
	return 0
}

func commandName(mode morse.Mode) string {
	if mode == morse.Visual {
		return "flash"
	}
	return "play"
}

func printEvents(out io.Writer, pulses iter.Seq[morse.Pulse]) {
	t := table.NewWriter()
	t.SetOutputMirror(out)
	t.SetStyle(table.StyleLight)
	t.AppendHeader(table.Row{"#", "Pulse", "Duration", "At"})

	var at time.Duration
	i := 0
	for p := range pulses {
		i++
		t.AppendRow(table.Row{i, p.Kind, p.Duration, at})
		at += p.Duration
	}
	t.AppendFooter(table.Row{"", "Total", at, ""})
	t.Render()
}
