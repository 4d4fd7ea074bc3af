package encode

import (
	"context"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/GiGurra/boa/pkg/boa"
	"github.com/gigurra/morse/cmd/common"
	"github.com/gigurra/morse/cmd/common/morse"
	"github.com/spf13/cobra"
)

type Params struct {
	Text  []string `pos:"true" optional:"true" help:"Text to encode. If none provided, reads lines from stdin."`
	Play  bool     `short:"p" help:"Play the Morse code as audio after encoding." default:"false"`
	Flash bool     `short:"f" help:"Flash the Morse code in the terminal after encoding." default:"false"`
	Save  bool     `short:"s" help:"Append the translation to the history file." default:"false"`
	Copy  bool     `short:"c" help:"Copy the Morse code to the clipboard." default:"false"`
	WPM   int      `short:"w" help:"Words per minute for playback (0 = from config)." default:"0"`
	Dot   int      `help:"Dot duration in milliseconds for playback, overrides --wpm (0 = from config)." default:"0"`
}

func Cmd() *cobra.Command {
	return boa.CmdT[Params]{
		Use:         "encode",
		Aliases:     []string{"enc", "e"},
		Short:       "Translate text to Morse code",
		Long:        "Convert text to Morse code. Letters are separated by spaces and words by '/'. Characters without a Morse code are shown as <?>.",
		ParamEnrich: common.DefaultParamEnricher(),
		RunFunc: func(params *Params, cmd *cobra.Command, args []string) {
			ctx, cancel := common.InterruptContext()
			defer cancel()
			os.Exit(Run(ctx, params, os.Stdin, os.Stdout, os.Stderr))
		},
	}.ToCobra()
}

func Run(ctx context.Context, params *Params, stdin io.Reader, stdout, stderr io.Writer) int {
	lines, err := common.Inputs(params.Text, stdin)
	if err != nil {
		fmt.Fprintf(stderr, "encode: %v\n", err)
		return 1
	}

	settings, err := common.LoadSettings(params.Dot, params.WPM)
	if err != nil {
		fmt.Fprintf(stderr, "encode: %v\n", err)
		return 1
	}

	var encoded []string
	for _, line := range lines {
		code := morse.Encode(line)
		encoded = append(encoded, code)
		fmt.Fprintln(stdout, code)

		if params.Save {
			if err := settings.Save(line, code); err != nil {
				fmt.Fprintf(stderr, "encode: %v\n", err)
				return 1
			}
		}
		if err := settings.PlayModes(ctx, code, params.Play, params.Flash, stdout); err != nil {
			fmt.Fprintf(stderr, "encode: %v\n", err)
			return 1
		}
		if ctx.Err() != nil {
			break
		}
	}

	if params.Copy && len(encoded) > 0 {
		if err := common.Copy(strings.Join(encoded, "\n")); err != nil {
			fmt.Fprintf(stderr, "encode: %v\n", err)
			return 1
		}
	}
	return 0
}
