package decode

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
	Code  []string `pos:"true" optional:"true" help:"Morse code to decode ('.', '-', spaces between letters, '/' or several spaces between words). If none provided, reads lines from stdin."`
	Play  bool     `short:"p" help:"Play the Morse code as audio after decoding." default:"false"`
	Flash bool     `short:"f" help:"Flash the Morse code in the terminal after decoding." default:"false"`
	Save  bool     `short:"s" help:"Append the translation to the history file." default:"false"`
	Copy  bool     `short:"c" help:"Copy the decoded text to the clipboard." default:"false"`
	WPM   int      `short:"w" help:"Words per minute for playback (0 = from config)." default:"0"`
	Dot   int      `help:"Dot duration in milliseconds for playback, overrides --wpm (0 = from config)." default:"0"`
}

func Cmd() *cobra.Command {
	return boa.CmdT[Params]{
		Use:         "decode",
		Aliases:     []string{"dec", "d"},
		Short:       "Translate Morse code to text",
		Long:        "Convert Morse code back to text. Unrecognized codes are shown as '?'.",
		ParamEnrich: common.DefaultParamEnricher(),
		RunFunc: func(params *Params, cmd *cobra.Command, args []string) {
			ctx, cancel := common.InterruptContext()
			defer cancel()
			os.Exit(Run(ctx, params, os.Stdin, os.Stdout, os.Stderr))
		},
	}.ToCobra()
}

func Run(ctx context.Context, params *Params, stdin io.Reader, stdout, stderr io.Writer) int {
	lines, err := common.Inputs(params.Code, stdin)
	if err != nil {
		fmt.Fprintf(stderr, "decode: %v\n", err)
		return 1
	}

	settings, err := common.LoadSettings(params.Dot, params.WPM)
	if err != nil {
		fmt.Fprintf(stderr, "decode: %v\n", err)
		return 1
	}

	var decoded []string
	for _, code := range lines {
		text := morse.Decode(code)
		decoded = append(decoded, text)
		fmt.Fprintln(stdout, text)

		if params.Save {
			if err := settings.Save(text, strings.TrimSpace(code)); err != nil {
				fmt.Fprintf(stderr, "decode: %v\n", err)
				return 1
			}
		}
		if err := settings.PlayModes(ctx, code, params.Play, params.Flash, stdout); err != nil {
			fmt.Fprintf(stderr, "decode: %v\n", err)
			return 1
		}
		if ctx.Err() != nil {
			break
		}
	}

	if params.Copy && len(decoded) > 0 {
		if err := common.Copy(strings.Join(decoded, "\n")); err != nil {
			fmt.Fprintf(stderr, "decode: %v\n", err)
			return 1
		}
	}
	return 0
}
