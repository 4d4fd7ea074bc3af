package flash

import (
	"os"

	"github.com/GiGurra/boa/pkg/boa"
	"github.com/gigurra/morse/cmd/common"
	"github.com/gigurra/morse/cmd/common/morse"
	"github.com/gigurra/morse/cmd/play"
	"github.com/spf13/cobra"
)

// Cmd is play with the visual sink: dots and dashes are drawn in the
// terminal for their duration and erased again.
func Cmd() *cobra.Command {
	return boa.CmdT[play.Params]{
		Use:         "flash",
		Short:       "Flash Morse code in the terminal",
		Long:        "Show each dot and dash as a colored glyph for its duration, then erase it. Use -e to list the pulse timeline.",
		ParamEnrich: common.DefaultParamEnricher(),
		RunFunc: func(params *play.Params, cmd *cobra.Command, args []string) {
			ctx, cancel := common.InterruptContext()
			defer cancel()
			os.Exit(play.Run(ctx, params, morse.Visual, os.Stdin, os.Stdout, os.Stderr))
		},
	}.ToCobra()
}
