package main

import (
	"os"
	"runtime/debug"

	"github.com/GiGurra/boa/pkg/boa"
	"github.com/gigurra/morse/cmd/common"
	"github.com/gigurra/morse/cmd/config"
	"github.com/gigurra/morse/cmd/decode"
	"github.com/gigurra/morse/cmd/encode"
	"github.com/gigurra/morse/cmd/flash"
	"github.com/gigurra/morse/cmd/history"
	"github.com/gigurra/morse/cmd/menu"
	"github.com/gigurra/morse/cmd/play"
	"github.com/spf13/cobra"
)

// Command group IDs
const (
	groupTranslate   = "translate"
	groupPlayback    = "playback"
	groupHistory     = "history"
	groupInteractive = "interactive"
	groupSettings    = "settings"
)

// withGroup sets the GroupID on a command and returns it
func withGroup(cmd *cobra.Command, group string) *cobra.Command {
	cmd.GroupID = group
	return cmd
}

func main() {
	boa.CmdT[boa.NoParams]{
		Use:     "morse",
		Short:   "Morse code translator",
		Long:    "Translate between text and Morse code, play it as tones or flash it in the terminal. Without a sub-command the interactive menu is started.",
		Version: appVersion(),
		Groups: []*cobra.Group{
			{ID: groupTranslate, Title: "Translate:"},
			{ID: groupPlayback, Title: "Playback:"},
			{ID: groupHistory, Title: "History:"},
			{ID: groupInteractive, Title: "Interactive:"},
			{ID: groupSettings, Title: "Settings:"},
		},
		SubCmds: []*cobra.Command{
			withGroup(encode.Cmd(), groupTranslate),
			withGroup(decode.Cmd(), groupTranslate),

			withGroup(play.Cmd(), groupPlayback),
			withGroup(flash.Cmd(), groupPlayback),

			withGroup(history.Cmd(), groupHistory),

			withGroup(menu.Cmd(), groupInteractive),

			withGroup(config.Cmd(), groupSettings),
		},
		RunFunc: func(params *boa.NoParams, cmd *cobra.Command, args []string) {
			ctx, cancel := common.InterruptContext()
			defer cancel()
			os.Exit(menu.Run(ctx, &menu.Params{}, os.Stdin, os.Stdout, os.Stderr))
		},
	}.Run()
}

func appVersion() string {
	bi, hasBuilInfo := debug.ReadBuildInfo()
	if !hasBuilInfo {
		return "unknown-(no build info)"
	}

	versionString := bi.Main.Version
	if versionString == "" {
		versionString = "unknown-(no version)"
	}

	return versionString
}
