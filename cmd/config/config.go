package config

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/GiGurra/boa/pkg/boa"
	"github.com/gigurra/morse/cmd/common"
	conf "github.com/gigurra/morse/cmd/common/config"
	"github.com/gigurra/morse/cmd/common/sink"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

type Params struct {
	Init  bool `short:"i" help:"Write a config file with the default settings." default:"false"`
	Force bool `help:"Overwrite an existing config file with --init." default:"false"`
}

func Cmd() *cobra.Command {
	return boa.CmdT[Params]{
		Use:         "config",
		Short:       "Show or create the config file",
		Long:        "Print the effective settings and where they are read from. Set MORSE_CONFIG to use another file.",
		ParamEnrich: common.DefaultParamEnricher(),
		RunFunc: func(params *Params, cmd *cobra.Command, args []string) {
			os.Exit(Run(params, os.Stdout, os.Stderr))
		},
	}.ToCobra()
}

func Run(params *Params, stdout, stderr io.Writer) int {
	path := conf.Path()
	_, statErr := os.Stat(path)
	exists := statErr == nil

	if params.Init {
		if exists && !params.Force {
			fmt.Fprintf(stderr, "config: %s already exists (use --force to overwrite)\n", path)
			return 1
		}
		if err := conf.Save(conf.DefaultConfig()); err != nil {
			fmt.Fprintf(stderr, "config: %v\n", err)
			return 1
		}
		fmt.Fprintf(stdout, "Wrote %s\n", path)
		return 0
	}

	cfg, err := conf.Load()
	if err != nil {
		fmt.Fprintf(stderr, "config: %v\n", err)
		return 1
	}
	data, err := yaml.Marshal(cfg)
	if err != nil {
		fmt.Fprintf(stderr, "config: %v\n", err)
		return 1
	}

	switch {
	case exists:
		fmt.Fprintf(stdout, "# %s\n", path)
	case errors.Is(statErr, os.ErrNotExist):
		fmt.Fprintf(stdout, "# %s (not found, showing defaults)\n", path)
	default:
		fmt.Fprintf(stdout, "# %s (%v)\n", path, statErr)
	}
	if sink.AudioAvailable {
		fmt.Fprintln(stdout, "# audio: tone output, falls back to beeps")
	} else {
		fmt.Fprintln(stdout, "# audio: beeps only (built without audio support)")
	}
	fmt.Fprint(stdout, string(data))
	return 0
}
