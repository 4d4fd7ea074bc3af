package history

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/GiGurra/boa/pkg/boa"
	"github.com/gigurra/morse/cmd/common"
	"github.com/gigurra/morse/cmd/common/config"
	hist "github.com/gigurra/morse/cmd/common/history"
	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/samber/lo"
	"github.com/spf13/cobra"
)

const noHistoryMsg = "No history file found."

type Params struct {
	Table  bool `short:"t" help:"Show the history as a table." default:"false"`
	Last   int  `short:"n" help:"Only show the last N translations (0 = all)." default:"0"`
	Follow bool `short:"f" help:"Keep printing translations as they are saved." default:"false"`
}

func Cmd() *cobra.Command {
	return boa.CmdT[Params]{
		Use:         "history",
		Aliases:     []string{"hist"},
		Short:       "Show saved translations",
		Long:        "Print the translation history file. Translations are saved with --save on encode and decode, or from the interactive menu.",
		ParamEnrich: common.DefaultParamEnricher(),
		RunFunc: func(params *Params, cmd *cobra.Command, args []string) {
			ctx, cancel := common.InterruptContext()
			defer cancel()
			os.Exit(Run(ctx, params, os.Stdout, os.Stderr))
		},
	}.ToCobra()
}

func Run(ctx context.Context, params *Params, stdout, stderr io.Writer) int {
	if params.Last < 0 {
		fmt.Fprintf(stderr, "history: --last must not be negative, got %d\n", params.Last)
		return 1
	}

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(stderr, "history: %v\n", err)
		return 1
	}

	err = show(ctx, cfg.HistoryPath, params, stdout)
	if errors.Is(err, hist.ErrNoHistory) {
		fmt.Fprintln(stdout, noHistoryMsg)
		return 0
	}
	if err != nil {
		fmt.Fprintf(stderr, "history: %v\n", err)
		return 1
	}
	return 0
}

func show(ctx context.Context, path string, params *Params, out io.Writer) error {
	if params.Follow {
		return hist.Follow(ctx, path, out)
	}

	if !params.Table && params.Last == 0 {
		content, err := hist.Read(path)
		if err != nil {
			return err
		}
		fmt.Fprint(out, content)
		return nil
	}

	records, err := hist.Load(path)
	if err != nil {
		return err
	}
	if params.Last > 0 {
		records = lo.Subset(records, -params.Last, uint(params.Last))
	}

	if !params.Table {
		for _, r := range records {
			fmt.Fprint(out, r.Format())
		}
		return nil
	}

	t := table.NewWriter()
	t.SetOutputMirror(out)
	t.SetStyle(table.StyleLight)
	t.AppendHeader(table.Row{"Time", "Text", "Morse"})
	for _, r := range records {
		t.AppendRow(table.Row{r.Time.Format(hist.TimeLayout), r.Text, r.Morse})
	}
	t.Render()
	return nil
}
