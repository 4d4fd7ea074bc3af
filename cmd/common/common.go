package common

import (
	"bufio"
	"context"
	"errors"
	"io"
	"os"
	"os/signal"
	"strings"

	"github.com/GiGurra/boa/pkg/boa"
)

var ErrEmptyInput = errors.New("empty input")

func DefaultParamEnricher() boa.ParamEnricher {
	return boa.ParamEnricherCombine(
		boa.ParamEnricherBool,
		boa.ParamEnricherName,
		boa.ParamEnricherShort,
	)
}

// Inputs returns the positional args joined into one line, or the non-blank
// lines of stdin when there are no args. Lines are trimmed and have no length
// limit. Blank input is rejected with ErrEmptyInput.
func Inputs(args []string, stdin io.Reader) ([]string, error) {
	if len(args) > 0 {
		text := strings.TrimSpace(strings.Join(args, " "))
		if text == "" {
			return nil, ErrEmptyInput
		}
		return []string{text}, nil
	}

	var lines []string
	reader := bufio.NewReader(stdin)
	for {
		line, err := reader.ReadString('\n')
		if line = strings.TrimSpace(line); line != "" {
			lines = append(lines, line)
		}
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, err
		}
	}
	if len(lines) == 0 {
		return nil, ErrEmptyInput
	}
	return lines, nil
}

// InterruptContext is cancelled on Ctrl+C so playback stops between pulses.
func InterruptContext() (context.Context, context.CancelFunc) {
	return signal.NotifyContext(context.Background(), os.Interrupt)
}
