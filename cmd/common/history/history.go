// Package history keeps an append-only, human-readable log of translations.
//
// Each record is a block of the form:
//
//	[2006-01-02 15:04:05]
//	Text: <text>
//	Morse: <morse>
//	--------------------------------------------------
package history

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/gigurra/morse/cmd/common/logging"
)

const (
	TimeLayout  = "2006-01-02 15:04:05"
	textPrefix  = "Text: "
	morsePrefix = "Morse: "
)

// Separator ends every record.
var Separator = strings.Repeat("-", 50)

var ErrNoHistory = errors.New("no history file found")

// Record is one saved translation.
type Record struct {
	Time  time.Time
	Text  string
	Morse string
}

// Format renders r as a history block, trailing newline included.
func (r Record) Format() string {
	return fmt.Sprintf("[%s]\n%s%s\n%s%s\n%s\n",
		r.Time.Format(TimeLayout), textPrefix, r.Text, morsePrefix, r.Morse, Separator)
}

// Append writes r to the file at path as a single write under an exclusive
// lock, creating the file and its directory as needed.
func Append(path string, r Record) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("failed to create history directory: %w", err)
	}

	f, err := os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
	if err != nil {
		return fmt.Errorf("failed to open history: %w", err)
	}
	defer f.Close()

	if err := lockFile(f); err != nil {
		return fmt.Errorf("failed to lock history: %w", err)
	}
	defer unlockFile(f)

	if _, err := f.WriteString(r.Format()); err != nil {
		return fmt.Errorf("failed to write history: %w", err)
	}
	logging.L().Debug().Str("path", path).Msg("history record appended")
	return nil
}

// Read returns the raw contents of the history file.
func Read(path string) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return "", ErrNoHistory
		}
		return "", err
	}
	return string(data), nil
}

// Load parses every record in the history file.
func Load(path string) ([]Record, error) {
	f, err := os.Open(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, ErrNoHistory
		}
		return nil, err
	}
	defer f.Close()
	return Parse(f)
}

// Parse reads records from r. Lines outside a recognised block are skipped,
// so a hand-edited or truncated file still yields its intact records. Lines
// have no length limit.
func Parse(r io.Reader) ([]Record, error) {
	var p parser
	reader := bufio.NewReader(r)
	for {
		line, err := reader.ReadString('\n')
		if line != "" {
			p.line(strings.TrimRight(line, "\r\n"))
		}
		if errors.Is(err, io.EOF) {
			return p.records, nil
		}
		if err != nil {
			return p.records, err
		}
	}
}

type parser struct {
	records []Record
	cur     *Record
}

func (p *parser) line(line string) {
	switch {
	case strings.HasPrefix(line, "[") && strings.HasSuffix(line, "]"):
		ts, err := time.ParseInLocation(TimeLayout, line[1:len(line)-1], time.Local)
		if err != nil {
			p.cur = nil
			return
		}
		p.cur = &Record{Time: ts}
	case p.cur == nil:
	case strings.HasPrefix(line, textPrefix):
		p.cur.Text = strings.TrimPrefix(line, textPrefix)
	case strings.HasPrefix(line, morsePrefix):
		p.cur.Morse = strings.TrimPrefix(line, morsePrefix)
	case line == Separator:
		p.records = append(p.records, *p.cur)
		p.cur = nil
	}
}
