package menu

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/GiGurra/boa/pkg/boa"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/gigurra/morse/cmd/common"
	"github.com/gigurra/morse/cmd/common/history"
	"github.com/gigurra/morse/cmd/common/morse"
	"github.com/spf13/cobra"
)

var (
	titleStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("87")).Border(lipgloss.DoubleBorder()).BorderForeground(lipgloss.Color("87")).Padding(0, 4)
	headerStyle = lipgloss.NewStyle().Bold(true)
	promptStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("120"))
	labelStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("213"))
	errorStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("196"))
	infoStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("87"))
	helpStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
)

var menuItems = []string{
	"Text → Morse Code",
	"Morse Code → Text",
	"Play Morse Code (Audio)",
	"Flash Morse Code (Visual)",
	"Save Last Translation",
	"View History",
	"Exit",
}

type Params struct {
	WPM int `short:"w" help:"Words per minute for playback (0 = from config)." default:"0"`
	Dot int `help:"Dot duration in milliseconds for playback, overrides --wpm (0 = from config)." default:"0"`
}

func Cmd() *cobra.Command {
	return boa.CmdT[Params]{
		Use:         "menu",
		Short:       "Interactive translator menu",
		Long:        "Translate, play, flash, save and browse translations from an interactive menu.",
		ParamEnrich: common.DefaultParamEnricher(),
		RunFunc: func(params *Params, cmd *cobra.Command, args []string) {
			ctx, cancel := common.InterruptContext()
			defer cancel()
			os.Exit(Run(ctx, params, os.Stdin, os.Stdout, os.Stderr))
		},
	}.ToCobra()
}

type screen int

const (
	screenMenu screen = iota
	screenText
	screenMorse
)

// action is what the menu asked for when it quit.
type action int

const (
	actionExit action = iota
	actionPlay
	actionFlash
)

// session survives the program restarts around playback.
type session struct {
	lastText  string
	lastMorse string
	output    string
	label     string
	notice    string
	isError   bool
}

type model struct {
	session
	settings *common.Settings
	screen   screen
	input    []rune
	action   action
}

func newModel(settings *common.Settings, s session) model {
	return model{session: s, settings: settings}
}

func (m model) Init() tea.Cmd {
	return nil
}

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	key, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}
	if key.Type == tea.KeyCtrlC {
		m.action = actionExit
		return m, tea.Quit
	}
	if m.screen != screenMenu {
		return m.updateInput(key)
	}

	m.notice, m.isError = "", false
	switch key.String() {
	case "1":
		m.screen = screenText
	case "2":
		m.screen = screenMorse
	case "3":
		if m.lastMorse == "" {
			m.fail("No Morse code to play! Convert text first.")
			return m, nil
		}
		m.action = actionPlay
		return m, tea.Quit
	case "4":
		if m.lastMorse == "" {
			m.fail("No Morse code to flash! Convert text first.")
			return m, nil
		}
		m.action = actionFlash
		return m, tea.Quit
	case "5":
		m.save()
	case "6":
		m.showHistory()
	case "7", "q", "esc":
		m.action = actionExit
		return m, tea.Quit
	default:
		m.fail("Invalid choice! Please try again.")
	}
	return m, nil
}

func (m model) updateInput(key tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch key.Type {
	case tea.KeyEsc:
		m.screen, m.input = screenMenu, nil
	case tea.KeyBackspace:
		if len(m.input) > 0 {
			m.input = m.input[:len(m.input)-1]
		}
	case tea.KeySpace:
		m.input = append(m.input, ' ')
	case tea.KeyRunes:
		m.input = append(m.input, key.Runes...)
	case tea.KeyEnter:
		m.submit()
	}
	return m, nil
}

func (m *model) submit() {
	line := strings.TrimSpace(string(m.input))
	current := m.screen
	m.screen, m.input = screenMenu, nil
	m.notice, m.isError = "", false

	if line == "" {
		m.fail("Error: Empty input!")
		return
	}
	if current == screenText {
		m.lastText, m.lastMorse = line, morse.Encode(line)
		m.label, m.output = "Morse Code:", m.lastMorse
		return
	}
	m.lastText, m.lastMorse = morse.Decode(line), line
	m.label, m.output = "Decoded Text:", m.lastText
}

func (m *model) save() {
	if m.lastMorse == "" {
		m.fail("Nothing to save yet!")
		return
	}
	if err := m.settings.Save(m.lastText, m.lastMorse); err != nil {
		m.fail(fmt.Sprintf("Failed to save: %v", err))
		return
	}
	m.notice = fmt.Sprintf("Translation saved to '%s'", m.settings.Config.HistoryPath)
}

func (m *model) showHistory() {
	content, err := history.Read(m.settings.Config.HistoryPath)
	switch {
	case errors.Is(err, history.ErrNoHistory):
		m.label, m.output = "History:", "No history file found."
	case err != nil:
		m.fail(fmt.Sprintf("Failed to read history: %v", err))
	default:
		m.label, m.output = "History:", strings.TrimRight(content, "\n")
	}
}

func (m *model) fail(msg string) {
	m.notice, m.isError = msg, true
}

func (m model) View() string {
	var b strings.Builder

	b.WriteString(titleStyle.Render("MORSE CODE TRANSLATOR"))
	b.WriteString("\n\n")
	b.WriteString(headerStyle.Render("Main Menu:"))
	b.WriteString("\n")
	for i, item := range menuItems {
		fmt.Fprintf(&b, "%d. %s\n", i+1, item)
	}

	if m.output != "" {
		b.WriteString("\n")
		b.WriteString(labelStyle.Render(m.label))
		b.WriteString("\n")
		b.WriteString(m.output)
		b.WriteString("\n")
	}

	if m.notice != "" {
		b.WriteString("\n")
		if m.isError {
			b.WriteString(errorStyle.Render(m.notice))
		} else {
			b.WriteString(infoStyle.Render(m.notice))
		}
		b.WriteString("\n")
	}

	b.WriteString("\n")
	switch m.screen {
	case screenText:
		b.WriteString(promptStyle.Render("Enter text to convert: "))
		b.WriteString(string(m.input) + "_")
		b.WriteString("\n")
		b.WriteString(helpStyle.Render("enter convert • esc back"))
	case screenMorse:
		b.WriteString(promptStyle.Render("Enter Morse code (. - / separators): "))
		b.WriteString(string(m.input) + "_")
		b.WriteString("\n")
		b.WriteString(helpStyle.Render("enter decode • esc back"))
	default:
		b.WriteString(promptStyle.Render("Enter your choice (1-7)"))
		b.WriteString("\n")
		b.WriteString(helpStyle.Render("1-7 choose • q quit"))
	}
	b.WriteString("\n")
	return b.String()
}

// runProgram is swapped in tests to skip the terminal.
var runProgram = func(m model, stdin io.Reader, stdout io.Writer) (model, error) {
	final, err := tea.NewProgram(m, tea.WithInput(stdin), tea.WithOutput(stdout)).Run()
	if err != nil {
		return m, err
	}
	return final.(model), nil
}

// Run shows the menu until the user exits. Playback happens outside the
// program, which is restarted afterwards with the same session.
func Run(ctx context.Context, params *Params, stdin io.Reader, stdout, stderr io.Writer) int {
	settings, err := common.LoadSettings(params.Dot, params.WPM)
	if err != nil {
		fmt.Fprintf(stderr, "menu: %v\n", err)
		return 1
	}

	var s session
	for {
		m, err := runProgram(newModel(settings, s), stdin, stdout)
		if err != nil {
			fmt.Fprintf(stderr, "menu: %v\n", err)
			return 1
		}
		s = m.session

		switch m.action {
		case actionPlay:
			fmt.Fprintln(stdout, "\nPlaying Morse code audio...")
			err = settings.Play(ctx, s.lastMorse, morse.Audio, stdout)
			s.notice = "Done playing."
		case actionFlash:
			fmt.Fprintln(stdout, "\nFlashing Morse code visually...")
			err = settings.Play(ctx, s.lastMorse, morse.Visual, stdout)
			s.notice = "Done flashing."
		default:
			fmt.Fprintln(stdout, infoStyle.Render("Thank you for using Morse Code Translator!"))
			fmt.Fprintln(stdout, "73 (Best regards)")
			return 0
		}

		if err != nil {
			s.notice = fmt.Sprintf("Playback failed: %v", err)
		}
		s.isError = err != nil
		if ctx.Err() != nil {
			fmt.Fprintln(stdout, infoStyle.Render("\nGoodbye! 73"))
			return 0
		}
	}
}
