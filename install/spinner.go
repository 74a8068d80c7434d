package install

import (
	"io"
	"strings"
	"sync"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

type (
	// Indicator is a status line updated in place while a command runs.
	Indicator interface {
		SetText(string)
		Succeed(string)
		Fail(string)
	}

	// IndicatorFunc starts an indicator showing text.
	IndicatorFunc func(text string) Indicator

	Spinner struct {
		program *tea.Program
		done    chan struct{}
		once    sync.Once
	}

	spinnerModel struct {
		spinner spinner.Model
		text    string
		final   string
	}

	textMsg string

	finishMsg string
)

var (
	successMark = lipgloss.NewStyle().Foreground(lipgloss.Color("2")).Render("✔")
	failureMark = lipgloss.NewStyle().Foreground(lipgloss.Color("1")).Render("✖")
)

// NewSpinner starts a spinner on dest. It never reads from the terminal.
func NewSpinner(dest io.Writer, text string) *Spinner {
	m := spinnerModel{
		spinner: spinner.New(spinner.WithSpinner(spinner.Dot), spinner.WithStyle(lipgloss.NewStyle().Foreground(lipgloss.Color("6")))),
		text:    text,
	}

	s := Spinner{
		program: tea.NewProgram(m, tea.WithOutput(dest), tea.WithInput(nil), tea.WithoutSignalHandler()),
		done:    make(chan struct{}),
	}

	go func() {
		defer close(s.done)

		_, _ = s.program.Run()
	}()

	return &s
}

// SpinnerOn adapts [NewSpinner] to an [IndicatorFunc].
func SpinnerOn(dest io.Writer) IndicatorFunc {
	return func(text string) Indicator {
		return NewSpinner(dest, text)
	}
}

func (s *Spinner) SetText(text string) {
	s.program.Send(textMsg(text))
}

func (s *Spinner) finish(line string) {
	s.once.Do(func() {
		s.program.Send(finishMsg(line))

		<-s.done
	})
}

func (s *Spinner) Succeed(text string) {
	s.finish(successMark + " " + text)
}

func (s *Spinner) Fail(text string) {
	s.finish(failureMark + " " + text)
}

func (m spinnerModel) Init() tea.Cmd {
	return m.spinner.Tick
}

func (m spinnerModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case textMsg:
		m.text = string(msg)

		return m, nil
	case finishMsg:
		m.final = string(msg)

		return m, tea.Quit
	default:
		var cmd tea.Cmd

		m.spinner, cmd = m.spinner.Update(msg)

		return m, cmd
	}
}

func (m spinnerModel) View() string {
	if m.final != "" {
		return m.final + "\n"
	}

	return m.spinner.View() + " " + strings.TrimRight(m.text, "\r\n")
}
