package tui

import (
	"io"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/davecgh/go-spew/spew"

	"github.com/jsandy/cli/prompt"
)

type textModel struct {
	dump      io.Writer
	question  prompt.TextQuestion
	help      help.Model
	ti        textinput.Model
	submitted bool
	cancelled bool
}

func newTextModel(q prompt.TextQuestion, dump io.Writer) textModel {
	ti := textinput.New()
	ti.Placeholder = q.Placeholder
	ti.CharLimit = 256
	ti.Width = 40
	ti.Prompt = ""
	ti.Focus()

	return textModel{
		dump:     dump,
		question: q,
		help:     help.New(),
		ti:       ti,
	}
}

func (m textModel) Init() tea.Cmd {
	return textinput.Blink
}

func (m textModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if m.dump != nil {
		spew.Fdump(m.dump, msg)
	}

	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.help.Width = msg.Width

		return m, nil
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, keys.quit):
			m.cancelled = true

			return m, tea.Quit
		case key.Matches(msg, keys.submit):
			m.submitted = true

			return m, tea.Quit
		default:
		}
	}

	m.ti, cmd = m.ti.Update(msg)

	return m, cmd
}

func (m textModel) View() string {
	if m.submitted || m.cancelled {
		return ""
	}

	var b strings.Builder

	b.WriteString(activeStyle.Render(markAsk) + "  " + m.question.Message + "\n")
	b.WriteString(activeStyle.Render(barSide) + "  " + m.ti.View() + "\n")

	if m.question.Error != "" {
		b.WriteString(errorStyle.Render(barBottom + "  " + m.question.Error))
	} else {
		b.WriteString(activeStyle.Render(barBottom) + "  " + m.help.View(textKeyMap{}))
	}

	b.WriteRune('\n')

	return b.String()
}
