package tui

import (
	"io"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/davecgh/go-spew/spew"

	"github.com/jsandy/cli/prompt"
)

type selectModel struct {
	dump      io.Writer
	question  prompt.SelectQuestion
	help      help.Model
	index     int
	submitted bool
	cancelled bool
}

func newSelectModel(q prompt.SelectQuestion, dump io.Writer) selectModel {
	return selectModel{
		dump:     dump,
		question: q,
		help:     help.New(),
	}
}

func (m selectModel) Init() tea.Cmd {
	return nil
}

func (m selectModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if m.dump != nil {
		spew.Fdump(m.dump, msg)
	}

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.help.Width = msg.Width
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, keys.quit):
			m.cancelled = true

			return m, tea.Quit
		case key.Matches(msg, keys.submit) && len(m.question.Choices) > 0:
			m.submitted = true

			return m, tea.Quit
		case key.Matches(msg, keys.up):
			if m.index > 0 {
				m.index -= 1
			}
		case key.Matches(msg, keys.down):
			if m.index < len(m.question.Choices)-1 {
				m.index += 1
			}
		case key.Matches(msg, keys.help):
			m.help.ShowAll = !m.help.ShowAll
		default:
		}
	}

	return m, nil
}

func (m selectModel) selected() prompt.Choice {
	return m.question.Choices[m.index]
}

func (m selectModel) View() string {
	if m.submitted || m.cancelled {
		return ""
	}

	var b strings.Builder

	b.WriteString(activeStyle.Render(markAsk) + "  " + m.question.Message + "\n")

	for i, choice := range m.question.Choices {
		b.WriteString(activeStyle.Render(barSide) + "  ")

		if i == m.index {
			b.WriteString(doneStyle.Render(cursor) + " " + choice.Label)

			if choice.Hint != "" {
				b.WriteString(" " + mutedStyle.Render("("+choice.Hint+")"))
			}
		} else {
			b.WriteString(mutedStyle.Render(noCursor + " " + choice.Label))
		}

		b.WriteRune('\n')
	}

	b.WriteString(activeStyle.Render(barBottom) + "  " + m.help.View(selectKeyMap{}))
	b.WriteRune('\n')

	return b.String()
}
