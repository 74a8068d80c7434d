// Package tui asks the scaffolding questions on an interactive terminal.
package tui

import (
	"context"
	"fmt"
	"io"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/jsandy/cli/prompt"
)

type (
	Prompter struct {
		in   io.Reader
		out  io.Writer
		dump io.Writer
	}

	Option func(*Prompter)
)

// WithDump writes every message the prompts receive to w, for debugging key handling.
func WithDump(w io.Writer) Option {
	return func(p *Prompter) {
		p.dump = w
	}
}

func NewPrompter(in io.Reader, out io.Writer, opts ...Option) *Prompter {
	p := Prompter{in: in, out: out}

	for _, opt := range opts {
		opt(&p)
	}

	return &p
}

func (p *Prompter) print(s string) {
	_, _ = io.WriteString(p.out, s)
}

func (p *Prompter) Clear() {
	p.print(clearScreen)
}

func (p *Prompter) Intro(title string) {
	p.print(barStyle.Render(barTop) + "  " + bannerStyle.Render(title) + "\n" + barStyle.Render(barSide) + "\n")
}

func (p *Prompter) Outro(message string) {
	p.print(barStyle.Render(barBottom) + "  " + message + "\n\n")
}

// summary replaces a finished question with its answer.
func (p *Prompter) summary(message, answer string, cancelled bool) {
	if cancelled {
		p.print(errorStyle.Render(markStop) + "  " + message + "\n" + barStyle.Render(barSide) + "  " + droppedStyle.Render(answer) + "\n" + barStyle.Render(barSide) + "\n")

		return
	}

	p.print(doneStyle.Render(markDone) + "  " + message + "\n" + barStyle.Render(barSide) + "  " + mutedStyle.Render(answer) + "\n" + barStyle.Render(barSide) + "\n")
}

func (p *Prompter) run(ctx context.Context, m tea.Model) (tea.Model, error) {
	program := tea.NewProgram(m, tea.WithContext(ctx), tea.WithInput(p.in), tea.WithOutput(p.out))

	final, err := program.Run()
	if err != nil {
		return nil, fmt.Errorf("failed to run terminal prompt: %w", err)
	}

	return final, nil
}

func (p *Prompter) Text(ctx context.Context, q prompt.TextQuestion) (prompt.Answer[string], error) {
	final, err := p.run(ctx, newTextModel(q, p.dump))
	if err != nil {
		return prompt.Cancelled[string](), err
	}

	m := final.(textModel)
	value := m.ti.Value()

	p.summary(q.Message, value, m.cancelled)

	if m.cancelled {
		return prompt.Cancelled[string](), nil
	}

	return prompt.Answered(value), nil
}

func (p *Prompter) Select(ctx context.Context, q prompt.SelectQuestion) (prompt.Answer[int], error) {
	final, err := p.run(ctx, newSelectModel(q, p.dump))
	if err != nil {
		return prompt.Cancelled[int](), err
	}

	m := final.(selectModel)

	if !m.submitted {
		p.summary(q.Message, "", true)

		return prompt.Cancelled[int](), nil
	}

	p.summary(q.Message, m.selected().Label, false)

	return prompt.Answered(m.index), nil
}
