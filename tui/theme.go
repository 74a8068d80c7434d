package tui

import (
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/lipgloss"
)

type (
	textKeyMap struct{}

	selectKeyMap struct{}
)

var (
	keys = struct {
		up     key.Binding
		down   key.Binding
		submit key.Binding
		help   key.Binding
		quit   key.Binding
	}{
		up: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("↑/k", "move up"),
		),
		down: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("↓/j", "move down"),
		),
		submit: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("↵", "submit"),
		),
		help: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "toggle help"),
		),
		quit: key.NewBinding(
			key.WithKeys("esc", "ctrl+c"),
			key.WithHelp("esc", "cancel"),
		),
	}

	palette = struct {
		cyan  lipgloss.Color
		green lipgloss.Color
		red   lipgloss.Color
		gray  lipgloss.Color
		black lipgloss.Color
	}{
		cyan:  lipgloss.Color("6"),
		green: lipgloss.Color("2"),
		red:   lipgloss.Color("1"),
		gray:  lipgloss.Color("8"),
		black: lipgloss.Color("0"),
	}

	bannerStyle  = lipgloss.NewStyle().Background(palette.cyan).Foreground(palette.black)
	barStyle     = lipgloss.NewStyle().Foreground(palette.gray)
	activeStyle  = lipgloss.NewStyle().Foreground(palette.cyan)
	doneStyle    = lipgloss.NewStyle().Foreground(palette.green)
	errorStyle   = lipgloss.NewStyle().Foreground(palette.red)
	mutedStyle   = lipgloss.NewStyle().Foreground(palette.gray)
	droppedStyle = mutedStyle.Strikethrough(true)
)

const (
	barTop    = "┌"
	barSide   = "│"
	barBottom = "└"
	markAsk   = "◆"
	markDone  = "◇"
	markStop  = "■"
	cursor    = "●"
	noCursor  = "○"

	clearScreen = "\x1b[H\x1b[2J"
)

func (textKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{keys.submit, keys.quit}
}

func (textKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{{keys.submit, keys.quit}}
}

func (selectKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{keys.help, keys.quit}
}

func (selectKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{keys.up, keys.down, keys.submit},
		{keys.help, keys.quit},
	}
}
