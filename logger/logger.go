// Package logger writes coloured status lines to the terminal.
package logger

import (
	"fmt"
	"io"
	"strings"
	"sync"

	"github.com/charmbracelet/lipgloss"
)

type (
	Logger struct {
		dest    io.Writer
		info    lipgloss.Style
		warn    lipgloss.Style
		err     lipgloss.Style
		success lipgloss.Style
		mux     sync.Mutex
	}
)

// New picks the colour profile from dest, so a non-terminal writer gets plain text.
func New(dest io.Writer) *Logger {
	r := lipgloss.NewRenderer(dest)

	return &Logger{
		dest:    dest,
		info:    r.NewStyle().Foreground(lipgloss.Color("6")),
		warn:    r.NewStyle().Foreground(lipgloss.Color("3")),
		err:     r.NewStyle().Foreground(lipgloss.Color("1")),
		success: r.NewStyle().Foreground(lipgloss.Color("2")),
	}
}

// Paint styles every line on its own so lipgloss does not pad short lines.
func Paint(style lipgloss.Style, s string) string {
	lines := strings.Split(s, "\n")

	for i := range lines {
		if lines[i] != "" {
			lines[i] = style.Render(lines[i])
		}
	}

	return strings.Join(lines, "\n")
}

func (l *Logger) write(style lipgloss.Style, v ...any) {
	l.mux.Lock()
	defer l.mux.Unlock()

	_, _ = io.WriteString(l.dest, Paint(style, fmt.Sprint(v...))+"\n")
}

func (l *Logger) Info(v ...any) {
	l.write(l.info, v...)
}

func (l *Logger) Warn(v ...any) {
	l.write(l.warn, v...)
}

func (l *Logger) Error(v ...any) {
	l.write(l.err, v...)
}

func (l *Logger) Success(v ...any) {
	l.write(l.success, v...)
}

func (l *Logger) Printf(format string, v ...any) {
	l.mux.Lock()
	defer l.mux.Unlock()

	_, _ = fmt.Fprintf(l.dest, format, v...)
}

func (l *Logger) Println(v ...any) {
	l.mux.Lock()
	defer l.mux.Unlock()

	_, _ = fmt.Fprintln(l.dest, v...)
}
