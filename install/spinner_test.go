package install

import (
	"bytes"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
)

func TestSpinnerModel(t *testing.T) {
	var m tea.Model = spinnerModel{text: "Running bun install..."}

	assert.Contains(t, m.View(), "Running bun install...")

	m, _ = m.Update(textMsg("resolving\n"))
	assert.Contains(t, m.View(), "resolving")
	assert.NotContains(t, m.View(), "\n")

	m, cmd := m.Update(finishMsg("done"))
	assert.Equal(t, "done\n", m.View())
	assert.NotNil(t, cmd)
}

func TestSpinner(t *testing.T) {
	var buf bytes.Buffer

	s := NewSpinner(&buf, "Running pnpm install...")

	s.SetText("42%")
	s.Succeed("Successfully installed dependencies!")
	// A second finish must not block.
	s.Fail("ignored")

	assert.Contains(t, buf.String(), "Successfully installed dependencies!")
	assert.NotContains(t, buf.String(), "ignored")
}
