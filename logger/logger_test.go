package logger

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLevels(t *testing.T) {
	var buf bytes.Buffer

	l := New(&buf)

	l.Info("Installing dependencies...")
	l.Warn("careful")
	l.Error("broken")
	l.Success("done")

	// A bytes.Buffer is not a terminal, so nothing is coloured.
	assert.Equal(t, "Installing dependencies...\ncareful\nbroken\ndone\n", buf.String())
}

func TestPrintf(t *testing.T) {
	var buf bytes.Buffer

	l := New(&buf)

	l.Printf("%s-%d", "a", 1)
	l.Println("b", 2)

	assert.Equal(t, "a-1b 2\n", buf.String())
}

func TestTrailingNewline(t *testing.T) {
	var buf bytes.Buffer

	New(&buf).Success("Successfully installed dependencies!\n")

	assert.Equal(t, "Successfully installed dependencies!\n\n", buf.String())
}
