// Package install runs a package manager's install command inside a new project.
package install

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"os/exec"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/jsandy/cli/logger"
	"github.com/jsandy/cli/pkgmanager"
)

type (
	streamMode byte

	// strategy is how one package manager's output reaches the user.
	strategy struct {
		stdout   streamMode
		progress ProgressFunc
	}

	commandFunc func(ctx context.Context, name string, args ...string) *exec.Cmd

	statusLogger interface {
		Info(...any)
		Success(...any)
	}

	Installer struct {
		logger       statusLogger
		stderr       io.Writer
		newIndicator IndicatorFunc
		command      commandFunc
	}
)

const (
	inheritStderr streamMode = iota
	pipeStdout
	discardStdout
)

const (
	startMessage   = "Installing dependencies..."
	successMessage = "Successfully installed dependencies!\n"

	// stderrTail bounds how much of a failed command's stderr ends up in the error.
	stderrTail = 2048
)

var (
	ErrInstall = errors.New("dependency installation failure")

	successStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("2"))
)

// Non-nil returned error wraps [pkgmanager.ErrUnknownManager].
func strategyFor(m pkgmanager.Manager) (strategy, error) {
	switch m {
	case pkgmanager.NPM:
		return strategy{stdout: inheritStderr}, nil
	case pkgmanager.PNPM:
		return strategy{stdout: pipeStdout, progress: PNPMProgress}, nil
	case pkgmanager.Yarn:
		return strategy{stdout: pipeStdout, progress: YarnProgress}, nil
	case pkgmanager.Bun:
		return strategy{stdout: discardStdout}, nil
	default:
		return strategy{}, fmt.Errorf("%w: %q", pkgmanager.ErrUnknownManager, string(m))
	}
}

// New reports status through log. npm's own progress output goes to stderr.
func New(log *logger.Logger, stderr io.Writer, fn IndicatorFunc) *Installer {
	return &Installer{
		logger:       log,
		stderr:       stderr,
		newIndicator: fn,
		command:      exec.CommandContext,
	}
}

// Install returns once the package manager has exited.
// Non-nil returned error wraps [ErrInstall] or [pkgmanager.ErrUnknownManager].
func (i *Installer) Install(ctx context.Context, projectDir string, m pkgmanager.Manager) error {
	s, err := strategyFor(m)
	if err != nil {
		return err
	}

	i.logger.Info(startMessage)

	if s.stdout == inheritStderr {
		if err = i.runInherited(ctx, projectDir, m); err != nil {
			return err
		}

		i.logger.Success(successMessage)

		return nil
	}

	indicator := i.newIndicator(fmt.Sprintf("Running %s install...", m))

	if err = i.runWithIndicator(ctx, projectDir, m, s, indicator); err != nil {
		indicator.Fail(fmt.Sprintf("Failed to install dependencies with %s.", m))

		return err
	}

	indicator.Succeed(logger.Paint(successStyle, successMessage))

	return nil
}

func (i *Installer) runInherited(ctx context.Context, projectDir string, m pkgmanager.Manager) error {
	cmd := i.command(ctx, string(m), "install")
	cmd.Dir = projectDir
	cmd.Stderr = i.stderr

	if err := cmd.Run(); err != nil {
		return fmt.Errorf("%w: %s: %s", ErrInstall, m.InstallCommand(), err.Error())
	}

	return nil
}

func (i *Installer) runWithIndicator(ctx context.Context, projectDir string, m pkgmanager.Manager, s strategy, indicator Indicator) (err error) {
	var (
		stdout io.ReadCloser
		stderr bytes.Buffer
	)

	cmd := i.command(ctx, string(m), "install")
	cmd.Dir = projectDir
	cmd.Stderr = &stderr

	if s.stdout == pipeStdout {
		stdout, err = cmd.StdoutPipe()
		if err != nil {
			return fmt.Errorf("%w: failed to attach to %s output: %s", ErrInstall, m, err.Error())
		}
	}

	if err = cmd.Start(); err != nil {
		return fmt.Errorf("%w: failed to start %s: %s", ErrInstall, m, err.Error())
	}

	if stdout != nil {
		follow(stdout, s.progress, indicator)
	}

	if err = cmd.Wait(); err != nil {
		return fmt.Errorf("%w: %s: %s%s", ErrInstall, m.InstallCommand(), err.Error(), tail(stderr.String()))
	}

	return nil
}

// follow reads until EOF, which the pipe reports once the process has exited.
func follow(r io.Reader, fn ProgressFunc, indicator Indicator) {
	buf := make([]byte, 32*1024)

	for {
		n, err := r.Read(buf)
		if n > 0 {
			if text, ok := fn(string(buf[:n])); ok {
				indicator.SetText(text)
			}
		}

		if err != nil {
			return
		}
	}
}

func tail(s string) string {
	s = strings.TrimSpace(s)
	if s == "" {
		return ""
	}

	if len(s) > stderrTail {
		s = s[len(s)-stderrTail:]
	}

	return "\n" + s
}
