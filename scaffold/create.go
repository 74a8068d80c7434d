// Package scaffold is the create-jsandy-app command: it asks the setup questions, lays out the
// project directory and installs its dependencies.
package scaffold

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/alecthomas/kong"

	"github.com/jsandy/cli/install"
	"github.com/jsandy/cli/logger"
	"github.com/jsandy/cli/pkgmanager"
	"github.com/jsandy/cli/prompt"
	"github.com/jsandy/cli/tui"
	"github.com/jsandy/cli/version"
)

type (
	// Generator materialises the project template into dir.
	Generator interface {
		Generate(ctx context.Context, dir string, cfg prompt.Config) error
	}

	installer interface {
		Install(ctx context.Context, projectDir string, m pkgmanager.Manager) error
	}

	updateChecker func(context.Context) (string, error)

	CreateCmd struct {
		logger         *logger.Logger
		prompter       prompt.Prompter
		installer      installer
		generator      Generator
		checkForUpdate updateChecker
		dump           io.WriteCloser
		stdout         io.Writer
		manager        pkgmanager.Manager
		rootDir        string
		ProjectName    string           `arg:"" optional:"" name:"project-name" help:"Name of the project directory to create."`
		NoInstall      bool             `name:"noInstall" help:"Do not install dependencies."`
		NoUpdateCheck  bool             `name:"no-update-check" env:"JSANDY_NO_UPDATE_CHECK" help:"Do not look for a newer release."`
		TimeoutSeconds int              `name:"timeout-seconds" default:"1" help:"Give up the update check after this many seconds."`
		TUIDump        string           `name:"tui-dump" hidden:"" type:"path" env:"JSANDY_TUI_DUMP" help:"Dump terminal messages to this file."`
		Version        kong.VersionFlag `name:"version" help:"Show version information and quit."`
	}

	// mkdirGenerator only creates the project directory.
	mkdirGenerator struct{}
)

var ErrScaffold = errors.New("scaffolding failure")

// Non-nil returned error wraps [ErrScaffold].
func (mkdirGenerator) Generate(_ context.Context, dir string, _ prompt.Config) error {
	if err := os.MkdirAll(filepath.Clean(dir), 0750); err != nil {
		return fmt.Errorf("%w: failed to create project directory %q: %s", ErrScaffold, dir, err.Error())
	}

	return nil
}

// AfterApply fills in whatever a test has not already injected.
func (c *CreateCmd) AfterApply() (err error) {
	if c.rootDir == "" {
		c.rootDir, err = os.Getwd()
		if err != nil {
			return fmt.Errorf("failed to get current working directory: %w", err)
		}
	}

	if c.manager == "" {
		c.manager = pkgmanager.Detect(os.Getenv)
	}

	if c.stdout == nil {
		c.stdout = os.Stdout
	}

	if c.logger == nil {
		c.logger = logger.New(c.stdout)
	}

	if c.prompter == nil {
		var opts []tui.Option

		if c.TUIDump != "" {
			c.dump, err = os.OpenFile(filepath.Clean(c.TUIDump), os.O_CREATE|os.O_TRUNC|os.O_WRONLY, 0o600)
			if err != nil {
				return fmt.Errorf("failed to open terminal dump file %q: %w", c.TUIDump, err)
			}

			opts = append(opts, tui.WithDump(c.dump))
		}

		c.prompter = tui.NewPrompter(os.Stdin, c.stdout, opts...)
	}

	if c.installer == nil {
		c.installer = install.New(c.logger, os.Stderr, install.SpinnerOn(c.stdout))
	}

	if c.generator == nil {
		c.generator = mkdirGenerator{}
	}

	if c.checkForUpdate == nil {
		c.checkForUpdate = version.CheckForUpdate
	}

	return nil
}

// startUpdateCheck never blocks the prompts; the result is read once they are done.
func (c *CreateCmd) startUpdateCheck(ctx context.Context) <-chan string {
	out := make(chan string, 1)

	if c.NoUpdateCheck {
		close(out)

		return out
	}

	go func() {
		defer close(out)

		ctx, cancel := context.WithTimeout(ctx, time.Duration(c.TimeoutSeconds)*time.Second)
		defer cancel()

		if latest, err := c.checkForUpdate(ctx); err == nil && latest != "" {
			out <- latest
		}
	}()

	return out
}

// Run returns nil when the user cancels the setup.
// Non-nil returned error wraps [prompt.ErrPrompt], [ErrScaffold] or [install.ErrInstall].
func (c *CreateCmd) Run(ctx context.Context) error {
	if c.dump != nil {
		defer func() { _ = c.dump.Close() }()
	}

	update := c.startUpdateCheck(ctx)

	answer, err := prompt.Run(ctx, c.prompter, prompt.Input{
		ProjectName: c.ProjectName,
		NoInstall:   c.NoInstall,
		Manager:     c.manager,
	})
	if err != nil {
		return err
	}

	cfg, ok := answer.Get()
	if !ok {
		return nil
	}

	dir := filepath.Join(c.rootDir, cfg.ProjectName)

	if err = c.generator.Generate(ctx, dir, cfg); err != nil {
		return err
	}

	if !cfg.NoInstall {
		if err = c.installer.Install(ctx, dir, c.manager); err != nil {
			return err
		}
	}

	if latest, ok := <-update; ok {
		c.logger.Warn(fmt.Sprintf("A newer release of create-jsandy-app is available: %s.", latest))
	}

	steps, err := RenderNextSteps(NextSteps(cfg, c.manager), glamourStyle)
	if err != nil {
		c.logger.Println(NextSteps(cfg, c.manager))

		return nil
	}

	c.logger.Printf("%s", steps)

	return nil
}
