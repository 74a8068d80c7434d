// Package prompt walks the user through the questions that configure a new project.
package prompt

import (
	"context"
	"errors"
	"fmt"

	"github.com/jsandy/cli/pkgmanager"
)

type (
	Choice struct {
		Label string
		Hint  string
	}

	TextQuestion struct {
		Message     string
		Placeholder string
		// Error is the validation message for the previous answer, if any.
		Error string
	}

	SelectQuestion struct {
		Message string
		Choices []Choice
	}

	// Prompter is the terminal the questions are asked on.
	// A non-nil error is a terminal failure; cancellation is reported through [Answer].
	Prompter interface {
		Clear()
		Intro(title string)
		Outro(message string)
		Text(context.Context, TextQuestion) (Answer[string], error)
		Select(context.Context, SelectQuestion) (Answer[int], error)
	}

	Input struct {
		// ProjectName skips the name question when not empty.
		ProjectName string
		NoInstall   bool
		Manager     pkgmanager.Manager
	}

	option[T any] struct {
		value T
		Choice
	}
)

const (
	Title = " jSandy CLI "

	CancelledMessage = "Setup cancelled."
)

var (
	ErrPrompt = errors.New("prompt failure")

	orms = []option[ORM]{
		{value: ORMNone, Choice: Choice{Label: "None"}},
		{value: ORMDrizzle, Choice: Choice{Label: "Drizzle ORM"}},
	}

	providers = []option[Provider]{
		{value: ProviderPostgres, Choice: Choice{Label: "PostgreSQL"}},
		{value: ProviderNeon, Choice: Choice{Label: "Neon"}},
		{value: ProviderVercelPostgres, Choice: Choice{Label: "Vercel Postgres"}},
		{value: ProviderPlanetScale, Choice: Choice{Label: "PlanetScale"}},
	}

	linters = []option[Linter]{
		{value: LinterNone, Choice: Choice{Label: "None"}},
		{value: LinterESLint, Choice: Choice{Label: "ESLint"}},
		{value: LinterBiome, Choice: Choice{Label: "Biome"}},
	}

	vscode = []option[bool]{
		{value: true, Choice: Choice{Label: "Yes - Configure VS Code settings and extensions"}},
		{value: false, Choice: Choice{Label: "No - Skip VS Code configuration"}},
	}

	yesNo = []option[bool]{
		{value: true, Choice: Choice{Label: "Yes"}},
		{value: false, Choice: Choice{Label: "No"}},
	}
)

// Non-nil returned error wraps [ErrPrompt].
func choose[T any](ctx context.Context, p Prompter, message string, opts []option[T]) (Answer[T], error) {
	q := SelectQuestion{Message: message, Choices: make([]Choice, len(opts))}

	for i := range opts {
		q.Choices[i] = opts[i].Choice
	}

	a, err := p.Select(ctx, q)
	if err != nil {
		return Cancelled[T](), fmt.Errorf("%w: %q: %s", ErrPrompt, message, err.Error())
	}

	i, ok := a.Get()
	if !ok {
		return Cancelled[T](), nil
	}

	if i < 0 || i >= len(opts) {
		return Cancelled[T](), fmt.Errorf("%w: %q: choice %d out of range", ErrPrompt, message, i)
	}

	return Answered(opts[i].value), nil
}

// Non-nil returned error wraps [ErrPrompt].
func askProjectName(ctx context.Context, p Prompter) (Answer[string], error) {
	q := TextQuestion{
		Message:     "What will your project be called?",
		Placeholder: "my-jsandy-app",
	}

	for {
		a, err := p.Text(ctx, q)
		if err != nil {
			return a, fmt.Errorf("%w: %q: %s", ErrPrompt, q.Message, err.Error())
		}

		name, ok := a.Get()
		if !ok {
			return a, nil
		}

		if q.Error = ValidateProjectName(name); q.Error == "" {
			return a, nil
		}
	}
}

// Run asks every question in order. A cancelled result carries no partial config.
// Non-nil returned error wraps [ErrPrompt].
func Run(ctx context.Context, p Prompter, in Input) (Answer[Config], error) {
	var (
		cfg Config
		ok  bool
	)

	cancel := func(err error) (Answer[Config], error) {
		if err == nil {
			p.Outro(CancelledMessage)
		}

		return Cancelled[Config](), err
	}

	p.Clear()
	p.Intro(Title)

	cfg.ProjectName = in.ProjectName
	if cfg.ProjectName == "" {
		name, err := askProjectName(ctx, p)
		if cfg.ProjectName, ok = name.Get(); err != nil || !ok {
			return cancel(err)
		}
	}

	orm, err := choose(ctx, p, "Which database ORM would you like to use?", orms)
	if cfg.ORM, ok = orm.Get(); err != nil || !ok {
		return cancel(err)
	}

	if cfg.ORM == ORMDrizzle {
		cfg.Dialect = DialectPostgres

		provider, err := choose(ctx, p, "Which Postgres provider would you like to use?", providers)
		if cfg.Provider, ok = provider.Get(); err != nil || !ok {
			return cancel(err)
		}
	}

	linter, err := choose(ctx, p, "Which linter would you like to use?", linters)
	if cfg.Linter, ok = linter.Get(); err != nil || !ok {
		return cancel(err)
	}

	setup, err := choose(ctx, p, "Would you like to set up recommended VS Code workspace settings?", vscode)
	if cfg.SetupVSCode, ok = setup.Get(); err != nil || !ok {
		return cancel(err)
	}

	cfg.NoInstall = in.NoInstall
	if !cfg.NoInstall {
		message := fmt.Sprintf("Should we run '%s' for you?", in.Manager.InstallCommand())

		install, err := choose(ctx, p, message, yesNo)

		var yes bool
		if yes, ok = install.Get(); err != nil || !ok {
			return cancel(err)
		}

		cfg.NoInstall = !yes
	}

	return Answered(cfg), nil
}
