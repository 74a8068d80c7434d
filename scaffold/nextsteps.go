package scaffold

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/glamour"

	"github.com/jsandy/cli/pkgmanager"
	"github.com/jsandy/cli/prompt"
)

// glamourStyle is overridden by tests; "auto" follows the terminal background.
var glamourStyle = "auto"

// NextSteps is the markdown shown once the project is ready.
func NextSteps(cfg prompt.Config, m pkgmanager.Manager) string {
	var b strings.Builder

	b.WriteString("## Next steps\n\n")
	fmt.Fprintf(&b, "- `cd %s`\n", cfg.ProjectName)

	if cfg.NoInstall {
		fmt.Fprintf(&b, "- `%s`\n", m.InstallCommand())
	}

	if cfg.ORM == prompt.ORMDrizzle {
		fmt.Fprintf(&b, "- Set `DATABASE_URL` in `.env` for your %s database, then run `%s`\n", providerName(cfg.Provider), m.RunCommand("db:push"))
	}

	fmt.Fprintf(&b, "- `%s`\n", m.RunCommand("dev"))

	return b.String()
}

func providerName(p prompt.Provider) string {
	switch p {
	case prompt.ProviderNeon:
		return "Neon"
	case prompt.ProviderVercelPostgres:
		return "Vercel Postgres"
	case prompt.ProviderPlanetScale:
		return "PlanetScale"
	default:
		return "PostgreSQL"
	}
}

func RenderNextSteps(markdown, style string) (string, error) {
	opts := []glamour.TermRendererOption{glamour.WithWordWrap(80)}

	if style == "auto" {
		opts = append(opts, glamour.WithAutoStyle())
	} else {
		opts = append(opts, glamour.WithStandardStyle(style))
	}

	r, err := glamour.NewTermRenderer(opts...)
	if err != nil {
		return "", fmt.Errorf("failed to create markdown renderer: %w", err)
	}

	out, err := r.Render(markdown)
	if err != nil {
		return "", fmt.Errorf("failed to render next steps: %w", err)
	}

	return out, nil
}
