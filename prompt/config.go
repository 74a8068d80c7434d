package prompt

import (
	"unicode/utf8"
)

type (
	ORM string

	Dialect string

	Provider string

	Linter string

	// Config is what the user chose. Dialect and Provider are empty unless ORM is [ORMDrizzle].
	Config struct {
		ProjectName string
		ORM         ORM
		Dialect     Dialect
		Provider    Provider
		Linter      Linter
		SetupVSCode bool
		NoInstall   bool
	}
)

const (
	ORMNone    ORM = "none"
	ORMDrizzle ORM = "drizzle"

	DialectPostgres Dialect = "postgres"

	ProviderPostgres       Provider = "postgres"
	ProviderNeon           Provider = "neon"
	ProviderVercelPostgres Provider = "vercel-postgres"
	ProviderPlanetScale    Provider = "planetscale"

	LinterNone   Linter = "none"
	LinterESLint Linter = "eslint"
	LinterBiome  Linter = "biome"

	MaxProjectNameLength = 50
)

// ValidateProjectName returns the message shown to the user, or "" when name is acceptable.
func ValidateProjectName(name string) string {
	if name == "" {
		return "Please enter a project name"
	}

	if utf8.RuneCountInString(name) > MaxProjectNameLength {
		return "Project name must be less than 50 characters"
	}

	return ""
}
