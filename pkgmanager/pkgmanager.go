// Package pkgmanager identifies the JavaScript package manager a scaffolded project is installed with.
package pkgmanager

import (
	"errors"
	"fmt"
	"strings"
)

type Manager string

const (
	NPM  Manager = "npm"
	Yarn Manager = "yarn"
	PNPM Manager = "pnpm"
	Bun  Manager = "bun"
)

// UserAgentEnv is set by every supported package manager when it runs a package binary.
const UserAgentEnv = "npm_config_user_agent"

var (
	ErrUnknownManager = errors.New("unknown package manager")

	all = []Manager{NPM, Yarn, PNPM, Bun}
)

// Non-nil returned error wraps [ErrUnknownManager].
func Parse(s string) (Manager, error) {
	for _, m := range all {
		if strings.EqualFold(s, string(m)) {
			return m, nil
		}
	}

	return "", fmt.Errorf("%w: %q is not one of npm, yarn, pnpm or bun", ErrUnknownManager, s)
}

// Detect falls back to npm when the user agent names no other manager.
func Detect(getenv func(string) string) Manager {
	ua := getenv(UserAgentEnv)

	switch {
	case strings.HasPrefix(ua, "yarn"):
		return Yarn
	case strings.HasPrefix(ua, "pnpm"):
		return PNPM
	case strings.HasPrefix(ua, "bun"):
		return Bun
	default:
		return NPM
	}
}

func (m Manager) String() string {
	return string(m)
}

// InstallCommand is the command line a user would type to install dependencies.
// Bare "yarn" installs, so the subcommand is left out for it.
func (m Manager) InstallCommand() string {
	if m == Yarn {
		return string(m)
	}

	return string(m) + " install"
}

func (m Manager) RunCommand(script string) string {
	if m == NPM {
		return "npm run " + script
	}

	return string(m) + " " + script
}
