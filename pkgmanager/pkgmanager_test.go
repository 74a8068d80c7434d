package pkgmanager

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func env(ua string) func(string) string {
	return func(key string) string {
		if key == UserAgentEnv {
			return ua
		}

		return ""
	}
}

func TestDetect(t *testing.T) {
	var tests = []struct {
		ua       string
		expected Manager
	}{
		{ua: "yarn/1.22.19 npm/? node/v20.11.0 darwin arm64", expected: Yarn},
		{ua: "pnpm/9.1.0 npm/? node/v20.11.0 linux x64", expected: PNPM},
		{ua: "bun/1.1.8 npm/? node/v21.6.0 linux x64", expected: Bun},
		{ua: "npm/10.2.4 node/v20.11.0 linux x64 workspaces/false", expected: NPM},
		{ua: "", expected: NPM},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.expected, Detect(env(tt.ua)), "user agent %q", tt.ua)
	}
}

func TestParse(t *testing.T) {
	m, err := Parse("PNPM")
	require.NoError(t, err)
	assert.Equal(t, PNPM, m)

	_, err = Parse("deno")
	require.ErrorIs(t, err, ErrUnknownManager)
}

func TestInstallCommand(t *testing.T) {
	assert.Equal(t, "npm install", NPM.InstallCommand())
	assert.Equal(t, "pnpm install", PNPM.InstallCommand())
	assert.Equal(t, "bun install", Bun.InstallCommand())
	assert.Equal(t, "yarn", Yarn.InstallCommand())
}

func TestRunCommand(t *testing.T) {
	assert.Equal(t, "npm run dev", NPM.RunCommand("dev"))
	assert.Equal(t, "yarn dev", Yarn.RunCommand("dev"))
	assert.Equal(t, "bun dev", Bun.RunCommand("dev"))
}
