package scaffold

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jsandy/cli/pkgmanager"
	"github.com/jsandy/cli/prompt"
)

func TestNextSteps(t *testing.T) {
	md := NextSteps(prompt.Config{ProjectName: "my-app", ORM: prompt.ORMNone}, pkgmanager.NPM)

	assert.Equal(t, "## Next steps\n\n- `cd my-app`\n- `npm run dev`\n", md)

	md = NextSteps(prompt.Config{ProjectName: "db-app", ORM: prompt.ORMDrizzle, Provider: prompt.ProviderPlanetScale, NoInstall: true}, pkgmanager.Yarn)

	assert.Contains(t, md, "- `yarn`\n")
	assert.Contains(t, md, "PlanetScale")
	assert.Contains(t, md, "`yarn db:push`")
}

func TestRenderNextSteps(t *testing.T) {
	out, err := RenderNextSteps(NextSteps(prompt.Config{ProjectName: "my-app"}, pkgmanager.Bun), "notty")
	require.NoError(t, err)

	assert.Contains(t, out, "Next steps")
	assert.Contains(t, out, "cd my-app")
	assert.Contains(t, out, "bun dev")
}
