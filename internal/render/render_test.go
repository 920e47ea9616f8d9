package render_test

import (
	"strings"
	"testing"

	"github.com/jedib0t/go-pretty/v6/list"
	"github.com/stretchr/testify/require"

	"orgplan/internal/plan"
	"orgplan/internal/render"
)

func labels(nodes []*render.MemoryNode) []string {
	out := make([]string, 0, len(nodes))
	for _, n := range nodes {
		out = append(out, n.Label)
	}
	return out
}

func TestPlanTreeMirrorsFolders(t *testing.T) {
	p, err := plan.New("/srv/layout", []plan.FolderSpec{
		plan.MustFolder("docs",
			plan.WithDescription("Documentation"),
			plan.WithFiles("README.md"),
			plan.WithChildren(plan.MustFolder("guides")),
		),
		plan.MustFolder("bin"),
	}, nil)
	require.NoError(t, err)

	root, ok := render.PlanTree(p, render.MemoryFactory).(*render.MemoryNode)
	require.True(t, ok)
	require.Equal(t, "/srv/layout", root.Label)
	require.Equal(t, []string{"docs — Documentation", "bin"}, labels(root.Children()))

	docs := root.Children()[0]
	require.Equal(t, []string{"README.md", "guides"}, labels(docs.Children()))
	require.Empty(t, root.Children()[1].Children())
}

func TestPlanTreeDefaultPlanHasTopLevelBranches(t *testing.T) {
	p, err := plan.Build("/srv", plan.DefaultBuildOptions())
	require.NoError(t, err)

	root := render.PlanTree(p, render.MemoryFactory).(*render.MemoryNode)
	require.Len(t, root.Children(), 5)

	// One line per folder and file plus the root.
	lines := strings.Count(root.String(), "\n")
	require.Equal(t, 1+p.CountFolders()+p.CountFiles(), lines)
}

func TestPrettyTreeRenders(t *testing.T) {
	p, err := plan.Build("/srv", plan.BuildOptions{LibraryNames: []string{"alpha"}})
	require.NoError(t, err)

	root := render.PlanTree(p, render.PrettyFactory(render.PrettyOptions{Style: list.StyleConnectedLight})).(*render.PrettyNode)
	out := root.Render()
	require.Contains(t, out, "/srv")
	require.Contains(t, out, "alpha — Library 'alpha' with mirrored implementations")
	require.Contains(t, out, "README.md")
	require.NotContains(t, out, "digital_assets")
}
