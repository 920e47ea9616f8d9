package planfile_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"orgplan/internal/plan"
	"orgplan/internal/planfile"
)

const layout = `
metadata = {
  owner = "platform"
}

folder "services" {
  description = "Deployable services"
  files       = ["README.md", "CODEOWNERS"]

  folder "api" {
    folder "handlers" {}
  }
  folder "worker" {}
}

folder "docs" {}
`

func TestParseLayout(t *testing.T) {
	p, err := planfile.Parse([]byte(layout), "layout.hcl", "/srv/team")
	require.NoError(t, err)

	require.Equal(t, "/srv/team", p.BasePath())
	require.Equal(t, map[string]string{"owner": "platform"}, p.Metadata())
	require.Equal(t, 5, p.CountFolders())
	require.Equal(t, 2, p.CountFiles())

	services, ok := p.Folder("services")
	require.True(t, ok)
	require.Equal(t, "Deployable services", services.Description())
	require.Equal(t, []string{"README.md", "CODEOWNERS"}, services.Files())

	var order []string
	require.NoError(t, p.Walk(func(rel string, _ plan.FolderSpec) error {
		order = append(order, filepath.ToSlash(rel))
		return nil
	}))
	require.Equal(t, []string{"services", "services/api", "services/api/handlers", "services/worker", "docs"}, order)
}

func TestParseRejectsInvalidNames(t *testing.T) {
	_, err := planfile.Parse([]byte(`folder "a" { folder "../up" {} }`), "bad.hcl", "/srv")
	require.ErrorIs(t, err, plan.ErrInvalidName)
	require.Contains(t, err.Error(), `a/../up`)

	_, err = planfile.Parse([]byte(`folder "a" { files = ["x/y"] }`), "bad.hcl", "/srv")
	require.ErrorIs(t, err, plan.ErrInvalidName)
}

func TestParseReportsSyntaxErrors(t *testing.T) {
	_, err := planfile.Parse([]byte(`folder "a" {`), "broken.hcl", "/srv")
	require.Error(t, err)
	require.Contains(t, err.Error(), "broken.hcl")

	_, err = planfile.Parse([]byte(`unknown = 1`), "extra.hcl", "/srv")
	require.Error(t, err)
}

func TestEncodeRoundTripsDefaultPlan(t *testing.T) {
	original, err := plan.Build("/srv/layout", plan.DefaultBuildOptions())
	require.NoError(t, err)

	path := filepath.Join(t.TempDir(), "default.hcl")
	require.NoError(t, os.WriteFile(path, planfile.Encode(original), 0o644))

	loaded, err := planfile.Load(path, "/srv/layout")
	require.NoError(t, err)
	require.Equal(t, original.Metadata(), loaded.Metadata())

	want, got := original.Folders(), loaded.Folders()
	require.Len(t, got, len(want))
	for i := range want {
		require.True(t, want[i].Equal(got[i]), "folder %s differs after round trip", want[i].Name())
	}
}
