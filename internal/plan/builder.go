package plan

import (
	"fmt"
	"slices"
)

var defaultLibraryNames = []string{"core", "integrations", "compliance"}

// DefaultLibraryNames returns the libraries used when BuildOptions.LibraryNames
// is empty. The result is a fresh copy.
func DefaultLibraryNames() []string {
	return slices.Clone(defaultLibraryNames)
}

const (
	librariesRationale = "Mirrored source trees keep prod and sandbox implementations in sync."
	workflowsRationale = "Workflows emphasise minimal-step chains to conserve token usage."
)

// BuildOptions selects what the default layout contains.
type BuildOptions struct {
	// LibraryNames lists library subtrees in order. Duplicates keep their
	// first position. Empty means DefaultLibraryNames().
	LibraryNames   []string
	IncludeFastAPI bool
	IncludeNFT     bool
}

// DefaultBuildOptions enables every optional section with the default libraries.
func DefaultBuildOptions() BuildOptions {
	return BuildOptions{IncludeFastAPI: true, IncludeNFT: true}
}

// Build returns the default organization plan rooted at basePath. It has no
// side effects; invalid library names or base paths are rejected up front.
func Build(basePath string, opts BuildOptions) (Plan, error) {
	names := opts.LibraryNames
	if len(names) == 0 {
		names = defaultLibraryNames
	}
	names = dedupe(names)

	libraries := make([]FolderSpec, 0, len(names))
	for _, name := range names {
		lib, err := librarySpec(name)
		if err != nil {
			return Plan{}, fmt.Errorf("library %q: %w", name, err)
		}
		libraries = append(libraries, lib)
	}

	workflowChildren := []FolderSpec{
		MustFolder("automation", WithDescription("Reusable orchestration primitives")),
		MustFolder("pipelines",
			WithDescription("Multi-step software chains for cross-app coordination"),
			WithChildren(MustFolder("ingest"), MustFolder("transform"), MustFolder("publish")),
		),
	}
	if opts.IncludeFastAPI {
		workflowChildren = append(workflowChildren, fastAPIWorkflowSpec())
	}

	folders := []FolderSpec{
		MustFolder("libraries",
			WithDescription("Software-chain libraries with mirrored source trees"),
			WithChildren(libraries...),
		),
		MustFolder("workflows",
			WithDescription("Operational workflows and service automations"),
			WithChildren(workflowChildren...),
		),
		MustFolder("apis",
			WithDescription("External and internal API surface"),
			WithChildren(
				MustFolder("http", WithDescription("REST and webhook interfaces")),
				MustFolder("events", WithDescription("Async/pub-sub contracts")),
			),
		),
		MustFolder("infrastructure",
			WithDescription("Deployment, IaC, and observability"),
			WithChildren(MustFolder("iac"), MustFolder("monitoring"), MustFolder("config")),
		),
	}
	if opts.IncludeNFT {
		folders = append(folders, digitalAssetsSpec())
	}

	metadata := map[string]string{
		"libraries": librariesRationale,
		"workflows": workflowsRationale,
	}
	return New(basePath, folders, metadata)
}

// dedupe keeps the first occurrence of every name, preserving input order.
func dedupe(names []string) []string {
	seen := make(map[string]struct{}, len(names))
	out := make([]string, 0, len(names))
	for _, name := range names {
		if _, ok := seen[name]; ok {
			continue
		}
		seen[name] = struct{}{}
		out = append(out, name)
	}
	return out
}

func librarySpec(name string) (FolderSpec, error) {
	mirrored := mirroredChildren()
	return NewFolder(name,
		WithDescription(fmt.Sprintf("Library '%s' with mirrored implementations", name)),
		WithChildren(
			MustFolder("source", WithDescription("Primary implementation"), WithChildren(mirrored...)),
			MustFolder("mirror", WithDescription("Sandboxed mirror for validation and safety"), WithChildren(mirrored...)),
			MustFolder("tests"),
			MustFolder("docs", WithFiles("README.md")),
		),
	)
}

func mirroredChildren() []FolderSpec {
	return []FolderSpec{
		MustFolder("adapters", WithDescription("External service connectors")),
		MustFolder("domain", WithDescription("Core domain models")),
		MustFolder("services", WithDescription("Business logic services")),
		MustFolder("pipelines", WithDescription("Composable software chains")),
	}
}

func fastAPIWorkflowSpec() FolderSpec {
	return MustFolder("fastapi",
		WithDescription("FastAPI application workflows"),
		WithChildren(
			MustFolder("routers"),
			MustFolder("schemas"),
			MustFolder("dependencies"),
			MustFolder("services"),
			MustFolder("tests"),
		),
		WithFiles("settings.py"),
	)
}

func digitalAssetsSpec() FolderSpec {
	return MustFolder("digital_assets",
		WithDescription("NFT and media organization"),
		WithChildren(
			MustFolder("collections",
				WithDescription("NFT drops grouped by campaign"),
				WithChildren(
					MustFolder("metadata", WithFiles("schema.json", "collection.yaml")),
					MustFolder("assets"),
					MustFolder("proofs"),
				),
			),
			MustFolder("registry",
				WithDescription("Minted token manifests and supply tracking"),
				WithFiles("index.json"),
			),
			MustFolder("workflows",
				WithDescription("Automation around NFT lifecycle"),
				WithChildren(MustFolder("mint"), MustFolder("distribute"), MustFolder("reconcile")),
			),
		),
	)
}
