// Package planfile reads and writes organization plans as HCL.
//
// A layout file holds an optional metadata map and nested folder blocks:
//
//	metadata = { owner = "platform" }
//
//	folder "libraries" {
//	  description = "Shared code"
//	  files       = ["README.md"]
//
//	  folder "core" {}
//	}
//
// The base path is not part of the file; callers supply it when loading.
package planfile

import (
	"fmt"
	"path/filepath"

	"github.com/hashicorp/hcl/v2"
	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"

	"orgplan/internal/plan"
)

type hclLayout struct {
	Metadata map[string]string `hcl:"metadata,optional"`
	Folders  []*hclFolder      `hcl:"folder,block"`
}

type hclFolder struct {
	Name        string       `hcl:"name,label"`
	Description *string      `hcl:"description,optional"`
	Files       []string     `hcl:"files,optional"`
	Folders     []*hclFolder `hcl:"folder,block"`
}

// Load parses the HCL layout at path into a plan rooted at basePath.
func Load(path, basePath string) (plan.Plan, error) {
	parser := hclparse.NewParser()
	file, diags := parser.ParseHCLFile(path)
	if diags.HasErrors() {
		return plan.Plan{}, fmt.Errorf("parse plan file %s: %w", path, diags)
	}
	return decode(file, filepath.Base(path), basePath)
}

// Parse decodes HCL source into a plan rooted at basePath. filename is only
// used in diagnostics.
func Parse(src []byte, filename, basePath string) (plan.Plan, error) {
	parser := hclparse.NewParser()
	file, diags := parser.ParseHCL(src, filename)
	if diags.HasErrors() {
		return plan.Plan{}, fmt.Errorf("parse plan file %s: %w", filename, diags)
	}
	return decode(file, filename, basePath)
}

func decode(file *hcl.File, filename, basePath string) (plan.Plan, error) {
	var layout hclLayout
	if diags := gohcl.DecodeBody(file.Body, nil, &layout); diags.HasErrors() {
		return plan.Plan{}, fmt.Errorf("decode plan file %s: %w", filename, diags)
	}

	folders, err := convertFolders(layout.Folders, "")
	if err != nil {
		return plan.Plan{}, fmt.Errorf("plan file %s: %w", filename, err)
	}
	p, err := plan.New(basePath, folders, layout.Metadata)
	if err != nil {
		return plan.Plan{}, fmt.Errorf("plan file %s: %w", filename, err)
	}
	return p, nil
}

func convertFolders(blocks []*hclFolder, parent string) ([]plan.FolderSpec, error) {
	specs := make([]plan.FolderSpec, 0, len(blocks))
	for _, block := range blocks {
		where := block.Name
		if parent != "" {
			where = parent + "/" + block.Name
		}
		children, err := convertFolders(block.Folders, where)
		if err != nil {
			return nil, err
		}
		opts := []plan.FolderOption{plan.WithChildren(children...), plan.WithFiles(block.Files...)}
		if block.Description != nil {
			opts = append(opts, plan.WithDescription(*block.Description))
		}
		spec, err := plan.NewFolder(block.Name, opts...)
		if err != nil {
			return nil, fmt.Errorf("folder %q: %w", where, err)
		}
		specs = append(specs, spec)
	}
	return specs, nil
}
