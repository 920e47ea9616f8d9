package planfile

import (
	"github.com/hashicorp/hcl/v2/hclwrite"
	"github.com/zclconf/go-cty/cty"

	"orgplan/internal/plan"
)

// Encode renders p as an HCL layout. The base path is omitted.
func Encode(p plan.Plan) []byte {
	file := hclwrite.NewEmptyFile()
	body := file.Body()

	if keys := p.MetadataKeys(); len(keys) > 0 {
		meta := p.Metadata()
		values := make(map[string]cty.Value, len(keys))
		for _, key := range keys {
			values[key] = cty.StringVal(meta[key])
		}
		body.SetAttributeValue("metadata", cty.MapVal(values))
	}

	for _, f := range p.Folders() {
		body.AppendNewline()
		writeFolder(body, f)
	}
	return hclwrite.Format(file.Bytes())
}

func writeFolder(parent *hclwrite.Body, f plan.FolderSpec) {
	block := parent.AppendNewBlock("folder", []string{f.Name()})
	body := block.Body()
	if d := f.Description(); d != "" {
		body.SetAttributeValue("description", cty.StringVal(d))
	}
	if files := f.Files(); len(files) > 0 {
		values := make([]cty.Value, 0, len(files))
		for _, name := range files {
			values = append(values, cty.StringVal(name))
		}
		body.SetAttributeValue("files", cty.ListVal(values))
	}
	for _, child := range f.Children() {
		writeFolder(body, child)
	}
}
