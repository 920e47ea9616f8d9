package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"orgplan/internal/config"
	"orgplan/internal/plan"
	"orgplan/internal/planfile"
	"orgplan/internal/render"
)

func newPlanCommand(ctx *commandContext) *cobra.Command {
	planCmd := &cobra.Command{
		Use:   "plan",
		Short: "Inspect the organization plan",
	}
	planCmd.AddCommand(newPlanShowCommand(ctx))
	planCmd.AddCommand(newPlanExportCommand(ctx))
	return planCmd
}

func newPlanShowCommand(ctx *commandContext) *cobra.Command {
	var flags planFlags
	var jsonOutput bool
	var plain bool

	cmd := &cobra.Command{
		Use:   "show",
		Short: "Render the plan as a tree",
		RunE: func(cmd *cobra.Command, args []string) error {
			p, source, err := flags.resolve(ctx.configValue())
			if err != nil {
				return err
			}
			if jsonOutput {
				return writeJSON(cmd, newPlanView(p, source))
			}

			out := cmd.OutOrStdout()
			if plain {
				tree := render.PlanTree(p, render.MemoryFactory).(*render.MemoryNode)
				fmt.Fprint(out, tree.String())
			} else {
				opts := render.PrettyOptions{BoldRoot: shouldColorize(out)}
				tree := render.PlanTree(p, render.PrettyFactory(opts)).(*render.PrettyNode)
				fmt.Fprintln(out, tree.Render())
			}

			fmt.Fprintf(out, "\n%d folders, %d files (source: %s)\n", p.CountFolders(), p.CountFiles(), source)
			if keys := p.MetadataKeys(); len(keys) > 0 {
				metadata := p.Metadata()
				fmt.Fprintln(out, "\nNotes:")
				for _, key := range keys {
					fmt.Fprintf(out, "  %s: %s\n", key, metadata[key])
				}
			}
			return nil
		},
	}

	flags.register(cmd)
	cmd.Flags().BoolVar(&jsonOutput, "json", false, "Output as JSON")
	cmd.Flags().BoolVar(&plain, "plain", false, "Indent with spaces instead of tree connectors")
	return cmd
}

func newPlanExportCommand(ctx *commandContext) *cobra.Command {
	var flags planFlags
	var output string
	var overwrite bool

	cmd := &cobra.Command{
		Use:   "export",
		Short: "Write the plan as an HCL layout file",
		RunE: func(cmd *cobra.Command, args []string) error {
			p, _, err := flags.resolve(ctx.configValue())
			if err != nil {
				return err
			}
			data := planfile.Encode(p)

			target := strings.TrimSpace(output)
			if target == "" || target == "-" {
				_, err := cmd.OutOrStdout().Write(data)
				return err
			}
			target, err = config.ExpandPath(target)
			if err != nil {
				return fmt.Errorf("resolve output path: %w", err)
			}
			if !overwrite {
				if _, err := os.Stat(target); err == nil {
					return fmt.Errorf("layout file already exists at %s (use --overwrite to replace it)", target)
				}
			}
			if err := os.MkdirAll(filepath.Dir(target), 0o755); err != nil {
				return fmt.Errorf("create output directory: %w", err)
			}
			if err := os.WriteFile(target, data, 0o644); err != nil {
				return fmt.Errorf("write layout: %w", err)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Wrote layout to %s\n", target)
			return nil
		},
	}

	flags.register(cmd)
	cmd.Flags().StringVarP(&output, "output", "o", "", "Destination file (stdout when empty)")
	cmd.Flags().BoolVar(&overwrite, "overwrite", false, "Overwrite an existing layout file")
	return cmd
}

type folderView struct {
	Name        string       `json:"name"`
	Description string       `json:"description,omitempty"`
	Files       []string     `json:"files,omitempty"`
	Children    []folderView `json:"children,omitempty"`
}

type planView struct {
	BasePath string            `json:"base_path"`
	Source   string            `json:"source"`
	Folders  []folderView      `json:"folders"`
	Metadata map[string]string `json:"metadata,omitempty"`
	Counts   struct {
		Folders int `json:"folders"`
		Files   int `json:"files"`
	} `json:"counts"`
}

func newPlanView(p plan.Plan, source string) planView {
	view := planView{
		BasePath: p.BasePath(),
		Source:   source,
		Folders:  folderViews(p.Folders()),
		Metadata: p.Metadata(),
	}
	view.Counts.Folders = p.CountFolders()
	view.Counts.Files = p.CountFiles()
	return view
}

func folderViews(folders []plan.FolderSpec) []folderView {
	views := make([]folderView, 0, len(folders))
	for _, f := range folders {
		views = append(views, folderView{
			Name:        f.Name(),
			Description: f.Description(),
			Files:       f.Files(),
			Children:    folderViews(f.Children()),
		})
	}
	return views
}
