package main

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"orgplan/internal/config"
	"orgplan/internal/plan"
	"orgplan/internal/planfile"
)

const builtinSource = "builtin"

// planFlags are shared by every command that resolves a plan.
type planFlags struct {
	base      string
	libraries []string
	noFastAPI bool
	noNFT     bool
	file      string
}

func (f *planFlags) register(cmd *cobra.Command) {
	cmd.Flags().StringVar(&f.base, "base", "", "Base directory for the layout (defaults to plan.base_dir)")
	cmd.Flags().StringSliceVar(&f.libraries, "libraries", nil, "Library names to scaffold (comma separated)")
	cmd.Flags().BoolVar(&f.noFastAPI, "no-fastapi", false, "Omit the FastAPI workflow branch")
	cmd.Flags().BoolVar(&f.noNFT, "no-nft", false, "Omit the digital assets branch")
	cmd.Flags().StringVarP(&f.file, "file", "f", "", "HCL layout file to use instead of the built-in layout")
}

// resolve returns the plan selected by flags and config, plus a label for
// where it came from.
func (f *planFlags) resolve(cfg *config.Config) (plan.Plan, string, error) {
	if cfg == nil {
		return plan.Plan{}, "", errors.New("configuration unavailable")
	}

	base := cfg.Plan.BaseDir
	if strings.TrimSpace(f.base) != "" {
		expanded, err := config.ExpandPath(strings.TrimSpace(f.base))
		if err != nil {
			return plan.Plan{}, "", fmt.Errorf("resolve base: %w", err)
		}
		base = expanded
	}

	layoutFile := cfg.Plan.PlanFile
	if strings.TrimSpace(f.file) != "" {
		expanded, err := config.ExpandPath(strings.TrimSpace(f.file))
		if err != nil {
			return plan.Plan{}, "", fmt.Errorf("resolve layout file: %w", err)
		}
		layoutFile = expanded
	}

	if layoutFile != "" {
		if len(f.libraries) > 0 || f.noFastAPI || f.noNFT {
			return plan.Plan{}, "", errors.New("--libraries, --no-fastapi and --no-nft only apply to the built-in layout")
		}
		p, err := planfile.Load(layoutFile, base)
		if err != nil {
			return plan.Plan{}, "", err
		}
		return p, layoutFile, nil
	}

	opts := cfg.BuildOptions()
	if len(f.libraries) > 0 {
		opts.LibraryNames = f.libraries
	}
	if f.noFastAPI {
		opts.IncludeFastAPI = false
	}
	if f.noNFT {
		opts.IncludeNFT = false
	}
	p, err := plan.Build(base, opts)
	if err != nil {
		return plan.Plan{}, "", fmt.Errorf("build plan: %w", err)
	}
	return p, builtinSource, nil
}
