package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"orgplan/internal/config"
	"orgplan/internal/preflight"
)

func newCheckCommand(ctx *commandContext) *cobra.Command {
	var base string
	var jsonOutput bool

	cmd := &cobra.Command{
		Use:   "check",
		Short: "Verify the base and state directories are usable",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := ctx.ensureConfig()
			if err != nil {
				return err
			}
			basePath := cfg.Plan.BaseDir
			if strings.TrimSpace(base) != "" {
				if basePath, err = config.ExpandPath(strings.TrimSpace(base)); err != nil {
					return fmt.Errorf("resolve base: %w", err)
				}
			}

			results := preflight.RunAll(cfg, basePath)
			failed := preflight.Failed(results)

			if jsonOutput {
				if err := writeJSON(cmd, results); err != nil {
					return err
				}
			} else {
				out := cmd.OutOrStdout()
				colorize := shouldColorize(out)
				configPath := ctx.configPath
				if !ctx.configSeen {
					configPath += " (not found, using defaults)"
				}
				configLines := []statusLine{
					{label: "Config", kind: statusInfo, message: configPath},
					{label: "Record history", kind: statusInfo, message: yesNo(cfg.Apply.RecordHistory)},
				}
				for _, line := range renderStatusBlock("Configuration", configLines, colorize) {
					fmt.Fprintln(out, line)
				}
				fmt.Fprintln(out)
				for _, line := range renderStatusBlock("Preflight", preflightStatusLines(results), colorize) {
					fmt.Fprintln(out, line)
				}
			}

			if len(failed) > 0 {
				return fmt.Errorf("%d preflight check(s) failed", len(failed))
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&base, "base", "", "Base directory to check (defaults to plan.base_dir)")
	cmd.Flags().BoolVar(&jsonOutput, "json", false, "Output as JSON")
	return cmd
}
