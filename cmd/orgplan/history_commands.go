package main

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"orgplan/internal/history"
)

func newHistoryCommand(ctx *commandContext) *cobra.Command {
	historyCmd := &cobra.Command{
		Use:   "history",
		Short: "Inspect recorded apply runs",
	}
	historyCmd.AddCommand(newHistoryListCommand(ctx))
	historyCmd.AddCommand(newHistoryShowCommand(ctx))
	historyCmd.AddCommand(newHistoryClearCommand(ctx))
	return historyCmd
}

func newHistoryListCommand(ctx *commandContext) *cobra.Command {
	var limit int
	var jsonOutput bool

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List recent apply runs",
		RunE: func(cmd *cobra.Command, args []string) error {
			return ctx.withStore(func(store *history.Store) error {
				runs, err := store.List(cmd.Context(), limit)
				if err != nil {
					return err
				}
				if jsonOutput {
					if runs == nil {
						runs = []history.Run{}
					}
					return writeJSON(cmd, runs)
				}

				out := cmd.OutOrStdout()
				if len(runs) == 0 {
					fmt.Fprintln(out, "No apply runs recorded")
					return nil
				}
				rows := make([][]string, 0, len(runs))
				for _, run := range runs {
					rows = append(rows, []string{
						shortID(run.ID),
						run.StartedAt.Local().Format(time.DateTime),
						run.BasePath,
						runMode(run),
						strconv.Itoa(run.Counts.CreatedDirs + run.Counts.CreatedFiles),
						strconv.Itoa(run.Counts.ExistingDirs + run.Counts.ExistingFiles),
						strconv.Itoa(run.Counts.PlannedDirs + run.Counts.PlannedFiles),
						runStatus(run),
					})
				}
				fmt.Fprintln(out, renderTable(
					[]string{"ID", "Started", "Base", "Mode", "Created", "Existing", "Planned", "Status"},
					rows,
					[]columnAlignment{alignLeft, alignLeft, alignLeft, alignLeft, alignRight, alignRight, alignRight, alignLeft},
				))
				return nil
			})
		},
	}

	cmd.Flags().IntVarP(&limit, "limit", "n", 20, "Maximum number of runs to show (0 for all)")
	cmd.Flags().BoolVar(&jsonOutput, "json", false, "Output as JSON")
	return cmd
}

func newHistoryShowCommand(ctx *commandContext) *cobra.Command {
	var jsonOutput bool

	cmd := &cobra.Command{
		Use:   "show <id>",
		Short: "Show one apply run",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id := strings.TrimSpace(args[0])
			if id == "" {
				return errors.New("run id is required")
			}
			return ctx.withStore(func(store *history.Store) error {
				run, err := store.Get(cmd.Context(), id)
				if err != nil {
					return err
				}
				if run == nil {
					return fmt.Errorf("apply run %s not found", id)
				}
				if jsonOutput {
					return writeJSON(cmd, run)
				}

				out := cmd.OutOrStdout()
				fmt.Fprintf(out, "Run:       %s\n", run.ID)
				fmt.Fprintf(out, "Base:      %s\n", run.BasePath)
				fmt.Fprintf(out, "Source:    %s\n", run.PlanSource)
				fmt.Fprintf(out, "Mode:      %s\n", runMode(*run))
				fmt.Fprintf(out, "Started:   %s\n", run.StartedAt.Local().Format(time.DateTime))
				fmt.Fprintf(out, "Duration:  %s\n", run.Duration().Round(time.Millisecond))
				fmt.Fprintf(out, "Status:    %s\n", runStatus(*run))
				if run.Failed() {
					fmt.Fprintf(out, "Error:     %s\n", run.Error)
				}
				c := run.Counts
				fmt.Fprintf(out, "Dirs:      %d created, %d existing, %d planned\n", c.CreatedDirs, c.ExistingDirs, c.PlannedDirs)
				fmt.Fprintf(out, "Files:     %d created, %d existing, %d planned\n", c.CreatedFiles, c.ExistingFiles, c.PlannedFiles)
				return nil
			})
		},
	}

	cmd.Flags().BoolVar(&jsonOutput, "json", false, "Output as JSON")
	return cmd
}

func newHistoryClearCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "clear",
		Short: "Delete all recorded apply runs",
		RunE: func(cmd *cobra.Command, args []string) error {
			return ctx.withStore(func(store *history.Store) error {
				removed, err := store.Clear(cmd.Context())
				if err != nil {
					return err
				}
				fmt.Fprintf(cmd.OutOrStdout(), "Removed %d apply run(s)\n", removed)
				return nil
			})
		},
	}
}

func shortID(id string) string {
	if len(id) > 8 {
		return id[:8]
	}
	return id
}

func runMode(run history.Run) string {
	if run.DryRun {
		return "dry run"
	}
	return "apply"
}

func runStatus(run history.Run) string {
	if run.Failed() {
		return "failed"
	}
	return "ok"
}
