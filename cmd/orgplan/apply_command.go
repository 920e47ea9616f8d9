package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"strconv"
	"time"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"orgplan/internal/apply"
	"orgplan/internal/history"
	"orgplan/internal/logging"
	"orgplan/internal/preflight"
)

type applyReport struct {
	RunID    string        `json:"run_id"`
	BasePath string        `json:"base_path"`
	Source   string        `json:"source"`
	Counts   apply.Counts  `json:"counts"`
	Result   *apply.Result `json:"result"`
	Error    string        `json:"error,omitempty"`
}

func newApplyCommand(ctx *commandContext) *cobra.Command {
	var flags planFlags
	var dryRun bool
	var exclusive bool
	var jsonOutput bool
	var verbose bool

	cmd := &cobra.Command{
		Use:   "apply",
		Short: "Create the planned folders and files",
		Long: "Create every folder and file in the plan that does not exist yet.\n" +
			"Existing entries are left untouched; existing files are never truncated.",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := ctx.ensureConfig()
			if err != nil {
				return err
			}
			p, source, err := flags.resolve(cfg)
			if err != nil {
				return err
			}
			logger, closeLog, err := ctx.newLogger(cmd)
			if err != nil {
				return err
			}
			defer closeLog()

			runID := uuid.NewString()
			runCtx := logging.WithRunID(cmd.Context(), runID)
			runLogger := logging.WithContext(runCtx, logger)

			for _, failed := range preflight.Failed(preflight.RunAll(cfg, p.BasePath())) {
				runLogger.Warn("preflight check failed",
					logging.String("check", failed.Name),
					logging.String("detail", failed.Detail),
				)
			}

			if exclusive {
				unlock, err := acquireApplyLock(cfg, p.BasePath())
				if err != nil {
					return err
				}
				defer func() {
					if err := unlock(); err != nil {
						runLogger.Warn("failed to release apply lock", logging.Error(err))
					}
				}()
			}

			started := time.Now()
			result, applyErr := apply.Apply(runCtx, p, apply.Options{
				DryRun:   dryRun,
				DirPerm:  cfg.DirMode(),
				FilePerm: cfg.FileMode(),
				Logger:   logger,
			})
			finished := time.Now()

			if cfg.Apply.RecordHistory {
				run := history.RunFromResult(runID, p.BasePath(), source, started, finished, result, dryRun, applyErr)
				recordRun(runCtx, ctx, run, runLogger)
			}

			report := applyReport{
				RunID:    runID,
				BasePath: p.BasePath(),
				Source:   source,
				Counts:   result.Summary(),
				Result:   result,
			}
			if applyErr != nil {
				report.Error = applyErr.Error()
			}

			if jsonOutput {
				if err := writeJSON(cmd, report); err != nil {
					return err
				}
			} else {
				printApplyReport(cmd.OutOrStdout(), report, verbose)
			}

			if applyErr != nil {
				return fmt.Errorf("apply plan: %w", applyErr)
			}
			return nil
		},
	}

	flags.register(cmd)
	cmd.Flags().BoolVarP(&dryRun, "dry-run", "n", false, "Report what would be created without touching the filesystem")
	cmd.Flags().BoolVar(&exclusive, "exclusive", false, "Fail if another exclusive apply is running for the same base")
	cmd.Flags().BoolVar(&jsonOutput, "json", false, "Output as JSON")
	cmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "List every path per category")
	return cmd
}

// recordRun stores the run; history problems never fail the apply.
func recordRun(runCtx context.Context, ctx *commandContext, run history.Run, logger *slog.Logger) {
	err := ctx.withStore(func(store *history.Store) error {
		return store.Record(context.WithoutCancel(runCtx), run)
	})
	if err != nil {
		logger.Warn("failed to record apply run", logging.Error(err))
	}
}

func printApplyReport(out io.Writer, report applyReport, verbose bool) {
	mode := "Applied"
	if report.Result != nil && report.Result.DryRun {
		mode = "Dry run"
	}
	fmt.Fprintf(out, "%s %s (source: %s)\n", mode, report.BasePath, report.Source)

	counts := report.Counts
	rows := [][]string{
		{categoryLabel(apply.OutcomeCreated), strconv.Itoa(counts.CreatedDirs), strconv.Itoa(counts.CreatedFiles)},
		{categoryLabel(apply.OutcomeExisting), strconv.Itoa(counts.ExistingDirs), strconv.Itoa(counts.ExistingFiles)},
		{categoryLabel(apply.OutcomePlanned), strconv.Itoa(counts.PlannedDirs), strconv.Itoa(counts.PlannedFiles)},
	}
	fmt.Fprintln(out, renderTable([]string{"Category", "Dirs", "Files"}, rows, []columnAlignment{alignLeft, alignRight, alignRight}))

	if verbose && report.Result != nil {
		r := report.Result
		sections := []struct {
			outcome apply.Outcome
			kind    string
			paths   []string
		}{
			{apply.OutcomeCreated, "dirs", r.CreatedDirs},
			{apply.OutcomeCreated, "files", r.CreatedFiles},
			{apply.OutcomeExisting, "dirs", r.ExistingDirs},
			{apply.OutcomeExisting, "files", r.ExistingFiles},
			{apply.OutcomePlanned, "dirs", r.PlannedDirs},
			{apply.OutcomePlanned, "files", r.PlannedFiles},
		}
		for _, section := range sections {
			if len(section.paths) == 0 {
				continue
			}
			fmt.Fprintf(out, "\n%s %s:\n", categoryLabel(section.outcome), section.kind)
			for _, path := range section.paths {
				fmt.Fprintf(out, "  %s\n", path)
			}
		}
	}

	if !counts.Changed() && report.Error == "" {
		fmt.Fprintln(out, "Nothing to do; layout already exists.")
	}
	fmt.Fprintf(out, "Run ID: %s\n", report.RunID)
}
