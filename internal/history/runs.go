package history

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"orgplan/internal/apply"
)

// Run is one recorded apply invocation.
type Run struct {
	ID         string       `json:"id"`
	BasePath   string       `json:"base_path"`
	PlanSource string       `json:"plan_source"`
	DryRun     bool         `json:"dry_run"`
	StartedAt  time.Time    `json:"started_at"`
	FinishedAt time.Time    `json:"finished_at"`
	Counts     apply.Counts `json:"counts"`
	Error      string       `json:"error,omitempty"`
}

// Duration is the wall time the run took.
func (r Run) Duration() time.Duration { return r.FinishedAt.Sub(r.StartedAt) }

// Failed reports whether the run stopped on an error.
func (r Run) Failed() bool { return r.Error != "" }

// RunFromResult builds a Run from an apply outcome. result may be nil when
// the apply never started.
func RunFromResult(id, basePath, source string, started, finished time.Time, result *apply.Result, dryRun bool, err error) Run {
	run := Run{
		ID:         id,
		BasePath:   basePath,
		PlanSource: source,
		DryRun:     dryRun,
		StartedAt:  started.UTC(),
		FinishedAt: finished.UTC(),
		Counts:     result.Summary(),
	}
	if result != nil {
		run.DryRun = result.DryRun
	}
	if err != nil {
		run.Error = err.Error()
	}
	return run
}

// timestampLayout has fixed width so stored values sort chronologically.
const timestampLayout = "2006-01-02T15:04:05.000000000Z07:00"

const runColumns = "id, base_path, plan_source, dry_run, started_at, finished_at, created_dirs, created_files, existing_dirs, existing_files, planned_dirs, planned_files, error_message"

// Record inserts a run.
func (s *Store) Record(ctx context.Context, run Run) error {
	if run.ID == "" {
		return errors.New("record run: missing id")
	}
	var errMsg any
	if run.Error != "" {
		errMsg = run.Error
	}
	err := s.exec(ctx,
		`INSERT INTO apply_runs (`+runColumns+`) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		run.ID,
		run.BasePath,
		run.PlanSource,
		boolToInt(run.DryRun),
		run.StartedAt.UTC().Format(timestampLayout),
		run.FinishedAt.UTC().Format(timestampLayout),
		run.Counts.CreatedDirs,
		run.Counts.CreatedFiles,
		run.Counts.ExistingDirs,
		run.Counts.ExistingFiles,
		run.Counts.PlannedDirs,
		run.Counts.PlannedFiles,
		errMsg,
	)
	if err != nil {
		return fmt.Errorf("insert run: %w", err)
	}
	return nil
}

// List returns the most recent runs first. limit <= 0 returns all runs.
func (s *Store) List(ctx context.Context, limit int) ([]Run, error) {
	query := `SELECT ` + runColumns + ` FROM apply_runs ORDER BY started_at DESC, rowid DESC`
	args := []any{}
	if limit > 0 {
		query += ` LIMIT ?`
		args = append(args, limit)
	}
	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list runs: %w", err)
	}
	defer rows.Close()

	var runs []Run
	for rows.Next() {
		run, err := scanRun(rows)
		if err != nil {
			return nil, err
		}
		runs = append(runs, *run)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate runs: %w", err)
	}
	return runs, nil
}

// Get returns the run with id, or nil when it does not exist.
func (s *Store) Get(ctx context.Context, id string) (*Run, error) {
	row := s.db.QueryRowContext(ctx, `SELECT `+runColumns+` FROM apply_runs WHERE id = ?`, id)
	run, err := scanRun(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	return run, err
}

// Clear removes every recorded run and returns how many were deleted.
func (s *Store) Clear(ctx context.Context) (int64, error) {
	var removed int64
	err := retryOnBusy(ctx, func() error {
		res, err := s.db.ExecContext(ctx, `DELETE FROM apply_runs`)
		if err != nil {
			return err
		}
		removed, err = res.RowsAffected()
		return err
	})
	if err != nil {
		return 0, fmt.Errorf("clear runs: %w", err)
	}
	return removed, nil
}

func scanRun(scanner interface{ Scan(dest ...any) error }) (*Run, error) {
	var (
		run         Run
		dryRun      int
		startedRaw  string
		finishedRaw string
		errMsg      sql.NullString
	)
	if err := scanner.Scan(
		&run.ID,
		&run.BasePath,
		&run.PlanSource,
		&dryRun,
		&startedRaw,
		&finishedRaw,
		&run.Counts.CreatedDirs,
		&run.Counts.CreatedFiles,
		&run.Counts.ExistingDirs,
		&run.Counts.ExistingFiles,
		&run.Counts.PlannedDirs,
		&run.Counts.PlannedFiles,
		&errMsg,
	); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, err
		}
		return nil, fmt.Errorf("scan run: %w", err)
	}
	run.DryRun = dryRun != 0
	run.Error = errMsg.String

	var err error
	if run.StartedAt, err = time.Parse(timestampLayout, startedRaw); err != nil {
		return nil, fmt.Errorf("parse started_at for %s: %w", run.ID, err)
	}
	if run.FinishedAt, err = time.Parse(timestampLayout, finishedRaw); err != nil {
		return nil, fmt.Errorf("parse finished_at for %s: %w", run.ID, err)
	}
	return &run, nil
}

func boolToInt(v bool) int {
	if v {
		return 1
	}
	return 0
}
