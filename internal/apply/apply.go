package apply

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"syscall"

	"orgplan/internal/logging"
	"orgplan/internal/plan"
)

const (
	defaultDirPerm  os.FileMode = 0o755
	defaultFilePerm os.FileMode = 0o644
)

// Outcome labels how an entry was classified.
type Outcome string

const (
	OutcomeCreated  Outcome = "created"
	OutcomeExisting Outcome = "existing"
	OutcomePlanned  Outcome = "planned"
)

// Options controls an Apply call.
type Options struct {
	DryRun   bool
	DirPerm  os.FileMode
	FilePerm os.FileMode
	Logger   *slog.Logger
}

type applier struct {
	opts   Options
	logger *slog.Logger
	result *Result
}

// Apply creates the directories and files described by p, or only records
// them when opts.DryRun is set. On error the partial Result is returned
// alongside it.
func Apply(ctx context.Context, p plan.Plan, opts Options) (*Result, error) {
	if opts.DirPerm == 0 {
		opts.DirPerm = defaultDirPerm
	}
	if opts.FilePerm == 0 {
		opts.FilePerm = defaultFilePerm
	}
	logger := logging.WithContext(ctx, opts.Logger).With(
		logging.Component("apply"),
		logging.Bool(logging.FieldDryRun, opts.DryRun),
	)

	a := &applier{opts: opts, logger: logger, result: newResult(opts.DryRun)}
	for _, folder := range p.Folders() {
		if err := a.folder(ctx, p.BasePath(), folder); err != nil {
			logger.Error("apply stopped", logging.String(logging.FieldPath, p.BasePath()), logging.Error(err))
			return a.result, err
		}
	}

	counts := a.result.Summary()
	logger.Info("apply complete",
		logging.String(logging.FieldPath, p.BasePath()),
		logging.Int("created_dirs", counts.CreatedDirs),
		logging.Int("created_files", counts.CreatedFiles),
		logging.Int("existing_dirs", counts.ExistingDirs),
		logging.Int("existing_files", counts.ExistingFiles),
		logging.Int("planned_dirs", counts.PlannedDirs),
		logging.Int("planned_files", counts.PlannedFiles),
	)
	return a.result, nil
}

func (a *applier) folder(ctx context.Context, base string, spec plan.FolderSpec) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	dir := filepath.Join(base, spec.Name())
	outcome, err := a.ensureDir(dir)
	if err != nil {
		return err
	}
	a.trace("dir", dir, outcome)

	for _, name := range spec.Files() {
		file := filepath.Join(dir, name)
		outcome, err := a.ensureFile(file)
		if err != nil {
			return err
		}
		a.trace("file", file, outcome)
	}

	for _, child := range spec.Children() {
		if err := a.folder(ctx, dir, child); err != nil {
			return err
		}
	}
	return nil
}

// ensureDir treats any existing entry as present without checking its type.
func (a *applier) ensureDir(path string) (Outcome, error) {
	exists, err := pathExists(path)
	if err != nil {
		return "", err
	}
	switch {
	case exists:
		a.result.ExistingDirs = append(a.result.ExistingDirs, path)
		return OutcomeExisting, nil
	case a.opts.DryRun:
		a.result.PlannedDirs = append(a.result.PlannedDirs, path)
		return OutcomePlanned, nil
	}
	if err := os.MkdirAll(path, a.opts.DirPerm); err != nil {
		// MkdirAll may report the parent it failed on; keep the target visible.
		return "", fmt.Errorf("create directory %s: %w", path, err)
	}
	a.result.CreatedDirs = append(a.result.CreatedDirs, path)
	return OutcomeCreated, nil
}

func (a *applier) ensureFile(path string) (Outcome, error) {
	exists, err := pathExists(path)
	if err != nil {
		return "", err
	}
	switch {
	case exists:
		a.result.ExistingFiles = append(a.result.ExistingFiles, path)
		return OutcomeExisting, nil
	case a.opts.DryRun:
		a.result.PlannedFiles = append(a.result.PlannedFiles, path)
		return OutcomePlanned, nil
	}

	f, err := os.OpenFile(path, os.O_CREATE|os.O_EXCL|os.O_WRONLY, a.opts.FilePerm)
	if errors.Is(err, fs.ErrExist) {
		a.result.ExistingFiles = append(a.result.ExistingFiles, path)
		return OutcomeExisting, nil
	}
	if err != nil {
		return "", err
	}
	if err := f.Close(); err != nil {
		return "", err
	}
	a.result.CreatedFiles = append(a.result.CreatedFiles, path)
	return OutcomeCreated, nil
}

func (a *applier) trace(kind, path string, outcome Outcome) {
	a.logger.Debug(kind,
		logging.String(logging.FieldPath, path),
		logging.String(logging.FieldOutcome, string(outcome)),
	)
}

// pathExists reports whether anything exists at path. A path whose parent is
// not a directory, or that runs into a symlink loop, does not exist. Other
// stat errors are returned so permission problems are not mistaken for
// missing entries.
func pathExists(path string) (bool, error) {
	_, err := os.Stat(path)
	switch {
	case err == nil:
		return true, nil
	case errors.Is(err, fs.ErrNotExist), errors.Is(err, syscall.ENOTDIR), errors.Is(err, syscall.ELOOP):
		return false, nil
	default:
		return false, err
	}
}
