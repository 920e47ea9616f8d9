package apply

// Result records what an Apply call did. It belongs to a single call and is
// not safe for concurrent use.
type Result struct {
	DryRun bool `json:"dry_run"`

	CreatedDirs   []string `json:"created_dirs"`
	CreatedFiles  []string `json:"created_files"`
	ExistingDirs  []string `json:"existing_dirs"`
	ExistingFiles []string `json:"existing_files"`
	PlannedDirs   []string `json:"planned_dirs"`
	PlannedFiles  []string `json:"planned_files"`
}

func newResult(dryRun bool) *Result {
	return &Result{
		DryRun:        dryRun,
		CreatedDirs:   []string{},
		CreatedFiles:  []string{},
		ExistingDirs:  []string{},
		ExistingFiles: []string{},
		PlannedDirs:   []string{},
		PlannedFiles:  []string{},
	}
}

// Counts summarizes a Result per category.
type Counts struct {
	CreatedDirs   int `json:"created_dirs"`
	CreatedFiles  int `json:"created_files"`
	ExistingDirs  int `json:"existing_dirs"`
	ExistingFiles int `json:"existing_files"`
	PlannedDirs   int `json:"planned_dirs"`
	PlannedFiles  int `json:"planned_files"`
}

// Summary returns the number of entries in each category.
func (r *Result) Summary() Counts {
	if r == nil {
		return Counts{}
	}
	return Counts{
		CreatedDirs:   len(r.CreatedDirs),
		CreatedFiles:  len(r.CreatedFiles),
		ExistingDirs:  len(r.ExistingDirs),
		ExistingFiles: len(r.ExistingFiles),
		PlannedDirs:   len(r.PlannedDirs),
		PlannedFiles:  len(r.PlannedFiles),
	}
}

// Dirs is the number of directories visited.
func (c Counts) Dirs() int { return c.CreatedDirs + c.ExistingDirs + c.PlannedDirs }

// Files is the number of files visited.
func (c Counts) Files() int { return c.CreatedFiles + c.ExistingFiles + c.PlannedFiles }

// Changed reports whether anything was (or would be) created.
func (c Counts) Changed() bool {
	return c.CreatedDirs+c.CreatedFiles+c.PlannedDirs+c.PlannedFiles > 0
}
