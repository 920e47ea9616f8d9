package preflight

import (
	"orgplan/internal/config"
)

// Result reports the outcome of a single preflight check.
type Result struct {
	Name   string `json:"name"`
	Passed bool   `json:"passed"`
	Detail string `json:"detail"`
}

// RunAll checks the base directory and, when history is recorded, the state
// directory.
func RunAll(cfg *config.Config, basePath string) []Result {
	results := []Result{CheckBaseDir(basePath)}
	if cfg != nil && cfg.Apply.RecordHistory {
		results = append(results, CheckBaseDirNamed("State directory", cfg.Paths.StateDir))
	}
	return results
}

// Failed returns the results that did not pass.
func Failed(results []Result) []Result {
	var out []Result
	for _, r := range results {
		if !r.Passed {
			out = append(out, r)
		}
	}
	return out
}
