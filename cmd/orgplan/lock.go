package main

import (
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"os"
	"path/filepath"

	"github.com/gofrs/flock"

	"orgplan/internal/config"
)

// applyLockPath maps a base path to a lock file under the state directory.
func applyLockPath(cfg *config.Config, basePath string) string {
	sum := sha256.Sum256([]byte(filepath.Clean(basePath)))
	return filepath.Join(cfg.LockDir(), "apply-"+hex.EncodeToString(sum[:8])+".lock")
}

// acquireApplyLock takes an advisory lock for basePath. It fails instead of
// waiting when another exclusive apply holds the lock.
func acquireApplyLock(cfg *config.Config, basePath string) (func() error, error) {
	lockPath := applyLockPath(cfg, basePath)
	if err := os.MkdirAll(filepath.Dir(lockPath), 0o755); err != nil {
		return nil, fmt.Errorf("create lock directory: %w", err)
	}

	lock := flock.New(lockPath)
	ok, err := lock.TryLock()
	if err != nil {
		return nil, fmt.Errorf("acquire lock: %w", err)
	}
	if !ok {
		return nil, fmt.Errorf("another exclusive apply is running for %s", basePath)
	}
	return lock.Unlock, nil
}
