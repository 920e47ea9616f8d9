package logtail_test

import (
	"context"
	"os"
	"path/filepath"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"orgplan/internal/logtail"
)

func writeLog(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "orgplan.log")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLastReturnsFinalLines(t *testing.T) {
	path := writeLog(t, "a\nb\nc\n")

	lines, offset, err := logtail.Last(path, 2, nil)
	require.NoError(t, err)
	require.Equal(t, []string{"b", "c"}, lines)
	require.EqualValues(t, 6, offset)
}

func TestLastFiltersAndSkipsPartialLine(t *testing.T) {
	path := writeLog(t, "run=1 a\nrun=2 b\nrun=1 c\nrun=1 partial")

	lines, offset, err := logtail.Last(path, 10, logtail.Contains("run=1"))
	require.NoError(t, err)
	require.Equal(t, []string{"run=1 a", "run=1 c"}, lines)
	require.EqualValues(t, len("run=1 a\nrun=2 b\nrun=1 c\n"), offset)
}

func TestLastMissingFile(t *testing.T) {
	lines, offset, err := logtail.Last(filepath.Join(t.TempDir(), "none.log"), 5, nil)
	require.NoError(t, err)
	require.Empty(t, lines)
	require.Zero(t, offset)
}

func TestLastRejectsDirectory(t *testing.T) {
	_, _, err := logtail.Last(t.TempDir(), 5, nil)
	require.Error(t, err)
}

func TestFollowEmitsAppendedLines(t *testing.T) {
	path := writeLog(t, "start\n")
	_, offset, err := logtail.Last(path, 1, nil)
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	var mu sync.Mutex
	var got []string
	done := make(chan error, 1)
	go func() {
		done <- logtail.Follow(ctx, path, offset, 10*time.Millisecond, nil, func(line string) {
			mu.Lock()
			got = append(got, line)
			mu.Unlock()
		})
	}()

	f, err := os.OpenFile(path, os.O_APPEND|os.O_WRONLY, 0o644)
	require.NoError(t, err)
	_, err = f.WriteString("later\n")
	require.NoError(t, err)
	require.NoError(t, f.Close())

	require.Eventually(t, func() bool {
		mu.Lock()
		defer mu.Unlock()
		return len(got) == 1 && got[0] == "later"
	}, 5*time.Second, 10*time.Millisecond)

	cancel()
	require.ErrorIs(t, <-done, context.Canceled)
}
