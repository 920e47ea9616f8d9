// Package logtail reads the tail of the orgplan log file and follows it as
// new lines are appended.
package logtail

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"strings"
	"time"
)

const (
	scanBufferSize = 64 * 1024
	maxLineSize    = 1024 * 1024

	// DefaultPollInterval is how often Follow checks for new lines.
	DefaultPollInterval = 250 * time.Millisecond
)

// Filter reports whether a line should be emitted. A nil Filter keeps all lines.
type Filter func(line string) bool

// Contains keeps lines holding substr. An empty substr keeps everything.
func Contains(substr string) Filter {
	substr = strings.TrimSpace(substr)
	if substr == "" {
		return nil
	}
	return func(line string) bool { return strings.Contains(line, substr) }
}

// Last returns up to limit of the final matching lines of path and the byte
// offset of the end of the file. A missing file yields no lines and offset 0.
func Last(path string, limit int, filter Filter) ([]string, int64, error) {
	file, err := open(path)
	if err != nil || file == nil {
		return nil, 0, err
	}
	defer file.Close()

	ring := make([]string, 0, max(limit, 0))
	offset, err := scan(file, func(line string) {
		if limit <= 0 || (filter != nil && !filter(line)) {
			return
		}
		if len(ring) == limit {
			ring = append(ring[1:], line)
			return
		}
		ring = append(ring, line)
	})
	if err != nil {
		return nil, 0, err
	}
	return ring, offset, nil
}

// Follow emits matching lines appended to path after offset until ctx is
// done. A truncated file is read again from the start.
func Follow(ctx context.Context, path string, offset int64, poll time.Duration, filter Filter, emit func(string)) error {
	if poll <= 0 {
		poll = DefaultPollInterval
	}
	ticker := time.NewTicker(poll)
	defer ticker.Stop()

	for {
		next, err := readFrom(path, offset, filter, emit)
		if err != nil {
			return err
		}
		offset = next

		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-ticker.C:
		}
	}
}

func readFrom(path string, offset int64, filter Filter, emit func(string)) (int64, error) {
	file, err := open(path)
	if err != nil || file == nil {
		return 0, err
	}
	defer file.Close()

	info, err := file.Stat()
	if err != nil {
		return offset, fmt.Errorf("stat log file: %w", err)
	}
	if info.Size() < offset {
		offset = 0
	}
	if _, err := file.Seek(offset, io.SeekStart); err != nil {
		return offset, fmt.Errorf("seek log file: %w", err)
	}
	return scan(file, func(line string) {
		if filter == nil || filter(line) {
			emit(line)
		}
	})
}

func open(path string) (*os.File, error) {
	file, err := os.Open(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, nil
		}
		return nil, fmt.Errorf("open log file: %w", err)
	}
	info, err := file.Stat()
	if err != nil {
		file.Close()
		return nil, fmt.Errorf("stat log file: %w", err)
	}
	if info.IsDir() {
		file.Close()
		return nil, fmt.Errorf("log path %q is a directory", path)
	}
	return file, nil
}

// scan passes every complete line to fn and returns the offset just past the
// last complete line, so a partially written line is read again next time.
func scan(file *os.File, fn func(string)) (int64, error) {
	start, err := file.Seek(0, io.SeekCurrent)
	if err != nil {
		return 0, fmt.Errorf("determine log offset: %w", err)
	}
	reader := bufio.NewReaderSize(file, scanBufferSize)
	consumed := start
	for {
		line, err := reader.ReadString('\n')
		if err != nil {
			if errors.Is(err, io.EOF) {
				return consumed, nil
			}
			return consumed, fmt.Errorf("read log file: %w", err)
		}
		consumed += int64(len(line))
		if len(line) > maxLineSize {
			line = line[:maxLineSize]
		}
		fn(strings.TrimRight(line, "\r\n"))
	}
}
