package main

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/mattn/go-isatty"

	"orgplan/internal/preflight"
)

type statusKind int

const (
	statusInfo statusKind = iota
	statusOK
	statusError
)

const (
	ansiReset = "\x1b[0m"
	ansiRed   = "\x1b[31m"
	ansiGreen = "\x1b[32m"
	ansiBlue  = "\x1b[34m"
)

const (
	statusLabelWidth = 18
	statusIndent     = "  "
)

// statusLine is one labeled row of check output.
type statusLine struct {
	label   string
	kind    statusKind
	message string
}

func (l statusLine) render(colorize bool) string {
	text := fmt.Sprintf("%s%-*s [%s]", statusIndent, statusLabelWidth, l.label+":", statusKindLabel(l.kind))
	if l.message != "" {
		text += " " + l.message
	}
	if colorize {
		return statusKindColor(l.kind) + text + ansiReset
	}
	return text
}

// renderStatusBlock returns a titled section followed by its rows.
func renderStatusBlock(title string, lines []statusLine, colorize bool) []string {
	header := fmt.Sprintf("== %s ==", strings.TrimSpace(title))
	rule := strings.Repeat("-", len(header))
	if colorize {
		header = ansiBlue + header + ansiReset
		rule = ansiBlue + rule + ansiReset
	}
	out := []string{header, rule}
	for _, line := range lines {
		out = append(out, line.render(colorize))
	}
	return out
}

// preflightStatusLines turns check results into rows, ending with a summary.
func preflightStatusLines(results []preflight.Result) []statusLine {
	lines := make([]statusLine, 0, len(results)+1)
	failed := 0
	for _, result := range results {
		kind := statusOK
		if !result.Passed {
			kind = statusError
			failed++
		}
		lines = append(lines, statusLine{label: result.Name, kind: kind, message: result.Detail})
	}

	summary := statusLine{label: "Summary", kind: statusOK, message: fmt.Sprintf("all %d checks passed", len(results))}
	if failed > 0 {
		summary = statusLine{label: "Summary", kind: statusError, message: fmt.Sprintf("%d of %d checks failed", failed, len(results))}
	}
	return append(lines, summary)
}

func statusKindLabel(kind statusKind) string {
	switch kind {
	case statusOK:
		return "OK"
	case statusError:
		return "ERROR"
	default:
		return "INFO"
	}
}

func statusKindColor(kind statusKind) string {
	switch kind {
	case statusOK:
		return ansiGreen
	case statusError:
		return ansiRed
	default:
		return ansiBlue
	}
}

func shouldColorize(writer io.Writer) bool {
	file, ok := writer.(*os.File)
	if !ok {
		return false
	}
	fd := file.Fd()
	return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
}
