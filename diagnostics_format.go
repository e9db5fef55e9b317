package main

import (
	"fmt"
	"strings"

	"golang.org/x/term"
)

const (
	ansiRed   = "\x1b[31m"
	ansiBold  = "\x1b[1m"
	ansiReset = "\x1b[0m"
)

// FormatDiagnostic renders a diagnostic as a one-line header followed by a
// source snippet with a caret under the offending column, in the style of
// the driver's terminal error output. Color is applied only when fd looks
// like an interactive terminal.
func FormatDiagnostic(d *Diagnostic, source string, fd int) string {
	color := term.IsTerminal(fd)
	var b strings.Builder

	header := fmt.Sprintf("%d:%d: %s: %s", d.Span.Line, d.Span.Col, d.Kind, d.Message)
	if color {
		fmt.Fprintf(&b, "%s%s%s\n", ansiBold+ansiRed, header, ansiReset)
	} else {
		fmt.Fprintf(&b, "%s\n", header)
	}

	snippet := caretSnippet(source, d.Span.Line, d.Span.Col)
	if snippet != "" {
		b.WriteString(snippet)
	}
	return b.String()
}

// caretSnippet renders the offending line with a caret under the 1-based
// column. A line outside the source yields an empty snippet, and col is
// clamped to the line's bounds, so malformed spans never panic.
func caretSnippet(source string, line, col int) string {
	lines := strings.Split(source, "\n")
	if line < 1 || line > len(lines) {
		return ""
	}
	text := lines[line-1]
	if col < 1 {
		col = 1
	}
	if col > len(text)+1 {
		col = len(text) + 1
	}

	var b strings.Builder
	fmt.Fprintf(&b, "  %4d | %s\n", line, text)
	fmt.Fprintf(&b, "       | %s^\n", strings.Repeat(" ", col-1))
	return b.String()
}
